package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/accelboard/internal/config"
	"github.com/tinytelemetry/accelboard/internal/dashboard"
	"github.com/tinytelemetry/accelboard/internal/loader"
	"github.com/tinytelemetry/accelboard/internal/timestamp"
	"github.com/tinytelemetry/accelboard/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var debugLog string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/accelboard/config.yml)")
	flag.StringVar(&debugLog, "debug", "", "write debug logs to file")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Accelboard TUI - Terminal Dashboard\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flag.NArg() > 0 {
		cfg.DataFile = flag.Arg(0)
	}

	if err := runTUI(cfg, debugLog); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg config.Config, debugLog string) error {
	if debugLog != "" {
		f, err := tea.LogToFile(debugLog, "debug")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	parser := timestamp.NewParser(
		timestamp.WithLayout(cfg.TimestampLayout),
		timestamp.WithFallbackYear(cfg.FallbackYear),
	)
	table, stats, err := loader.Load(cfg.DataFile, parser)
	if err != nil {
		return fmt.Errorf("failed to load readings: %w", err)
	}
	log.Printf("loaded %d readings from %s (%d year fallback, %d null timestamps)",
		stats.Rows, cfg.DataFile, stats.FallbackTimestamps, stats.NullTimestamps)

	dash := dashboard.New(table,
		dashboard.WithPreviewRows(cfg.PreviewRows),
		dashboard.WithTitle(cfg.Title),
	)
	return tui.Run(dash, cfg.PageSize)
}
