package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/browser"
	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/accelboard/internal/config"
	"github.com/tinytelemetry/accelboard/internal/dashboard"
	"github.com/tinytelemetry/accelboard/internal/httpserver"
	"github.com/tinytelemetry/accelboard/internal/loader"
	"github.com/tinytelemetry/accelboard/internal/timestamp"
)

// runServer loads the readings once and serves the dashboard until
// SIGINT or SIGTERM.
func runServer(cfg config.Config) error {
	cleanupLogger := configureRuntimeLogger(cfg.LogFile)
	defer cleanupLogger()

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

	srv := httpserver.NewServer(cfg.Addr, dash,
		httpserver.WithPageSize(cfg.PageSize),
		httpserver.WithChartSize(cfg.ChartWidth, cfg.ChartHeight),
		httpserver.WithChartTimeFormat(cfg.ChartTimeFormat),
	)
	if err := srv.Start(); err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	log.Printf("serving dashboard on http://%s/", srv.Addr())

	printStartupBanner(cfg, stats, srv.Addr())

	if cfg.OpenBrowser {
		browser.Stdout = log.Writer()
		browser.Stderr = log.Writer()
		if err := browser.OpenURL("http://" + srv.Addr() + "/"); err != nil {
			log.Printf("Warning: failed to open browser: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		fmt.Println("\nShutting down...")
		log.Printf("shutting down")
		return srv.Stop()
	})

	return g.Wait()
}

func configureRuntimeLogger(logPath string) func() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if logPath == "" {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	log.SetOutput(f)
	return func() {
		_ = f.Close()
	}
}

func printStartupBanner(cfg config.Config, stats loader.Stats, addr string) {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cyan := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	bold := lipgloss.NewStyle().Bold(true)

	check := green.Render("●")
	dot := dim.Render("●")
	warn := yellow.Render("●")

	var lines []string
	lines = append(lines, "")
	lines = append(lines, "    "+cyan.Bold(true).Render(cfg.Title))
	lines = append(lines, "    "+dim.Render("v"+version))
	lines = append(lines, "")

	separator := dim.Render("    ─────────────────────────────────")
	lines = append(lines, separator)
	lines = append(lines, "")

	lines = append(lines, bold.Render("    Data"))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("    %s  File           %s", check, dim.Render(shortenPath(cfg.DataFile))))
	lines = append(lines, fmt.Sprintf("    %s  Readings       %s", check, cyan.Render(fmt.Sprint(stats.Rows))))
	if stats.FallbackTimestamps > 0 {
		lines = append(lines, fmt.Sprintf("    %s  Year fallback  %s", warn, dim.Render(fmt.Sprintf("%d rows assumed %d", stats.FallbackTimestamps, cfg.FallbackYear))))
	}
	if stats.NullTimestamps > 0 {
		lines = append(lines, fmt.Sprintf("    %s  Bad timestamps %s", warn, dim.Render(fmt.Sprintf("%d rows", stats.NullTimestamps))))
	}
	lines = append(lines, "")

	lines = append(lines, bold.Render("    Dashboard"))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("    %s  HTTP           %s", check, cyan.Render("http://"+addr+"/")))
	if cfg.ConfigPath != "" {
		lines = append(lines, fmt.Sprintf("    %s  Config File    %s", check, dim.Render(shortenPath(cfg.ConfigPath))))
	} else {
		lines = append(lines, fmt.Sprintf("    %s  Config File    %s", dot, dim.Render("default (no file)")))
	}
	lines = append(lines, fmt.Sprintf("    %s  Log File       %s", check, dim.Render(shortenPath(cfg.LogFile))))

	lines = append(lines, "")
	lines = append(lines, separator)
	lines = append(lines, "")
	lines = append(lines, "    "+dim.Render("Press ")+yellow.Render("Ctrl+C")+dim.Render(" to stop"))
	lines = append(lines, "")

	fmt.Println(strings.Join(lines, "\n"))
}

func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
