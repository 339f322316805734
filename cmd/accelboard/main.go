package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tinytelemetry/accelboard/internal/config"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var showVersion bool
	var openBrowser bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/accelboard/config.yml)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.BoolVar(&openBrowser, "open", false, "open the dashboard in a browser tab")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: accelboard [flags] [file.csv]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("Accelboard - Sensor Reading Dashboard\n")
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
	if openBrowser {
		cfg.OpenBrowser = true
	}

	if err := runServer(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
