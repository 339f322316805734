package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigureRuntimeLogger(t *testing.T) {
	prev := log.Writer()
	t.Cleanup(func() { log.SetOutput(prev) })

	path := filepath.Join(t.TempDir(), "state", "accelboard.log")
	cleanup := configureRuntimeLogger(path)
	log.Printf("hello from test")
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file = %q, want test line", data)
	}
}

func TestShortenPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := shortenPath(filepath.Join(home, "gyro_data.csv")); !strings.HasPrefix(got, "~") {
		t.Errorf("shortenPath under home = %q, want ~ prefix", got)
	}
	if got := shortenPath("/elsewhere/gyro_data.csv"); got != "/elsewhere/gyro_data.csv" && home != "/" {
		t.Errorf("shortenPath outside home = %q", got)
	}
}

func TestRunServer_MissingFileIsFatal(t *testing.T) {
	prev := log.Writer()
	t.Cleanup(func() { log.SetOutput(prev) })

	cfg := testConfig(t)
	cfg.DataFile = filepath.Join(t.TempDir(), "absent.csv")

	err := runServer(cfg)
	if err == nil || !strings.Contains(err.Error(), "failed to load readings") {
		t.Errorf("runServer err = %v, want load failure", err)
	}
}
