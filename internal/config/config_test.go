package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DataFile != "gyro_data.csv" {
		t.Errorf("DataFile = %q", cfg.DataFile)
	}
	if cfg.Addr != "127.0.0.1:8051" {
		t.Errorf("Addr = %q, want 127.0.0.1:8051", cfg.Addr)
	}
	if cfg.FallbackYear != 2025 || cfg.PreviewRows != 10 || cfg.PageSize != 5 {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.ChartWidth != 960 || cfg.ChartHeight != 420 || cfg.ChartTimeFormat != "01-02 15:04:05" {
		t.Errorf("chart defaults = %dx%d %q", cfg.ChartWidth, cfg.ChartHeight, cfg.ChartTimeFormat)
	}
	if cfg.ConfigPath != "" {
		t.Errorf("ConfigPath = %q, want empty for missing file", cfg.ConfigPath)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"data-file: /data/readings.csv",
		"port: 9000",
		"fallback-year: 2026",
		"page-size: 3",
		"open-browser: true",
		"chart-width: 640",
		"chart-time-format: \"15:04\"",
	}, "\n"))

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataFile != "/data/readings.csv" || cfg.FallbackYear != 2026 || cfg.PageSize != 3 || !cfg.OpenBrowser {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.ChartWidth != 640 || cfg.ChartHeight != 420 || cfg.ChartTimeFormat != "15:04" {
		t.Errorf("chart = %dx%d %q", cfg.ChartWidth, cfg.ChartHeight, cfg.ChartTimeFormat)
	}
	if cfg.Addr != "127.0.0.1:9000" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.ConfigPath != path {
		t.Errorf("ConfigPath = %q, want %q", cfg.ConfigPath, path)
	}
}

func TestLoad_ExplicitAddr(t *testing.T) {
	cfg, err := Load(writeConfig(t, "addr: 0.0.0.0:8080\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != "0.0.0.0:8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
}

func TestLoad_ExpandsHome(t *testing.T) {
	cfg, err := Load(writeConfig(t, "data-file: ~/gyro.csv\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if strings.HasPrefix(cfg.DataFile, "~") || !strings.HasSuffix(cfg.DataFile, "gyro.csv") {
		t.Errorf("DataFile = %q, want expanded", cfg.DataFile)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"port", "port: 70000\n"},
		{"fallback year", "fallback-year: 0\n"},
		{"preview rows", "preview-rows: 0\n"},
		{"page size", "page-size: -1\n"},
		{"chart width", "chart-width: 0\n"},
		{"layout without year", "timestamp-layout: \"15:04:05\"\n"},
		{"malformed yaml", "port: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Error("Load succeeded, want error")
			}
		})
	}
}
