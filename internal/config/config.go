// Package config loads runtime configuration shared by the web and terminal
// binaries. Every key has a default, so running without a config file serves
// gyro_data.csv on 127.0.0.1:8051.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/tinytelemetry/accelboard/internal/chart"
	"github.com/tinytelemetry/accelboard/internal/model"
)

const (
	DefaultBindHost = "127.0.0.1"
	DefaultPort     = 8051
)

// Config is the runtime configuration.
type Config struct {
	DataFile        string `mapstructure:"data-file"`
	BindHost        string `mapstructure:"bind-host"`
	Port            int    `mapstructure:"port"`
	Addr            string `mapstructure:"addr"`
	FallbackYear    int    `mapstructure:"fallback-year"`
	TimestampLayout string `mapstructure:"timestamp-layout"`
	PreviewRows     int    `mapstructure:"preview-rows"`
	PageSize        int    `mapstructure:"page-size"`
	Title           string `mapstructure:"title"`
	LogFile         string `mapstructure:"log-file"`
	OpenBrowser     bool   `mapstructure:"open-browser"`
	ChartWidth      int    `mapstructure:"chart-width"`
	ChartHeight     int    `mapstructure:"chart-height"`
	ChartTimeFormat string `mapstructure:"chart-time-format"`
	ConfigPath      string `mapstructure:"-"` // not from config file
}

// Load reads configPath, or the default path when empty. A missing file is
// not an error. Environment variables are not consulted.
func Load(configPath string) (Config, error) {
	var cfg Config

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetDefault("data-file", model.DefaultDataFile)
	v.SetDefault("bind-host", DefaultBindHost)
	v.SetDefault("port", DefaultPort)
	v.SetDefault("fallback-year", model.DefaultFallbackYear)
	v.SetDefault("timestamp-layout", model.DefaultTimestampLayout)
	v.SetDefault("preview-rows", model.DefaultPreviewRows)
	v.SetDefault("page-size", model.DefaultPageSize)
	v.SetDefault("title", model.DefaultTitle)
	v.SetDefault("log-file", filepath.Join(home, ".local", "state", "accelboard", "accelboard.log"))
	v.SetDefault("open-browser", false)
	v.SetDefault("chart-width", chart.DefaultWidth)
	v.SetDefault("chart-height", chart.DefaultHeight)
	v.SetDefault("chart-time-format", chart.DefaultTimeFormat)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "accelboard", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()
	if _, err := os.Stat(cfg.ConfigPath); err != nil {
		cfg.ConfigPath = ""
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	// Expand ~ in paths
	cfg.DataFile = expandHome(cfg.DataFile, home)
	cfg.LogFile = expandHome(cfg.LogFile, home)

	if cfg.Addr == "" {
		cfg.Addr = net.JoinHostPort(cfg.BindHost, strconv.Itoa(cfg.Port))
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.FallbackYear <= 0 || c.FallbackYear > 9999 {
		return fmt.Errorf("invalid fallback-year: %d", c.FallbackYear)
	}
	if c.PreviewRows <= 0 {
		return fmt.Errorf("invalid preview-rows: %d", c.PreviewRows)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("invalid page-size: %d", c.PageSize)
	}
	if c.ChartWidth <= 0 || c.ChartHeight <= 0 {
		return fmt.Errorf("invalid chart size: %dx%d", c.ChartWidth, c.ChartHeight)
	}
	if strings.TrimSpace(c.DataFile) == "" {
		return errors.New("data-file must not be empty")
	}
	if !strings.Contains(c.TimestampLayout, "2006") {
		return fmt.Errorf("timestamp-layout %q has no 4-digit year", c.TimestampLayout)
	}
	return nil
}

func expandHome(path, home string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
