package main

import (
	"path/filepath"
	"testing"

	"github.com/tinytelemetry/accelboard/internal/config"
	"github.com/tinytelemetry/accelboard/internal/model"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	return config.Config{
		DataFile:        filepath.Join(dir, "gyro_data.csv"),
		Addr:            "127.0.0.1:0",
		FallbackYear:    model.DefaultFallbackYear,
		TimestampLayout: model.DefaultTimestampLayout,
		PreviewRows:     model.DefaultPreviewRows,
		PageSize:        model.DefaultPageSize,
		Title:           model.DefaultTitle,
		LogFile:         filepath.Join(dir, "accelboard.log"),
	}
}
