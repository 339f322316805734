package model

// Shared defaults used by both the web and terminal binaries.
const (
	DefaultPreviewRows     = 10
	DefaultPageSize        = 5
	DefaultFallbackYear    = 2025
	DefaultTimestampLayout = "2006-01-02 15:04:05"
	DefaultTitle           = "Accelerometer Monitoring Dashboard"
	DefaultDataFile        = "gyro_data.csv"
)
