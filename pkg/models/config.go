package models

// Config represents the application configuration.
type Config struct {
	// Go reference layout used to print results
	Format string `json:"format" yaml:"format"`

	// IANA zone names; empty means the local zone
	InputTimezone  string `json:"input_timezone"  yaml:"input_timezone"`
	OutputTimezone string `json:"output_timezone" yaml:"output_timezone"`

	// First day of the week for "this", "next" and "last" weekday references
	WeekStart string `json:"week_start" yaml:"week_start"` // "monday", "sunday", ...

	// Batch resolution settings
	Batch BatchConfig `json:"batch" yaml:"batch"`
}

type BatchConfig struct {
	Workers   int    `json:"workers"    yaml:"workers"`
	CacheSize int    `json:"cache_size" yaml:"cache_size"`
	Output    string `json:"output"     yaml:"output"` // "text", "yaml", "json"
}
