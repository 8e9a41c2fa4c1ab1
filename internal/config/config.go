// Package config handles maptool configuration loading and management.
package config

// Config holds all maptool settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// OutputConfig controls how parsed records are printed.
type OutputConfig struct {
	Format string `yaml:"format"` // text or yaml
	Limit  int    `yaml:"limit"`  // max records listed, 0 = all
	Stats  bool   `yaml:"stats"`  // expand attribute registers in listings

	// WallIndex is the wall measured by walllen when no index is given.
	WallIndex int `yaml:"wall_index"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: FormatText,
			Limit:  0,
			Stats:  false,

			WallIndex: 0,
		},
		Logging: LoggingConfig{
			Level:   "warn",
			LogFile: "",
		},
	}
}
