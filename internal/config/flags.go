package config

import "flag"

// Flags holds command-line overrides. Zero values leave the config alone.
type Flags struct {
	Config string
	Debug  bool
	Format string
	Limit  int
	Stats  bool
}

// Register binds the flags to fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.Format, "format", "", "Output format (text, yaml)")
	fs.IntVar(&f.Limit, "n", 0, "Limit output to N records (0 = all)")
	fs.BoolVar(&f.Stats, "stats", false, "Expand attribute registers")
}

// apply applies flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Format != "" {
		cfg.Output.Format = f.Format
	}
	if f.Limit > 0 {
		cfg.Output.Limit = f.Limit
	}
	if f.Stats {
		cfg.Output.Stats = true
	}
}
