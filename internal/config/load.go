package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvConfig names an environment variable holding a config path. It is
// consulted after the -config flag.
const EnvConfig = "MAPTOOL_CONFIG"

const fileName = "maptool.yaml"

// Load loads configuration with priority: defaults < file < flags.
func Load(f *Flags) (*Config, error) {
	cfg := Default()

	if path := configPath(f); path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, errors.Wrapf(err, "loading config from %s", path)
		}
	}

	f.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that have a closed set of choices or a sign.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return errors.Errorf("unknown output format %q", c.Output.Format)
	}
	if c.Output.Limit < 0 {
		return errors.Errorf("negative output limit %d", c.Output.Limit)
	}
	if c.Output.WallIndex < 0 {
		return errors.Errorf("negative wall index %d", c.Output.WallIndex)
	}
	return nil
}

// configPath picks the config file: the flag, then $MAPTOOL_CONFIG, then
// the first existing file in the working directory or ConfigDir. An
// explicit path is returned even if it does not exist so Load reports it.
func configPath(f *Flags) string {
	if f.Config != "" {
		return f.Config
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}
	return findConfigFile()
}

func findConfigFile() string {
	for _, dir := range []string{".", ConfigDir()} {
		path := filepath.Join(dir, fileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user maptool config directory. It falls back to
// the working directory when the OS reports none.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base, _ = os.Getwd()
	}
	return filepath.Join(base, "maptool")
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return errors.Wrap(yaml.Unmarshal(data, cfg), "parsing yaml")
}
