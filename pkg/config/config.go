// Package config loads mklnk's configuration. Precedence, lowest to
// highest: built-in defaults, the optional TOML file under the XDG
// config home, then MKLNK_-prefixed environment variables.
package config

import (
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/mklnk/pkg/errors"
)

// ConfigFileName is the file looked up under the XDG config home.
const ConfigFileName = "mklnk/mklnk.toml"

// Config holds the user-tunable settings.
type Config struct {
	Output  OutputConfig  `koanf:"output"`
	Logging LoggingConfig `koanf:"logging"`
}

// OutputConfig controls console rendering.
type OutputConfig struct {
	// Color is "auto", "always", or "never".
	Color string `koanf:"color"`
}

// LoggingConfig controls the default log verbosity, overridable by the
// -v flag.
type LoggingConfig struct {
	Verbosity int `koanf:"verbosity"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"output.color":      "auto",
		"logging.verbosity": 0,
	}
}

// Load builds the effective configuration.
func Load() (*Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Optional config file
	if path, err := xdg.SearchConfigFile(ConfigFileName); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"failed to load config file %s", path)
		}
	}

	// 3. Environment overrides: MKLNK_OUTPUT_COLOR=never etc.
	err := k.Load(env.Provider("MKLNK_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "MKLNK_")), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal config")
	}
	return &cfg, nil
}

// LoadFromFile parses a specific TOML file over the defaults. It backs
// the --config flag.
func LoadFromFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", path)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to parse %s", path)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal config")
	}
	return &cfg, nil
}
