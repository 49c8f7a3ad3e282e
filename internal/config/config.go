// Package config loads the interpreter's optional TOML configuration
// file.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the decoded contents of an optional config file. All fields
// are optional; CLI flags override whatever is set here, which in turn
// overrides the built-in defaults.
type Config struct {
	Unlambda Unlambda `toml:"unlambda"`
}

// Unlambda holds the interpreter-specific settings.
type Unlambda struct {
	Profile  string `toml:"profile,omitempty"`   // "full" (default) or "minimal"
	MaxSteps int    `toml:"max_steps,omitempty"` // 0 = unbounded
	Trace    bool   `toml:"trace,omitempty"`     // enable trace recording by default
}

// Default returns the built-in defaults used when no config file and no
// overriding flag is given.
func Default() Config {
	return Config{Unlambda: Unlambda{Profile: "full"}}
}

// Load decodes the TOML file at path. A missing path is not an error —
// Load returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	if cfg.Unlambda.Profile == "" {
		cfg.Unlambda.Profile = "full"
	}
	return cfg, nil
}
