package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are the process-level knobs read from the environment. Flags
// given on the command line take precedence.
type Settings struct {
	OptionsPath string `env:"GOOSE_WORLD_OPTIONS"`
	Seed        int64  `env:"GOOSE_WORLD_SEED"`
	Output      string `env:"GOOSE_WORLD_OUTPUT" envDefault:"-"`
	Verbose     bool   `env:"GOOSE_WORLD_VERBOSE"`
}

// LoadSettings reads Settings from the process environment.
func LoadSettings() (Settings, error) {
	return parseSettings(env.Options{})
}

func parseSettings(opts env.Options) (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, opts); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}
