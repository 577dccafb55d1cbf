package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joeshaw/envdecode"
)

// Env holds settings read from the environment. Flags override them.
type Env struct {
	// Color selects styling: auto, always or never. ENV: PROMPTLY_COLOR
	Color string `env:"PROMPTLY_COLOR,default=auto"`
	// NoColor follows the NO_COLOR convention. ENV: NO_COLOR
	NoColor string `env:"NO_COLOR"`
	// Format selects the answer output format: yaml or json. ENV: PROMPTLY_FORMAT
	Format string `env:"PROMPTLY_FORMAT,default=yaml"`
	// LogPath enables debug logs written to a file. ENV: PROMPTLY_LOG
	LogPath string `env:"PROMPTLY_LOG"`
}

// Output formats accepted by Env.Format.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// LoadEnv decodes Env from the process environment and validates it.
func LoadEnv() (Env, error) {
	var env Env
	if err := envdecode.Decode(&env); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Env{}, fmt.Errorf("read environment: %w", err)
	}
	env.Normalize()
	if err := env.Validate(); err != nil {
		return Env{}, err
	}
	return env, nil
}

// Normalize trims and lower-cases enumerated settings, filling defaults.
func (env *Env) Normalize() {
	env.Color = strings.ToLower(strings.TrimSpace(env.Color))
	if env.Color == "" {
		env.Color = "auto"
	}
	env.Format = strings.ToLower(strings.TrimSpace(env.Format))
	if env.Format == "" {
		env.Format = FormatYAML
	}
	env.LogPath = strings.TrimSpace(env.LogPath)
}

// Validate reports unsupported values.
func (env Env) Validate() error {
	switch env.Format {
	case FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("invalid format %q (expected yaml|json)", env.Format)
	}
	switch env.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q (expected auto|always|never)", env.Color)
	}
	return nil
}

// DisableColor reports whether NO_COLOR is set to a non-empty value.
func (env Env) DisableColor() bool {
	return env.NoColor != ""
}
