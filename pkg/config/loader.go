package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "FORGECONF_"

// Service loads and validates the tool settings.
type Service interface {
	Load(ctx context.Context, flags map[string]any) (*Config, error)
	Validate(cfg *Config) error
}

// loader implements Service on top of koanf.
type loader struct {
	koanf     *koanf.Koanf
	validator *validator.Validate
}

// NewService creates a new settings service with validation support.
func NewService() Service {
	return &loader{
		koanf:     koanf.New("."),
		validator: validator.New(),
	}
}

// Load applies sources in precedence order: defaults, then FORGECONF_*
// environment variables, then explicitly changed CLI flags.
func (l *loader) Load(_ context.Context, flags map[string]any) (*Config, error) {
	if err := l.loadDefaults(); err != nil {
		return nil, err
	}
	if err := l.loadEnvironment(); err != nil {
		return nil, err
	}
	for key, value := range flags {
		if err := l.koanf.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set flag %s: %w", key, err)
		}
	}
	return l.unmarshalAndValidate()
}

// loadDefaults loads the default configuration.
func (l *loader) loadDefaults() error {
	// Use the structs provider so defaults live in one place instead of
	// hardcoded key-value pairs
	if err := l.koanf.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return fmt.Errorf("failed to load defaults: %w", err)
	}
	return nil
}

// loadEnvironment loads settings from FORGECONF_* environment variables.
// FORGECONF_LOG_LEVEL maps to log_level, and so on.
func (l *loader) loadEnvironment() error {
	if err := l.koanf.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, envPrefix)), value
		},
	}), nil); err != nil {
		return fmt.Errorf("failed to load environment variables: %w", err)
	}
	return nil
}

// unmarshalAndValidate unmarshals the settings and validates them.
func (l *loader) unmarshalAndValidate() (*Config, error) {
	var cfg Config
	if err := l.koanf.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := l.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks the settings against their struct tags.
func (l *loader) Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("settings cannot be nil")
	}
	if err := l.validator.Struct(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
