package config

// Config holds the tool's own runtime settings, as opposed to the
// configuration document it resolves. Values come from defaults, then
// FORGECONF_* environment variables, then CLI flags.
type Config struct {
	// ConfigFile is the path to the configuration document.
	ConfigFile string `koanf:"config_file" validate:"required"`
	// EnvFile is an optional .env overlay; it fills only variables that
	// are not already set in the process environment.
	EnvFile string `koanf:"env_file"`
	// LogLevel controls logger verbosity.
	LogLevel string `koanf:"log_level"   validate:"omitempty,oneof=debug info warn error"`
	// LogJSON switches the logger to JSON output.
	LogJSON bool `koanf:"log_json"`
	// ColorMode controls colored terminal output.
	ColorMode string `koanf:"color_mode"  validate:"omitempty,oneof=auto on off"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		ConfigFile: "config.yaml",
		LogLevel:   "info",
		ColorMode:  "auto",
	}
}
