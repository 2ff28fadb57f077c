package config

// Config holds all configuration of the calculator demonstration binary.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log  LogConfig  `mapstructure:"log" validate:"required"`
	Demo DemoConfig `mapstructure:"demo" validate:"required"`
}

// LogConfig contains all logging-related configuration settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// DemoConfig controls how the demonstration run renders its results.
type DemoConfig struct {
	// Format is "text" for the human-readable listing or "json" for a single document.
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}
