// Package config provides configuration management for the MOS device manager.
package config

// Config is the root configuration structure for the MOS device manager.
type Config struct {
	Input   InputConfig   `mapstructure:"input"`
	Output  OutputConfig  `mapstructure:"output"`
	Model   ModelConfig   `mapstructure:"model"`
	Report  ReportConfig  `mapstructure:"report"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// InputConfig describes where device launch records come from.
type InputConfig struct {
	Launcher      string `mapstructure:"launcher" validate:"required"`  // Device launch file
	BasePath      string `mapstructure:"base_path" validate:"required"` // Only mount points under this prefix are kept
	SkipMalformed bool   `mapstructure:"skip_malformed"`                // Warn and skip instead of aborting
}

// OutputConfig describes the summary file.
type OutputConfig struct {
	File         string `mapstructure:"file" validate:"required"`
	Format       string `mapstructure:"format" validate:"oneof=lis excel html yaml"`
	HTMLTemplate string `mapstructure:"html_template"` // Optional user template for the html format
}

// ModelConfig contains settings for server model naming.
type ModelConfig struct {
	Prefix string `mapstructure:"prefix" validate:"required"`
}

// ReportConfig contains settings shared by the rich report formats.
type ReportConfig struct {
	Timezone string `mapstructure:"timezone" validate:"timezone"`
}

// LoggingConfig contains configurations for logging.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}
