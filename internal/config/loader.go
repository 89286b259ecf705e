// Package config provides configuration management for the MOS device manager.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Default values shared by the loader and the CLI flag definitions.
const (
	DefaultOutputFile  = "sndemo_mos_devices.lis"
	DefaultBasePath    = "SuperNEMO:/Demonstrator/CMS"
	DefaultModelPrefix = "sndemo"
	DefaultFormat      = "lis"
)

// flagBindings maps configuration keys to the CLI flags that override them.
var flagBindings = map[string]string{
	"input.launcher":       "launcher",
	"input.base_path":      "base-path",
	"input.skip_malformed": "skip-malformed",
	"output.file":          "output-file",
	"output.format":        "format",
	"model.prefix":         "model-prefix",
	"logging.level":        "log-level",
}

// Load builds the configuration from defaults, an optional YAML file,
// environment variables and command line flags, in increasing order of
// precedence. Environment variable format: MOSDEV_<SECTION>_<KEY>
// (e.g., MOSDEV_INPUT_BASE_PATH). Only flags that were explicitly set
// override the other sources.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("MOSDEV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// bindFlags attaches the known CLI flags present in flags to their keys.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range flagBindings {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// setDefaults sets default values for all configuration options.
// Every key needs a default so AutomaticEnv can see it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("input.launcher", "")
	v.SetDefault("input.base_path", DefaultBasePath)
	v.SetDefault("input.skip_malformed", false)

	v.SetDefault("output.file", DefaultOutputFile)
	v.SetDefault("output.format", DefaultFormat)
	v.SetDefault("output.html_template", "")

	v.SetDefault("model.prefix", DefaultModelPrefix)

	v.SetDefault("report.timezone", "UTC")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
