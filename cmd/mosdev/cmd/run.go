// Package cmd implements CLI commands for the MOS device manager.
package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"mos-device-mgr/internal/config"
	"mos-device-mgr/internal/report"
	"mos-device-mgr/internal/service"
)

// runDevices executes the complete parse, enrich and write workflow.
func runDevices(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	timezone, err := time.LoadLocation(cfg.Report.Timezone)
	if err != nil {
		return fmt.Errorf("failed to load timezone %s: %w", cfg.Report.Timezone, err)
	}

	registry := report.NewRegistry(timezone, cfg.Output.HTMLTemplate)
	writer, err := registry.Get(cfg.Output.Format)
	if err != nil {
		return err
	}

	manager, err := newManager(cfg, writer, logger)
	if err != nil {
		return err
	}

	_, err = manager.Run()
	return err
}

// loadConfig loads the configuration for cmd and builds the logger from it.
// --debug forces the debug level.
func loadConfig(cmd *cobra.Command) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	level := cfg.Logging.Level
	if debug {
		level = "debug"
	}
	logger := setupLogger(level, cfg.Logging.Format, cmd.OutOrStdout())

	logger.Debug().
		Str("config_path", cfgFile).
		Str("launcher", cfg.Input.Launcher).
		Str("output_file", cfg.Output.File).
		Str("format", cfg.Output.Format).
		Str("base_path", cfg.Input.BasePath).
		Str("model_prefix", cfg.Model.Prefix).
		Bool("skip_malformed", cfg.Input.SkipMalformed).
		Msg("configuration loaded")

	return cfg, logger, nil
}

// newManager wires the parser and enricher for cfg into a Manager.
func newManager(cfg *config.Config, writer report.RecordWriter, logger zerolog.Logger) (*service.Manager, error) {
	skip := cfg.Input.SkipMalformed
	parser := service.NewParser(cfg.Input.BasePath, logger, service.WithSkipMalformedLines(skip))
	enricher := service.NewEnricher(cfg.Input.BasePath, cfg.Model.Prefix, logger, service.WithSkipMalformedRecords(skip))

	manager, err := service.NewManager(cfg, parser, enricher, writer, logger, service.WithVersion(Version))
	if err != nil {
		return nil, fmt.Errorf("failed to create device manager: %w", err)
	}
	return manager, nil
}

// setupLogger creates a zerolog logger with the specified level and format.
func setupLogger(level string, format string, out io.Writer) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	var output io.Writer
	if format == "json" {
		// JSON format - structured logging for log aggregation systems
		output = out
	} else {
		// Console format - human-readable output
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "15:04:05",
			NoColor:    true,
		}
	}

	return zerolog.New(output).Level(logLevel).With().Timestamp().Logger()
}
