// Package service provides the launch file pipeline for the MOS device manager.
package service

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"mos-device-mgr/internal/config"
	"mos-device-mgr/internal/model"
	"mos-device-mgr/internal/report"
)

const defaultTimezone = "UTC"

// Manager runs the launch file pipeline: parse, enrich, then write.
type Manager struct {
	parser   *Parser
	enricher *Enricher
	writer   report.RecordWriter
	config   *config.Config
	timezone *time.Location
	version  string
	now      func() time.Time
	logger   zerolog.Logger
}

// ManagerOption is a functional option for configuring a Manager.
type ManagerOption func(*Manager)

// NewManager creates a new Manager with the given dependencies.
// writer may be nil when only Collect is used.
func NewManager(
	cfg *config.Config,
	parser *Parser,
	enricher *Enricher,
	writer report.RecordWriter,
	logger zerolog.Logger,
	opts ...ManagerOption,
) (*Manager, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	tzName := defaultTimezone
	if cfg.Report.Timezone != "" {
		tzName = cfg.Report.Timezone
	}

	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %s: %w", tzName, err)
	}

	m := &Manager{
		parser:   parser,
		enricher: enricher,
		writer:   writer,
		config:   cfg,
		timezone: loc,
		version:  "dev",
		now:      time.Now,
		logger:   logger.With().Str("component", "manager").Logger(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// WithVersion sets the tool version recorded in the device set.
func WithVersion(version string) ManagerOption {
	return func(m *Manager) {
		m.version = version
	}
}

// WithClock overrides the time source used for GeneratedAt.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.now = now
	}
}

// Collect parses and enriches the launch file without writing anything.
func (m *Manager) Collect() (*model.DeviceSet, error) {
	launcher := m.config.Input.Launcher

	m.logger.Debug().
		Str("launcher", launcher).
		Str("base_path", m.config.Input.BasePath).
		Str("model_prefix", m.config.Model.Prefix).
		Msg("step 1: parsing launch file")
	records, err := m.parser.Parse(launcher)
	if err != nil {
		return nil, fmt.Errorf("failed to parse launch file: %w", err)
	}

	m.logger.Debug().Int("records", len(records)).Msg("step 2: enriching records")
	records, err = m.enricher.Enrich(records)
	if err != nil {
		return nil, fmt.Errorf("failed to enrich records: %w", err)
	}
	if records == nil {
		records = make([]*model.DeviceRecord, 0)
	}

	return &model.DeviceSet{
		Source:      launcher,
		BasePath:    m.config.Input.BasePath,
		ModelPrefix: m.config.Model.Prefix,
		GeneratedAt: m.now().In(m.timezone),
		Version:     m.version,
		Devices:     records,
	}, nil
}

// Run executes the complete pipeline and writes the summary to the
// configured output file.
func (m *Manager) Run() (*model.DeviceSet, error) {
	if m.writer == nil {
		return nil, fmt.Errorf("no writer configured")
	}

	set, err := m.Collect()
	if err != nil {
		return nil, err
	}

	outputFile := m.config.Output.File
	m.logger.Debug().
		Str("output_file", outputFile).
		Str("format", m.writer.Format()).
		Msg("step 3: writing summary")
	if err := m.writer.Write(set, outputFile); err != nil {
		return nil, fmt.Errorf("failed to write %s summary: %w", m.writer.Format(), err)
	}

	m.logger.Debug().
		Str("launcher", set.Source).
		Str("output_file", outputFile).
		Str("format", m.writer.Format()).
		Int("devices", set.Count()).
		Msg("device summary written")

	return set, nil
}
