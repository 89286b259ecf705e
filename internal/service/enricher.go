// Package service provides the launch file pipeline for the MOS device manager.
package service

import (
	"fmt"

	"github.com/rs/zerolog"

	"mos-device-mgr/internal/model"
)

// Enricher derives the mount point suffix, output directory and server
// model name of parsed records.
type Enricher struct {
	basePath      string
	modelPrefix   string
	skipMalformed bool
	logger        zerolog.Logger
}

// EnricherOption is a functional option for configuring an Enricher.
type EnricherOption func(*Enricher)

// WithSkipMalformedRecords makes the enricher warn about and drop records
// whose derived fields cannot be computed instead of aborting.
func WithSkipMalformedRecords(skip bool) EnricherOption {
	return func(e *Enricher) {
		e.skipMalformed = skip
	}
}

// NewEnricher creates an Enricher for records under basePath.
func NewEnricher(basePath, modelPrefix string, logger zerolog.Logger, opts ...EnricherOption) *Enricher {
	e := &Enricher{
		basePath:    basePath,
		modelPrefix: modelPrefix,
		logger:      logger.With().Str("component", "enricher").Logger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enrich fills MountPoint2, OutputDir and ModelName of every record in place.
// The returned slice keeps input order; it only differs from records when
// malformed records are skipped.
func (e *Enricher) Enrich(records []*model.DeviceRecord) ([]*model.DeviceRecord, error) {
	kept := records[:0]

	for _, record := range records {
		if err := e.EnrichRecord(record); err != nil {
			lineErr := &LineError{Source: record.Source, Line: record.Line, Err: err}
			if e.skipMalformed {
				e.logger.Warn().Err(lineErr).Str("mountpoint", record.MountPoint).Msg("skipping malformed record")
				continue
			}
			return nil, lineErr
		}
		kept = append(kept, record)
	}

	e.logger.Debug().Int("records", len(kept)).Msg("enrichment completed")
	return kept, nil
}

// EnrichRecord derives the computed fields of a single record.
func (e *Enricher) EnrichRecord(record *model.DeviceRecord) error {
	mountPoint2, ok := model.MountPointSuffix(record.MountPoint, e.basePath)
	if !ok {
		return fmt.Errorf("%w: mount point %q has nothing below base path %q", ErrMalformedRecord, record.MountPoint, e.basePath)
	}

	outputDir, ok := model.NamespaceOutputDir(record.Namespace)
	if !ok {
		return fmt.Errorf("%w: namespace %q has no second segment", ErrMalformedRecord, record.Namespace)
	}

	mpTokens := model.MountPointTokens(mountPoint2)
	e.logger.Debug().Strs("mp_tokens", mpTokens).Msg("mountpoint MP tokens")
	e.logger.Debug().Str("mp_path", model.MountPointPath(mpTokens)).Msg("mountpoint MP path")

	record.MountPoint2 = mountPoint2
	record.OutputDir = outputDir
	record.ModelName = model.ModelName(e.modelPrefix, mountPoint2, record.XMLFile)

	e.logger.Debug().
		Str("host", record.Host).
		Int("port", record.Port).
		Str("xmlfile", record.XMLFile).
		Str("mountpoint2", record.MountPoint2).
		Str("outputdir", record.OutputDir).
		Str("namespace", record.Namespace).
		Str("modelname", record.ModelName).
		Msg("MOS info")

	return nil
}
