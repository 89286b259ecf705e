// Package service provides the launch file pipeline for the MOS device manager.
package service

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"mos-device-mgr/internal/model"
)

// launchFieldCount is the number of leading tokens a launch line must carry:
// host, port, user, xmlfile, namespace, mountpoint.
const launchFieldCount = 6

// Parser reads device launch files and keeps the records under a base path.
type Parser struct {
	basePath      string
	skipMalformed bool
	logger        zerolog.Logger
}

// ParserOption is a functional option for configuring a Parser.
type ParserOption func(*Parser)

// WithSkipMalformedLines makes the parser warn about and skip malformed
// lines instead of aborting on the first one.
func WithSkipMalformedLines(skip bool) ParserOption {
	return func(p *Parser) {
		p.skipMalformed = skip
	}
}

// NewParser creates a Parser that retains records whose mount point starts with basePath.
func NewParser(basePath string, logger zerolog.Logger, opts ...ParserOption) *Parser {
	p := &Parser{
		basePath: basePath,
		logger:   logger.With().Str("component", "parser").Logger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads the launch file at path and returns the retained records in file order.
func (p *Parser) Parse(path string) ([]*model.DeviceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open launch file: %w", err)
	}
	defer f.Close()

	return p.ParseReader(f, path)
}

// ParseReader reads launch lines from r. source names the input in errors and logs.
func (p *Parser) ParseReader(r io.Reader, source string) ([]*model.DeviceRecord, error) {
	records := make([]*model.DeviceRecord, 0)
	reader := bufio.NewReader(r)
	lineNo := 0

	for {
		text, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("failed to read launch file %s: %w", source, readErr)
		}
		if readErr == io.EOF && text == "" {
			break
		}
		lineNo++
		line := strings.TrimSpace(text)

		if line == "" {
			p.logger.Debug().Int("line", lineNo).Msg("empty line")
			continue
		}
		if line[0] == '#' {
			p.logger.Debug().Int("line", lineNo).Msg("commented line")
			continue
		}
		p.logger.Debug().Int("line", lineNo).Str("text", line).Msg("current line")

		record, err := parseLine(line)
		if err != nil {
			lineErr := &LineError{Source: source, Line: lineNo, Err: err}
			if p.skipMalformed {
				p.logger.Warn().Err(lineErr).Msg("skipping malformed line")
				continue
			}
			return nil, lineErr
		}
		record.Line = lineNo
		record.Source = source

		retained := strings.HasPrefix(record.MountPoint, p.basePath)
		p.logger.Debug().
			Int("line", lineNo).
			Str("host", record.Host).
			Int("port", record.Port).
			Str("user", record.User).
			Str("xmlfile", record.XMLFile).
			Str("namespace", record.Namespace).
			Str("mountpoint", record.MountPoint).
			Bool("retained", retained).
			Msg("MOS info record")

		if retained {
			records = append(records, record)
		}
		if readErr == io.EOF {
			break
		}
	}

	p.logger.Debug().
		Str("source", source).
		Int("lines", lineNo).
		Int("retained", len(records)).
		Msg("launch file parsed")

	return records, nil
}

// parseLine converts one non-empty, non-comment line into a record.
// Tokens beyond the sixth are ignored.
func parseLine(line string) (*model.DeviceRecord, error) {
	tokens := strings.Fields(line)
	if len(tokens) < launchFieldCount {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedLine, launchFieldCount, len(tokens))
	}

	port, err := strconv.Atoi(tokens[1])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid port %q", ErrMalformedLine, tokens[1])
	}

	return &model.DeviceRecord{
		Host:       tokens[0],
		Port:       port,
		User:       tokens[2],
		XMLFile:    strings.TrimPrefix(tokens[3], "/"),
		Namespace:  tokens[4],
		MountPoint: tokens[5],
	}, nil
}
