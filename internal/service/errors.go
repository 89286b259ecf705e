// Package service provides the launch file pipeline for the MOS device manager.
package service

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is returned for launch lines that cannot be turned into a record.
	ErrMalformedLine = errors.New("malformed launch line")
	// ErrMalformedRecord is returned for records whose derived fields cannot be computed.
	ErrMalformedRecord = errors.New("malformed device record")
)

// LineError ties a parse or enrichment failure to its launch file line.
type LineError struct {
	Source string // Launch file path, may be empty
	Line   int    // 1-based line number
	Err    error
}

// Error implements the error interface.
func (e *LineError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LineError) Unwrap() error {
	return e.Err
}
