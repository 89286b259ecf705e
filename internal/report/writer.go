// Package report provides summary file generation for the MOS device manager.
// It defines the RecordWriter interface; implementations live in the lis,
// excel, html and yamldoc subpackages.
package report

import (
	"mos-device-mgr/internal/model"
)

// RecordWriter defines the interface for writing a device summary.
type RecordWriter interface {
	// Write serializes the device set to outputPath, replacing any
	// existing file. Rich formats may append their file extension.
	Write(set *model.DeviceSet, outputPath string) error

	// Format returns the format identifier for this writer,
	// e.g. "lis" or "excel".
	Format() string
}
