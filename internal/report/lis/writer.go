// Package lis writes the semicolon-delimited MOS device summary.
package lis

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"mos-device-mgr/internal/model"
)

// Separator joins the columns of a summary line.
const Separator = ";"

// Writer implements report.RecordWriter for the .lis summary table.
type Writer struct{}

// NewWriter creates a new summary table writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Format returns the format identifier for this writer.
func (w *Writer) Format() string {
	return "lis"
}

// Write writes one line per device, in set order, to outputPath:
//
//	xmlfile;mountpoint;mountpoint2;outputdir;modelname
//
// An existing file is truncated.
func (w *Writer) Write(set *model.DeviceSet, outputPath string) (err error) {
	if set == nil {
		return fmt.Errorf("device set is nil")
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(file)
	for _, device := range set.Devices {
		if _, err := bw.WriteString(FormatLine(device) + "\n"); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// FormatLine renders a single summary line without the trailing newline.
func FormatLine(device *model.DeviceRecord) string {
	return strings.Join(device.SummaryFields(), Separator)
}
