// Package yamldoc writes the MOS device summary as a YAML document.
package yamldoc

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"mos-device-mgr/internal/model"
)

// Writer implements report.RecordWriter for YAML output.
type Writer struct{}

// NewWriter creates a new YAML summary writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Format returns the format identifier for this writer.
func (w *Writer) Format() string {
	return "yaml"
}

// Write encodes the device set, including its run metadata, to outputPath.
// The .yaml extension is appended unless the path already ends in .yaml or .yml.
func (w *Writer) Write(set *model.DeviceSet, outputPath string) (err error) {
	if set == nil {
		return fmt.Errorf("device set is nil")
	}

	lower := strings.ToLower(outputPath)
	if !strings.HasSuffix(lower, ".yaml") && !strings.HasSuffix(lower, ".yml") {
		outputPath = outputPath + ".yaml"
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

	enc := yaml.NewEncoder(file)
	enc.SetIndent(2)
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
