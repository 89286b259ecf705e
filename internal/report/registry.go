// Package report provides summary file generation for the MOS device manager.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"mos-device-mgr/internal/report/excel"
	"mos-device-mgr/internal/report/html"
	"mos-device-mgr/internal/report/lis"
	"mos-device-mgr/internal/report/yamldoc"
)

// Registry manages summary writers for different formats.
type Registry struct {
	writers map[string]RecordWriter
}

// NewRegistry creates a registry with the lis, excel, html and yaml writers.
// If timezone is nil, UTC is used. htmlTemplatePath is optional; if empty,
// the HTML writer uses its embedded template.
func NewRegistry(timezone *time.Location, htmlTemplatePath string) *Registry {
	if timezone == nil {
		timezone = time.UTC
	}

	r := &Registry{
		writers: make(map[string]RecordWriter),
	}
	r.register(lis.NewWriter())
	r.register(excel.NewWriter(timezone))
	r.register(html.NewWriter(timezone, htmlTemplatePath))
	r.register(yamldoc.NewWriter())

	return r
}

func (r *Registry) register(w RecordWriter) {
	r.writers[w.Format()] = w
}

// Get returns a writer for the specified format.
// Format names are case-insensitive (e.g., "Excel", "EXCEL", "excel" all work).
func (r *Registry) Get(format string) (RecordWriter, error) {
	normalizedFormat := strings.ToLower(strings.TrimSpace(format))

	writer, ok := r.writers[normalizedFormat]
	if !ok {
		return nil, fmt.Errorf("unsupported output format %q, supported formats: %s",
			format, strings.Join(r.GetAll(), ", "))
	}

	return writer, nil
}

// GetAll returns all supported format names in sorted order.
func (r *Registry) GetAll() []string {
	formats := make([]string, 0, len(r.writers))
	for format := range r.writers {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}
