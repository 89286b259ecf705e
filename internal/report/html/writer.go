// Package html provides HTML summary generation for the MOS device manager.
// It implements the report.RecordWriter interface to generate .html files
// listing the devices of a run.
package html

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mos-device-mgr/internal/model"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// Writer implements report.RecordWriter for HTML format.
type Writer struct {
	timezone     *time.Location
	templatePath string // User-defined template path (optional)
}

// TemplateData holds all data passed to the HTML template.
type TemplateData struct {
	Title       string
	Source      string
	BasePath    string
	ModelPrefix string
	Count       int
	Devices     []*DeviceData
	Version     string
	GeneratedAt string
}

// DeviceData represents a device formatted for template rendering.
type DeviceData struct {
	Index       int
	Host        string
	Port        int
	User        string
	XMLFile     string
	Namespace   string
	MountPoint  string
	MountPoint2 string
	OutputDir   string
	ModelName   string
	Depth       int // Number of segments in MountPoint2
}

// NewWriter creates a new HTML summary writer.
// If timezone is nil, it defaults to UTC.
// If templatePath is empty, the embedded default template will be used.
func NewWriter(timezone *time.Location, templatePath string) *Writer {
	if timezone == nil {
		timezone = time.UTC
	}
	return &Writer{
		timezone:     timezone,
		templatePath: templatePath,
	}
}

// Format returns the format identifier for this writer.
func (w *Writer) Format() string {
	return "html"
}

// Write generates an HTML page from the device set.
func (w *Writer) Write(set *model.DeviceSet, outputPath string) error {
	if set == nil {
		return fmt.Errorf("device set is nil")
	}

	// Ensure output path has .html extension
	if !strings.HasSuffix(strings.ToLower(outputPath), ".html") {
		outputPath = outputPath + ".html"
	}

	tmpl, err := w.loadTemplate()
	if err != nil {
		return fmt.Errorf("failed to load template: %w", err)
	}

	data := w.prepareTemplateData(set)

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := tmpl.Execute(file, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return nil
}

// loadTemplate loads the HTML template.
// It first tries to load a user-defined template, then falls back to the embedded default.
func (w *Writer) loadTemplate() (*template.Template, error) {
	funcMap := template.FuncMap{
		"indent": indent,
	}

	if w.templatePath != "" {
		if _, err := os.Stat(w.templatePath); err == nil {
			tmpl, err := template.New(filepath.Base(w.templatePath)).Funcs(funcMap).ParseFiles(w.templatePath)
			if err != nil {
				return nil, fmt.Errorf("failed to parse user template: %w", err)
			}
			return tmpl, nil
		}
		// User template not found, fall through to default
	}

	tmpl, err := template.New("default.html").Funcs(funcMap).ParseFS(embeddedTemplates, "templates/default.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}

// prepareTemplateData converts a DeviceSet to TemplateData for template rendering.
func (w *Writer) prepareTemplateData(set *model.DeviceSet) *TemplateData {
	devices := make([]*DeviceData, 0, len(set.Devices))
	for i, d := range set.Devices {
		devices = append(devices, &DeviceData{
			Index:       i + 1,
			Host:        d.Host,
			Port:        d.Port,
			User:        d.User,
			XMLFile:     d.XMLFile,
			Namespace:   d.Namespace,
			MountPoint:  d.MountPoint,
			MountPoint2: d.MountPoint2,
			OutputDir:   d.OutputDir,
			ModelName:   d.ModelName,
			Depth:       strings.Count(d.MountPoint2, "/") + 1,
		})
	}

	generatedAt := "-"
	if !set.GeneratedAt.IsZero() {
		generatedAt = set.GeneratedAt.In(w.timezone).Format("2006-01-02 15:04:05")
	}

	return &TemplateData{
		Title:       "MOS device summary",
		Source:      set.Source,
		BasePath:    set.BasePath,
		ModelPrefix: set.ModelPrefix,
		Count:       set.Count(),
		Devices:     devices,
		Version:     set.Version,
		GeneratedAt: generatedAt,
	}
}

// indent returns the left padding, in em, for a mount point of the given depth.
func indent(depth int) string {
	if depth <= 1 {
		return "0"
	}
	return fmt.Sprintf("%.1fem", float64(depth-1)*1.5)
}
