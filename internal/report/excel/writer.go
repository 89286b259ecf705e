// Package excel provides Excel summary generation for the MOS device manager.
// It implements the report.RecordWriter interface to generate .xlsx files
// with a run summary sheet and one row per device.
package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"mos-device-mgr/internal/model"
)

const (
	// Sheet names
	sheetSummary = "Summary"
	sheetDevices = "Devices"

	// Default sheet to remove
	defaultSheet = "Sheet1"

	// Colors (RGB without #)
	colorHeaderBg = "4472C4" // Blue background for header
	colorHeaderFg = "FFFFFF" // White text for header
	colorStripeBg = "F2F2F2" // Light grey for alternate rows

	// Column widths
	defaultColWidth = 15.0
	wideColWidth    = 45.0
	narrowColWidth  = 8.0
)

// deviceColumns lists the Devices sheet columns in order.
var deviceColumns = []struct {
	header string
	width  float64
	value  func(d *model.DeviceRecord) interface{}
}{
	{"Host", defaultColWidth, func(d *model.DeviceRecord) interface{} { return d.Host }},
	{"Port", narrowColWidth, func(d *model.DeviceRecord) interface{} { return d.Port }},
	{"User", defaultColWidth, func(d *model.DeviceRecord) interface{} { return d.User }},
	{"XML file", wideColWidth, func(d *model.DeviceRecord) interface{} { return d.XMLFile }},
	{"Namespace", defaultColWidth, func(d *model.DeviceRecord) interface{} { return d.Namespace }},
	{"Mount point", wideColWidth, func(d *model.DeviceRecord) interface{} { return d.MountPoint }},
	{"Relative mount point", wideColWidth, func(d *model.DeviceRecord) interface{} { return d.MountPoint2 }},
	{"Output dir", defaultColWidth, func(d *model.DeviceRecord) interface{} { return d.OutputDir }},
	{"Model name", wideColWidth, func(d *model.DeviceRecord) interface{} { return d.ModelName }},
}

// Writer implements report.RecordWriter for Excel format.
type Writer struct {
	timezone *time.Location
}

// NewWriter creates a new Excel summary writer.
// If timezone is nil, it defaults to UTC.
func NewWriter(timezone *time.Location) *Writer {
	if timezone == nil {
		timezone = time.UTC
	}
	return &Writer{
		timezone: timezone,
	}
}

// Format returns the format identifier for this writer.
func (w *Writer) Format() string {
	return "excel"
}

// Write generates an Excel workbook from the device set.
func (w *Writer) Write(set *model.DeviceSet, outputPath string) error {
	if set == nil {
		return fmt.Errorf("device set is nil")
	}

	// Ensure output path has .xlsx extension
	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath = outputPath + ".xlsx"
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := w.createSummarySheet(f, set); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	if err := w.createDevicesSheet(f, set); err != nil {
		return fmt.Errorf("failed to create devices sheet: %w", err)
	}

	// Sheet1 always exists in a new file
	_ = f.DeleteSheet(defaultSheet)

	idx, err := f.GetSheetIndex(sheetDevices)
	if err == nil {
		f.SetActiveSheet(idx)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}

	return nil
}

// createSummarySheet creates the run summary worksheet.
func (w *Writer) createSummarySheet(f *excelize.File, set *model.DeviceSet) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return err
	}

	headerStyle, err := w.createHeaderStyle(f)
	if err != nil {
		return err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return err
	}

	f.SetColWidth(sheetSummary, "A", "A", 20)
	f.SetColWidth(sheetSummary, "B", "B", 50)

	f.MergeCell(sheetSummary, "A1", "B1")
	f.SetCellValue(sheetSummary, "A1", "MOS device summary")
	f.SetCellStyle(sheetSummary, "A1", "B1", titleStyle)
	f.SetRowHeight(sheetSummary, 1, 28)

	summaryData := []struct {
		label string
		value interface{}
	}{
		{"Launch file", set.Source},
		{"Base path", set.BasePath},
		{"Model prefix", set.ModelPrefix},
		{"Devices", set.Count()},
		{"Generated at", formatTime(set.GeneratedAt, w.timezone)},
	}
	if set.Version != "" {
		summaryData = append(summaryData, struct {
			label string
			value interface{}
		}{"Tool version", set.Version})
	}

	for i, item := range summaryData {
		row := i + 3 // Start from row 3
		labelCell := fmt.Sprintf("A%d", row)
		f.SetCellValue(sheetSummary, labelCell, item.label)
		f.SetCellValue(sheetSummary, fmt.Sprintf("B%d", row), item.value)
		f.SetCellStyle(sheetSummary, labelCell, labelCell, headerStyle)
	}

	return nil
}

// createDevicesSheet creates the device table worksheet.
func (w *Writer) createDevicesSheet(f *excelize.File, set *model.DeviceSet) error {
	if _, err := f.NewSheet(sheetDevices); err != nil {
		return err
	}

	headerStyle, err := w.createHeaderStyle(f)
	if err != nil {
		return err
	}

	stripeStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{colorStripeBg},
			Pattern: 1,
		},
	})
	if err != nil {
		return err
	}

	for i, col := range deviceColumns {
		name := columnName(i + 1)
		f.SetCellValue(sheetDevices, name+"1", col.header)
		f.SetColWidth(sheetDevices, name, name, col.width)
	}
	lastCol := columnName(len(deviceColumns))
	f.SetCellStyle(sheetDevices, "A1", lastCol+"1", headerStyle)
	f.SetPanes(sheetDevices, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	for i, device := range set.Devices {
		row := i + 2
		for j, col := range deviceColumns {
			f.SetCellValue(sheetDevices, fmt.Sprintf("%s%d", columnName(j+1), row), col.value(device))
		}
		if i%2 == 1 {
			f.SetCellStyle(sheetDevices, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), stripeStyle)
		}
	}

	if len(set.Devices) > 0 {
		f.AutoFilter(sheetDevices, fmt.Sprintf("A1:%s%d", lastCol, len(set.Devices)+1), nil)
	}

	return nil
}

// Helper functions

func (w *Writer) createHeaderStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Size:  11,
			Color: colorHeaderFg,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{colorHeaderBg},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
}

// columnName converts a 1-based column index to Excel column name (A, B, ..., Z, AA, AB, ...).
func columnName(index int) string {
	result := ""
	for index > 0 {
		index--
		result = string(rune('A'+index%26)) + result
		index /= 26
	}
	return result
}

// formatTime renders t in tz, or "-" for the zero time.
func formatTime(t time.Time, tz *time.Location) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(tz).Format("2006-01-02 15:04:05")
}
