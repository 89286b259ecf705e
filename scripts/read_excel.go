//go:build ignore
// +build ignore

// This script reads and displays the contents of a device workbook for verification.
// Run with: go run scripts/read_excel.go [workbook.xlsx]
package main

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

func main() {
	path := "sample_devices.xlsx"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	defer f.Close()

	fmt.Println("Sheets:", f.GetSheetList())
	fmt.Println()

	// Summary sheet
	fmt.Println("=======================================")
	fmt.Println("  Summary")
	fmt.Println("=======================================")
	for row := 1; row <= 10; row++ {
		a, _ := f.GetCellValue("Summary", fmt.Sprintf("A%d", row))
		b, _ := f.GetCellValue("Summary", fmt.Sprintf("B%d", row))
		if a != "" || b != "" {
			fmt.Printf("  %-14s %s\n", a, b)
		}
	}
	fmt.Println()

	// Devices sheet
	rows, err := f.GetRows("Devices")
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	fmt.Println("=======================================")
	fmt.Println("  Devices")
	fmt.Println("=======================================")
	if len(rows) == 0 {
		fmt.Println("  (empty)")
		return
	}
	for i, h := range rows[0] {
		fmt.Printf("  [%d] %s\n", i+1, h)
	}
	fmt.Println()
	for _, row := range rows[1:] {
		// Relative mount point, output dir, model name
		if len(row) >= 9 {
			fmt.Printf("  %-36s %-10s %s\n", row[6], row[7], row[8])
		}
	}
	fmt.Println()
	fmt.Printf("Workbook check complete: %d device row(s) in %s\n", len(rows)-1, path)
}
