//go:build ignore
// +build ignore

// This script generates a sample device workbook for manual verification.
// Run with: go run scripts/verify_excel.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"mos-device-mgr/internal/config"
	"mos-device-mgr/internal/model"
	"mos-device-mgr/internal/report/excel"
	"mos-device-mgr/internal/service"
)

const sampleLaunch = `# host port user xmlfile namespace mountpoint
coil-ctl  4841 nemo /config/coil/ps.xml            snemo/coil        SuperNEMO:/Demonstrator/CMS/Coil/PS/
calo-ctl  4842 nemo config/calo/hv/crate.xml       snemo/calo/hv     SuperNEMO:/Demonstrator/CMS/Calorimeter/HV/Crate_0
calo-ctl  4843 nemo config/calo/hv/board.v2.xml    snemo/calo/hv     SuperNEMO:/Demonstrator/CMS/Calorimeter/HV/Crate_0/Board_3
track-ctl 4844 nemo config/tracker/hv.xml          snemo/tracker     SuperNEMO:/Demonstrator/CMS/Tracker/HV
dbm-ctl   4845 nemo /config/dbm.xml                snemo/dbm         SuperNEMO:/Demonstrator/CMS/DBM
bench     4900 dev  bench.xml                      lab/bench         SuperNEMO:/TestBench/Board
`

func main() {
	set, err := createSampleData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building sample data: %v\n", err)
		os.Exit(1)
	}

	writer := excel.NewWriter(time.UTC)

	outputPath := filepath.Join(".", "sample_devices.xlsx")
	if err := writer.Write(set, outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating workbook: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sample workbook generated: %s\n", outputPath)
	fmt.Printf("Devices: %d under %s\n", set.Count(), set.BasePath)
	fmt.Println("Open the file in a spreadsheet application to review the styles.")
}

// createSampleData runs the sample launch text through the parser and enricher.
func createSampleData() (*model.DeviceSet, error) {
	logger := zerolog.Nop()
	parser := service.NewParser(config.DefaultBasePath, logger)
	enricher := service.NewEnricher(config.DefaultBasePath, config.DefaultModelPrefix, logger)

	records, err := parser.ParseReader(strings.NewReader(sampleLaunch), "sample")
	if err != nil {
		return nil, err
	}
	records, err = enricher.Enrich(records)
	if err != nil {
		return nil, err
	}

	return &model.DeviceSet{
		Source:      "sample",
		BasePath:    config.DefaultBasePath,
		ModelPrefix: config.DefaultModelPrefix,
		GeneratedAt: time.Now().UTC(),
		Version:     "sample",
		Devices:     records,
	}, nil
}
