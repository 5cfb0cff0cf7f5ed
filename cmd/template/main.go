// Package main generates a blank visitor list upload template with the
// canonical headers.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"vlclean/internal/models"
)

func main() {
	outputPath := flag.String("output", "sample_template.xlsx", "Path for the template workbook")
	sheetName := flag.String("sheet", "Visitor List", "Visitor sheet name")
	example := flag.Bool("example", false, "Include an example data row")
	flag.Parse()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", *sheetName); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to name sheet: %v\n", err)
		os.Exit(1)
	}

	header := make([]interface{}, len(models.Headers))
	for i, h := range models.Headers {
		header[i] = h
	}

	if err := f.SetSheetRow(*sheetName, "A1", &header); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to write headers: %v\n", err)
		os.Exit(1)
	}

	if *example {
		row := []interface{}{
			1, "SGX1234A", "Acme Pte Ltd", "Tan Ah Kow", "Tan", "Ah Kow",
			"NRIC", "567A", "", "Singapore", "", "Male", "91234567",
		}

		if err := f.SetSheetRow(*sheetName, "A2", &row); err != nil {
			fmt.Fprintf(os.Stderr, "❌ Failed to write example row: %v\n", err)
			os.Exit(1)
		}
	}

	if err := f.SetColWidth(*sheetName, "A", "M", 20); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to set column widths: %v\n", err)
		os.Exit(1)
	}

	if err := f.SaveAs(*outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to save template: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Template saved to: %s\n", *outputPath)
}
