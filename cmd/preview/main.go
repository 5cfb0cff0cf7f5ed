// Package main renders a visitor list workbook as an aligned console table,
// with the cleaning stamp if the file carries one.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"vlclean/internal/preview"
	"vlclean/internal/workbook"
	"vlclean/pkg/stamp"
)

func main() {
	inputPath := flag.String("input", "", "Path to a .xlsx file")
	sheetName := flag.String("sheet", "Visitor List", "Visitor sheet name")
	limit := flag.Int("limit", 10, "Maximum rows to print (0 for all)")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Usage: preview -input <visitors.xlsx> [-limit 10]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Read failed: %v\n", err)
		os.Exit(1)
	}

	reader := workbook.NewReader(*sheetName)

	records, err := reader.Read(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Print(preview.Render(records, *limit))

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()

	s, err := stamp.Read(f)
	if err != nil {
		if !errors.Is(err, stamp.ErrNoStamp) {
			fmt.Fprintf(os.Stderr, "⚠️  Stamp unreadable: %v\n", err)
		}

		return
	}

	fmt.Printf("🧾 Cleaned at %s: %d records, %d flagged\n",
		s.CleanedAt.Format("2006-01-02 15:04:05 MST"), s.Records, s.FlaggedRows)
}
