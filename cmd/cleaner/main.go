// Package main provides the cleaner command that reads a visitor list
// workbook, normalizes and validates it, and writes the cleaned workbook.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"vlclean/internal/config"
	"vlclean/internal/logger"
	"vlclean/internal/normalizer"
	"vlclean/internal/preview"
	"vlclean/internal/workbook"
)

func main() {
	inputPath := flag.String("input", "", "Path to the uploaded .xlsx file")
	outputPath := flag.String("output", "", "Path for the cleaned .xlsx (default: timestamped name in the output dir)")
	configPath := flag.String("config", "", "Path to YAML config (optional)")
	sheetName := flag.String("sheet", "", "Visitor sheet name override")
	previewRows := flag.Int("preview", 0, "Print the first N cleaned rows to stdout")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Usage: cleaner -input <visitors.xlsx> [-output <cleaned.xlsx>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Configuration
	cfg := config.DefaultConfig()

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Config error: %v\n", err)
			os.Exit(1)
		}

		cfg = loaded
	}

	if *sheetName != "" {
		cfg.Cleaner.Input.SheetName = *sheetName
	}

	log := logger.New(cfg.Cleaner.Logging.Level, cfg.Cleaner.Logging.Format)

	log.Info("🚀 Starting visitor list cleaning")
	log.Info(fmt.Sprintf("📂 Source: %s", *inputPath))

	// 1. Ingestion
	// ------------
	log.Info("Phase 1: Reading workbook...")

	startTime := time.Now()

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Read failed: %v", err))
		os.Exit(1)
	}

	reader := workbook.NewReader(cfg.Cleaner.Input.SheetName)

	records, err := reader.Read(data)
	if err != nil {
		if errors.Is(err, workbook.ErrSheetNotFound) {
			log.Error(fmt.Sprintf("❌ Sheet %q is missing; the upload must contain it", cfg.Cleaner.Input.SheetName))
		} else {
			log.Error(fmt.Sprintf("❌ Workbook read failed: %v", err))
		}

		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ Read %d rows in %v", len(records), time.Since(startTime)))

	// 2. Cleaning
	// -----------
	log.Info("Phase 2: Normalizing, sorting, validating...")

	processor := normalizer.NewProcessor(cfg.Options())
	result := processor.Process(records)

	if result.Dropped > 0 {
		log.Info(fmt.Sprintf("🧹 Dropped %d empty rows", result.Dropped))
	}

	log.Info(fmt.Sprintf("✅ Cleaned %d records, %d flagged for review", len(result.Records), len(result.Flagged)))

	// 3. Output
	// ---------
	log.Info("Phase 3: Writing cleaned workbook...")

	writer := workbook.NewWriter(cfg.Cleaner.Input.SheetName)

	out, err := writer.Write(result)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Write failed: %v", err))
		os.Exit(1)
	}

	target := *outputPath
	if target == "" {
		name := workbook.OutputFilename(cfg.Cleaner.Output.FilenamePrefix, time.Now())
		target = filepath.Join(cfg.Cleaner.Output.Dir, name)
	}

	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Error(fmt.Sprintf("❌ Failed to create output directory: %v", err))
			os.Exit(1)
		}
	}

	if err := os.WriteFile(target, out, 0644); err != nil {
		log.Error(fmt.Sprintf("❌ Failed to write output: %v", err))
		os.Exit(1)
	}

	if *previewRows > 0 {
		fmt.Print(preview.Render(result.Records, *previewRows))
	}

	fmt.Printf("✅ Total rows flagged for ID/Nationality mismatch: %d\n", len(result.Flagged))
	fmt.Printf("🚗 Vehicles: %s\n", result.VehicleSummary)
	fmt.Printf("💾 Saved to: %s\n", target)
}
