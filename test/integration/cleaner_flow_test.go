// Package integration exercises the full cleaning pipeline from workbook
// bytes in to workbook bytes out.
package integration

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"vlclean/internal/config"
	"vlclean/internal/models"
	"vlclean/internal/normalizer"
	"vlclean/internal/workbook"
)

// buildUpload assembles a raw upload the way users actually produce them:
// inconsistent casing, mixed separators, a swapped suffix/expiry pair and an
// all-blank visitor row.
func buildUpload(t *testing.T) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", "Visitor List"); err != nil {
		t.Fatalf("SetSheetName: %v", err)
	}

	rows := [][]interface{}{
		make([]interface{}, 0, models.ColumnCount),
		{"1", "SGX1234A/SGY5678B", "Zeta", "ravi KUMAR", "", "", "Work Permit", "2026-09-30", "888B", "indian", "", "m", "6591234567"},
		{"2", "", "Acme", "lim wei ling", "", "", "NRIC", "2025-12-01", "567A", "Singaporean", "", "F", "1234"},
		{"3", "SGY5678B, SGZ999C", "Acme", "chen jing", "", "", "FIN", "2027-01-15", "123X", "Chinese", "yes", "f", "9123456700"},
		{"4", "", "Ghost Org"},
	}

	for _, h := range models.Headers {
		rows[0] = append(rows[0], h)
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName: %v", err)
		}

		if err := f.SetSheetRow("Visitor List", cell, &rows[i]); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	return buf.Bytes()
}

func TestCleaningFlow(t *testing.T) {
	cfg := config.DefaultConfig()

	reader := workbook.NewReader(cfg.Cleaner.Input.SheetName)

	records, err := reader.Read(buildUpload(t))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	processor := normalizer.NewProcessor(cfg.Options())
	result := processor.Process(records)

	if len(result.Records) != 3 {
		t.Fatalf("len(Records) = %d, want 3 (blank row dropped)", len(result.Records))
	}

	// Acme's citizen sorts first, then Acme's PR, then Zeta's work permit
	// holder, each renumbered densely.
	wantNames := []string{"Lim Wei Ling", "Chen Jing", "Ravi Kumar"}
	for i, want := range wantNames {
		if result.Records[i].FullName != want {
			t.Errorf("Records[%d].FullName = %q, want %q", i, result.Records[i].FullName, want)
		}

		if result.Records[i].Serial != i+1 {
			t.Errorf("Records[%d].Serial = %d, want %d", i, result.Records[i].Serial, i+1)
		}
	}

	// The swapped suffix/expiry columns were corrected table-wide.
	for i, r := range result.Records {
		if len(r.IDSuffix) > 4 {
			t.Errorf("Records[%d].IDSuffix = %q, want <= 4 chars", i, r.IDSuffix)
		}

		if r.PermitExpiry == "" {
			t.Errorf("Records[%d].PermitExpiry empty after correction", i)
		}
	}

	// Chen Jing declares a FIN with affirmative residency.
	if len(result.Flagged) != 1 || result.Flagged[0] != 1 {
		t.Errorf("Flagged = %v, want [1]", result.Flagged)
	}

	if result.VehicleSummary != "SGX1234A;SGY5678B;SGZ999C" {
		t.Errorf("VehicleSummary = %q", result.VehicleSummary)
	}

	if result.VisitorCount != 3 {
		t.Errorf("VisitorCount = %d, want 3", result.VisitorCount)
	}

	// Mobile corrections: country code dropped, short number padded,
	// trailing zeros stripped.
	wantMobiles := []string{"00001234", "91234567", "91234567"}
	for i, want := range wantMobiles {
		if result.Records[i].MobileNumber != want {
			t.Errorf("Records[%d].MobileNumber = %q, want %q", i, result.Records[i].MobileNumber, want)
		}
	}

	// Write and reopen the output.
	out, err := workbook.NewWriter(cfg.Cleaner.Input.SheetName).Write(result)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("reopening output: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(cfg.Cleaner.Input.SheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}

	if rows[1][3] != "Lim Wei Ling" {
		t.Errorf("output rows[1][3] = %q, want Lim Wei Ling", rows[1][3])
	}

	vehicles, err := f.GetCellValue(cfg.Cleaner.Input.SheetName, "B7")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}

	if vehicles != "SGX1234A;SGY5678B;SGZ999C" {
		t.Errorf("vehicle trailer = %q", vehicles)
	}
}

func TestCleaningFlow_MissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	_, err = workbook.NewReader("Visitor List").Read(buf.Bytes())
	if !errors.Is(err, workbook.ErrSheetNotFound) {
		t.Errorf("Read error = %v, want ErrSheetNotFound", err)
	}
}
