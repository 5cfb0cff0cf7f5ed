package workbook

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"vlclean/internal/models"
)

// buildWorkbook returns xlsx bytes with the given rows under the sheet name.
func buildWorkbook(t *testing.T, sheetName string, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		t.Fatalf("SetSheetName: %v", err)
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName: %v", err)
		}

		if err := f.SetSheetRow(sheetName, cell, &rows[i]); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	return buf.Bytes()
}

func headerRow() []interface{} {
	row := make([]interface{}, len(models.Headers))
	for i, h := range models.Headers {
		row[i] = h
	}

	return row
}

func TestReader_Read(t *testing.T) {
	data := buildWorkbook(t, "Visitor List", [][]interface{}{
		headerRow(),
		{"1", "SGA1A", "Acme", "Lim Wei", "", "", "NRIC", "567A", "", "Singapore", "", "F", "91234567"},
		{"2", "", "Zeta", "Ravi Kumar"},
	})

	records, err := NewReader("Visitor List").Read(data)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}

	if records[0].FullName != "Lim Wei" {
		t.Errorf("records[0].FullName = %q, want Lim Wei", records[0].FullName)
	}

	if records[0].MobileNumber != "91234567" {
		t.Errorf("records[0].MobileNumber = %q, want 91234567", records[0].MobileNumber)
	}

	// The short row is padded to the full schema.
	if records[1].FullName != "Ravi Kumar" || records[1].Gender != "" {
		t.Errorf("records[1] not padded: %+v", records[1])
	}
}

func TestReader_Read_SheetMissing(t *testing.T) {
	data := buildWorkbook(t, "Wrong Sheet", [][]interface{}{headerRow()})

	_, err := NewReader("Visitor List").Read(data)
	if !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("Read error = %v, want ErrSheetNotFound", err)
	}
}

func TestReader_Read_EmptySheet(t *testing.T) {
	data := buildWorkbook(t, "Visitor List", [][]interface{}{headerRow()})

	_, err := NewReader("Visitor List").Read(data)
	if !errors.Is(err, ErrEmptySheet) {
		t.Errorf("Read error = %v, want ErrEmptySheet", err)
	}
}

func TestReader_Read_NotAWorkbook(t *testing.T) {
	if _, err := NewReader("Visitor List").Read([]byte("not xlsx")); err == nil {
		t.Error("Read succeeded on garbage bytes")
	}
}
