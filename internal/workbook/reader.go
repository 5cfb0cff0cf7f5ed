// Package workbook reads raw visitor sheets from xlsx bytes and renders
// cleaned results back out.
package workbook

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"vlclean/internal/models"
)

// Structural input errors. Row-level problems never surface here; only a
// missing or empty visitor table aborts the run.
var (
	ErrSheetNotFound = errors.New("visitor sheet not found in workbook")
	ErrEmptySheet    = errors.New("visitor sheet has no data rows")
)

// Reader extracts visitor records from an uploaded workbook.
type Reader struct {
	sheetName string
}

// NewReader creates a reader for the given sheet name.
func NewReader(sheetName string) *Reader {
	return &Reader{sheetName: sheetName}
}

// Read parses workbook bytes and returns the raw records of the visitor
// sheet in input order. The header row is skipped; every data row is mapped
// positionally onto the canonical 13-column schema.
func (r *Reader) Read(data []byte) ([]*models.VisitorRecord, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	idx, err := f.GetSheetIndex(r.sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up sheet %q: %w", r.sheetName, err)
	}

	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, r.sheetName)
	}

	rows, err := f.GetRows(r.sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", r.sheetName, err)
	}

	if len(rows) <= 1 {
		return nil, fmt.Errorf("%w: %q", ErrEmptySheet, r.sheetName)
	}

	records := make([]*models.VisitorRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, models.FromRow(row))
	}

	return records, nil
}
