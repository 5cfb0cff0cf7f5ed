package workbook

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"vlclean/internal/models"
	"vlclean/internal/normalizer"
	"vlclean/pkg/stamp"
)

// Column positions (1-based) of the cells highlighted on flagged rows.
const (
	idTypeColumn      = 7
	nationalityColumn = 10
)

// flagFillColor is the solid fill applied to inconsistent cells for review.
const flagFillColor = "FFFF00"

// Writer renders a cleaning result as a styled workbook.
type Writer struct {
	sheetName string
}

// NewWriter creates a writer targeting the given sheet name.
func NewWriter(sheetName string) *Writer {
	return &Writer{sheetName: sheetName}
}

// Write renders the cleaned records, highlights flagged rows, appends the
// vehicle and visitor-count trailer rows, and returns the workbook bytes.
func (w *Writer) Write(result *normalizer.Result) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", w.sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(models.Headers))
	for i, h := range models.Headers {
		header[i] = h
	}

	if err := f.SetSheetRow(w.sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range result.Records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute row cell: %w", err)
		}

		row := r.ToRow()
		if err := f.SetSheetRow(w.sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := w.highlightFlags(f, result.Flagged); err != nil {
		return nil, err
	}

	if err := w.writeTrailers(f, result); err != nil {
		return nil, err
	}

	if err := w.applyLayout(f); err != nil {
		return nil, err
	}

	if err := stamp.Apply(f, stamp.Stamp{
		CleanedAt:   time.Now(),
		Records:     len(result.Records),
		FlaggedRows: len(result.Flagged),
	}); err != nil {
		return nil, fmt.Errorf("failed to stamp workbook: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	return buf.Bytes(), nil
}

// highlightFlags fills the identification type and nationality cells of the
// flagged rows so a reviewer can find them.
func (w *Writer) highlightFlags(f *excelize.File, flagged []int) error {
	if len(flagged) == 0 {
		return nil
	}

	styleID, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{flagFillColor}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create highlight style: %w", err)
	}

	for _, idx := range flagged {
		row := idx + 2 // data starts below the header

		for _, col := range []int{idTypeColumn, nationalityColumn} {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return fmt.Errorf("failed to compute flag cell: %w", err)
			}

			if err := f.SetCellStyle(w.sheetName, cell, cell, styleID); err != nil {
				return fmt.Errorf("failed to highlight %s: %w", cell, err)
			}
		}
	}

	return nil
}

// writeTrailers appends the vehicle summary and visitor count below the data,
// separated from it by one blank row.
func (w *Writer) writeTrailers(f *excelize.File, result *normalizer.Result) error {
	next := len(result.Records) + 3

	trailers := []struct {
		label string
		value interface{}
	}{
		{"Vehicles", result.VehicleSummary},
		{"Total Visitors", result.VisitorCount},
	}

	for _, t := range trailers {
		labelCell, err := excelize.CoordinatesToCellName(2, next)
		if err != nil {
			return fmt.Errorf("failed to compute trailer cell: %w", err)
		}

		valueCell, err := excelize.CoordinatesToCellName(2, next+1)
		if err != nil {
			return fmt.Errorf("failed to compute trailer cell: %w", err)
		}

		if err := f.SetCellValue(w.sheetName, labelCell, t.label); err != nil {
			return fmt.Errorf("failed to write trailer label: %w", err)
		}

		if err := f.SetCellValue(w.sheetName, valueCell, t.value); err != nil {
			return fmt.Errorf("failed to write trailer value: %w", err)
		}

		next += 2
	}

	return nil
}

// applyLayout sets readable column widths and freezes the header row.
func (w *Writer) applyLayout(f *excelize.File) error {
	widths := []struct {
		start, end string
		width      float64
	}{
		{"A", "A", 6},
		{"B", "B", 22},
		{"C", "F", 26},
		{"G", "I", 18},
		{"J", "M", 14},
	}

	for _, c := range widths {
		if err := f.SetColWidth(w.sheetName, c.start, c.end, c.width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if err := f.SetPanes(w.sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	return nil
}

// OutputFilename builds the timestamped name for a cleaned workbook.
func OutputFilename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", prefix, now.Format("20060102_150405"))
}
