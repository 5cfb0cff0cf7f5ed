// Package preview renders cleaned visitor records as an aligned console table.
package preview

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"vlclean/internal/models"
)

// maxCellWidth caps a single column so one long organization name cannot
// blow up the whole table.
const maxCellWidth = 28

// Render formats up to limit records as a padded plain-text table with the
// canonical headers. A limit of zero or less renders every record.
func Render(records []*models.VisitorRecord, limit int) string {
	if limit <= 0 || limit > len(records) {
		limit = len(records)
	}

	rows := make([][]string, 0, limit+1)
	rows = append(rows, models.Headers)

	for _, r := range records[:limit] {
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.Serial),
			r.VehiclePlates,
			r.Organization,
			r.FullName,
			r.FirstName,
			r.RestOfName,
			r.IDType,
			r.IDSuffix,
			r.PermitExpiry,
			r.Nationality,
			r.ResidencyStatus,
			r.Gender,
			r.MobileNumber,
		})
	}

	// Column widths from the widest cell, display width not byte length.
	widths := make([]int, models.ColumnCount)

	for _, row := range rows {
		for i, cell := range row {
			w := runewidth.StringWidth(cell)
			if w > maxCellWidth {
				w = maxCellWidth
			}

			if w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder

	for rowIdx, row := range rows {
		parts := make([]string, len(row))
		for i, cell := range row {
			cell = runewidth.Truncate(cell, maxCellWidth, "…")
			parts[i] = cell + strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell))
		}

		b.WriteString(strings.TrimRight(strings.Join(parts, " | "), " "))
		b.WriteString("\n")

		if rowIdx == 0 {
			seps := make([]string, len(widths))
			for i, w := range widths {
				seps[i] = strings.Repeat("-", w)
			}

			b.WriteString(strings.Join(seps, "-+-"))
			b.WriteString("\n")
		}
	}

	if limit < len(records) {
		fmt.Fprintf(&b, "… %d more rows\n", len(records)-limit)
	}

	return b.String()
}
