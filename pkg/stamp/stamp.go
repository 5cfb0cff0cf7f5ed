// Package stamp records cleaning provenance in workbook document properties.
package stamp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Creator is the application name written into stamped workbooks.
const Creator = "vlclean"

// Stamp read/write errors.
var (
	ErrNoStamp        = errors.New("workbook carries no cleaning stamp")
	ErrMalformedStamp = errors.New("malformed cleaning stamp")
)

// Stamp describes one cleaning run.
type Stamp struct {
	CleanedAt   time.Time
	Records     int
	FlaggedRows int
}

// Apply writes the stamp into the workbook's document properties. A reviewer
// (or a later run) can tell a cleaned file from a raw upload without opening
// the sheet.
func Apply(f *excelize.File, s Stamp) error {
	desc := strings.Join([]string{
		"cleaned_at: " + s.CleanedAt.UTC().Format(time.RFC3339),
		"records: " + strconv.Itoa(s.Records),
		"flagged_rows: " + strconv.Itoa(s.FlaggedRows),
	}, "\n")

	if err := f.SetDocProps(&excelize.DocProperties{
		Creator:        Creator,
		LastModifiedBy: Creator,
		Description:    desc,
	}); err != nil {
		return fmt.Errorf("failed to set document properties: %w", err)
	}

	return nil
}

// Read extracts the stamp from a workbook's document properties.
func Read(f *excelize.File) (*Stamp, error) {
	props, err := f.GetDocProps()
	if err != nil {
		return nil, fmt.Errorf("failed to read document properties: %w", err)
	}

	if props.Creator != Creator || props.Description == "" {
		return nil, ErrNoStamp
	}

	s := &Stamp{}

	for _, line := range strings.Split(props.Description, "\n") {
		parts := strings.SplitN(strings.TrimSpace(line), ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "cleaned_at":
			t, err := time.Parse(time.RFC3339, value)
			if err != nil {
				return nil, fmt.Errorf("%w: bad cleaned_at %q", ErrMalformedStamp, value)
			}

			s.CleanedAt = t
		case "records":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("%w: bad records %q", ErrMalformedStamp, value)
			}

			s.Records = n
		case "flagged_rows":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("%w: bad flagged_rows %q", ErrMalformedStamp, value)
			}

			s.FlaggedRows = n
		}
	}

	if s.CleanedAt.IsZero() {
		return nil, fmt.Errorf("%w: missing cleaned_at", ErrMalformedStamp)
	}

	return s, nil
}
