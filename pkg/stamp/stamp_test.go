package stamp

import (
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestApplyRead_RoundTrip(t *testing.T) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	in := Stamp{
		CleanedAt:   time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC),
		Records:     42,
		FlaggedRows: 3,
	}

	if err := Apply(f, in); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	out, err := Read(f)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}

	if !out.CleanedAt.Equal(in.CleanedAt) {
		t.Errorf("CleanedAt = %v, want %v", out.CleanedAt, in.CleanedAt)
	}

	if out.Records != 42 {
		t.Errorf("Records = %d, want 42", out.Records)
	}

	if out.FlaggedRows != 3 {
		t.Errorf("FlaggedRows = %d, want 3", out.FlaggedRows)
	}
}

func TestRead_NoStamp(t *testing.T) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if _, err := Read(f); !errors.Is(err, ErrNoStamp) {
		t.Errorf("Read error = %v, want ErrNoStamp", err)
	}
}

func TestRead_Malformed(t *testing.T) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetDocProps(&excelize.DocProperties{
		Creator:     Creator,
		Description: "cleaned_at: yesterday",
	}); err != nil {
		t.Fatalf("SetDocProps: %v", err)
	}

	if _, err := Read(f); !errors.Is(err, ErrMalformedStamp) {
		t.Errorf("Read error = %v, want ErrMalformedStamp", err)
	}
}
