package normalizer

import (
	"testing"

	"vlclean/internal/models"
)

func TestNewProcessor(t *testing.T) {
	p := NewProcessor(Options{})
	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}
}

func TestProcessor_Process(t *testing.T) {
	p := NewProcessor(Options{StrictMarker: true})

	raw := []*models.VisitorRecord{
		{Organization: "Zeta", FullName: "ravi kumar", IDType: "FIN", Nationality: "indian", Gender: "M", VehiclePlates: "SGB2B"},
		{Organization: "Acme", FullName: "lim wei", IDType: "NRIC", Nationality: "Singaporean", Gender: "F", VehiclePlates: "SGA1A/SGB2B"},
		{Organization: "Acme", FullName: "chen jing", IDType: "NRIC", Nationality: "Chinese", Gender: "F"},
		{Organization: "Ghost Org"}, // no visitor details, dropped
	}

	result := p.Process(raw)

	if len(result.Records) != 3 {
		t.Fatalf("len(Records) = %d, want 3", len(result.Records))
	}

	if result.Dropped != 1 {
		t.Errorf("Dropped = %d, want 1", result.Dropped)
	}

	// Acme before Zeta; within Acme, Singapore before the unflagged bucket.
	wantOrder := []string{"Lim Wei", "Chen Jing", "Ravi Kumar"}
	for i, want := range wantOrder {
		if result.Records[i].FullName != want {
			t.Errorf("Records[%d] = %q, want %q", i, result.Records[i].FullName, want)
		}
	}

	// Serials are dense over the final order.
	for i, r := range result.Records {
		if r.Serial != i+1 {
			t.Errorf("Records[%d].Serial = %d, want %d", i, r.Serial, i+1)
		}
	}

	// Chen Jing holds an NRIC but is neither Singaporean nor a PR.
	if len(result.Flagged) != 1 || result.Flagged[0] != 1 {
		t.Errorf("Flagged = %v, want [1]", result.Flagged)
	}

	if result.VehicleSummary != "SGA1A;SGB2B" {
		t.Errorf("VehicleSummary = %q, want SGA1A;SGB2B", result.VehicleSummary)
	}

	if result.VisitorCount != 3 {
		t.Errorf("VisitorCount = %d, want 3", result.VisitorCount)
	}
}

func TestProcessor_Process_RowFilter(t *testing.T) {
	p := NewProcessor(Options{})

	raw := []*models.VisitorRecord{
		// Organization set but no visitor details: dropped entirely.
		{Serial: 1, Organization: "Acme", VehiclePlates: "SGA1A"},
		// Organization blank but a name present: retained.
		{Serial: 2, FullName: "lim wei"},
	}

	result := p.Process(raw)

	if len(result.Records) != 1 {
		t.Fatalf("len(Records) = %d, want 1", len(result.Records))
	}

	if result.Records[0].FullName != "Lim Wei" {
		t.Errorf("Records[0].FullName = %q, want Lim Wei", result.Records[0].FullName)
	}

	// The dropped row's plate never reaches the summary.
	if result.VehicleSummary != "" {
		t.Errorf("VehicleSummary = %q, want empty", result.VehicleSummary)
	}
}

func TestProcessor_Process_SwappedColumns(t *testing.T) {
	p := NewProcessor(Options{StrictMarker: true})

	raw := []*models.VisitorRecord{
		{Organization: "Acme", FullName: "ravi kumar", IDType: "WORK PERMIT", Nationality: "indian",
			IDSuffix: "2026-09-30", PermitExpiry: "567A"},
	}

	result := p.Process(raw)

	r := result.Records[0]
	if r.IDSuffix != "567A" {
		t.Errorf("IDSuffix = %q, want 567A", r.IDSuffix)
	}

	if r.PermitExpiry != "2026-09-30" {
		t.Errorf("PermitExpiry = %q, want 2026-09-30", r.PermitExpiry)
	}

	if len(result.Flagged) != 0 {
		t.Errorf("Flagged = %v, want none after correction", result.Flagged)
	}
}

func TestProcessor_Process_Empty(t *testing.T) {
	p := NewProcessor(Options{})

	result := p.Process(nil)

	if len(result.Records) != 0 {
		t.Errorf("len(Records) = %d, want 0", len(result.Records))
	}

	if result.VehicleSummary != "" {
		t.Errorf("VehicleSummary = %q, want empty", result.VehicleSummary)
	}
}
