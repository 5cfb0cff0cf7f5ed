package normalizer

import (
	"testing"

	"vlclean/internal/models"
)

func TestVehicleSummary(t *testing.T) {
	records := []*models.VisitorRecord{
		{VehiclePlates: "A1;B2"},
		{VehiclePlates: "B2;C3"},
		{VehiclePlates: ""},
	}

	if got := VehicleSummary(records); got != "A1;B2;C3" {
		t.Errorf("VehicleSummary = %q, want A1;B2;C3", got)
	}
}

func TestVehicleSummary_CaseSensitiveDedup(t *testing.T) {
	records := []*models.VisitorRecord{
		{VehiclePlates: "sga1a;SGA1A"},
	}

	if got := VehicleSummary(records); got != "SGA1A;sga1a" {
		t.Errorf("VehicleSummary = %q, want SGA1A;sga1a", got)
	}
}

func TestVehicleSummary_Empty(t *testing.T) {
	if got := VehicleSummary(nil); got != "" {
		t.Errorf("VehicleSummary = %q, want empty", got)
	}
}

func TestVisitorCount(t *testing.T) {
	records := []*models.VisitorRecord{
		{Organization: "Acme"},
		{Organization: " "},
		{Organization: ""},
		{Organization: "Zeta"},
	}

	if got := VisitorCount(records); got != 2 {
		t.Errorf("VisitorCount = %d, want 2", got)
	}
}
