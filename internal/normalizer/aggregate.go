package normalizer

import (
	"sort"
	"strings"

	"vlclean/internal/models"
)

// VehicleSummary returns every plate referenced across the records as a
// single ";"-joined string: tokens trimmed, empties dropped, deduplicated
// case-sensitively, sorted ascending.
func VehicleSummary(records []*models.VisitorRecord) string {
	seen := make(map[string]struct{})

	for _, r := range records {
		if r.VehiclePlates == "" {
			continue
		}

		for _, tok := range strings.Split(r.VehiclePlates, ";") {
			tok = strings.TrimSpace(tok)
			if tok != "" {
				seen[tok] = struct{}{}
			}
		}
	}

	plates := make([]string, 0, len(seen))
	for p := range seen {
		plates = append(plates, p)
	}

	sort.Strings(plates)

	return strings.Join(plates, ";")
}

// VisitorCount returns the number of records with a non-blank organization.
func VisitorCount(records []*models.VisitorRecord) int {
	count := 0

	for _, r := range records {
		if strings.TrimSpace(r.Organization) != "" {
			count++
		}
	}

	return count
}
