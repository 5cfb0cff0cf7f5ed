package normalizer

import (
	"regexp"
	"strings"

	"vlclean/internal/models"
)

// SwapPolicy selects how a detected column displacement is corrected.
type SwapPolicy string

// Supported swap policies.
const (
	// SwapPolicyTable swaps the suffix and expiry columns for every row
	// once any row carries a date-shaped suffix. This treats the error as
	// a whole-column mis-entry, which is how the sheets are produced in
	// practice.
	SwapPolicyTable SwapPolicy = "table"
	// SwapPolicyRow swaps only the rows whose suffix cell matches the
	// marker.
	SwapPolicyRow SwapPolicy = "row"
)

// isoDatePattern matches a strict YYYY-MM-DD value.
var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DisplacementCorrector detects and fixes sheets where the identification
// suffix column and the permit expiry column were entered swapped. It must
// run before suffix truncation and date formatting.
type DisplacementCorrector struct {
	policy       SwapPolicy
	strictMarker bool
}

// NewDisplacementCorrector creates a corrector. With strictMarker the
// date-shaped test is a full YYYY-MM-DD match; without it any hyphen in the
// suffix cell counts.
func NewDisplacementCorrector(policy SwapPolicy, strictMarker bool) *DisplacementCorrector {
	if policy == "" {
		policy = SwapPolicyTable
	}

	return &DisplacementCorrector{
		policy:       policy,
		strictMarker: strictMarker,
	}
}

// dateShaped reports whether a suffix cell looks like it holds a date.
func (d *DisplacementCorrector) dateShaped(s string) bool {
	s = strings.TrimSpace(s)

	if d.strictMarker {
		return isoDatePattern.MatchString(s)
	}

	return strings.Contains(s, "-")
}

// ColumnsSwapped reports whether the whole table should be treated as having
// the suffix and expiry columns swapped: true once any row's suffix cell is
// date-shaped.
func (d *DisplacementCorrector) ColumnsSwapped(records []*models.VisitorRecord) bool {
	for _, r := range records {
		if d.dateShaped(r.IDSuffix) {
			return true
		}
	}

	return false
}

// Apply corrects the displacement in place according to the configured
// policy.
func (d *DisplacementCorrector) Apply(records []*models.VisitorRecord) {
	if d.policy == SwapPolicyRow {
		for _, r := range records {
			if d.dateShaped(r.IDSuffix) {
				r.IDSuffix, r.PermitExpiry = r.PermitExpiry, r.IDSuffix
			}
		}

		return
	}

	if !d.ColumnsSwapped(records) {
		return
	}

	for _, r := range records {
		r.IDSuffix, r.PermitExpiry = r.PermitExpiry, r.IDSuffix
	}
}
