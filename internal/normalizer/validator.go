package normalizer

import (
	"sort"
	"strings"

	"vlclean/internal/models"
)

// Identification types with dedicated consistency rules. Anything else is
// free text and passes except for the residency exclusivity check.
const (
	idTypeNRIC       = "NRIC"
	idTypeFIN        = "FIN"
	idTypeWorkPermit = "WORK PERMIT"
)

// Validator re-derives, per record, whether the declared identification type
// is consistent with the declared nationality and residency status. It never
// mutates records; it only classifies them for human review.
type Validator struct {
	fields *FieldNormalizer

	// whitelist, when non-empty, restricts nationalities to a closed list.
	whitelist map[string]struct{}
	// flagDuplicateNames flags every record whose full name occurs more
	// than once, case-insensitively.
	flagDuplicateNames bool
}

// NewValidator creates a validator with the baseline rule set. The optional
// nationality whitelist and duplicate-name detection are off unless
// configured.
func NewValidator(fields *FieldNormalizer, whitelist []string, flagDuplicateNames bool) *Validator {
	var wl map[string]struct{}

	if len(whitelist) > 0 {
		wl = make(map[string]struct{}, len(whitelist))
		for _, n := range whitelist {
			wl[strings.ToLower(strings.TrimSpace(n))] = struct{}{}
		}
	}

	return &Validator{
		fields:             fields,
		whitelist:          wl,
		flagDuplicateNames: flagDuplicateNames,
	}
}

// Valid applies the baseline consistency rules to a normalized record:
//
//   - NRIC requires Singapore nationality or affirmative residency.
//   - FIN requires neither Singapore nationality nor affirmative residency.
//   - WORK PERMIT requires an expiry date.
//   - Affirmative residency is only meaningful for NRIC holders.
func (v *Validator) Valid(r *models.VisitorRecord) bool {
	idType := strings.ToUpper(strings.TrimSpace(r.IDType))
	singapore := r.Nationality == "Singapore"
	resident := v.fields.IsAffirmative(r.ResidencyStatus)

	switch idType {
	case idTypeNRIC:
		if !singapore && !resident {
			return false
		}
	case idTypeFIN:
		if singapore || resident {
			return false
		}
	case idTypeWorkPermit:
		if r.PermitExpiry == "" {
			return false
		}
	}

	if idType != idTypeNRIC && resident {
		return false
	}

	if v.whitelist != nil {
		if _, ok := v.whitelist[strings.ToLower(r.Nationality)]; !ok {
			return false
		}
	}

	return true
}

// Flags returns the sorted indices of records failing validation.
func (v *Validator) Flags(records []*models.VisitorRecord) []int {
	flagged := make(map[int]struct{})

	for i, r := range records {
		if !v.Valid(r) {
			flagged[i] = struct{}{}
		}
	}

	if v.flagDuplicateNames {
		seen := make(map[string][]int)

		for i, r := range records {
			key := strings.ToLower(r.FullName)
			if key != "" {
				seen[key] = append(seen[key], i)
			}
		}

		for _, indices := range seen {
			if len(indices) > 1 {
				for _, i := range indices {
					flagged[i] = struct{}{}
				}
			}
		}
	}

	out := make([]int, 0, len(flagged))
	for i := range flagged {
		out = append(out, i)
	}

	sort.Ints(out)

	return out
}
