package normalizer

import (
	"sort"

	"vlclean/internal/models"
)

// Processing priority buckets. Citizens and permanent residents clear the
// gate under a different process than short-term nationals, so they sort
// ahead of everyone else within an organization.
const (
	bucketSingapore = 1
	bucketResident  = 2
	bucketMalaysia  = 3
	bucketIndia     = 4
	bucketOther     = 5
)

// Sorter orders records by (organization, priority bucket, nationality,
// full name). The sort is stable, so equal keys keep their input order.
type Sorter struct {
	fields *FieldNormalizer
}

// NewSorter creates a sorter. The field normalizer supplies the affirmative
// residency test used for bucket assignment.
func NewSorter(fields *FieldNormalizer) *Sorter {
	return &Sorter{fields: fields}
}

// Bucket assigns the processing priority for a normalized record. Rules are
// evaluated in order, first match wins.
func (s *Sorter) Bucket(r *models.VisitorRecord) int {
	switch {
	case r.Nationality == "Singapore":
		return bucketSingapore
	case s.fields.IsAffirmative(r.ResidencyStatus):
		return bucketResident
	case r.Nationality == "Malaysia":
		return bucketMalaysia
	case r.Nationality == "India":
		return bucketIndia
	default:
		return bucketOther
	}
}

// Sort orders the records in place.
func (s *Sorter) Sort(records []*models.VisitorRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]

		if a.Organization != b.Organization {
			return a.Organization < b.Organization
		}

		ab, bb := s.Bucket(a), s.Bucket(b)
		if ab != bb {
			return ab < bb
		}

		if a.Nationality != b.Nationality {
			return a.Nationality < b.Nationality
		}

		return a.FullName < b.FullName
	})
}

// Renumber reassigns a dense 1..N serial sequence over the final order.
func Renumber(records []*models.VisitorRecord) {
	for i, r := range records {
		r.Serial = i + 1
	}
}
