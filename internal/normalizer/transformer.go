package normalizer

import (
	"vlclean/internal/models"
)

// Transformer applies the per-field normalization rules to a record.
type Transformer struct {
	fields *FieldNormalizer
}

// NewTransformer creates a transformer around the given field normalizer.
func NewTransformer(fields *FieldNormalizer) *Transformer {
	return &Transformer{fields: fields}
}

// Transform normalizes a record in place. The first/rest name cells are
// rederived from the full name, so whatever the sheet carried there is
// overwritten. Displacement correction is a table-wide concern and must
// already have run.
func (t *Transformer) Transform(r *models.VisitorRecord) {
	first, rest := t.fields.SplitName(r.FullName)

	r.FirstName = first
	r.RestOfName = rest

	if rest != "" {
		r.FullName = first + " " + rest
	} else {
		r.FullName = first
	}

	r.VehiclePlates = t.fields.Plates(r.VehiclePlates)
	r.Organization = t.fields.Cell(r.Organization)
	r.IDType = t.fields.Cell(r.IDType)
	r.IDSuffix = t.fields.Suffix(r.IDSuffix)
	r.PermitExpiry = t.fields.ExpiryDate(r.PermitExpiry)
	r.Nationality = t.fields.Nationality(r.Nationality)
	r.ResidencyStatus = t.fields.Residency(r.ResidencyStatus)
	r.Gender = t.fields.Gender(r.Gender)
	r.MobileNumber = t.fields.Mobile(r.MobileNumber)
}

// TransformAll runs displacement correction once over the whole table, then
// normalizes every record.
func (t *Transformer) TransformAll(records []*models.VisitorRecord, corrector *DisplacementCorrector) {
	corrector.Apply(records)

	for _, r := range records {
		t.Transform(r)
	}
}
