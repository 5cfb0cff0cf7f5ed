// Package normalizer provides the cleaning engine for visitor sheets:
// per-field normalization, displacement correction, priority ordering and
// identification consistency validation.
package normalizer

import (
	"vlclean/internal/models"
)

// Options configures the cleaning engine. The zero value means the package
// defaults for every knob.
type Options struct {
	// NationalitySynonyms maps adjectival forms to country names.
	NationalitySynonyms map[string]string
	// AffirmativeTokens are the residency values counting as PR.
	AffirmativeTokens []string
	// SwapPolicy selects table-wide or per-row displacement correction.
	SwapPolicy SwapPolicy
	// StrictMarker requires a full YYYY-MM-DD match to detect displacement
	// instead of any hyphen.
	StrictMarker bool
	// MobilePolicy selects length correction or plain digit stripping.
	MobilePolicy MobilePolicy
	// NationalityWhitelist, when non-empty, flags nationalities outside it.
	NationalityWhitelist []string
	// FlagDuplicateNames flags repeated full names.
	FlagDuplicateNames bool
}

// Result is the outcome of one cleaning run.
type Result struct {
	// Records in final order, normalized and renumbered.
	Records []*models.VisitorRecord
	// Flagged holds the indices into Records failing validation, sorted.
	Flagged []int
	// VehicleSummary is the deduplicated, sorted ";"-joined plate list.
	VehicleSummary string
	// VisitorCount is the number of records with an organization.
	VisitorCount int
	// Dropped is the number of input rows removed for having no details.
	Dropped int
}

// Processor runs the full cleaning pipeline over a batch of raw records.
type Processor struct {
	corrector   *DisplacementCorrector
	transformer *Transformer
	sorter      *Sorter
	validator   *Validator
}

// NewProcessor creates a processor from the given options.
func NewProcessor(opts Options) *Processor {
	fields := NewFieldNormalizer(opts.NationalitySynonyms, opts.AffirmativeTokens, opts.MobilePolicy)

	return &Processor{
		corrector:   NewDisplacementCorrector(opts.SwapPolicy, opts.StrictMarker),
		transformer: NewTransformer(fields),
		sorter:      NewSorter(fields),
		validator:   NewValidator(fields, opts.NationalityWhitelist, opts.FlagDuplicateNames),
	}
}

// Process cleans a batch: detail-less rows are dropped, the displacement
// correction decision is taken over the whole table, every field is
// normalized, records are ordered and renumbered, and validation flags are
// derived from the final order. The input slice is not reused.
func (p *Processor) Process(raw []*models.VisitorRecord) *Result {
	records := make([]*models.VisitorRecord, 0, len(raw))

	for _, r := range raw {
		if r != nil && r.HasVisitorDetails() {
			records = append(records, r)
		}
	}

	dropped := len(raw) - len(records)

	p.transformer.TransformAll(records, p.corrector)
	p.sorter.Sort(records)
	Renumber(records)

	return &Result{
		Records:        records,
		Flagged:        p.validator.Flags(records),
		VehicleSummary: VehicleSummary(records),
		VisitorCount:   VisitorCount(records),
		Dropped:        dropped,
	}
}
