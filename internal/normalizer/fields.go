package normalizer

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MobilePolicy selects how mobile numbers with an off-length digit count are
// corrected after non-digits are stripped.
type MobilePolicy string

// Supported mobile number policies.
const (
	// MobilePolicyCorrect pads short numbers with leading zeros and trims
	// long numbers (trailing zero padding first, then country-code digits).
	MobilePolicyCorrect MobilePolicy = "correct"
	// MobilePolicyStripOnly only removes non-digit characters.
	MobilePolicyStripOnly MobilePolicy = "strip_only"
)

// mobileLength is the local subscriber number length all mobile numbers are
// corrected to under MobilePolicyCorrect.
const mobileLength = 8

// DefaultNationalitySynonyms maps lowercased adjectival nationality forms to
// country names. Lookups are case-insensitive; misses pass through unchanged.
var DefaultNationalitySynonyms = map[string]string{
	"chinese":     "China",
	"singaporean": "Singapore",
	"malaysian":   "Malaysia",
	"indian":      "India",
}

// DefaultAffirmativeTokens are the values of the residency column that count
// as an affirmative permanent-resident declaration.
var DefaultAffirmativeTokens = []string{"yes", "y", "pr"}

// permitDateLayouts are tried in order when parsing the expiry column.
// Day-first layouts come before month-first since the sheets originate from a
// day/month/year locale.
var permitDateLayouts = []string{
	"2006-01-02",
	"2/1/2006",
	"02/01/2006",
	"2-1-2006",
	"02-01-2006",
	"2/1/06",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"2/1/2006 15:04",
	"2006-01-02T15:04:05",
}

// FieldNormalizer holds the per-field transformation rules. Every method is
// total over its input: malformed values degrade to a best-effort string,
// they never fail.
type FieldNormalizer struct {
	titler       cases.Caser
	nonDigit     *regexp.Regexp
	synonyms     map[string]string
	affirmatives map[string]struct{}
	mobilePolicy MobilePolicy
}

// NewFieldNormalizer creates a field normalizer with the given nationality
// synonym map and affirmative residency tokens. Nil or empty arguments fall
// back to the package defaults.
func NewFieldNormalizer(synonyms map[string]string, affirmatives []string, mobilePolicy MobilePolicy) *FieldNormalizer {
	if len(synonyms) == 0 {
		synonyms = DefaultNationalitySynonyms
	}

	if len(affirmatives) == 0 {
		affirmatives = DefaultAffirmativeTokens
	}

	if mobilePolicy == "" {
		mobilePolicy = MobilePolicyCorrect
	}

	lowered := make(map[string]string, len(synonyms))
	for k, v := range synonyms {
		lowered[strings.ToLower(strings.TrimSpace(k))] = v
	}

	affirm := make(map[string]struct{}, len(affirmatives))
	for _, tok := range affirmatives {
		affirm[strings.ToLower(strings.TrimSpace(tok))] = struct{}{}
	}

	return &FieldNormalizer{
		titler:       cases.Title(language.English),
		nonDigit:     regexp.MustCompile(`\D`),
		synonyms:     lowered,
		affirmatives: affirm,
		mobilePolicy: mobilePolicy,
	}
}

// Cell trims a free-text cell and clears the literal "nan" left by
// missing-value stringification.
func (f *FieldNormalizer) Cell(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "nan") {
		return ""
	}

	return s
}

// TitleCase trims the input and converts it to title case.
func (f *FieldNormalizer) TitleCase(s string) string {
	return f.titler.String(strings.TrimSpace(s))
}

// SplitName splits a full name at the first space. The full name is trimmed
// and title-cased first. When the name has no space the whole string is the
// first name. Leading spaces left in the remainder by consecutive separators
// are trimmed so that first + " " + rest reassembles the full name.
func (f *FieldNormalizer) SplitName(fullName string) (first, rest string) {
	name := f.TitleCase(fullName)

	i := strings.Index(name, " ")
	if i < 0 {
		return name, ""
	}

	return name[:i], strings.TrimLeft(name[i+1:], " ")
}

// Plates rewrites a vehicle plate cell into a single ";"-joined token string.
// "/" and "," separators become ";", whitespace around separators is removed,
// and the literal "nan" left by missing-value stringification becomes empty.
// Tokens are not deduplicated here; that happens only in the summary.
func (f *FieldNormalizer) Plates(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "nan") {
		return ""
	}

	s = strings.ReplaceAll(s, "/", ";")
	s = strings.ReplaceAll(s, ",", ";")

	parts := strings.Split(s, ";")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	return strings.Join(parts, ";")
}

// Nationality canonicalizes adjectival forms ("Singaporean", "Chinese") to
// country names via the synonym map, then title-cases. Unknown values pass
// through title-cased, which makes the transform idempotent.
func (f *FieldNormalizer) Nationality(s string) string {
	key := strings.ToLower(strings.TrimSpace(s))
	if country, ok := f.synonyms[key]; ok {
		return f.titler.String(country)
	}

	return f.TitleCase(s)
}

// Gender maps the single-letter shorthands to their full form and
// title-cases anything else.
func (f *FieldNormalizer) Gender(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "M", "MALE":
		return "Male"
	case "F", "FEMALE":
		return "Female"
	default:
		return f.TitleCase(s)
	}
}

// Residency canonicalizes the permanent-resident column: affirmative tokens
// become "PR", blank or "nan" becomes empty, anything else is trimmed and
// passed through.
func (f *FieldNormalizer) Residency(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return ""
	}

	if f.IsAffirmative(s) {
		return "PR"
	}

	return s
}

// IsAffirmative reports whether the value counts as an affirmative
// permanent-resident declaration.
func (f *FieldNormalizer) IsAffirmative(s string) bool {
	_, ok := f.affirmatives[strings.ToLower(strings.TrimSpace(s))]

	return ok
}

// Mobile strips all non-digit characters, then corrects the length under
// MobilePolicyCorrect: longer than eight digits drops trailing zero padding
// when the excess is all zeros, otherwise keeps the last eight (treating the
// leading digits as a country code); shorter than eight left-pads with zeros.
func (f *FieldNormalizer) Mobile(s string) string {
	digits := f.nonDigit.ReplaceAllString(s, "")

	if f.mobilePolicy == MobilePolicyStripOnly || digits == "" {
		return digits
	}

	if len(digits) > mobileLength {
		excess := len(digits) - mobileLength
		if strings.Count(digits[len(digits)-excess:], "0") == excess {
			return digits[:mobileLength]
		}

		return digits[len(digits)-mobileLength:]
	}

	return strings.Repeat("0", mobileLength-len(digits)) + digits
}

// Suffix keeps the last four characters of the identification suffix cell.
// Shorter values pass through unchanged. Must run after displacement
// correction so it never truncates a misplaced date.
func (f *FieldNormalizer) Suffix(s string) string {
	s = strings.TrimSpace(s)

	runes := []rune(s)
	if len(runes) <= 4 {
		return s
	}

	return string(runes[len(runes)-4:])
}

// ExpiryDate parses the permit expiry cell leniently and reformats it as
// YYYY-MM-DD, discarding any time of day. Numeric values are treated as
// Excel date serials. Unparseable input degrades to empty.
func (f *FieldNormalizer) ExpiryDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return ""
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		// Serials below ~1906 or beyond ~2173 are more likely stray
		// numbers than dates.
		if serial >= 2000 && serial <= 100000 {
			if parsed, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return parsed.Format("2006-01-02")
			}
		}

		return ""
	}

	for _, layout := range permitDateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.Format("2006-01-02")
		}
	}

	return ""
}
