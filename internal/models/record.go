// Package models defines the canonical visitor sheet schema shared across the pipeline.
package models

import (
	"strconv"
	"strings"
)

// ColumnCount is the fixed arity of the canonical visitor sheet.
// Incoming rows are padded or truncated to this width positionally,
// regardless of what the source headers say.
const ColumnCount = 13

// Headers lists the canonical column headers in sheet order.
var Headers = []string{
	"S/N",
	"Vehicle Plate Number",
	"Company Full Name",
	"Full Name As Per NRIC",
	"First Name as per NRIC",
	"Middle and Last Name as per NRIC",
	"Identification Type",
	"IC (Last 3 digits and suffix)",
	"Work Permit Expiry Date",
	"Nationality",
	"PR",
	"Gender",
	"Mobile Number",
}

// VisitorRecord is one row of the visitor sheet in canonical column order.
// Serial is not a stable identifier; it is reassigned after sorting.
type VisitorRecord struct {
	Serial          int
	VehiclePlates   string
	Organization    string
	FullName        string
	FirstName       string
	RestOfName      string
	IDType          string
	IDSuffix        string
	PermitExpiry    string
	Nationality     string
	ResidencyStatus string
	Gender          string
	MobileNumber    string
}

// FromRow maps a raw sheet row onto a record positionally. Rows shorter than
// ColumnCount are padded with empty cells, longer rows are truncated.
func FromRow(cells []string) *VisitorRecord {
	padded := make([]string, ColumnCount)

	for i := 0; i < ColumnCount && i < len(cells); i++ {
		padded[i] = cells[i]
	}

	serial, _ := strconv.Atoi(strings.TrimSpace(padded[0]))

	return &VisitorRecord{
		Serial:          serial,
		VehiclePlates:   padded[1],
		Organization:    padded[2],
		FullName:        padded[3],
		FirstName:       padded[4],
		RestOfName:      padded[5],
		IDType:          padded[6],
		IDSuffix:        padded[7],
		PermitExpiry:    padded[8],
		Nationality:     padded[9],
		ResidencyStatus: padded[10],
		Gender:          padded[11],
		MobileNumber:    padded[12],
	}
}

// ToRow returns the record as a sheet row in canonical column order.
func (r *VisitorRecord) ToRow() []interface{} {
	return []interface{}{
		r.Serial,
		r.VehiclePlates,
		r.Organization,
		r.FullName,
		r.FirstName,
		r.RestOfName,
		r.IDType,
		r.IDSuffix,
		r.PermitExpiry,
		r.Nationality,
		r.ResidencyStatus,
		r.Gender,
		r.MobileNumber,
	}
}

// HasVisitorDetails reports whether any of the per-visitor fields
// (full name through mobile number) carries a value. Records without
// any details are dropped before processing.
func (r *VisitorRecord) HasVisitorDetails() bool {
	details := []string{
		r.FullName,
		r.FirstName,
		r.RestOfName,
		r.IDType,
		r.IDSuffix,
		r.PermitExpiry,
		r.Nationality,
		r.ResidencyStatus,
		r.Gender,
		r.MobileNumber,
	}

	for _, v := range details {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}

	return false
}
