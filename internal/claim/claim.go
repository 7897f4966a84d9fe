// Package claim defines paid-leave claim records and their field rules.
package claim

import (
	"strings"
	"time"

	"github.com/zarlcorp/zclaim/internal/inputfmt"
)

// Claim is one claimant's application for paid leave. Structured fields are
// stored in their masked display form, dates as "YYYY-MM-DD".
type Claim struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	SSN          string    `json:"ssn"`
	SelfEmployed bool      `json:"self_employed"`
	EmployerName string    `json:"employer_name,omitempty"`
	EmployerFEIN string    `json:"employer_fein,omitempty"`
	Phone        string    `json:"phone"`
	Zip          string    `json:"zip"`
	DOB          string    `json:"dob"`
	WeeklyWage   string    `json:"weekly_wage,omitempty"`
	HoursPerWeek string    `json:"hours_per_week,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LeavePeriod is a span of leave requested on a claim.
type LeavePeriod struct {
	ID           string    `json:"id"`
	ClaimID      string    `json:"claim_id"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	ReducedHours string    `json:"reduced_hours,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Name returns the claimant's display name.
func (c Claim) Name() string {
	return c.FirstName + " " + c.LastName
}

// Normalize runs every structured field through its input mask. A
// self-employed claimant has no employer.
func (c Claim) Normalize() Claim {
	c.SSN = inputfmt.MaskValue(c.SSN, inputfmt.KindSSN)
	c.EmployerFEIN = inputfmt.MaskValue(c.EmployerFEIN, inputfmt.KindFEIN)
	c.Phone = inputfmt.MaskValue(c.Phone, inputfmt.KindPhone)
	c.Zip = inputfmt.MaskValue(c.Zip, inputfmt.KindZip)
	c.WeeklyWage = inputfmt.MaskValue(c.WeeklyWage, inputfmt.KindCurrency)
	c.HoursPerWeek = inputfmt.MaskValue(c.HoursPerWeek, inputfmt.KindHours)
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.EmployerName = strings.TrimSpace(c.EmployerName)
	if c.SelfEmployed {
		c.EmployerName = ""
		c.EmployerFEIN = ""
	}
	return c
}

// DOBParts splits the stored date of birth into its inputs.
func (c Claim) DOBParts() inputfmt.DateParts {
	return inputfmt.ParseDateParts(c.DOB)
}

// Normalize masks the reduced hours and re-pads both dates.
func (p LeavePeriod) Normalize() LeavePeriod {
	p.StartDate = normalizeDate(p.StartDate)
	p.EndDate = normalizeDate(p.EndDate)
	p.ReducedHours = inputfmt.MaskValue(p.ReducedHours, inputfmt.KindHours)
	return p
}

func normalizeDate(iso string) string {
	if iso == "" {
		return ""
	}
	return inputfmt.FormatFieldsAsISO8601(inputfmt.ParseDateParts(iso))
}
