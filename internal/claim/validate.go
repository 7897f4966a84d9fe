package claim

import (
	"strings"
	"time"

	"github.com/zarlcorp/zclaim/internal/i18n"
	"github.com/zarlcorp/zclaim/internal/inputfmt"
)

// Field names used in validation errors and form state.
const (
	FieldFirstName    = "firstName"
	FieldLastName     = "lastName"
	FieldSSN          = "ssn"
	FieldEmployer     = "employer"
	FieldFEIN         = "fein"
	FieldPhone        = "phone"
	FieldZip          = "zip"
	FieldDOB          = "dob"
	FieldWage         = "wage"
	FieldHours        = "hours"
	FieldStartDate    = "startDate"
	FieldEndDate      = "endDate"
	FieldReducedHours = "reducedHours"
)

// FieldError reports one invalid field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks a normalized claim and returns every problem found, in
// form order. now bounds the date of birth.
func (c Claim) Validate(now time.Time) []FieldError {
	var errs []FieldError

	errs = appendRequired(errs, FieldFirstName, c.FirstName)
	errs = appendRequired(errs, FieldLastName, c.LastName)
	errs = appendDigits(errs, FieldSSN, c.SSN, 9)
	if !c.SelfEmployed {
		errs = appendRequired(errs, FieldEmployer, c.EmployerName)
		errs = appendDigits(errs, FieldFEIN, c.EmployerFEIN, 9)
	}
	errs = appendDigits(errs, FieldPhone, c.Phone, 10)

	switch n := maskedLen(c.Zip); {
	case n == 0:
		errs = append(errs, required(FieldZip))
	case n != 5 && n != 9:
		errs = append(errs, incomplete(FieldZip))
	}

	errs = appendDate(errs, FieldDOB, c.DOB, now)
	return errs
}

// Validate checks a normalized leave period.
func (p LeavePeriod) Validate() []FieldError {
	var errs []FieldError

	errs = appendDate(errs, FieldStartDate, p.StartDate, time.Time{})
	errs = appendDate(errs, FieldEndDate, p.EndDate, time.Time{})
	if len(errs) > 0 {
		return errs
	}

	start, _ := inputfmt.ParseDateParts(p.StartDate).Time()
	end, _ := inputfmt.ParseDateParts(p.EndDate).Time()
	if end.Before(start) {
		errs = append(errs, FieldError{Field: FieldEndDate, Message: i18n.T("errors.endBeforeStart")})
	}
	return errs
}

func appendRequired(errs []FieldError, field, v string) []FieldError {
	if strings.TrimSpace(v) == "" {
		return append(errs, required(field))
	}
	return errs
}

func appendDigits(errs []FieldError, field, v string, want int) []FieldError {
	switch n := maskedLen(v); {
	case n == 0:
		return append(errs, required(field))
	case n < want:
		return append(errs, incomplete(field))
	}
	return errs
}

// appendDate validates an ISO date. A non-zero notAfter rejects later dates.
func appendDate(errs []FieldError, field, iso string, notAfter time.Time) []FieldError {
	p := inputfmt.ParseDateParts(iso)
	if p == (inputfmt.DateParts{}) {
		return append(errs, required(field))
	}
	if !p.Complete() {
		return append(errs, incomplete(field))
	}

	t, err := p.Time()
	if err != nil || (!notAfter.IsZero() && t.After(notAfter)) {
		return append(errs, FieldError{Field: field, Message: i18n.T("errors.invalidDate", fieldVars(field))})
	}
	return errs
}

// maskedLen counts digits and '*' placeholders.
func maskedLen(v string) int {
	n := 0
	for _, r := range v {
		if (r >= '0' && r <= '9') || r == '*' {
			n++
		}
	}
	return n
}

func required(field string) FieldError {
	return FieldError{Field: field, Message: i18n.T("errors.required", fieldVars(field))}
}

func incomplete(field string) FieldError {
	return FieldError{Field: field, Message: i18n.T("errors.incomplete", fieldVars(field))}
}

func fieldVars(field string) i18n.Vars {
	return i18n.Vars{"field": i18n.T("fields." + field)}
}
