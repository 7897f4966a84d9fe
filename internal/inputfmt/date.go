package inputfmt

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// isoLayout is the canonical layout bridging separate month/day/year inputs.
const isoLayout = "2006-01-02"

var (
	// ErrIncompleteDate is returned when one or more date parts are empty.
	ErrIncompleteDate = errors.New("incomplete date")
	// ErrInvalidDate is returned when the parts do not name a real calendar day.
	ErrInvalidDate = errors.New("invalid date")
)

// DateParts holds the raw text of three separate date inputs. Parts are
// digit strings and may be empty while the user is still typing.
type DateParts struct {
	Month string `json:"month"`
	Day   string `json:"day"`
	Year  string `json:"year"`
}

type formatConfig struct {
	skipLeadingZeros bool
}

// FormatOption configures FormatFieldsAsISO8601.
type FormatOption func(*formatConfig)

// SkipLeadingZeros leaves single-digit months and days unpadded.
func SkipLeadingZeros() FormatOption {
	return func(c *formatConfig) { c.skipLeadingZeros = true }
}

// FormatFieldsAsISO8601 joins the parts as "YYYY-MM-DD". Empty parts stay
// empty ("1985--" is a valid in-progress value). Single-digit months and
// days get a leading zero; the year is never padded. Any non-digit character
// in any part makes the whole result empty.
func FormatFieldsAsISO8601(p DateParts, opts ...FormatOption) string {
	if !digitsOnly(p.Month) || !digitsOnly(p.Day) || !digitsOnly(p.Year) {
		return ""
	}

	var cfg formatConfig
	for _, o := range opts {
		o(&cfg)
	}

	month, day := p.Month, p.Day
	if !cfg.skipLeadingZeros {
		month = addLeadingZero(month)
		day = addLeadingZero(day)
	}

	return p.Year + "-" + month + "-" + day
}

// ParseDateParts splits a "YYYY-MM-DD" value into its parts. Each part is
// trimmed of surrounding whitespace and leading zeros are kept. An empty
// value yields empty parts, and missing trailing segments stay empty.
func ParseDateParts(value string) DateParts {
	if value == "" {
		return DateParts{}
	}

	segs := strings.SplitN(value, "-", 3)
	for len(segs) < 3 {
		segs = append(segs, "")
	}

	return DateParts{
		Year:  strings.TrimSpace(segs[0]),
		Month: strings.TrimSpace(segs[1]),
		Day:   strings.TrimSpace(segs[2]),
	}
}

// PartsFromTime returns the zero-padded parts of t's calendar date.
func PartsFromTime(t time.Time) DateParts {
	if t.IsZero() {
		return DateParts{}
	}
	return ParseDateParts(t.Format(isoLayout))
}

// Complete reports whether all three parts are filled in.
func (p DateParts) Complete() bool {
	return p.Month != "" && p.Day != "" && p.Year != ""
}

// String returns the ISO form of p.
func (p DateParts) String() string {
	return FormatFieldsAsISO8601(p)
}

// Time converts complete parts to a UTC midnight time.
func (p DateParts) Time() (time.Time, error) {
	if !p.Complete() {
		return time.Time{}, ErrIncompleteDate
	}

	iso := FormatFieldsAsISO8601(p)
	if iso == "" || len(p.Year) != 4 {
		return time.Time{}, ErrInvalidDate
	}

	t, err := time.Parse(isoLayout, iso)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDate, iso)
	}
	return t, nil
}

func addLeadingZero(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
