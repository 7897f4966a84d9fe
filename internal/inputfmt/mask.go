// Package inputfmt formats free-form keystroke input for structured fields.
//
// Every function here is pure and fail-soft: partial or malformed input is
// expected while a user is typing, so the result is always a best-effort
// string and never an error.
package inputfmt

import "strings"

// Kind names a mask family.
type Kind string

const (
	KindSSN      Kind = "ssn"
	KindFEIN     Kind = "fein"
	KindPhone    Kind = "phone"
	KindZip      Kind = "zip"
	KindCurrency Kind = "currency"
	KindHours    Kind = "hours"
)

// Kinds returns every supported mask kind.
func Kinds() []Kind {
	return []Kind{KindSSN, KindFEIN, KindPhone, KindZip, KindCurrency, KindHours}
}

// ParseKind resolves a user-supplied mask name.
func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, true
		}
	}
	return "", false
}

// delimited describes a dash-separated digit mask. groups lists the sizes of
// the leading groups; whatever follows goes into one trailing group, capped
// at tail characters when tail > 0.
type delimited struct {
	groups []int
	tail   int
}

var delimitedMasks = map[Kind]delimited{
	KindSSN:   {groups: []int{3, 2}},
	KindFEIN:  {groups: []int{2}},
	KindPhone: {groups: []int{3, 3}},
	KindZip:   {groups: []int{5}, tail: 4},
}

// MaskValue formats value for the given kind. Empty input yields empty
// output and an unknown kind returns value unchanged.
func MaskValue(value string, kind Kind) string {
	if value == "" {
		return ""
	}

	switch kind {
	case KindCurrency, KindHours:
		return maskNumber(value)
	}

	if d, ok := delimitedMasks[kind]; ok {
		return d.apply(value)
	}

	return value
}

func (d delimited) apply(value string) string {
	rest := keepMaskable(value)
	if rest == "" {
		return ""
	}

	parts := make([]string, 0, len(d.groups)+1)
	for _, n := range d.groups {
		if rest == "" {
			break
		}
		n = min(n, len(rest))
		parts = append(parts, rest[:n])
		rest = rest[n:]
	}

	if rest != "" {
		if d.tail > 0 && len(rest) > d.tail {
			rest = rest[:d.tail]
		}
		parts = append(parts, rest)
	}

	return strings.Join(parts, "-")
}

// PartialSSN hides all but the last four digits of an SSN, e.g. "***-**-6789".
func PartialSSN(value string) string {
	digits := keepMaskable(value)
	if digits == "" {
		return ""
	}

	visible := 4
	if len(digits) < visible {
		visible = 0
	}
	hidden := max(len(digits)-visible, 5)

	return MaskValue(strings.Repeat("*", hidden)+digits[len(digits)-visible:], KindSSN)
}

// keepMaskable drops everything except digits and '*' placeholders.
func keepMaskable(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '*' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
