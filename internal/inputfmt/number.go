package inputfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer groups integer parts with English thousands separators.
var printer = message.NewPrinter(language.English)

// maskNumber formats a currency or hours value as "12,345.67". Everything
// other than digits and the first '.' is ignored. Rounding to two places is
// half-to-even on the exact decimal digits, so no float error creeps in.
// Input with no digits, or an integer part too large to represent, is
// returned unchanged.
func maskNumber(value string) string {
	whole, frac, ok := splitNumber(value)
	if !ok {
		return value
	}

	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return value
	}

	cents, carry := roundCents(frac)
	if carry {
		if n == math.MaxInt64 {
			return value
		}
		n++
	}

	return printer.Sprintf("%d", n) + "." + fmt.Sprintf("%02d", cents)
}

// splitNumber extracts the integer and fractional digit runs from s.
func splitNumber(s string) (whole, frac string, ok bool) {
	var w, f strings.Builder
	seenDot := false

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			ok = true
			if seenDot {
				f.WriteRune(r)
			} else {
				w.WriteRune(r)
			}
		case r == '.' && !seenDot:
			seenDot = true
		}
	}

	whole = strings.TrimLeft(w.String(), "0")
	if whole == "" {
		whole = "0"
	}
	return whole, f.String(), ok
}

// roundCents rounds a fractional digit string to two places, half to even.
// carry reports that rounding overflowed into the integer part.
func roundCents(frac string) (cents int, carry bool) {
	padded := frac + "00"
	cents = int(padded[0]-'0')*10 + int(padded[1]-'0')

	rest := strings.TrimRight(frac[min(2, len(frac)):], "0")
	if rest == "" {
		return cents, false
	}

	up := false
	switch {
	case rest[0] > '5':
		up = true
	case rest[0] == '5' && len(rest) > 1:
		up = true
	case rest[0] == '5':
		up = cents%2 == 1
	}

	if up {
		cents++
	}
	if cents == 100 {
		return 0, true
	}
	return cents, false
}
