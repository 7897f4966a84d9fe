package inputfmt

import "testing"

func TestMaskValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		kind  Kind
		want  string
	}{
		{"ssn partial", "1234", KindSSN, "123-4"},
		{"ssn complete", "123456789", KindSSN, "123-45-6789"},
		{"ssn already masked", "123-45-6789", KindSSN, "123-45-6789"},
		{"ssn asterisks pass through", "123-45-****", KindSSN, "123-45-****"},
		{"ssn overflow appended", "123456789012", KindSSN, "123-45-6789012"},
		{"ssn strips letters", "12a3-4b5", KindSSN, "123-45"},
		{"ssn short", "12", KindSSN, "12"},

		{"fein complete", "121234567", KindFEIN, "12-1234567"},
		{"fein partial", "123", KindFEIN, "12-3"},
		{"fein masked", "**-***4567", KindFEIN, "**-***4567"},
		{"fein overflow", "1212345678", KindFEIN, "12-12345678"},

		{"phone digits", "5551234567", KindPhone, "555-123-4567"},
		{"phone parens", "(555) 123-4567", KindPhone, "555-123-4567"},
		{"phone extension", "555123456789", KindPhone, "555-123-456789"},
		{"phone partial", "5551", KindPhone, "555-1"},
		{"phone masked", "***-***-4567", KindPhone, "***-***-4567"},

		{"zip plus four", "123456789", KindZip, "12345-6789"},
		{"zip five", "12345", KindZip, "12345"},
		{"zip dashed", "12345-6789", KindZip, "12345-6789"},
		{"zip masked suffix", "12345-****", KindZip, "12345-****"},
		{"zip too long", "1234567890", KindZip, "12345-6789"},

		{"currency rounds", "12345.557", KindCurrency, "12,345.56"},
		{"currency symbol", "$1,234", KindCurrency, "1,234.00"},
		{"currency grouped", "1,234,567.8", KindCurrency, "1,234,567.80"},
		{"currency leading dot", ".5", KindCurrency, "0.50"},
		{"currency extra dots", "1.2.3", KindCurrency, "1.23"},
		{"currency half even down", "2.125", KindCurrency, "2.12"},
		{"currency half even up", "2.135", KindCurrency, "2.14"},
		{"currency above half", "2.1251", KindCurrency, "2.13"},
		{"currency carry", "999.999", KindCurrency, "1,000.00"},
		{"currency no digits", "abc", KindCurrency, "abc"},
		{"currency too large", "99999999999999999999", KindCurrency, "99999999999999999999"},
		{"hours", "40", KindHours, "40.00"},
		{"hours fraction", "37.5", KindHours, "37.50"},

		{"empty ssn", "", KindSSN, ""},
		{"empty currency", "", KindCurrency, ""},
		{"unknown kind", "abc-123", Kind("iban"), "abc-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskValue(tt.value, tt.kind); got != tt.want {
				t.Errorf("MaskValue(%q, %q) = %q, want %q", tt.value, tt.kind, got, tt.want)
			}
		})
	}
}

func TestMaskValueIdempotent(t *testing.T) {
	inputs := []string{
		"", "1", "12", "1234", "123456789", "123456789012", "(555) 123-4567",
		"123-45-****", "12345.557", "$ 1,000", "0.005", "abc", "9.995", "12345-****",
	}

	for _, k := range Kinds() {
		for _, in := range inputs {
			once := MaskValue(in, k)
			twice := MaskValue(once, k)
			if once != twice {
				t.Errorf("MaskValue not idempotent for %q (%s): %q then %q", in, k, once, twice)
			}
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"ssn", KindSSN, true},
		{" Phone ", KindPhone, true},
		{"CURRENCY", KindCurrency, true},
		{"iban", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseKind(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPartialSSN(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"123456789", "***-**-6789"},
		{"123-45-6789", "***-**-6789"},
		{"***-**-6789", "***-**-6789"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := PartialSSN(tt.in); got != tt.want {
			t.Errorf("PartialSSN(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if got := MaskValue(PartialSSN(tt.in), KindSSN); got != tt.want {
			t.Errorf("MaskValue(PartialSSN(%q)) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
