package i18n

import (
	"strings"
	"testing"
)

func TestParseAndResolve(t *testing.T) {
	doc := []byte(`
fields:
  ssn: ssn
  dob: date of birth
errors:
  required: "{{field}} is required"
  ssnRequired: "$t(errors.required)"
  nested: "check $t(fields.dob): $t(errors.ssnRequired)"
  loopA: "a $t(errors.loopB)"
  loopB: "b $t(errors.loopA)"
  count: 3
`)
	c, err := Parse(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	tests := []struct {
		name string
		key  string
		vars Vars
		want string
	}{
		{"plain", "fields.ssn", nil, "ssn"},
		{"variable", "errors.required", Vars{"field": "zip"}, "zip is required"},
		{"missing variable left in place", "errors.required", nil, "{{field}} is required"},
		{"reference", "errors.ssnRequired", Vars{"field": "ssn"}, "ssn is required"},
		{"nested references", "errors.nested", Vars{"field": "dob"}, "check date of birth: dob is required"},
		{"missing key", "no.such.key", nil, "no.such.key"},
		{"number leaf", "errors.count", nil, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.T(tt.key, tt.vars); got != tt.want {
				t.Errorf("T(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestResolveCycleTerminates(t *testing.T) {
	c, err := Parse([]byte("a: \"x $t(b)\"\nb: \"y $t(a)\"\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	got := c.T("a", nil)
	if !strings.HasPrefix(got, "x y x y") {
		t.Errorf("T(a) = %q, want alternating expansion", got)
	}
}

func TestParseRejectsLists(t *testing.T) {
	if _, err := Parse([]byte("a:\n  - one\n  - two\n")); err == nil {
		t.Error("expected error for list value")
	}
}

func TestEnglishCatalog(t *testing.T) {
	c := English()

	for _, key := range []string{"menu.newClaim", "errors.required", "withdraw.doneWithErrors", "fields.fein"} {
		if !c.Has(key) {
			t.Errorf("english catalog missing %q", key)
		}
	}

	got := T("withdraw.doneWithErrors", Vars{"name": "Jane Doe"})
	if got != "withdrew claim for Jane Doe (with errors)" {
		t.Errorf("doneWithErrors = %q", got)
	}

	got = T("errors.endBeforeStart")
	if got != "end date must not be before start date" {
		t.Errorf("endBeforeStart = %q", got)
	}
}

func TestEnglishReferencesResolve(t *testing.T) {
	c := English()
	for _, key := range c.Keys() {
		if got := c.T(key, nil); strings.Contains(got, "$t(") {
			t.Errorf("%s has unresolved reference: %q", key, got)
		}
	}
}
