package claim

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func validClaim() Claim {
	return Claim{
		ID:           "abc12345",
		FirstName:    "Jane",
		LastName:     "Doe",
		SSN:          "123-45-6789",
		EmployerName: "Harbor Health Partners",
		EmployerFEIN: "12-3456789",
		Phone:        "555-123-4567",
		Zip:          "02134",
		DOB:          "1990-06-15",
		WeeklyWage:   "1,250.00",
		HoursPerWeek: "40.00",
	}
}

func TestNormalize(t *testing.T) {
	raw := Claim{
		FirstName:    "  Jane ",
		LastName:     "Doe",
		SSN:          "123456789",
		EmployerName: "Acme",
		EmployerFEIN: "123456789",
		Phone:        "(555) 123-4567",
		Zip:          "021341234",
		WeeklyWage:   "$1250",
		HoursPerWeek: "37.5",
	}

	got := raw.Normalize()
	want := Claim{
		FirstName:    "Jane",
		LastName:     "Doe",
		SSN:          "123-45-6789",
		EmployerName: "Acme",
		EmployerFEIN: "12-3456789",
		Phone:        "555-123-4567",
		Zip:          "02134-1234",
		WeeklyWage:   "1,250.00",
		HoursPerWeek: "37.50",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
	}

	if again := got.Normalize(); again != got {
		t.Errorf("Normalize not idempotent: %+v", again)
	}
}

func TestNormalizeSelfEmployedClearsEmployer(t *testing.T) {
	c := validClaim()
	c.SelfEmployed = true

	got := c.Normalize()
	if got.EmployerName != "" || got.EmployerFEIN != "" {
		t.Errorf("employer = %q / %q, want cleared", got.EmployerName, got.EmployerFEIN)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Claim)
		fields []string
	}{
		{"valid", func(*Claim) {}, nil},
		{"missing names", func(c *Claim) { c.FirstName = ""; c.LastName = " " }, []string{FieldFirstName, FieldLastName}},
		{"partial ssn", func(c *Claim) { c.SSN = "123-4" }, []string{FieldSSN}},
		{"masked ssn counts", func(c *Claim) { c.SSN = "***-**-6789" }, nil},
		{"missing fein", func(c *Claim) { c.EmployerFEIN = "" }, []string{FieldFEIN}},
		{"self employed needs no employer", func(c *Claim) { c.SelfEmployed = true; c.EmployerName = ""; c.EmployerFEIN = "" }, nil},
		{"short phone", func(c *Claim) { c.Phone = "555-123" }, []string{FieldPhone}},
		{"zip plus four", func(c *Claim) { c.Zip = "02134-1234" }, nil},
		{"bad zip", func(c *Claim) { c.Zip = "021" }, []string{FieldZip}},
		{"missing dob", func(c *Claim) { c.DOB = "" }, []string{FieldDOB}},
		{"partial dob", func(c *Claim) { c.DOB = "1990--" }, []string{FieldDOB}},
		{"impossible dob", func(c *Claim) { c.DOB = "1990-02-30" }, []string{FieldDOB}},
		{"future dob", func(c *Claim) { c.DOB = "2030-01-01" }, []string{FieldDOB}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validClaim()
			tt.mutate(&c)

			var got []string
			for _, e := range c.Validate(now) {
				got = append(got, e.Field)
			}
			if diff := cmp.Diff(tt.fields, got); diff != "" {
				t.Errorf("invalid fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateMessages(t *testing.T) {
	c := validClaim()
	c.SSN = ""
	c.Phone = "555"

	errs := c.Validate(now)
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), errs)
	}
	if errs[0].Message != "ssn is required" {
		t.Errorf("ssn message = %q", errs[0].Message)
	}
	if errs[1].Message != "phone is incomplete" {
		t.Errorf("phone message = %q", errs[1].Message)
	}
	if errs[0].Error() != "ssn: ssn is required" {
		t.Errorf("Error() = %q", errs[0].Error())
	}
}

func TestLeavePeriodValidate(t *testing.T) {
	tests := []struct {
		name   string
		period LeavePeriod
		fields []string
	}{
		{"valid", LeavePeriod{StartDate: "2026-04-01", EndDate: "2026-04-30"}, nil},
		{"same day", LeavePeriod{StartDate: "2026-04-01", EndDate: "2026-04-01"}, nil},
		{"end before start", LeavePeriod{StartDate: "2026-04-10", EndDate: "2026-04-01"}, []string{FieldEndDate}},
		{"missing both", LeavePeriod{}, []string{FieldStartDate, FieldEndDate}},
		{"partial end", LeavePeriod{StartDate: "2026-04-01", EndDate: "2026-04-"}, []string{FieldEndDate}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, e := range tt.period.Validate() {
				got = append(got, e.Field)
			}
			if diff := cmp.Diff(tt.fields, got); diff != "" {
				t.Errorf("invalid fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLeavePeriodNormalize(t *testing.T) {
	p := LeavePeriod{StartDate: "2026-4-1", EndDate: "2026-4-30", ReducedHours: "20"}.Normalize()
	if p.StartDate != "2026-04-01" || p.EndDate != "2026-04-30" {
		t.Errorf("dates = %q, %q", p.StartDate, p.EndDate)
	}
	if p.ReducedHours != "20.00" {
		t.Errorf("reduced hours = %q", p.ReducedHours)
	}
}

func TestGenerate(t *testing.T) {
	g := New()
	c := g.Generate()

	tests := []struct {
		name  string
		check func() bool
	}{
		{"ID is hex", func() bool { return regexp.MustCompile(`^[0-9a-f]{8}$`).MatchString(c.ID) }},
		{"FirstName non-empty", func() bool { return c.FirstName != "" }},
		{"LastName non-empty", func() bool { return c.LastName != "" }},
		{"SSN masked", func() bool { return regexp.MustCompile(`^9\d{2}-\d{2}-\d{4}$`).MatchString(c.SSN) }},
		{"Phone masked", func() bool { return regexp.MustCompile(`^555-\d{3}-\d{4}$`).MatchString(c.Phone) }},
		{"Zip masked", func() bool { return regexp.MustCompile(`^\d{5}(-\d{4})?$`).MatchString(c.Zip) }},
		{"Wage grouped", func() bool { return regexp.MustCompile(`^\d{1,3}(,\d{3})*\.\d{2}$`).MatchString(c.WeeklyWage) }},
		{"CreatedAt non-zero", func() bool { return !c.CreatedAt.IsZero() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.check() {
				t.Errorf("check failed for claim: %+v", c)
			}
		})
	}
}

func TestGenerateAlwaysValid(t *testing.T) {
	g := New()
	for range 200 {
		c := g.Generate()
		if errs := c.Validate(time.Now()); len(errs) > 0 {
			t.Fatalf("generated claim invalid: %v\n%+v", errs, c)
		}
		if c.SelfEmployed && (c.EmployerFEIN != "" || c.EmployerName != "") {
			t.Fatalf("self-employed claim has employer: %+v", c)
		}
	}
}

func TestGeneratePeriod(t *testing.T) {
	g := New()
	for range 50 {
		p := g.Period("abc12345")
		if p.ClaimID != "abc12345" {
			t.Fatalf("claim id = %q", p.ClaimID)
		}
		if errs := p.Validate(); len(errs) > 0 {
			t.Fatalf("generated period invalid: %v\n%+v", errs, p)
		}
		if p.ReducedHours != "" && !strings.HasSuffix(p.ReducedHours, ".00") {
			t.Errorf("reduced hours = %q", p.ReducedHours)
		}
	}
}

func TestNewIDRandomness(t *testing.T) {
	a, b := NewID(), NewID()
	if a == b {
		t.Errorf("consecutive IDs should differ: got %q twice", a)
	}
}
