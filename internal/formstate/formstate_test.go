package formstate

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConditionalHideShow(t *testing.T) {
	values := map[string]string{"fein": "12-3456789", "employer": "Acme", "name": "Jane"}
	c := NewConditional("fein", "employer")

	c.Hide(values)

	if !c.Hidden() {
		t.Fatal("should be hidden")
	}
	want := map[string]string{"fein": "", "employer": "", "name": "Jane"}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Errorf("after hide (-want +got):\n%s", diff)
	}

	restored := c.Show(values)

	if c.Hidden() {
		t.Fatal("should be visible")
	}
	want = map[string]string{"fein": "12-3456789", "employer": "Acme", "name": "Jane"}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Errorf("after show (-want +got):\n%s", diff)
	}
	if restored["fein"] != "12-3456789" {
		t.Errorf("restored fein = %q", restored["fein"])
	}
}

func TestConditionalRepeatedTransitions(t *testing.T) {
	values := map[string]string{"fein": "12-3456789"}
	c := NewConditional("fein")

	if got := c.Show(values); got != nil {
		t.Errorf("show while visible returned %v, want nil", got)
	}

	c.Hide(values)
	values["fein"] = "typed while hidden"
	c.Hide(values)

	c.Set(true, values)
	if values["fein"] != "12-3456789" {
		t.Errorf("fein = %q, want value captured by the first hide", values["fein"])
	}
}

func TestConditionalMissingField(t *testing.T) {
	values := map[string]string{}
	c := NewConditional("fein")

	c.Hide(values)
	if _, ok := values["fein"]; ok {
		t.Error("hide should not add absent fields")
	}

	c.Show(values)
	if values["fein"] != "" {
		t.Errorf("fein = %q, want empty", values["fein"])
	}
}

func TestRepeatable(t *testing.T) {
	r := NewRepeatable(2, "a")

	if err := r.Add("b"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if !r.Full() {
		t.Error("should be full")
	}
	if err := r.Add("c"); !errors.Is(err, ErrLimitReached) {
		t.Errorf("add over limit: err = %v, want ErrLimitReached", err)
	}

	got, err := r.Remove(0)
	if err != nil || got != "a" {
		t.Fatalf("remove = %q, %v", got, err)
	}
	if diff := cmp.Diff([]string{"b"}, r.Entries()); diff != "" {
		t.Errorf("entries (-want +got):\n%s", diff)
	}

	if err := r.Replace(0, "z"); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if e, _ := r.At(0); e != "z" {
		t.Errorf("At(0) = %q, want z", e)
	}

	if _, err := r.Remove(5); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("remove out of range: err = %v", err)
	}
	if _, err := r.At(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("at -1: err = %v", err)
	}
}

func TestRepeatableNoLimit(t *testing.T) {
	r := NewRepeatable[int](0)
	for i := range 50 {
		if err := r.Add(i); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}
	if r.Len() != 50 {
		t.Errorf("Len = %d, want 50", r.Len())
	}
}
