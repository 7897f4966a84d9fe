package withdraw

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/zarlcorp/zclaim/internal/claim"
	"github.com/zarlcorp/zclaim/internal/store"
)

var (
	_ PeriodStore = (*store.Store)(nil)
	_ ClaimStore  = (*store.Store)(nil)
)

// fakes

type fakePeriodStore struct {
	periods []claim.LeavePeriod
	listErr error
	delErr  map[string]error // per-ID delete errors
	deleted []string
}

func (f *fakePeriodStore) PeriodsFor(claimID string) ([]claim.LeavePeriod, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var ps []claim.LeavePeriod
	for _, p := range f.periods {
		if p.ClaimID == claimID {
			ps = append(ps, p)
		}
	}
	return ps, nil
}

func (f *fakePeriodStore) DeletePeriod(id string) error {
	if err, ok := f.delErr[id]; ok {
		return err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeClaimStore struct {
	deleted []string
	delErr  error
}

func (f *fakeClaimStore) DeleteClaim(id string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

// helpers

func testClaim() claim.Claim {
	return claim.Claim{
		ID:        "cl-001",
		FirstName: "Jane",
		LastName:  "Doe",
		SSN:       "123-45-6789",
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testPeriods(claimID string, n int) []claim.LeavePeriod {
	ps := make([]claim.LeavePeriod, n)
	for i := range n {
		ps[i] = claim.LeavePeriod{
			ID:        fmt.Sprintf("lp-%03d", i),
			ClaimID:   claimID,
			StartDate: fmt.Sprintf("2026-04-%02d", i+1),
			EndDate:   fmt.Sprintf("2026-05-%02d", i+1),
		}
	}
	return ps
}

func TestExecuteFullCascade(t *testing.T) {
	ps := &fakePeriodStore{periods: testPeriods("cl-001", 3)}
	cs := &fakeClaimStore{}

	result := Execute(context.Background(), Request{Claim: testClaim(), Periods: ps, Claims: cs})

	if result.HasErrors() {
		t.Errorf("unexpected errors: %s", result.Summary())
	}
	if result.PeriodsCount != 3 {
		t.Errorf("periods deleted = %d, want 3", result.PeriodsCount)
	}
	if len(ps.deleted) != 3 {
		t.Errorf("period store deletes = %d, want 3", len(ps.deleted))
	}
	if len(cs.deleted) != 1 || cs.deleted[0] != "cl-001" {
		t.Errorf("claim deletes = %v, want [cl-001]", cs.deleted)
	}
	if len(result.Steps) != 2 {
		t.Errorf("steps = %d, want 2", len(result.Steps))
	}
	if result.Name != "Jane Doe" {
		t.Errorf("name = %q", result.Name)
	}
}

func TestExecuteNoMatchingPeriods(t *testing.T) {
	// periods belong to a different claim
	ps := &fakePeriodStore{periods: testPeriods("cl-999", 5)}
	cs := &fakeClaimStore{}

	result := Execute(context.Background(), Request{Claim: testClaim(), Periods: ps, Claims: cs})

	if result.HasErrors() {
		t.Errorf("unexpected errors: %s", result.Summary())
	}
	if result.PeriodsCount != 0 {
		t.Errorf("periods deleted = %d, want 0", result.PeriodsCount)
	}
	if len(ps.deleted) != 0 {
		t.Errorf("deleted periods of another claim: %v", ps.deleted)
	}
}

func TestExecutePeriodListError(t *testing.T) {
	ps := &fakePeriodStore{listErr: fmt.Errorf("store corrupt")}
	cs := &fakeClaimStore{}

	result := Execute(context.Background(), Request{Claim: testClaim(), Periods: ps, Claims: cs})

	if !result.HasErrors() {
		t.Error("should have errors when period list fails")
	}

	// claim should still be deleted despite the list failure
	if len(cs.deleted) != 1 {
		t.Errorf("claim deletes = %d, want 1", len(cs.deleted))
	}
}

func TestExecutePartialPeriodDeleteError(t *testing.T) {
	ps := &fakePeriodStore{
		periods: testPeriods("cl-001", 3),
		delErr:  map[string]error{"lp-001": fmt.Errorf("locked")},
	}
	cs := &fakeClaimStore{}

	result := Execute(context.Background(), Request{Claim: testClaim(), Periods: ps, Claims: cs})

	if !result.HasErrors() {
		t.Error("should have errors when some period deletes fail")
	}
	if result.PeriodsCount != 2 {
		t.Errorf("periods deleted = %d, want 2", result.PeriodsCount)
	}

	s := result.Summary()
	if !strings.Contains(s, "locked") {
		t.Errorf("summary should mention locked error: %s", s)
	}
	if !strings.Contains(s, "deleted 2/3 leave periods") {
		t.Errorf("summary should report partial count: %s", s)
	}
}

func TestExecuteClaimDeleteError(t *testing.T) {
	ps := &fakePeriodStore{}
	cs := &fakeClaimStore{delErr: fmt.Errorf("permission denied")}

	result := Execute(context.Background(), Request{Claim: testClaim(), Periods: ps, Claims: cs})

	if !result.HasErrors() {
		t.Error("should have errors when claim delete fails")
	}
	if !strings.Contains(result.Summary(), "permission denied") {
		t.Errorf("summary should mention error: %s", result.Summary())
	}
}

func TestExecuteCanceled(t *testing.T) {
	ps := &fakePeriodStore{periods: testPeriods("cl-001", 2)}
	cs := &fakeClaimStore{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := Execute(ctx, Request{Claim: testClaim(), Periods: ps, Claims: cs})

	if !result.HasErrors() {
		t.Error("canceled withdrawal should report errors")
	}
	if len(ps.deleted) != 0 {
		t.Errorf("periods deleted after cancel: %v", ps.deleted)
	}
	if len(cs.deleted) != 0 {
		t.Errorf("claim deleted after cancel: %v", cs.deleted)
	}
	if !strings.Contains(result.Summary(), "canceled") {
		t.Errorf("summary should mention cancel: %s", result.Summary())
	}
}

func TestExecuteAllFailures(t *testing.T) {
	ps := &fakePeriodStore{listErr: fmt.Errorf("store error")}
	cs := &fakeClaimStore{delErr: fmt.Errorf("claim error")}

	result := Execute(context.Background(), Request{Claim: testClaim(), Periods: ps, Claims: cs})

	if len(result.Steps) != 2 {
		t.Errorf("steps = %d, want 2", len(result.Steps))
	}
	for i, s := range result.Steps {
		if s.Err == nil {
			t.Errorf("step %d (%s) should have error", i, s.Description)
		}
	}
	if !strings.Contains(result.Summary(), "with errors") {
		t.Errorf("summary should say 'with errors': %s", result.Summary())
	}
}

func TestPlan(t *testing.T) {
	ps := &fakePeriodStore{periods: testPeriods("cl-001", 3)}

	steps := Plan(Request{Claim: testClaim(), Periods: ps})

	if len(steps) != 2 {
		t.Fatalf("plan steps = %d, want 2", len(steps))
	}
	if steps[0] != "delete leave periods (3)" {
		t.Errorf("step 0 = %q", steps[0])
	}
	if steps[1] != "delete the claim record" {
		t.Errorf("step 1 = %q", steps[1])
	}
}

func TestPlanPeriodListError(t *testing.T) {
	ps := &fakePeriodStore{listErr: fmt.Errorf("oops")}

	steps := Plan(Request{Claim: testClaim(), Periods: ps})

	// still lists the periods step, just without a count
	if len(steps) != 2 {
		t.Fatalf("plan steps = %d, want 2", len(steps))
	}
	if steps[0] != "delete leave periods" {
		t.Errorf("step 0 = %q", steps[0])
	}
}

func TestResultSummaryNoErrors(t *testing.T) {
	r := Result{
		Name: "Jane Doe",
		Steps: []StepStatus{
			{Description: "deleted 3 leave periods"},
			{Description: "deleted claim record"},
		},
	}

	want := "withdrew claim for Jane Doe\n- deleted 3 leave periods\n- deleted claim record"
	if got := r.Summary(); got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}

func TestResultHasErrors(t *testing.T) {
	tests := []struct {
		name  string
		steps []StepStatus
		want  bool
	}{
		{"no errors", []StepStatus{{Description: "ok"}}, false},
		{"with error", []StepStatus{{Description: "ok"}, {Description: "bad", Err: fmt.Errorf("fail")}}, true},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Result{Steps: tt.steps}
			if got := r.HasErrors(); got != tt.want {
				t.Errorf("HasErrors() = %v, want %v", got, tt.want)
			}
		})
	}
}
