// Package withdraw implements best-effort cascading deletion of a claim and
// its leave periods.
package withdraw

import (
	"context"
	"fmt"
	"strings"

	"github.com/zarlcorp/zclaim/internal/claim"
	"github.com/zarlcorp/zclaim/internal/i18n"
)

// PeriodStore lists and deletes leave periods.
type PeriodStore interface {
	PeriodsFor(claimID string) ([]claim.LeavePeriod, error)
	DeletePeriod(id string) error
}

// ClaimStore deletes claims.
type ClaimStore interface {
	DeleteClaim(id string) error
}

// Request describes what to withdraw.
type Request struct {
	Claim   claim.Claim
	Periods PeriodStore
	Claims  ClaimStore
}

// StepStatus records the outcome of one cascade step.
type StepStatus struct {
	Description string
	Err         error
}

// Result summarizes a completed withdrawal.
type Result struct {
	Name         string
	PeriodsCount int
	Steps        []StepStatus
}

// HasErrors returns true if any step failed.
func (r Result) HasErrors() bool {
	for _, s := range r.Steps {
		if s.Err != nil {
			return true
		}
	}
	return false
}

// Summary returns a human-readable summary of the result.
func (r Result) Summary() string {
	var b strings.Builder

	key := "withdraw.done"
	if r.HasErrors() {
		key = "withdraw.doneWithErrors"
	}
	b.WriteString(i18n.T(key, i18n.Vars{"name": r.Name}))

	for _, s := range r.Steps {
		if s.Err != nil {
			fmt.Fprintf(&b, "\n- %s: %v", s.Description, s.Err)
		} else {
			fmt.Fprintf(&b, "\n- %s", s.Description)
		}
	}

	return b.String()
}

// Plan returns descriptions of what Execute will do, for the confirmation
// dialog.
func Plan(req Request) []string {
	var steps []string

	ps, err := req.Periods.PeriodsFor(req.Claim.ID)
	if err != nil {
		steps = append(steps, i18n.T("withdraw.deletePeriods"))
	} else {
		steps = append(steps, i18n.T("withdraw.periods", i18n.Vars{"count": len(ps)}))
	}

	steps = append(steps, i18n.T("withdraw.claim"))
	return steps
}

// Execute runs the cascade. Every period deletion is attempted even when an
// earlier one fails. The claim is deleted last unless ctx is canceled first.
func Execute(ctx context.Context, req Request) Result {
	result := Result{Name: req.Claim.Name()}

	result.deletePeriods(ctx, req)

	if err := ctx.Err(); err != nil {
		result.Steps = append(result.Steps, StepStatus{
			Description: i18n.T("withdraw.deleteClaim"),
			Err:         fmt.Errorf("%s: %w", i18n.T("withdraw.canceled"), err),
		})
		return result
	}

	result.deleteClaim(req)
	return result
}

func (r *Result) deletePeriods(ctx context.Context, req Request) {
	ps, err := req.Periods.PeriodsFor(req.Claim.ID)
	if err != nil {
		r.Steps = append(r.Steps, StepStatus{
			Description: i18n.T("withdraw.deletePeriods"),
			Err:         fmt.Errorf("list leave periods: %w", err),
		})
		return
	}

	var errs []string
	deleted := 0
	for _, p := range ps {
		if ctx.Err() != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", p.ID, ctx.Err()))
			continue
		}
		if err := req.Periods.DeletePeriod(p.ID); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", p.ID, err))
			continue
		}
		deleted++
	}

	r.PeriodsCount = deleted

	if len(errs) > 0 {
		r.Steps = append(r.Steps, StepStatus{
			Description: i18n.T("withdraw.deletedSomePeriods", i18n.Vars{"deleted": deleted, "total": len(ps)}),
			Err:         fmt.Errorf("%s", strings.Join(errs, "; ")),
		})
		return
	}

	r.Steps = append(r.Steps, StepStatus{
		Description: i18n.T("withdraw.deletedPeriods", i18n.Vars{"count": deleted}),
	})
}

func (r *Result) deleteClaim(req Request) {
	if err := req.Claims.DeleteClaim(req.Claim.ID); err != nil {
		r.Steps = append(r.Steps, StepStatus{
			Description: i18n.T("withdraw.deleteClaim"),
			Err:         err,
		})
		return
	}
	r.Steps = append(r.Steps, StepStatus{
		Description: i18n.T("withdraw.deletedClaim"),
	})
}
