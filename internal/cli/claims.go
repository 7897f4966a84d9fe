package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/zarlcorp/zclaim/internal/claim"
	"github.com/zarlcorp/zclaim/internal/i18n"
	"github.com/zarlcorp/zclaim/internal/inputfmt"
	"github.com/zarlcorp/zclaim/internal/pagerange"
	"github.com/zarlcorp/zclaim/internal/store"
	"github.com/zarlcorp/zclaim/internal/withdraw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// CmdSample generates and prints a sample claim, optionally saving it with
// one leave period.
//
//	zclaim sample [--json] [--save]
func CmdSample(w io.Writer, args []string) error {
	g := claim.New()
	c := g.Generate()

	if hasFlag(args, "--json") {
		if err := printJSON(w, c); err != nil {
			return err
		}
	} else {
		printClaim(w, c, true)
	}

	if !hasFlag(args, "--save") {
		return nil
	}

	s, err := OpenStore(DataDir())
	if err != nil {
		return err
	}
	defer s.Close()

	if err := saveSample(s, g, c); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, i18n.T("claims.saved"))
	return nil
}

func saveSample(s *store.Store, g *claim.Generator, c claim.Claim) error {
	if err := s.PutClaim(c); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if err := s.PutPeriod(g.Period(c.ID)); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// CmdList lists saved claims one page at a time.
//
//	zclaim list [--page N] [--json]
func CmdList(w io.Writer, args []string) error {
	page := 1
	if v, ok := flagValue(args, "--page"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("list: --page: %w", err)
		}
		page = n
	}

	s, err := OpenStore(DataDir())
	if err != nil {
		return err
	}
	defer s.Close()

	return listClaims(w, s, page, hasFlag(args, "--json"))
}

// claimPage is the JSON shape of one page of claims.
type claimPage struct {
	Claims     []claim.Claim     `json:"claims"`
	Pagination pagerange.Summary `json:"pagination"`
}

func listClaims(w io.Writer, s *store.Store, page int, asJSON bool) error {
	prefs := s.Preferences()
	cs, sum, err := s.Page(page, prefs.PageSize)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	if asJSON {
		if cs == nil {
			cs = []claim.Claim{}
		}
		return printJSON(w, claimPage{Claims: cs, Pagination: sum})
	}

	if sum.TotalItems == 0 {
		fmt.Fprintln(w, i18n.T("claims.empty"))
		return nil
	}

	counts, err := s.PeriodCounts()
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	for _, c := range cs {
		ssn := c.SSN
		if !prefs.RevealSSN {
			ssn = inputfmt.PartialSSN(ssn)
		}
		fmt.Fprintf(w, "  %-10s %-24s %-12s %2d  %s\n",
			c.ID,
			c.Name(),
			ssn,
			counts[c.ID],
			c.CreatedAt.Format("2006-01-02"),
		)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "  "+printer.Sprintf("showing %d-%d of %d", sum.First, sum.Last, sum.TotalItems))
	if sum.TotalPages > 1 {
		fmt.Fprintln(w, "  "+RenderPages(pagerange.Truncate(sum.Page, sum.TotalPages), sum.Page))
	}
	return nil
}

// CmdWithdraw deletes a claim and its leave periods.
//
//	zclaim withdraw <id>
func CmdWithdraw(ctx context.Context, w io.Writer, id string) error {
	s, err := OpenStore(DataDir())
	if err != nil {
		return err
	}
	defer s.Close()

	return withdrawClaim(ctx, w, s, id)
}

func withdrawClaim(ctx context.Context, w io.Writer, s *store.Store, id string) error {
	c, err := s.GetClaim(id)
	if err != nil {
		return fmt.Errorf("withdraw: %w", err)
	}

	result := withdraw.Execute(ctx, withdraw.Request{Claim: c, Periods: s, Claims: s})
	fmt.Fprintln(w, result.Summary())
	if result.HasErrors() {
		return fmt.Errorf("withdraw %s: finished with errors", id)
	}
	return nil
}

func printClaim(w io.Writer, c claim.Claim, revealSSN bool) {
	ssn := c.SSN
	if !revealSSN {
		ssn = inputfmt.PartialSSN(ssn)
	}

	fmt.Fprintf(w, "  id:         %s\n", c.ID)
	fmt.Fprintf(w, "  name:       %s\n", c.Name())
	fmt.Fprintf(w, "  ssn:        %s\n", ssn)
	if c.SelfEmployed {
		fmt.Fprintf(w, "  employer:   %s\n", i18n.T("fields.selfEmployed"))
	} else {
		fmt.Fprintf(w, "  employer:   %s (%s)\n", c.EmployerName, c.EmployerFEIN)
	}
	fmt.Fprintf(w, "  phone:      %s\n", c.Phone)
	fmt.Fprintf(w, "  zip:        %s\n", c.Zip)
	fmt.Fprintf(w, "  dob:        %s\n", c.DOB)
	fmt.Fprintf(w, "  wage:       $%s / week\n", c.WeeklyWage)
	fmt.Fprintf(w, "  hours:      %s\n", c.HoursPerWeek)
}
