package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zclaim/internal/claim"
	"github.com/zarlcorp/zclaim/internal/i18n"
	"github.com/zarlcorp/zclaim/internal/inputfmt"
)

// claimField is a labeled value for display and copying.
type claimField struct {
	label string
	value string
}

// editClaimMsg opens the claim form on an existing claim.
type editClaimMsg struct {
	claim claim.Claim
}

// viewPeriodsMsg requests the leave periods of a claim.
type viewPeriodsMsg struct {
	claim claim.Claim
}

// detailModel displays all fields of a saved claim.
type detailModel struct {
	claim       claim.Claim
	periodCount int
	revealSSN   bool
	cursor      int
	flash       string
}

func newDetailModel(c claim.Claim, revealSSN bool) detailModel {
	return detailModel{claim: c, revealSSN: revealSSN}
}

// claimFields lists a claim's fields in form order. The SSN shows only its
// last four digits unless revealSSN is set.
func claimFields(c claim.Claim, revealSSN bool) []claimField {
	ssn := c.SSN
	if !revealSSN {
		ssn = inputfmt.PartialSSN(ssn)
	}

	fields := []claimField{
		{"id", c.ID},
		{"name", c.Name()},
		{i18n.T("fields.ssn"), ssn},
	}

	if c.SelfEmployed {
		fields = append(fields, claimField{i18n.T("fields.selfEmployed"), "yes"})
	} else {
		fields = append(fields,
			claimField{i18n.T("fields.employer"), c.EmployerName},
			claimField{i18n.T("fields.fein"), c.EmployerFEIN},
		)
	}

	return append(fields,
		claimField{i18n.T("fields.phone"), c.Phone},
		claimField{i18n.T("fields.zip"), c.Zip},
		claimField{i18n.T("fields.dob"), c.DOB},
		claimField{i18n.T("fields.wage"), c.WeeklyWage},
		claimField{i18n.T("fields.hours"), c.HoursPerWeek},
	)
}

func (m detailModel) fields() []claimField {
	return claimFields(m.claim, m.revealSSN)
}

func (m detailModel) Init() tea.Cmd {
	return nil
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m detailModel) handleKey(msg tea.KeyMsg) (detailModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, navigate(viewClaimList)
	}

	fields := m.fields()

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(fields)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		if err := copyToClipboard(fields[m.cursor].value); err != nil {
			m.flash = i18n.T("errors.copy", i18n.Vars{"err": err})
			return m, clearFlashAfter()
		}
		m.flash = i18n.T("claims.copied")
		return m, clearFlashAfter()
	}

	c := m.claim
	switch msg.String() {
	case "c":
		if err := copyToClipboard(allFieldsText(fields)); err != nil {
			m.flash = i18n.T("errors.copy", i18n.Vars{"err": err})
			return m, clearFlashAfter()
		}
		m.flash = i18n.T("claims.copiedAll")
		return m, clearFlashAfter()

	case "r":
		m.revealSSN = !m.revealSSN
		return m, nil

	case "e":
		return m, func() tea.Msg { return editClaimMsg{claim: c} }

	case "p":
		return m, func() tea.Msg { return viewPeriodsMsg{claim: c} }

	case "d":
		return m, func() tea.Msg { return withdrawStartMsg{claim: c} }
	}

	return m, nil
}

func allFieldsText(fields []claimField) string {
	var b strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&b, "%s: %s\n", f.label, f.value)
	}
	return b.String()
}

func (m detailModel) View() string {
	s := "\n  " + zstyle.Subtitle.Render(m.claim.Name()) + "\n\n"

	for i, f := range m.fields() {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-14s", f.label))
		s += cursorPrefix(i == m.cursor) + label + " " + f.value + "\n"
	}

	s += "\n"
	if m.periodCount > 0 {
		s += "  " + zstyle.MutedText.Render(i18n.T("claims.periods", i18n.Vars{"count": m.periodCount})) + "\n"
	} else {
		s += "  " + zstyle.MutedText.Render(i18n.T("periods.empty")+"  p to add") + "\n"
	}

	s += "\n"
	s += flashLine(m.flash)
	return s
}
