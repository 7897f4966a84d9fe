package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zclaim/internal/claim"
	"github.com/zarlcorp/zclaim/internal/formstate"
	"github.com/zarlcorp/zclaim/internal/i18n"
	"github.com/zarlcorp/zclaim/internal/store"
)

// addPeriodMsg opens the period form for a new entry.
type addPeriodMsg struct {
	claim claim.Claim
}

// editPeriodMsg opens the period form on an existing entry.
type editPeriodMsg struct {
	claim  claim.Claim
	period claim.LeavePeriod
}

// deletePeriodMsg requests deleting a leave period.
type deletePeriodMsg struct {
	id string
}

// periodsModel lists the leave periods of one claim.
type periodsModel struct {
	claim      claim.Claim
	periods    *formstate.Repeatable[claim.LeavePeriod]
	cursor     int
	confirming bool
	flash      string
}

func newPeriodsModel(c claim.Claim, ps []claim.LeavePeriod) periodsModel {
	return periodsModel{
		claim:   c,
		periods: formstate.NewRepeatable(store.MaxLeavePeriods, ps...),
	}
}

func (m periodsModel) Init() tea.Cmd {
	return nil
}

func (m periodsModel) Update(msg tea.Msg) (periodsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirming {
			return m.handleConfirmKey(msg)
		}
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m periodsModel) handleKey(msg tea.KeyMsg) (periodsModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		c := m.claim
		return m, func() tea.Msg { return viewClaimMsg{claim: c} }
	}

	c := m.claim
	if msg.String() == "a" {
		if m.periods.Full() {
			m.flash = i18n.T("periods.limit", i18n.Vars{"limit": m.periods.Limit})
			return m, clearFlashAfter()
		}
		return m, func() tea.Msg { return addPeriodMsg{claim: c} }
	}

	if m.periods.Len() == 0 {
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < m.periods.Len()-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		p, err := m.periods.At(m.cursor)
		if err != nil {
			return m, nil
		}
		return m, func() tea.Msg { return editPeriodMsg{claim: c, period: p} }
	}

	if msg.String() == "d" {
		m.confirming = true
		return m, nil
	}

	return m, nil
}

func (m periodsModel) handleConfirmKey(msg tea.KeyMsg) (periodsModel, tea.Cmd) {
	m.confirming = false
	if msg.String() != "y" {
		return m, nil
	}

	p, err := m.periods.Remove(m.cursor)
	if err != nil {
		return m, nil
	}
	if m.cursor >= m.periods.Len() && m.cursor > 0 {
		m.cursor--
	}

	id := p.ID
	return m, func() tea.Msg { return deletePeriodMsg{id: id} }
}

func (m periodsModel) View() string {
	s := "\n  " + zstyle.Subtitle.Render(m.claim.Name()) + "  " +
		zstyle.MutedText.Render(i18n.T("periods.title", i18n.Vars{"count": m.periods.Len()})) + "\n\n"

	if m.periods.Len() == 0 {
		s += "  " + zstyle.MutedText.Render(i18n.T("periods.empty")) + "\n"
	}

	for i, p := range m.periods.Entries() {
		line := fmt.Sprintf("%s  %s  %s", p.StartDate, zstyle.MutedText.Render("→"), p.EndDate)
		if p.ReducedHours != "" {
			line += "  " + zstyle.MutedText.Render(p.ReducedHours+" hrs")
		}
		s += cursorPrefix(i == m.cursor) + line + "\n"
	}

	s += "\n"
	if m.confirming {
		p, err := m.periods.At(m.cursor)
		if err == nil {
			s += "  " + zstyle.StatusWarn.Render(i18n.T("periods.confirmDelete", i18n.Vars{
				"start": p.StartDate,
				"end":   p.EndDate,
			})) + "\n"
			return s
		}
	}

	s += flashLine(m.flash)
	return s
}
