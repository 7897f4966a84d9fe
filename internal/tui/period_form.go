package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zclaim/internal/claim"
	"github.com/zarlcorp/zclaim/internal/i18n"
	"github.com/zarlcorp/zclaim/internal/inputfmt"
)

const (
	pfStartMonth = iota
	pfStartDay
	pfStartYear
	pfEndMonth
	pfEndDay
	pfEndYear
	pfHours
	pfCount
)

// periodFormModel handles add/edit for one leave period.
type periodFormModel struct {
	claim    claim.Claim
	inputs   [pfCount]textinput.Model
	focus    int
	editing  bool
	existing claim.LeavePeriod
	errMsg   string
}

// savePeriodMsg requests saving a leave period.
type savePeriodMsg struct {
	claim  claim.Claim
	period claim.LeavePeriod
}

func newPeriodFormModel(c claim.Claim, existing *claim.LeavePeriod) periodFormModel {
	var inputs [pfCount]textinput.Model

	start := newDateInputs()
	end := newDateInputs()
	copy(inputs[pfStartMonth:pfEndMonth], start[:])
	copy(inputs[pfEndMonth:pfHours], end[:])

	hours := textinput.New()
	hours.Prompt = ""
	hours.Placeholder = "0.00"
	hours.CharLimit = 8
	hours.Width = 8
	inputs[pfHours] = hours

	m := periodFormModel{claim: c, inputs: inputs}

	if existing != nil {
		m.editing = true
		m.existing = *existing
		setDate(&m.inputs[pfStartMonth], &m.inputs[pfStartDay], &m.inputs[pfStartYear], existing.StartDate)
		setDate(&m.inputs[pfEndMonth], &m.inputs[pfEndDay], &m.inputs[pfEndYear], existing.EndDate)
		m.inputs[pfHours].SetValue(existing.ReducedHours)
	}

	m.inputs[m.focus].Focus()
	return m
}

func (m periodFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m periodFormModel) Update(msg tea.Msg) (periodFormModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m periodFormModel) handleKey(msg tea.KeyMsg) (periodFormModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		c := m.claim
		return m, func() tea.Msg { return viewPeriodsMsg{claim: c} }
	}

	switch msg.String() {
	case "tab", "down":
		return m.moveFocus(1), textinput.Blink
	case "shift+tab", "up":
		return m.moveFocus(-1), textinput.Blink
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.submit()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m periodFormModel) moveFocus(dir int) periodFormModel {
	m = m.maskHours()
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + dir + pfCount) % pfCount
	m.inputs[m.focus].Focus()
	return m
}

func (m periodFormModel) maskHours() periodFormModel {
	if m.focus == pfHours {
		m.inputs[pfHours].SetValue(inputfmt.MaskValue(m.inputs[pfHours].Value(), inputfmt.KindHours))
	}
	return m
}

// build returns a normalized period from the inputs.
func (m periodFormModel) build(now time.Time) claim.LeavePeriod {
	p := m.existing
	if !m.editing {
		p = claim.LeavePeriod{
			ID:        claim.NewID(),
			ClaimID:   m.claim.ID,
			CreatedAt: now,
		}
	}

	p.StartDate = dateValue(m.inputs[pfStartMonth], m.inputs[pfStartDay], m.inputs[pfStartYear])
	p.EndDate = dateValue(m.inputs[pfEndMonth], m.inputs[pfEndDay], m.inputs[pfEndYear])
	p.ReducedHours = m.inputs[pfHours].Value()
	return p.Normalize()
}

func (m periodFormModel) submit() (periodFormModel, tea.Cmd) {
	m = m.maskHours()
	p := m.build(time.Now().UTC())

	if errs := p.Validate(); len(errs) > 0 {
		m.errMsg = errs[0].Message
		m.inputs[m.focus].Blur()
		m.focus = pfStartMonth
		if errs[0].Field == claim.FieldEndDate {
			m.focus = pfEndMonth
		}
		m.inputs[m.focus].Focus()
		return m, nil
	}

	m.errMsg = ""
	c := m.claim
	return m, func() tea.Msg { return savePeriodMsg{claim: c, period: p} }
}

func (m periodFormModel) View() string {
	title := i18n.T("periods.addTitle")
	if m.editing {
		title = i18n.T("periods.editTitle")
	}

	s := fmt.Sprintf("\n  %s\n", zstyle.Title.Render(title))
	s += "  " + zstyle.MutedText.Render(m.claim.Name()) + "\n\n"

	rows := []struct {
		label  string
		view   string
		active bool
	}{
		{
			i18n.T("fields.startDate"),
			dateView(m.inputs[pfStartMonth], m.inputs[pfStartDay], m.inputs[pfStartYear]),
			m.focus <= pfStartYear,
		},
		{
			i18n.T("fields.endDate"),
			dateView(m.inputs[pfEndMonth], m.inputs[pfEndDay], m.inputs[pfEndYear]),
			m.focus >= pfEndMonth && m.focus <= pfEndYear,
		},
		{
			i18n.T("fields.reducedHours"),
			m.inputs[pfHours].View(),
			m.focus == pfHours,
		},
	}

	for _, r := range rows {
		cursor := "  "
		if r.active {
			cursor = "> "
		}
		label := zstyle.MutedText.Render(fmt.Sprintf("%-14s", r.label))
		s += fmt.Sprintf("  %s%s %s\n", cursor, label, r.view)
	}

	s += "\n"
	s += errLine(m.errMsg)

	help := []string{"tab next", "shift+tab prev", "enter save", "esc cancel"}
	s += "  " + zstyle.MutedText.Render(strings.Join(help, "  ")) + "\n"
	return s
}
