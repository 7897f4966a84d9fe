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
	"github.com/zarlcorp/zclaim/internal/formstate"
	"github.com/zarlcorp/zclaim/internal/i18n"
	"github.com/zarlcorp/zclaim/internal/inputfmt"
)

const (
	cfFirstName = iota
	cfLastName
	cfSSN
	cfSelfEmployed
	cfEmployer
	cfFEIN
	cfPhone
	cfZip
	cfDOBMonth
	cfDOBDay
	cfDOBYear
	cfWage
	cfHours
	cfCount
)

// claimFieldNames maps each form slot to the claim field it edits. The three
// date of birth boxes share one field.
var claimFieldNames = [cfCount]string{
	cfFirstName:    claim.FieldFirstName,
	cfLastName:     claim.FieldLastName,
	cfSSN:          claim.FieldSSN,
	cfSelfEmployed: "selfEmployed",
	cfEmployer:     claim.FieldEmployer,
	cfFEIN:         claim.FieldFEIN,
	cfPhone:        claim.FieldPhone,
	cfZip:          claim.FieldZip,
	cfDOBMonth:     claim.FieldDOB,
	cfDOBDay:       claim.FieldDOB,
	cfDOBYear:      claim.FieldDOB,
	cfWage:         claim.FieldWage,
	cfHours:        claim.FieldHours,
}

// claimFieldMasks lists the slots formatted when focus leaves them.
var claimFieldMasks = map[int]inputfmt.Kind{
	cfSSN:   inputfmt.KindSSN,
	cfFEIN:  inputfmt.KindFEIN,
	cfPhone: inputfmt.KindPhone,
	cfZip:   inputfmt.KindZip,
	cfWage:  inputfmt.KindCurrency,
	cfHours: inputfmt.KindHours,
}

// claimFormModel handles add/edit for a claim.
type claimFormModel struct {
	inputs       [cfCount]textinput.Model
	focus        int
	selfEmployed bool
	employer     *formstate.Conditional
	editing      bool
	existing     claim.Claim
	errMsg       string
	flash        string
}

// saveClaimMsg requests saving a claim.
type saveClaimMsg struct {
	claim claim.Claim
}

func newClaimFormModel(existing *claim.Claim) claimFormModel {
	var inputs [cfCount]textinput.Model
	for i := range cfCount {
		ti := textinput.New()
		ti.CharLimit = 64
		ti.Width = 32
		ti.Prompt = ""
		inputs[i] = ti
	}

	dob := newDateInputs()
	inputs[cfDOBMonth], inputs[cfDOBDay], inputs[cfDOBYear] = dob[0], dob[1], dob[2]

	m := claimFormModel{
		inputs:   inputs,
		employer: formstate.NewConditional(claim.FieldEmployer, claim.FieldFEIN),
	}

	if existing != nil {
		m.editing = true
		m.existing = *existing
		m = m.fill(*existing)
	}

	m.inputs[m.focus].Focus()
	return m
}

// newSampleClaimForm returns an add form prefilled with c.
func newSampleClaimForm(c claim.Claim) claimFormModel {
	m := newClaimFormModel(nil)
	return m.fill(c)
}

func (m claimFormModel) fill(c claim.Claim) claimFormModel {
	m.inputs[cfFirstName].SetValue(c.FirstName)
	m.inputs[cfLastName].SetValue(c.LastName)
	m.inputs[cfSSN].SetValue(c.SSN)
	m.inputs[cfEmployer].SetValue(c.EmployerName)
	m.inputs[cfFEIN].SetValue(c.EmployerFEIN)
	m.inputs[cfPhone].SetValue(c.Phone)
	m.inputs[cfZip].SetValue(c.Zip)
	setDate(&m.inputs[cfDOBMonth], &m.inputs[cfDOBDay], &m.inputs[cfDOBYear], c.DOB)
	m.inputs[cfWage].SetValue(c.WeeklyWage)
	m.inputs[cfHours].SetValue(c.HoursPerWeek)

	if c.SelfEmployed != m.selfEmployed {
		m = m.toggleSelfEmployed()
	}
	return m
}

func (m claimFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m claimFormModel) Update(msg tea.Msg) (claimFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m.updateInput(msg)
}

func (m claimFormModel) handleKey(msg tea.KeyMsg) (claimFormModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		if m.editing {
			c := m.existing
			return m, func() tea.Msg { return viewClaimMsg{claim: c} }
		}
		return m, navigate(viewMenu)
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

	if m.focus == cfSelfEmployed {
		if msg.String() == " " || msg.String() == "x" {
			return m.toggleSelfEmployed(), nil
		}
		return m, nil
	}

	return m.updateInput(msg)
}

func (m claimFormModel) visible(i int) bool {
	if i == cfEmployer || i == cfFEIN {
		return !m.employer.Hidden()
	}
	return true
}

// moveFocus masks the field being left and focuses the next visible one in
// direction dir.
func (m claimFormModel) moveFocus(dir int) claimFormModel {
	m = m.applyMask(m.focus)
	m.inputs[m.focus].Blur()

	next := m.focus
	for {
		next = (next + dir + cfCount) % cfCount
		if m.visible(next) {
			break
		}
	}

	m.focus = next
	m.inputs[m.focus].Focus()
	return m
}

func (m claimFormModel) applyMask(i int) claimFormModel {
	if kind, ok := claimFieldMasks[i]; ok {
		m.inputs[i].SetValue(inputfmt.MaskValue(m.inputs[i].Value(), kind))
	}
	return m
}

// toggleSelfEmployed hides or restores the employer section. Hidden fields
// are cleared and come back as typed when the toggle is undone.
func (m claimFormModel) toggleSelfEmployed() claimFormModel {
	values := map[string]string{
		claim.FieldEmployer: m.inputs[cfEmployer].Value(),
		claim.FieldFEIN:     m.inputs[cfFEIN].Value(),
	}

	m.selfEmployed = !m.selfEmployed
	m.employer.Set(!m.selfEmployed, values)

	m.inputs[cfEmployer].SetValue(values[claim.FieldEmployer])
	m.inputs[cfFEIN].SetValue(values[claim.FieldFEIN])
	return m
}

func (m claimFormModel) updateInput(msg tea.Msg) (claimFormModel, tea.Cmd) {
	if m.focus == cfSelfEmployed {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// build returns a normalized claim from the inputs.
func (m claimFormModel) build(now time.Time) claim.Claim {
	var c claim.Claim
	if m.editing {
		c = m.existing
		c.UpdatedAt = now
	} else {
		c.ID = claim.NewID()
		c.CreatedAt = now
		c.UpdatedAt = now
	}

	c.FirstName = m.inputs[cfFirstName].Value()
	c.LastName = m.inputs[cfLastName].Value()
	c.SSN = m.inputs[cfSSN].Value()
	c.SelfEmployed = m.selfEmployed
	c.EmployerName = m.inputs[cfEmployer].Value()
	c.EmployerFEIN = m.inputs[cfFEIN].Value()
	c.Phone = m.inputs[cfPhone].Value()
	c.Zip = m.inputs[cfZip].Value()
	c.DOB = dateValue(m.inputs[cfDOBMonth], m.inputs[cfDOBDay], m.inputs[cfDOBYear])
	c.WeeklyWage = m.inputs[cfWage].Value()
	c.HoursPerWeek = m.inputs[cfHours].Value()

	return c.Normalize()
}

func (m claimFormModel) submit() (claimFormModel, tea.Cmd) {
	m = m.applyMask(m.focus)

	now := time.Now().UTC()
	c := m.build(now)

	if errs := c.Validate(now); len(errs) > 0 {
		m.errMsg = errs[0].Message
		m = m.focusField(errs[0].Field)
		return m, nil
	}

	m.errMsg = ""
	return m, func() tea.Msg { return saveClaimMsg{claim: c} }
}

// focusField moves focus to the first slot editing field.
func (m claimFormModel) focusField(field string) claimFormModel {
	for i, name := range claimFieldNames {
		if name == field && m.visible(i) {
			m.inputs[m.focus].Blur()
			m.focus = i
			m.inputs[m.focus].Focus()
			break
		}
	}
	return m
}

func (m claimFormModel) label(i int) string {
	return i18n.T("fields." + claimFieldNames[i])
}

func (m claimFormModel) View() string {
	action := i18n.T("claims.newTitle")
	if m.editing {
		action = i18n.T("claims.editTitle")
	}
	s := fmt.Sprintf("\n  %s\n", zstyle.Title.Render(action))
	if m.editing {
		s += "  " + zstyle.MutedText.Render(m.existing.Name()+"  "+m.existing.ID) + "\n"
	}
	s += "\n"

	for i := 0; i < cfCount; i++ {
		if !m.visible(i) || i == cfDOBDay || i == cfDOBYear {
			continue
		}

		label := zstyle.MutedText.Render(fmt.Sprintf("%-14s", m.label(i)))
		cursor := "  "

		var fieldView string
		switch i {
		case cfSelfEmployed:
			box := "[ ]"
			if m.selfEmployed {
				box = "[x]"
			}
			fieldView = box
			if m.focus == i {
				cursor = "> "
			}
		case cfDOBMonth:
			fieldView = dateView(m.inputs[cfDOBMonth], m.inputs[cfDOBDay], m.inputs[cfDOBYear])
			if m.focus >= cfDOBMonth && m.focus <= cfDOBYear {
				cursor = "> "
			}
		default:
			fieldView = m.inputs[i].View()
			if m.focus == i {
				cursor = "> "
			}
		}

		s += fmt.Sprintf("  %s%s %s\n", cursor, label, fieldView)
	}

	s += "\n"
	if m.errMsg != "" {
		s += errLine(m.errMsg)
	} else {
		s += flashLine(m.flash)
	}

	help := []string{"tab next", "shift+tab prev", "space toggle", "enter save", "esc cancel"}
	s += "  " + zstyle.MutedText.Render(strings.Join(help, "  ")) + "\n"
	return s
}
