package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zclaim/internal/claim"
	"github.com/zarlcorp/zclaim/internal/i18n"
	"github.com/zarlcorp/zclaim/internal/withdraw"
)

type withdrawPhase int

const (
	withdrawConfirm withdrawPhase = iota
	withdrawRunning
	withdrawDone
)

// withdrawStartMsg opens the confirmation dialog for a claim.
type withdrawStartMsg struct {
	claim claim.Claim
}

// withdrawClaimMsg requests the withdrawal cascade for a claim.
type withdrawClaimMsg struct {
	claim claim.Claim
}

// withdrawResultMsg carries the result of a completed withdrawal.
type withdrawResultMsg struct {
	result withdraw.Result
}

// withdrawModel manages the withdrawal confirmation and result display.
type withdrawModel struct {
	claim  claim.Claim
	plan   []string
	phase  withdrawPhase
	result withdraw.Result
}

func newWithdrawModel(c claim.Claim, plan []string) withdrawModel {
	return withdrawModel{
		claim: c,
		plan:  plan,
		phase: withdrawConfirm,
	}
}

func (m withdrawModel) Init() tea.Cmd {
	return nil
}

func (m withdrawModel) Update(msg tea.Msg) (withdrawModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case withdrawResultMsg:
		m.result = msg.result
		m.phase = withdrawDone
		return m, returnToListAfter()
	}

	return m, nil
}

func (m withdrawModel) handleKey(msg tea.KeyMsg) (withdrawModel, tea.Cmd) {
	switch m.phase {
	case withdrawConfirm:
		return m.handleConfirmKey(msg)
	case withdrawDone:
		return m, navigate(viewClaimList)
	}
	return m, nil
}

func (m withdrawModel) handleConfirmKey(msg tea.KeyMsg) (withdrawModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if msg.String() != "y" {
		c := m.claim
		return m, func() tea.Msg { return viewClaimMsg{claim: c} }
	}

	m.phase = withdrawRunning
	c := m.claim
	return m, func() tea.Msg { return withdrawClaimMsg{claim: c} }
}

func (m withdrawModel) View() string {
	switch m.phase {
	case withdrawConfirm:
		return m.viewConfirm()
	case withdrawRunning:
		return "\n  " + zstyle.MutedText.Render(i18n.T("withdraw.running", i18n.Vars{"name": m.claim.Name()})) + "\n"
	case withdrawDone:
		return m.viewDone()
	}
	return ""
}

func (m withdrawModel) viewConfirm() string {
	s := "\n  " + zstyle.Subtitle.Render(i18n.T("withdraw.title", i18n.Vars{"name": m.claim.Name()})) + "\n\n"

	s += "  " + zstyle.MutedText.Render(i18n.T("withdraw.intro")) + "\n"
	for _, step := range m.plan {
		s += fmt.Sprintf("  %s %s\n", zstyle.StatusWarn.Render("-"), step)
	}

	s += "\n"
	s += "  " + zstyle.StatusWarn.Render(i18n.T("withdraw.irreversible")) + " (y/n)\n"
	return s
}

func (m withdrawModel) viewDone() string {
	var b strings.Builder

	title, _, _ := strings.Cut(m.result.Summary(), "\n")

	header := zstyle.StatusOK
	if m.result.HasErrors() {
		header = zstyle.StatusWarn
	}
	b.WriteString("\n  " + header.Render(title) + "\n\n")

	for _, step := range m.result.Steps {
		if step.Err != nil {
			b.WriteString("  " + zstyle.StatusWarn.Render(fmt.Sprintf("- %s: %v", step.Description, step.Err)) + "\n")
			continue
		}
		b.WriteString("  - " + step.Description + "\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + zstyle.MutedText.Render(i18n.T("withdraw.continue")) + "\n")
	return b.String()
}

// returnToListAfter goes back to the claim list once the result has been
// on screen for a few seconds.
func returnToListAfter() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return navigateMsg{view: viewClaimList}
	})
}
