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
	"github.com/zarlcorp/zclaim/internal/pagerange"
)

// listModel displays one page of saved claims.
type listModel struct {
	claims       []claim.Claim
	summary      pagerange.Summary
	periodCounts map[string]int
	revealSSN    bool
	cursor       int
	flash        string
}

// pageMsg asks the root model to load another page of claims.
type pageMsg struct {
	page int
}

// viewClaimMsg requests viewing a specific claim.
type viewClaimMsg struct {
	claim claim.Claim
}

func newListModel(cs []claim.Claim, sum pagerange.Summary) listModel {
	return listModel{claims: cs, summary: sum}
}

func (m listModel) Init() tea.Cmd {
	return nil
}

func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m listModel) handleKey(msg tea.KeyMsg) (listModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, navigate(viewMenu)
	}

	switch msg.String() {
	case "right", "l", "n":
		if m.summary.HasNext {
			page := m.summary.Page + 1
			return m, func() tea.Msg { return pageMsg{page: page} }
		}
		return m, nil
	case "left", "h", "p":
		if m.summary.HasPrevious {
			page := m.summary.Page - 1
			return m, func() tea.Msg { return pageMsg{page: page} }
		}
		return m, nil
	}

	if len(m.claims) == 0 {
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.claims)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		c := m.claims[m.cursor]
		return m, func() tea.Msg { return viewClaimMsg{claim: c} }
	}

	if msg.String() == "d" {
		c := m.claims[m.cursor]
		return m, func() tea.Msg { return withdrawStartMsg{claim: c} }
	}

	return m, nil
}

func (m listModel) View() string {
	s := "\n"

	if len(m.claims) == 0 {
		s += "  " + zstyle.MutedText.Render(i18n.T("claims.empty")) + "\n"
		s += "\n"
		s += flashLine(m.flash)
		return s
	}

	for i, c := range m.claims {
		ssn := c.SSN
		if !m.revealSSN {
			ssn = inputfmt.PartialSSN(ssn)
		}

		line := fmt.Sprintf("%-24s %-12s %s", truncate(c.Name(), 24), ssn, c.CreatedAt.Format("2006-01-02"))
		if n := m.periodCounts[c.ID]; n > 0 {
			line += "  " + zstyle.MutedText.Render(fmt.Sprintf("(%d)", n))
		}

		s += cursorPrefix(i == m.cursor) + line + "\n"
	}

	s += "\n"
	s += "  " + zstyle.MutedText.Render(i18n.T("claims.showing", i18n.Vars{
		"first": m.summary.First,
		"last":  m.summary.Last,
		"total": m.summary.TotalItems,
	})) + "\n"
	if m.summary.TotalPages > 1 {
		s += "  " + renderPageBar(m.summary) + "\n"
	}

	s += "\n"
	s += flashLine(m.flash)
	return s
}

// renderPageBar draws the truncated page range with the current page
// highlighted and gaps muted.
func renderPageBar(sum pagerange.Summary) string {
	entries := pagerange.Truncate(sum.Page, sum.TotalPages)
	parts := make([]string, len(entries))
	for i, e := range entries {
		switch {
		case e.IsGap():
			parts[i] = zstyle.MutedText.Render(e.String())
		case e.Page() == sum.Page:
			parts[i] = pageStyle.Render(e.String())
		default:
			parts[i] = e.String()
		}
	}

	bar := strings.Join(parts, " ")
	if sum.HasPrevious {
		bar = "‹ " + bar
	}
	if sum.HasNext {
		bar += " ›"
	}
	return bar
}
