package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zclaim/internal/i18n"
)

type menuChoice int

const (
	menuNewClaim menuChoice = iota
	menuSample
	menuBrowse
	menuSettings
	menuQuit
)

func menuItems() []string {
	return []string{
		i18n.T("menu.newClaim"),
		i18n.T("menu.sample"),
		i18n.T("menu.browse"),
		i18n.T("menu.settings"),
		i18n.T("menu.quit"),
	}
}

// menuModel is the main menu view.
type menuModel struct {
	cursor     int
	version    string
	claimCount int
}

// newClaimMsg opens the claim form, prefilled with a sample when sample is
// set.
type newClaimMsg struct {
	sample bool
}

func newMenuModel(version string) menuModel {
	return menuModel{version: version}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (menuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, zstyle.KeyQuit) {
			return m, tea.Quit
		}

		if key.Matches(msg, zstyle.KeyUp) {
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyDown) {
			if m.cursor < len(menuItems())-1 {
				m.cursor++
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			return m, m.selectItem()
		}
	}

	return m, nil
}

func (m menuModel) selectItem() tea.Cmd {
	switch menuChoice(m.cursor) {
	case menuNewClaim:
		return func() tea.Msg { return newClaimMsg{} }
	case menuSample:
		return func() tea.Msg { return newClaimMsg{sample: true} }
	case menuBrowse:
		return navigate(viewClaimList)
	case menuSettings:
		return navigate(viewSettings)
	case menuQuit:
		return tea.Quit
	}
	return nil
}

func (m menuModel) View() string {
	title := zstyle.Title.Render(i18n.T("app.name"))
	ver := zstyle.MutedText.Render(m.version)

	s := fmt.Sprintf("\n  %s %s\n\n", title, ver)

	for i, item := range menuItems() {
		if menuChoice(i) == menuBrowse && m.claimCount > 0 {
			item += " " + zstyle.MutedText.Render(fmt.Sprintf("(%d)", m.claimCount))
		}
		mi := zstyle.MenuItem{Label: item, Active: m.cursor == i}
		s += zstyle.RenderMenuItem(mi, accent) + "\n"
	}

	s += "\n  " + zstyle.MutedText.Render("j/k navigate  enter select  q quit") + "\n\n"
	return s
}
