package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zclaim/internal/i18n"
	"github.com/zarlcorp/zclaim/internal/store"
)

type settingsChoice int

const (
	settingsPageSize settingsChoice = iota
	settingsRevealSSN
	settingsBack
	settingsCount
)

// saveSettingsMsg requests persisting preferences.
type saveSettingsMsg struct {
	prefs store.Preferences
}

// settingsModel edits display preferences. Every change is saved at once.
type settingsModel struct {
	cursor int
	prefs  store.Preferences
	flash  string
}

func newSettingsModel(p store.Preferences) settingsModel {
	return settingsModel{prefs: p}
}

func (m settingsModel) Init() tea.Cmd {
	return nil
}

func (m settingsModel) Update(msg tea.Msg) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m settingsModel) handleKey(msg tea.KeyMsg) (settingsModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, navigate(viewMenu)
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < int(settingsCount)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) || msg.String() == " " {
		return m.selectItem()
	}

	return m, nil
}

func (m settingsModel) selectItem() (settingsModel, tea.Cmd) {
	switch settingsChoice(m.cursor) {
	case settingsPageSize:
		m.prefs.PageSize = nextPageSize(m.prefs.PageSize)
	case settingsRevealSSN:
		m.prefs.RevealSSN = !m.prefs.RevealSSN
	case settingsBack:
		return m, navigate(viewMenu)
	}

	p := m.prefs
	return m, func() tea.Msg { return saveSettingsMsg{prefs: p} }
}

// nextPageSize cycles through store.PageSizes. A size not in the list
// starts the cycle over.
func nextPageSize(cur int) int {
	for i, n := range store.PageSizes {
		if n == cur {
			return store.PageSizes[(i+1)%len(store.PageSizes)]
		}
	}
	return store.PageSizes[0]
}

func onOff(b bool) string {
	if b {
		return i18n.T("settings.on")
	}
	return i18n.T("settings.off")
}

func (m settingsModel) View() string {
	items := []string{
		i18n.T("settings.pageSize", i18n.Vars{"size": fmt.Sprint(m.prefs.PageSize)}),
		i18n.T("settings.revealSSN", i18n.Vars{"state": onOff(m.prefs.RevealSSN)}),
		i18n.T("settings.back"),
	}

	s := "\n"
	for i, item := range items {
		mi := zstyle.MenuItem{Label: item, Active: m.cursor == i}
		s += zstyle.RenderMenuItem(mi, accent) + "\n"
	}

	s += "\n"
	s += flashLine(m.flash)
	return s
}
