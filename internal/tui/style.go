package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
)

// accent is the palette color for highlights and the header.
var accent = zstyle.ZburnAccent

var (
	accentStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)
	pageStyle   = lipgloss.NewStyle().Foreground(accent).Underline(true)
)

// navigateMsg tells the root model to switch views.
type navigateMsg struct {
	view viewID
}

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

func navigate(v viewID) tea.Cmd {
	return func() tea.Msg { return navigateMsg{view: v} }
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

// flashLine renders the flash, always reserving the line so the layout does
// not shift.
func flashLine(flash string) string {
	if flash == "" {
		return "\n"
	}
	return "  " + zstyle.StatusOK.Render(flash) + "\n"
}

// errLine renders a validation or store error, reserving the line like
// flashLine.
func errLine(msg string) string {
	if msg == "" {
		return "\n"
	}
	return "  " + zstyle.StatusErr.Render(msg) + "\n"
}

func cursorPrefix(active bool) string {
	if active {
		return "  " + accentStyle.Render("▸") + " "
	}
	return "    "
}

func truncate(s string, max int) string {
	if len([]rune(s)) <= max {
		return s
	}
	return string([]rune(s)[:max-1]) + "…"
}
