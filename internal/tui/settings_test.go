package tui

import (
	"strings"
	"testing"

	"github.com/zarlcorp/zclaim/internal/store"
)

func TestNextPageSize(t *testing.T) {
	tests := []struct {
		cur  int
		want int
	}{
		{5, 10},
		{10, 25},
		{25, 50},
		{50, 5},
		{7, 5},
		{0, 5},
	}

	for _, tt := range tests {
		if got := nextPageSize(tt.cur); got != tt.want {
			t.Errorf("nextPageSize(%d) = %d, want %d", tt.cur, got, tt.want)
		}
	}
}

func TestSettingsViewShowsPreferences(t *testing.T) {
	m := newSettingsModel(store.Preferences{PageSize: 25, RevealSSN: true})
	view := m.View()

	if !strings.Contains(view, "page size: 25") {
		t.Error("view should show page size")
	}
	if !strings.Contains(view, "reveal ssn: on") {
		t.Error("view should show reveal ssn state")
	}
}

func TestSettingsCyclePageSize(t *testing.T) {
	m := newSettingsModel(store.Preferences{PageSize: 10})

	m, cmd := m.Update(enterKey())
	msg, ok := execCmd(t, cmd).(saveSettingsMsg)
	if !ok {
		t.Fatal("enter should emit saveSettingsMsg")
	}
	if msg.prefs.PageSize != 25 {
		t.Errorf("page size = %d, want 25", msg.prefs.PageSize)
	}
	if m.prefs.PageSize != 25 {
		t.Errorf("model page size = %d, want 25", m.prefs.PageSize)
	}
}

func TestSettingsToggleRevealSSN(t *testing.T) {
	m := newSettingsModel(store.Preferences{PageSize: 10})
	m, _ = m.Update(keyMsg('j'))

	_, cmd := m.Update(spaceKey())
	msg, ok := execCmd(t, cmd).(saveSettingsMsg)
	if !ok {
		t.Fatal("space should emit saveSettingsMsg")
	}
	if !msg.prefs.RevealSSN {
		t.Error("reveal ssn should be toggled on")
	}
}

func TestSettingsBack(t *testing.T) {
	m := newSettingsModel(store.Preferences{})

	_, cmd := m.Update(escKey())
	if nav, ok := execCmd(t, cmd).(navigateMsg); !ok || nav.view != viewMenu {
		t.Error("esc should navigate to menu")
	}

	m.cursor = int(settingsBack)
	_, cmd = m.Update(enterKey())
	if nav, ok := execCmd(t, cmd).(navigateMsg); !ok || nav.view != viewMenu {
		t.Error("back item should navigate to menu")
	}
}

func TestSettingsCursorClamp(t *testing.T) {
	m := newSettingsModel(store.Preferences{})
	for range 10 {
		m, _ = m.Update(keyMsg('j'))
	}
	if m.cursor != int(settingsCount)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, int(settingsCount)-1)
	}
}
