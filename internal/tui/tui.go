// Package tui implements the root Bubble Tea model for zclaim.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zclaim/internal/claim"
	"github.com/zarlcorp/zclaim/internal/i18n"
	"github.com/zarlcorp/zclaim/internal/pagerange"
	"github.com/zarlcorp/zclaim/internal/store"
	"github.com/zarlcorp/zclaim/internal/withdraw"
)

type viewID int

const (
	viewPassword viewID = iota
	viewMenu
	viewClaimForm
	viewClaimList
	viewClaimDetail
	viewPeriodList
	viewPeriodForm
	viewWithdraw
	viewSettings
)

// Model is the root TUI model.
type Model struct {
	version  string
	dataDir  string
	gen      *claim.Generator
	store    *store.Store
	prefs    store.Preferences
	firstRun bool
	page     int

	active     viewID
	password   passwordModel
	menu       menuModel
	claimForm  claimFormModel
	list       listModel
	detail     detailModel
	periods    periodsModel
	periodForm periodFormModel
	withdraw   withdrawModel
	settings   settingsModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model.
func New(version, dataDir string, gen *claim.Generator, firstRun bool) Model {
	return Model{
		version:  version,
		dataDir:  dataDir,
		gen:      gen,
		firstRun: firstRun,
		page:     1,
		prefs:    store.Preferences{PageSize: store.DefaultPageSize},
		active:   viewPassword,
		password: newPasswordModel(firstRun),
		menu:     newMenuModel(version),
	}
}

func (m Model) Init() tea.Cmd {
	return m.password.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case passwordSubmitMsg:
		return m.openStore(msg.password)

	case navigateMsg:
		return m.navigate(msg.view)

	case newClaimMsg:
		return m.handleNewClaim(msg.sample)

	case saveClaimMsg:
		return m.handleSaveClaim(msg.claim)

	case pageMsg:
		return m.loadList(msg.page)

	case viewClaimMsg:
		return m.handleViewClaim(msg.claim)

	case editClaimMsg:
		c := msg.claim
		m.claimForm = newClaimFormModel(&c)
		m.active = viewClaimForm
		return m, m.claimForm.Init()

	case viewPeriodsMsg:
		return m.loadPeriods(msg.claim, "")

	case addPeriodMsg:
		m.periodForm = newPeriodFormModel(msg.claim, nil)
		m.active = viewPeriodForm
		return m, m.periodForm.Init()

	case editPeriodMsg:
		p := msg.period
		m.periodForm = newPeriodFormModel(msg.claim, &p)
		m.active = viewPeriodForm
		return m, m.periodForm.Init()

	case savePeriodMsg:
		return m.handleSavePeriod(msg.claim, msg.period)

	case deletePeriodMsg:
		return m.handleDeletePeriod(msg.id)

	case withdrawStartMsg:
		return m.startWithdraw(msg.claim)

	case withdrawClaimMsg:
		return m.executeWithdraw(msg.claim)

	case saveSettingsMsg:
		return m.handleSaveSettings(msg.prefs)
	}

	return m.updateActive(msg)
}

func (m Model) View() string {
	// password and menu include the logo, render directly
	switch m.active {
	case viewPassword:
		return m.password.View()
	case viewMenu:
		return m.menu.View()
	}

	var content string
	switch m.active {
	case viewClaimForm:
		content = m.claimForm.View()
	case viewClaimList:
		content = m.list.View()
	case viewClaimDetail:
		content = m.detail.View()
	case viewPeriodList:
		content = m.periods.View()
	case viewPeriodForm:
		content = m.periodForm.View()
	case viewWithdraw:
		content = m.withdraw.View()
	case viewSettings:
		content = m.settings.View()
	}

	header := zstyle.RenderHeader(i18n.T("app.name"), viewTitle(m.active), accent)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewClaimForm, viewClaimDetail:
		return i18n.T("claims.detailTitle")
	case viewClaimList:
		return i18n.T("claims.title")
	case viewPeriodList, viewPeriodForm:
		return i18n.T("periods.heading")
	case viewWithdraw:
		return i18n.T("withdraw.heading")
	case viewSettings:
		return i18n.T("settings.title")
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewClaimList:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "h/l", Desc: "page"},
			{Key: "enter", Desc: "view"},
			{Key: "d", Desc: "withdraw"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewClaimDetail:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "copy field"},
			{Key: "c", Desc: "copy all"},
			{Key: "r", Desc: "reveal"},
			{Key: "e", Desc: "edit"},
			{Key: "p", Desc: "periods"},
			{Key: "d", Desc: "withdraw"},
			{Key: "esc", Desc: "back"},
		}
	case viewPeriodList:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "edit"},
			{Key: "a", Desc: "add"},
			{Key: "d", Desc: "delete"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewClaimForm, viewPeriodForm:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "next"},
			{Key: "shift+tab", Desc: "prev"},
			{Key: "enter", Desc: "save"},
			{Key: "esc", Desc: "cancel"},
		}
	case viewWithdraw:
		return []zstyle.HelpPair{
			{Key: "y", Desc: "confirm"},
			{Key: "n", Desc: "cancel"},
			{Key: "q", Desc: "quit"},
		}
	case viewSettings:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "change"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewPassword:
		m.password, cmd = m.password.Update(msg)
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewClaimForm:
		m.claimForm, cmd = m.claimForm.Update(msg)
	case viewClaimList:
		m.list, cmd = m.list.Update(msg)
	case viewClaimDetail:
		m.detail, cmd = m.detail.Update(msg)
	case viewPeriodList:
		m.periods, cmd = m.periods.Update(msg)
	case viewPeriodForm:
		m.periodForm, cmd = m.periodForm.Update(msg)
	case viewWithdraw:
		m.withdraw, cmd = m.withdraw.Update(msg)
	case viewSettings:
		m.settings, cmd = m.settings.Update(msg)
	}

	return m, cmd
}

func (m Model) openStore(password string) (tea.Model, tea.Cmd) {
	s, err := store.Open(m.dataDir, []byte(password))
	if err != nil {
		m.password, _ = m.password.Update(passwordErrMsg{err: err})
		return m, nil
	}

	m.store = s
	m.prefs = s.Preferences()
	return m.navigate(viewMenu)
}

func (m Model) navigate(view viewID) (tea.Model, tea.Cmd) {
	switch view {
	case viewMenu:
		mm := newMenuModel(m.version)
		if m.store != nil {
			if cs, err := m.store.Claims(); err == nil {
				mm.claimCount = len(cs)
			}
		}
		m.menu = mm
		m.active = viewMenu
		return m, tea.ClearScreen

	case viewClaimList:
		m, cmd := m.loadList(m.page)
		return m, tea.Batch(cmd, tea.ClearScreen)

	case viewClaimDetail:
		m.detail.periodCount = m.countPeriods(m.detail.claim.ID)
		m.active = viewClaimDetail
		return m, tea.ClearScreen

	case viewSettings:
		m.settings = newSettingsModel(m.prefs)
		m.active = viewSettings
		return m, tea.ClearScreen
	}

	return m, nil
}

func (m Model) loadList(page int) (Model, tea.Cmd) {
	if m.store == nil {
		m.list = newListModel(nil, emptySummary(m.prefs.PageSize))
		m.active = viewClaimList
		return m, nil
	}

	cs, sum, err := m.store.Page(page, m.prefs.PageSize)
	if err != nil {
		m.list = newListModel(nil, emptySummary(m.prefs.PageSize))
		m.list.flash = i18n.T("errors.load", i18n.Vars{"err": err})
		m.active = viewClaimList
		return m, clearFlashAfter()
	}

	m.page = sum.Page
	m.list = newListModel(cs, sum)
	m.list.revealSSN = m.prefs.RevealSSN
	if counts, err := m.store.PeriodCounts(); err == nil {
		m.list.periodCounts = counts
	}
	m.active = viewClaimList
	return m, nil
}

func (m Model) countPeriods(claimID string) int {
	if m.store == nil {
		return 0
	}
	ps, err := m.store.PeriodsFor(claimID)
	if err != nil {
		return 0
	}
	return len(ps)
}

func (m Model) handleNewClaim(sample bool) (tea.Model, tea.Cmd) {
	if sample {
		m.claimForm = newSampleClaimForm(m.gen.Generate())
	} else {
		m.claimForm = newClaimFormModel(nil)
	}
	m.active = viewClaimForm
	return m, tea.Batch(m.claimForm.Init(), tea.ClearScreen)
}

func (m Model) handleSaveClaim(c claim.Claim) (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m, nil
	}

	if err := m.store.PutClaim(c); err != nil {
		m.claimForm.errMsg = i18n.T("errors.save", i18n.Vars{"err": err})
		return m, nil
	}

	m.detail = newDetailModel(c, m.prefs.RevealSSN)
	m.detail.periodCount = m.countPeriods(c.ID)
	m.detail.flash = i18n.T("claims.saved")
	m.active = viewClaimDetail
	return m, clearFlashAfter()
}

func (m Model) handleViewClaim(c claim.Claim) (tea.Model, tea.Cmd) {
	m.detail = newDetailModel(c, m.prefs.RevealSSN)
	m.detail.periodCount = m.countPeriods(c.ID)
	m.active = viewClaimDetail
	return m, nil
}

// loadPeriods shows the leave periods of c with an optional flash.
func (m Model) loadPeriods(c claim.Claim, flash string) (tea.Model, tea.Cmd) {
	if m.store == nil {
		m.periods = newPeriodsModel(c, nil)
		m.active = viewPeriodList
		return m, nil
	}

	ps, err := m.store.PeriodsFor(c.ID)
	if err != nil {
		m.periods = newPeriodsModel(c, nil)
		m.periods.flash = i18n.T("errors.load", i18n.Vars{"err": err})
		m.active = viewPeriodList
		return m, clearFlashAfter()
	}

	m.periods = newPeriodsModel(c, ps)
	m.periods.flash = flash
	m.active = viewPeriodList
	if flash != "" {
		return m, clearFlashAfter()
	}
	return m, nil
}

func (m Model) handleSavePeriod(c claim.Claim, p claim.LeavePeriod) (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m, nil
	}

	if err := m.store.PutPeriod(p); err != nil {
		m.periodForm.errMsg = i18n.T("errors.save", i18n.Vars{"err": err})
		return m, nil
	}

	return m.loadPeriods(c, i18n.T("claims.saved"))
}

func (m Model) handleDeletePeriod(id string) (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m, nil
	}

	c := m.periods.claim
	if err := m.store.DeletePeriod(id); err != nil {
		return m.loadPeriods(c, i18n.T("errors.delete", i18n.Vars{"err": err}))
	}
	return m.loadPeriods(c, i18n.T("periods.deleted"))
}

func (m Model) startWithdraw(c claim.Claim) (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m, nil
	}

	m.withdraw = newWithdrawModel(c, withdraw.Plan(m.withdrawRequest(c)))
	m.active = viewWithdraw
	return m, tea.ClearScreen
}

func (m Model) executeWithdraw(c claim.Claim) (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m, nil
	}

	req := m.withdrawRequest(c)
	return m, func() tea.Msg {
		return withdrawResultMsg{result: withdraw.Execute(context.Background(), req)}
	}
}

func (m Model) withdrawRequest(c claim.Claim) withdraw.Request {
	return withdraw.Request{
		Claim:   c,
		Periods: m.store,
		Claims:  m.store,
	}
}

func (m Model) handleSaveSettings(p store.Preferences) (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m, nil
	}

	if err := m.store.SavePreferences(p); err != nil {
		m.settings.flash = i18n.T("errors.save", i18n.Vars{"err": err})
		return m, clearFlashAfter()
	}

	m.prefs = m.store.Preferences()
	m.settings.prefs = m.prefs
	m.settings.flash = i18n.T("settings.saved")
	return m, clearFlashAfter()
}

func emptySummary(pageSize int) pagerange.Summary {
	return pagerange.Summarize(1, pageSize, 0)
}

// Close cleans up resources. Call after the program exits.
func (m Model) Close() {
	if m.store != nil {
		m.store.Close()
	}
}
