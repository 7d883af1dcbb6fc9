// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-riot-switcher/internal/service"
	"github.com/MKhiriev/go-riot-switcher/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type tab int

const (
	tabAccounts tab = iota
	tabProfiles
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

type mainLoopModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	tab      tab
	accounts []string
	active   string
	accIdx   int
	profiles []models.PreferenceProfile
	profIdx  int
	running  bool

	loading bool
	busy    bool
	spinner spinner.Model
	status  string

	prompting bool
	promptTab tab
	prompt    textinput.Model
	promptErr string

	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	pendingTab    tab

	showError    bool
	errorOverlay errorOverlayModel

	showBuildInfo bool
	quitByUser    bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) mainLoopModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return mainLoopModel{
		ctx:       ctx,
		services:  services,
		buildInfo: buildInfo,
		loading:   true,
		spinner:   sp,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadAccounts(), m.cmdLoadProfiles(), m.waitForStatus(), m.spinner.Tick)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case clientStatusMsg:
		m.running = msg.running
		return m, m.waitForStatus()
	case accountsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.accounts = msg.names
		m.active = msg.active
		m.accIdx = clampIndex(m.accIdx, len(m.accounts))
		return m, nil
	case profilesLoadedMsg:
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.profiles = msg.profiles
		m.profIdx = clampIndex(m.profIdx, len(m.profiles))
		return m, nil
	case accountSavedMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.status = fmt.Sprintf("Account %q saved successfully", msg.snapshot.Name)
		return m, m.cmdLoadAccounts()
	case switchDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.status = outgoingStatus(msg.result.Outgoing)
			return m.fail(msg.err), m.cmdLoadAccounts()
		}
		m.status = switchStatus(msg.result)
		return m, m.cmdLoadAccounts()
	case accountDeletedMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.status = fmt.Sprintf("Account %q deleted", msg.name)
		return m, m.cmdLoadAccounts()
	case profileSavedMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.status = fmt.Sprintf("Profile %q saved successfully", msg.profile.Name)
		return m, m.cmdLoadProfiles()
	case profileLoadedMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.status = fmt.Sprintf("Profile %q applied (status %d)", msg.name, msg.status)
		return m, nil
	case profileDeletedMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.status = fmt.Sprintf("Profile %q deleted", msg.name)
		return m, m.cmdLoadProfiles()
	case profileExportedMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		if err := copyToClipboard(msg.json); err != nil {
			return m.fail(fmt.Errorf("copy to clipboard: %w", err)), nil
		}
		m.status = fmt.Sprintf("Profile %q copied to clipboard", msg.name)
		return m, nil
	case clientRestartedMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.status = "Riot Client restarted"
		return m, nil
	case newAccountLaunchedMsg:
		m.busy = false
		if msg.err != nil {
			m.status = outgoingStatus(msg.outgoing)
			return m.fail(msg.err), m.cmdLoadAccounts()
		}
		m.status = joinStatus(outgoingStatus(msg.outgoing), "Riot Client started, sign in with the new account and save it with a")
		return m, m.cmdLoadAccounts()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.prompting {
			var cmd tea.Cmd
			m.prompt, cmd = m.prompt.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.showError {
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	}

	if m.showConfirm {
		if key.Matches(keyMsg, keys.yes) {
			m.showConfirm = false
			name := m.pendingDelete
			m.pendingDelete = ""
			m.busy = true
			if m.pendingTab == tabProfiles {
				return m, m.cmdDeleteProfile(name)
			}
			return m, m.cmdDeleteAccount(name)
		}
		if key.Matches(keyMsg, keys.no) {
			m.showConfirm = false
			m.pendingDelete = ""
		}
		return m, nil
	}

	if m.prompting {
		return m.updatePrompt(keyMsg)
	}

	if m.showBuildInfo {
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.tab):
		if m.tab == tabAccounts {
			m.tab = tabProfiles
		} else {
			m.tab = tabAccounts
		}
		return m, nil
	case key.Matches(keyMsg, keys.up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(keyMsg, keys.down):
		m.moveCursor(1)
		return m, nil
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		return m, tea.Batch(m.cmdLoadAccounts(), m.cmdLoadProfiles())
	}

	if m.busy {
		return m, nil
	}

	if m.tab == tabProfiles {
		return m.updateProfiles(keyMsg)
	}
	return m.updateAccounts(keyMsg)
}

func (m mainLoopModel) updateAccounts(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.enter):
		name, ok := m.currentAccount()
		if !ok {
			m.status = "No saved accounts"
			return m, nil
		}
		m.busy = true
		m.status = fmt.Sprintf("Switching to %q...", name)
		return m, m.cmdSwitch(name)
	case key.Matches(keyMsg, keys.save):
		m.startPrompt(tabAccounts)
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.delete):
		name, ok := m.currentAccount()
		if !ok {
			m.status = "No saved accounts"
			return m, nil
		}
		m.askDelete(tabAccounts, name)
		return m, nil
	case key.Matches(keyMsg, keys.restart):
		m.busy = true
		m.status = "Restarting Riot Client..."
		return m, m.cmdRestart()
	case key.Matches(keyMsg, keys.newLogin):
		m.busy = true
		m.status = "Preparing Riot Client for a new account..."
		return m, m.cmdLaunchForNewAccount()
	}
	return m, nil
}

func (m mainLoopModel) updateProfiles(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.enter):
		p, ok := m.currentProfile()
		if !ok {
			m.status = "No saved profiles"
			return m, nil
		}
		m.busy = true
		m.status = fmt.Sprintf("Applying profile %q...", p.Name)
		return m, m.cmdLoadProfile(p.Name)
	case key.Matches(keyMsg, keys.save):
		m.startPrompt(tabProfiles)
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.delete):
		p, ok := m.currentProfile()
		if !ok {
			m.status = "No saved profiles"
			return m, nil
		}
		m.askDelete(tabProfiles, p.Name)
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		p, ok := m.currentProfile()
		if !ok {
			m.status = "Nothing to copy"
			return m, nil
		}
		m.busy = true
		return m, m.cmdExportProfile(p.Name)
	}
	return m, nil
}

func (m mainLoopModel) updatePrompt(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.prompting = false
		m.promptErr = ""
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		name := strings.TrimSpace(m.prompt.Value())
		if name == "" {
			if m.promptTab == tabProfiles {
				m.promptErr = humanizeError(service.ErrEmptyProfileName)
			} else {
				m.promptErr = humanizeError(service.ErrEmptyAccountName)
			}
			return m, nil
		}
		m.prompting = false
		m.promptErr = ""
		m.busy = true
		if m.promptTab == tabProfiles {
			m.status = fmt.Sprintf("Saving profile %q...", name)
			return m, m.cmdSaveProfile(name)
		}
		m.status = fmt.Sprintf("Saving account %q...", name)
		return m, m.cmdSaveAccount(name)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(keyMsg)
	return m, cmd
}

func (m *mainLoopModel) startPrompt(t tab) {
	in := textinput.New()
	in.Width = 40
	in.CharLimit = 64
	if t == tabProfiles {
		in.Placeholder = "Profile name"
	} else {
		in.Placeholder = "Account name"
		if m.active != "" {
			in.SetValue(m.active)
		}
	}
	in.Focus()

	m.prompt = in
	m.promptTab = t
	m.promptErr = ""
	m.prompting = true
}

func (m *mainLoopModel) askDelete(t tab, name string) {
	m.pendingTab = t
	m.pendingDelete = name
	m.confirm = confirmModel{message: name}
	m.showConfirm = true
}

func (m mainLoopModel) fail(err error) mainLoopModel {
	m.showError = true
	m.errorOverlay = errorOverlayModel{message: humanizeError(err)}
	return m
}

func (m *mainLoopModel) moveCursor(delta int) {
	if m.tab == tabProfiles {
		m.profIdx = clampIndex(m.profIdx+delta, len(m.profiles))
		return
	}
	m.accIdx = clampIndex(m.accIdx+delta, len(m.accounts))
}

func (m mainLoopModel) currentAccount() (string, bool) {
	if m.accIdx < 0 || m.accIdx >= len(m.accounts) {
		return "", false
	}
	return m.accounts[m.accIdx], true
}

func (m mainLoopModel) currentProfile() (models.PreferenceProfile, bool) {
	if m.profIdx < 0 || m.profIdx >= len(m.profiles) {
		return models.PreferenceProfile{}, false
	}
	return m.profiles[m.profIdx], true
}

func clampIndex(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func switchStatus(res models.SwitchResult) string {
	return joinStatus(
		outgoingStatus(res.Outgoing),
		fmt.Sprintf("Switched to %q, press r to restart the client", res.Target),
	)
}

func outgoingStatus(o models.SaveOutcome) string {
	switch o.Status {
	case models.Saved:
		return fmt.Sprintf("Saved %q", o.Account)
	case models.SaveFailed:
		return fmt.Sprintf("Warning: could not save %q (%s)", o.Account, humanizeError(o.Err))
	default:
		return ""
	}
}

func joinStatus(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ". ")
}

func (m mainLoopModel) View() string {
	if m.showError {
		return appStyle.Render(m.errorOverlay.View())
	}
	if m.showConfirm {
		return appStyle.Render(m.confirm.View())
	}
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}
	if m.prompting {
		return m.viewPrompt()
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n")
	if m.running {
		b.WriteString(runningStyle.Render("Riot Client: running"))
	} else {
		b.WriteString("Riot Client: not running")
	}
	b.WriteString("\n")
	if m.busy {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
	}
	if m.status != "" {
		b.WriteString(m.status)
	}
	b.WriteString("\n\n")

	if m.tab == tabProfiles {
		b.WriteString(m.viewProfiles())
		return renderPage("PREFERENCE PROFILES", strings.TrimRight(b.String(), "\n"),
			"enter: apply │ a: save current │ c: copy json │ ctrl+d: delete │ tab: accounts │ v: about │ q: quit")
	}

	b.WriteString(m.viewAccounts())
	return renderPage("ACCOUNTS", strings.TrimRight(b.String(), "\n"),
		"enter: switch │ a: save current │ ctrl+d: delete │ r: restart │ n: new account │ tab: profiles │ v: about │ q: quit")
}

func (m mainLoopModel) viewTabs() string {
	accounts, profiles := inactiveTabStyle, inactiveTabStyle
	if m.tab == tabProfiles {
		profiles = activeTabStyle
	} else {
		accounts = activeTabStyle
	}
	return accounts.Render("Accounts") + "   " + profiles.Render("Profiles")
}

func (m mainLoopModel) viewAccounts() string {
	if m.loading {
		return "Loading accounts..."
	}
	if len(m.accounts) == 0 {
		return "No saved accounts. Sign in to the Riot Client and press a to save it."
	}

	var b strings.Builder
	for i, name := range m.accounts {
		cursor := " "
		if i == m.accIdx {
			cursor = ">"
		}
		mark := ""
		if name == m.active {
			mark = "  (active)"
		}
		fmt.Fprintf(&b, "%s %-3d│ %s%s\n", cursor, i+1, fitText(name, 40), mark)
	}
	return b.String()
}

func (m mainLoopModel) viewProfiles() string {
	if len(m.profiles) == 0 {
		return "No saved profiles. The Riot Client must be running to save one."
	}

	var b strings.Builder
	b.WriteString("  #  │ Name                             │ Saved\n")
	b.WriteString("─────┼──────────────────────────────────┼────────────────────\n")
	for i, p := range m.profiles {
		cursor := " "
		if i == m.profIdx {
			cursor = ">"
		}
		saved := "-"
		if !p.SavedAt.IsZero() {
			saved = p.SavedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(&b, "%s %-3d│ %-32s │ %s\n", cursor, i+1, fitText(p.Name, 32), saved)
	}
	return b.String()
}

func (m mainLoopModel) viewPrompt() string {
	title := "SAVE ACCOUNT"
	hint := "Name for the account currently signed in to the Riot Client"
	if m.promptTab == tabProfiles {
		title = "SAVE PROFILE"
		hint = "Name for the current in-game preferences"
	}

	out := hint + "\n\n[" + m.prompt.View() + "]"
	if m.promptErr != "" {
		out += "\n\n" + errorStyle.Render(m.promptErr)
	}
	return renderPage(title, out, "enter: save │ esc: cancel")
}

func (m mainLoopModel) waitForStatus() tea.Cmd {
	if m.services == nil || m.services.StatusJob == nil {
		return nil
	}
	updates := m.services.StatusJob.Updates()
	ctx := m.ctx
	return func() tea.Msg {
		select {
		case running, ok := <-updates:
			if !ok {
				return nil
			}
			return clientStatusMsg{running: running}
		case <-ctx.Done():
			return nil
		}
	}
}

func (m mainLoopModel) cmdLoadAccounts() tea.Cmd {
	ctx := m.ctx
	svc := m.services.AccountService
	return func() tea.Msg {
		names, err := svc.List(ctx)
		if err != nil {
			return accountsLoadedMsg{err: err}
		}
		active, err := svc.Active(ctx)
		if err != nil {
			return accountsLoadedMsg{err: err}
		}
		return accountsLoadedMsg{names: names, active: active}
	}
}

func (m mainLoopModel) cmdLoadProfiles() tea.Cmd {
	ctx := m.ctx
	svc := m.services.PreferenceService
	return func() tea.Msg {
		profiles, err := svc.ListProfiles(ctx)
		return profilesLoadedMsg{profiles: profiles, err: err}
	}
}

func (m mainLoopModel) cmdSaveAccount(name string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AccountService
	return func() tea.Msg {
		snapshot, err := svc.SaveCurrent(ctx, name)
		return accountSavedMsg{snapshot: snapshot, err: err}
	}
}

func (m mainLoopModel) cmdSwitch(target string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AccountService
	return func() tea.Msg {
		res, err := svc.Switch(ctx, target)
		return switchDoneMsg{target: target, result: res, err: err}
	}
}

func (m mainLoopModel) cmdDeleteAccount(name string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AccountService
	return func() tea.Msg {
		return accountDeletedMsg{name: name, err: svc.Delete(ctx, name)}
	}
}

func (m mainLoopModel) cmdSaveProfile(name string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.PreferenceService
	return func() tea.Msg {
		p, err := svc.SaveProfile(ctx, name)
		return profileSavedMsg{profile: p, err: err}
	}
}

func (m mainLoopModel) cmdLoadProfile(name string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.PreferenceService
	return func() tea.Msg {
		status, err := svc.LoadProfile(ctx, name)
		return profileLoadedMsg{name: name, status: status, err: err}
	}
}

func (m mainLoopModel) cmdDeleteProfile(name string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.PreferenceService
	return func() tea.Msg {
		return profileDeletedMsg{name: name, err: svc.DeleteProfile(ctx, name)}
	}
}

func (m mainLoopModel) cmdExportProfile(name string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.PreferenceService
	return func() tea.Msg {
		out, err := svc.ExportProfile(ctx, name)
		return profileExportedMsg{name: name, json: out, err: err}
	}
}

func (m mainLoopModel) cmdRestart() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ControlService
	return func() tea.Msg {
		return clientRestartedMsg{err: svc.Restart(ctx)}
	}
}

func (m mainLoopModel) cmdLaunchForNewAccount() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ControlService
	return func() tea.Msg {
		outgoing, err := svc.LaunchForNewAccount(ctx)
		return newAccountLaunchedMsg{outgoing: outgoing, err: err}
	}
}
