// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-riot-switcher/internal/adapter"
	"github.com/MKhiriev/go-riot-switcher/internal/mock"
	"github.com/MKhiriev/go-riot-switcher/internal/service"
	"github.com/MKhiriev/go-riot-switcher/internal/store"
	"github.com/MKhiriev/go-riot-switcher/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	accounts *mock.MockClientAccountService
	prefs    *mock.MockClientPreferenceService
	control  *mock.MockClientControlService
	status   *mock.MockClientStatusJob
}

func newTestModel(t *testing.T) (mainLoopModel, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mocks := testMocks{
		accounts: mock.NewMockClientAccountService(ctrl),
		prefs:    mock.NewMockClientPreferenceService(ctrl),
		control:  mock.NewMockClientControlService(ctrl),
		status:   mock.NewMockClientStatusJob(ctrl),
	}
	services := &service.ClientServices{
		AccountService:    mocks.accounts,
		PreferenceService: mocks.prefs,
		ControlService:    mocks.control,
		StatusJob:         mocks.status,
	}
	m := newMainLoopModel(context.Background(), services, models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc"))
	m.loading = false
	return m, mocks
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m mainLoopModel, msg tea.Msg) (mainLoopModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(mainLoopModel)
	require.True(t, ok)
	return out, cmd
}

func TestMainLoop_AccountsLoaded(t *testing.T) {
	m, mocks := newTestModel(t)
	mocks.accounts.EXPECT().List(gomock.Any()).Return([]string{"alpha", "beta"}, nil)
	mocks.accounts.EXPECT().Active(gomock.Any()).Return("beta", nil)

	msg := m.cmdLoadAccounts()()
	m, _ = update(t, m, msg)

	assert.Equal(t, []string{"alpha", "beta"}, m.accounts)
	assert.Equal(t, "beta", m.active)
	assert.Contains(t, m.View(), "(active)")
}

func TestMainLoop_AccountsLoadError_ShowsOverlay(t *testing.T) {
	m, mocks := newTestModel(t)
	mocks.accounts.EXPECT().List(gomock.Any()).Return(nil, store.ErrIO)

	m, _ = update(t, m, m.cmdLoadAccounts()())

	assert.True(t, m.showError)
	assert.Contains(t, m.View(), "Error")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showError)
}

func TestMainLoop_SwitchReportsOutgoingSave(t *testing.T) {
	m, mocks := newTestModel(t)
	m.accounts = []string{"alpha", "beta"}
	m.active = "alpha"
	m.accIdx = 1

	mocks.accounts.EXPECT().Switch(gomock.Any(), "beta").Return(models.SwitchResult{
		Target:   "beta",
		Outgoing: models.SaveOutcome{Account: "alpha", Status: models.Saved},
	}, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.busy)

	m, reload := update(t, m, cmd())
	assert.False(t, m.busy)
	assert.Contains(t, m.status, `Saved "alpha"`)
	assert.Contains(t, m.status, `Switched to "beta"`)
	assert.NotNil(t, reload)
}

func TestMainLoop_SwitchWarnsWhenOutgoingSaveFailed(t *testing.T) {
	m, mocks := newTestModel(t)
	m.accounts = []string{"beta"}

	mocks.accounts.EXPECT().Switch(gomock.Any(), "beta").Return(models.SwitchResult{
		Target:   "beta",
		Outgoing: models.SaveOutcome{Account: "alpha", Status: models.SaveFailed, Err: store.ErrIO},
	}, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, cmd())

	assert.False(t, m.showError)
	assert.Contains(t, m.status, `Warning: could not save "alpha"`)
	assert.Contains(t, m.status, `Switched to "beta"`)
}

func TestMainLoop_SwitchMissingAccount(t *testing.T) {
	m, mocks := newTestModel(t)
	m.accounts = []string{"ghost"}

	mocks.accounts.EXPECT().Switch(gomock.Any(), "ghost").Return(models.SwitchResult{}, store.ErrAccountNotFound)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, cmd())

	assert.True(t, m.showError)
	assert.Equal(t, "Account not found", m.errorOverlay.message)
}

func TestMainLoop_SwitchWithoutAccounts(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "No saved accounts", m.status)
}

func TestMainLoop_SaveAccountPrompt(t *testing.T) {
	m, mocks := newTestModel(t)

	m, _ = update(t, m, runes("a"))
	require.True(t, m.prompting)

	m, _ = update(t, m, runes("main"))
	assert.Equal(t, "main", m.prompt.Value())

	mocks.accounts.EXPECT().SaveCurrent(gomock.Any(), "main").Return(models.AccountSnapshot{Name: "main"}, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.False(t, m.prompting)

	m, _ = update(t, m, cmd())
	assert.Equal(t, `Account "main" saved successfully`, m.status)
}

func TestMainLoop_SaveAccountPrompt_EmptyName(t *testing.T) {
	m, mocks := newTestModel(t)
	mocks.accounts.EXPECT().SaveCurrent(gomock.Any(), gomock.Any()).Times(0)

	m, _ = update(t, m, runes("a"))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.True(t, m.prompting)
	assert.Equal(t, "Please enter an account name", m.promptErr)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.prompting)
}

func TestMainLoop_DeleteAccountConfirm(t *testing.T) {
	m, mocks := newTestModel(t)
	m.accounts = []string{"alpha"}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.Nil(t, cmd)
	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), `Delete "alpha"?`)

	mocks.accounts.EXPECT().Delete(gomock.Any(), "alpha").Return(nil)

	m, cmd = update(t, m, runes("y"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Equal(t, `Account "alpha" deleted`, m.status)
}

func TestMainLoop_DeleteAccountDeclined(t *testing.T) {
	m, mocks := newTestModel(t)
	m.accounts = []string{"alpha"}
	mocks.accounts.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	m, cmd := update(t, m, runes("n"))

	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
	assert.Empty(t, m.pendingDelete)
}

func TestMainLoop_RestartAndNewAccount(t *testing.T) {
	m, mocks := newTestModel(t)

	mocks.control.EXPECT().Restart(gomock.Any()).Return(nil)
	m, cmd := update(t, m, runes("r"))
	m, _ = update(t, m, cmd())
	assert.Equal(t, "Riot Client restarted", m.status)

	mocks.control.EXPECT().LaunchForNewAccount(gomock.Any()).
		Return(models.SaveOutcome{Account: "alpha", Status: models.Saved}, nil)
	m, cmd = update(t, m, runes("n"))
	m, _ = update(t, m, cmd())
	assert.Contains(t, m.status, `Saved "alpha"`)
	assert.Contains(t, m.status, "sign in with the new account")
}

func TestMainLoop_BusyIgnoresActions(t *testing.T) {
	m, mocks := newTestModel(t)
	m.busy = true
	mocks.control.EXPECT().Restart(gomock.Any()).Times(0)

	_, cmd := update(t, m, runes("r"))
	assert.Nil(t, cmd)
}

func TestMainLoop_ProfilesTab(t *testing.T) {
	m, mocks := newTestModel(t)
	savedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mocks.prefs.EXPECT().ListProfiles(gomock.Any()).Return([]models.PreferenceProfile{{Name: "ranked", SavedAt: savedAt}}, nil)

	m, _ = update(t, m, m.cmdLoadProfiles()())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, tabProfiles, m.tab)
	assert.Contains(t, m.View(), "ranked")

	mocks.prefs.EXPECT().LoadProfile(gomock.Any(), "ranked").Return(200, nil)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, cmd())
	assert.Equal(t, `Profile "ranked" applied (status 200)`, m.status)
}

func TestMainLoop_SaveProfile_ClientNotRunning(t *testing.T) {
	m, mocks := newTestModel(t)
	m.tab = tabProfiles

	mocks.prefs.EXPECT().SaveProfile(gomock.Any(), "ranked").Return(models.PreferenceProfile{}, adapter.ErrLockfileNotFound)

	m, _ = update(t, m, runes("a"))
	m, _ = update(t, m, runes("ranked"))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, cmd())

	assert.True(t, m.showError)
	assert.Equal(t, "Riot Client is not running", m.errorOverlay.message)
}

func TestMainLoop_ExportProfileCopiesToClipboard(t *testing.T) {
	m, mocks := newTestModel(t)
	m.tab = tabProfiles
	m.profiles = []models.PreferenceProfile{{Name: "ranked"}}

	var copied string
	orig := copyToClipboard
	copyToClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	mocks.prefs.EXPECT().ExportProfile(gomock.Any(), "ranked").Return("{\n  \"a\": 1\n}", nil)

	m, cmd := update(t, m, runes("c"))
	m, _ = update(t, m, cmd())

	assert.Equal(t, "{\n  \"a\": 1\n}", copied)
	assert.Equal(t, `Profile "ranked" copied to clipboard`, m.status)
}

func TestMainLoop_ExportProfileClipboardFailure(t *testing.T) {
	m, _ := newTestModel(t)

	orig := copyToClipboard
	copyToClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { copyToClipboard = orig })

	m, _ = update(t, m, profileExportedMsg{name: "ranked", json: "{}"})
	assert.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.message, "no clipboard")
}

func TestMainLoop_ClientStatusUpdates(t *testing.T) {
	m, mocks := newTestModel(t)
	ch := make(chan bool, 1)
	mocks.status.EXPECT().Updates().Return((<-chan bool)(ch)).AnyTimes()

	ch <- true
	msg := m.waitForStatus()()
	assert.Equal(t, clientStatusMsg{running: true}, msg)

	m, next := update(t, m, msg)
	assert.True(t, m.running)
	assert.NotNil(t, next)
	assert.Contains(t, m.View(), "Riot Client: running")
}

func TestMainLoop_BuildInfoAndQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, runes("v"))
	require.True(t, m.showBuildInfo)
	assert.Contains(t, m.View(), "Version: 1.2.3")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showBuildInfo)

	m, cmd := update(t, m, runes("q"))
	assert.True(t, m.quitByUser)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
