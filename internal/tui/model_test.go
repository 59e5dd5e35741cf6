package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/pbc30/internal/model"
	"github.com/Makepad-fr/pbc30/internal/ui"
	"github.com/Makepad-fr/pbc30/internal/watch"
)

func renderer(t *testing.T) ui.Renderer {
	t.Helper()
	theme, ok := ui.ThemeByName("mono")
	require.True(t, ok)
	return ui.Renderer{Theme: theme, Page: ui.Page{Title: "Board"}, Options: ui.Options{Columns: 3}}
}

func snapshot(challenges ...model.Challenge) model.Snapshot {
	return model.NewSnapshot("test", time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC), challenges)
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	return next.(Model)
}

func press(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	return next.(Model), cmd
}

func TestViewBeforeSize(t *testing.T) {
	m := New(renderer(t), snapshot(), nil, nil)
	assert.Equal(t, "Loading...", m.View())
}

func TestViewShowsBoard(t *testing.T) {
	m := sized(t, New(renderer(t), snapshot(
		model.Challenge{ID: 0, Title: "Launch", Status: model.StatusDone},
		model.Challenge{ID: 1, Title: "Post", Status: model.StatusPending},
	), nil, nil))

	out := m.View()
	assert.Contains(t, out, "Done: 1")
	assert.Contains(t, out, "Launch")
	assert.NotContains(t, out, "Post")
	assert.Contains(t, out, "quit")
}

func TestViewShowsLoadError(t *testing.T) {
	m := sized(t, New(renderer(t), model.Snapshot{}, errors.New("challenges.json: invalid status"), nil))
	out := m.View()
	assert.Contains(t, out, "Could not load challenges")
	assert.NotContains(t, out, "Done:")
}

func TestReloadReplacesBoard(t *testing.T) {
	m := sized(t, New(renderer(t), snapshot(
		model.Challenge{ID: 1, Title: "Post", Status: model.StatusPending},
	), nil, nil))

	next, _ := m.Update(reloadMsg(watch.Result{Snapshot: snapshot(
		model.Challenge{ID: 1, Title: "Post", Status: model.StatusDone},
	)}))
	m = next.(Model)

	assert.Equal(t, 1, m.board.Counts.Done)
	assert.Contains(t, m.View(), "Post")
	assert.Contains(t, m.status, "reloaded 1 challenges")
}

func TestFailedReloadKeepsBoard(t *testing.T) {
	m := sized(t, New(renderer(t), snapshot(
		model.Challenge{ID: 1, Title: "Post", Status: model.StatusDone},
	), nil, nil))

	next, _ := m.Update(reloadMsg(watch.Result{Err: model.ErrInvalidStatus}))
	m = next.(Model)

	assert.Equal(t, 1, m.board.Counts.Done)
	assert.Contains(t, m.status, "reload failed")
	assert.Contains(t, m.View(), "Post")
}

func TestReloadClearsLoadError(t *testing.T) {
	m := sized(t, New(renderer(t), model.Snapshot{}, errors.New("boom"), nil))
	next, _ := m.Update(reloadMsg(watch.Result{Snapshot: snapshot(
		model.Challenge{ID: 4, Title: "Go live", Status: model.StatusMissed},
	)}))
	m = next.(Model)
	assert.NoError(t, m.loadErr)
	assert.Contains(t, m.View(), "Go live")
}

func TestKeys(t *testing.T) {
	m := sized(t, New(renderer(t), snapshot(
		model.Challenge{ID: 1, Title: "Post", Status: model.StatusDone},
	), nil, nil))

	m, _ = press(t, m, "g")
	assert.True(t, m.renderer.Options.Group)

	m, _ = press(t, m, "t")
	assert.Equal(t, "classic", m.renderer.Theme.Name)

	m, _ = press(t, m, "?")
	assert.True(t, m.help.ShowAll)

	_, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestWaitForReload(t *testing.T) {
	assert.Nil(t, waitForReload(nil))

	ch := make(chan watch.Result, 1)
	ch <- watch.Result{Err: model.ErrMalformedInput}
	msg := waitForReload(ch)()
	r, ok := msg.(reloadMsg)
	require.True(t, ok)
	assert.ErrorIs(t, r.Err, model.ErrMalformedInput)

	close(ch)
	assert.Nil(t, waitForReload(ch)())
}
