// Package tui shows the challenge board in a scrollable Bubble Tea view.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Makepad-fr/pbc30/internal/model"
	"github.com/Makepad-fr/pbc30/internal/tracker"
	"github.com/Makepad-fr/pbc30/internal/ui"
	"github.com/Makepad-fr/pbc30/internal/watch"
)

// reloadMsg carries a snapshot read after the data file changed.
type reloadMsg watch.Result

// Model is the Bubble Tea model for the board.
type Model struct {
	renderer ui.Renderer
	board    tracker.Board
	loadErr  error // initial load failed; no board is shown
	status   string

	keys     keyMap
	help     help.Model
	viewport viewport.Model
	ready    bool
	width    int
	height   int

	reloads <-chan watch.Result
	log     *zap.Logger
}

// New builds the model for an already loaded snapshot. loadErr is the
// error from loading it, if any; the model then shows the error state.
func New(r ui.Renderer, snap model.Snapshot, loadErr error, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	m := Model{
		renderer: r,
		keys:     defaultKeys(),
		help:     help.New(),
		loadErr:  loadErr,
		log:      log,
	}
	if loadErr == nil {
		b, err := tracker.Build(snap)
		if err != nil {
			m.loadErr = err
		} else {
			m.board = b
		}
	}
	return m
}

// WithReloads subscribes the model to watcher results.
func (m Model) WithReloads(ch <-chan watch.Result) Model {
	m.reloads = ch
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForReload(m.reloads)
}

func waitForReload(ch <-chan watch.Result) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return reloadMsg(r)
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case reloadMsg:
		m.applyReload(watch.Result(msg))
		m.refresh()
		return m, waitForReload(m.reloads)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Group):
			m.renderer.Options.Group = !m.renderer.Options.Group
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Theme):
			m.renderer.Theme = nextTheme(m.renderer.Theme.Name)
			m.status = "theme: " + m.renderer.Theme.Name
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			if m.ready {
				m.resize(m.width, m.height)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// applyReload swaps in a new board, or keeps the current one when the
// reload failed.
func (m *Model) applyReload(r watch.Result) {
	if r.Err != nil {
		m.status = "reload failed: " + r.Err.Error()
		return
	}
	b, err := tracker.Build(r.Snapshot)
	if err != nil {
		m.status = "reload failed: " + err.Error()
		return
	}
	m.board = b
	m.loadErr = nil
	m.status = fmt.Sprintf("reloaded %d challenges at %s", len(b.Cards), r.Snapshot.LoadedAt().Format(time.Kitchen))
	m.log.Debug("board replaced", zap.Int("cards", len(b.Cards)))
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	vh := h - m.chromeHeight()
	if vh < 1 {
		vh = 1
	}
	if !m.ready {
		m.viewport = viewport.New(w, vh)
		m.ready = true
	} else {
		m.viewport.Width = w
		m.viewport.Height = vh
	}
	m.help.Width = w
	m.refresh()
}

// chromeHeight is the number of lines below the viewport.
func (m Model) chromeHeight() int {
	return 1 + lipgloss.Height(m.help.View(m.keys))
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.content())
}

func (m Model) content() string {
	if m.loadErr != nil {
		return m.renderer.Error(m.loadErr)
	}
	return m.renderer.Board(m.board)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	status := m.renderer.Theme.Muted.Render(m.status)
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), status, m.help.View(m.keys))
}

func nextTheme(current string) ui.Theme {
	names := ui.Themes()
	for i, n := range names {
		if n == current {
			t, _ := ui.ThemeByName(names[(i+1)%len(names)])
			return t
		}
	}
	t, _ := ui.ThemeByName(names[0])
	return t
}

// Options configure Run.
type Options struct {
	Renderer ui.Renderer
	// Path is watched when Watch is set; empty disables watching.
	Path  string
	Watch bool
	Load  watch.LoadFunc
	Log   *zap.Logger
}

// Run loads the collection once and shows the board until the user quits.
func Run(ctx context.Context, opt Options) error {
	log := opt.Log
	if log == nil {
		log = zap.NewNop()
	}
	snap, err := opt.Load(opt.Path)
	if err != nil {
		log.Error("load failed", zap.Error(err))
	}
	m := New(opt.Renderer, snap, err, log)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if opt.Watch && opt.Path != "" {
		reloads := make(chan watch.Result)
		w := watch.New(opt.Path, opt.Load, 150*time.Millisecond, log)
		go func() {
			defer close(reloads)
			if err := w.Run(ctx, reloads); err != nil {
				log.Warn("watcher stopped", zap.Error(err))
			}
		}()
		m = m.WithReloads(reloads)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
