// Package ui renders a tracker.Board for the terminal with Lip Gloss.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/pbc30/internal/model"
	"github.com/Makepad-fr/pbc30/internal/tracker"
)

// Page is the chrome around the board.
type Page struct {
	Title     string
	TitleURL  string
	Subtitle  string
	Credit    string
	CreditURL string
}

// Options tune board output.
type Options struct {
	Columns int  // cards per row
	Group   bool // one section per status
}

// Renderer draws boards with a theme.
type Renderer struct {
	Theme   Theme
	Page    Page
	Options Options
}

const defaultColumns = 6

// Board renders header, summary strip, card grid and footer.
func (r Renderer) Board(b tracker.Board) string {
	var sections []string
	sections = append(sections, r.Header(b.Counts), "")
	if r.Options.Group {
		sections = append(sections, r.groups(b)...)
	} else {
		sections = append(sections, r.Grid(b.Cards))
	}
	sections = append(sections, "", r.Footer())
	return strings.Join(sections, "\n")
}

// Header renders the page title, subtitle and the summary strip.
func (r Renderer) Header(c tracker.Counts) string {
	t := r.Theme
	lines := []string{t.Title.Render(r.Page.Title)}
	if r.Page.TitleURL != "" {
		lines = append(lines, t.Muted.Render(r.Page.TitleURL))
	}
	if r.Page.Subtitle != "" {
		lines = append(lines, t.Subtitle.Render(r.Page.Subtitle))
	}
	lines = append(lines, "", r.Summary(c), t.Muted.Render(t.ProgressBar(c.Resolved(), c.Total(), 28)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Summary renders the done/pending/missed counters.
func (r Renderer) Summary(c tracker.Counts) string {
	parts := make([]string, 0, model.NumStatuses)
	for _, s := range tracker.SummaryOrder() {
		_, color, _ := tracker.Look(s)
		parts = append(parts, fmt.Sprintf("%s %s: %d",
			r.Theme.Color(color).Render(r.Theme.Dot), StatusLabel(s), c.Of(s)))
	}
	return strings.Join(parts, "    ")
}

// Grid lays cards out in rows of Options.Columns, in input order.
func (r Renderer) Grid(cards []tracker.Card) string {
	if len(cards) == 0 {
		return r.Theme.Muted.Render("no challenges")
	}
	cols := r.Options.Columns
	if cols <= 0 {
		cols = defaultColumns
	}
	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := start + cols
		if end > len(cards) {
			end = len(cards)
		}
		notes := make([]string, 0, end-start)
		for _, c := range cards[start:end] {
			notes = append(notes, r.Theme.Card(c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, notes...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r Renderer) groups(b tracker.Board) []string {
	var out []string
	for _, g := range b.Group() {
		_, color, _ := tracker.Look(g.Status)
		out = append(out, r.Theme.Color(color).Render(StatusLabel(g.Status)))
		if len(g.Cards) == 0 {
			out = append(out, r.Theme.Muted.Render("(none)"), "")
			continue
		}
		out = append(out, r.Grid(g.Cards), "")
	}
	return out
}

// Footer renders the credit line.
func (r Renderer) Footer() string {
	if r.Page.Credit == "" {
		return ""
	}
	line := "Inspired by " + r.Page.Credit
	if r.Page.CreditURL != "" {
		line += " (" + r.Page.CreditURL + ")"
	}
	return r.Theme.Muted.Render(line)
}

// Error renders the load-failure state shown instead of a board.
func (r Renderer) Error(err error) string {
	return r.Theme.Panel([]string{
		r.Theme.Error.Render("Could not load challenges"),
		"",
		err.Error(),
	})
}

// StatusLabel is the human name of a status.
func StatusLabel(s model.Status) string {
	switch s {
	case model.StatusDone:
		return "Done"
	case model.StatusPending:
		return "Pending"
	case model.StatusMissed:
		return "Missed"
	}
	return s.String()
}
