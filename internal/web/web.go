// Package web writes the challenge board as a single static HTML page.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/Makepad-fr/pbc30/internal/tracker"
	"github.com/Makepad-fr/pbc30/internal/ui"
)

//go:embed templates/board.html.tmpl
var templates embed.FS

var boardTemplate = template.Must(template.New("board.html.tmpl").
	Funcs(template.FuncMap{"iconGlyph": iconGlyph}).
	ParseFS(templates, "templates/board.html.tmpl"))

type summaryItem struct {
	Label string
	Color tracker.ColorKind
	Count int
}

type pageData struct {
	Page    ui.Page
	Columns int
	Board   tracker.Board
	Summary []summaryItem
	Err     error
}

// Render writes the page for b.
func Render(w io.Writer, page ui.Page, columns int, b tracker.Board) error {
	data := pageData{Page: page, Columns: columnsOrDefault(columns), Board: b}
	for _, s := range tracker.SummaryOrder() {
		_, color, _ := tracker.Look(s)
		data.Summary = append(data.Summary, summaryItem{Label: ui.StatusLabel(s), Color: color, Count: b.Counts.Of(s)})
	}
	return execute(w, data)
}

// RenderError writes the error page shown when the collection could not
// be loaded. No cards are rendered.
func RenderError(w io.Writer, page ui.Page, loadErr error) error {
	return execute(w, pageData{Page: page, Columns: columnsOrDefault(0), Err: loadErr})
}

func execute(w io.Writer, data pageData) error {
	if err := boardTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

func columnsOrDefault(n int) int {
	if n <= 0 {
		return 6
	}
	return n
}

func iconGlyph(k tracker.IconKind) string {
	switch k {
	case tracker.IconCheck:
		return "✓"
	case tracker.IconCross:
		return "✗"
	}
	return "⏲"
}
