package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/pbc30/internal/tracker"
)

const (
	cardWidth       = 18 // inner width, border excluded
	cardTitleHeight = 3
)

// Card draws one post-it note. The rotation becomes an offset so
// neighbouring notes sit unevenly in the grid.
func (t Theme) Card(c tracker.Card) string {
	badge := t.Badge.Render(fmt.Sprintf(" #%d ", c.ID))
	icon := t.Color(c.Color).Render(t.Icon(c.Icon))

	gap := cardWidth - 2 - lipgloss.Width(badge) - lipgloss.Width(icon)
	if gap < 1 {
		gap = 1
	}
	head := lipgloss.JoinHorizontal(lipgloss.Top, badge, strings.Repeat(" ", gap), icon)

	title := t.Color(c.Color).
		Width(cardWidth - 2).
		Height(cardTitleHeight).
		MaxHeight(cardTitleHeight).
		Render(c.VisibleTitle)

	top, left := tilt(c.Rotation)
	return t.Note.
		Border(t.NoteBorder).
		Width(cardWidth).
		Padding(0, 1).
		MarginTop(top).
		MarginLeft(left).
		Render(lipgloss.JoinVertical(lipgloss.Left, head, title))
}

// tilt turns a rotation into a (top, left) offset. Every rotation gets a
// distinct offset.
func tilt(r tracker.RotationKind) (top, left int) {
	d := r.Degrees()
	switch {
	case d > 0:
		return d, 2
	case d < 0:
		return -d, 0
	}
	return 0, 1
}
