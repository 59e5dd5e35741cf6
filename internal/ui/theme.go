package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/pbc30/internal/tracker"
)

// Theme bundles palette + symbols + card borders.
type Theme struct {
	Name string

	Title, Subtitle, Muted, Error lipgloss.Style
	Note, Badge                   lipgloss.Style
	NoteBorder                    lipgloss.Border

	// indexed by tracker.ColorKind
	Colors [3]lipgloss.Style
	// indexed by tracker.IconKind
	Icons [3]string

	Dot, BarFull, BarEmpty string
}

// Themes lists the names accepted by ThemeByName.
func Themes() []string { return []string{"classic", "neon", "mono"} }

// ThemeByName returns the named theme. Unknown names fall back to classic
// and report ok=false.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:       "neon",
			Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201")),
			Subtitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
			Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			Note:       lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("53")).BorderForeground(lipgloss.Color("201")),
			Badge:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("51")),
			NoteBorder: lipgloss.RoundedBorder(),
			Colors: [3]lipgloss.Style{
				tracker.ColorGray:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
				tracker.ColorGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
				tracker.ColorRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("197")).Bold(true),
			},
			Icons:   [3]string{tracker.IconClock: "◷", tracker.IconCheck: "✔", tracker.IconCross: "✖"},
			Dot:     "◆",
			BarFull: "█", BarEmpty: "░",
		}, true
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:       "mono",
			Title:      plain,
			Subtitle:   plain,
			Muted:      plain,
			Error:      plain,
			Note:       plain,
			Badge:      plain,
			NoteBorder: lipgloss.NormalBorder(),
			Colors:     [3]lipgloss.Style{plain, plain, plain},
			Icons:      [3]string{tracker.IconClock: "o", tracker.IconCheck: "v", tracker.IconCross: "x"},
			Dot:        "*",
			BarFull:    "#", BarEmpty: "-",
		}, true
	}
	t := Theme{
		Name:       "classic",
		Title:      lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("236")),
		Subtitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Muted:      lipgloss.NewStyle().Faint(true),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Note:       lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("221")).BorderForeground(lipgloss.Color("220")),
		Badge:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("94")).Background(lipgloss.Color("220")),
		NoteBorder: lipgloss.RoundedBorder(),
		Colors: [3]lipgloss.Style{
			tracker.ColorGray:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Bold(true),
			tracker.ColorGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
			tracker.ColorRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Bold(true),
		},
		Icons:   [3]string{tracker.IconClock: "◷", tracker.IconCheck: "✔", tracker.IconCross: "✖"},
		Dot:     "●",
		BarFull: "█", BarEmpty: "░",
	}
	return t, strings.EqualFold(name, "classic") || name == ""
}

// Color returns the style for a colour kind.
func (t Theme) Color(k tracker.ColorKind) lipgloss.Style {
	if int(k) < len(t.Colors) {
		return t.Colors[k]
	}
	return t.Muted
}

// Icon returns the glyph for an icon kind.
func (t Theme) Icon(k tracker.IconKind) string {
	if int(k) < len(t.Icons) {
		return t.Icons[k]
	}
	return "?"
}
