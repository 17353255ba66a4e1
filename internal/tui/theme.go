package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Catppuccin palettes: true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

type palette struct {
	Text     lipgloss.Color
	Subtext  lipgloss.Color
	Surface1 lipgloss.Color
	Surface0 lipgloss.Color
	Base     lipgloss.Color
	Mantle   lipgloss.Color

	Blue     lipgloss.Color
	Mauve    lipgloss.Color
	Red      lipgloss.Color
	Lavender lipgloss.Color
}

var mocha = palette{
	Text:     "#cdd6f4",
	Subtext:  "#a6adc8",
	Surface1: "#45475a",
	Surface0: "#313244",
	Base:     "#1e1e2e",
	Mantle:   "#181825",
	Blue:     "#89b4fa",
	Mauve:    "#cba6f7",
	Red:      "#f38ba8",
	Lavender: "#b4befe",
}

var latte = palette{
	Text:     "#4c4f69",
	Subtext:  "#6c6f85",
	Surface1: "#bcc0cc",
	Surface0: "#ccd0da",
	Base:     "#eff1f5",
	Mantle:   "#e6e9ef",
	Blue:     "#1e66f5",
	Mauve:    "#8839ef",
	Red:      "#d20f39",
	Lavender: "#7287fd",
}

func paletteFor(name string) palette {
	if strings.EqualFold(name, "latte") {
		return latte
	}
	return mocha
}

// ---------------------------------------------------------------------------
// Semantic styles
// ---------------------------------------------------------------------------

type buttonRole int

const (
	roleDigit buttonRole = iota
	roleOperator
	roleEquals
	roleClear
)

type styles struct {
	app        lipgloss.Style
	header     lipgloss.Style
	headerBar  lipgloss.Style
	display    lipgloss.Style
	displayErr lipgloss.Style
	panel      lipgloss.Style
	footer     lipgloss.Style
	helpKey    lipgloss.Style
	helpDesc   lipgloss.Style

	buttons map[buttonRole]lipgloss.Style
	pressed lipgloss.Style

	footerBg lipgloss.Color
}

func newStyles(p palette) styles {
	button := lipgloss.NewStyle().Align(lipgloss.Center)
	return styles{
		app:        lipgloss.NewStyle().Foreground(p.Text),
		header:     lipgloss.NewStyle().Foreground(p.Mauve).Bold(true),
		headerBar:  lipgloss.NewStyle().Background(p.Mantle).Foreground(p.Text),
		display:    lipgloss.NewStyle().Foreground(p.Text).Bold(true).Align(lipgloss.Right),
		displayErr: lipgloss.NewStyle().Foreground(p.Red).Bold(true).Align(lipgloss.Right),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Surface1).
			Background(p.Surface0).
			Padding(0, 1),
		footer:   lipgloss.NewStyle().Background(p.Mantle),
		helpKey:  lipgloss.NewStyle().Foreground(p.Mauve).Bold(true).Background(p.Mantle),
		helpDesc: lipgloss.NewStyle().Foreground(p.Subtext).Background(p.Mantle),
		buttons: map[buttonRole]lipgloss.Style{
			roleDigit:    button.Background(p.Surface0).Foreground(p.Text),
			roleOperator: button.Background(p.Surface1).Foreground(p.Blue).Bold(true),
			roleEquals:   button.Background(p.Blue).Foreground(p.Base).Bold(true),
			roleClear:    button.Background(p.Red).Foreground(p.Base).Bold(true),
		},
		pressed:  button.Background(p.Lavender).Foreground(p.Base).Bold(true),
		footerBg: p.Mantle,
	}
}
