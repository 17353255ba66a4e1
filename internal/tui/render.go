package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/keycalc/internal/calc"
)

const keypadColumns = 4

// keypadRows mirrors the handset layout; the lone zero spans the full row.
var keypadRows = [][]calc.Key{
	{calc.KeyClear, calc.KeyDivide, calc.KeyMultiply, calc.KeySubtract},
	{calc.Key7, calc.Key8, calc.Key9, calc.KeyAdd},
	{calc.Key4, calc.Key5, calc.Key6, calc.KeyEquals},
	{calc.Key1, calc.Key2, calc.Key3, calc.KeyDecimal},
	{calc.Key0},
}

func roleOf(k calc.Key) buttonRole {
	switch {
	case k == calc.KeyClear:
		return roleClear
	case k == calc.KeyEquals:
		return roleEquals
	case k.Operator() != calc.OpNone:
		return roleOperator
	default:
		return roleDigit
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	padWidth := m.keypadWidth()
	sections := []string{
		m.renderHeader(padWidth),
		m.renderDisplay(padWidth),
		m.renderKeypad(),
	}
	if m.showHelp {
		sections = append(sections, m.renderFooter(padWidth))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width > 0 && m.height > 0 {
		body = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return m.styles.app.Render(body)
}

// keypadWidth is the total width of one keypad row including gaps.
func (m Model) keypadWidth() int {
	return keypadColumns*m.cellWidth + keypadColumns - 1
}

func (m Model) renderHeader(width int) string {
	title := m.styles.header.Render(appName)
	return renderBar(m.styles.headerBar, width, title)
}

func (m Model) renderDisplay(width int) string {
	// border (2) + horizontal padding (2)
	inner := max(1, width-4)
	text := fitDisplay(m.engine.Display(), inner)
	style := m.styles.display
	if m.engine.Phase() == calc.PhaseError {
		style = m.styles.displayErr
	}
	return m.styles.panel.Render(style.Width(inner).Render(text))
}

func (m Model) renderKeypad() string {
	rows := make([]string, 0, len(keypadRows))
	for _, row := range keypadRows {
		cellW := m.cellWidth
		if len(row) == 1 {
			cellW = m.keypadWidth()
		}
		cells := make([]string, 0, len(row)*2)
		for i, k := range row {
			if i > 0 {
				cells = append(cells, " ")
			}
			cells = append(cells, m.renderButton(k, cellW))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderButton(k calc.Key, width int) string {
	style := m.styles.buttons[roleOf(k)]
	if m.pressed && k == m.lastKey {
		style = m.styles.pressed
	}
	return style.Width(width).Render(k.String())
}

func (m Model) renderFooter(width int) string {
	space := lipgloss.NewStyle().Background(m.styles.footerBg).Render(" ")
	sep := lipgloss.NewStyle().Background(m.styles.footerBg).Render("  ")

	bindings := m.keys.HelpBindings()
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, m.styles.helpKey.Render(h.Key)+space+m.styles.helpDesc.Render(h.Desc))
	}
	// wrap onto as many lines as the keypad width needs
	var lines []string
	var line string
	for _, p := range parts {
		switch {
		case line == "":
			line = p
		case ansi.StringWidth(line)+2+ansi.StringWidth(p) <= width:
			line += sep + p
		default:
			lines = append(lines, renderBar(m.styles.footer, width, line))
			line = p
		}
	}
	if line != "" {
		lines = append(lines, renderBar(m.styles.footer, width, line))
	}
	return strings.Join(lines, "\n")
}

// fitDisplay keeps the least significant end of text when it overflows.
func fitDisplay(text string, width int) string {
	if ansi.StringWidth(text) <= width {
		return text
	}
	runes := []rune(text)
	keep := min(len(runes), max(0, width-1))
	return "…" + string(runes[len(runes)-keep:])
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
