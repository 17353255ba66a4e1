package tui

import (
	"reflect"
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func paletteColors(p palette) []lipgloss.Color {
	v := reflect.ValueOf(p)
	out := make([]lipgloss.Color, 0, v.NumField())
	for i := 0; i < v.NumField(); i++ {
		out = append(out, v.Field(i).Interface().(lipgloss.Color))
	}
	return out
}

func TestPaletteColorsAreValidHex(t *testing.T) {
	for name, p := range map[string]palette{"mocha": mocha, "latte": latte} {
		for _, c := range paletteColors(p) {
			if !hexColorRegex.MatchString(string(c)) {
				t.Errorf("%s: invalid hex color: %q", name, c)
			}
		}
	}
}

func TestEveryRoleHasAButtonStyle(t *testing.T) {
	s := newStyles(mocha)
	for _, role := range []buttonRole{roleDigit, roleOperator, roleEquals, roleClear} {
		if _, ok := s.buttons[role]; !ok {
			t.Errorf("missing button style for role %d", role)
		}
	}
}
