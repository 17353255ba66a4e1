// Package keymap maps terminal key names to calculator actions.
package keymap

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/keycalc/internal/calc"
)

type Action string

const (
	ActionDigit0   Action = "digit_0"
	ActionDigit1   Action = "digit_1"
	ActionDigit2   Action = "digit_2"
	ActionDigit3   Action = "digit_3"
	ActionDigit4   Action = "digit_4"
	ActionDigit5   Action = "digit_5"
	ActionDigit6   Action = "digit_6"
	ActionDigit7   Action = "digit_7"
	ActionDigit8   Action = "digit_8"
	ActionDigit9   Action = "digit_9"
	ActionDecimal  Action = "decimal"
	ActionAdd      Action = "add"
	ActionSubtract Action = "subtract"
	ActionMultiply Action = "multiply"
	ActionDivide   Action = "divide"
	ActionEquals   Action = "equals"
	ActionClear    Action = "clear"
	ActionHelp     Action = "help"
	ActionQuit     Action = "quit"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrKeyConflict   = errors.New("key conflict")
)

var calcKeys = map[Action]calc.Key{
	ActionDigit0:   calc.Key0,
	ActionDigit1:   calc.Key1,
	ActionDigit2:   calc.Key2,
	ActionDigit3:   calc.Key3,
	ActionDigit4:   calc.Key4,
	ActionDigit5:   calc.Key5,
	ActionDigit6:   calc.Key6,
	ActionDigit7:   calc.Key7,
	ActionDigit8:   calc.Key8,
	ActionDigit9:   calc.Key9,
	ActionDecimal:  calc.KeyDecimal,
	ActionAdd:      calc.KeyAdd,
	ActionSubtract: calc.KeySubtract,
	ActionMultiply: calc.KeyMultiply,
	ActionDivide:   calc.KeyDivide,
	ActionEquals:   calc.KeyEquals,
	ActionClear:    calc.KeyClear,
}

type Binding struct {
	Action Action
	Keys   []string
	Help   string
}

// CalcKey returns the calculator key the binding drives, if any.
func (b Binding) CalcKey() (calc.Key, bool) {
	k, ok := calcKeys[b.Action]
	return k, ok
}

// Override replaces the keys of one action.
type Override struct {
	Action string   `toml:"action"`
	Keys   []string `toml:"keys"`
}

type overrideFile struct {
	Binding []Override `toml:"binding"`
}

type Registry struct {
	bindings []*Binding
	index    map[string]*Binding
}

// New returns a registry with the default bindings.
func New() *Registry {
	r := &Registry{index: make(map[string]*Binding)}

	reg := func(action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help})
	}

	for d := 0; d <= 9; d++ {
		n := fmt.Sprint(d)
		reg(Action("digit_"+n), []string{n}, n)
	}
	reg(ActionDecimal, []string{".", ","}, "point")
	reg(ActionAdd, []string{"+"}, "add")
	reg(ActionSubtract, []string{"-"}, "subtract")
	reg(ActionMultiply, []string{"*", "x"}, "multiply")
	reg(ActionDivide, []string{"/"}, "divide")
	reg(ActionEquals, []string{"=", "enter"}, "equals")
	reg(ActionClear, []string{"c", "C", "esc", "delete"}, "clear")
	reg(ActionHelp, []string{"?"}, "help")
	reg(ActionQuit, []string{"q", "ctrl+c"}, "quit")

	return r
}

// Register adds b unless one of its keys is already taken.
func (r *Registry) Register(b Binding) {
	if r == nil {
		return
	}
	keys := normalizeKeyList(b.Keys)
	if len(keys) == 0 || r.hasAnyKey(keys) {
		return
	}
	copyBinding := b
	copyBinding.Keys = keys
	r.bindings = append(r.bindings, &copyBinding)
	for _, k := range keys {
		r.index[k] = &copyBinding
	}
}

func (r *Registry) Bindings() []Binding {
	if r == nil {
		return nil
	}
	out := make([]Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		out = append(out, *b)
	}
	return out
}

// Lookup returns the binding for a terminal key name such as "enter" or "7".
func (r *Registry) Lookup(keyName string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	return r.index[normalizeKeyName(keyName)]
}

// KeysFor returns the keys bound to action.
func (r *Registry) KeysFor(action Action) []string {
	for _, b := range r.bindings {
		if b.Action == action {
			return append([]string(nil), b.Keys...)
		}
	}
	return nil
}

// HelpBindings returns footer entries for the non-digit actions.
func (r *Registry) HelpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(r.bindings))
	for _, b := range r.Bindings() {
		if strings.HasPrefix(string(b.Action), "digit_") {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

// LoadOverrides reads [[binding]] entries from a TOML file.
func LoadOverrides(path string) ([]Override, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keybindings: %w", err)
	}
	var f overrideFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse keybindings %s: %w", path, err)
	}
	return f.Binding, nil
}

// ApplyOverrides replaces the keys of each named action. The registry is
// left untouched when any override is invalid.
func (r *Registry) ApplyOverrides(items []Override) error {
	if r == nil || len(items) == 0 {
		return nil
	}
	next := make(map[Action][]string, len(items))
	for _, o := range items {
		action := Action(strings.TrimSpace(o.Action))
		if action == "" {
			return fmt.Errorf("keybinding override: action is required")
		}
		if r.KeysFor(action) == nil {
			return fmt.Errorf("keybinding override action=%q: %w", action, ErrUnknownAction)
		}
		keys := normalizeKeyList(o.Keys)
		if len(keys) == 0 {
			return fmt.Errorf("keybinding override action=%q: keys are required", action)
		}
		if _, dup := next[action]; dup {
			return fmt.Errorf("keybinding override action=%q: duplicated override entry", action)
		}
		next[action] = keys
	}

	seen := make(map[string]Action)
	for _, b := range r.bindings {
		keys := b.Keys
		if k, ok := next[b.Action]; ok {
			keys = k
		}
		for _, k := range keys {
			if prev, ok := seen[k]; ok {
				return fmt.Errorf("key %q used by both %q and %q: %w", k, prev, b.Action, ErrKeyConflict)
			}
			seen[k] = b.Action
		}
	}

	for _, b := range r.bindings {
		if k, ok := next[b.Action]; ok {
			b.Keys = k
		}
	}
	r.rebuildIndex()
	return nil
}

// Export returns the current bindings as overrides, sorted by action.
func (r *Registry) Export() []Override {
	out := make([]Override, 0, len(r.bindings))
	for _, b := range r.bindings {
		out = append(out, Override{Action: string(b.Action), Keys: append([]string(nil), b.Keys...)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Action < out[j].Action })
	return out
}

func (r *Registry) hasAnyKey(keys []string) bool {
	for _, k := range keys {
		if _, exists := r.index[k]; exists {
			return true
		}
	}
	return false
}

func (r *Registry) rebuildIndex() {
	r.index = make(map[string]*Binding, len(r.index))
	for _, b := range r.bindings {
		for _, k := range b.Keys {
			r.index[k] = b
		}
	}
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		// Single runes keep their case so "c" and "C" stay distinct.
		return trimmed
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "ctl+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	s = strings.ReplaceAll(s, "escape", "esc")
	s = strings.ReplaceAll(s, "spacebar", "space")
	return s
}
