package calc

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Key is one calculator key event.
type Key int

const (
	Key0 Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyDecimal
	KeyAdd
	KeySubtract
	KeyMultiply
	KeyDivide
	KeyEquals
	KeyClear
)

// ErrUnknownKey is returned when a label does not name a calculator key.
var ErrUnknownKey = errors.New("unknown key")

var keyLabels = [...]string{
	Key0:        "0",
	Key1:        "1",
	Key2:        "2",
	Key3:        "3",
	Key4:        "4",
	Key5:        "5",
	Key6:        "6",
	Key7:        "7",
	Key8:        "8",
	Key9:        "9",
	KeyDecimal:  ".",
	KeyAdd:      "+",
	KeySubtract: "−",
	KeyMultiply: "×",
	KeyDivide:   "÷",
	KeyEquals:   "=",
	KeyClear:    "C",
}

// AllKeys returns every key in keypad-independent order.
func AllKeys() []Key {
	out := make([]Key, 0, len(keyLabels))
	for k := Key0; k <= KeyClear; k++ {
		out = append(out, k)
	}
	return out
}

func (k Key) String() string {
	if k < Key0 || k > KeyClear {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyLabels[k]
}

// IsDigit reports whether k is one of Key0..Key9.
func (k Key) IsDigit() bool { return k >= Key0 && k <= Key9 }

// Operator returns the arithmetic operator bound to k, or OpNone.
func (k Key) Operator() Operator {
	switch k {
	case KeyAdd:
		return OpAdd
	case KeySubtract:
		return OpSubtract
	case KeyMultiply:
		return OpMultiply
	case KeyDivide:
		return OpDivide
	default:
		return OpNone
	}
}

// ParseKey maps a textual label to a key. ASCII and typographic operator
// spellings are both accepted.
func ParseKey(s string) (Key, error) {
	label := strings.TrimSpace(s)
	if len(label) == 1 && label[0] >= '0' && label[0] <= '9' {
		return Key(label[0] - '0'), nil
	}
	switch label {
	case ".", ",":
		return KeyDecimal, nil
	case "+":
		return KeyAdd, nil
	case "-", "−":
		return KeySubtract, nil
	case "*", "×", "x", "X":
		return KeyMultiply, nil
	case "/", "÷":
		return KeyDivide, nil
	case "=":
		return KeyEquals, nil
	case "c", "C":
		return KeyClear, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, s)
}

// ParseSequence splits s into single-rune labels, skipping whitespace.
func ParseSequence(s string) ([]Key, error) {
	keys := make([]Key, 0, len(s))
	for i, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		k, err := ParseKey(string(r))
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", i, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}
