package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKeyAcceptsBothSpellings(t *testing.T) {
	cases := map[string]Key{
		"0": Key0, "9": Key9,
		".": KeyDecimal, ",": KeyDecimal,
		"+": KeyAdd,
		"-": KeySubtract, "−": KeySubtract,
		"*": KeyMultiply, "×": KeyMultiply, "x": KeyMultiply,
		"/": KeyDivide, "÷": KeyDivide,
		"=": KeyEquals,
		"c": KeyClear, "C": KeyClear,
		" 7 ": Key7,
	}
	for in, want := range cases {
		got, err := ParseKey(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
}

func TestParseKeyRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "a", "12", "%", "sqrt"} {
		_, err := ParseKey(in)
		require.Error(t, err, in)
		require.True(t, errors.Is(err, ErrUnknownKey), in)
	}
}

func TestParseSequence(t *testing.T) {
	keys, err := ParseSequence("2 + 3 × 4 =")
	require.NoError(t, err)
	require.Equal(t, []Key{Key2, KeyAdd, Key3, KeyMultiply, Key4, KeyEquals}, keys)

	_, err = ParseSequence("2+(3)")
	require.ErrorIs(t, err, ErrUnknownKey)
	require.Contains(t, err.Error(), "offset 2")
}

func TestKeyLabelsRoundTrip(t *testing.T) {
	for _, k := range AllKeys() {
		got, err := ParseKey(k.String())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
	require.Len(t, AllKeys(), 17)
	require.Equal(t, "Key(99)", Key(99).String())
}

func TestKeyOperator(t *testing.T) {
	require.Equal(t, OpAdd, KeyAdd.Operator())
	require.Equal(t, OpSubtract, KeySubtract.Operator())
	require.Equal(t, OpMultiply, KeyMultiply.Operator())
	require.Equal(t, OpDivide, KeyDivide.Operator())
	require.Equal(t, OpNone, Key5.Operator())
	require.Equal(t, OpNone, KeyEquals.Operator())
}

func TestCompute(t *testing.T) {
	require.Equal(t, 5.0, Compute(2, 3, OpAdd))
	require.Equal(t, -4.0, Compute(6, 10, OpSubtract))
	require.Equal(t, 10.0, Compute(4, 2.5, OpMultiply))
	require.Equal(t, 3.5, Compute(7, 2, OpDivide))
	require.True(t, math.IsNaN(Compute(5, 0, OpDivide)))
	require.Equal(t, 9.0, Compute(1, 9, OpNone))
}

func TestFormatResult(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{in: 2, want: "2"},
		{in: -4, want: "-4"},
		{in: 0, want: "0"},
		{in: math.Copysign(0, -1), want: "0"},
		{in: 3.5, want: "3.5"},
		{in: 0.30000000000000004, want: "0.30000000000000004"},
		{in: 1e21, want: "1000000000000000000000"},
		{in: 1e-7, want: "1e-07"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FormatResult(tc.in))
	}
}

func TestParseDisplay(t *testing.T) {
	v, ok := parseDisplay("12.")
	require.True(t, ok)
	require.Equal(t, 12.0, v)

	for _, bad := range []string{"Error", "", "NaN", "Inf", "-Inf"} {
		_, ok := parseDisplay(bad)
		require.False(t, ok, bad)
	}
}
