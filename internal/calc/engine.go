// Package calc implements the calculator state machine: key events in,
// display text out. Operations fold strictly left to right.
package calc

import (
	"io"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultErrorMarker is shown in place of an undefined result.
const DefaultErrorMarker = "Error"

const initialDisplay = "0"

// Phase is the calculator state derived from the engine fields.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseEnteringOperand1
	PhaseOperatorPending
	PhaseEnteringOperand2
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseEnteringOperand1:
		return "entering_operand1"
	case PhaseOperatorPending:
		return "operator_pending"
	case PhaseEnteringOperand2:
		return "entering_operand2"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Engine holds one calculator session. It is not safe for concurrent use;
// callers deliver keys one at a time.
type Engine struct {
	display         string
	pendingOperand  *float64
	pendingOperator Operator
	awaitingFresh   bool

	errorMarker string
	log         *logrus.Entry
	observer    func(display string)
}

// Option configures an Engine.
type Option func(*Engine)

// WithErrorMarker sets the display text used for undefined results.
func WithErrorMarker(marker string) Option {
	return func(e *Engine) {
		if strings.TrimSpace(marker) != "" {
			e.errorMarker = marker
		}
	}
}

// WithLogger routes debug traces of ignored keys to log.
func WithLogger(log *logrus.Entry) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithObserver registers fn to be called whenever the display text changes.
func WithObserver(fn func(display string)) Option {
	return func(e *Engine) { e.observer = fn }
}

// New returns an engine showing "0" with nothing pending.
func New(opts ...Option) *Engine {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	e := &Engine{
		display:     initialDisplay,
		errorMarker: DefaultErrorMarker,
		log:         logrus.NewEntry(discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Display returns the text the surface should render.
func (e *Engine) Display() string { return e.display }

// ErrorMarker returns the configured error marker.
func (e *Engine) ErrorMarker() string { return e.errorMarker }

// Phase derives the current state from the engine fields.
func (e *Engine) Phase() Phase {
	switch {
	case e.display == e.errorMarker:
		return PhaseError
	case e.pendingOperator != OpNone && e.awaitingFresh:
		return PhaseOperatorPending
	case e.pendingOperator != OpNone:
		return PhaseEnteringOperand2
	case e.display == initialDisplay && !e.awaitingFresh:
		return PhaseIdle
	default:
		return PhaseEnteringOperand1
	}
}

// Apply handles one key and returns the resulting display.
func (e *Engine) Apply(k Key) string {
	before := e.display
	switch {
	case k.IsDigit():
		e.inputDigit(k)
	case k == KeyDecimal:
		e.inputDecimal()
	case k.Operator() != OpNone:
		e.inputOperator(k.Operator())
	case k == KeyEquals:
		e.calculate()
	case k == KeyClear:
		e.Clear()
	default:
		e.log.WithField("key", int(k)).Debug("unknown key ignored")
	}
	if e.display != before && e.observer != nil {
		e.observer(e.display)
	}
	return e.display
}

// Clear resets every field to its initial value.
func (e *Engine) Clear() {
	e.display = initialDisplay
	e.pendingOperand = nil
	e.pendingOperator = OpNone
	e.awaitingFresh = false
}

func (e *Engine) inputDigit(k Key) {
	digit := k.String()
	switch {
	case e.awaitingFresh:
		e.display = digit
		e.awaitingFresh = false
	case e.display == initialDisplay:
		e.display = digit
	default:
		e.display += digit
	}
}

func (e *Engine) inputDecimal() {
	switch {
	case e.awaitingFresh:
		e.display = "0."
		e.awaitingFresh = false
	case !strings.Contains(e.display, "."):
		e.display += "."
	default:
		e.log.WithField("display", e.display).Debug("duplicate decimal point ignored")
	}
}

func (e *Engine) inputOperator(op Operator) {
	value, ok := parseDisplay(e.display)
	if !ok {
		e.log.WithField("display", e.display).WithField("operator", op.String()).
			Debug("operator ignored: display is not a number")
		return
	}
	switch {
	case e.pendingOperand == nil:
		e.pendingOperand = &value
	case e.pendingOperator != OpNone:
		folded := Compute(*e.pendingOperand, value, e.pendingOperator)
		if !isFinite(folded) {
			e.enterError(*e.pendingOperand, value, e.pendingOperator)
			return
		}
		e.pendingOperand = &folded
		e.display = FormatResult(folded)
	}
	e.pendingOperator = op
	e.awaitingFresh = true
}

func (e *Engine) calculate() {
	value, ok := parseDisplay(e.display)
	if e.pendingOperand == nil || e.pendingOperator == OpNone || !ok {
		e.log.WithField("display", e.display).Debug("equals ignored: no pending operation")
		return
	}
	result := Compute(*e.pendingOperand, value, e.pendingOperator)
	if !isFinite(result) {
		e.enterError(*e.pendingOperand, value, e.pendingOperator)
		return
	}
	e.display = FormatResult(result)
	e.pendingOperand = nil
	e.pendingOperator = OpNone
	e.awaitingFresh = true
}

func (e *Engine) enterError(a, b float64, op Operator) {
	e.log.WithFields(logrus.Fields{
		"left":     a,
		"right":    b,
		"operator": op.String(),
	}).Debug("undefined result")
	e.display = e.errorMarker
	e.pendingOperand = nil
	e.pendingOperator = OpNone
	e.awaitingFresh = true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
