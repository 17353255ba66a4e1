// Package batch replays key sequences through a calculator engine without a
// terminal.
package batch

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/jask/keycalc/internal/calc"
)

// Runner replays keys through a fresh engine per call.
type Runner struct {
	Out         io.Writer
	Trace       bool
	ErrorMarker string
	Log         *logrus.Entry
}

// Run applies keys in order and returns the final display. With Trace set,
// every display change is written to Out as "<key>\t<display>".
func (r *Runner) Run(ctx context.Context, keys []calc.Key) (string, error) {
	var (
		current  calc.Key
		writeErr error
	)
	opts := []calc.Option{calc.WithErrorMarker(r.ErrorMarker), calc.WithLogger(r.Log)}
	if r.Trace {
		if r.Out == nil {
			return "", fmt.Errorf("batch: trace requested without output")
		}
		opts = append(opts, calc.WithObserver(func(display string) {
			if writeErr != nil {
				return
			}
			if _, err := fmt.Fprintf(r.Out, "%s\t%s\n", current, display); err != nil {
				writeErr = fmt.Errorf("write trace: %w", err)
			}
		}))
	}

	e := calc.New(opts...)
	for i, k := range keys {
		if err := ctx.Err(); err != nil {
			return e.Display(), fmt.Errorf("batch stopped at key %d: %w", i, err)
		}
		current = k
		e.Apply(k)
		if writeErr != nil {
			return e.Display(), writeErr
		}
	}
	return e.Display(), nil
}

// RunString parses s as a key sequence and runs it.
func (r *Runner) RunString(ctx context.Context, s string) (string, error) {
	keys, err := calc.ParseSequence(s)
	if err != nil {
		return "", fmt.Errorf("parse keys: %w", err)
	}
	return r.Run(ctx, keys)
}
