// Package logging builds the session logger. A terminal UI owns stdout, so
// output goes to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jask/keycalc/internal/config"
)

// New returns a logger tagged with a fresh session id. The returned closer
// releases the log file and is never nil.
func New(cfg config.LogConfig) (*logrus.Entry, io.Closer, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	l := logrus.New()
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})

	var closer io.Closer = nopCloser{}
	if cfg.File == "" {
		l.SetOutput(io.Discard)
	} else {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("mkdir log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		l.SetOutput(f)
		closer = f
	}

	return l.WithField("session", uuid.NewString()), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
