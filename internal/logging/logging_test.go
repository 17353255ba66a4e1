package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jask/keycalc/internal/config"
)

func TestNewWritesToFileWithSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "keycalc.log")
	log, closer, err := New(config.LogConfig{File: path, Level: "debug"})
	require.NoError(t, err)

	session, ok := log.Data["session"].(string)
	require.True(t, ok)
	_, err = uuid.Parse(session)
	require.NoError(t, err)

	log.WithField("key", "7").Debug("key applied")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "key applied")
	require.Contains(t, string(data), "session="+session)
}

func TestNewWithoutFileDiscards(t *testing.T) {
	log, closer, err := New(config.LogConfig{Level: "info"})
	require.NoError(t, err)
	require.NotNil(t, closer)
	log.Info("dropped")
	require.NoError(t, closer.Close())
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "chatty"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "log level")
}

func TestLevelFiltersDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keycalc.log")
	log, closer, err := New(config.LogConfig{File: path, Level: "info"})
	require.NoError(t, err)
	log.Debug("hidden")
	log.Warn("shown")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "hidden")
	require.Contains(t, string(data), "shown")
}
