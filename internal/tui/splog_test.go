package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplogMirrorsToLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "gitgud.log")

	splog, err := NewSplogWithLogFile(logFile)
	require.NoError(t, err)

	splog.Info("created commit %d on branch %d", 4, 1)
	splog.Warn("line %d: bad input", 7)
	require.NoError(t, splog.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	content := string(data)
	require.Contains(t, content, "created commit 4 on branch 1")
	require.Contains(t, content, "line 7: bad input")
}

func TestSplogQuietStillLogsToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "quiet.log")

	splog, err := NewSplogWithLogFile(logFile)
	require.NoError(t, err)

	// Quiet mode silences the console handler only
	splog.SetQuiet(true)
	splog.Info("hidden from the console")
	require.NoError(t, splog.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "hidden from the console")
}
