package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLog(t *testing.T) {
	t.Helper()
	w, flags := log.Writer(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(w)
		log.SetFlags(flags)
	})
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	restoreLog(t)

	logFile := setupLogging(false, filepath.Join(t.TempDir(), "unused.log"))
	assert.Nil(t, logFile)
	assert.Equal(t, io.Discard, log.Writer())
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	restoreLog(t)
	logPath := filepath.Join(t.TempDir(), "logs", "retrodesk.log")

	logFile := setupLogging(true, logPath)
	require.NotNil(t, logFile)
	defer logFile.Close()

	log.Println("test log message")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "test log message"))
	assert.True(t, strings.Contains(string(data), "starting"))
}

func TestSetupLogging_Rotation(t *testing.T) {
	restoreLog(t)
	dir := t.TempDir()
	logPath := filepath.Join(dir, "retrodesk.log")

	// Just over the rotation threshold
	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSizeMB*1024*1024+1), 0644))

	logFile := setupLogging(true, logPath)
	require.NotNil(t, logFile)
	defer logFile.Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	rotated := false
	for _, e := range entries {
		if e.Name() != "retrodesk.log" && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	assert.True(t, rotated, "expected a rotated backup")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(maxLogSizeMB*1024*1024))
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	restoreLog(t)

	logFile := setupLogging(true, filepath.Join(t.TempDir(), "retrodesk.log"))
	require.NotNil(t, logFile)
	defer logFile.Close()

	assert.NotEqual(t, os.Stdout, log.Writer())
	assert.NotEqual(t, os.Stderr, log.Writer())
}
