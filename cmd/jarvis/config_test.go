package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jarvis/internal/ipc"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JARVIS_WAKE_WORDS", "")
	t.Setenv("JARVIS_NAME", "")
	t.Setenv("JARVIS_NOTES_DIR", "")
	t.Setenv("JARVIS_SOCKET", "")

	cfg := loadConfig("")

	assert.Equal(t, []string{"hey jarvis", "ok jarvis", "jarvis"}, cfg.WakeWords)
	assert.Equal(t, []string{"jarvis", "assistant"}, cfg.Names)
	assert.Equal(t, ipc.DefaultSocketPath, cfg.Socket)
	assert.NotEmpty(t, cfg.NotesDir)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("JARVIS_WAKE_WORDS", "Hey Computer, computer ")
	t.Setenv("JARVIS_NAME", "Computer")
	t.Setenv("JARVIS_NOTES_DIR", "/tmp/notes")
	t.Setenv("JARVIS_SOCKET", "/tmp/custom.sock")

	cfg := loadConfig("")

	assert.Equal(t, []string{"hey computer", "computer"}, cfg.WakeWords)
	assert.Equal(t, []string{"computer", "assistant"}, cfg.Names)
	assert.Equal(t, "/tmp/notes", cfg.NotesDir)
	assert.Equal(t, "/tmp/custom.sock", cfg.Socket)
}

func TestLoadConfigSocketFlagWins(t *testing.T) {
	t.Setenv("JARVIS_SOCKET", "/tmp/env.sock")

	cfg := loadConfig("/tmp/flag.sock")

	assert.Equal(t, "/tmp/flag.sock", cfg.Socket)
}

func TestLoadConfigAssistantNameNotDuplicated(t *testing.T) {
	t.Setenv("JARVIS_NAME", "assistant")

	cfg := loadConfig("")

	assert.Equal(t, []string{"assistant"}, cfg.Names)
}
