package main

import (
	"os"
	"path/filepath"
	"strings"

	"jarvis/internal/ipc"
)

type config struct {
	WakeWords []string
	Names     []string
	NotesDir  string
	Proxy     string
	Socket    string
}

// loadConfig reads settings from the environment. The --socket flag wins
// over JARVIS_SOCKET when given.
func loadConfig(socketFlag string) config {
	cfg := config{
		WakeWords: splitList(os.Getenv("JARVIS_WAKE_WORDS"), []string{"hey jarvis", "ok jarvis", "jarvis"}),
		NotesDir:  os.Getenv("JARVIS_NOTES_DIR"),
		Proxy:     os.Getenv("JARVIS_PROXY"),
		Socket:    os.Getenv("JARVIS_SOCKET"),
	}

	name := strings.ToLower(strings.TrimSpace(os.Getenv("JARVIS_NAME")))
	if name == "" {
		name = "jarvis"
	}
	cfg.Names = []string{name}
	if name != "assistant" {
		cfg.Names = append(cfg.Names, "assistant")
	}

	if cfg.NotesDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.NotesDir = filepath.Join(home, "assistant_notes")
	}

	if socketFlag != "" {
		cfg.Socket = socketFlag
	}
	if cfg.Socket == "" {
		cfg.Socket = ipc.DefaultSocketPath
	}

	return cfg
}

func splitList(raw string, def []string) []string {
	if strings.TrimSpace(raw) == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.ToLower(strings.TrimSpace(item)); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
