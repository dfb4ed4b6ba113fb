package stt

import (
	"bytes"
	"context"
	log "log/slog"
	"os/exec"
	"strings"
	"time"

	"jarvis/internal/platform"
)

// Hard cap on top of the caller's timeout: the platform speech tool shows
// its own input UI and can hang past the requested window.
const graceWindow = 15 * time.Second

// Listener captures one spoken utterance per call through the platform
// speech tool. Recognition failures are not errors: the caller gets an
// empty string for "nothing heard".
type Listener struct {
	enabled bool
	run     func(ctx context.Context) (string, error)
}

func New(caps platform.Capabilities) *Listener {
	l := &Listener{
		enabled: caps.STT,
		run: func(ctx context.Context) (string, error) {
			cmd := exec.CommandContext(ctx, platform.ListenTool)
			var out bytes.Buffer
			cmd.Stdout = &out
			if err := cmd.Run(); err != nil {
				return "", err
			}
			return out.String(), nil
		},
	}
	if !caps.STT {
		log.Warn("No speech capability, listening disabled")
	}
	return l
}

// ListenOnce blocks for up to timeout plus a fixed grace window and
// returns the recognized text lowercased, or "" when nothing was
// understood. Exactly one capture attempt per call, no retries.
// phraseLimit is a hint for backends that bound the phrase separately;
// the platform tool handles it internally.
func (l *Listener) ListenOnce(ctx context.Context, timeout, phraseLimit time.Duration) string {
	if !l.enabled {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, timeout+graceWindow)
	defer cancel()

	text, err := l.run(ctx)
	if err != nil {
		log.Debug("Capture failed", "err", err)
		return ""
	}

	return strings.ToLower(strings.TrimSpace(text))
}
