package tts

import (
	"fmt"
	"io"
	log "log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"jarvis/internal/platform"
)

const maxWait = 10 * time.Second

// Speaker renders text through the platform TTS tool. When no tool is
// available it prints the text instead so the interaction stays observable.
// Safe for concurrent callers: reminder timers may fire while the
// foreground is speaking.
type Speaker struct {
	mu      sync.Mutex
	enabled bool
	out     io.Writer
	start   func(text string) error
}

func New(caps platform.Capabilities) *Speaker {
	s := &Speaker{
		enabled: caps.TTS,
		out:     os.Stdout,
		start: func(text string) error {
			return exec.Command(platform.SpeakTool, text).Start()
		},
	}
	if !caps.TTS {
		log.Warn("No TTS capability, falling back to print")
	}
	return s
}

// Speak voices text without waiting for playback. Empty text is a no-op.
func (s *Speaker) Speak(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		fmt.Fprintln(s.out, "[tts unavailable] "+text)
		return
	}
	if err := s.start(text); err != nil {
		log.Error("Failed to start TTS", "err", err)
		fmt.Fprintln(s.out, "[tts unavailable] "+text)
	}
}

// SpeakWait voices text and does not return until playback has plausibly
// finished. The platform tool gives no completion signal, so the wait is
// estimated from text length and capped.
func (s *Speaker) SpeakWait(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		fmt.Fprintln(s.out, "[tts unavailable] "+text)
		return
	}
	if err := s.start(text); err != nil {
		log.Error("Failed to start TTS", "err", err)
		fmt.Fprintln(s.out, "[tts unavailable] "+text)
		return
	}
	time.Sleep(estimate(text))
}

// Say prints the assistant line and speaks it. Every user-visible
// sentence goes through here.
func (s *Speaker) Say(text string) {
	fmt.Fprintln(s.out, "Assistant:", text)
	s.Speak(text)
}

// SayWait is Say with blocking playback, used before process exit so the
// farewell is not cut off.
func (s *Speaker) SayWait(text string) {
	fmt.Fprintln(s.out, "Assistant:", text)
	s.SpeakWait(text)
}

func estimate(text string) time.Duration {
	d := 500*time.Millisecond + 40*time.Millisecond*time.Duration(len(text))
	if d > maxWait {
		return maxWait
	}
	return d
}
