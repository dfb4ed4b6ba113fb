package assistant

import (
	"context"
	log "log/slog"
	"strings"
	"time"
)

// Passive listening uses a short window; the follow-up command listen
// after the wake word gets a longer one.
const (
	idleTimeout    = 6 * time.Second
	idlePhrase     = 6 * time.Second
	commandTimeout = 10 * time.Second
	commandPhrase  = 12 * time.Second
)

type Speaker interface {
	Say(text string)
}

type Listener interface {
	ListenOnce(ctx context.Context, timeout, phraseLimit time.Duration) string
}

type Dispatcher interface {
	Handle(ctx context.Context, text string)
}

// Config holds the trigger vocabulary.
type Config struct {
	// WakeWords engage the assistant when heard anywhere in a phrase.
	WakeWords []string
	// Names are direct-address tokens: "jarvis open maps" dispatches
	// the rest of the phrase without a second listen.
	Names []string
}

// Assistant is the top-level loop: passively listen, detect the wake
// word or a direct address, route one command to the dispatcher, repeat.
type Assistant struct {
	cfg      Config
	speak    Speaker
	listen   Listener
	dispatch Dispatcher

	// chime is the audible acknowledgment played on engagement.
	chime func()

	trigger chan struct{}
}

func New(cfg Config, speak Speaker, listen Listener, dispatch Dispatcher, chime func()) *Assistant {
	if chime == nil {
		chime = func() {}
	}
	return &Assistant{
		cfg:      cfg,
		speak:    speak,
		listen:   listen,
		dispatch: dispatch,
		chime:    chime,
		trigger:  make(chan struct{}, 1),
	}
}

// Trigger forces one engagement without the wake word, as if it had just
// been heard. Non-blocking; a trigger while one is pending is dropped.
func (a *Assistant) Trigger() {
	select {
	case a.trigger <- struct{}{}:
	default:
	}
}

// Run loops until ctx is cancelled. The only other way out is the
// dispatcher's stop intent, which exits the process.
func (a *Assistant) Run(ctx context.Context) {
	a.speak.Say("Mobile assistant started. Say the wake word: " + a.firstWakeWord())

	for {
		select {
		case <-ctx.Done():
			return
		case <-a.trigger:
			a.engage(ctx)
			continue
		default:
		}

		spoken := a.listen.ListenOnce(ctx, idleTimeout, idlePhrase)
		if spoken == "" {
			continue
		}

		switch {
		case containsAny(spoken, a.cfg.WakeWords):
			a.engage(ctx)
		case a.isDirectAddress(spoken):
			cmd := afterFirstSpace(spoken)
			log.Debug("Direct address", "cmd", cmd)
			a.dispatch.Handle(ctx, cmd)
		default:
			// Not addressed to us.
			log.Debug("Ignoring", "text", spoken)
		}
	}
}

func (a *Assistant) engage(ctx context.Context) {
	a.chime()
	a.speak.Say("Yes? How can I help?")
	cmd := a.listen.ListenOnce(ctx, commandTimeout, commandPhrase)
	a.dispatch.Handle(ctx, cmd)
}

func (a *Assistant) isDirectAddress(spoken string) bool {
	for _, name := range a.cfg.Names {
		if spoken == name || strings.HasPrefix(spoken, name+" ") {
			return true
		}
	}
	return false
}

func (a *Assistant) firstWakeWord() string {
	if len(a.cfg.WakeWords) > 0 {
		return a.cfg.WakeWords[0]
	}
	return ""
}

func containsAny(txt string, subs []string) bool {
	for _, s := range subs {
		if strings.Contains(txt, s) {
			return true
		}
	}
	return false
}

// afterFirstSpace returns the command part of a direct address, "" when
// the name was spoken bare (the dispatcher treats "" as a no-op).
func afterFirstSpace(spoken string) string {
	if _, rest, ok := strings.Cut(spoken, " "); ok {
		return rest
	}
	return ""
}
