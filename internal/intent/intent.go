package intent

import (
	"context"
	log "log/slog"
	"strings"
	"time"
)

// Follow-up listens during a dispatch (note content, reminder dialogue,
// SMS body) reuse the passive-listen windows.
const (
	followUpTimeout = 6 * time.Second
	followUpPhrase  = 8 * time.Second
)

// Speaker voices a user-visible sentence and prints it.
type Speaker interface {
	Say(text string)
	SayWait(text string)
}

// Listener captures one lowercase utterance, "" when nothing was heard.
type Listener interface {
	ListenOnce(ctx context.Context, timeout, phraseLimit time.Duration) string
}

// NoteStore persists one note and returns its file path.
type NoteStore interface {
	Add(text string) (string, error)
}

// Scheduler arranges a one-shot spoken reminder.
type Scheduler interface {
	Schedule(fireAt time.Time, message string)
}

// Actions performs the OS-level side effects.
type Actions interface {
	OpenURL(url string)
	OpenTarget(target string)
	SearchWeb(query string)
	Call(number string) bool
	SendSMS(number, body string) bool
}

// Summarizer fetches a short encyclopedia summary.
type Summarizer interface {
	Summary(ctx context.Context, topic string) (string, error)
}

// Deps carries every collaborator a dispatch can touch.
type Deps struct {
	Speaker   Speaker
	Listener  Listener
	Notes     NoteStore
	Reminders Scheduler
	Actions   Actions
	Wiki      Summarizer

	// Exit terminates the process after the farewell. Defaults to a
	// no-op so tests can observe the stop rule.
	Exit func()

	// Now is the dispatch clock, time.Now unless overridden.
	Now func() time.Time
}

// Dispatcher routes one utterance to exactly one action. Rules are an
// explicit ordered list with first-match-wins semantics; dispatch is
// deterministic for a fixed input.
type Dispatcher struct {
	deps Deps
}

func NewDispatcher(deps Deps) *Dispatcher {
	if deps.Exit == nil {
		deps.Exit = func() {}
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Dispatcher{deps: deps}
}

type rule struct {
	name  string
	match func(txt string) bool
	run   func(d *Dispatcher, ctx context.Context, txt string)
}

// Rule order is the priority order. The fallback matches everything, so
// exactly one rule fires per dispatch.
var rules = []rule{
	{"stop", matchStop, (*Dispatcher).runStop},
	{"time", matchTime, (*Dispatcher).runTime},
	{"date", matchDate, (*Dispatcher).runDate},
	{"search", matchSearch, (*Dispatcher).runSearch},
	{"open", matchOpen, (*Dispatcher).runOpen},
	{"note", matchNote, (*Dispatcher).runNote},
	{"remind", matchRemind, (*Dispatcher).runRemind},
	{"call", matchCall, (*Dispatcher).runCall},
	{"sms", matchSMS, (*Dispatcher).runSMS},
	{"wiki", matchWiki, (*Dispatcher).runWiki},
	{"fallback", func(string) bool { return true }, (*Dispatcher).runFallback},
}

// Handle dispatches one utterance. Empty input is a no-op. A dispatch may
// itself block on further speech capture (note, reminder, SMS dialogues).
func (d *Dispatcher) Handle(ctx context.Context, text string) {
	txt := strings.ToLower(strings.TrimSpace(text))
	if txt == "" {
		return
	}

	log.Info("Heard", "text", txt)

	for _, r := range rules {
		if r.match(txt) {
			log.Debug("Matched", "rule", r.name)
			r.run(d, ctx, txt)
			return
		}
	}
}

// Match reports which rule an utterance selects, without running it.
func Match(text string) string {
	txt := strings.ToLower(strings.TrimSpace(text))
	if txt == "" {
		return ""
	}
	for _, r := range rules {
		if r.match(txt) {
			return r.name
		}
	}
	return ""
}

func (d *Dispatcher) say(text string)     { d.deps.Speaker.Say(text) }
func (d *Dispatcher) sayWait(text string) { d.deps.Speaker.SayWait(text) }

func (d *Dispatcher) listen(ctx context.Context) string {
	return d.deps.Listener.ListenOnce(ctx, followUpTimeout, followUpPhrase)
}

func containsAny(txt string, subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(txt, s) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(txt string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(txt, p) {
			return true
		}
	}
	return false
}

// remainder returns everything after the first space, "" if there is none.
func remainder(txt string) string {
	if _, rest, ok := strings.Cut(txt, " "); ok {
		return rest
	}
	return ""
}
