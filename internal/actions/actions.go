package actions

import (
	log "log/slog"
	"os/exec"
	"strings"

	"jarvis/internal/platform"
)

const searchBase = "https://www.google.com/search?q="

// Actions performs the OS-level side effects: opening URLs and targets,
// placing calls and sending SMS. Everything is capability-gated; an absent
// capability means the action is reported as skipped, never attempted.
type Actions struct {
	caps  platform.Capabilities
	start func(name string, args ...string) error
	run   func(name string, args ...string) error
}

func New(caps platform.Capabilities) *Actions {
	return &Actions{
		caps: caps,
		start: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// OpenURL hands the URL to the platform opener, fire-and-forget. The
// opener's outcome is not consulted.
func (a *Actions) OpenURL(url string) {
	switch {
	case a.caps.Open:
		a.launch(platform.OpenURLTool, url)
	case a.caps.XDGOpen:
		a.launch(platform.XDGOpenTool, url)
	default:
		log.Warn("No opener available", "url", url)
	}
}

// OpenTarget opens an opaque identifier (file, app name) in whatever
// viewer the platform provides.
func (a *Actions) OpenTarget(target string) {
	switch {
	case a.caps.Open:
		a.launch(platform.OpenTool, target)
	case a.caps.XDGOpen:
		a.launch(platform.XDGOpenTool, target)
	default:
		log.Warn("No opener available", "target", target)
	}
}

// SearchWeb opens a web search for the query.
func (a *Actions) SearchWeb(query string) {
	a.OpenURL(searchBase + strings.ReplaceAll(query, " ", "+"))
}

// Call places a phone call. Returns false without attempting anything
// when the capability is absent.
func (a *Actions) Call(number string) bool {
	if !a.caps.Call {
		return false
	}
	if err := a.run(platform.CallTool, number); err != nil {
		log.Error("Call failed", "number", number, "err", err)
		return false
	}
	return true
}

// SendSMS sends a text message. Coarse success signal only, no delivery
// confirmation.
func (a *Actions) SendSMS(number, body string) bool {
	if !a.caps.SMS {
		return false
	}
	if err := a.run(platform.SMSTool, "-n", number, body); err != nil {
		log.Error("SMS failed", "number", number, "err", err)
		return false
	}
	return true
}

func (a *Actions) launch(name string, args ...string) {
	if err := a.start(name, args...); err != nil {
		log.Error("Failed to launch", "tool", name, "err", err)
	}
}
