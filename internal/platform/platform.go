package platform

import (
	log "log/slog"
	"os/exec"
)

// Tool names probed at startup. Termux provides the native speech and
// telephony commands; xdg-open covers URL opening on a regular desktop.
const (
	SpeakTool   = "termux-tts-speak"
	ListenTool  = "termux-speech-to-text"
	OpenTool    = "termux-open"
	OpenURLTool = "termux-open-url"
	SMSTool     = "termux-sms-send"
	CallTool    = "termux-telephony-call"
	XDGOpenTool = "xdg-open"
)

// Capabilities records which platform tools were found at startup.
// Computed once, read-only afterwards; every adapter branches on it.
type Capabilities struct {
	TTS     bool
	STT     bool
	Open    bool
	SMS     bool
	Call    bool
	XDGOpen bool
}

func Detect() Capabilities {
	return DetectWith(exec.LookPath)
}

// DetectWith probes using the given lookup, normally exec.LookPath.
func DetectWith(look func(string) (string, error)) Capabilities {
	has := func(name string) bool {
		_, err := look(name)
		return err == nil
	}

	caps := Capabilities{
		TTS:     has(SpeakTool),
		STT:     has(ListenTool),
		Open:    has(OpenTool) && has(OpenURLTool),
		SMS:     has(SMSTool),
		Call:    has(CallTool),
		XDGOpen: has(XDGOpenTool),
	}

	log.Debug("Detected capabilities",
		"tts", caps.TTS,
		"stt", caps.STT,
		"open", caps.Open,
		"sms", caps.SMS,
		"call", caps.Call,
		"xdg-open", caps.XDGOpen,
	)

	return caps
}
