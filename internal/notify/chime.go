package notify

import (
	log "log/slog"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneFreq   = 880
	toneLen    = 150 * time.Millisecond
)

// Chime plays a short acknowledgment tone. Audio problems are swallowed;
// the spoken acknowledgment carries the same signal.
func Chime() {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Debug("Failed to init speaker", "err", err)
		return
	}

	tone, err := generators.SinTone(sampleRate, toneFreq)
	if err != nil {
		log.Debug("Failed to build tone", "err", err)
		return
	}

	done := make(chan bool)
	speaker.Play(beep.Seq(beep.Take(sampleRate.N(toneLen), tone), beep.Callback(func() {
		done <- true
	})))
	<-done
}
