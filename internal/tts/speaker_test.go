package tts

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"jarvis/internal/platform"
)

func TestSpeakEmptyIsNoOp(t *testing.T) {
	var buf bytes.Buffer
	s := New(platform.Capabilities{})
	s.out = &buf

	s.Speak("")
	s.Speak("   ")

	assert.Empty(t, buf.String())
}

func TestSpeakFallsBackToPrint(t *testing.T) {
	var buf bytes.Buffer
	s := New(platform.Capabilities{})
	s.out = &buf

	s.Speak("hello")

	assert.Equal(t, "[tts unavailable] hello\n", buf.String())
}

func TestSpeakUsesBackend(t *testing.T) {
	var spoken []string
	var buf bytes.Buffer
	s := New(platform.Capabilities{TTS: true})
	s.out = &buf
	s.start = func(text string) error {
		spoken = append(spoken, text)
		return nil
	}

	s.Speak("hello there")

	assert.Equal(t, []string{"hello there"}, spoken)
	assert.Empty(t, buf.String())
}

func TestSpeakBackendFailurePrints(t *testing.T) {
	var buf bytes.Buffer
	s := New(platform.Capabilities{TTS: true})
	s.out = &buf
	s.start = func(string) error { return errors.New("boom") }

	s.Speak("hello")

	assert.Equal(t, "[tts unavailable] hello\n", buf.String())
}

func TestSayPrintsAndSpeaks(t *testing.T) {
	var spoken []string
	var buf bytes.Buffer
	s := New(platform.Capabilities{TTS: true})
	s.out = &buf
	s.start = func(text string) error {
		spoken = append(spoken, text)
		return nil
	}

	s.Say("Goodbye!")

	assert.Equal(t, "Assistant: Goodbye!\n", buf.String())
	assert.Equal(t, []string{"Goodbye!"}, spoken)
}

func TestEstimateCapped(t *testing.T) {
	long := make([]byte, 4096)
	for i := range long {
		long[i] = 'a'
	}

	assert.Equal(t, maxWait, estimate(string(long)))
	assert.Less(t, estimate("hi"), time.Second)
}
