package assistant

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeSpeaker struct {
	mu   sync.Mutex
	said []string
}

func (f *fakeSpeaker) Say(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.said = append(f.said, text)
}

func (f *fakeSpeaker) lines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.said...)
}

// fakeListener replays a queue, then blocks until the context is
// cancelled so the loop cannot spin.
type fakeListener struct {
	mu    sync.Mutex
	queue []string
}

func (f *fakeListener) ListenOnce(ctx context.Context, _, _ time.Duration) string {
	f.mu.Lock()
	if len(f.queue) > 0 {
		head := f.queue[0]
		f.queue = f.queue[1:]
		f.mu.Unlock()
		return head
	}
	f.mu.Unlock()
	<-ctx.Done()
	return ""
}

type fakeDispatcher struct {
	mu      sync.Mutex
	handled []string
}

func (f *fakeDispatcher) Handle(_ context.Context, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handled = append(f.handled, text)
}

func (f *fakeDispatcher) commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.handled...)
}

func run(t *testing.T, queue []string) (*fakeSpeaker, *fakeDispatcher, *Assistant) {
	t.Helper()

	speak := &fakeSpeaker{}
	listen := &fakeListener{queue: queue}
	dispatch := &fakeDispatcher{}
	a := New(Config{
		WakeWords: []string{"hey jarvis", "ok jarvis", "jarvis"},
		Names:     []string{"jarvis", "assistant"},
	}, speak, listen, dispatch, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.Run(ctx)
		close(done)
	}()

	// Let the queue drain, then stop the loop.
	time.Sleep(100 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}

	return speak, dispatch, a
}

func TestWakeWordEngagesAndDispatches(t *testing.T) {
	speak, dispatch, _ := run(t, []string{"hey jarvis", "what time is it"})

	assert.Equal(t, []string{"what time is it"}, dispatch.commands())
	assert.Contains(t, speak.lines(), "Yes? How can I help?")
}

func TestDirectAddressDispatchesInline(t *testing.T) {
	// "assistant" is a direct-address name but not a wake word, so the
	// remainder is dispatched inline without a second listen.
	speak, dispatch, _ := run(t, []string{"assistant open google"})

	assert.Equal(t, []string{"open google"}, dispatch.commands())
	assert.NotContains(t, speak.lines(), "Yes? How can I help?")
}

func TestWakeWordPrecedesDirectAddress(t *testing.T) {
	// "jarvis open google" contains the bare wake word, so the loop
	// engages and re-listens instead of dispatching "open google".
	speak, dispatch, _ := run(t, []string{"jarvis open google", "what time is it"})

	assert.Equal(t, []string{"what time is it"}, dispatch.commands())
	assert.Contains(t, speak.lines(), "Yes? How can I help?")
}

func TestBareNameDispatchesNothingText(t *testing.T) {
	_, dispatch, _ := run(t, []string{"assistant"})

	assert.Equal(t, []string{""}, dispatch.commands())
}

func TestUnrelatedPhraseIgnored(t *testing.T) {
	speak, dispatch, _ := run(t, []string{"just talking to a friend"})

	assert.Empty(t, dispatch.commands())
	assert.NotContains(t, speak.lines(), "Yes? How can I help?")
}

func TestSilenceStaysIdle(t *testing.T) {
	_, dispatch, _ := run(t, []string{"", "", ""})

	assert.Empty(t, dispatch.commands())
}

func TestTriggerSkipsWakeWord(t *testing.T) {
	speak := &fakeSpeaker{}
	listen := &fakeListener{queue: []string{"turn on the lights"}}
	dispatch := &fakeDispatcher{}
	a := New(Config{WakeWords: []string{"jarvis"}, Names: []string{"jarvis"}}, speak, listen, dispatch, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.Trigger()
	done := make(chan struct{})
	go func() {
		a.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, []string{"turn on the lights"}, dispatch.commands())
	assert.Contains(t, speak.lines(), "Yes? How can I help?")
}

func TestTriggerWhilePendingDropped(t *testing.T) {
	a := New(Config{}, &fakeSpeaker{}, &fakeListener{}, &fakeDispatcher{}, nil)

	a.Trigger()
	a.Trigger() // must not block
}
