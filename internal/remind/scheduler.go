package remind

import (
	"context"
	log "log/slog"
	"sync"
	"time"
)

// Reminder is a one-shot spoken notification tied to a future timestamp.
type Reminder struct {
	FireAt  time.Time
	Message string
}

// Scheduler arranges for reminder messages to be announced once their
// time arrives. Scheduling never blocks: each reminder gets its own timer
// goroutine, fully decoupled from the caller. There is no cancellation of
// individual reminders and no persistence; a restart loses everything.
// Shutdown stops all outstanding timers.
type Scheduler struct {
	mu   sync.Mutex
	list []Reminder

	ctx      context.Context
	cancel   context.CancelFunc
	announce func(text string)
	now      func() time.Time
}

func NewScheduler(announce func(text string)) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		ctx:      ctx,
		cancel:   cancel,
		announce: announce,
		now:      time.Now,
	}
}

// Schedule registers the reminder and returns immediately. A reminder in
// the past fires right away. Reminders racing to fire near-simultaneously
// are independent; no ordering is guaranteed between them.
func (s *Scheduler) Schedule(fireAt time.Time, message string) {
	s.mu.Lock()
	s.list = append(s.list, Reminder{FireAt: fireAt, Message: message})
	s.mu.Unlock()

	log.Info("Reminder scheduled", "at", fireAt, "message", message)

	go s.wait(fireAt, message)
}

func (s *Scheduler) wait(fireAt time.Time, message string) {
	if d := fireAt.Sub(s.now()); d > 0 {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-t.C:
		case <-s.ctx.Done():
			return
		}
	}
	s.announce("Reminder: " + message)
}

// Pending returns a copy of every reminder ever scheduled. The list is
// append-only and never pruned, fired entries included.
func (s *Scheduler) Pending() []Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Reminder, len(s.list))
	copy(out, s.list)
	return out
}

// Shutdown cancels all outstanding timers. Already-fired reminders are
// unaffected.
func (s *Scheduler) Shutdown() {
	s.cancel()
}
