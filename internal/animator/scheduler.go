package animator

import "time"

// Token is the cancellation token for one run of the animation. Every
// scheduled continuation carries the token that was live when it was
// scheduled; cancelling the token makes those continuations no-ops.
type Token struct {
	id        uint64
	cancelled bool
}

// Cancel marks the token cancelled.
func (t *Token) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// Cancelled reports whether the token was cancelled. A nil token counts as
// cancelled.
func (t *Token) Cancelled() bool {
	return t == nil || t.cancelled
}

// ID identifies the token in logs.
func (t *Token) ID() uint64 {
	if t == nil {
		return 0
	}
	return t.id
}

// Scheduler arranges for Driver.Resume(tok) to be called once delay has
// elapsed. Resume must be called on the goroutine that owns the Driver.
type Scheduler interface {
	Schedule(delay time.Duration, tok *Token)
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(delay time.Duration, tok *Token)

// Schedule calls f.
func (f SchedulerFunc) Schedule(delay time.Duration, tok *Token) {
	f(delay, tok)
}
