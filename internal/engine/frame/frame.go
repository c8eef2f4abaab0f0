// Package frame schedules per-frame callbacks against a clock.
package frame

import (
	"sync"
	"time"
)

// Clock reports the time elapsed since it started.
type Clock interface {
	Elapsed() time.Duration
}

// SystemClock measures wall time from its creation.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a wall clock now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Elapsed implements Clock.
func (c *SystemClock) Elapsed() time.Duration {
	return time.Since(c.start)
}

// ManualClock only moves when told to. Tests use it to simulate time.
type ManualClock struct {
	mu      sync.Mutex
	elapsed time.Duration
}

// Elapsed implements Clock.
func (c *ManualClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.elapsed += d
	c.mu.Unlock()
}

// Set moves the clock to an absolute elapsed time.
func (c *ManualClock) Set(d time.Duration) {
	c.mu.Lock()
	c.elapsed = d
	c.mu.Unlock()
}

// Callback receives the clock's elapsed time once per tick.
type Callback func(elapsed time.Duration)

// Subscription is a registered callback.
type Subscription struct {
	loop   *Loop
	fn     Callback
	active bool
}

// Cancel deregisters the callback. It never runs again, even if the loop
// is in the middle of a tick. Cancel is idempotent.
func (s *Subscription) Cancel() {
	if s == nil || s.loop == nil {
		return
	}
	s.loop.remove(s)
}

// Active reports whether the callback is still registered.
func (s *Subscription) Active() bool {
	if s == nil || s.loop == nil {
		return false
	}
	s.loop.mu.Lock()
	defer s.loop.mu.Unlock()
	return s.active
}

// Loop runs subscribed callbacks serially, one pass per Tick. Callbacks
// may subscribe or cancel from inside a tick.
type Loop struct {
	clock Clock

	mu   sync.Mutex
	subs []*Subscription
	tick uint64
}

// NewLoop creates a loop driven by clock.
func NewLoop(clock Clock) *Loop {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &Loop{clock: clock}
}

// Clock returns the loop's clock.
func (l *Loop) Clock() Clock {
	return l.clock
}

// Subscribe registers fn to run on every following tick.
func (l *Loop) Subscribe(fn Callback) *Subscription {
	s := &Subscription{loop: l, fn: fn, active: true}
	l.mu.Lock()
	l.subs = append(l.subs, s)
	l.mu.Unlock()
	return s
}

func (l *Loop) remove(s *Subscription) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !s.active {
		return
	}
	s.active = false
	for i, cur := range l.subs {
		if cur == s {
			l.subs = append(l.subs[:i:i], l.subs[i+1:]...)
			break
		}
	}
}

// Len returns the number of live subscriptions.
func (l *Loop) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.subs)
}

// Ticks returns how many ticks have run.
func (l *Loop) Ticks() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tick
}

// Tick reads the clock once and runs every live callback with that time.
// Callbacks added during the tick first run on the next one.
func (l *Loop) Tick() time.Duration {
	elapsed := l.clock.Elapsed()

	l.mu.Lock()
	l.tick++
	pending := append([]*Subscription(nil), l.subs...)
	l.mu.Unlock()

	for _, s := range pending {
		l.mu.Lock()
		live := s.active
		l.mu.Unlock()
		if live {
			s.fn(elapsed)
		}
	}
	return elapsed
}
