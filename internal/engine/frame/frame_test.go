package frame

import (
	"testing"
	"time"
)

func TestTickPassesElapsed(t *testing.T) {
	clock := &ManualClock{}
	loop := NewLoop(clock)

	var got []time.Duration
	loop.Subscribe(func(e time.Duration) { got = append(got, e) })

	loop.Tick()
	clock.Advance(16 * time.Millisecond)
	loop.Tick()
	clock.Set(time.Second)
	loop.Tick()

	want := []time.Duration{0, 16 * time.Millisecond, time.Second}
	if len(got) != len(want) {
		t.Fatalf("callback ran %d times, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tick %d: elapsed = %v, want %v", i, got[i], want[i])
		}
	}
	if loop.Ticks() != 3 {
		t.Errorf("Ticks() = %d, want 3", loop.Ticks())
	}
}

func TestCancelStopsCallback(t *testing.T) {
	clock := &ManualClock{}
	loop := NewLoop(clock)

	calls := 0
	sub := loop.Subscribe(func(time.Duration) { calls++ })
	loop.Tick()
	sub.Cancel()
	sub.Cancel()

	for i := 0; i < 5; i++ {
		clock.Advance(time.Second)
		loop.Tick()
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if sub.Active() {
		t.Error("subscription still active after Cancel")
	}
	if loop.Len() != 0 {
		t.Errorf("Len() = %d, want 0", loop.Len())
	}
}

func TestCancelDuringTick(t *testing.T) {
	loop := NewLoop(&ManualClock{})

	var second *Subscription
	secondCalls := 0
	loop.Subscribe(func(time.Duration) { second.Cancel() })
	second = loop.Subscribe(func(time.Duration) { secondCalls++ })

	loop.Tick()
	if secondCalls != 0 {
		t.Errorf("cancelled callback ran %d times in the cancelling tick", secondCalls)
	}
}

func TestSubscribeDuringTick(t *testing.T) {
	loop := NewLoop(&ManualClock{})

	lateCalls := 0
	added := false
	loop.Subscribe(func(time.Duration) {
		if !added {
			added = true
			loop.Subscribe(func(time.Duration) { lateCalls++ })
		}
	})

	loop.Tick()
	if lateCalls != 0 {
		t.Errorf("callback added mid-tick ran in the same tick")
	}
	loop.Tick()
	if lateCalls != 1 {
		t.Errorf("lateCalls = %d, want 1", lateCalls)
	}
}

func TestNilSubscription(t *testing.T) {
	var s *Subscription
	s.Cancel()
	if s.Active() {
		t.Error("nil subscription reports active")
	}
}

func TestSystemClockMoves(t *testing.T) {
	c := NewSystemClock()
	a := c.Elapsed()
	time.Sleep(time.Millisecond)
	if b := c.Elapsed(); b <= a {
		t.Errorf("Elapsed did not advance: %v then %v", a, b)
	}
}
