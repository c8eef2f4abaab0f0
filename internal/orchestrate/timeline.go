package orchestrate

import (
	"math"
	"time"
)

// Phase is where a Typewriter is within the current word.
type Phase int

const (
	Typing Phase = iota
	Holding
	Erasing
)

func (p Phase) String() string {
	switch p {
	case Typing:
		return "typing"
	case Holding:
		return "holding"
	case Erasing:
		return "erasing"
	}
	return "unknown"
}

// Typewriter types each word one character at a time, holds it, erases
// it and moves on to the next, cycling forever. The first character of a
// word appears as soon as the word starts.
type Typewriter struct {
	Words         []string
	TypeInterval  time.Duration
	Hold          time.Duration
	EraseInterval time.Duration
	CursorBlink   time.Duration
}

// NewTypewriter returns the loading-screen defaults for words.
func NewTypewriter(words ...string) Typewriter {
	return Typewriter{
		Words:         words,
		TypeInterval:  80 * time.Millisecond,
		Hold:          2 * time.Second,
		EraseInterval: 50 * time.Millisecond,
		CursorBlink:   500 * time.Millisecond,
	}
}

// wordCycle is the time one word occupies: typing L characters, the hold,
// then erasing L characters.
func (tw Typewriter) wordCycle(word string) time.Duration {
	n := time.Duration(len([]rune(word)))
	return n*tw.TypeInterval + tw.Hold + n*tw.EraseInterval
}

// State returns the visible text, the word index and the phase at elapsed.
func (tw Typewriter) State(elapsed time.Duration) (string, int, Phase) {
	if len(tw.Words) == 0 || tw.TypeInterval <= 0 || tw.EraseInterval <= 0 {
		return "", 0, Holding
	}
	if elapsed < 0 {
		elapsed = 0
	}

	var total time.Duration
	for _, w := range tw.Words {
		total += tw.wordCycle(w)
	}
	if total <= 0 {
		return "", 0, Holding
	}
	local := elapsed % total

	for i, w := range tw.Words {
		cycle := tw.wordCycle(w)
		if local >= cycle {
			local -= cycle
			continue
		}
		runes := []rune(w)
		n := len(runes)
		typed := time.Duration(n) * tw.TypeInterval
		switch {
		case local < typed:
			shown := int(local/tw.TypeInterval) + 1
			return string(runes[:shown]), i, Typing
		case local < typed+tw.Hold:
			return w, i, Holding
		default:
			erased := int((local-typed-tw.Hold)/tw.EraseInterval) + 1
			return string(runes[:max(n-erased, 0)]), i, Erasing
		}
	}
	return "", 0, Holding
}

// Text returns the visible text at elapsed.
func (tw Typewriter) Text(elapsed time.Duration) string {
	s, _, _ := tw.State(elapsed)
	return s
}

// CursorVisible reports the blinking cursor state; it starts visible.
func (tw Typewriter) CursorVisible(elapsed time.Duration) bool {
	if tw.CursorBlink <= 0 {
		return true
	}
	return (elapsed/tw.CursorBlink)%2 == 0
}

// Reveal reports whether a prompt delayed by after is showing at elapsed.
func Reveal(elapsed, after time.Duration) bool {
	return elapsed >= after
}

// Ease maps linear progress in [0, 1] to eased progress.
type Ease func(p float64) float64

// Linear is the identity curve.
func Linear(p float64) float64 { return p }

// Power2InOut accelerates then decelerates quadratically.
func Power2InOut(p float64) float64 {
	if p < 0.5 {
		return 2 * p * p
	}
	return 1 - math.Pow(-2*p+2, 2)/2
}

// Power3Out decelerates cubically.
func Power3Out(p float64) float64 {
	return 1 - math.Pow(1-p, 3)
}

// Tween interpolates From to To over Duration after Delay.
type Tween struct {
	From, To float64
	Delay    time.Duration
	Duration time.Duration
	Ease     Ease
}

// At returns the tweened value at elapsed.
func (tw Tween) At(elapsed time.Duration) float64 {
	return tw.From + (tw.To-tw.From)*tw.Progress(elapsed)
}

// Progress returns eased progress in [0, 1].
func (tw Tween) Progress(elapsed time.Duration) float64 {
	local := elapsed - tw.Delay
	if local <= 0 {
		return 0
	}
	if tw.Duration <= 0 || local >= tw.Duration {
		return 1
	}
	p := float64(local) / float64(tw.Duration)
	if tw.Ease != nil {
		p = tw.Ease(p)
	}
	return p
}

// Done reports whether the tween has finished at elapsed.
func (tw Tween) Done(elapsed time.Duration) bool {
	return elapsed >= tw.Delay+tw.Duration
}

// Fade maps a scroll position to opacity: 0 before Start, 1 after End and
// linear in between. Start > End fades out instead.
type Fade struct {
	Start float64
	End   float64
}

// Opacity returns the opacity at scroll position pos.
func (f Fade) Opacity(pos float64) float64 {
	if f.Start == f.End {
		if pos >= f.End {
			return 1
		}
		return 0
	}
	p := (pos - f.Start) / (f.End - f.Start)
	return math.Max(0, math.Min(1, p))
}
