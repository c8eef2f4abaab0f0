package states

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/symbionic/ornaments/internal/engine/frame"
	"github.com/symbionic/ornaments/internal/engine/input"
	"github.com/symbionic/ornaments/internal/logger"
	"github.com/symbionic/ornaments/internal/orchestrate"
)

// Titler shows a line of text, the window title in the showcase.
type Titler interface {
	SetTitle(title string)
}

// LoadingConfig configures the loading screen.
type LoadingConfig struct {
	Title       string
	Typewriter  orchestrate.Typewriter
	RevealAfter time.Duration
	Prompt      string
	// Surface, when set, is cleared every frame.
	Surface Surface
}

// LoadingState types the loading words into the title and, once the
// prompt is revealed, moves to the next state on a key press or click.
type LoadingState struct {
	config  LoadingConfig
	loop    *frame.Loop
	titler  Titler
	manager *Manager
	next    State

	sub      *frame.Subscription
	start    time.Duration
	started  bool
	elapsed  time.Duration
	revealed bool
	title    string
}

// NewLoadingState creates a loading state that hands over to next.
func NewLoadingState(cfg LoadingConfig, loop *frame.Loop, titler Titler, manager *Manager, next State) *LoadingState {
	if cfg.Prompt == "" {
		cfg.Prompt = "press any key to get started"
	}
	return &LoadingState{
		config:  cfg,
		loop:    loop,
		titler:  titler,
		manager: manager,
		next:    next,
	}
}

// Enter subscribes the typewriter to the frame loop.
func (s *LoadingState) Enter() error {
	s.started = false
	s.revealed = false
	s.elapsed = 0
	s.sub = s.loop.Subscribe(s.tick)
	logger.Info("entering LoadingState", zap.Int("words", len(s.config.Typewriter.Words)))
	return nil
}

func (s *LoadingState) tick(elapsed time.Duration) {
	if !s.started {
		s.start = elapsed
		s.started = true
	}
	s.elapsed = elapsed - s.start
	if !s.revealed && orchestrate.Reveal(s.elapsed, s.config.RevealAfter) {
		s.revealed = true
		logger.Debug("loading prompt revealed", zap.Duration("after", s.elapsed))
	}
	s.setTitle(s.Title())
}

func (s *LoadingState) setTitle(title string) {
	if title == s.title {
		return
	}
	s.title = title
	s.titler.SetTitle(title)
}

// Title renders the current loading line.
func (s *LoadingState) Title() string {
	var b strings.Builder
	if s.config.Title != "" {
		b.WriteString(s.config.Title)
		b.WriteString(" | ")
	}
	b.WriteString(s.config.Typewriter.Text(s.elapsed))
	if s.config.Typewriter.CursorVisible(s.elapsed) {
		b.WriteString("_")
	}
	if s.revealed {
		b.WriteString("  [")
		b.WriteString(s.config.Prompt)
		b.WriteString("]")
	}
	return b.String()
}

// Revealed reports whether the prompt is showing.
func (s *LoadingState) Revealed() bool {
	return s.revealed
}

// Exit cancels the typewriter.
func (s *LoadingState) Exit() error {
	s.sub.Cancel()
	s.sub = nil
	if s.config.Title != "" {
		s.setTitle(s.config.Title)
	}
	return nil
}

// Update is a no-op; the typewriter runs on the frame loop.
func (s *LoadingState) Update(dt float64) error {
	return nil
}

// Render clears the surface; the loading text lives in the title.
func (s *LoadingState) Render() error {
	if s.config.Surface != nil {
		s.config.Surface.Begin()
		s.config.Surface.End()
	}
	return nil
}

// HandleInput advances to the next state once the prompt is revealed.
func (s *LoadingState) HandleInput(event input.Event) error {
	if !s.revealed {
		return nil
	}
	switch event.Type {
	case input.EventKeyDown, input.EventMouseDown:
		s.manager.Change(s.next)
	}
	return nil
}
