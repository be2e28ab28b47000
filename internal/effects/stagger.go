package effects

import (
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/channel4fun2020-lang/WhiteOrchids-EventManagement/internal/config"
)

const (
	staggerDelay = 420 * time.Millisecond
	staggerStep  = 28 * time.Millisecond
	staggerRise  = 18.0
)

// Letter is one rune of a staggered title.
type Letter struct {
	Rune    rune
	Offset  float64 // pixels below the resting line
	Opacity float64
	vel     float64
	started bool
}

// Stagger animates a title one letter at a time: each letter rises into
// place and fades in, the next one starting a fixed step later.
type Stagger struct {
	spring  harmonica.Spring
	letters []Letter
}

// NewStagger splits text into letters, all hidden below the line.
func NewStagger(text string) *Stagger {
	s := &Stagger{
		spring: harmonica.NewSpring(harmonica.FPS(config.FrameRate), 9.0, 0.85),
	}
	for _, r := range text {
		s.letters = append(s.letters, Letter{Rune: r, Offset: staggerRise})
	}
	return s
}

// Update advances one frame. elapsed is the time since the page appeared.
func (s *Stagger) Update(elapsed time.Duration) {
	for i := range s.letters {
		l := &s.letters[i]
		if !l.started {
			if elapsed < staggerDelay+time.Duration(i)*staggerStep {
				continue
			}
			l.started = true
		}
		l.Offset, l.vel = s.spring.Update(l.Offset, l.vel, 0)
		l.Opacity = clamp01(1 - l.Offset/staggerRise)
	}
}

// Letters returns the current letter states.
func (s *Stagger) Letters() []Letter {
	return s.letters
}

// Settled reports whether every letter has come to rest.
func (s *Stagger) Settled() bool {
	for _, l := range s.letters {
		if !l.started || l.Offset > 0.05 || l.Offset < -0.05 {
			return false
		}
	}
	return true
}
