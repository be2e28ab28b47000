package effects

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/channel4fun2020-lang/WhiteOrchids-EventManagement/internal/config"
)

const (
	rippleGrow    = 600 * time.Millisecond
	rippleHold    = 300 * time.Millisecond
	rippleFadeOut = 650 * time.Millisecond
)

// Ripple is a click ring expanding from the pointer inside a button.
type Ripple struct {
	X, Y float64 // center, relative to the button
	Size float64
	Born time.Duration
}

// Scale returns the ring scale in [0,1] at now.
func (r Ripple) Scale(now time.Duration) float64 {
	t := clamp01(float64(now-r.Born) / float64(rippleGrow))
	return 1 - (1-t)*(1-t)
}

// Opacity returns the ring opacity in [0,1] at now.
func (r Ripple) Opacity(now time.Duration) float64 {
	age := now - r.Born
	if age <= rippleHold {
		return 1
	}
	return 1 - clamp01(float64(age-rippleHold)/float64(rippleGrow))
}

// Expired reports whether the ripple should be removed.
func (r Ripple) Expired(now time.Duration) bool {
	return now-r.Born >= rippleHold+rippleFadeOut
}

// Button is a clickable rectangle with a hover lift and click ripples.
type Button struct {
	X, Y, W, H float64
	Label      string

	spring  harmonica.Spring
	lift    float64
	vel     float64
	hovered bool
	ripples []Ripple
}

// NewButton returns a button at rest.
func NewButton(x, y, w, h float64, label string) *Button {
	return &Button{
		X: x, Y: y, W: w, H: h,
		Label:  label,
		spring: harmonica.NewSpring(harmonica.FPS(config.FrameRate), 12.0, 0.7),
	}
}

// Contains reports whether (x, y) is inside the button at rest.
func (b *Button) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// Update advances the hover spring and drops finished ripples.
func (b *Button) Update(cursorX, cursorY float64, now time.Duration) {
	b.hovered = b.Contains(cursorX, cursorY)
	target := 0.0
	if b.hovered {
		target = config.HoverLift
	}
	b.lift, b.vel = b.spring.Update(b.lift, b.vel, target)

	live := b.ripples[:0]
	for _, r := range b.ripples {
		if !r.Expired(now) {
			live = append(live, r)
		}
	}
	b.ripples = live
}

// Click starts a ripple at (x, y) if it lands on the button and reports
// whether it did.
func (b *Button) Click(x, y float64, now time.Duration) bool {
	if !b.Contains(x, y) {
		return false
	}
	b.ripples = append(b.ripples, Ripple{
		X:    x - b.X,
		Y:    y - b.Y,
		Size: math.Max(b.W, b.H) * 1.6,
		Born: now,
	})
	return true
}

// Hovered reports whether the cursor was over the button on the last
// Update.
func (b *Button) Hovered() bool { return b.hovered }

// Lift is the current upward displacement in pixels.
func (b *Button) Lift() float64 { return b.lift }

// Ripples returns the live ripples.
func (b *Button) Ripples() []Ripple { return b.ripples }
