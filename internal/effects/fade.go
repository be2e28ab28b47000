// Package effects holds the small presentation animations around the core
// widgets: page fade-in, hero title stagger, button hover and ripple, and
// the one-shot reveal of content blocks as they scroll into view. Every
// effect is driven by an elapsed duration supplied by the caller.
package effects

import "time"

// Fade is a delayed linear fade-in.
type Fade struct {
	Delay    time.Duration
	Duration time.Duration
}

// PageFade is the fade applied to the whole window at startup.
var PageFade = Fade{Delay: 100 * time.Millisecond, Duration: time.Second}

// Alpha returns the opacity at elapsed, in [0,1].
func (f Fade) Alpha(elapsed time.Duration) float64 {
	if elapsed <= f.Delay {
		return 0
	}
	if f.Duration <= 0 {
		return 1
	}
	return clamp01(float64(elapsed-f.Delay) / float64(f.Duration))
}

// Done reports whether the fade has completed.
func (f Fade) Done(elapsed time.Duration) bool {
	return elapsed >= f.Delay+f.Duration
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
