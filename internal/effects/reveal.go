package effects

import "time"

// RevealThreshold is the share of a block that has to be inside the view
// before the block is revealed.
const RevealThreshold = 0.12

// RevealRise is how far a block travels up while it appears.
const RevealRise = 24.0

// RevealFade is the fade a block runs once revealed.
var RevealFade = Fade{Duration: 700 * time.Millisecond}

// Span is the vertical extent of a block in page coordinates.
type Span struct {
	Top, Height float64
}

// Visible returns the share of s inside the view [top, top+height).
func (s Span) Visible(top, height float64) float64 {
	if s.Height <= 0 {
		if s.Top >= top && s.Top < top+height {
			return 1
		}
		return 0
	}
	overlap := min(s.Top+s.Height, top+height) - max(s.Top, top)
	if overlap <= 0 {
		return 0
	}
	return min(overlap/s.Height, 1)
}

type revealBlock struct {
	span     Span
	revealed bool
	at       time.Duration
}

// Reveal fades blocks in the first time enough of each one scrolls into
// view. A revealed block is never hidden again.
type Reveal struct {
	blocks []revealBlock
}

func NewReveal(spans ...Span) *Reveal {
	r := &Reveal{blocks: make([]revealBlock, len(spans))}
	for i, s := range spans {
		r.blocks[i].span = s
	}
	return r
}

// Observe reveals every hidden block that has at least RevealThreshold of
// its height inside the view, stamping it with now. It returns how many
// blocks were newly revealed.
func (r *Reveal) Observe(top, height float64, now time.Duration) int {
	n := 0
	for i := range r.blocks {
		b := &r.blocks[i]
		if b.revealed || b.span.Visible(top, height) < RevealThreshold {
			continue
		}
		b.revealed, b.at = true, now
		n++
	}
	return n
}

func (r *Reveal) Len() int { return len(r.blocks) }

func (r *Reveal) Span(i int) Span { return r.blocks[i].span }

func (r *Reveal) Revealed(i int) bool { return r.blocks[i].revealed }

// Alpha is the opacity of block i at now: 0 while hidden, then RevealFade
// from the moment it was revealed.
func (r *Reveal) Alpha(i int, now time.Duration) float64 {
	b := r.blocks[i]
	if !b.revealed {
		return 0
	}
	return RevealFade.Alpha(now - b.at)
}

// Offset is how far below its resting place block i is drawn.
func (r *Reveal) Offset(i int, now time.Duration) float64 {
	return RevealRise * (1 - r.Alpha(i, now))
}
