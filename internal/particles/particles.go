// Package particles implements the cursor-following particle trail.
//
// A Field owns its particles. Spawn adds a burst at the pointer, Tick
// advances every particle by one frame and paints the survivors onto a
// Surface. The field never reads host state on its own; the caller feeds
// it pointer positions, surface sizes and a surface to paint on.
package particles

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/channel4fun2020-lang/WhiteOrchids-EventManagement/internal/config"
)

// Surface is the drawable target of a Field.
type Surface interface {
	ClearRect(x, y, w, h float64)
	FillCircle(x, y, r float64, c color.NRGBA)
}

// Style selects one of the two trail behaviors.
type Style int

const (
	// StyleTrail drifts, floats upward and swells as it fades.
	StyleTrail Style = iota
	// StyleGlow stays where it was spawned and shrinks as it fades.
	StyleGlow
)

// ParseStyle maps "trail" and "glow" to a Style. Unknown names fall back to
// StyleTrail.
func ParseStyle(s string) Style {
	if s == "glow" {
		return StyleGlow
	}
	return StyleTrail
}

// Hue is the color category of a particle.
type Hue uint8

const (
	HuePurple Hue = iota
	HueGold
)

// Particle is a single short-lived dot.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Life   float64 // 1 at spawn, removed once <= 0
	Decay  float64
	Hue    Hue
}

// Alpha is the draw opacity derived from remaining life.
func (p Particle) Alpha() float64 {
	return math.Max(0, math.Min(1, p.Life))
}

// Field is a particle collection bound to a surface size.
type Field struct {
	style     Style
	rng       *rand.Rand
	gold      color.NRGBA
	purple    color.NRGBA
	width     float64
	height    float64
	particles []Particle
}

// Option configures a Field.
type Option func(*Field)

// WithStyle selects the trail behavior.
func WithStyle(s Style) Option {
	return func(f *Field) { f.style = s }
}

// WithRand injects the random source used for spawning.
func WithRand(r *rand.Rand) Option {
	return func(f *Field) {
		if r != nil {
			f.rng = r
		}
	}
}

// WithPalette overrides the two particle hues.
func WithPalette(gold, purple color.NRGBA) Option {
	return func(f *Field) {
		f.gold = gold
		f.purple = purple
	}
}

// New returns an empty field.
func New(opts ...Option) *Field {
	f := &Field{
		style:  StyleTrail,
		gold:   config.Gold,
		purple: config.Purple,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return f
}

// Spawn adds a burst of particles at (x, y). Non-finite coordinates are
// ignored.
func (f *Field) Spawn(x, y float64) {
	if !finite(x) || !finite(y) {
		return
	}
	switch f.style {
	case StyleGlow:
		for i := 0; i < config.GlowBurst; i++ {
			f.particles = append(f.particles, Particle{
				X:      x,
				Y:      y,
				Radius: f.rng.Float64()*4 + 2,
				Life:   1,
				Decay:  config.GlowDecay,
				Hue:    f.pick(0.5),
			})
		}
	default:
		count := config.TrailBurst
		if f.rng.Float64() < config.TrailBigChance {
			count = config.TrailBigBurst
		}
		for i := 0; i < count; i++ {
			f.particles = append(f.particles, Particle{
				X:      x + (f.rng.Float64()-0.5)*config.SpawnJitter,
				Y:      y + (f.rng.Float64()-0.5)*config.SpawnJitter,
				VX:     (f.rng.Float64() - 0.5) * 1.6,
				VY:     (f.rng.Float64()-0.5)*1.6 - 0.4,
				Radius: f.rng.Float64()*3 + 1,
				Life:   1,
				Decay:  0.02 + f.rng.Float64()*0.02,
				Hue:    f.pick(0.4),
			})
		}
	}
}

// pick returns HueGold with probability goldChance.
func (f *Field) pick(goldChance float64) Hue {
	if f.rng.Float64() < goldChance {
		return HueGold
	}
	return HuePurple
}

// Tick advances every particle by one frame, paints the live ones and
// drops the expired ones. A nil surface still advances the simulation.
func (f *Field) Tick(s Surface) {
	if s != nil {
		s.ClearRect(0, 0, f.width, f.height)
	}

	// Compact in place: live particles are written back from index 0.
	live := f.particles[:0]
	for _, p := range f.particles {
		r := f.step(&p)
		if p.Life <= 0 {
			continue
		}
		if s != nil {
			s.FillCircle(p.X, p.Y, r, f.colorOf(p))
		}
		live = append(live, p)
	}
	clear(f.particles[len(live):])
	f.particles = live
}

// step integrates one frame and returns the radius to draw with.
func (f *Field) step(p *Particle) float64 {
	switch f.style {
	case StyleGlow:
		p.Radius *= config.GlowShrink
		p.Life -= p.Decay
		return p.Radius
	default:
		p.X += p.VX
		p.Y += p.VY
		p.VY -= config.FloatBias
		p.Life -= p.Decay
		return p.Radius * (0.6 + (1 - p.Alpha()))
	}
}

func (f *Field) colorOf(p Particle) color.NRGBA {
	c := f.purple
	if p.Hue == HueGold {
		c = f.gold
	}
	c.A = uint8(float64(c.A) * p.Alpha())
	return c
}

// Resize records the drawable size. Particles are kept as they are.
func (f *Field) Resize(w, h float64) {
	f.width = math.Max(0, w)
	f.height = math.Max(0, h)
}

// Size returns the last size passed to Resize.
func (f *Field) Size() (w, h float64) {
	return f.width, f.height
}

// Len returns the number of live particles.
func (f *Field) Len() int {
	return len(f.particles)
}

// Particles returns a copy of the live particles.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
