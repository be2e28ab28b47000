package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

const (
	chimeLength = 350 * time.Millisecond
	chimeLow    = 880.0
	chimeHigh   = 1320.0
	chimeGain   = 0.25
)

// Chime returns a short decaying two-tone bell at sample rate sr.
func Chime(sr beep.SampleRate) beep.Streamer {
	total := sr.N(chimeLength)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			t := float64(pos) / float64(sr)
			env := chimeGain * math.Exp(-9*t)
			v := env * (math.Sin(2*math.Pi*chimeLow*t) + 0.5*math.Sin(2*math.Pi*chimeHigh*t))
			samples[i] = [2]float64{v, v}
			pos++
		}
		return len(samples), true
	})
}
