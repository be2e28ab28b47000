// Package sound plays the optional ambient loop and the event chime, and
// reports the loop's current loudness to the renderer.
package sound

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

const (
	SampleRate = beep.SampleRate(44100)
	ringSize   = 8192
	levelWidth = 2048
)

// ErrUnsupported is returned for files that are not wav, mp3 or flac.
var ErrUnsupported = errors.New("unsupported file type")

// Player owns the speaker. A nil *Player is valid and silent.
type Player struct {
	sr       beep.SampleRate
	file     *os.File
	streamer beep.StreamSeekCloser
	tap      *LevelTap
}

// NewPlayer initializes the speaker at sr.
func NewPlayer(sr beep.SampleRate) (*Player, error) {
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Player{sr: sr}, nil
}

// LoadLoop decodes path and plays it on repeat, replacing any previous loop.
func (p *Player) LoadLoop(path string) error {
	if p == nil {
		return nil
	}
	streamer, format, f, err := decodeFile(path)
	if err != nil {
		return err
	}

	p.stopLoop()

	var s beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != p.sr {
		s = beep.Resample(4, format.SampleRate, p.sr, s)
	}
	tap := NewLevelTap(s, ringSize)
	vol := &effects.Volume{Streamer: tap, Base: 2, Volume: -1.5}

	p.file = f
	p.streamer = streamer
	p.tap = tap
	speaker.Play(vol)
	return nil
}

// PlayChime mixes the event chime over whatever is playing.
func (p *Player) PlayChime() {
	if p == nil {
		return
	}
	speaker.Play(Chime(p.sr))
}

// Level returns the current loudness of the loop, 0 when nothing plays.
func (p *Player) Level() float64 {
	if p == nil || p.tap == nil {
		return 0
	}
	return p.tap.Level(levelWidth)
}

// Close stops playback and releases the loop file.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.stopLoop()
}

func (p *Player) stopLoop() {
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		_ = p.file.Close()
		p.file = nil
	}
	p.tap = nil
}

// decodeFile opens path and picks a decoder by extension. The caller owns
// the returned file.
func decodeFile(path string) (beep.StreamSeekCloser, beep.Format, *os.File, error) {
	var decode func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		decode = func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) }
	case ".mp3":
		decode = func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) }
	case ".flac":
		decode = func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(f) }
	default:
		return nil, beep.Format{}, nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, nil, err
	}
	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return streamer, format, f, nil
}
