package sound

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

// constant streams the same stereo frame forever.
func constant(v float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
}

func drain(s beep.Streamer, chunk int) int {
	buf := make([][2]float64, chunk)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestLevelTapEmpty(t *testing.T) {
	tap := NewLevelTap(constant(0.5), 16)
	if got := tap.Level(8); got != 0 {
		t.Errorf("Level before streaming = %v, want 0", got)
	}
}

func TestLevelTapLevel(t *testing.T) {
	tap := NewLevelTap(constant(0.5), 64)
	buf := make([][2]float64, 100)
	if n, ok := tap.Stream(buf); n != 100 || !ok {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
	want := math.Pow(0.5, 0.3)
	if got := tap.Level(32); math.Abs(got-want) > 1e-9 {
		t.Errorf("Level = %v, want %v", got, want)
	}
	if got := len(tap.snapshot(1000)); got != 64 {
		t.Errorf("snapshot len = %d, want ring size 64", got)
	}
}

func TestLevelTapSnapshotOrder(t *testing.T) {
	next := 0.0
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			next++
			samples[i] = [2]float64{next, next}
		}
		return len(samples), true
	})
	tap := NewLevelTap(src, 4)
	tap.Stream(make([][2]float64, 6))

	got := tap.snapshot(3)
	want := []float64{4, 5, 6}
	for i := range want {
		if got[i][0] != want[i] {
			t.Fatalf("snapshot = %v, want most recent last %v", got, want)
		}
	}
}

func TestChimeLengthAndDecay(t *testing.T) {
	sr := beep.SampleRate(8000)
	if got, want := drain(Chime(sr), 512), sr.N(chimeLength); got != want {
		t.Errorf("chime length = %d samples, want %d", got, want)
	}

	s := Chime(sr)
	head := make([][2]float64, 400)
	s.Stream(head)
	skip := make([][2]float64, 2000)
	s.Stream(skip)
	tail := make([][2]float64, 400)
	s.Stream(tail)
	if peak(tail) >= peak(head) {
		t.Errorf("chime did not decay: head %v tail %v", peak(head), peak(tail))
	}
	if peak(head) > 1 {
		t.Errorf("chime clips: %v", peak(head))
	}
}

func peak(samples [][2]float64) float64 {
	m := 0.0
	for _, s := range samples {
		m = math.Max(m, math.Abs(s[0]))
	}
	return m
}

func TestDecodeFileWav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chime.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: 8000, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, Chime(format.SampleRate), format); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	streamer, got, file, err := decodeFile(path)
	if err != nil {
		t.Fatalf("decodeFile: %v", err)
	}
	defer file.Close()
	defer streamer.Close()

	if got.SampleRate != 8000 {
		t.Errorf("sample rate = %v, want 8000", got.SampleRate)
	}
	if streamer.Len() != format.SampleRate.N(chimeLength) {
		t.Errorf("len = %d, want %d", streamer.Len(), format.SampleRate.N(chimeLength))
	}
}

func TestDecodeFileErrors(t *testing.T) {
	if _, _, _, err := decodeFile("song.ogg"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("err = %v, want ErrUnsupported", err)
	}
	if _, _, _, err := decodeFile(filepath.Join(t.TempDir(), "missing.WAV")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "junk.wav")
	if err := os.WriteFile(path, []byte("not a wav"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := decodeFile(path); err == nil {
		t.Error("expected decode error")
	}
}

func TestNilPlayerIsSilent(t *testing.T) {
	var p *Player
	p.PlayChime()
	p.Close()
	if err := p.LoadLoop("x.wav"); err != nil {
		t.Errorf("LoadLoop on nil player = %v", err)
	}
	if p.Level() != 0 {
		t.Error("nil player level should be 0")
	}
}
