package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	FrameRate = 60

	// Background
	SmoothingFactor = 0.6
	ColorShiftSpeed = 0.0015

	// Particle field
	FloatBias      = 0.006
	SpawnJitter    = 6.0
	TrailBurst     = 4
	TrailBigBurst  = 8
	TrailBigChance = 0.15
	GlowBurst      = 3
	GlowShrink     = 0.97
	GlowDecay      = 0.02

	// Calendar
	YearSpan      = 5
	CalendarY     = 190
	CellWidth     = 62
	CellHeight    = 52
	CellGap       = 6
	NavButtonSize = 32

	// Buttons
	ButtonWidth  = 140
	ButtonHeight = 40
	HoverLift    = 6.0

	// Hero
	HeroTitle = "White Orchids Events"
	HeroY     = 90

	// Content blocks below the calendar
	ScrollStep  = 40.0
	BlockHeight = 110
	BlockGap    = 28
)

var (
	Gold   = color.NRGBA{R: 199, G: 154, B: 59, A: 255}
	Purple = color.NRGBA{R: 155, G: 89, B: 182, A: 255}
)

// Theme is the optional YAML override file.
type Theme struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Style  string `yaml:"style"`  // "trail" or "glow"
	Gold   string `yaml:"gold"`   // hex color, e.g. "#c79a3b"
	Purple string `yaml:"purple"` // hex color
	Music  string `yaml:"music"`  // path to a wav/mp3/flac loop
}

// Default returns the compiled-in theme.
func Default() Theme {
	return Theme{
		Width:  WindowWidth,
		Height: WindowHeight,
		Style:  "trail",
		Gold:   "#c79a3b",
		Purple: "#9b59b6",
	}
}

// Load reads a theme file on top of the defaults. An empty path returns
// the defaults.
func Load(path string) (Theme, error) {
	theme := Default()
	if path == "" {
		return theme, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return theme, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return Default(), fmt.Errorf("error parsing config file: %w", err)
	}

	if theme.Width <= 0 {
		theme.Width = WindowWidth
	}
	if theme.Height <= 0 {
		theme.Height = WindowHeight
	}
	switch theme.Style {
	case "trail", "glow":
	case "":
		theme.Style = "trail"
	default:
		return Default(), fmt.Errorf("unknown particle style %q", theme.Style)
	}
	return theme, nil
}

// Palette returns the gold and purple colors of the theme, falling back to
// the built-in hues when a value does not parse.
func (t Theme) Palette() (gold, purple color.NRGBA) {
	gold, purple = Gold, Purple
	if c, err := ParseHex(t.Gold); err == nil {
		gold = c
	}
	if c, err := ParseHex(t.Purple); err == nil {
		purple = c
	}
	return gold, purple
}

// ParseHex parses "#rrggbb" or "rrggbb" into an opaque color.
func ParseHex(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
