package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/channel4fun2020-lang/WhiteOrchids-EventManagement/internal/config"
	"github.com/channel4fun2020-lang/WhiteOrchids-EventManagement/internal/game"
	"github.com/channel4fun2020-lang/WhiteOrchids-EventManagement/internal/particles"
	"github.com/channel4fun2020-lang/WhiteOrchids-EventManagement/internal/sound"
)

func main() {
	configPath := flag.String("config", "", "YAML theme file")
	music := flag.String("music", "", "Ambient loop (wav, mp3 or flac)")
	style := flag.String("style", "", "Particle style: trail or glow")
	width := flag.Int("width", 0, "Window width")
	height := flag.Int("height", 0, "Window height")
	mute := flag.Bool("mute", false, "Disable all sound")
	debug := flag.Bool("debug", false, "Log to stderr")
	flag.Parse()

	setupLogging(*debug)

	theme, err := config.Load(*configPath)
	if err != nil {
		log.Printf("config: %v (using defaults)", err)
	}
	if *style != "" {
		theme.Style = *style
	}
	if *music != "" {
		theme.Music = *music
	}
	if *width > 0 {
		theme.Width = *width
	}
	if *height > 0 {
		theme.Height = *height
	}

	var player *sound.Player
	if !*mute {
		player, err = sound.NewPlayer(sound.SampleRate)
		if err != nil {
			log.Printf("sound disabled: %v", err)
		}
	}
	if theme.Music != "" {
		if err := player.LoadLoop(theme.Music); err != nil {
			log.Printf("music: %v", err)
		}
	}
	defer player.Close()

	gold, purple := theme.Palette()
	g := game.New(game.Options{
		Width:  theme.Width,
		Height: theme.Height,
		Style:  particles.ParseStyle(theme.Style),
		Gold:   gold,
		Purple: purple,
		Player: player,
	})

	ebiten.SetWindowSize(theme.Width, theme.Height)
	ebiten.SetWindowTitle("White Orchids Events")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.FrameRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging sends the standard logger to stderr when debug is set and
// discards it otherwise.
func setupLogging(debug bool) {
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	if !debug {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(os.Stderr)
}
