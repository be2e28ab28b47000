// Package game is the ebiten shell around the particle field, the calendar
// widget and the page effects. All widget state is mutated on the update
// goroutine; blocking dialogs report back through a channel drained at the
// start of each Update.
package game

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/channel4fun2020-lang/WhiteOrchids-EventManagement/internal/calendar"
	"github.com/channel4fun2020-lang/WhiteOrchids-EventManagement/internal/config"
	"github.com/channel4fun2020-lang/WhiteOrchids-EventManagement/internal/effects"
	"github.com/channel4fun2020-lang/WhiteOrchids-EventManagement/internal/particles"
	"github.com/channel4fun2020-lang/WhiteOrchids-EventManagement/internal/sound"
)

const eventAdded = "Event added successfully!"

// Options configures a Game. Zero values fall back to the compiled-in
// defaults.
type Options struct {
	Width, Height int
	Style         particles.Style
	Gold, Purple  color.NRGBA
	Player        *sound.Player
	Dialogs       Dialogs
	Clock         func() time.Time
}

// Game implements ebiten.Game.
type Game struct {
	width, height int
	gold, purple  color.NRGBA

	field     *particles.Field
	cal       *calendar.Widget
	hero      *effects.Stagger
	addButton *effects.Button
	reveal    *effects.Reveal

	player  *sound.Player
	dialogs Dialogs
	results chan dialogResult
	asking  bool

	// drawing
	overlay *ebiten.Image
	page    *ebiten.Image
	blocks  []*ebiten.Image
	glyphs  map[rune]*ebiten.Image

	// input
	cursorX, cursorY int
	cursorSeen       bool
	scroll           float64

	// viz
	frames     int
	colorPhase float64
	level      float64
	title      string
}

// New returns a game ready for ebiten.RunGame.
func New(opts Options) *Game {
	if opts.Width <= 0 {
		opts.Width = config.WindowWidth
	}
	if opts.Height <= 0 {
		opts.Height = config.WindowHeight
	}
	if opts.Gold == (color.NRGBA{}) {
		opts.Gold = config.Gold
	}
	if opts.Purple == (color.NRGBA{}) {
		opts.Purple = config.Purple
	}
	if opts.Dialogs == nil {
		opts.Dialogs = NativeDialogs{}
	}

	var calOpts []calendar.Option
	if opts.Clock != nil {
		calOpts = append(calOpts, calendar.WithClock(opts.Clock))
	}

	g := &Game{
		width:   opts.Width,
		height:  opts.Height,
		gold:    opts.Gold,
		purple:  opts.Purple,
		field:   particles.New(particles.WithStyle(opts.Style), particles.WithPalette(opts.Gold, opts.Purple)),
		cal:     calendar.New(calOpts...),
		hero:    effects.NewStagger(config.HeroTitle),
		reveal:  effects.NewReveal(blockSpans()...),
		player:  opts.Player,
		dialogs: opts.Dialogs,
		results: make(chan dialogResult, 4),
		glyphs:  map[rune]*ebiten.Image{},
	}
	b := addButtonRect(g.width)
	g.addButton = effects.NewButton(b.x, b.y, b.w, b.h, "Add Event")
	g.field.Resize(float64(g.width), float64(g.height))
	return g
}

func (g *Game) Update() error {
	g.drainResults()

	x, y := ebiten.CursorPosition()
	g.handleMove(x, y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick(float64(x), float64(y))
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.scrollBy(-dy * config.ScrollStep)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.cal.Navigate(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.cal.Navigate(+1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if !g.cal.Detail().Open {
			return ebiten.Termination
		}
		g.cal.CloseDetail()
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	}

	g.step()
	return nil
}

// step advances the time-driven state by one frame.
func (g *Game) step() {
	g.frames++
	now := g.elapsed()
	g.hero.Update(now)
	g.addButton.Update(g.pageX(), g.pageY(), now)
	g.reveal.Observe(g.scroll, float64(g.height), now)
	g.colorPhase += config.ColorShiftSpeed
	g.level = config.SmoothingFactor*g.level + (1-config.SmoothingFactor)*g.player.Level()

	if t := g.cal.Title(); t != g.title {
		g.title = t
		ebiten.SetWindowTitle(dialogTitle + " - " + t)
	}
}

// elapsed is the time since the page appeared, counted in frames.
func (g *Game) elapsed() time.Duration {
	return time.Duration(g.frames) * time.Second / config.FrameRate
}

// handleMove spawns particles whenever the cursor moved since the last
// frame.
func (g *Game) handleMove(x, y int) {
	moved := g.cursorSeen && (x != g.cursorX || y != g.cursorY)
	g.cursorX, g.cursorY = x, y
	g.cursorSeen = true
	if moved {
		g.field.Spawn(float64(x), float64(y))
	}
}

// scrollBy moves the page by d pixels, kept between the top and the last
// full window of content.
func (g *Game) scrollBy(d float64) {
	limit := pageHeight(g.height) - float64(g.height)
	g.scroll = min(max(g.scroll+d, 0), limit)
}

// pageX and pageY are the cursor in scrolled page coordinates.
func (g *Game) pageX() float64 { return float64(g.cursorX) }
func (g *Game) pageY() float64 { return float64(g.cursorY) + g.scroll }

// handleClick takes window coordinates. The popup is fixed to the window;
// everything else lives on the scrolled page.
func (g *Game) handleClick(x, y float64) {
	if d := g.cal.Detail(); d.Open {
		p := popupRect(g.width, g.height, len(d.Lines))
		if popupCloseRect(p).contains(x, y) || !p.contains(x, y) {
			g.cal.CloseDetail()
		}
		return
	}

	y += g.scroll
	l := g.layout()
	switch {
	case l.prev.contains(x, y):
		g.cal.Navigate(-1)
	case l.next.contains(x, y):
		g.cal.Navigate(+1)
	case l.year.contains(x, y):
		g.askYear()
	case g.addButton.Click(x, y, g.elapsed()):
		g.askEvent()
	default:
		if i, ok := l.cellAt(x, y); ok {
			if c, ok := g.cal.Grid().At(i); ok {
				g.cal.ShowEvents(c.Key)
			}
		}
	}
}

func (g *Game) layout() calendarLayout {
	return newCalendarLayout(g.width, g.cal.MonthLabel(), g.cal.Year())
}

// askEvent opens the add-event form unless a dialog is already up. The
// date picker starts on the first day of the displayed month, or today
// when today is displayed.
func (g *Game) askEvent() {
	if g.asking {
		return
	}
	g.asking = true

	def := calendar.DateKey{Year: g.cal.Year(), Month: g.cal.Month(), Day: 1}
	for _, c := range g.cal.Grid().Days {
		if c.Today {
			def = c.Key
		}
	}
	go func() {
		form, err := g.dialogs.AskEvent(def)
		g.results <- dialogResult{kind: resultEvent, event: form, err: err}
	}()
}

func (g *Game) askYear() {
	if g.asking {
		return
	}
	g.asking = true

	years, current := g.cal.YearOptions(), g.cal.Year()
	go func() {
		y, err := g.dialogs.AskYear(years, current)
		g.results <- dialogResult{kind: resultYear, year: y, err: err}
	}()
}

// drainResults applies finished dialogs without blocking.
func (g *Game) drainResults() {
	for {
		select {
		case r := <-g.results:
			g.apply(r)
		default:
			return
		}
	}
}

func (g *Game) apply(r dialogResult) {
	g.asking = false
	if r.canceled() {
		return
	}
	if r.err != nil {
		log.Printf("dialog failed: %v", r.err)
		return
	}

	switch r.kind {
	case resultYear:
		g.cal.SetYear(r.year)
	case resultEvent:
		if !g.cal.AddEvent(r.event.Date, r.event.Name, r.event.Description) {
			log.Printf("event for %q rejected: missing fields", r.event.Date)
			return
		}
		g.player.PlayChime()
		g.notify(eventAdded)
	}
}

// notify shows msg and holds the dialog slot until it is dismissed.
func (g *Game) notify(msg string) {
	g.asking = true
	go func() {
		err := g.dialogs.Notify(msg)
		g.results <- dialogResult{kind: resultNotify, err: err}
	}()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

// resize updates every size-dependent piece. The overlay image is
// reallocated on the next Draw; particles are kept.
func (g *Game) resize(w, h int) {
	g.width, g.height = max(w, 1), max(h, 1)
	g.field.Resize(float64(g.width), float64(g.height))
	b := addButtonRect(g.width)
	g.addButton.X, g.addButton.Y = b.x, b.y
	g.scrollBy(0)
}
