package game

import (
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/channel4fun2020-lang/WhiteOrchids-EventManagement/internal/calendar"
	"github.com/channel4fun2020-lang/WhiteOrchids-EventManagement/internal/config"
	"github.com/channel4fun2020-lang/WhiteOrchids-EventManagement/internal/effects"
)

const heroScale = 3

var (
	cellColor   = color.NRGBA{R: 24, G: 20, B: 30, A: 220}
	hoverColor  = color.NRGBA{R: 60, G: 44, B: 70, A: 230}
	panelColor  = color.NRGBA{R: 12, G: 10, B: 16, A: 240}
	borderColor = color.NRGBA{R: 90, G: 80, B: 110, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawPage(screen)
	g.drawDetail(screen)
	g.drawParticles(screen)

	// Page fade-in: a black veil lifting over the first second.
	if a := effects.PageFade.Alpha(g.elapsed()); a < 1 {
		veil := color.NRGBA{A: uint8(255 * (1 - a))}
		vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height), veil, false)
	}
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	// Dark gradient drifting in hue; the soundtrack level brightens it.
	const band = 4
	for y := 0; y < g.height; y += band {
		ratio := float64(y) / float64(g.height)
		hue := 270 + 40*math.Sin(g.colorPhase*2*math.Pi+ratio*math.Pi)
		v := 0.06 + 0.05*(1-ratio) + 0.08*g.level
		r, gv, b := hsvToRgb(hue, 0.55, v)
		vector.DrawFilledRect(screen, 0, float32(y), float32(g.width), band, color.RGBA{R: r, G: gv, B: b, A: 255}, false)
	}
}

// drawPage paints the scrollable content on the page image and shows the
// window-sized slice at the scroll offset.
func (g *Game) drawPage(screen *ebiten.Image) {
	g.page = fitImage(g.page, g.width, int(math.Ceil(pageHeight(g.height))))
	g.page.Clear()

	g.drawHero(g.page)
	g.drawCalendar(g.page)
	g.drawButton(g.page, g.addButton)
	g.drawBlocks(g.page)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, -g.scroll)
	screen.DrawImage(g.page, op)
}

// drawBlocks fades and lifts each content block in once it is revealed.
func (g *Game) drawBlocks(page *ebiten.Image) {
	now := g.elapsed()
	for i := range contentBlocks {
		a := g.reveal.Alpha(i, now)
		if a <= 0 {
			continue
		}
		r := blockRect(g.width, i)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(r.x, r.y+g.reveal.Offset(i, now))
		op.ColorScale.ScaleAlpha(float32(a))
		page.DrawImage(g.block(i), op)
	}
}

// block renders content block i once and caches it.
func (g *Game) block(i int) *ebiten.Image {
	if g.blocks == nil {
		g.blocks = make([]*ebiten.Image, len(contentBlocks))
	}
	if img := g.blocks[i]; img != nil {
		return img
	}
	b := contentBlocks[i]
	w, h := int(gridWidth()), config.BlockHeight
	img := ebiten.NewImage(w, h)
	vector.DrawFilledRect(img, 0, 0, float32(w), float32(h), panelColor, false)
	vector.StrokeRect(img, 0, 0, float32(w), float32(h), 1, withAlpha(g.gold, 0.7), false)
	ebitenutil.DebugPrintAt(img, b.title, 18, 16)
	for j, line := range b.lines {
		ebitenutil.DebugPrintAt(img, line, 18, 48+j*popupLineStep)
	}
	g.blocks[i] = img
	return img
}

func (g *Game) drawHero(screen *ebiten.Image) {
	letters := g.hero.Letters()
	total := float64(len(letters) * charWidth * heroScale)
	x := (float64(g.width) - total) / 2
	for _, l := range letters {
		if l.Opacity > 0 && l.Rune != ' ' {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(heroScale, heroScale)
			op.GeoM.Translate(x, config.HeroY+l.Offset)
			op.ColorScale.ScaleWithColor(g.gold)
			op.ColorScale.ScaleAlpha(float32(l.Opacity))
			screen.DrawImage(g.glyph(l.Rune), op)
		}
		x += charWidth * heroScale
	}
}

// glyph renders r once with the debug font and caches it.
func (g *Game) glyph(r rune) *ebiten.Image {
	if img, ok := g.glyphs[r]; ok {
		return img
	}
	img := ebiten.NewImage(charWidth+2, charHeight)
	ebitenutil.DebugPrint(img, string(r))
	g.glyphs[r] = img
	return img
}

func (g *Game) drawCalendar(screen *ebiten.Image) {
	l := g.layout()
	grid := g.cal.Grid()

	cx, cy := g.pageX(), g.pageY()
	g.drawNav(screen, l.prev, "<", l.prev.contains(cx, cy))
	g.drawNav(screen, l.next, ">", l.next.contains(cx, cy))
	ebitenutil.DebugPrintAt(screen, g.cal.MonthLabel(), int(l.month.x), int(l.month.y))
	ebitenutil.DebugPrintAt(screen, yearLabel(g.cal.Year()), int(l.year.x), int(l.year.y))

	for i, day := range calendar.Weekdays {
		c := l.cell(i)
		ebitenutil.DebugPrintAt(screen, day, int(c.x+(c.w-float64(len(day)*charWidth))/2), int(l.weekdayY))
	}

	for i := 0; i < grid.Len(); i++ {
		cell, ok := grid.At(i)
		if !ok {
			continue
		}
		r := l.cell(i)
		fill := cellColor
		if r.contains(cx, cy) && !g.cal.Detail().Open {
			fill = hoverColor
		}
		if cell.HasEvent {
			fill = withAlpha(g.purple, 0.35)
		}
		vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), fill, false)

		switch {
		case cell.Today:
			vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 2, g.gold, false)
		case cell.HasEvent:
			vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, withAlpha(g.purple, 0.6), false)
		}

		label := strconv.Itoa(cell.Day)
		tx := r.x + (r.w-float64(len(label)*charWidth))/2
		ty := r.y + (r.h-charHeight)/2
		ebitenutil.DebugPrintAt(screen, label, int(tx), int(ty))
	}
}

func (g *Game) drawNav(screen *ebiten.Image, r rect, label string, hover bool) {
	fill := cellColor
	if hover {
		fill = hoverColor
	}
	vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), fill, false)
	vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, borderColor, false)
	ebitenutil.DebugPrintAt(screen, label, int(r.x+(r.w-charWidth)/2), int(r.y+(r.h-charHeight)/2))
}

func (g *Game) drawButton(screen *ebiten.Image, b *effects.Button) {
	y := b.Y - b.Lift()
	bg := color.NRGBA{R: 100, G: 70, B: 130, A: 255}
	if b.Hovered() {
		bg = color.NRGBA{R: 125, G: 85, B: 160, A: 255}
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(y), float32(b.W), float32(b.H), bg, false)
	vector.StrokeRect(screen, float32(b.X), float32(y), float32(b.W), float32(b.H), 2, g.gold, false)

	now := g.elapsed()
	for _, r := range b.Ripples() {
		radius := r.Size / 2 * r.Scale(now)
		if radius <= 0 {
			continue
		}
		ring := withAlpha(color.NRGBA{R: 255, G: 255, B: 255, A: 40}, r.Opacity(now))
		// Ripples are clipped to the button face.
		face := screen.SubImage(rectImage(b.X, y, b.W, b.H)).(*ebiten.Image)
		vector.DrawFilledCircle(face, float32(b.X+r.X), float32(y+r.Y), float32(radius), ring, true)
	}

	tx := b.X + (b.W-float64(len(b.Label)*charWidth))/2
	ty := y + (b.H-charHeight)/2
	ebitenutil.DebugPrintAt(screen, b.Label, int(tx), int(ty))
}

func (g *Game) drawDetail(screen *ebiten.Image) {
	d := g.cal.Detail()
	if !d.Open {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height), color.NRGBA{A: 120}, false)

	p := popupRect(g.width, g.height, len(d.Lines))
	vector.DrawFilledRect(screen, float32(p.x), float32(p.y), float32(p.w), float32(p.h), panelColor, false)
	vector.StrokeRect(screen, float32(p.x), float32(p.y), float32(p.w), float32(p.h), 2, g.purple, false)
	ebitenutil.DebugPrintAt(screen, d.Title, int(p.x)+16, int(p.y)+14)
	for i, line := range d.Lines {
		ebitenutil.DebugPrintAt(screen, "- "+line, int(p.x)+16, int(p.y)+44+i*popupLineStep)
	}
	c := popupCloseRect(p)
	g.drawNav(screen, c, "x", c.contains(float64(g.cursorX), float64(g.cursorY)))
}

// drawParticles ticks the field onto the overlay and composites it. The
// overlay follows the window size; a stale one is released first.
func (g *Game) drawParticles(screen *ebiten.Image) {
	g.overlay = fitImage(g.overlay, g.width, g.height)
	g.field.Tick(overlaySurface{img: g.overlay})
	screen.DrawImage(g.overlay, nil)
}

// fitImage returns img when it is already w by h. Otherwise it releases img
// and allocates a fresh one.
func fitImage(img *ebiten.Image, w, h int) *ebiten.Image {
	if img != nil {
		if b := img.Bounds(); b.Dx() == w && b.Dy() == h {
			return img
		}
		img.Deallocate()
	}
	return ebiten.NewImage(w, h)
}
