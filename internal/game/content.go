package game

import (
	"github.com/channel4fun2020-lang/WhiteOrchids-EventManagement/internal/config"
	"github.com/channel4fun2020-lang/WhiteOrchids-EventManagement/internal/effects"
)

// contentBlock is a text panel below the calendar that fades in the first
// time it scrolls into view.
type contentBlock struct {
	title string
	lines []string
}

var contentBlocks = []contentBlock{
	{"About White Orchids", []string{
		"Weddings, galas and private dinners planned end to end.",
		"One coordinator from the first call to the last dance.",
	}},
	{"Weddings", []string{
		"Ceremony design, floral styling and guest logistics.",
		"Orchid arrangements grown for the season of your date.",
	}},
	{"Corporate Events", []string{
		"Launches, conferences and award nights for up to 800 guests.",
		"Venue sourcing, catering and stage production in one plan.",
	}},
	{"Gallery", []string{
		"Recent evenings: a riverside reception, a winter gala,",
		"and a garden brunch under a canopy of white orchids.",
	}},
}

// blocksTop is where the first content block starts, below the add button.
func blocksTop() float64 {
	b := addButtonRect(0)
	return b.y + b.h + 60
}

// blockRect places content block i in page coordinates.
func blockRect(width, i int) rect {
	return rect{
		x: (float64(width) - gridWidth()) / 2,
		y: blocksTop() + float64(i)*(config.BlockHeight+config.BlockGap),
		w: gridWidth(),
		h: config.BlockHeight,
	}
}

// pageHeight is the scrollable height for a window of the given height.
func pageHeight(height int) float64 {
	last := blockRect(0, len(contentBlocks)-1)
	return max(float64(height), last.y+last.h+60)
}

func blockSpans() []effects.Span {
	spans := make([]effects.Span, len(contentBlocks))
	for i := range contentBlocks {
		r := blockRect(0, i)
		spans[i] = effects.Span{Top: r.y, Height: r.h}
	}
	return spans
}
