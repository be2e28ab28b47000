package game

import (
	"strconv"

	"github.com/channel4fun2020-lang/WhiteOrchids-EventManagement/internal/config"
)

const (
	charWidth  = 6 // debug font glyph size
	charHeight = 16

	gridColumns = 7
	gridRows    = 6

	popupWidth    = 420
	popupLineStep = 20
)

// calendarLayout places the calendar for a given window width.
type calendarLayout struct {
	gridX, gridY float64
	prev, next   rect
	month        rect
	year         rect
	weekdayY     float64
}

func gridWidth() float64 {
	return gridColumns*(config.CellWidth+config.CellGap) - config.CellGap
}

func gridHeight() float64 {
	return gridRows*(config.CellHeight+config.CellGap) - config.CellGap
}

// newCalendarLayout centers the grid horizontally. The header shows the
// month label followed by a clickable year label.
func newCalendarLayout(width int, monthLabel string, year int) calendarLayout {
	gw := gridWidth()
	l := calendarLayout{
		gridX:    (float64(width) - gw) / 2,
		gridY:    config.CalendarY,
		weekdayY: config.CalendarY - 24,
	}
	headerY := float64(config.CalendarY) - 70
	l.prev = rect{l.gridX, headerY, config.NavButtonSize, config.NavButtonSize}
	l.next = rect{l.gridX + gw - config.NavButtonSize, headerY, config.NavButtonSize, config.NavButtonSize}

	yearText := yearLabel(year)
	monthW := float64(len(monthLabel) * charWidth)
	yearW := float64(len(yearText) * charWidth)
	total := monthW + charWidth + yearW
	textY := headerY + (config.NavButtonSize-charHeight)/2
	startX := l.gridX + (gw-total)/2
	l.month = rect{startX, textY, monthW, charHeight}
	l.year = rect{startX + monthW + charWidth, textY, yearW, charHeight}
	return l
}

func yearLabel(year int) string {
	return "[" + strconv.Itoa(year) + "]"
}

// cell returns the rectangle of grid slot i.
func (l calendarLayout) cell(i int) rect {
	col, row := i%gridColumns, i/gridColumns
	return rect{
		x: l.gridX + float64(col)*(config.CellWidth+config.CellGap),
		y: l.gridY + float64(row)*(config.CellHeight+config.CellGap),
		w: config.CellWidth,
		h: config.CellHeight,
	}
}

// cellAt returns the grid slot under (x, y). Gaps between cells miss.
func (l calendarLayout) cellAt(x, y float64) (int, bool) {
	dx, dy := x-l.gridX, y-l.gridY
	if dx < 0 || dy < 0 {
		return 0, false
	}
	col := int(dx / (config.CellWidth + config.CellGap))
	row := int(dy / (config.CellHeight + config.CellGap))
	if col >= gridColumns || row >= gridRows {
		return 0, false
	}
	i := row*gridColumns + col
	if !l.cell(i).contains(x, y) {
		return 0, false
	}
	return i, true
}

// addButtonRect sits centered under the grid.
func addButtonRect(width int) rect {
	return rect{
		x: (float64(width) - config.ButtonWidth) / 2,
		y: config.CalendarY + gridHeight() + 14,
		w: config.ButtonWidth,
		h: config.ButtonHeight,
	}
}

// popupRect is the event detail box for n lines, centered in the window.
func popupRect(width, height, n int) rect {
	h := float64(70 + popupLineStep*n)
	return rect{
		x: (float64(width) - popupWidth) / 2,
		y: (float64(height) - h) / 2,
		w: popupWidth,
		h: h,
	}
}

func popupCloseRect(p rect) rect {
	return rect{p.x + p.w - 28, p.y + 6, 22, 22}
}
