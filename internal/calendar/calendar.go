// Package calendar holds the month-view widget state: the displayed month,
// the in-memory event list and the grid and detail models derived from them.
// Nothing here draws; the game package turns Grid and Detail into pixels.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/channel4fun2020-lang/WhiteOrchids-EventManagement/internal/config"
)

// NoEvents is the single detail line shown for a day without events.
const NoEvents = "No events added yet."

// Weekdays are the column headers, Sunday first.
var Weekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Event is one entry recorded against a day.
type Event struct {
	Name        string
	Description string
}

func (e Event) String() string {
	return e.Name + ": " + e.Description
}

// Cell is one day of a rendered month.
type Cell struct {
	Day      int
	Key      DateKey
	Today    bool
	HasEvent bool
}

// Grid is a rendered month: Leading empty cells followed by Days.
type Grid struct {
	Year    int
	Month   time.Month
	Leading int
	Days    []Cell
}

// Len returns the number of grid slots including the leading blanks.
func (g Grid) Len() int {
	return g.Leading + len(g.Days)
}

// At returns the cell in grid slot i, or false for a blank or out of range
// slot.
func (g Grid) At(i int) (Cell, bool) {
	i -= g.Leading
	if i < 0 || i >= len(g.Days) {
		return Cell{}, false
	}
	return g.Days[i], true
}

// Detail is the event popup.
type Detail struct {
	Open  bool
	Key   DateKey
	Title string
	Lines []string
}

// Widget is a navigable month view with an event list.
type Widget struct {
	now    func() time.Time
	year   int
	month  time.Month
	events map[DateKey][]Event
	grid   Grid
	detail Detail
}

// Option configures a Widget.
type Option func(*Widget)

// WithClock replaces time.Now. Used for "today" marking and the initial
// month.
func WithClock(now func() time.Time) Option {
	return func(w *Widget) {
		if now != nil {
			w.now = now
		}
	}
}

// WithMonth sets the initially displayed month. Out of range months roll
// over into the neighbouring years, so month 13 of 2026 is January 2027.
func WithMonth(year int, month time.Month) Option {
	return func(w *Widget) {
		w.year, w.month = addMonths(year, month, 0)
	}
}

// New returns a widget showing the current month with no events.
func New(opts ...Option) *Widget {
	w := &Widget{
		now:    time.Now,
		events: make(map[DateKey][]Event),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.month == 0 {
		today := w.now()
		w.year, w.month = today.Year(), today.Month()
	}
	w.Render()
	return w
}

// Year returns the displayed year.
func (w *Widget) Year() int { return w.year }

// Month returns the displayed month.
func (w *Widget) Month() time.Month { return w.month }

// Title is the combined label, e.g. "March 2026".
func (w *Widget) Title() string {
	return fmt.Sprintf("%s %d", w.month, w.year)
}

// MonthLabel is the month-only label used next to the year selector.
func (w *Widget) MonthLabel() string {
	return w.month.String()
}

// YearOptions lists the selectable years around the current real year.
func (w *Widget) YearOptions() []int {
	cur := w.now().Year()
	years := make([]int, 0, 2*config.YearSpan+1)
	for y := cur - config.YearSpan; y <= cur+config.YearSpan; y++ {
		years = append(years, y)
	}
	return years
}

// RenderMonth builds the grid for year/month from the current events. It
// does not change the displayed month or the grid returned by Grid.
func (w *Widget) RenderMonth(year int, month time.Month) Grid {
	today := KeyOf(w.now())
	n := DaysInMonth(year, month)

	g := Grid{
		Year:    year,
		Month:   month,
		Leading: FirstWeekday(year, month),
		Days:    make([]Cell, 0, n),
	}
	for day := 1; day <= n; day++ {
		key := DateKey{Year: year, Month: month, Day: day}
		g.Days = append(g.Days, Cell{
			Day:      day,
			Key:      key,
			Today:    key == today,
			HasEvent: len(w.events[key]) > 0,
		})
	}
	return g
}

// Render re-renders the displayed month and stores it as the widget's grid.
func (w *Widget) Render() Grid {
	w.grid = w.RenderMonth(w.year, w.month)
	return w.grid
}

// Grid returns the displayed month as of the last Render.
func (w *Widget) Grid() Grid {
	return w.grid
}

// Navigate moves the displayed month by delta, rolling the year over at
// the boundaries, and re-renders.
func (w *Widget) Navigate(delta int) {
	w.year, w.month = addMonths(w.year, w.month, delta)
	w.Render()
}

// addMonths moves year/month by delta months and brings month back into
// January..December.
func addMonths(year int, month time.Month, delta int) (int, time.Month) {
	idx := year*12 + int(month-1) + delta
	y, m := idx/12, idx%12
	if m < 0 {
		y, m = y-1, m+12
	}
	return y, time.Month(m + 1)
}

// SetYear jumps to year, keeping the month, and re-renders.
func (w *Widget) SetYear(year int) {
	w.year = year
	w.Render()
}

// ShowEvents opens the detail popup for key.
func (w *Widget) ShowEvents(key DateKey) Detail {
	d := Detail{
		Open:  true,
		Key:   key,
		Title: fmt.Sprintf("Events on %d %s %d", key.Day, key.Month, key.Year),
	}
	if evs := w.events[key]; len(evs) > 0 {
		d.Lines = make([]string, 0, len(evs))
		for _, ev := range evs {
			d.Lines = append(d.Lines, ev.String())
		}
	} else {
		d.Lines = []string{NoEvents}
	}
	w.detail = d
	return d
}

// Detail returns the popup state.
func (w *Widget) Detail() Detail {
	return w.detail
}

// CloseDetail hides the popup.
func (w *Widget) CloseDetail() {
	w.detail.Open = false
}

// AddEvent records an event. It returns false without changing anything
// when a field is blank or the date does not parse.
func (w *Widget) AddEvent(dateKey, name, description string) bool {
	dateKey = strings.TrimSpace(dateKey)
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if dateKey == "" || name == "" || description == "" {
		return false
	}
	key, err := ParseDateKey(dateKey)
	if err != nil {
		return false
	}

	w.events[key] = append(w.events[key], Event{Name: name, Description: description})
	w.Render()
	if w.detail.Open && w.detail.Key == key {
		w.ShowEvents(key)
	}
	return true
}

// Events returns a copy of the events recorded for key.
func (w *Widget) Events(key DateKey) []Event {
	evs := w.events[key]
	if len(evs) == 0 {
		return nil
	}
	out := make([]Event, len(evs))
	copy(out, evs)
	return out
}

// Len returns the number of days that have events.
func (w *Widget) Len() int {
	return len(w.events)
}
