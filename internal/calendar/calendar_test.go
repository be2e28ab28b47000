package calendar

import (
	"reflect"
	"testing"
	"time"
)

func fixedClock(y int, m time.Month, d int) Option {
	return WithClock(func() time.Time {
		return time.Date(y, m, d, 10, 30, 0, 0, time.Local)
	})
}

func TestNewStartsAtCurrentMonth(t *testing.T) {
	w := New(fixedClock(2026, time.October, 19))
	if w.Year() != 2026 || w.Month() != time.October {
		t.Errorf("displayed %d-%d, want 2026-10", w.Year(), w.Month())
	}
	if w.Title() != "October 2026" || w.MonthLabel() != "October" {
		t.Errorf("labels = %q / %q", w.Title(), w.MonthLabel())
	}
	if w.Grid().Month != time.October {
		t.Error("New should render the initial month")
	}
}

func TestRenderMonthCellCounts(t *testing.T) {
	w := New(fixedClock(2026, time.January, 1))
	seen := map[int]bool{}
	for year := 1999; year <= 2030; year++ {
		for m := time.January; m <= time.December; m++ {
			g := w.RenderMonth(year, m)
			if len(g.Days) != DaysInMonth(year, m) {
				t.Fatalf("%d-%d: %d day cells, want %d", year, m, len(g.Days), DaysInMonth(year, m))
			}
			if g.Leading != FirstWeekday(year, m) {
				t.Fatalf("%d-%d: leading %d, want %d", year, m, g.Leading, FirstWeekday(year, m))
			}
			if g.Len() != g.Leading+len(g.Days) {
				t.Fatalf("Len mismatch")
			}
			seen[g.Leading] = true
		}
	}
	for i := 0; i < 7; i++ {
		if !seen[i] {
			t.Errorf("leading count %d never produced", i)
		}
	}
}

func TestRenderMonthKnownLayout(t *testing.T) {
	w := New(fixedClock(2026, time.March, 15))
	g := w.RenderMonth(2026, time.March)
	// 1 March 2026 is a Sunday.
	if g.Leading != 0 {
		t.Errorf("leading = %d, want 0", g.Leading)
	}
	g = w.RenderMonth(2026, time.October)
	// 1 October 2026 is a Thursday.
	if g.Leading != 4 {
		t.Errorf("leading = %d, want 4", g.Leading)
	}
	if _, ok := g.At(3); ok {
		t.Error("slot 3 should be blank")
	}
	c, ok := g.At(4)
	if !ok || c.Day != 1 {
		t.Errorf("slot 4 = %+v, %v; want day 1", c, ok)
	}
	if _, ok := g.At(g.Len()); ok {
		t.Error("slot past the end should be blank")
	}
}

func TestRenderMonthLeavesDisplayedGrid(t *testing.T) {
	w := New(fixedClock(2026, time.March, 10), WithMonth(2026, time.March))
	if g := w.RenderMonth(2027, time.July); g.Year != 2027 || g.Month != time.July {
		t.Fatalf("RenderMonth returned %d-%s", g.Year, g.Month)
	}
	if w.Year() != 2026 || w.Month() != time.March {
		t.Errorf("displayed %d-%s, want 2026-March", w.Year(), w.Month())
	}
	if g := w.Grid(); g.Year != w.Year() || g.Month != w.Month() {
		t.Errorf("Grid() = %d-%s, displayed %d-%s", g.Year, g.Month, w.Year(), w.Month())
	}
}

func TestWithMonthNormalizes(t *testing.T) {
	tests := []struct {
		year      int
		month     time.Month
		wantYear  int
		wantMonth time.Month
		wantTitle string
	}{
		{2026, time.May, 2026, time.May, "May 2026"},
		{2026, 13, 2027, time.January, "January 2027"},
		{2026, 0, 2025, time.December, "December 2025"},
		{2026, -13, 2024, time.November, "November 2024"},
		{2026, 25, 2028, time.January, "January 2028"},
	}
	for _, tt := range tests {
		w := New(fixedClock(2026, time.March, 10), WithMonth(tt.year, tt.month))
		if w.Year() != tt.wantYear || w.Month() != tt.wantMonth {
			t.Errorf("WithMonth(%d, %d): displayed %d-%d, want %d-%d",
				tt.year, tt.month, w.Year(), w.Month(), tt.wantYear, tt.wantMonth)
		}
		if w.Title() != tt.wantTitle {
			t.Errorf("WithMonth(%d, %d): title %q, want %q", tt.year, tt.month, w.Title(), tt.wantTitle)
		}
		if g := w.Grid(); g.Month != tt.wantMonth || len(g.Days) != DaysInMonth(tt.wantYear, tt.wantMonth) {
			t.Errorf("WithMonth(%d, %d): grid %d-%d with %d days", tt.year, tt.month, g.Year, g.Month, len(g.Days))
		}
	}
}

func TestRenderMarksToday(t *testing.T) {
	w := New(fixedClock(2026, time.October, 19))
	g := w.Render()
	var today []int
	for _, c := range g.Days {
		if c.Today {
			today = append(today, c.Day)
		}
	}
	if !reflect.DeepEqual(today, []int{19}) {
		t.Errorf("today cells = %v, want [19]", today)
	}

	// Same day number in another year is not today.
	g = w.RenderMonth(2025, time.October)
	for _, c := range g.Days {
		if c.Today {
			t.Errorf("day %d marked today in 2025", c.Day)
		}
	}
}

func TestDaysInMonthLeapYears(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2000, time.February, 29},
		{1900, time.February, 28},
		{2026, time.April, 30},
		{2026, time.December, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %s) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestNavigateRollsOver(t *testing.T) {
	w := New(fixedClock(2026, time.January, 1), WithMonth(2026, time.January))
	w.Navigate(-1)
	if w.Year() != 2025 || w.Month() != time.December {
		t.Errorf("Jan-1 = %d-%s, want 2025 December", w.Year(), w.Month())
	}
	w.Navigate(+1)
	if w.Year() != 2026 || w.Month() != time.January {
		t.Errorf("Dec+1 = %d-%s, want 2026 January", w.Year(), w.Month())
	}
	if w.Grid().Year != 2026 || w.Grid().Month != time.January {
		t.Error("Navigate should re-render")
	}
}

func TestNavigateTwelveMonths(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		w := New(fixedClock(2026, time.January, 1), WithMonth(2026, m))
		for i := 0; i < 12; i++ {
			w.Navigate(+1)
		}
		if w.Year() != 2027 || w.Month() != m {
			t.Errorf("+12 from %s: %d-%s", m, w.Year(), w.Month())
		}
		for i := 0; i < 24; i++ {
			w.Navigate(-1)
		}
		if w.Year() != 2025 || w.Month() != m {
			t.Errorf("-24 from 2027 %s: %d-%s", m, w.Year(), w.Month())
		}
	}
}

func TestNavigateLargeDelta(t *testing.T) {
	w := New(fixedClock(2026, time.January, 1), WithMonth(2026, time.March))
	w.Navigate(-27)
	if w.Year() != 2023 || w.Month() != time.December {
		t.Errorf("-27 = %d-%s, want 2023 December", w.Year(), w.Month())
	}
}

func TestSetYearKeepsMonth(t *testing.T) {
	w := New(fixedClock(2026, time.October, 19))
	w.SetYear(2029)
	if w.Year() != 2029 || w.Month() != time.October {
		t.Errorf("SetYear = %d-%s, want 2029 October", w.Year(), w.Month())
	}
	if w.Grid().Year != 2029 {
		t.Error("SetYear should re-render")
	}
}

func TestAddEventThenShow(t *testing.T) {
	w := New(fixedClock(2026, time.March, 1))
	if !w.AddEvent("2026-3-15", "Ann", "desc") {
		t.Fatal("AddEvent rejected a valid event")
	}
	d := w.ShowEvents(DateKey{2026, time.March, 15})
	if !d.Open {
		t.Error("detail not open")
	}
	if !reflect.DeepEqual(d.Lines, []string{"Ann: desc"}) {
		t.Errorf("lines = %q", d.Lines)
	}
	if d.Title != "Events on 15 March 2026" {
		t.Errorf("title = %q", d.Title)
	}

	c, _ := w.Grid().At(w.Grid().Leading + 14)
	if c.Day != 15 || !c.HasEvent {
		t.Errorf("cell = %+v, want day 15 with event", c)
	}
}

func TestShowEventsPlaceholder(t *testing.T) {
	w := New(fixedClock(2026, time.March, 1))
	d := w.ShowEvents(DateKey{2026, time.March, 2})
	if !d.Open || !reflect.DeepEqual(d.Lines, []string{NoEvents}) {
		t.Errorf("detail = %+v", d)
	}
	w.CloseDetail()
	if w.Detail().Open {
		t.Error("CloseDetail left popup open")
	}
}

func TestAddEventKeepsOrder(t *testing.T) {
	w := New(fixedClock(2026, time.March, 1))
	w.AddEvent("2026-03-15", "Ann", "first")
	w.AddEvent("2026-3-15", "Bob", "second")
	w.AddEvent(" 2026-3-15 ", " Cy ", " third ")

	d := w.ShowEvents(DateKey{2026, time.March, 15})
	want := []string{"Ann: first", "Bob: second", "Cy: third"}
	if !reflect.DeepEqual(d.Lines, want) {
		t.Errorf("lines = %q, want %q", d.Lines, want)
	}
	if w.Len() != 1 {
		t.Errorf("Len = %d, want 1 day", w.Len())
	}
}

func TestAddEventRejectsBlank(t *testing.T) {
	w := New(fixedClock(2026, time.March, 1))
	tests := []struct{ date, name, desc string }{
		{"2026-3-15", "", "desc"},
		{"2026-3-15", "   ", "desc"},
		{"2026-3-15", "Ann", ""},
		{"", "Ann", "desc"},
		{"2026-2-30", "Ann", "desc"},
		{"someday", "Ann", "desc"},
	}
	for _, tt := range tests {
		if w.AddEvent(tt.date, tt.name, tt.desc) {
			t.Errorf("AddEvent(%q, %q, %q) accepted", tt.date, tt.name, tt.desc)
		}
	}
	if w.Len() != 0 {
		t.Errorf("Len = %d, want 0", w.Len())
	}
	for _, c := range w.Render().Days {
		if c.HasEvent {
			t.Errorf("day %d marked has-event", c.Day)
		}
	}
}

func TestAddEventRefreshesOpenDetail(t *testing.T) {
	w := New(fixedClock(2026, time.March, 1))
	key := DateKey{2026, time.March, 4}
	w.ShowEvents(key)
	w.AddEvent(key.String(), "Ann", "desc")
	if got := w.Detail().Lines; !reflect.DeepEqual(got, []string{"Ann: desc"}) {
		t.Errorf("open detail lines = %q", got)
	}
}

func TestKeysDoNotCollideAcrossYears(t *testing.T) {
	w := New(fixedClock(2026, time.March, 1))
	w.AddEvent("2026-3-15", "Ann", "desc")
	for _, c := range w.RenderMonth(2027, time.March).Days {
		if c.HasEvent {
			t.Errorf("2027-3-%d marked has-event", c.Day)
		}
	}
	if evs := w.Events(DateKey{2027, time.March, 15}); evs != nil {
		t.Errorf("events = %v, want none", evs)
	}
}

func TestYearOptions(t *testing.T) {
	w := New(fixedClock(2026, time.March, 1), WithMonth(2001, time.May))
	years := w.YearOptions()
	if len(years) != 11 || years[0] != 2021 || years[10] != 2031 {
		t.Errorf("years = %v", years)
	}
}
