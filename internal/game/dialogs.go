package game

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ncruces/zenity"

	"github.com/channel4fun2020-lang/WhiteOrchids-EventManagement/internal/calendar"
)

const dialogTitle = "White Orchids Events"

// ErrCanceled is returned by Dialogs when the user dismisses a dialog.
var ErrCanceled = zenity.ErrCanceled

// EventForm is what the add-event dialog collected.
type EventForm struct {
	Date        string
	Name        string
	Description string
}

// Dialogs are the blocking native prompts. They run off the frame loop.
type Dialogs interface {
	AskEvent(def calendar.DateKey) (EventForm, error)
	AskYear(years []int, current int) (int, error)
	Notify(msg string) error
}

// NativeDialogs shows zenity dialogs.
type NativeDialogs struct{}

func (NativeDialogs) AskEvent(def calendar.DateKey) (EventForm, error) {
	date, err := zenity.Calendar("Event date",
		zenity.Title(dialogTitle),
		zenity.DefaultDate(def.Year, def.Month, def.Day),
	)
	if err != nil {
		return EventForm{}, err
	}
	name, err := zenity.Entry("Your name", zenity.Title(dialogTitle))
	if err != nil {
		return EventForm{}, err
	}
	desc, err := zenity.Entry("Event description", zenity.Title(dialogTitle))
	if err != nil {
		return EventForm{}, err
	}
	return EventForm{
		Date:        calendar.KeyOf(date).String(),
		Name:        name,
		Description: desc,
	}, nil
}

func (NativeDialogs) AskYear(years []int, current int) (int, error) {
	items := make([]string, len(years))
	for i, y := range years {
		items[i] = strconv.Itoa(y)
	}
	choice, err := zenity.List("Select year", items,
		zenity.Title(dialogTitle),
		zenity.DefaultItems(strconv.Itoa(current)),
	)
	if err != nil {
		return 0, err
	}
	y, err := strconv.Atoi(choice)
	if err != nil {
		return 0, fmt.Errorf("year %q: %w", choice, err)
	}
	return y, nil
}

func (NativeDialogs) Notify(msg string) error {
	return zenity.Info(msg, zenity.Title(dialogTitle), zenity.InfoIcon)
}

type resultKind int

const (
	resultEvent resultKind = iota
	resultYear
	resultNotify
)

// dialogResult carries a finished dialog back to the frame loop.
type dialogResult struct {
	kind  resultKind
	event EventForm
	year  int
	err   error
}

// canceled reports whether the dialog ended without a choice.
func (r dialogResult) canceled() bool {
	return errors.Is(r.err, ErrCanceled)
}
