// Package weekend decides which calendar events fall in the upcoming
// Friday–Sunday window and therefore warrant a parking reminder.
package weekend

import (
	"sort"
	"time"

	"github.com/tbruland/powalert/event"
)

// Window is a half-open [Start, End) span covering one Friday through the
// following Sunday in a fixed location.
type Window struct {
	Start time.Time
	End   time.Time
}

// Upcoming returns the weekend window for the given reference time, computed
// in the reference time's location. The window begins on the same-or-next
// Friday at 00:00; if the reference falls on a Saturday or Sunday the window
// begins on the Friday just passed, so a run during the weekend still targets
// that weekend.
func Upcoming(ref time.Time) Window {
	y, m, d := ref.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, ref.Location())

	var friday time.Time
	switch wd := day.Weekday(); wd {
	case time.Saturday:
		friday = day.AddDate(0, 0, -1)
	case time.Sunday:
		friday = day.AddDate(0, 0, -2)
	default:
		friday = day.AddDate(0, 0, (int(time.Friday)-int(wd)+7)%7)
	}

	return Window{Start: friday, End: friday.AddDate(0, 0, 3)}
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Filter returns the events whose start time falls in the weekend window for
// ref, ordered by start time ascending. Events from either calendar count
// equally and duplicates are kept. The result is empty when nothing
// qualifies. Filter is a pure function of its inputs.
func Filter(events []event.Event, ref time.Time) []event.Event {
	w := Upcoming(ref)

	var qualifying []event.Event
	for _, e := range events {
		if w.Contains(e.Start) {
			qualifying = append(qualifying, e)
		}
	}

	sort.SliceStable(qualifying, func(i, j int) bool {
		return qualifying[i].Start.Before(qualifying[j].Start)
	})
	return qualifying
}
