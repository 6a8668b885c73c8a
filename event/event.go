package event

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Event is a calendar event stripped down to what the reminder needs.
// Start and End satisfy Start <= End; Calendar records which account the
// event came from and is informational only.
type Event struct {
	Summary  string
	Start    time.Time
	End      time.Time
	AllDay   bool
	Calendar string
}

// When renders the event's start for humans.
func (e Event) When() string {
	if e.AllDay {
		return e.Start.Format("Mon Jan 2") + " (all day)"
	}
	return e.Start.Format("Mon Jan 2 15:04")
}

// MatchesAny reports whether the event summary contains any of the keywords,
// compared caselessly. An empty keyword list matches every event.
func (e Event) MatchesAny(keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	folder := cases.Fold()
	summary := folder.String(e.Summary)
	for _, k := range keywords {
		if strings.Contains(summary, folder.String(k)) {
			return true
		}
	}
	return false
}

// MatchKeywords returns the events whose summary matches one of the keywords.
// With no keywords configured the input is returned unchanged.
func MatchKeywords(events []Event, keywords []string) []Event {
	if len(keywords) == 0 {
		return events
	}
	var matched []Event
	for _, e := range events {
		if e.MatchesAny(keywords) {
			matched = append(matched, e)
		}
	}
	return matched
}
