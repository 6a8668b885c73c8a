package gcal

import (
	"context"
	"time"

	"github.com/tbruland/powalert/event"
)

// EventLister defines the interface for reading events from a calendar.
type EventLister interface {
	ListEvents(ctx context.Context, calendarID string, from, to time.Time) ([]event.Event, error)
}
