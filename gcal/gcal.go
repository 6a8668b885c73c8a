package gcal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/tbruland/powalert/event"
)

// maxResultsPerCalendar caps how many events are requested per calendar.
const maxResultsPerCalendar = 50

// Service interacts with the Google Calendar API.
type Service struct {
	service *calendar.Service
	log     *zap.Logger
}

// NewService creates a read-only calendar client authenticated with the given
// service account JSON. Service accounts need no interactive token exchange,
// which is what lets this run headless under a scheduler.
func NewService(ctx context.Context, serviceAccountJSON []byte, logger *zap.Logger) (*Service, error) {
	jwtConfig, err := google.JWTConfigFromJSON(serviceAccountJSON, calendar.CalendarReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parsing service account credentials: %w", err)
	}

	srv, err := calendar.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("creating calendar service: %w", err)
	}

	return &Service{service: srv, log: logger}, nil
}

// ListEvents retrieves events for a calendar ID with a start in [from, to).
func (s *Service) ListEvents(ctx context.Context, calendarID string, from, to time.Time) ([]event.Event, error) {
	res, err := s.service.Events.List(calendarID).
		ShowDeleted(false).
		SingleEvents(true).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		MaxResults(maxResultsPerCalendar).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("retrieving events from calendar %s: %w", calendarID, err)
	}

	events := make([]event.Event, 0, len(res.Items))
	for _, item := range res.Items {
		ev, err := parseEvent(item, calendarID)
		if err != nil {
			s.log.Warn("skipping event",
				zap.String("calendar", calendarID),
				zap.String("summary", item.Summary),
				zap.Error(err))
			continue
		}
		events = append(events, ev)
	}

	s.log.Info("fetched events",
		zap.String("calendar", calendarID),
		zap.Int("count", len(events)))
	return events, nil
}

// FetchAll lists events from every calendar in order and returns the combined
// result. The first calendar error aborts the fetch.
func FetchAll(ctx context.Context, lister EventLister, calendarIDs []string, from, to time.Time) ([]event.Event, error) {
	var all []event.Event
	for _, id := range calendarIDs {
		events, err := lister.ListEvents(ctx, id, from, to)
		if err != nil {
			return nil, err
		}
		all = append(all, events...)
	}
	return all, nil
}

// parseEvent converts an API event into the domain model. Google represents
// all-day events with a bare Date and timed events with an RFC3339 DateTime.
func parseEvent(item *calendar.Event, calendarID string) (event.Event, error) {
	if item.Start == nil {
		return event.Event{}, errors.New("event has no start")
	}

	ev := event.Event{
		Summary:  item.Summary,
		Calendar: calendarID,
	}

	switch {
	case item.Start.Date != "":
		start, err := time.ParseInLocation("2006-01-02", item.Start.Date, time.Local)
		if err != nil {
			return event.Event{}, fmt.Errorf("parsing all-day start %q: %w", item.Start.Date, err)
		}
		ev.Start = start
		ev.End = start.AddDate(0, 0, 1)
		ev.AllDay = true
		if item.End != nil && item.End.Date != "" {
			if end, err := time.ParseInLocation("2006-01-02", item.End.Date, time.Local); err == nil {
				ev.End = end
			}
		}
	case item.Start.DateTime != "":
		start, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			return event.Event{}, fmt.Errorf("parsing start %q: %w", item.Start.DateTime, err)
		}
		ev.Start = start
		ev.End = start
		if item.End != nil && item.End.DateTime != "" {
			if end, err := time.Parse(time.RFC3339, item.End.DateTime); err == nil {
				ev.End = end
			}
		}
	default:
		return event.Event{}, errors.New("event start has neither date nor dateTime")
	}

	return ev, nil
}
