package event

import (
	"testing"
	"time"
)

func TestWhen(t *testing.T) {
	timed := Event{
		Summary: "Mountain trip",
		Start:   time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC),
	}
	if got := timed.When(); got != "Sat Feb 1 09:00" {
		t.Errorf("When() = %q, want %q", got, "Sat Feb 1 09:00")
	}

	allDay := Event{
		Summary: "Snow trip",
		Start:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		AllDay:  true,
	}
	if got := allDay.When(); got != "Sat Feb 1 (all day)" {
		t.Errorf("When() = %q, want %q", got, "Sat Feb 1 (all day)")
	}
}

func TestMatchesAny(t *testing.T) {
	tests := []struct {
		name     string
		summary  string
		keywords []string
		want     bool
	}{
		{"no keywords matches everything", "Dentist", nil, true},
		{"direct match", "Snowboarding at the resort", []string{"snowboarding"}, true},
		{"case folded match", "SNOW TRIP", []string{"snow trip"}, true},
		{"substring match", "Big board weekend", []string{"board"}, true},
		{"no match", "Dentist", []string{"snow", "board"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Event{Summary: tt.summary}
			if got := e.MatchesAny(tt.keywords); got != tt.want {
				t.Errorf("MatchesAny(%v) = %v, want %v", tt.keywords, got, tt.want)
			}
		})
	}
}

func TestMatchKeywords(t *testing.T) {
	events := []Event{
		{Summary: "Snowboarding"},
		{Summary: "Dentist"},
		{Summary: "snow trip planning"},
	}

	matched := MatchKeywords(events, []string{"snow"})
	if len(matched) != 2 {
		t.Fatalf("MatchKeywords returned %d events, want 2", len(matched))
	}
	if matched[0].Summary != "Snowboarding" || matched[1].Summary != "snow trip planning" {
		t.Errorf("MatchKeywords returned %v", matched)
	}

	// No keywords: input passes through untouched.
	all := MatchKeywords(events, nil)
	if len(all) != len(events) {
		t.Errorf("MatchKeywords with no keywords returned %d events, want %d", len(all), len(events))
	}
}
