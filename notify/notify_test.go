package notify

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/tbruland/powalert/event"
)

func TestCompose(t *testing.T) {
	events := []event.Event{
		{
			Summary: "Mountain trip",
			Start:   time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			Summary: "Snow trip",
			Start:   time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC),
			AllDay:  true,
		},
	}

	msg := Compose(events)

	if msg.Subject != "Snowboarding Parking Reminder" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	if !strings.Contains(msg.Body, "parking") {
		t.Errorf("body does not mention parking: %q", msg.Body)
	}
	if !strings.Contains(msg.Body, "Mountain trip") {
		t.Errorf("body does not mention the event title: %q", msg.Body)
	}
	if !strings.Contains(msg.Body, "Sat Feb 1 09:00") {
		t.Errorf("body does not mention the event date: %q", msg.Body)
	}
	if !strings.Contains(msg.Body, "Sun Feb 2 (all day)") {
		t.Errorf("body does not mention the all-day event: %q", msg.Body)
	}

	// Events appear in input order.
	if strings.Index(msg.Body, "Mountain trip") > strings.Index(msg.Body, "Snow trip") {
		t.Errorf("events listed out of order: %q", msg.Body)
	}
}

// MockSender is a mock implementation of Sender.
type MockSender struct {
	Sent []Message
	Err  error
}

func (m *MockSender) Send(ctx context.Context, msg Message) error {
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, msg)
	return nil
}

// The mock must satisfy the interface the entry point depends on.
var _ Sender = (*MockSender)(nil)
var _ Sender = (*Mailer)(nil)

func TestMockSenderRecordsMessage(t *testing.T) {
	mock := &MockSender{}
	msg := Compose([]event.Event{{Summary: "Mountain trip", Start: time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)}})

	if err := mock.Send(context.Background(), msg); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if len(mock.Sent) != 1 {
		t.Fatalf("Sent %d messages, want 1", len(mock.Sent))
	}
	if !strings.Contains(mock.Sent[0].Body, "Mountain trip") {
		t.Errorf("sent body = %q", mock.Sent[0].Body)
	}
}
