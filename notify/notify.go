// Package notify composes and sends the parking reminder email.
package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/tbruland/powalert/event"
)

const subject = "Snowboarding Parking Reminder"

// Message is a composed email ready for submission.
type Message struct {
	Subject string
	Body    string
}

// Compose builds the plain-text reminder listing each qualifying event.
func Compose(events []event.Event) Message {
	var b strings.Builder
	b.WriteString("Reminder to get parking for the upcoming snowboarding weekend.\n\n")
	b.WriteString("Upcoming events:\n")
	for _, e := range events {
		fmt.Fprintf(&b, " - %s: %s\n", e.When(), e.Summary)
	}
	return Message{Subject: subject, Body: b.String()}
}

// Sender defines the interface for submitting a composed message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPConfig holds the submission endpoint and credentials.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Mailer submits messages over SMTP with mandatory STARTTLS. One attempt per
// message, no retry.
type Mailer struct {
	cfg SMTPConfig
	log *zap.Logger
}

// NewMailer creates a Mailer for the given SMTP endpoint.
func NewMailer(cfg SMTPConfig, logger *zap.Logger) *Mailer {
	return &Mailer{cfg: cfg, log: logger}
}

// Send performs a single SMTP submission of the message.
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("creating SMTP client: %w", err)
	}

	mm := mail.NewMsg()
	if err := mm.From(m.cfg.From); err != nil {
		return fmt.Errorf("invalid sender address %q: %w", m.cfg.From, err)
	}
	if err := mm.To(m.cfg.To); err != nil {
		return fmt.Errorf("invalid recipient address %q: %w", m.cfg.To, err)
	}
	mm.Subject(msg.Subject)
	mm.SetBodyString(mail.TypeTextPlain, msg.Body)

	if err := client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("sending reminder email: %w", err)
	}

	m.log.Info("reminder email sent", zap.String("to", m.cfg.To))
	return nil
}
