package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrMissingVar indicates a required environment variable is not set.
var ErrMissingVar = errors.New("missing required environment variable")

// requiredVars are the environment variables that must be present before any
// network call is made.
var requiredVars = []string{
	"GOOGLE_SERVICE_ACCOUNT",
	"SMTP_SERVER",
	"SMTP_PORT",
	"EMAIL_USER",
	"EMAIL_PASSWORD",
	"EMAIL_RECIPIENT",
	"PRIMARY_CALENDAR_ID",
	"SECONDARY_CALENDAR_ID",
}

// Config holds the application configuration, read from the environment.
type Config struct {
	GoogleServiceAccount []byte
	SMTPServer           string
	SMTPPort             int
	EmailUser            string
	EmailPassword        string
	EmailRecipient       string
	PrimaryCalendarID    string
	SecondaryCalendarID  string
	// EventKeywords is optional. When non-empty, only events whose summary
	// contains one of the keywords are considered.
	EventKeywords []string
}

// Load reads configuration from environment variables. A .env file in the
// working directory is honored for local runs; the scheduler injects real
// environment variables in CI.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var missing []string
	for _, name := range requiredVars {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingVar, strings.Join(missing, ", "))
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port <= 0 {
		return nil, fmt.Errorf("invalid SMTP_PORT %q: expected a positive integer", os.Getenv("SMTP_PORT"))
	}

	return &Config{
		GoogleServiceAccount: []byte(os.Getenv("GOOGLE_SERVICE_ACCOUNT")),
		SMTPServer:           os.Getenv("SMTP_SERVER"),
		SMTPPort:             port,
		EmailUser:            os.Getenv("EMAIL_USER"),
		EmailPassword:        os.Getenv("EMAIL_PASSWORD"),
		EmailRecipient:       os.Getenv("EMAIL_RECIPIENT"),
		PrimaryCalendarID:    os.Getenv("PRIMARY_CALENDAR_ID"),
		SecondaryCalendarID:  os.Getenv("SECONDARY_CALENDAR_ID"),
		EventKeywords:        splitKeywords(os.Getenv("EVENT_KEYWORDS")),
	}, nil
}

// CalendarIDs returns the calendar IDs to monitor, primary first.
func (c *Config) CalendarIDs() []string {
	return []string{c.PrimaryCalendarID, c.SecondaryCalendarID}
}

// splitKeywords parses a comma-separated keyword list, dropping empty entries.
func splitKeywords(raw string) []string {
	if raw == "" {
		return nil
	}
	var keywords []string
	for _, k := range strings.Split(raw, ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}
