package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tbruland/powalert/config"
	"github.com/tbruland/powalert/event"
	"github.com/tbruland/powalert/gcal"
	"github.com/tbruland/powalert/notify"
	"github.com/tbruland/powalert/weekend"
)

//go:embed .version
var embeddedVersion string

func run(ctx context.Context, logger *zap.Logger) error {
	// Configuration first: a missing secret must fail before any network call.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	logger.Info("starting powalert",
		zap.String("version", strings.TrimSpace(embeddedVersion)))

	service, err := gcal.NewService(ctx, cfg.GoogleServiceAccount, logger)
	if err != nil {
		return fmt.Errorf("gcal.NewService: %w", err)
	}

	now := time.Now()
	window := weekend.Upcoming(now)

	events, err := gcal.FetchAll(ctx, service, cfg.CalendarIDs(), now, window.End)
	if err != nil {
		return fmt.Errorf("gcal.FetchAll: %w", err)
	}

	events = event.MatchKeywords(events, cfg.EventKeywords)
	qualifying := weekend.Filter(events, now)
	if len(qualifying) == 0 {
		logger.Info("no qualifying events, nothing to do",
			zap.Time("window_start", window.Start),
			zap.Time("window_end", window.End))
		return nil
	}

	printQualifying(qualifying, window)

	mailer := notify.NewMailer(notify.SMTPConfig{
		Host:     cfg.SMTPServer,
		Port:     cfg.SMTPPort,
		Username: cfg.EmailUser,
		Password: cfg.EmailPassword,
		From:     cfg.EmailUser,
		To:       cfg.EmailRecipient,
	}, logger)

	if err := mailer.Send(ctx, notify.Compose(qualifying)); err != nil {
		return fmt.Errorf("mailer.Send: %w", err)
	}

	return nil
}

// printQualifying lists the qualifying events on stdout for the scheduler log.
func printQualifying(events []event.Event, w weekend.Window) {
	headerColor := color.New(color.FgCyan, color.Bold).SprintFunc()
	summaryColor := color.New(color.FgYellow, color.Bold).SprintFunc()
	subtle := color.New(color.FgHiBlack).SprintFunc()

	fmt.Printf("Qualifying events for the weekend of %s:\n", headerColor(w.Start.Format("2006-01-02")))
	for _, e := range events {
		fmt.Printf(" - %s %s %s\n",
			summaryColor(e.Summary),
			e.When(),
			subtle("["+e.Calendar+"]"),
		)
	}
}

func newLogger() *zap.Logger {
	zapConfig := zap.NewProductionConfig()
	zapConfig.Encoding = "console"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zap.Must(zapConfig.Build())
}

func main() {
	logger := newLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		logger.Error("run failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}
