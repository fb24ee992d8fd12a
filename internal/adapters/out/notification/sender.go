package notification

import (
	"context"
	"log/slog"
)

// Message is a rendered email.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers one message. Wrap an error with backoff.Permanent to stop retries.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LoggingSender writes messages to the log instead of a mail transport.
type LoggingSender struct {
	logger *slog.Logger
}

func NewLoggingSender(logger *slog.Logger) *LoggingSender {
	return &LoggingSender{logger: logger.With("component", "email_sender")}
}

func (s *LoggingSender) Send(ctx context.Context, msg Message) error {
	s.logger.InfoContext(ctx, "Email sent",
		"to", msg.To,
		"subject", msg.Subject,
		"text_bytes", len(msg.Text),
		"html_bytes", len(msg.HTML),
	)
	return nil
}
