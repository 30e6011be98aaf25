package mailer

import "context"

// Message is one rendered notification ready for delivery.
type Message struct {
	To       string
	ToName   string
	Subject  string
	HTMLBody string
	TextBody string
}

// Sender delivers a single message via the email provider.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
