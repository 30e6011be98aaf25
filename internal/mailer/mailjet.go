package mailer

import (
	"context"
	"fmt"

	mailjet "github.com/mailjet/mailjet-apiv3-go/v4"
)

type MailjetSender struct {
	client    *mailjet.Client
	fromEmail string
	fromName  string
}

func NewMailjetSender(apiKey, secretKey, fromEmail, fromName string) *MailjetSender {
	return &MailjetSender{
		client:    mailjet.NewMailjetClient(apiKey, secretKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *MailjetSender) Send(_ context.Context, msg Message) error {
	messages := mailjet.MessagesV31{
		Info: []mailjet.InfoMessagesV31{
			{
				From: &mailjet.RecipientV31{
					Email: s.fromEmail,
					Name:  s.fromName,
				},
				To: &mailjet.RecipientsV31{
					mailjet.RecipientV31{
						Email: msg.To,
						Name:  msg.ToName,
					},
				},
				Subject:  msg.Subject,
				HTMLPart: msg.HTMLBody,
				TextPart: msg.TextBody,
			},
		},
	}

	if _, err := s.client.SendMailV31(&messages); err != nil {
		return fmt.Errorf("mailjet send failed: %w", err)
	}

	return nil
}
