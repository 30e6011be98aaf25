package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/miraarastudios/miraara-backend/internal/domain"
	"github.com/miraarastudios/miraara-backend/internal/mailer"
	"github.com/miraarastudios/miraara-backend/internal/repository"
	"github.com/miraarastudios/miraara-backend/internal/templates"
)

// Notifier dispatches a rendered message without blocking the caller.
type Notifier interface {
	Dispatch(msg mailer.Message)
}

// IntakeService handles contact-form and subscription submissions:
// persist the record, then notify admin and requester. Notification
// failures never fail the request.
type IntakeService struct {
	contacts    repository.ContactRepository
	subscribers repository.SubscriberRepository
	engine      *templates.Engine
	notifier    Notifier
	adminEmail  string
	log         zerolog.Logger
}

func NewIntakeService(
	contacts repository.ContactRepository,
	subscribers repository.SubscriberRepository,
	engine *templates.Engine,
	notifier Notifier,
	adminEmail string,
	log zerolog.Logger,
) *IntakeService {
	return &IntakeService{
		contacts:    contacts,
		subscribers: subscribers,
		engine:      engine,
		notifier:    notifier,
		adminEmail:  adminEmail,
		log:         log,
	}
}

func (s *IntakeService) SubmitContact(ctx context.Context, sub *domain.ContactSubmission) error {
	if sub.Name == "" || sub.Email == "" || sub.Subject == "" || sub.Message == "" {
		return ErrMissingFields
	}

	sub.CreatedAt = time.Now()
	if err := s.contacts.SaveContact(ctx, sub); err != nil {
		return fmt.Errorf("save contact: %w", err)
	}

	data := templates.ContactData{
		Name:    sub.Name,
		Email:   sub.Email,
		Phone:   sub.Phone,
		Subject: sub.Subject,
		Message: sub.Message,
		SavedAt: sub.CreatedAt,
	}
	s.dispatch(templates.ContactAdmin, data, s.adminEmail, "Miraara Team",
		fmt.Sprintf("New Contact: %s", sub.Subject))
	s.dispatch(templates.ContactAutoReply, data, sub.Email, sub.Name,
		"Thanks for contacting Miraara")

	return nil
}

func (s *IntakeService) Subscribe(ctx context.Context, email string) error {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return ErrMissingFields
	}

	exists, err := s.subscribers.SubscriberExists(ctx, normalized)
	if err != nil {
		return fmt.Errorf("check subscriber: %w", err)
	}
	if exists {
		return ErrAlreadySubscribed
	}

	subscriber := &domain.Subscriber{Email: normalized, CreatedAt: time.Now()}
	if err := s.subscribers.SaveSubscriber(ctx, subscriber); err != nil {
		return fmt.Errorf("save subscriber: %w", err)
	}

	data := templates.SubscribeData{
		Email:   normalized,
		SavedAt: subscriber.CreatedAt,
	}
	s.dispatch(templates.SubscribeAdmin, data, s.adminEmail, "Miraara Team",
		fmt.Sprintf("New Subscriber: %s", normalized))
	s.dispatch(templates.SubscribeAutoReply, data, normalized, "",
		"Welcome to Miraara")

	return nil
}

func (s *IntakeService) dispatch(template string, data interface{}, to, toName, subject string) {
	html, text, err := s.engine.Render(template, data)
	if err != nil {
		s.log.Error().Err(err).Str("template", template).Msg("failed to render notification")
		return
	}

	s.notifier.Dispatch(mailer.Message{
		To:       to,
		ToName:   toName,
		Subject:  subject,
		HTMLBody: html,
		TextBody: text,
	})
}
