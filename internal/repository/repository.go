package repository

import (
	"context"
	"errors"

	"github.com/miraarastudios/miraara-backend/internal/domain"
)

var (
	// ErrStore marks any document-store failure so transport can map it
	// to a generic 500 without inspecting driver errors.
	ErrStore = errors.New("document store failure")

	ErrOrderRecordNotFound = errors.New("order record not found")
)

type ContactRepository interface {
	SaveContact(ctx context.Context, sub *domain.ContactSubmission) error
}

type SubscriberRepository interface {
	SaveSubscriber(ctx context.Context, s *domain.Subscriber) error
	SubscriberExists(ctx context.Context, email string) (bool, error)
}

// OrderRepository persists orders best-effort; the checkout flow works
// off the session cache and only mirrors state here.
type OrderRepository interface {
	SaveOrder(ctx context.Context, order *domain.Order) error
	MarkOrderPaid(ctx context.Context, orderID, paymentID string) error
}

// Store is the full document-store surface, one implementation backing
// all three collections.
type Store interface {
	ContactRepository
	SubscriberRepository
	OrderRepository

	CreateIndexes(ctx context.Context) error
}
