package cache

import (
	"context"
	"errors"

	"github.com/miraarastudios/miraara-backend/internal/domain"
)

// OrderCache maps a provider order id to the cart snapshot it was
// created from. Entries expire by TTL only; a download does not evict,
// so repeat downloads of a paid order keep working until expiry.
type OrderCache interface {
	Put(ctx context.Context, order *domain.Order) error
	Get(ctx context.Context, orderID string) (*domain.Order, error)
}

var ErrCacheMiss = errors.New("cache miss")
