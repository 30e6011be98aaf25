package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/miraarastudios/miraara-backend/internal/cache"
	"github.com/miraarastudios/miraara-backend/internal/domain"
	"github.com/miraarastudios/miraara-backend/internal/payment"
	"github.com/miraarastudios/miraara-backend/internal/repository"
)

const orderCurrency = "INR"

// Bundler materializes a ZIP of the given asset URLs on scratch
// storage and returns its path.
type Bundler interface {
	Build(ctx context.Context, urls []string) (string, error)
}

// CheckoutService runs the order lifecycle: create a provider order
// from a cart, acknowledge payment, and assemble the asset bundle.
type CheckoutService struct {
	provider  payment.Provider
	cache     cache.OrderCache
	orders    repository.OrderRepository
	bundler   Bundler
	keySecret string
	log       zerolog.Logger
}

func NewCheckoutService(
	provider payment.Provider,
	orderCache cache.OrderCache,
	orders repository.OrderRepository,
	bundler Bundler,
	keySecret string,
	log zerolog.Logger,
) *CheckoutService {
	return &CheckoutService{
		provider:  provider,
		cache:     orderCache,
		orders:    orders,
		bundler:   bundler,
		keySecret: keySecret,
		log:       log,
	}
}

// CreateOrder computes the cart total, creates a provider order for it
// and caches the cart snapshot under the returned order id. The cache
// write is the only path that makes an order downloadable later.
func (s *CheckoutService) CreateOrder(ctx context.Context, items []domain.CartItem) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	for _, item := range items {
		if item.Quantity <= 0 || item.Price < 0 {
			return nil, ErrInvalidCartItem
		}
	}

	amount := amountInSubunits(items)
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	receipt := fmt.Sprintf("receipt_%d", time.Now().UnixMilli())
	orderID, err := s.provider.CreateOrder(ctx, amount, orderCurrency, receipt)
	if err != nil {
		return nil, fmt.Errorf("create provider order: %w", err)
	}

	order := &domain.Order{
		OrderID:   orderID,
		Amount:    amount,
		Currency:  orderCurrency,
		Items:     items,
		CreatedAt: time.Now(),
	}

	if err := s.cache.Put(ctx, order); err != nil {
		return nil, fmt.Errorf("cache order: %w", err)
	}

	// Mirror to the orders collection best-effort; the checkout flow
	// works off the cache alone.
	if err := s.orders.SaveOrder(ctx, order); err != nil {
		s.log.Error().Err(err).Str("order_id", orderID).Msg("failed to persist order record")
	}

	return order, nil
}

// VerifyPayment checks the provider callback signature. The paid flag
// on the persisted record is advisory; downloads are not gated on it.
func (s *CheckoutService) VerifyPayment(ctx context.Context, orderID, paymentID, signature string) error {
	if orderID == "" || paymentID == "" || signature == "" {
		return ErrMissingFields
	}

	if !payment.VerifySignature(orderID, paymentID, signature, s.keySecret) {
		return ErrSignatureMismatch
	}

	if err := s.orders.MarkOrderPaid(ctx, orderID, paymentID); err != nil {
		s.log.Warn().Err(err).Str("order_id", orderID).Msg("failed to mark order paid")
	}

	return nil
}

// DownloadBundle assembles the ZIP for a cached order and returns the
// scratch-file path plus a cleanup func that removes it. The cache
// entry stays put, so repeat downloads succeed until the TTL expires.
func (s *CheckoutService) DownloadBundle(ctx context.Context, orderID string) (string, func(), error) {
	if orderID == "" {
		return "", nil, ErrMissingFields
	}

	order, err := s.cache.Get(ctx, orderID)
	if errors.Is(err, cache.ErrCacheMiss) {
		return "", nil, ErrOrderNotFound
	}
	if err != nil {
		return "", nil, fmt.Errorf("cache lookup: %w", err)
	}
	if len(order.Items) == 0 {
		return "", nil, ErrOrderNotFound
	}

	urls := make([]string, len(order.Items))
	for i, item := range order.Items {
		urls[i] = item.Image
	}

	path, err := s.bundler.Build(ctx, urls)
	if err != nil {
		return "", nil, err
	}

	cleanup := func() {
		if err := os.Remove(path); err != nil {
			s.log.Warn().Err(err).Str("path", path).Msg("failed to remove scratch archive")
		}
	}

	return path, cleanup, nil
}

// amountInSubunits converts the cart total to currency subunits
// (paise), rounding half away from zero.
func amountInSubunits(items []domain.CartItem) int64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return int64(math.Round(total * 100))
}
