package payment

import (
	"context"
	"errors"
)

// ErrProvider marks any failure coming back from the payment provider.
var ErrProvider = errors.New("payment provider error")

// Provider creates provider-side order records. Amount is in currency
// subunits; the returned string is the provider-assigned order id.
type Provider interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error)
}
