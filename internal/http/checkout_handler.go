package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/miraarastudios/miraara-backend/internal/domain"
)

// CheckoutService is the checkout surface the handlers need.
type CheckoutService interface {
	CreateOrder(ctx context.Context, items []domain.CartItem) (*domain.Order, error)
	VerifyPayment(ctx context.Context, orderID, paymentID, signature string) error
	DownloadBundle(ctx context.Context, orderID string) (path string, cleanup func(), err error)
}

type CheckoutHandler struct {
	service CheckoutService
	timeout time.Duration
}

func NewCheckoutHandler(service CheckoutService, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		timeout: timeout,
	}
}

type CartItemDTO struct {
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CreateOrderRequestDTO struct {
	CartItems []CartItemDTO `json:"cartItems"`
}

type CreateOrderResponseDTO struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type VerifyPaymentRequestDTO struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

type VerifyPaymentResponseDTO struct {
	OK bool `json:"ok"`
}

func (h *CheckoutHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	items := make([]domain.CartItem, len(req.CartItems))
	for i, item := range req.CartItems {
		items[i] = domain.CartItem{
			Image:    item.Image,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}

	order, err := h.service.CreateOrder(ctx, items)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, CreateOrderResponseDTO{
		OrderID:  order.OrderID,
		Amount:   order.Amount,
		Currency: order.Currency,
	})
}

func (h *CheckoutHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req VerifyPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := h.service.VerifyPayment(ctx, req.OrderID, req.PaymentID, req.Signature); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, VerifyPaymentResponseDTO{OK: true})
}

// DownloadZip streams the order's asset bundle. No extra timeout here:
// the archive build can legitimately outlast the API timeout, so only
// the router-level deadline applies.
func (h *CheckoutHandler) DownloadZip(w http.ResponseWriter, r *http.Request) {
	orderID := r.URL.Query().Get("order_id")
	if orderID == "" {
		respondError(w, http.StatusBadRequest, "invalid_input", "Order ID required")
		return
	}

	path, cleanup, err := h.service.DownloadBundle(r.Context(), orderID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	defer cleanup()

	name := filepath.Base(path)
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	http.ServeFile(w, r, path)
}
