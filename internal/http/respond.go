package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/miraarastudios/miraara-backend/internal/bundle"
	"github.com/miraarastudios/miraara-backend/internal/payment"
	"github.com/miraarastudios/miraara-backend/internal/repository"
	"github.com/miraarastudios/miraara-backend/internal/service"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(message)); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleServiceError maps service sentinels to HTTP status codes.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		respondError(w, http.StatusBadRequest, "invalid_input", "Missing required fields")
	case errors.Is(err, service.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "invalid_input", "Cart empty")
	case errors.Is(err, service.ErrInvalidCartItem), errors.Is(err, service.ErrInvalidAmount):
		respondError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, service.ErrAlreadySubscribed):
		respondError(w, http.StatusBadRequest, "already_subscribed", "Already subscribed")
	case errors.Is(err, service.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, "order_not_found", "No images found")
	case errors.Is(err, service.ErrSignatureMismatch):
		respondError(w, http.StatusBadRequest, "signature_mismatch", "Invalid payment signature")
	case errors.Is(err, payment.ErrProvider):
		respondError(w, http.StatusInternalServerError, "payment_provider_error", "Failed to create order")
	case errors.Is(err, bundle.ErrFetch):
		respondError(w, http.StatusInternalServerError, "asset_fetch_error", "Error generating download")
	case errors.Is(err, repository.ErrStore):
		respondError(w, http.StatusInternalServerError, "store_error", "Internal server error")
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}
