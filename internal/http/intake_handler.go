package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/miraarastudios/miraara-backend/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// IntakeService is the contact/subscription surface the handlers need.
type IntakeService interface {
	SubmitContact(ctx context.Context, sub *domain.ContactSubmission) error
	Subscribe(ctx context.Context, email string) error
}

type IntakeHandler struct {
	service IntakeService
	timeout time.Duration
}

func NewIntakeHandler(service IntakeService, timeout time.Duration) *IntakeHandler {
	return &IntakeHandler{
		service: service,
		timeout: timeout,
	}
}

type ContactRequestDTO struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type SubscribeRequestDTO struct {
	Email string `json:"email" validate:"required"`
}

func (h *IntakeHandler) Contact(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req ContactRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_input", "Missing required fields")
		return
	}

	err := h.service.SubmitContact(ctx, &domain.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondText(w, http.StatusOK, "Message sent successfully")
}

func (h *IntakeHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req SubscribeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_input", "Email required")
		return
	}

	if err := h.service.Subscribe(ctx, req.Email); err != nil {
		handleServiceError(w, err)
		return
	}

	respondText(w, http.StatusOK, "Subscribed successfully")
}
