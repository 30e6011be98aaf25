package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires the public HTTP surface. Paths are fixed: the
// storefront frontend depends on them.
func NewRouter(intake *IntakeHandler, checkout *CheckoutHandler, requestTimeout time.Duration) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		respondText(w, http.StatusOK, "Miraara Backend is live")
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/contact", intake.Contact)
		r.Post("/subscribe", intake.Subscribe)
		r.Post("/create-order", checkout.CreateOrder)
		r.Post("/verify-payment", checkout.VerifyPayment)
		r.Get("/download-zip", checkout.DownloadZip)
	})

	return r
}
