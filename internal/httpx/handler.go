package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/apnacafe/backend/internal/booking"
	"github.com/apnacafe/backend/internal/cart"
	"github.com/apnacafe/backend/internal/catalog"
	"github.com/apnacafe/backend/internal/events"
	"github.com/apnacafe/backend/internal/mailer"
	"github.com/apnacafe/backend/internal/orders"
	"github.com/apnacafe/backend/internal/payment"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Handler carries every dependency the API surface needs. Redis and Events
// are optional side channels and may be nil.
type Handler struct {
	Catalog  *catalog.Catalog
	Cart     *cart.Store
	Orders   *orders.Repo
	Booking  *booking.Repo
	Payments *payment.Client
	Mail     *mailer.Outbox
	Events   *events.Producer
	Redis    *redis.Client
	Log      *zap.Logger
}

func (h *Handler) Register(r *chi.Mux) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/items", h.listItems)
		r.Post("/cart", h.addToCart)
		r.Get("/cart", h.getCart)
		r.Delete("/cart/{itemID}", h.removeFromCart)
		r.Post("/create-order", h.createOrder)
		r.Post("/initiate-payment", h.initiatePayment)
		r.Post("/payment-success", h.paymentSuccess)
		r.Post("/reservations", h.createReservation)
		r.Post("/contact", h.submitContact)
		r.Get("/test-email", h.testEmail)
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy to a status code in one place. Clients
// only ever see the fixed messages; detail stays in the logs.
func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	code, msg := http.StatusInternalServerError, fallback
	switch {
	case errors.Is(err, cart.ErrItemNotFound):
		code, msg = http.StatusNotFound, "Item not found"
	case errors.Is(err, payment.ErrNoSession):
		msg = "Payment session ID not returned"
	}
	writeJSON(w, code, map[string]string{"error": msg})
}

func (h *Handler) publish(eventType, correlationID string, payload any) {
	if h.Events == nil {
		return
	}
	h.Events.Publish(eventType, correlationID, payload)
}
