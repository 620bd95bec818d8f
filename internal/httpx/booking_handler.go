package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/apnacafe/backend/internal/booking"
	"github.com/apnacafe/backend/internal/events"
	"github.com/apnacafe/backend/internal/mailer"
	"go.uber.org/zap"
)

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var req booking.Reservation
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := h.Booking.CreateReservation(ctx, req)
	if err != nil {
		h.Log.Error("create reservation failed", zap.Error(err))
		h.writeError(w, err, "Internal server error")
		return
	}

	h.Mail.Enqueue(mailer.ReservationConfirmation(res.Email, res.ID, res.Date, res.Time, res.Guests))
	h.publish(events.EventReservationCreated, strconv.FormatInt(res.ID, 10), events.ReservationCreatedPayload{
		ReservationID: res.ID,
		Date:          res.Date,
		Time:          res.Time,
		Guests:        res.Guests,
	})

	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	var req booking.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	m, err := h.Booking.CreateContactMessage(ctx, req)
	if err != nil {
		h.Log.Error("save contact message failed", zap.Error(err))
		h.writeError(w, err, "Internal server error")
		return
	}

	h.Mail.Enqueue(mailer.ContactAck(m.Email, m.Name))

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Contact form submitted successfully",
		"data":    m,
	})
}

// testEmail fires a hardcoded order-confirmation mail. Diagnostic only.
func (h *Handler) testEmail(w http.ResponseWriter, r *http.Request) {
	h.Log.Info("sending test email")
	h.Mail.Enqueue(mailer.OrderConfirmation("orders-test@apnacafe.in", "12345", 150.0))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Test email sent"))
}
