package events

import (
	"encoding/json"
	"time"
)

const (
	EventOrderCreated       = "OrderCreated"
	EventPaymentInitiated   = "PaymentInitiated"
	EventPaymentConfirmed   = "PaymentConfirmed"
	EventReservationCreated = "ReservationCreated"
)

// Topic carries every café lifecycle event; messages are keyed by order id
// so one order's events stay ordered.
const Topic = "cafe.orders"

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

type OrderCreatedPayload struct {
	OrderID       string  `json:"order_id"`
	CustomerEmail string  `json:"customer_email"`
	Amount        float64 `json:"amount"`
	LineCount     int     `json:"line_count"`
}

type PaymentInitiatedPayload struct {
	OrderID          string  `json:"order_id"`
	Amount           float64 `json:"amount"`
	PaymentSessionID string  `json:"payment_session_id"`
}

type PaymentConfirmedPayload struct {
	OrderID string  `json:"order_id"`
	Amount  float64 `json:"amount"`
}

type ReservationCreatedPayload struct {
	ReservationID int64  `json:"reservation_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Guests        int    `json:"guests"`
}

func MustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
