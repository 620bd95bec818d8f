package redisx

import "time"

const (
	// Hosted session cache: pay:session:{order_id} -> payment_session_id.
	// Repeated initiate-payment for the same order reuses the session.
	KeyPaymentSession = "pay:session:%s"

	// Dedup for confirmation emails: dedup:payment-success:{order_id}
	KeyPaymentSuccessDedup = "dedup:payment-success:%s"
)

var (
	TTLPaymentSession = 30 * time.Minute
	TTLDedup          = 48 * time.Hour
)
