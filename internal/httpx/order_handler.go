package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/apnacafe/backend/internal/events"
	"github.com/apnacafe/backend/internal/mailer"
	"github.com/apnacafe/backend/internal/metrics"
	"github.com/apnacafe/backend/internal/orders"
	"github.com/apnacafe/backend/internal/redisx"
	"go.uber.org/zap"
)

type createOrderReq struct {
	Customer orders.Customer `json:"customer"`
	Cart     []orders.Line   `json:"cart"`
}

type createOrderResp struct {
	OrderID string  `json:"orderId"`
	Amount  float64 `json:"amount"`
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	orderID, err := h.Orders.Create(ctx, req.Customer, req.Cart)
	if err != nil {
		h.Log.Error("create order failed", zap.Error(err))
		metrics.OrdersTotal.WithLabelValues("failed").Inc()
		h.writeError(w, err, "Internal server error")
		return
	}

	id := strconv.FormatInt(orderID, 10)
	amount := orders.Total(req.Cart)
	metrics.OrdersTotal.WithLabelValues("created").Inc()
	h.Log.Info("order created",
		zap.String("order_id", id), zap.Float64("amount", amount), zap.Int("lines", len(req.Cart)))

	h.publish(events.EventOrderCreated, id, events.OrderCreatedPayload{
		OrderID:       id,
		CustomerEmail: req.Customer.Email,
		Amount:        amount,
		LineCount:     len(req.Cart),
	})

	writeJSON(w, http.StatusCreated, createOrderResp{OrderID: id, Amount: amount})
}

type initiatePaymentReq struct {
	OrderID       string  `json:"orderId"`
	Amount        float64 `json:"amount"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
}

type initiatePaymentResp struct {
	PaymentSessionID string `json:"paymentSessionId"`
}

func (h *Handler) initiatePayment(w http.ResponseWriter, r *http.Request) {
	var req initiatePaymentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 12*time.Second)
	defer cancel()

	// reuse a still-live hosted session for the same order if we have one
	sessionKey := fmt.Sprintf(redisx.KeyPaymentSession, req.OrderID)
	if h.Redis != nil {
		if s, err := h.Redis.Get(ctx, sessionKey).Result(); err == nil && s != "" {
			writeJSON(w, http.StatusOK, initiatePaymentResp{PaymentSessionID: s})
			return
		}
	}

	session, err := h.Payments.CreateSession(ctx, req.OrderID, req.Amount, req.CustomerEmail, req.CustomerPhone)
	if err != nil {
		h.Log.Error("initiate payment failed",
			zap.String("order_id", req.OrderID), zap.Error(err))
		metrics.PaymentSessionsTotal.WithLabelValues("failed").Inc()
		h.writeError(w, err, "Failed to initiate payment")
		return
	}

	if h.Redis != nil {
		_ = h.Redis.Set(ctx, sessionKey, session, redisx.TTLPaymentSession).Err()
	}
	metrics.PaymentSessionsTotal.WithLabelValues("created").Inc()

	h.publish(events.EventPaymentInitiated, req.OrderID, events.PaymentInitiatedPayload{
		OrderID:          req.OrderID,
		Amount:           req.Amount,
		PaymentSessionID: session,
	})

	writeJSON(w, http.StatusOK, initiatePaymentResp{PaymentSessionID: session})
}

type paymentSuccessReq struct {
	OrderID       string  `json:"orderId"`
	Amount        float64 `json:"amount"`
	CustomerEmail string  `json:"customerEmail"`
}

func (h *Handler) paymentSuccess(w http.ResponseWriter, r *http.Request) {
	var req paymentSuccessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	// The confirmation is taken on the caller's word; there is no check
	// against the gateway's own record of the transaction.
	h.Log.Warn("accepting unverified payment confirmation",
		zap.String("order_id", req.OrderID), zap.Float64("amount", req.Amount))

	sendMail := true
	if h.Redis != nil {
		dedupKey := fmt.Sprintf(redisx.KeyPaymentSuccessDedup, req.OrderID)
		if seen, _ := redisx.Exists(r.Context(), h.Redis, dedupKey); seen {
			sendMail = false
		} else {
			_ = h.Redis.Set(r.Context(), dedupKey, "1", redisx.TTLDedup).Err()
		}
	}
	if sendMail {
		h.Mail.Enqueue(mailer.OrderConfirmation(req.CustomerEmail, req.OrderID, req.Amount))
	}

	h.publish(events.EventPaymentConfirmed, req.OrderID, events.PaymentConfirmedPayload{
		OrderID: req.OrderID,
		Amount:  req.Amount,
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": "Payment successful and email sent"})
}
