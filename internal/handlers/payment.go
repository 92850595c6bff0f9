package handlers

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tti-backend/internal/services"
)

type PaymentHandler struct {
	checkoutService *services.CheckoutService
}

func NewPaymentHandler(checkoutService *services.CheckoutService) *PaymentHandler {
	return &PaymentHandler{checkoutService: checkoutService}
}

// Status is polled by the payment-success page; it also settles the
// enrollment if Stripe reports the session paid before the webhook lands.
func (h *PaymentHandler) Status(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")
	if sessionID == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Session ID is required", r))
		return
	}

	status, err := h.checkoutService.GetStatus(r.Context(), sessionID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, status)
}

// StripeWebhook receives signed events from Stripe. The body must be read
// raw; signature verification covers the exact bytes.
func (h *PaymentHandler) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Unable to read payload", r))
		return
	}

	err = h.checkoutService.HandleWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"received": "true"})
}
