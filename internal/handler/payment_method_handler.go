package handler

import (
	"net/http"
	"strings"

	"storefront-admin/internal/model"
	"storefront-admin/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// PaymentMethodHandler serves the public payment method list and its administration.
type PaymentMethodHandler struct {
	service service.PaymentMethodService
	logger  zerolog.Logger
}

// NewPaymentMethodHandler creates a new payment method handler.
func NewPaymentMethodHandler(service service.PaymentMethodService, logger zerolog.Logger) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		service: service,
		logger:  logger.With().Str("handler", "payment_method").Logger(),
	}
}

// ListActive handles GET /api/payment-methods.
func (h *PaymentMethodHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	methods, err := h.service.ListActive(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, methods)
}

// ListAll handles GET /api/admin/payment-methods.
func (h *PaymentMethodHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	methods, err := h.service.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, methods)
}

// Get handles GET /api/admin/payment-methods/{id}.
func (h *PaymentMethodHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.service.Get(r.Context(), idParam(r))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, m)
}

// Create handles POST /api/admin/payment-methods.
func (h *PaymentMethodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.PaymentMethodInput
	if err := decodeJSONBody(w, r, &in); err != nil {
		writeDecodeError(w, r, err, h.logger)
		return
	}

	m, err := h.service.Create(r.Context(), &in)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, m)
}

// Update handles PUT /api/admin/payment-methods/{id}.
func (h *PaymentMethodHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in model.PaymentMethodInput
	if err := decodeJSONBody(w, r, &in); err != nil {
		writeDecodeError(w, r, err, h.logger)
		return
	}

	m, err := h.service.Update(r.Context(), idParam(r), &in)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, m)
}

// SetActive handles PATCH /api/admin/payment-methods/{id}/active.
func (h *PaymentMethodHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	var req model.SetActiveRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeDecodeError(w, r, err, h.logger)
		return
	}

	m, err := h.service.SetActive(r.Context(), idParam(r), *req.Active)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, m)
}

// Delete handles DELETE /api/admin/payment-methods/{id}.
func (h *PaymentMethodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), idParam(r)); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Reorder handles PUT /api/admin/payment-methods/order.
func (h *PaymentMethodHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req model.ReorderRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeDecodeError(w, r, err, h.logger)
		return
	}

	if err := h.service.Reorder(r.Context(), req.IDs); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func idParam(r *http.Request) string {
	return strings.TrimSpace(chi.URLParam(r, "id"))
}
