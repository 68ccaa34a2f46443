package handler

import (
	"net/http"

	"storefront-admin/internal/model"
	"storefront-admin/internal/service"

	"github.com/rs/zerolog"
)

// FAQHandler serves the public FAQ list and FAQ administration.
type FAQHandler struct {
	service service.FAQService
	logger  zerolog.Logger
}

// NewFAQHandler creates a new FAQ handler.
func NewFAQHandler(service service.FAQService, logger zerolog.Logger) *FAQHandler {
	return &FAQHandler{
		service: service,
		logger:  logger.With().Str("handler", "faq").Logger(),
	}
}

// ListActive handles GET /api/faqs.
func (h *FAQHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.service.ListActive(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, faqs)
}

// ListAll handles GET /api/admin/faqs.
func (h *FAQHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.service.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, faqs)
}

func (h *FAQHandler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, model.ErrCodeFAQNotFound, model.ErrFAQNotFound.Message, h.logger)
}

// Get handles GET /api/admin/faqs/{id}.
func (h *FAQHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	f, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, f)
}

// Create handles POST /api/admin/faqs.
func (h *FAQHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.FAQInput
	if err := decodeJSONBody(w, r, &in); err != nil {
		writeDecodeError(w, r, err, h.logger)
		return
	}

	f, err := h.service.Create(r.Context(), &in)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, f)
}

// Update handles PUT /api/admin/faqs/{id}.
func (h *FAQHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	var in model.FAQInput
	if err := decodeJSONBody(w, r, &in); err != nil {
		writeDecodeError(w, r, err, h.logger)
		return
	}

	f, err := h.service.Update(r.Context(), id, &in)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, f)
}

// SetActive handles PATCH /api/admin/faqs/{id}/active.
func (h *FAQHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	var req model.SetActiveRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeDecodeError(w, r, err, h.logger)
		return
	}

	f, err := h.service.SetActive(r.Context(), id, *req.Active)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, f)
}

// Delete handles DELETE /api/admin/faqs/{id}.
func (h *FAQHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Reorder handles PUT /api/admin/faqs/order.
func (h *FAQHandler) Reorder(w http.ResponseWriter, r *http.Request) {
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
