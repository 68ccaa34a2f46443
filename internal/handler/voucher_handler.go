package handler

import (
	"net/http"

	"storefront-admin/internal/model"
	"storefront-admin/internal/service"

	"github.com/rs/zerolog"
)

// VoucherHandler handles voucher validation and voucher administration requests.
type VoucherHandler struct {
	service service.VoucherService
	logger  zerolog.Logger
}

// NewVoucherHandler creates a new voucher handler.
func NewVoucherHandler(service service.VoucherService, logger zerolog.Logger) *VoucherHandler {
	return &VoucherHandler{
		service: service,
		logger:  logger.With().Str("handler", "voucher").Logger(),
	}
}

// Validate handles POST /api/vouchers/validate. Rejected vouchers are reported
// with 200 and valid=false; only a malformed body yields 400.
func (h *VoucherHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req model.ValidateVoucherRequest
	if err := decodeLenientJSONBody(w, r, &req); err != nil {
		writeDecodeError(w, r, err, h.logger)
		return
	}

	if req.CartTotal.IsNegative() {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeValidation, "cart total cannot be negative", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Validate(r.Context(), &req))
}

// List handles GET /api/admin/vouchers.
func (h *VoucherHandler) List(w http.ResponseWriter, r *http.Request) {
	vouchers, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, vouchers)
}

// Get handles GET /api/admin/vouchers/{id}.
func (h *VoucherHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(r)
	if !ok {
		writeError(w, r, http.StatusNotFound, model.ErrCodeVoucherNotFound, model.ErrVoucherNotFound.Message, h.logger)
		return
	}

	v, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, v)
}

// Create handles POST /api/admin/vouchers.
func (h *VoucherHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.VoucherInput
	if err := decodeJSONBody(w, r, &in); err != nil {
		writeDecodeError(w, r, err, h.logger)
		return
	}

	v, err := h.service.Create(r.Context(), &in)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, v)
}

// Update handles PUT /api/admin/vouchers/{id}.
func (h *VoucherHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(r)
	if !ok {
		writeError(w, r, http.StatusNotFound, model.ErrCodeVoucherNotFound, model.ErrVoucherNotFound.Message, h.logger)
		return
	}

	var in model.VoucherInput
	if err := decodeJSONBody(w, r, &in); err != nil {
		writeDecodeError(w, r, err, h.logger)
		return
	}

	v, err := h.service.Update(r.Context(), id, &in)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, v)
}

// SetActive handles PATCH /api/admin/vouchers/{id}/active.
func (h *VoucherHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(r)
	if !ok {
		writeError(w, r, http.StatusNotFound, model.ErrCodeVoucherNotFound, model.ErrVoucherNotFound.Message, h.logger)
		return
	}

	var req model.SetActiveRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeDecodeError(w, r, err, h.logger)
		return
	}

	v, err := h.service.SetActive(r.Context(), id, *req.Active)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, v)
}

// Delete handles DELETE /api/admin/vouchers/{id}.
func (h *VoucherHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(r)
	if !ok {
		writeError(w, r, http.StatusNotFound, model.ErrCodeVoucherNotFound, model.ErrVoucherNotFound.Message, h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
