package handler

import (
	"encoding/json"
	"net/http"

	"storefront-admin/internal/middleware"
	"storefront-admin/internal/model"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code, error code and message.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	writeErrorDetails(w, r, status, code, message, nil, logger)
}

func writeErrorDetails(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]string, logger zerolog.Logger) {
	requestID := middleware.GetRequestID(r.Context())

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("code", code).Int("status", status).Str("request_id", requestID).Msg(message)

	writeJSON(w, status, model.ErrorResponse{
		Error:     code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
	})
}

// statusForCode maps a domain error code to an HTTP status.
func statusForCode(code string) int {
	switch code {
	case model.ErrCodeValidation, model.ErrCodeInvalidJSON, model.ErrCodeInvalidReorder:
		return http.StatusBadRequest
	case model.ErrCodeVoucherNotFound, model.ErrCodeFAQNotFound, model.ErrCodePaymentNotFound:
		return http.StatusNotFound
	case model.ErrCodeDuplicateVoucher, model.ErrCodeDuplicatePayment:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError translates an error returned by a service into a response.
// Anything that is not a domain error is reported as an opaque 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeErrorDetails(w, r, statusForCode(domainErr.Code), domainErr.Code, domainErr.Message, nil, logger)
		return
	}

	logger.Error().Err(err).Str("request_id", middleware.GetRequestID(r.Context())).Msg("request failed")
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
		Error:     model.ErrCodeInternalError,
		Message:   "internal server error",
		RequestID: middleware.GetRequestID(r.Context()),
	})
}
