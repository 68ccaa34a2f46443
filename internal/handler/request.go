package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"storefront-admin/internal/model"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return v
}

// requestError is a rejected request body together with per-field details.
type requestError struct {
	code    string
	message string
	details map[string]string
}

func (e *requestError) Error() string {
	return e.message
}

// decodeJSONBody decodes the request body into dest and runs struct validation.
// Unknown fields are rejected.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dest any) error {
	return decodeBody(w, r, dest, true)
}

// decodeLenientJSONBody is decodeJSONBody for public storefront payloads,
// where clients may send fields this service does not use.
func decodeLenientJSONBody(w http.ResponseWriter, r *http.Request, dest any) error {
	return decodeBody(w, r, dest, false)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dest any, strict bool) error {
	defer func() {
		_, _ = io.Copy(io.Discard, r.Body)
	}()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if strict {
		decoder.DisallowUnknownFields()
	}
	if err := decoder.Decode(dest); err != nil {
		return &requestError{
			code:    model.ErrCodeInvalidJSON,
			message: "invalid request body",
			details: map[string]string{"body": err.Error()},
		}
	}

	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) *requestError {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		details := make(map[string]string, len(errs))
		for _, fieldErr := range errs {
			details[fieldErr.Field()] = validationMessage(fieldErr)
		}
		return &requestError{code: model.ErrCodeValidation, message: "validation failed", details: details}
	}
	return &requestError{code: model.ErrCodeValidation, message: "validation failed"}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	}
	return "is invalid"
}

// writeDecodeError reports a decodeJSONBody failure as a 400.
func writeDecodeError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		writeErrorDetails(w, r, http.StatusBadRequest, reqErr.code, reqErr.message, reqErr.details, logger)
		return
	}
	writeServiceError(w, r, err, logger)
}

// uuidParam parses the {id} path parameter as a UUID.
func uuidParam(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(chi.URLParam(r, "id")))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
