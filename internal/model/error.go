package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"requestId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeVoucherNotFound     = "VOUCHER_NOT_FOUND"
	ErrCodeDuplicateVoucher    = "DUPLICATE_VOUCHER_CODE"
	ErrCodeFAQNotFound         = "FAQ_NOT_FOUND"
	ErrCodePaymentNotFound     = "PAYMENT_METHOD_NOT_FOUND"
	ErrCodeDuplicatePayment    = "DUPLICATE_PAYMENT_METHOD"
	ErrCodeInvalidReorder      = "INVALID_REORDER"
	ErrCodeUnauthorised        = "UNAUTHORIZED"
	ErrCodeInternalError       = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
	ErrCodeMethodNotAllowed    = "METHOD_NOT_ALLOWED"
	ErrCodeResourceNotFound    = "NOT_FOUND"
	ErrCodeVoucherLookupFailed = "VOUCHER_LOOKUP_FAILED"
)

// DomainError is a business error with a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation error carrying a client-safe message.
func NewValidationError(message string) *DomainError {
	return NewDomainError(ErrCodeValidation, message)
}

// Common domain errors
var (
	ErrVoucherNotFound        = NewDomainError(ErrCodeVoucherNotFound, "voucher not found")
	ErrDuplicateVoucherCode   = NewDomainError(ErrCodeDuplicateVoucher, "a voucher with this code already exists")
	ErrFAQNotFound            = NewDomainError(ErrCodeFAQNotFound, "FAQ not found")
	ErrPaymentMethodNotFound  = NewDomainError(ErrCodePaymentNotFound, "payment method not found")
	ErrDuplicatePaymentMethod = NewDomainError(ErrCodeDuplicatePayment, "a payment method with this id already exists")
	ErrInvalidReorder         = NewDomainError(ErrCodeInvalidReorder, "reorder request references unknown or duplicate ids")
)
