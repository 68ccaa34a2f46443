package voucher

import (
	"context"

	"storefront-admin/internal/model"

	"github.com/shopspring/decimal"
)

// Validator checks whether a voucher code can be applied to a cart.
type Validator interface {
	// Validate evaluates the code against the cart total. Every failure, including a
	// failed lookup, is reported in the Result rather than as an error.
	Validate(ctx context.Context, code string, cartTotal decimal.Decimal) Result
}

// Lookup resolves a normalized voucher code to its record.
// It returns nil, nil when no voucher has that code.
type Lookup interface {
	GetByCode(ctx context.Context, code string) (*model.Voucher, error)
}

// Loader reads voucher definitions from a gzipped CSV source.
type Loader interface {
	Load(ctx context.Context, path string) ([]model.VoucherInput, error)
}

// Recorder receives one observation per validation outcome.
type Recorder interface {
	RecordValidation(outcome string)
}

// Reason identifies why a voucher was rejected.
type Reason string

const (
	ReasonNotFound             Reason = "not_found"
	ReasonInactive             Reason = "inactive"
	ReasonExpired              Reason = "expired"
	ReasonUsageLimitReached    Reason = "usage_limit_reached"
	ReasonBelowMinimumPurchase Reason = "below_minimum_purchase"
	ReasonLookupFailed         Reason = "lookup_failed"
)

// OutcomeValid is the metric label for an accepted voucher.
const OutcomeValid = "valid"

var reasonMessages = map[Reason]string{
	ReasonNotFound:          "Invalid voucher code.",
	ReasonInactive:          "This voucher is no longer active.",
	ReasonExpired:           "This voucher has expired.",
	ReasonUsageLimitReached: "This voucher has reached its usage limit.",
	ReasonLookupFailed:      "Failed to validate voucher.",
}

// Result is the outcome of a validation. Discount is zero unless Valid.
type Result struct {
	Valid    bool
	Discount decimal.Decimal
	Reason   Reason
	Message  string
	Voucher  *model.Voucher
}

func invalid(reason Reason, message string) Result {
	return Result{Reason: reason, Message: message, Discount: decimal.Zero}
}

func valid(discount decimal.Decimal, v *model.Voucher) Result {
	return Result{Valid: true, Discount: discount, Voucher: v}
}

// Outcome returns the metric label for the result.
func (r Result) Outcome() string {
	if r.Valid {
		return OutcomeValid
	}
	return string(r.Reason)
}
