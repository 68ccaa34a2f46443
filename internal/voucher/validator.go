package voucher

import (
	"context"
	"math"
	"strings"
	"time"

	"storefront-admin/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var hundred = decimal.NewFromInt(100)

// validator implements Validator on top of a voucher Lookup.
type validator struct {
	lookup   Lookup
	recorder Recorder
	symbol   string
	now      func() time.Time
	printer  *message.Printer
	logger   zerolog.Logger
}

// ValidatorConfig holds configuration for the voucher validator.
type ValidatorConfig struct {
	// CurrencySymbol prefixes amounts in the minimum purchase message.
	CurrencySymbol string

	// Now is the clock used for the expiry check.
	// Default: time.Now
	Now func() time.Time
}

// DefaultValidatorConfig returns the default validator configuration.
func DefaultValidatorConfig() *ValidatorConfig {
	return &ValidatorConfig{
		CurrencySymbol: "₱",
		Now:            time.Now,
	}
}

// NewValidator creates a validator. recorder may be nil.
func NewValidator(lookup Lookup, config *ValidatorConfig, recorder Recorder, logger zerolog.Logger) Validator {
	if config == nil {
		config = DefaultValidatorConfig()
	}
	now := config.Now
	if now == nil {
		now = time.Now
	}

	return &validator{
		lookup:   lookup,
		recorder: recorder,
		symbol:   config.CurrencySymbol,
		now:      now,
		printer:  message.NewPrinter(language.English),
		logger:   logger.With().Str("component", "voucher-validator").Logger(),
	}
}

// Validate runs the eligibility checks in order and stops at the first failure.
func (v *validator) Validate(ctx context.Context, code string, cartTotal decimal.Decimal) Result {
	result := v.evaluate(ctx, model.NormalizeVoucherCode(code), cartTotal)

	if v.recorder != nil {
		v.recorder.RecordValidation(result.Outcome())
	}

	v.logger.Debug().
		Str("code", model.NormalizeVoucherCode(code)).
		Str("cart_total", cartTotal.String()).
		Str("outcome", result.Outcome()).
		Str("discount", result.Discount.String()).
		Msg("voucher validated")

	return result
}

func (v *validator) evaluate(ctx context.Context, code string, cartTotal decimal.Decimal) Result {
	voucher, err := v.lookup.GetByCode(ctx, code)
	if err != nil {
		v.logger.Error().Err(err).Str("code", code).Msg("voucher lookup failed")
		return invalid(ReasonLookupFailed, reasonMessages[ReasonLookupFailed])
	}
	if voucher == nil {
		return invalid(ReasonNotFound, reasonMessages[ReasonNotFound])
	}

	if !voucher.Active {
		return invalid(ReasonInactive, reasonMessages[ReasonInactive])
	}

	if voucher.ExpiresAt != nil && voucher.ExpiresAt.Before(v.now()) {
		return invalid(ReasonExpired, reasonMessages[ReasonExpired])
	}

	if voucher.MaxUses != nil && voucher.TimesUsed >= *voucher.MaxUses {
		return invalid(ReasonUsageLimitReached, reasonMessages[ReasonUsageLimitReached])
	}

	if cartTotal.LessThan(voucher.MinPurchaseAmount) {
		return invalid(ReasonBelowMinimumPurchase, v.minimumPurchaseMessage(voucher.MinPurchaseAmount))
	}

	return valid(Discount(voucher, cartTotal), voucher)
}

// Discount computes the discount a voucher grants on cartTotal: percentage
// discounts are capped by max_discount first, then any discount is clamped to
// the cart total. No rounding is applied.
func Discount(voucher *model.Voucher, cartTotal decimal.Decimal) decimal.Decimal {
	var raw decimal.Decimal
	switch voucher.DiscountType {
	case model.DiscountTypePercentage:
		raw = cartTotal.Mul(voucher.DiscountValue).Div(hundred)
		if voucher.MaxDiscount != nil && raw.GreaterThan(*voucher.MaxDiscount) {
			raw = *voucher.MaxDiscount
		}
	default:
		raw = voucher.DiscountValue
	}

	if raw.GreaterThan(cartTotal) {
		raw = cartTotal
	}
	return raw
}

func (v *validator) minimumPurchaseMessage(amount decimal.Decimal) string {
	return "Minimum purchase of " + v.symbol + v.formatAmount(amount) + " required."
}

var maxGroupable = decimal.NewFromInt(math.MaxInt64)

// formatAmount renders amount with thousands separators and at most two
// fraction digits. Digits come from the decimal, never from a float.
func (v *validator) formatAmount(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	whole := rounded.Truncate(0)
	if whole.Abs().GreaterThan(maxGroupable) {
		return rounded.String()
	}

	formatted := v.printer.Sprint(number.Decimal(whole.IntPart()))
	if rounded.IsNegative() && whole.IsZero() {
		formatted = "-" + formatted
	}

	fraction := strings.TrimRight(rounded.Sub(whole).Abs().StringFixed(2)[2:], "0")
	if fraction != "" {
		formatted += "." + fraction
	}
	return formatted
}
