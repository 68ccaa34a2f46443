package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Money fields are encoded as JSON numbers, matching what storefront clients send.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DiscountType is how a voucher's discount value is interpreted.
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// Valid reports whether t is a known discount type.
func (t DiscountType) Valid() bool {
	return t == DiscountTypePercentage || t == DiscountTypeFixed
}

// Voucher is a discount code with its eligibility rules and usage counter.
type Voucher struct {
	ID                uuid.UUID        `json:"id" db:"id"`
	Code              string           `json:"code" db:"code"`
	DiscountType      DiscountType     `json:"discountType" db:"discount_type"`
	DiscountValue     decimal.Decimal  `json:"discountValue" db:"discount_value"`
	MaxDiscount       *decimal.Decimal `json:"maxDiscount" db:"max_discount"`
	MinPurchaseAmount decimal.Decimal  `json:"minPurchaseAmount" db:"min_purchase_amount"`
	MaxUses           *int             `json:"maxUses" db:"max_uses"`
	TimesUsed         int              `json:"timesUsed" db:"times_used"`
	ExpiresAt         *time.Time       `json:"expiresAt" db:"expires_at"`
	Active            bool             `json:"active" db:"active"`
	CreatedAt         time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time        `json:"updatedAt" db:"updated_at"`
}

// VoucherInput carries the admin-editable fields of a voucher.
type VoucherInput struct {
	Code              string           `json:"code" validate:"required,max=64"`
	DiscountType      DiscountType     `json:"discountType" validate:"required,oneof=percentage fixed"`
	DiscountValue     decimal.Decimal  `json:"discountValue"`
	MaxDiscount       *decimal.Decimal `json:"maxDiscount,omitempty"`
	MinPurchaseAmount decimal.Decimal  `json:"minPurchaseAmount"`
	MaxUses           *int             `json:"maxUses,omitempty" validate:"omitempty,min=0"`
	ExpiresAt         *time.Time       `json:"expiresAt,omitempty"`
	Active            bool             `json:"active"`
}

// NormalizeVoucherCode trims and upper-cases a voucher code.
func NormalizeVoucherCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

var hundred = decimal.NewFromInt(100)

// Normalize canonicalises the input in place and checks the business rules
// that struct tags cannot express. max_discount is dropped for fixed vouchers.
func (in *VoucherInput) Normalize() error {
	in.Code = NormalizeVoucherCode(in.Code)
	if in.Code == "" {
		return NewValidationError("voucher code is required")
	}
	if !in.DiscountType.Valid() {
		return NewValidationError("discount type must be percentage or fixed")
	}
	if !in.DiscountValue.IsPositive() {
		return NewValidationError("discount value must be greater than zero")
	}
	if in.DiscountType == DiscountTypePercentage && in.DiscountValue.GreaterThan(hundred) {
		return NewValidationError("percentage discount cannot exceed 100")
	}
	if in.DiscountType == DiscountTypeFixed {
		in.MaxDiscount = nil
	}
	if in.MaxDiscount != nil && in.MaxDiscount.IsNegative() {
		return NewValidationError("max discount cannot be negative")
	}
	if in.MinPurchaseAmount.IsNegative() {
		return NewValidationError("minimum purchase amount cannot be negative")
	}
	if in.MaxUses != nil && *in.MaxUses < 0 {
		return NewValidationError("max uses cannot be negative")
	}
	return nil
}

// Apply copies the editable fields of a normalized input onto v.
func (in VoucherInput) Apply(v *Voucher) {
	v.Code = in.Code
	v.DiscountType = in.DiscountType
	v.DiscountValue = in.DiscountValue
	v.MaxDiscount = in.MaxDiscount
	v.MinPurchaseAmount = in.MinPurchaseAmount
	v.MaxUses = in.MaxUses
	v.ExpiresAt = in.ExpiresAt
	v.Active = in.Active
}

// ValidateVoucherRequest is the payload of the public validation endpoint.
type ValidateVoucherRequest struct {
	Code      string          `json:"code"`
	CartTotal decimal.Decimal `json:"cartTotal"`
}

// ValidateVoucherResponse reports the outcome of a voucher validation.
type ValidateVoucherResponse struct {
	Valid    bool            `json:"valid"`
	Discount decimal.Decimal `json:"discount"`
	Reason   string          `json:"reason,omitempty"`
	Error    string          `json:"error,omitempty"`
	Voucher  *Voucher        `json:"voucher,omitempty"`
}

// SetActiveRequest toggles the active flag of a record.
type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// ReorderRequest lists record ids in their new display order.
type ReorderRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}
