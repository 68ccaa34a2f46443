package voucher

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"storefront-admin/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type mockLookup struct {
	mock.Mock
}

func (m *mockLookup) GetByCode(ctx context.Context, code string) (*model.Voucher, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Voucher), args.Error(1)
}

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) RecordValidation(outcome string) {
	m.Called(outcome)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func intPtr(n int) *int {
	return &n
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func baseVoucher(code string) model.Voucher {
	return model.Voucher{
		Code:              code,
		DiscountType:      model.DiscountTypePercentage,
		DiscountValue:     dec("10"),
		MinPurchaseAmount: decimal.Zero,
		Active:            true,
	}
}

func newTestValidator(store Lookup, recorder Recorder) Validator {
	config := &ValidatorConfig{
		CurrencySymbol: "₱",
		Now:            func() time.Time { return fixedNow },
	}
	return NewValidator(store, config, recorder, zerolog.Nop())
}

func TestDefaultValidatorConfig(t *testing.T) {
	config := DefaultValidatorConfig()

	require.NotNil(t, config)
	assert.Equal(t, "₱", config.CurrencySymbol)
	assert.NotNil(t, config.Now)
}

func TestValidator_Validate(t *testing.T) {
	tests := []struct {
		name           string
		voucher        func() model.Voucher
		code           string
		cartTotal      string
		expectValid    bool
		expectReason   Reason
		expectMessage  string
		expectDiscount string
	}{
		{
			name:          "Unknown code",
			voucher:       func() model.Voucher { return baseVoucher("SAVE10") },
			code:          "OTHER",
			cartTotal:     "1000",
			expectReason:  ReasonNotFound,
			expectMessage: "Invalid voucher code.",
		},
		{
			name: "Inactive voucher",
			voucher: func() model.Voucher {
				v := baseVoucher("SAVE10")
				v.Active = false
				return v
			},
			code:          "SAVE10",
			cartTotal:     "1000",
			expectReason:  ReasonInactive,
			expectMessage: "This voucher is no longer active.",
		},
		{
			name: "Expired 1ms ago",
			voucher: func() model.Voucher {
				v := baseVoucher("SAVE10")
				v.ExpiresAt = timePtr(fixedNow.Add(-time.Millisecond))
				return v
			},
			code:          "SAVE10",
			cartTotal:     "1000",
			expectReason:  ReasonExpired,
			expectMessage: "This voucher has expired.",
		},
		{
			name: "Expires 1ms from now proceeds",
			voucher: func() model.Voucher {
				v := baseVoucher("SAVE10")
				v.ExpiresAt = timePtr(fixedNow.Add(time.Millisecond))
				return v
			},
			code:           "SAVE10",
			cartTotal:      "1000",
			expectValid:    true,
			expectDiscount: "100",
		},
		{
			name: "Expires exactly now is not expired",
			voucher: func() model.Voucher {
				v := baseVoucher("SAVE10")
				v.ExpiresAt = timePtr(fixedNow)
				return v
			},
			code:           "SAVE10",
			cartTotal:      "1000",
			expectValid:    true,
			expectDiscount: "100",
		},
		{
			name: "Usage limit reached",
			voucher: func() model.Voucher {
				v := baseVoucher("SAVE10")
				v.MaxUses = intPtr(5)
				v.TimesUsed = 5
				return v
			},
			code:          "SAVE10",
			cartTotal:     "1000",
			expectReason:  ReasonUsageLimitReached,
			expectMessage: "This voucher has reached its usage limit.",
		},
		{
			name: "One use left proceeds",
			voucher: func() model.Voucher {
				v := baseVoucher("SAVE10")
				v.MaxUses = intPtr(5)
				v.TimesUsed = 4
				return v
			},
			code:           "SAVE10",
			cartTotal:      "1000",
			expectValid:    true,
			expectDiscount: "100",
		},
		{
			name: "Null max uses is unlimited",
			voucher: func() model.Voucher {
				v := baseVoucher("SAVE10")
				v.TimesUsed = 100000
				return v
			},
			code:           "SAVE10",
			cartTotal:      "1000",
			expectValid:    true,
			expectDiscount: "100",
		},
		{
			name: "Cart exactly at minimum purchase",
			voucher: func() model.Voucher {
				v := baseVoucher("SAVE10")
				v.MinPurchaseAmount = dec("500")
				return v
			},
			code:           "SAVE10",
			cartTotal:      "500",
			expectValid:    true,
			expectDiscount: "50",
		},
		{
			name: "Cart one cent below minimum purchase",
			voucher: func() model.Voucher {
				v := baseVoucher("SAVE10")
				v.MinPurchaseAmount = dec("500")
				return v
			},
			code:          "SAVE10",
			cartTotal:     "499.99",
			expectReason:  ReasonBelowMinimumPurchase,
			expectMessage: "Minimum purchase of ₱500 required.",
		},
		{
			name: "Minimum purchase message groups thousands",
			voucher: func() model.Voucher {
				v := baseVoucher("SAVE10")
				v.MinPurchaseAmount = dec("1500.5")
				return v
			},
			code:          "SAVE10",
			cartTotal:     "100",
			expectReason:  ReasonBelowMinimumPurchase,
			expectMessage: "Minimum purchase of ₱1,500.5 required.",
		},
		{
			name: "Minimum purchase message keeps every digit",
			voucher: func() model.Voucher {
				v := baseVoucher("SAVE10")
				v.MinPurchaseAmount = dec("12345678901234567.89")
				return v
			},
			code:          "SAVE10",
			cartTotal:     "100",
			expectReason:  ReasonBelowMinimumPurchase,
			expectMessage: "Minimum purchase of ₱12,345,678,901,234,567.89 required.",
		},
		{
			name: "Minimum purchase message rounds to cents",
			voucher: func() model.Voucher {
				v := baseVoucher("SAVE10")
				v.MinPurchaseAmount = dec("999.999")
				return v
			},
			code:          "SAVE10",
			cartTotal:     "100",
			expectReason:  ReasonBelowMinimumPurchase,
			expectMessage: "Minimum purchase of ₱1,000 required.",
		},
		{
			name: "Inactive wins over every later check",
			voucher: func() model.Voucher {
				v := baseVoucher("SAVE10")
				v.Active = false
				v.ExpiresAt = timePtr(fixedNow.Add(-time.Hour))
				v.MaxUses = intPtr(1)
				v.TimesUsed = 1
				v.MinPurchaseAmount = dec("5000")
				return v
			},
			code:          "SAVE10",
			cartTotal:     "100",
			expectReason:  ReasonInactive,
			expectMessage: "This voucher is no longer active.",
		},
		{
			name: "Expired wins over usage limit and minimum",
			voucher: func() model.Voucher {
				v := baseVoucher("SAVE10")
				v.ExpiresAt = timePtr(fixedNow.Add(-time.Hour))
				v.MaxUses = intPtr(1)
				v.TimesUsed = 1
				v.MinPurchaseAmount = dec("5000")
				return v
			},
			code:          "SAVE10",
			cartTotal:     "100",
			expectReason:  ReasonExpired,
			expectMessage: "This voucher has expired.",
		},
		{
			name: "Usage limit wins over minimum purchase",
			voucher: func() model.Voucher {
				v := baseVoucher("SAVE10")
				v.MaxUses = intPtr(1)
				v.TimesUsed = 1
				v.MinPurchaseAmount = dec("5000")
				return v
			},
			code:          "SAVE10",
			cartTotal:     "100",
			expectReason:  ReasonUsageLimitReached,
			expectMessage: "This voucher has reached its usage limit.",
		},
		{
			name: "Percentage capped by max discount",
			voucher: func() model.Voucher {
				v := baseVoucher("HALF")
				v.DiscountValue = dec("50")
				v.MaxDiscount = decPtr("100")
				return v
			},
			code:           "HALF",
			cartTotal:      "1000",
			expectValid:    true,
			expectDiscount: "100",
		},
		{
			name: "Percentage below cap",
			voucher: func() model.Voucher {
				v := baseVoucher("HALF")
				v.DiscountValue = dec("50")
				v.MaxDiscount = decPtr("100")
				return v
			},
			code:           "HALF",
			cartTotal:      "150",
			expectValid:    true,
			expectDiscount: "75",
		},
		{
			name: "Fixed discount exceeding cart is clamped",
			voucher: func() model.Voucher {
				v := baseVoucher("FLAT500")
				v.DiscountType = model.DiscountTypeFixed
				v.DiscountValue = dec("500")
				return v
			},
			code:           "FLAT500",
			cartTotal:      "300",
			expectValid:    true,
			expectDiscount: "300",
		},
		{
			name: "Fixed discount ignores max discount",
			voucher: func() model.Voucher {
				v := baseVoucher("FLAT200")
				v.DiscountType = model.DiscountTypeFixed
				v.DiscountValue = dec("200")
				v.MaxDiscount = decPtr("50")
				return v
			},
			code:           "FLAT200",
			cartTotal:      "1000",
			expectValid:    true,
			expectDiscount: "200",
		},
		{
			name:           "Code is trimmed and upper-cased",
			voucher:        func() model.Voucher { return baseVoucher("SAVE10") },
			code:           " save10 ",
			cartTotal:      "1000",
			expectValid:    true,
			expectDiscount: "100",
		},
		{
			name: "Percentage keeps fractional cents",
			voucher: func() model.Voucher {
				v := baseVoucher("SAVE15")
				v.DiscountValue = dec("15")
				return v
			},
			code:           "SAVE15",
			cartTotal:      "99.99",
			expectValid:    true,
			expectDiscount: "14.9985",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore(1)
			store.Put(tt.voucher())

			recorder := new(mockRecorder)
			if tt.expectValid {
				recorder.On("RecordValidation", OutcomeValid).Once()
			} else {
				recorder.On("RecordValidation", string(tt.expectReason)).Once()
			}

			result := newTestValidator(store, recorder).Validate(context.Background(), tt.code, dec(tt.cartTotal))

			assert.Equal(t, tt.expectValid, result.Valid)
			if tt.expectValid {
				assert.Empty(t, result.Reason)
				assert.True(t, dec(tt.expectDiscount).Equal(result.Discount),
					"expected discount %s, got %s", tt.expectDiscount, result.Discount)
				require.NotNil(t, result.Voucher)
			} else {
				assert.Equal(t, tt.expectReason, result.Reason)
				assert.Equal(t, tt.expectMessage, result.Message)
				assert.True(t, result.Discount.IsZero())
				assert.Nil(t, result.Voucher)
			}
			recorder.AssertExpectations(t)
		})
	}
}

func TestValidator_Validate_LookupFailure(t *testing.T) {
	lookup := new(mockLookup)
	lookup.On("GetByCode", mock.Anything, "SAVE10").Return(nil, errors.New("connection refused"))

	recorder := new(mockRecorder)
	recorder.On("RecordValidation", string(ReasonLookupFailed)).Once()

	result := newTestValidator(lookup, recorder).Validate(context.Background(), "save10", dec("100"))

	assert.False(t, result.Valid)
	assert.Equal(t, ReasonLookupFailed, result.Reason)
	assert.Equal(t, "Failed to validate voucher.", result.Message)
	lookup.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestValidator_Validate_LookupFailureStopsChecks(t *testing.T) {
	v := baseVoucher("SAVE10")
	lookup := new(mockLookup)
	lookup.On("GetByCode", mock.Anything, "SAVE10").Return(&v, errors.New("read timeout"))

	recorder := new(mockRecorder)
	recorder.On("RecordValidation", string(ReasonLookupFailed)).Once()

	result := newTestValidator(lookup, recorder).Validate(context.Background(), "SAVE10", dec("1000"))

	assert.False(t, result.Valid)
	assert.Equal(t, ReasonLookupFailed, result.Reason)
	assert.True(t, result.Discount.IsZero())
	assert.Nil(t, result.Voucher)
	lookup.AssertNumberOfCalls(t, "GetByCode", 1)
	recorder.AssertExpectations(t)
}

func TestValidator_Validate_NilRecorder(t *testing.T) {
	store := NewMemoryStore(1)
	store.Put(baseVoucher("SAVE10"))

	result := newTestValidator(store, nil).Validate(context.Background(), "SAVE10", dec("100"))

	assert.True(t, result.Valid)
	assert.Equal(t, OutcomeValid, result.Outcome())
}

func TestValidator_Validate_Idempotent(t *testing.T) {
	store := NewMemoryStore(1)
	v := baseVoucher("HALF")
	v.DiscountValue = dec("50")
	v.MaxDiscount = decPtr("100")
	v.MaxUses = intPtr(3)
	v.TimesUsed = 2
	store.Put(v)

	validator := newTestValidator(store, nil)
	ctx := context.Background()

	first := validator.Validate(ctx, "HALF", dec("1000"))
	second := validator.Validate(ctx, "HALF", dec("1000"))

	assert.Equal(t, first.Valid, second.Valid)
	assert.True(t, first.Discount.Equal(second.Discount))

	stored, err := store.GetByCode(ctx, "HALF")
	require.NoError(t, err)
	assert.Equal(t, 2, stored.TimesUsed)
}

func TestValidator_Validate_DiscountNeverExceedsCart(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ctx := context.Background()

	for i := 0; i < 500; i++ {
		v := baseVoucher("PROP")
		if rng.Intn(2) == 0 {
			v.DiscountType = model.DiscountTypeFixed
			v.DiscountValue = decimal.New(rng.Int63n(100000)+1, -2)
		} else {
			v.DiscountValue = decimal.NewFromInt(rng.Int63n(100) + 1)
			if rng.Intn(2) == 0 {
				v.MaxDiscount = decPtr(decimal.New(rng.Int63n(50000), -2).String())
			}
		}
		v.MinPurchaseAmount = decimal.New(rng.Int63n(10000), -2)
		cartTotal := v.MinPurchaseAmount.Add(decimal.New(rng.Int63n(100000), -2))

		store := NewMemoryStore(1)
		store.Put(v)

		result := newTestValidator(store, nil).Validate(ctx, "PROP", cartTotal)

		require.True(t, result.Valid, "iteration %d", i)
		assert.True(t, result.Discount.LessThanOrEqual(cartTotal), "iteration %d: %s > %s", i, result.Discount, cartTotal)
		assert.False(t, result.Discount.IsNegative(), "iteration %d", i)
		if v.MaxDiscount != nil {
			assert.True(t, result.Discount.LessThanOrEqual(*v.MaxDiscount), "iteration %d", i)
		}
	}
}
