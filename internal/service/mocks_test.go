package service

import (
	"context"

	"storefront-admin/internal/model"
	"storefront-admin/internal/voucher"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockVoucherRepository is a mock implementation of VoucherRepository.
type MockVoucherRepository struct {
	mock.Mock
}

func (m *MockVoucherRepository) List(ctx context.Context) ([]model.Voucher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Voucher, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) GetByCode(ctx context.Context, code string) (*model.Voucher, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) Create(ctx context.Context, v *model.Voucher) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVoucherRepository) Update(ctx context.Context, v *model.Voucher) (*model.Voucher, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.Voucher, error) {
	args := m.Called(ctx, id, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVoucherRepository) Upsert(ctx context.Context, v *model.Voucher) (bool, error) {
	args := m.Called(ctx, v)
	return args.Bool(0), args.Error(1)
}

// MockValidator is a mock implementation of voucher.Validator.
type MockValidator struct {
	mock.Mock
}

func (m *MockValidator) Validate(ctx context.Context, code string, cartTotal decimal.Decimal) voucher.Result {
	args := m.Called(ctx, code, cartTotal)
	return args.Get(0).(voucher.Result)
}

// MockFAQRepository is a mock implementation of FAQRepository.
type MockFAQRepository struct {
	mock.Mock
}

func (m *MockFAQRepository) List(ctx context.Context, activeOnly bool) ([]model.FAQ, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FAQ), args.Error(1)
}

func (m *MockFAQRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.FAQ, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FAQ), args.Error(1)
}

func (m *MockFAQRepository) Create(ctx context.Context, f *model.FAQ, sortOrder *int) error {
	args := m.Called(ctx, f, sortOrder)
	return args.Error(0)
}

func (m *MockFAQRepository) Update(ctx context.Context, f *model.FAQ, sortOrder *int) (*model.FAQ, error) {
	args := m.Called(ctx, f, sortOrder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FAQ), args.Error(1)
}

func (m *MockFAQRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.FAQ, error) {
	args := m.Called(ctx, id, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FAQ), args.Error(1)
}

func (m *MockFAQRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFAQRepository) Reorder(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// MockPaymentMethodRepository is a mock implementation of PaymentMethodRepository.
type MockPaymentMethodRepository struct {
	mock.Mock
}

func (m *MockPaymentMethodRepository) List(ctx context.Context, activeOnly bool) ([]model.PaymentMethod, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) GetByID(ctx context.Context, id string) (*model.PaymentMethod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) Create(ctx context.Context, pm *model.PaymentMethod) error {
	args := m.Called(ctx, pm)
	return args.Error(0)
}

func (m *MockPaymentMethodRepository) Update(ctx context.Context, pm *model.PaymentMethod) (*model.PaymentMethod, error) {
	args := m.Called(ctx, pm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) SetActive(ctx context.Context, id string, active bool) (*model.PaymentMethod, error) {
	args := m.Called(ctx, id, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentMethodRepository) Reorder(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}
