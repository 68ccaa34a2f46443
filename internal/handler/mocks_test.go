package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"storefront-admin/internal/health"
	"storefront-admin/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockVoucherService is a mock implementation of VoucherService.
type MockVoucherService struct {
	mock.Mock
}

func (m *MockVoucherService) Validate(ctx context.Context, req *model.ValidateVoucherRequest) *model.ValidateVoucherResponse {
	args := m.Called(ctx, req)
	return args.Get(0).(*model.ValidateVoucherResponse)
}

func (m *MockVoucherService) List(ctx context.Context) ([]model.Voucher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Voucher), args.Error(1)
}

func (m *MockVoucherService) Get(ctx context.Context, id uuid.UUID) (*model.Voucher, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Voucher), args.Error(1)
}

func (m *MockVoucherService) Create(ctx context.Context, in *model.VoucherInput) (*model.Voucher, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Voucher), args.Error(1)
}

func (m *MockVoucherService) Update(ctx context.Context, id uuid.UUID, in *model.VoucherInput) (*model.Voucher, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Voucher), args.Error(1)
}

func (m *MockVoucherService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.Voucher, error) {
	args := m.Called(ctx, id, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Voucher), args.Error(1)
}

func (m *MockVoucherService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFAQService is a mock implementation of FAQService.
type MockFAQService struct {
	mock.Mock
}

func (m *MockFAQService) ListActive(ctx context.Context) ([]model.FAQ, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FAQ), args.Error(1)
}

func (m *MockFAQService) ListAll(ctx context.Context) ([]model.FAQ, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FAQ), args.Error(1)
}

func (m *MockFAQService) Get(ctx context.Context, id uuid.UUID) (*model.FAQ, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FAQ), args.Error(1)
}

func (m *MockFAQService) Create(ctx context.Context, in *model.FAQInput) (*model.FAQ, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FAQ), args.Error(1)
}

func (m *MockFAQService) Update(ctx context.Context, id uuid.UUID, in *model.FAQInput) (*model.FAQ, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FAQ), args.Error(1)
}

func (m *MockFAQService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.FAQ, error) {
	args := m.Called(ctx, id, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FAQ), args.Error(1)
}

func (m *MockFAQService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFAQService) Reorder(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// MockPaymentMethodService is a mock implementation of PaymentMethodService.
type MockPaymentMethodService struct {
	mock.Mock
}

func (m *MockPaymentMethodService) ListActive(ctx context.Context) ([]model.PaymentMethod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodService) ListAll(ctx context.Context) ([]model.PaymentMethod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodService) Get(ctx context.Context, id string) (*model.PaymentMethod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodService) Create(ctx context.Context, in *model.PaymentMethodInput) (*model.PaymentMethod, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodService) Update(ctx context.Context, id string, in *model.PaymentMethodInput) (*model.PaymentMethod, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodService) SetActive(ctx context.Context, id string, active bool) (*model.PaymentMethod, error) {
	args := m.Called(ctx, id, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentMethodService) Reorder(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// MockHealthChecker is a mock implementation of HealthChecker.
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Check(ctx context.Context) (int, health.Report) {
	args := m.Called(ctx)
	return args.Int(0), args.Get(1).(health.Report)
}

// newRequest builds a request with an optional JSON body and chi URL params given as key/value pairs.
func newRequest(method, target, body string, params ...string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for i := 0; i+1 < len(params); i += 2 {
			rctx.URLParams.Add(params[i], params[i+1])
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	return req
}
