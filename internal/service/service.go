package service

import (
	"context"

	"storefront-admin/internal/model"

	"github.com/google/uuid"
)

// VoucherService defines voucher validation and administration.
type VoucherService interface {
	// Validate checks a code against a cart total. Rejections are reported in the response.
	Validate(ctx context.Context, req *model.ValidateVoucherRequest) *model.ValidateVoucherResponse

	// List retrieves all vouchers, newest first.
	List(ctx context.Context) ([]model.Voucher, error)

	// Get retrieves a voucher by ID.
	Get(ctx context.Context, id uuid.UUID) (*model.Voucher, error)

	// Create adds a voucher with times_used = 0.
	Create(ctx context.Context, in *model.VoucherInput) (*model.Voucher, error)

	// Update replaces the editable fields of a voucher.
	Update(ctx context.Context, id uuid.UUID, in *model.VoucherInput) (*model.Voucher, error)

	// SetActive enables or disables a voucher.
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.Voucher, error)

	// Delete removes a voucher.
	Delete(ctx context.Context, id uuid.UUID) error
}

// FAQService defines FAQ administration and the public FAQ listing.
type FAQService interface {
	// ListActive retrieves published FAQs in display order.
	ListActive(ctx context.Context) ([]model.FAQ, error)

	// ListAll retrieves every FAQ in display order.
	ListAll(ctx context.Context) ([]model.FAQ, error)

	// Get retrieves a FAQ by ID.
	Get(ctx context.Context, id uuid.UUID) (*model.FAQ, error)

	// Create adds a FAQ, appending it to the end unless a position is given.
	Create(ctx context.Context, in *model.FAQInput) (*model.FAQ, error)

	// Update replaces a FAQ's question, answer and active flag.
	Update(ctx context.Context, id uuid.UUID, in *model.FAQInput) (*model.FAQ, error)

	// SetActive publishes or hides a FAQ.
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.FAQ, error)

	// Delete removes a FAQ.
	Delete(ctx context.Context, id uuid.UUID) error

	// Reorder sets the display order to the order of ids.
	Reorder(ctx context.Context, ids []string) error
}

// PaymentMethodService defines payment method administration and the public listing.
type PaymentMethodService interface {
	// ListActive retrieves enabled payment methods in display order.
	ListActive(ctx context.Context) ([]model.PaymentMethod, error)

	// ListAll retrieves every payment method in display order.
	ListAll(ctx context.Context) ([]model.PaymentMethod, error)

	// Get retrieves a payment method by ID.
	Get(ctx context.Context, id string) (*model.PaymentMethod, error)

	// Create adds a payment method under a caller-chosen id.
	Create(ctx context.Context, in *model.PaymentMethodInput) (*model.PaymentMethod, error)

	// Update replaces the editable fields of a payment method.
	Update(ctx context.Context, id string, in *model.PaymentMethodInput) (*model.PaymentMethod, error)

	// SetActive enables or disables a payment method.
	SetActive(ctx context.Context, id string, active bool) (*model.PaymentMethod, error)

	// Delete removes a payment method.
	Delete(ctx context.Context, id string) error

	// Reorder sets the display order to the order of ids.
	Reorder(ctx context.Context, ids []string) error
}

// checkReorderIDs rejects empty lists, blank ids and duplicates.
func checkReorderIDs(ids []string) error {
	if len(ids) == 0 {
		return model.ErrInvalidReorder
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			return model.ErrInvalidReorder
		}
		if _, dup := seen[id]; dup {
			return model.ErrInvalidReorder
		}
		seen[id] = struct{}{}
	}
	return nil
}
