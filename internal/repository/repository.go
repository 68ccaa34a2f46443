package repository

import (
	"context"

	"storefront-admin/internal/model"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// VoucherRepository defines the interface for voucher data access operations.
type VoucherRepository interface {
	// List retrieves all vouchers, newest first.
	List(ctx context.Context) ([]model.Voucher, error)

	// GetByID retrieves a voucher by ID. Returns nil, nil when it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Voucher, error)

	// GetByCode retrieves a voucher by its normalized code. Returns nil, nil when it does not exist.
	GetByCode(ctx context.Context, code string) (*model.Voucher, error)

	// Create inserts a new voucher.
	Create(ctx context.Context, voucher *model.Voucher) error

	// Update replaces the editable fields of a voucher and returns the stored row.
	Update(ctx context.Context, voucher *model.Voucher) (*model.Voucher, error)

	// SetActive flips the active flag and returns the stored row.
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.Voucher, error)

	// Delete removes a voucher.
	Delete(ctx context.Context, id uuid.UUID) error

	// Upsert inserts a voucher or updates the existing one with the same code.
	// times_used is never overwritten. Reports whether a new row was inserted.
	Upsert(ctx context.Context, voucher *model.Voucher) (bool, error)
}

// FAQRepository defines the interface for FAQ data access operations.
type FAQRepository interface {
	// List retrieves FAQs ordered by sort_order; activeOnly restricts to published entries.
	List(ctx context.Context, activeOnly bool) ([]model.FAQ, error)

	// GetByID retrieves a FAQ by ID. Returns nil, nil when it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.FAQ, error)

	// Create inserts a FAQ. A nil sortOrder appends it after the current last FAQ.
	Create(ctx context.Context, faq *model.FAQ, sortOrder *int) error

	// Update replaces question, answer and active; a nil sortOrder keeps the current position.
	Update(ctx context.Context, faq *model.FAQ, sortOrder *int) (*model.FAQ, error)

	// SetActive flips the active flag and returns the stored row.
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.FAQ, error)

	// Delete removes a FAQ.
	Delete(ctx context.Context, id uuid.UUID) error

	// Reorder assigns sort_order = position+1 to each id in a single statement.
	// Either every id is updated or none is.
	Reorder(ctx context.Context, ids []string) error
}

// PaymentMethodRepository defines the interface for payment method data access operations.
type PaymentMethodRepository interface {
	// List retrieves payment methods ordered by sort_order; activeOnly restricts to enabled ones.
	List(ctx context.Context, activeOnly bool) ([]model.PaymentMethod, error)

	// GetByID retrieves a payment method. Returns nil, nil when it does not exist.
	GetByID(ctx context.Context, id string) (*model.PaymentMethod, error)

	// Create inserts a payment method.
	Create(ctx context.Context, method *model.PaymentMethod) error

	// Update replaces the editable fields of a payment method and returns the stored row.
	Update(ctx context.Context, method *model.PaymentMethod) (*model.PaymentMethod, error)

	// SetActive flips the active flag and returns the stored row.
	SetActive(ctx context.Context, id string, active bool) (*model.PaymentMethod, error)

	// Delete removes a payment method.
	Delete(ctx context.Context, id string) error

	// Reorder assigns sort_order = position+1 to each id. Either every id is updated or none is.
	Reorder(ctx context.Context, ids []string) error
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
