package repository

import (
	"context"

	"storefront-admin/internal/model"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const voucherColumns = `
	id, code, discount_type, discount_value, max_discount, min_purchase_amount,
	max_uses, times_used, expires_at, active, created_at, updated_at`

// voucherRepository implements the VoucherRepository interface using PostgreSQL.
type voucherRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewVoucherRepository creates a new PostgreSQL-backed voucher repository.
func NewVoucherRepository(pool *pgxpool.Pool, logger zerolog.Logger) VoucherRepository {
	return &voucherRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "voucher").Logger(),
	}
}

func scanVoucher(row rowScanner) (*model.Voucher, error) {
	var v model.Voucher
	err := row.Scan(
		&v.ID, &v.Code, &v.DiscountType, &v.DiscountValue, &v.MaxDiscount, &v.MinPurchaseAmount,
		&v.MaxUses, &v.TimesUsed, &v.ExpiresAt, &v.Active, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// List retrieves all vouchers, newest first.
func (r *voucherRepository) List(ctx context.Context) ([]model.Voucher, error) {
	query := `SELECT` + voucherColumns + `
		FROM vouchers
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query vouchers")
		return nil, errors.Wrap(err, "failed to query vouchers")
	}
	defer rows.Close()

	vouchers := []model.Voucher{}
	for rows.Next() {
		v, err := scanVoucher(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan voucher row")
			return nil, errors.Wrap(err, "failed to scan voucher")
		}
		vouchers = append(vouchers, *v)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating voucher rows")
		return nil, errors.Wrap(err, "error iterating vouchers")
	}

	return vouchers, nil
}

// GetByID retrieves a voucher by ID.
func (r *voucherRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Voucher, error) {
	query := `SELECT` + voucherColumns + ` FROM vouchers WHERE id = $1`

	v, err := scanVoucher(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("voucher_id", id.String()).Msg("voucher not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("voucher_id", id.String()).Msg("failed to query voucher")
		return nil, errors.Wrap(err, "failed to query voucher")
	}

	return v, nil
}

// GetByCode retrieves a voucher by its normalized code.
func (r *voucherRepository) GetByCode(ctx context.Context, code string) (*model.Voucher, error) {
	query := `SELECT` + voucherColumns + ` FROM vouchers WHERE code = $1`

	v, err := scanVoucher(r.pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("code", code).Msg("voucher code not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("code", code).Msg("failed to query voucher by code")
		return nil, errors.Wrap(err, "failed to query voucher by code")
	}

	return v, nil
}

// Create inserts a new voucher.
func (r *voucherRepository) Create(ctx context.Context, v *model.Voucher) error {
	query := `
		INSERT INTO vouchers (
			id, code, discount_type, discount_value, max_discount, min_purchase_amount,
			max_uses, times_used, expires_at, active, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		v.ID, v.Code, v.DiscountType, v.DiscountValue, v.MaxDiscount, v.MinPurchaseAmount,
		v.MaxUses, v.TimesUsed, v.ExpiresAt, v.Active, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Warn().Str("code", v.Code).Msg("duplicate voucher code")
			return model.ErrDuplicateVoucherCode
		}
		r.logger.Error().Err(err).Str("code", v.Code).Msg("failed to insert voucher")
		return errors.Wrap(err, "failed to insert voucher")
	}

	return nil
}

// Update replaces the editable fields of a voucher.
func (r *voucherRepository) Update(ctx context.Context, v *model.Voucher) (*model.Voucher, error) {
	query := `
		UPDATE vouchers
		SET code = $2, discount_type = $3, discount_value = $4, max_discount = $5,
			min_purchase_amount = $6, max_uses = $7, expires_at = $8, active = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING` + voucherColumns

	updated, err := scanVoucher(r.pool.QueryRow(ctx, query,
		v.ID, v.Code, v.DiscountType, v.DiscountValue, v.MaxDiscount,
		v.MinPurchaseAmount, v.MaxUses, v.ExpiresAt, v.Active,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrVoucherNotFound
		}
		if isUniqueViolation(err) {
			return nil, model.ErrDuplicateVoucherCode
		}
		r.logger.Error().Err(err).Str("voucher_id", v.ID.String()).Msg("failed to update voucher")
		return nil, errors.Wrap(err, "failed to update voucher")
	}

	return updated, nil
}

// SetActive flips the active flag of a voucher.
func (r *voucherRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.Voucher, error) {
	query := `
		UPDATE vouchers SET active = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING` + voucherColumns

	updated, err := scanVoucher(r.pool.QueryRow(ctx, query, id, active))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrVoucherNotFound
		}
		r.logger.Error().Err(err).Str("voucher_id", id.String()).Msg("failed to set voucher active flag")
		return nil, errors.Wrap(err, "failed to set voucher active flag")
	}

	return updated, nil
}

// Delete removes a voucher.
func (r *voucherRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM vouchers WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("voucher_id", id.String()).Msg("failed to delete voucher")
		return errors.Wrap(err, "failed to delete voucher")
	}

	if tag.RowsAffected() == 0 {
		return model.ErrVoucherNotFound
	}

	return nil
}

// Upsert inserts a voucher or refreshes the definition of an existing code.
func (r *voucherRepository) Upsert(ctx context.Context, v *model.Voucher) (bool, error) {
	query := `
		INSERT INTO vouchers (
			id, code, discount_type, discount_value, max_discount, min_purchase_amount,
			max_uses, times_used, expires_at, active, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, $9, NOW(), NOW())
		ON CONFLICT (code) DO UPDATE SET
			discount_type = EXCLUDED.discount_type,
			discount_value = EXCLUDED.discount_value,
			max_discount = EXCLUDED.max_discount,
			min_purchase_amount = EXCLUDED.min_purchase_amount,
			max_uses = EXCLUDED.max_uses,
			expires_at = EXCLUDED.expires_at,
			active = EXCLUDED.active,
			updated_at = NOW()
		RETURNING (xmax = 0) AS inserted
	`

	var inserted bool
	err := r.pool.QueryRow(ctx, query,
		v.ID, v.Code, v.DiscountType, v.DiscountValue, v.MaxDiscount,
		v.MinPurchaseAmount, v.MaxUses, v.ExpiresAt, v.Active,
	).Scan(&inserted)
	if err != nil {
		r.logger.Error().Err(err).Str("code", v.Code).Msg("failed to upsert voucher")
		return false, errors.Wrap(err, "failed to upsert voucher")
	}

	return inserted, nil
}
