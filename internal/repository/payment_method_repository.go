package repository

import (
	"context"

	"storefront-admin/internal/model"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const paymentMethodColumns = `
	id, name, account_number, account_name, qr_code_url, active, sort_order, created_at, updated_at`

// paymentMethodRepository implements the PaymentMethodRepository interface using PostgreSQL.
type paymentMethodRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPaymentMethodRepository creates a new PostgreSQL-backed payment method repository.
func NewPaymentMethodRepository(pool *pgxpool.Pool, logger zerolog.Logger) PaymentMethodRepository {
	return &paymentMethodRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "payment_method").Logger(),
	}
}

func scanPaymentMethod(row rowScanner) (*model.PaymentMethod, error) {
	var m model.PaymentMethod
	err := row.Scan(
		&m.ID, &m.Name, &m.AccountNumber, &m.AccountName, &m.QRCodeURL,
		&m.Active, &m.SortOrder, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List retrieves payment methods ordered by sort_order.
func (r *paymentMethodRepository) List(ctx context.Context, activeOnly bool) ([]model.PaymentMethod, error) {
	query := `SELECT` + paymentMethodColumns + `
		FROM payment_methods
		WHERE ($1::boolean = FALSE OR active)
		ORDER BY sort_order ASC, name ASC
	`

	rows, err := r.pool.Query(ctx, query, activeOnly)
	if err != nil {
		r.logger.Error().Err(err).Bool("active_only", activeOnly).Msg("failed to query payment methods")
		return nil, errors.Wrap(err, "failed to query payment methods")
	}
	defer rows.Close()

	methods := []model.PaymentMethod{}
	for rows.Next() {
		m, err := scanPaymentMethod(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan payment method row")
			return nil, errors.Wrap(err, "failed to scan payment method")
		}
		methods = append(methods, *m)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating payment method rows")
		return nil, errors.Wrap(err, "error iterating payment methods")
	}

	return methods, nil
}

// GetByID retrieves a payment method by ID.
func (r *paymentMethodRepository) GetByID(ctx context.Context, id string) (*model.PaymentMethod, error) {
	query := `SELECT` + paymentMethodColumns + ` FROM payment_methods WHERE id = $1`

	m, err := scanPaymentMethod(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("payment_method_id", id).Msg("payment method not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("payment_method_id", id).Msg("failed to query payment method")
		return nil, errors.Wrap(err, "failed to query payment method")
	}

	return m, nil
}

// Create inserts a payment method.
func (r *paymentMethodRepository) Create(ctx context.Context, m *model.PaymentMethod) error {
	query := `
		INSERT INTO payment_methods (
			id, name, account_number, account_name, qr_code_url, active, sort_order, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		m.ID, m.Name, m.AccountNumber, m.AccountName, m.QRCodeURL,
		m.Active, m.SortOrder, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Warn().Str("payment_method_id", m.ID).Msg("duplicate payment method id")
			return model.ErrDuplicatePaymentMethod
		}
		r.logger.Error().Err(err).Str("payment_method_id", m.ID).Msg("failed to insert payment method")
		return errors.Wrap(err, "failed to insert payment method")
	}

	return nil
}

// Update replaces the editable fields of a payment method.
func (r *paymentMethodRepository) Update(ctx context.Context, m *model.PaymentMethod) (*model.PaymentMethod, error) {
	query := `
		UPDATE payment_methods
		SET name = $2, account_number = $3, account_name = $4, qr_code_url = $5,
			active = $6, sort_order = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING` + paymentMethodColumns

	updated, err := scanPaymentMethod(r.pool.QueryRow(ctx, query,
		m.ID, m.Name, m.AccountNumber, m.AccountName, m.QRCodeURL, m.Active, m.SortOrder,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPaymentMethodNotFound
		}
		r.logger.Error().Err(err).Str("payment_method_id", m.ID).Msg("failed to update payment method")
		return nil, errors.Wrap(err, "failed to update payment method")
	}

	return updated, nil
}

// SetActive flips the active flag of a payment method.
func (r *paymentMethodRepository) SetActive(ctx context.Context, id string, active bool) (*model.PaymentMethod, error) {
	query := `
		UPDATE payment_methods SET active = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING` + paymentMethodColumns

	updated, err := scanPaymentMethod(r.pool.QueryRow(ctx, query, id, active))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPaymentMethodNotFound
		}
		r.logger.Error().Err(err).Str("payment_method_id", id).Msg("failed to set payment method active flag")
		return nil, errors.Wrap(err, "failed to set payment method active flag")
	}

	return updated, nil
}

// Delete removes a payment method.
func (r *paymentMethodRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM payment_methods WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("payment_method_id", id).Msg("failed to delete payment method")
		return errors.Wrap(err, "failed to delete payment method")
	}

	if tag.RowsAffected() == 0 {
		return model.ErrPaymentMethodNotFound
	}

	return nil
}

// Reorder assigns sort_order by list position inside one transaction.
func (r *paymentMethodRepository) Reorder(ctx context.Context, ids []string) error {
	return reorder(ctx, r.pool, r.logger, "payment_methods", "text", ids)
}
