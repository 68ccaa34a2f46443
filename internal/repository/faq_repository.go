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

const faqColumns = ` id, question, answer, active, sort_order, created_at, updated_at`

// faqRepository implements the FAQRepository interface using PostgreSQL.
type faqRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewFAQRepository creates a new PostgreSQL-backed FAQ repository.
func NewFAQRepository(pool *pgxpool.Pool, logger zerolog.Logger) FAQRepository {
	return &faqRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "faq").Logger(),
	}
}

func scanFAQ(row rowScanner) (*model.FAQ, error) {
	var f model.FAQ
	if err := row.Scan(&f.ID, &f.Question, &f.Answer, &f.Active, &f.SortOrder, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

// List retrieves FAQs ordered by sort_order.
func (r *faqRepository) List(ctx context.Context, activeOnly bool) ([]model.FAQ, error) {
	query := `SELECT` + faqColumns + `
		FROM faqs
		WHERE ($1::boolean = FALSE OR active)
		ORDER BY sort_order ASC, created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, activeOnly)
	if err != nil {
		r.logger.Error().Err(err).Bool("active_only", activeOnly).Msg("failed to query FAQs")
		return nil, errors.Wrap(err, "failed to query FAQs")
	}
	defer rows.Close()

	faqs := []model.FAQ{}
	for rows.Next() {
		f, err := scanFAQ(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan FAQ row")
			return nil, errors.Wrap(err, "failed to scan FAQ")
		}
		faqs = append(faqs, *f)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating FAQ rows")
		return nil, errors.Wrap(err, "error iterating FAQs")
	}

	return faqs, nil
}

// GetByID retrieves a FAQ by ID.
func (r *faqRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.FAQ, error) {
	f, err := scanFAQ(r.pool.QueryRow(ctx, `SELECT`+faqColumns+` FROM faqs WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("faq_id", id.String()).Msg("FAQ not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("faq_id", id.String()).Msg("failed to query FAQ")
		return nil, errors.Wrap(err, "failed to query FAQ")
	}

	return f, nil
}

// Create inserts a FAQ. When sortOrder is nil the FAQ is placed after the current maximum.
func (r *faqRepository) Create(ctx context.Context, f *model.FAQ, sortOrder *int) error {
	query := `
		INSERT INTO faqs (id, question, answer, active, sort_order, created_at, updated_at)
		VALUES (
			$1, $2, $3, $4,
			COALESCE($5::integer, (SELECT COALESCE(MAX(sort_order), 0) + 1 FROM faqs)),
			$6, $7
		)
		RETURNING sort_order
	`

	err := r.pool.QueryRow(ctx, query,
		f.ID, f.Question, f.Answer, f.Active, sortOrder, f.CreatedAt, f.UpdatedAt,
	).Scan(&f.SortOrder)
	if err != nil {
		r.logger.Error().Err(err).Str("faq_id", f.ID.String()).Msg("failed to insert FAQ")
		return errors.Wrap(err, "failed to insert FAQ")
	}

	return nil
}

// Update replaces question, answer and active of a FAQ.
func (r *faqRepository) Update(ctx context.Context, f *model.FAQ, sortOrder *int) (*model.FAQ, error) {
	query := `
		UPDATE faqs
		SET question = $2, answer = $3, active = $4,
			sort_order = COALESCE($5::integer, sort_order), updated_at = NOW()
		WHERE id = $1
		RETURNING` + faqColumns

	updated, err := scanFAQ(r.pool.QueryRow(ctx, query, f.ID, f.Question, f.Answer, f.Active, sortOrder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrFAQNotFound
		}
		r.logger.Error().Err(err).Str("faq_id", f.ID.String()).Msg("failed to update FAQ")
		return nil, errors.Wrap(err, "failed to update FAQ")
	}

	return updated, nil
}

// SetActive flips the active flag of a FAQ.
func (r *faqRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.FAQ, error) {
	query := `
		UPDATE faqs SET active = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING` + faqColumns

	updated, err := scanFAQ(r.pool.QueryRow(ctx, query, id, active))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrFAQNotFound
		}
		r.logger.Error().Err(err).Str("faq_id", id.String()).Msg("failed to set FAQ active flag")
		return nil, errors.Wrap(err, "failed to set FAQ active flag")
	}

	return updated, nil
}

// Delete removes a FAQ.
func (r *faqRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("faq_id", id.String()).Msg("failed to delete FAQ")
		return errors.Wrap(err, "failed to delete FAQ")
	}

	if tag.RowsAffected() == 0 {
		return model.ErrFAQNotFound
	}

	return nil
}

// Reorder assigns sort_order by list position inside one transaction.
func (r *faqRepository) Reorder(ctx context.Context, ids []string) error {
	return reorder(ctx, r.pool, r.logger, "faqs", "uuid", ids)
}

// reorder sets sort_order = position+1 for every id in one UPDATE. If the number
// of updated rows differs from len(ids) the transaction is rolled back and
// ErrInvalidReorder is returned.
func reorder(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger, table, idType string, ids []string) error {
	query := `
		UPDATE ` + table + ` AS t
		SET sort_order = o.position::integer, updated_at = NOW()
		FROM unnest($1::text[]) WITH ORDINALITY AS o(id, position)
		WHERE t.id = o.id::` + idType + `
	`

	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		logger.Error().Err(err).Msg("failed to begin reorder transaction")
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			logger.Error().Err(err).Msg("failed to rollback reorder transaction")
		}
	}()

	tag, err := tx.Exec(ctx, query, ids)
	if err != nil {
		logger.Error().Err(err).Str("table", table).Msg("failed to reorder rows")
		return errors.Wrap(err, "failed to reorder")
	}

	if tag.RowsAffected() != int64(len(ids)) {
		logger.Warn().
			Str("table", table).
			Int("requested", len(ids)).
			Int64("updated", tag.RowsAffected()).
			Msg("reorder references unknown ids, rolling back")
		return model.ErrInvalidReorder
	}

	if err := tx.Commit(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to commit reorder transaction")
		return errors.Wrap(err, "failed to commit transaction")
	}

	logger.Info().Str("table", table).Int("count", len(ids)).Msg("reorder committed")
	return nil
}
