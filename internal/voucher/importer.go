package voucher

import (
	"context"
	"time"

	"storefront-admin/internal/model"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Upserter stores imported vouchers keyed by code.
type Upserter interface {
	Upsert(ctx context.Context, voucher *model.Voucher) (bool, error)
}

// ImportRecorder receives the row counts of each import.
type ImportRecorder interface {
	RecordImport(inserted, updated, skipped int)
}

// ImportSummary counts what an import did.
type ImportSummary struct {
	Total    int `json:"total"`
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
}

// Importer loads voucher definitions and upserts them into the store.
type Importer struct {
	loader   Loader
	store    Upserter
	recorder ImportRecorder
	now      func() time.Time
	logger   zerolog.Logger
}

// NewImporter creates an importer. recorder may be nil.
func NewImporter(loader Loader, store Upserter, recorder ImportRecorder, logger zerolog.Logger) *Importer {
	return &Importer{
		loader:   loader,
		store:    store,
		recorder: recorder,
		now:      time.Now,
		logger:   logger.With().Str("component", "voucher-importer").Logger(),
	}
}

// Import loads path and upserts every row. Rows failing validation are skipped
// and logged; a store error aborts the import.
func (i *Importer) Import(ctx context.Context, path string) (ImportSummary, error) {
	var summary ImportSummary

	inputs, err := i.loader.Load(ctx, path)
	if err != nil {
		return summary, errors.Wrap(err, "failed to load vouchers")
	}
	summary.Total = len(inputs)

	for _, in := range inputs {
		if err := in.Normalize(); err != nil {
			i.logger.Warn().Err(err).Str("code", in.Code).Msg("skipping invalid voucher row")
			summary.Skipped++
			continue
		}

		now := i.now()
		v := &model.Voucher{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
		in.Apply(v)

		inserted, err := i.store.Upsert(ctx, v)
		if err != nil {
			return summary, errors.Wrapf(err, "failed to import voucher %s", v.Code)
		}
		if inserted {
			summary.Inserted++
		} else {
			summary.Updated++
		}
	}

	if i.recorder != nil {
		i.recorder.RecordImport(summary.Inserted, summary.Updated, summary.Skipped)
	}

	i.logger.Info().
		Str("path", path).
		Int("total", summary.Total).
		Int("inserted", summary.Inserted).
		Int("updated", summary.Updated).
		Int("skipped", summary.Skipped).
		Msg("voucher import finished")

	return summary, nil
}
