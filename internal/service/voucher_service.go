package service

import (
	"context"
	"time"

	"storefront-admin/internal/model"
	"storefront-admin/internal/repository"
	"storefront-admin/internal/voucher"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// voucherService implements VoucherService.
type voucherService struct {
	repo      repository.VoucherRepository
	validator voucher.Validator
	now       func() time.Time
	logger    zerolog.Logger
}

// NewVoucherService creates a new voucher service.
func NewVoucherService(repo repository.VoucherRepository, validator voucher.Validator, logger zerolog.Logger) VoucherService {
	return &voucherService{
		repo:      repo,
		validator: validator,
		now:       time.Now,
		logger:    logger.With().Str("service", "voucher").Logger(),
	}
}

// Validate checks a code against a cart total.
func (s *voucherService) Validate(ctx context.Context, req *model.ValidateVoucherRequest) *model.ValidateVoucherResponse {
	result := s.validator.Validate(ctx, req.Code, req.CartTotal)

	return &model.ValidateVoucherResponse{
		Valid:    result.Valid,
		Discount: result.Discount,
		Reason:   string(result.Reason),
		Error:    result.Message,
		Voucher:  result.Voucher,
	}
}

// List retrieves all vouchers, newest first.
func (s *voucherService) List(ctx context.Context) ([]model.Voucher, error) {
	vouchers, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list vouchers")
		return nil, errors.Wrap(err, "failed to list vouchers")
	}

	s.logger.Debug().Int("count", len(vouchers)).Msg("retrieved vouchers")
	return vouchers, nil
}

// Get retrieves a voucher by ID.
func (s *voucherService) Get(ctx context.Context, id uuid.UUID) (*model.Voucher, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("voucher_id", id.String()).Msg("failed to get voucher")
		return nil, errors.Wrap(err, "failed to get voucher")
	}
	if v == nil {
		return nil, model.ErrVoucherNotFound
	}
	return v, nil
}

// Create adds a voucher.
func (s *voucherService) Create(ctx context.Context, in *model.VoucherInput) (*model.Voucher, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}

	now := s.now()
	v := &model.Voucher{
		ID:        uuid.New(),
		TimesUsed: 0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	in.Apply(v)

	if err := s.repo.Create(ctx, v); err != nil {
		if errors.Is(err, model.ErrDuplicateVoucherCode) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to create voucher")
	}

	s.logger.Info().
		Str("voucher_id", v.ID.String()).
		Str("code", v.Code).
		Str("discount_type", string(v.DiscountType)).
		Msg("voucher created")

	return v, nil
}

// Update replaces the editable fields of a voucher.
func (s *voucherService) Update(ctx context.Context, id uuid.UUID, in *model.VoucherInput) (*model.Voucher, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}

	v := &model.Voucher{ID: id}
	in.Apply(v)

	updated, err := s.repo.Update(ctx, v)
	if err != nil {
		if errors.Is(err, model.ErrVoucherNotFound) || errors.Is(err, model.ErrDuplicateVoucherCode) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to update voucher")
	}

	s.logger.Info().Str("voucher_id", id.String()).Str("code", updated.Code).Msg("voucher updated")
	return updated, nil
}

// SetActive enables or disables a voucher.
func (s *voucherService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.Voucher, error) {
	updated, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		if errors.Is(err, model.ErrVoucherNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to update voucher")
	}

	s.logger.Info().Str("voucher_id", id.String()).Bool("active", active).Msg("voucher active flag changed")
	return updated, nil
}

// Delete removes a voucher.
func (s *voucherService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrVoucherNotFound) {
			return err
		}
		return errors.Wrap(err, "failed to delete voucher")
	}

	s.logger.Info().Str("voucher_id", id.String()).Msg("voucher deleted")
	return nil
}
