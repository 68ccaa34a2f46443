package service

import (
	"context"
	"strings"
	"time"

	"storefront-admin/internal/model"
	"storefront-admin/internal/repository"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// paymentMethodService implements PaymentMethodService.
type paymentMethodService struct {
	repo   repository.PaymentMethodRepository
	now    func() time.Time
	logger zerolog.Logger
}

// NewPaymentMethodService creates a new payment method service.
func NewPaymentMethodService(repo repository.PaymentMethodRepository, logger zerolog.Logger) PaymentMethodService {
	return &paymentMethodService{
		repo:   repo,
		now:    time.Now,
		logger: logger.With().Str("service", "payment_method").Logger(),
	}
}

// ListActive retrieves enabled payment methods in display order.
func (s *paymentMethodService) ListActive(ctx context.Context) ([]model.PaymentMethod, error) {
	return s.list(ctx, true)
}

// ListAll retrieves every payment method in display order.
func (s *paymentMethodService) ListAll(ctx context.Context) ([]model.PaymentMethod, error) {
	return s.list(ctx, false)
}

func (s *paymentMethodService) list(ctx context.Context, activeOnly bool) ([]model.PaymentMethod, error) {
	methods, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error().Err(err).Bool("active_only", activeOnly).Msg("failed to list payment methods")
		return nil, errors.Wrap(err, "failed to list payment methods")
	}
	return methods, nil
}

// Get retrieves a payment method by ID.
func (s *paymentMethodService) Get(ctx context.Context, id string) (*model.PaymentMethod, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("payment_method_id", id).Msg("failed to get payment method")
		return nil, errors.Wrap(err, "failed to get payment method")
	}
	if m == nil {
		return nil, model.ErrPaymentMethodNotFound
	}
	return m, nil
}

// Create adds a payment method.
func (s *paymentMethodService) Create(ctx context.Context, in *model.PaymentMethodInput) (*model.PaymentMethod, error) {
	in.ID = strings.TrimSpace(in.ID)
	if in.ID == "" {
		return nil, model.NewValidationError("id is required")
	}

	m, err := paymentMethodFromInput(in.ID, in)
	if err != nil {
		return nil, err
	}
	now := s.now()
	m.CreatedAt = now
	m.UpdatedAt = now

	if err := s.repo.Create(ctx, m); err != nil {
		if errors.Is(err, model.ErrDuplicatePaymentMethod) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to create payment method")
	}

	s.logger.Info().Str("payment_method_id", m.ID).Str("name", m.Name).Msg("payment method created")
	return m, nil
}

// Update replaces the editable fields of a payment method.
func (s *paymentMethodService) Update(ctx context.Context, id string, in *model.PaymentMethodInput) (*model.PaymentMethod, error) {
	m, err := paymentMethodFromInput(id, in)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, m)
	if err != nil {
		if errors.Is(err, model.ErrPaymentMethodNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to update payment method")
	}

	s.logger.Info().Str("payment_method_id", id).Msg("payment method updated")
	return updated, nil
}

// SetActive enables or disables a payment method.
func (s *paymentMethodService) SetActive(ctx context.Context, id string, active bool) (*model.PaymentMethod, error) {
	updated, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		if errors.Is(err, model.ErrPaymentMethodNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to update payment method")
	}

	s.logger.Info().Str("payment_method_id", id).Bool("active", active).Msg("payment method active flag changed")
	return updated, nil
}

// Delete removes a payment method.
func (s *paymentMethodService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrPaymentMethodNotFound) {
			return err
		}
		return errors.Wrap(err, "failed to delete payment method")
	}

	s.logger.Info().Str("payment_method_id", id).Msg("payment method deleted")
	return nil
}

// Reorder sets the display order to the order of ids.
func (s *paymentMethodService) Reorder(ctx context.Context, ids []string) error {
	if err := checkReorderIDs(ids); err != nil {
		return err
	}

	if err := s.repo.Reorder(ctx, ids); err != nil {
		if errors.Is(err, model.ErrInvalidReorder) {
			return err
		}
		return errors.Wrap(err, "failed to reorder payment methods")
	}
	return nil
}

// paymentMethodFromInput trims every field and rejects blank required ones.
// An absent QR code URL is stored as the empty string.
func paymentMethodFromInput(id string, in *model.PaymentMethodInput) (*model.PaymentMethod, error) {
	m := &model.PaymentMethod{
		ID:            id,
		Name:          strings.TrimSpace(in.Name),
		AccountNumber: strings.TrimSpace(in.AccountNumber),
		AccountName:   strings.TrimSpace(in.AccountName),
		Active:        in.Active,
		SortOrder:     in.SortOrder,
	}
	if in.QRCodeURL != nil {
		m.QRCodeURL = strings.TrimSpace(*in.QRCodeURL)
	}

	switch {
	case m.Name == "":
		return nil, model.NewValidationError("name is required")
	case m.AccountNumber == "":
		return nil, model.NewValidationError("account number is required")
	case m.AccountName == "":
		return nil, model.NewValidationError("account name is required")
	}
	return m, nil
}
