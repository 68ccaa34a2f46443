package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"storefront-admin/internal/cache"
	"storefront-admin/internal/model"
	"storefront-admin/internal/repository"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Mutations bump the version counter, so a listing read before a mutation
// can only be written under a version no reader asks for again.
const activeFAQsVersionKey = "faqs:active:version"

func activeFAQsKey(version int64) string {
	return "faqs:active:v" + strconv.FormatInt(version, 10)
}

// CacheRecorder counts cache hits and misses.
type CacheRecorder interface {
	RecordCacheLookup(cache string, hit bool)
}

// faqService implements FAQService. The public listing is read through the cache
// under a versioned key and every mutation moves to a new version.
type faqService struct {
	repo     repository.FAQRepository
	cache    cache.Cache
	ttl      time.Duration
	recorder CacheRecorder
	now      func() time.Time
	logger   zerolog.Logger
}

// NewFAQService creates a new FAQ service. A nil cache disables caching; recorder may be nil.
func NewFAQService(repo repository.FAQRepository, c cache.Cache, ttl time.Duration, recorder CacheRecorder, logger zerolog.Logger) FAQService {
	if c == nil {
		c = cache.Nop{}
	}
	return &faqService{
		repo:     repo,
		cache:    c,
		ttl:      ttl,
		recorder: recorder,
		now:      time.Now,
		logger:   logger.With().Str("service", "faq").Logger(),
	}
}

// ListActive retrieves published FAQs in display order.
func (s *faqService) ListActive(ctx context.Context) ([]model.FAQ, error) {
	var version int64
	_, err := s.cache.Get(ctx, activeFAQsVersionKey, &version)
	cacheUp := err == nil
	if !cacheUp {
		s.logger.Warn().Err(err).Msg("FAQ cache read failed, falling back to database")
	}

	var faqs []model.FAQ
	if cacheUp {
		hit, err := s.cache.Get(ctx, activeFAQsKey(version), &faqs)
		if err != nil {
			s.logger.Warn().Err(err).Msg("FAQ cache read failed, falling back to database")
		}
		if s.recorder != nil {
			s.recorder.RecordCacheLookup("faqs", hit)
		}
		if hit {
			return faqs, nil
		}
	} else if s.recorder != nil {
		s.recorder.RecordCacheLookup("faqs", false)
	}

	faqs, err = s.repo.List(ctx, true)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list active FAQs")
		return nil, errors.Wrap(err, "failed to list FAQs")
	}

	if cacheUp {
		if err := s.cache.Set(ctx, activeFAQsKey(version), faqs, s.ttl); err != nil {
			s.logger.Warn().Err(err).Msg("failed to populate FAQ cache")
		}
	}

	return faqs, nil
}

// ListAll retrieves every FAQ in display order.
func (s *faqService) ListAll(ctx context.Context) ([]model.FAQ, error) {
	faqs, err := s.repo.List(ctx, false)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list FAQs")
		return nil, errors.Wrap(err, "failed to list FAQs")
	}
	return faqs, nil
}

// Get retrieves a FAQ by ID.
func (s *faqService) Get(ctx context.Context, id uuid.UUID) (*model.FAQ, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("faq_id", id.String()).Msg("failed to get FAQ")
		return nil, errors.Wrap(err, "failed to get FAQ")
	}
	if f == nil {
		return nil, model.ErrFAQNotFound
	}
	return f, nil
}

// Create adds a FAQ.
func (s *faqService) Create(ctx context.Context, in *model.FAQInput) (*model.FAQ, error) {
	if err := normalizeFAQInput(in); err != nil {
		return nil, err
	}

	now := s.now()
	f := &model.FAQ{
		ID:        uuid.New(),
		Question:  in.Question,
		Answer:    in.Answer,
		Active:    in.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, f, in.SortOrder); err != nil {
		return nil, errors.Wrap(err, "failed to create FAQ")
	}
	s.invalidate(ctx)

	s.logger.Info().Str("faq_id", f.ID.String()).Int("sort_order", f.SortOrder).Msg("FAQ created")
	return f, nil
}

// Update replaces a FAQ's question, answer and active flag.
func (s *faqService) Update(ctx context.Context, id uuid.UUID, in *model.FAQInput) (*model.FAQ, error) {
	if err := normalizeFAQInput(in); err != nil {
		return nil, err
	}

	f := &model.FAQ{ID: id, Question: in.Question, Answer: in.Answer, Active: in.Active}
	updated, err := s.repo.Update(ctx, f, in.SortOrder)
	if err != nil {
		if errors.Is(err, model.ErrFAQNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to update FAQ")
	}
	s.invalidate(ctx)

	s.logger.Info().Str("faq_id", id.String()).Msg("FAQ updated")
	return updated, nil
}

// SetActive publishes or hides a FAQ.
func (s *faqService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.FAQ, error) {
	updated, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		if errors.Is(err, model.ErrFAQNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to update FAQ")
	}
	s.invalidate(ctx)

	s.logger.Info().Str("faq_id", id.String()).Bool("active", active).Msg("FAQ active flag changed")
	return updated, nil
}

// Delete removes a FAQ.
func (s *faqService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrFAQNotFound) {
			return err
		}
		return errors.Wrap(err, "failed to delete FAQ")
	}
	s.invalidate(ctx)

	s.logger.Info().Str("faq_id", id.String()).Msg("FAQ deleted")
	return nil
}

// Reorder sets the display order to the order of ids.
func (s *faqService) Reorder(ctx context.Context, ids []string) error {
	if err := checkReorderIDs(ids); err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return model.ErrInvalidReorder
		}
	}

	if err := s.repo.Reorder(ctx, ids); err != nil {
		if errors.Is(err, model.ErrInvalidReorder) {
			return err
		}
		return errors.Wrap(err, "failed to reorder FAQs")
	}
	s.invalidate(ctx)

	return nil
}

func (s *faqService) invalidate(ctx context.Context) {
	version, err := s.cache.Incr(ctx, activeFAQsVersionKey)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate FAQ cache")
		return
	}
	s.logger.Debug().Int64("version", version).Msg("FAQ cache invalidated")
}

func normalizeFAQInput(in *model.FAQInput) error {
	in.Question = strings.TrimSpace(in.Question)
	in.Answer = strings.TrimSpace(in.Answer)
	if in.Question == "" {
		return model.NewValidationError("question is required")
	}
	if in.Answer == "" {
		return model.NewValidationError("answer is required")
	}
	return nil
}
