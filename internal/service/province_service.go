package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/canref/backend/internal/cache"
	"github.com/canref/backend/internal/domain"
	"github.com/canref/backend/internal/repository"
	"github.com/canref/backend/pkg/logger"
)

const provincesCacheKey = "refdata:provinces"

type provinceService struct {
	provinceRepository repository.Provinces
	cache              cache.Cache
}

func newProvinceService(provinceRepository repository.Provinces, c cache.Cache) *provinceService {
	return &provinceService{
		provinceRepository: provinceRepository,
		cache:              c,
	}
}

func (s *provinceService) Create(ctx context.Context, name string) (*domain.Province, error) {
	province := &domain.Province{
		ID:   uuid.New(),
		Name: strings.TrimSpace(name),
	}

	if err := s.provinceRepository.Create(ctx, province); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrProvinceNameTaken
		}
		return nil, err
	}
	s.invalidateLists(ctx)

	// Timestamps are stamped by the storage layer, so read the row back.
	return s.reload(ctx, province.ID)
}

// reload fetches a row after a write. A concurrent delete can make the row
// vanish between the write and the read-back, so the miss is translated the
// same way as on the read paths.
func (s *provinceService) reload(ctx context.Context, id uuid.UUID) (*domain.Province, error) {
	province, err := s.provinceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrProvinceNotFound
		}
		return nil, err
	}
	return province, nil
}

func (s *provinceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Province, error) {
	province, err := s.provinceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrProvinceNotFound
		}
		return nil, err
	}
	return province, nil
}

func (s *provinceService) GetAll(ctx context.Context, search string) ([]domain.Province, error) {
	// Only the unfiltered list is cached; searches hit the repository.
	if search == "" {
		var cached []domain.Province
		if err := s.cache.GetJSON(ctx, provincesCacheKey, &cached); err == nil {
			return cached, nil
		} else if !errors.Is(err, cache.ErrMiss) {
			logger.Warn("provinces cache read failed", zap.Error(err))
		}
	}

	provinces, err := s.provinceRepository.GetAll(ctx, search)
	if err != nil {
		return nil, err
	}

	if search == "" {
		if err := s.cache.SetJSON(ctx, provincesCacheKey, provinces); err != nil {
			logger.Warn("provinces cache write failed", zap.Error(err))
		}
	}
	return provinces, nil
}

func (s *provinceService) Update(ctx context.Context, id uuid.UUID, name string) (*domain.Province, error) {
	province, err := s.provinceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrProvinceNotFound
		}
		return nil, err
	}

	province.Name = strings.TrimSpace(name)
	if err := s.provinceRepository.Update(ctx, province); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrProvinceNameTaken
		}
		return nil, err
	}
	s.invalidateLists(ctx)

	return s.reload(ctx, id)
}

func (s *provinceService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.provinceRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrProvinceNotFound
		}
		return err
	}
	s.invalidateLists(ctx)
	return nil
}

// invalidateLists drops both list caches: a province write changes the
// province list, and via the cascade or the joined province name it can
// change city rows too.
func (s *provinceService) invalidateLists(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, provincesCacheKey, citiesCacheKey); err != nil {
		logger.Warn("cache invalidation failed", zap.Error(err))
	}
}
