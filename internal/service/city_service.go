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

const citiesCacheKey = "refdata:cities"

type cityService struct {
	cityRepository     repository.Cities
	provinceRepository repository.Provinces
	cache              cache.Cache
}

func newCityService(cityRepository repository.Cities, provinceRepository repository.Provinces, c cache.Cache) *cityService {
	return &cityService{
		cityRepository:     cityRepository,
		provinceRepository: provinceRepository,
		cache:              c,
	}
}

// Create runs the application-level collision check first for a descriptive
// fast failure, then relies on the composite unique index and foreign key
// during the insert itself, which stay correct under concurrent writers.
func (s *cityService) Create(ctx context.Context, provinceID uuid.UUID, name string) (*domain.City, error) {
	name = strings.TrimSpace(name)

	taken, err := s.cityRepository.NameTaken(ctx, provinceID, name, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrCityNameTaken
	}

	city := &domain.City{
		ID:         uuid.New(),
		ProvinceID: provinceID,
		Name:       name,
	}
	if err := s.cityRepository.Create(ctx, city); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEntry):
			return nil, ErrCityNameTaken
		case errors.Is(err, domain.ErrForeignKey):
			return nil, ErrProvinceMissing
		}
		return nil, err
	}
	s.invalidateLists(ctx)

	return s.reload(ctx, city.ID)
}

// reload fetches a row after a write, translating a miss caused by a
// concurrent delete the same way as the read paths.
func (s *cityService) reload(ctx context.Context, id uuid.UUID) (*domain.City, error) {
	city, err := s.cityRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}
	return city, nil
}

func (s *cityService) GetByID(ctx context.Context, id uuid.UUID) (*domain.City, error) {
	city, err := s.cityRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}
	return city, nil
}

func (s *cityService) GetAll(ctx context.Context, provinceID *uuid.UUID) ([]domain.CityWithProvince, error) {
	if provinceID == nil {
		var cached []domain.CityWithProvince
		if err := s.cache.GetJSON(ctx, citiesCacheKey, &cached); err == nil {
			return cached, nil
		} else if !errors.Is(err, cache.ErrMiss) {
			logger.Warn("cities cache read failed", zap.Error(err))
		}
	}

	cities, err := s.cityRepository.GetAll(ctx, provinceID)
	if err != nil {
		return nil, err
	}

	if provinceID == nil {
		if err := s.cache.SetJSON(ctx, citiesCacheKey, cities); err != nil {
			logger.Warn("cities cache write failed", zap.Error(err))
		}
	}
	return cities, nil
}

// Update scopes the collision check to the proposed province: moving a city
// from P1 to P2 must collide with P2's cities, not P1's.
func (s *cityService) Update(ctx context.Context, id uuid.UUID, provinceID uuid.UUID, name string) (*domain.City, error) {
	name = strings.TrimSpace(name)

	city, err := s.cityRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}

	taken, err := s.cityRepository.NameTaken(ctx, provinceID, name, &id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrCityNameTaken
	}

	city.ProvinceID = provinceID
	city.Name = name
	if err := s.cityRepository.Update(ctx, city); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEntry):
			return nil, ErrCityNameTaken
		case errors.Is(err, domain.ErrForeignKey):
			return nil, ErrProvinceMissing
		}
		return nil, err
	}
	s.invalidateLists(ctx)

	return s.reload(ctx, id)
}

func (s *cityService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.cityRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrCityNotFound
		}
		return err
	}
	s.invalidateLists(ctx)
	return nil
}

func (s *cityService) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	deleted, err := s.cityRepository.DeleteMany(ctx, ids)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		s.invalidateLists(ctx)
	}
	return deleted, nil
}

func (s *cityService) NameTaken(ctx context.Context, provinceID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	return s.cityRepository.NameTaken(ctx, provinceID, strings.TrimSpace(name), excludeID)
}

func (s *cityService) invalidateLists(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, citiesCacheKey); err != nil {
		logger.Warn("cache invalidation failed", zap.Error(err))
	}
}
