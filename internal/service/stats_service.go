package service

import (
	"context"

	"github.com/canref/backend/internal/repository"
)

type statsService struct {
	provinceRepository repository.Provinces
	cityRepository     repository.Cities
}

func newStatsService(provinceRepository repository.Provinces, cityRepository repository.Cities) *statsService {
	return &statsService{
		provinceRepository: provinceRepository,
		cityRepository:     cityRepository,
	}
}

func (s *statsService) Counts(ctx context.Context) (*EntityCounts, error) {
	provinces, err := s.provinceRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	cities, err := s.cityRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &EntityCounts{
		Provinces: provinces,
		Cities:    cities,
	}, nil
}
