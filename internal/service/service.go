package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/canref/backend/internal/cache"
	"github.com/canref/backend/internal/domain"
	"github.com/canref/backend/internal/repository"
)

type Services struct {
	Provinces Provinces
	Cities    Cities
	Stats     Stats
}

type Deps struct {
	Repos *repository.Repositories
	Cache cache.Cache
}

func NewServices(deps Deps) *Services {
	c := deps.Cache
	if c == nil {
		c = cache.NewNoop()
	}
	return &Services{
		Provinces: newProvinceService(deps.Repos.Provinces, c),
		Cities:    newCityService(deps.Repos.Cities, deps.Repos.Provinces, c),
		Stats:     newStatsService(deps.Repos.Provinces, deps.Repos.Cities),
	}
}

type Provinces interface {
	Create(ctx context.Context, name string) (*domain.Province, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Province, error)
	GetAll(ctx context.Context, search string) ([]domain.Province, error)
	Update(ctx context.Context, id uuid.UUID, name string) (*domain.Province, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Cities interface {
	Create(ctx context.Context, provinceID uuid.UUID, name string) (*domain.City, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.City, error)
	GetAll(ctx context.Context, provinceID *uuid.UUID) ([]domain.CityWithProvince, error)
	Update(ctx context.Context, id uuid.UUID, provinceID uuid.UUID, name string) (*domain.City, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
	// NameTaken is the pre-submission collision check the admin UI calls
	// while a form is being edited. It is advisory only: the composite
	// unique index decides under concurrent writers.
	NameTaken(ctx context.Context, provinceID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error)
}

type EntityCounts struct {
	Provinces int64 `json:"provinces"`
	Cities    int64 `json:"cities"`
}

type Stats interface {
	Counts(ctx context.Context) (*EntityCounts, error)
}
