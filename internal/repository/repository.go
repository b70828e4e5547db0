package repository

import (
	"context"

	"github.com/canref/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Provinces Provinces
	Cities    Cities
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Provinces: newProvinceRepository(db),
		Cities:    newCityRepository(db),
	}
}

type Provinces interface {
	Create(ctx context.Context, province *domain.Province) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Province, error)
	GetByName(ctx context.Context, name string) (*domain.Province, error)
	GetAll(ctx context.Context, search string) ([]domain.Province, error)
	Update(ctx context.Context, province *domain.Province) error
	// Delete removes the province and every city referencing it inside a
	// single transaction.
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type Cities interface {
	Create(ctx context.Context, city *domain.City) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.City, error)
	// GetAll returns cities joined with their owning province's name,
	// optionally filtered to a single province.
	GetAll(ctx context.Context, provinceID *uuid.UUID) ([]domain.CityWithProvince, error)
	Update(ctx context.Context, city *domain.City) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
	// NameTaken reports whether (provinceID, name) collides with an existing
	// city, excluding excludeID when editing a row in place.
	NameTaken(ctx context.Context, provinceID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error)
	Count(ctx context.Context) (int64, error)
}
