package domain

import (
	"time"

	"github.com/google/uuid"
)

type City struct {
	ID         uuid.UUID `db:"id" json:"id"`
	ProvinceID uuid.UUID `db:"province_id" json:"province_id"`
	Name       string    `db:"name" json:"name"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// CityWithProvince is the listing row shape: every city carries its owning
// province's name, fetched in a single joined query.
type CityWithProvince struct {
	City
	ProvinceName string `db:"province_name" json:"province_name"`
}
