package seed

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/canref/backend/internal/domain"
	"github.com/canref/backend/internal/repository"
	"github.com/canref/backend/pkg/logger"
)

type provinceSeed struct {
	name   string
	cities []string
}

// All 13 Canadian provinces and territories with their major cities. Order is
// deterministic: provinces are inserted first and cities reference them
// through the captured id map, never by re-querying names.
var canada = []provinceSeed{
	{"Alberta", []string{"Calgary", "Edmonton", "Red Deer", "Lethbridge"}},
	{"British Columbia", []string{"Vancouver", "Victoria", "Surrey", "Kelowna"}},
	{"Manitoba", []string{"Winnipeg", "Brandon"}},
	{"New Brunswick", []string{"Fredericton", "Moncton", "Saint John"}},
	{"Newfoundland and Labrador", []string{"St. John's", "Corner Brook"}},
	{"Northwest Territories", []string{"Yellowknife"}},
	{"Nova Scotia", []string{"Halifax", "Sydney"}},
	{"Nunavut", []string{"Iqaluit"}},
	{"Ontario", []string{"Toronto", "Ottawa", "Mississauga", "Hamilton", "London"}},
	{"Prince Edward Island", []string{"Charlottetown"}},
	{"Quebec", []string{"Montreal", "Quebec City", "Laval", "Gatineau"}},
	{"Saskatchewan", []string{"Saskatoon", "Regina"}},
	{"Yukon", []string{"Whitehorse"}},
}

// Run loads the reference data in two phases: insert all provinces capturing
// their generated ids, then insert cities through that map. Re-running is
// safe: existing provinces are looked up and existing cities skipped.
func Run(ctx context.Context, repos *repository.Repositories) error {
	provinceIDs := make(map[string]uuid.UUID, len(canada))

	for _, p := range canada {
		existing, err := repos.Provinces.GetByName(ctx, p.name)
		if err == nil {
			provinceIDs[p.name] = existing.ID
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return errors.Wrapf(err, "look up province %q", p.name)
		}

		province := &domain.Province{
			ID:   uuid.New(),
			Name: p.name,
		}
		if err := repos.Provinces.Create(ctx, province); err != nil {
			return errors.Wrapf(err, "seed province %q", p.name)
		}
		provinceIDs[p.name] = province.ID
		logger.Info("seeded province", zap.String("name", p.name))
	}

	for _, p := range canada {
		provinceID := provinceIDs[p.name]
		for _, cityName := range p.cities {
			taken, err := repos.Cities.NameTaken(ctx, provinceID, cityName, nil)
			if err != nil {
				return errors.Wrapf(err, "check city %q in %q", cityName, p.name)
			}
			if taken {
				continue
			}

			city := &domain.City{
				ID:         uuid.New(),
				ProvinceID: provinceID,
				Name:       cityName,
			}
			if err := repos.Cities.Create(ctx, city); err != nil {
				return errors.Wrapf(err, "seed city %q in %q", cityName, p.name)
			}
			logger.Info("seeded city", zap.String("name", cityName), zap.String("province", p.name))
		}
	}

	return nil
}
