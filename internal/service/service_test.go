package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/canref/backend/internal/cache"
	"github.com/canref/backend/internal/domain"
	"github.com/canref/backend/internal/repository"
)

type ServiceSuite struct {
	suite.Suite
	services *Services
	ctx      context.Context
}

func (s *ServiceSuite) SetupTest() {
	s.services = NewServices(Deps{Repos: repository.NewMemoryRepositories()})
	s.ctx = context.Background()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) TestProvinceLifecycle() {
	s.Run("create stamps id and timestamps", func() {
		province, err := s.services.Provinces.Create(s.ctx, "Alberta")
		s.Require().NoError(err)
		s.NotEqual(uuid.Nil, province.ID)
		s.False(province.CreatedAt.IsZero())
		s.False(province.UpdatedAt.IsZero())
	})

	s.Run("duplicate name translates to ErrProvinceNameTaken", func() {
		_, err := s.services.Provinces.Create(s.ctx, "Alberta")
		s.Require().ErrorIs(err, ErrProvinceNameTaken)
	})

	s.Run("name is trimmed before persisting", func() {
		province, err := s.services.Provinces.Create(s.ctx, "  Yukon  ")
		s.Require().NoError(err)
		s.Equal("Yukon", province.Name)

		_, err = s.services.Provinces.Create(s.ctx, "Yukon")
		s.Require().ErrorIs(err, ErrProvinceNameTaken)
	})

	s.Run("update of a missing province reports not found", func() {
		_, err := s.services.Provinces.Update(s.ctx, uuid.New(), "Nunavut")
		s.Require().ErrorIs(err, ErrProvinceNotFound)
	})

	s.Run("delete of a missing province reports not found", func() {
		err := s.services.Provinces.Delete(s.ctx, uuid.New())
		s.Require().ErrorIs(err, ErrProvinceNotFound)
	})
}

func (s *ServiceSuite) TestCityCreation() {
	alberta, err := s.services.Provinces.Create(s.ctx, "Alberta")
	s.Require().NoError(err)
	ontario, err := s.services.Provinces.Create(s.ctx, "Ontario")
	s.Require().NoError(err)

	s.Run("rejects missing province reference", func() {
		_, err := s.services.Cities.Create(s.ctx, uuid.New(), "Calgary")
		s.Require().ErrorIs(err, ErrProvinceMissing)
	})

	s.Run("second Calgary in Alberta fails, Calgary in Ontario succeeds", func() {
		_, err := s.services.Cities.Create(s.ctx, alberta.ID, "Calgary")
		s.Require().NoError(err)

		_, err = s.services.Cities.Create(s.ctx, alberta.ID, "Calgary")
		s.Require().ErrorIs(err, ErrCityNameTaken)

		_, err = s.services.Cities.Create(s.ctx, ontario.ID, "Calgary")
		s.Require().NoError(err)
	})

	s.Run("trimmed names collide with existing rows", func() {
		_, err := s.services.Cities.Create(s.ctx, alberta.ID, "  Calgary ")
		s.Require().ErrorIs(err, ErrCityNameTaken)
	})
}

func (s *ServiceSuite) TestCityReassignment() {
	alberta, err := s.services.Provinces.Create(s.ctx, "Alberta")
	s.Require().NoError(err)
	ontario, err := s.services.Provinces.Create(s.ctx, "Ontario")
	s.Require().NoError(err)

	_, err = s.services.Cities.Create(s.ctx, ontario.ID, "London")
	s.Require().NoError(err)
	moved, err := s.services.Cities.Create(s.ctx, alberta.ID, "London")
	s.Require().NoError(err)

	s.Run("moving into a province holding the same name fails", func() {
		_, err := s.services.Cities.Update(s.ctx, moved.ID, ontario.ID, "London")
		s.Require().ErrorIs(err, ErrCityNameTaken)
	})

	s.Run("renaming within the province succeeds", func() {
		city, err := s.services.Cities.Update(s.ctx, moved.ID, alberta.ID, "Lethbridge")
		s.Require().NoError(err)
		s.Equal("Lethbridge", city.Name)
	})

	s.Run("moving under a new name succeeds", func() {
		city, err := s.services.Cities.Update(s.ctx, moved.ID, ontario.ID, "Windsor")
		s.Require().NoError(err)
		s.Equal(ontario.ID, city.ProvinceID)
	})

	s.Run("updating a missing city reports not found", func() {
		_, err := s.services.Cities.Update(s.ctx, uuid.New(), alberta.ID, "Anywhere")
		s.Require().ErrorIs(err, ErrCityNotFound)
	})
}

func (s *ServiceSuite) TestProvinceCascade() {
	alberta, err := s.services.Provinces.Create(s.ctx, "Alberta")
	s.Require().NoError(err)
	ontario, err := s.services.Provinces.Create(s.ctx, "Ontario")
	s.Require().NoError(err)

	for _, name := range []string{"Calgary", "Edmonton", "Red Deer"} {
		_, err := s.services.Cities.Create(s.ctx, alberta.ID, name)
		s.Require().NoError(err)
	}
	_, err = s.services.Cities.Create(s.ctx, ontario.ID, "Toronto")
	s.Require().NoError(err)

	s.Require().NoError(s.services.Provinces.Delete(s.ctx, alberta.ID))

	cities, err := s.services.Cities.GetAll(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Len(cities, 1)
	s.Equal("Toronto", cities[0].Name)

	counts, err := s.services.Stats.Counts(s.ctx)
	s.Require().NoError(err)
	s.EqualValues(1, counts.Provinces)
	s.EqualValues(1, counts.Cities)
}

func (s *ServiceSuite) TestNameTakenPredicate() {
	alberta, err := s.services.Provinces.Create(s.ctx, "Alberta")
	s.Require().NoError(err)
	calgary, err := s.services.Cities.Create(s.ctx, alberta.ID, "Calgary")
	s.Require().NoError(err)

	taken, err := s.services.Cities.NameTaken(s.ctx, alberta.ID, "Calgary", nil)
	s.Require().NoError(err)
	s.True(taken)

	// Editing Calgary itself must not flag its own row.
	taken, err = s.services.Cities.NameTaken(s.ctx, alberta.ID, "Calgary", &calgary.ID)
	s.Require().NoError(err)
	s.False(taken)

	taken, err = s.services.Cities.NameTaken(s.ctx, alberta.ID, "Banff", nil)
	s.Require().NoError(err)
	s.False(taken)
}

// recordingCache is a map-backed cache.Cache that remembers which keys were
// written and invalidated.
type recordingCache struct {
	entries     map[string][]byte
	invalidated []string
}

func newRecordingCache() *recordingCache {
	return &recordingCache{entries: make(map[string][]byte)}
}

func (c *recordingCache) GetJSON(_ context.Context, key string, dest interface{}) error {
	raw, ok := c.entries[key]
	if !ok {
		return cache.ErrMiss
	}
	return json.Unmarshal(raw, dest)
}

func (c *recordingCache) SetJSON(_ context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *recordingCache) Invalidate(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.entries, key)
		c.invalidated = append(c.invalidated, key)
	}
	return nil
}

func (c *recordingCache) reset() {
	c.invalidated = nil
}

type CacheSuite struct {
	suite.Suite
	repos    *repository.Repositories
	cache    *recordingCache
	services *Services
	ctx      context.Context
}

func (s *CacheSuite) SetupTest() {
	s.repos = repository.NewMemoryRepositories()
	s.cache = newRecordingCache()
	s.services = NewServices(Deps{Repos: s.repos, Cache: s.cache})
	s.ctx = context.Background()
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheSuite))
}

func (s *CacheSuite) TestProvinceListReadThrough() {
	_, err := s.services.Provinces.Create(s.ctx, "Alberta")
	s.Require().NoError(err)

	provinces, err := s.services.Provinces.GetAll(s.ctx, "")
	s.Require().NoError(err)
	s.Require().Len(provinces, 1)
	s.Contains(s.cache.entries, provincesCacheKey)

	// Insert behind the service's back so a repository read would see it
	// but a cache hit would not.
	err = s.repos.Provinces.Create(s.ctx, &domain.Province{ID: uuid.New(), Name: "Yukon"})
	s.Require().NoError(err)

	provinces, err = s.services.Provinces.GetAll(s.ctx, "")
	s.Require().NoError(err)
	s.Len(provinces, 1, "second read must be served from the cache")

	// A write through the service drops the key and the next read is fresh.
	_, err = s.services.Provinces.Create(s.ctx, "Ontario")
	s.Require().NoError(err)
	provinces, err = s.services.Provinces.GetAll(s.ctx, "")
	s.Require().NoError(err)
	s.Len(provinces, 3)
}

func (s *CacheSuite) TestSearchSkipsCache() {
	_, err := s.services.Provinces.Create(s.ctx, "Alberta")
	s.Require().NoError(err)

	_, err = s.services.Provinces.GetAll(s.ctx, "alb")
	s.Require().NoError(err)
	s.NotContains(s.cache.entries, provincesCacheKey)
}

func (s *CacheSuite) TestWriteInvalidation() {
	alberta, err := s.services.Provinces.Create(s.ctx, "Alberta")
	s.Require().NoError(err)
	calgary, err := s.services.Cities.Create(s.ctx, alberta.ID, "Calgary")
	s.Require().NoError(err)
	edmonton, err := s.services.Cities.Create(s.ctx, alberta.ID, "Edmonton")
	s.Require().NoError(err)

	s.Run("province update drops both list keys", func() {
		s.cache.reset()
		_, err := s.services.Provinces.Update(s.ctx, alberta.ID, "Alberta Renamed")
		s.Require().NoError(err)
		s.Contains(s.cache.invalidated, provincesCacheKey)
		s.Contains(s.cache.invalidated, citiesCacheKey)
	})

	s.Run("city update drops the city list key", func() {
		s.cache.reset()
		_, err := s.services.Cities.Update(s.ctx, calgary.ID, alberta.ID, "Calgary East")
		s.Require().NoError(err)
		s.Contains(s.cache.invalidated, citiesCacheKey)
	})

	s.Run("city delete drops the city list key", func() {
		s.cache.reset()
		s.Require().NoError(s.services.Cities.Delete(s.ctx, edmonton.ID))
		s.Contains(s.cache.invalidated, citiesCacheKey)
	})

	s.Run("province delete drops both list keys", func() {
		s.cache.reset()
		s.Require().NoError(s.services.Provinces.Delete(s.ctx, alberta.ID))
		s.Contains(s.cache.invalidated, provincesCacheKey)
		s.Contains(s.cache.invalidated, citiesCacheKey)
	})
}

// Joined city rows embed the province name, so a province rename must also
// invalidate the city list.
func (s *CacheSuite) TestProvinceRenameRefreshesCityRows() {
	alberta, err := s.services.Provinces.Create(s.ctx, "Alberta")
	s.Require().NoError(err)
	_, err = s.services.Cities.Create(s.ctx, alberta.ID, "Calgary")
	s.Require().NoError(err)

	cities, err := s.services.Cities.GetAll(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Len(cities, 1)
	s.Equal("Alberta", cities[0].ProvinceName)

	_, err = s.services.Provinces.Update(s.ctx, alberta.ID, "Albertania")
	s.Require().NoError(err)

	cities, err = s.services.Cities.GetAll(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Len(cities, 1)
	s.Equal("Albertania", cities[0].ProvinceName)
}

// vanishingProvinceRepo removes the row right after a successful write,
// standing in for a delete racing the post-write read-back.
type vanishingProvinceRepo struct {
	repository.Provinces
}

func (r *vanishingProvinceRepo) Create(ctx context.Context, province *domain.Province) error {
	if err := r.Provinces.Create(ctx, province); err != nil {
		return err
	}
	return r.Provinces.Delete(ctx, province.ID)
}

type vanishingCityRepo struct {
	repository.Cities
}

func (r *vanishingCityRepo) Create(ctx context.Context, city *domain.City) error {
	if err := r.Cities.Create(ctx, city); err != nil {
		return err
	}
	return r.Cities.Delete(ctx, city.ID)
}

func (s *ServiceSuite) TestReadBackAfterRacingDelete() {
	s.Run("province create surfaces not found", func() {
		repos := repository.NewMemoryRepositories()
		repos.Provinces = &vanishingProvinceRepo{Provinces: repos.Provinces}
		services := NewServices(Deps{Repos: repos})

		_, err := services.Provinces.Create(s.ctx, "Alberta")
		s.Require().ErrorIs(err, ErrProvinceNotFound)
	})

	s.Run("city create surfaces not found", func() {
		repos := repository.NewMemoryRepositories()
		services := NewServices(Deps{Repos: repos})
		alberta, err := services.Provinces.Create(s.ctx, "Alberta")
		s.Require().NoError(err)

		repos.Cities = &vanishingCityRepo{Cities: repos.Cities}
		services = NewServices(Deps{Repos: repos})
		_, err = services.Cities.Create(s.ctx, alberta.ID, "Calgary")
		s.Require().ErrorIs(err, ErrCityNotFound)
	})
}
