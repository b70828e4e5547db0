package seed

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/canref/backend/internal/domain"
	"github.com/canref/backend/internal/repository"
)

type SeedSuite struct {
	suite.Suite
	repos *repository.Repositories
	ctx   context.Context
}

func (s *SeedSuite) SetupTest() {
	s.repos = repository.NewMemoryRepositories()
	s.ctx = context.Background()
}

func TestSeedSuite(t *testing.T) {
	suite.Run(t, new(SeedSuite))
}

func (s *SeedSuite) TestLoadsAllProvincesAndCities() {
	s.Require().NoError(Run(s.ctx, s.repos))

	count, err := s.repos.Provinces.Count(s.ctx)
	s.Require().NoError(err)
	s.EqualValues(13, count)

	alberta, err := s.repos.Provinces.GetByName(s.ctx, "Alberta")
	s.Require().NoError(err)

	cities, err := s.repos.Cities.GetAll(s.ctx, &alberta.ID)
	s.Require().NoError(err)
	names := make([]string, 0, len(cities))
	for _, c := range cities {
		names = append(names, c.Name)
	}
	s.Contains(names, "Calgary")
	s.Contains(names, "Edmonton")
}

func (s *SeedSuite) TestSeededDataHonoursCompositeUniqueness() {
	s.Require().NoError(Run(s.ctx, s.repos))

	alberta, err := s.repos.Provinces.GetByName(s.ctx, "Alberta")
	s.Require().NoError(err)
	ontario, err := s.repos.Provinces.GetByName(s.ctx, "Ontario")
	s.Require().NoError(err)

	// A second Calgary under Alberta collides; the same name under Ontario
	// does not.
	err = s.repos.Cities.Create(s.ctx, &domain.City{ID: uuid.New(), ProvinceID: alberta.ID, Name: "Calgary"})
	s.Require().ErrorIs(err, domain.ErrDuplicateEntry)

	err = s.repos.Cities.Create(s.ctx, &domain.City{ID: uuid.New(), ProvinceID: ontario.ID, Name: "Calgary"})
	s.Require().NoError(err)
}

func (s *SeedSuite) TestRerunIsIdempotent() {
	s.Require().NoError(Run(s.ctx, s.repos))
	s.Require().NoError(Run(s.ctx, s.repos))

	provinces, err := s.repos.Provinces.Count(s.ctx)
	s.Require().NoError(err)
	s.EqualValues(13, provinces)

	first, err := s.repos.Cities.Count(s.ctx)
	s.Require().NoError(err)

	s.Require().NoError(Run(s.ctx, s.repos))
	again, err := s.repos.Cities.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(first, again)
}

func (s *SeedSuite) TestCascadeAcrossSeededData() {
	s.Require().NoError(Run(s.ctx, s.repos))

	alberta, err := s.repos.Provinces.GetByName(s.ctx, "Alberta")
	s.Require().NoError(err)
	ontario, err := s.repos.Provinces.GetByName(s.ctx, "Ontario")
	s.Require().NoError(err)

	ontarioBefore, err := s.repos.Cities.GetAll(s.ctx, &ontario.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.repos.Provinces.Delete(s.ctx, alberta.ID))

	albertaAfter, err := s.repos.Cities.GetAll(s.ctx, &alberta.ID)
	s.Require().NoError(err)
	s.Empty(albertaAfter)

	ontarioAfter, err := s.repos.Cities.GetAll(s.ctx, &ontario.ID)
	s.Require().NoError(err)
	s.Len(ontarioAfter, len(ontarioBefore))
}
