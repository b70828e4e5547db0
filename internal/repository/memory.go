package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/canref/backend/internal/domain"
)

// NewMemoryRepositories returns map-backed repositories enforcing the same
// constraints as the MySQL schema: unique province names, unique
// (province_id, name) city pairs, foreign-key checks on city writes and
// cascading province deletes. Name comparisons are case-insensitive to match
// MySQL's default utf8mb4 collation. Used by tests and local development.
func NewMemoryRepositories() *Repositories {
	s := &memoryStore{
		provinces: make(map[uuid.UUID]domain.Province),
		cities:    make(map[uuid.UUID]domain.City),
	}
	return &Repositories{
		Provinces: &memoryProvinceRepository{store: s},
		Cities:    &memoryCityRepository{store: s},
	}
}

// memoryStore is shared by both repositories: cascade deletes and
// foreign-key checks need a single lock over both tables.
type memoryStore struct {
	mu        sync.RWMutex
	provinces map[uuid.UUID]domain.Province
	cities    map[uuid.UUID]domain.City
}

func namesEqual(a, b string) bool {
	return strings.EqualFold(a, b)
}

func (s *memoryStore) provinceNameTaken(name string, excludeID uuid.UUID) bool {
	for _, p := range s.provinces {
		if p.ID != excludeID && namesEqual(p.Name, name) {
			return true
		}
	}
	return false
}

func (s *memoryStore) cityNameTaken(provinceID uuid.UUID, name string, excludeID uuid.UUID) bool {
	for _, c := range s.cities {
		if c.ID != excludeID && c.ProvinceID == provinceID && namesEqual(c.Name, name) {
			return true
		}
	}
	return false
}

type memoryProvinceRepository struct {
	store *memoryStore
}

func (r *memoryProvinceRepository) Create(_ context.Context, province *domain.Province) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.provinceNameTaken(province.Name, province.ID) {
		return domain.ErrDuplicateEntry
	}

	now := time.Now()
	province.CreatedAt = now
	province.UpdatedAt = now
	s.provinces[province.ID] = *province
	return nil
}

func (r *memoryProvinceRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Province, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	province, ok := s.provinces[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &province, nil
}

func (r *memoryProvinceRepository) GetByName(_ context.Context, name string) (*domain.Province, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, province := range s.provinces {
		if namesEqual(province.Name, name) {
			return &province, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryProvinceRepository) GetAll(_ context.Context, search string) ([]domain.Province, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	provinces := make([]domain.Province, 0, len(s.provinces))
	for _, province := range s.provinces {
		if search != "" && !strings.Contains(strings.ToLower(province.Name), strings.ToLower(search)) {
			continue
		}
		provinces = append(provinces, province)
	}
	// MySQL orders case-insensitively under utf8mb4's default collation.
	sort.Slice(provinces, func(i, j int) bool {
		return strings.ToLower(provinces[i].Name) < strings.ToLower(provinces[j].Name)
	})
	return provinces, nil
}

func (r *memoryProvinceRepository) Update(_ context.Context, province *domain.Province) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.provinces[province.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if s.provinceNameTaken(province.Name, province.ID) {
		return domain.ErrDuplicateEntry
	}

	stored.Name = province.Name
	stored.UpdatedAt = time.Now()
	s.provinces[province.ID] = stored
	return nil
}

func (r *memoryProvinceRepository) Delete(_ context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.provinces[id]; !ok {
		return domain.ErrNotFound
	}
	for cityID, city := range s.cities {
		if city.ProvinceID == id {
			delete(s.cities, cityID)
		}
	}
	delete(s.provinces, id)
	return nil
}

func (r *memoryProvinceRepository) Count(_ context.Context) (int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.provinces)), nil
}

type memoryCityRepository struct {
	store *memoryStore
}

func (r *memoryCityRepository) Create(_ context.Context, city *domain.City) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.provinces[city.ProvinceID]; !ok {
		return domain.ErrForeignKey
	}
	if s.cityNameTaken(city.ProvinceID, city.Name, city.ID) {
		return domain.ErrDuplicateEntry
	}

	now := time.Now()
	city.CreatedAt = now
	city.UpdatedAt = now
	s.cities[city.ID] = *city
	return nil
}

func (r *memoryCityRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.City, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	city, ok := s.cities[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &city, nil
}

func (r *memoryCityRepository) GetAll(_ context.Context, provinceID *uuid.UUID) ([]domain.CityWithProvince, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	cities := make([]domain.CityWithProvince, 0, len(s.cities))
	for _, city := range s.cities {
		if provinceID != nil && city.ProvinceID != *provinceID {
			continue
		}
		province, ok := s.provinces[city.ProvinceID]
		if !ok {
			continue
		}
		cities = append(cities, domain.CityWithProvince{
			City:         city,
			ProvinceName: province.Name,
		})
	}
	sort.Slice(cities, func(i, j int) bool {
		pi, pj := strings.ToLower(cities[i].ProvinceName), strings.ToLower(cities[j].ProvinceName)
		if pi != pj {
			return pi < pj
		}
		return strings.ToLower(cities[i].Name) < strings.ToLower(cities[j].Name)
	})
	return cities, nil
}

func (r *memoryCityRepository) Update(_ context.Context, city *domain.City) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.cities[city.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if _, ok := s.provinces[city.ProvinceID]; !ok {
		return domain.ErrForeignKey
	}
	// Collision check scoped to the proposed province, not the stored one.
	if s.cityNameTaken(city.ProvinceID, city.Name, city.ID) {
		return domain.ErrDuplicateEntry
	}

	stored.ProvinceID = city.ProvinceID
	stored.Name = city.Name
	stored.UpdatedAt = time.Now()
	s.cities[city.ID] = stored
	return nil
}

func (r *memoryCityRepository) Delete(_ context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cities[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.cities, id)
	return nil
}

func (r *memoryCityRepository) DeleteMany(_ context.Context, ids []uuid.UUID) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for _, id := range ids {
		if _, ok := s.cities[id]; ok {
			delete(s.cities, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *memoryCityRepository) NameTaken(_ context.Context, provinceID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	exclude := uuid.Nil
	if excludeID != nil {
		exclude = *excludeID
	}
	return s.cityNameTaken(provinceID, name, exclude), nil
}

func (r *memoryCityRepository) Count(_ context.Context) (int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.cities)), nil
}
