package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/canref/backend/internal/db"
	"github.com/canref/backend/internal/domain"

	"github.com/go-sql-driver/mysql"
)

type cityRepository struct {
	db *sqlx.DB
}

func newCityRepository(db *sqlx.DB) *cityRepository {
	return &cityRepository{
		db: db,
	}
}

func translateCityWriteError(err error) error {
	var mysqlError *mysql.MySQLError
	if errors.As(err, &mysqlError) {
		switch mysqlError.Number {
		case db.DuplicateEntry:
			return domain.ErrDuplicateEntry
		case db.ForeignKeyViolation:
			return domain.ErrForeignKey
		}
	}
	return nil
}

func (r *cityRepository) Create(ctx context.Context, city *domain.City) error {
	const query = `
	INSERT INTO city (id, province_id, name) VALUES (uuid_to_bin(?), uuid_to_bin(?), ?);
	`
	result, err := r.db.ExecContext(ctx, query, city.ID, city.ProvinceID, city.Name)
	if err != nil {
		if translated := translateCityWriteError(err); translated != nil {
			return translated
		}
		return fmt.Errorf("db insert city: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *cityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.City, error) {
	const query = `
	SELECT bin_to_uuid(id) as id, bin_to_uuid(province_id) as province_id, name, created_at, updated_at
	FROM city WHERE id = uuid_to_bin(?);
	`
	var city domain.City
	if err := r.db.GetContext(ctx, &city, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from city by id failed: %w", err)
	}
	return &city, nil
}

func (r *cityRepository) GetAll(ctx context.Context, provinceID *uuid.UUID) ([]domain.CityWithProvince, error) {
	query := `
	SELECT
		bin_to_uuid(c.id) as id,
		bin_to_uuid(c.province_id) as province_id,
		c.name,
		c.created_at,
		c.updated_at,
		p.name as province_name
	FROM city c
	INNER JOIN province p ON p.id = c.province_id`

	args := []interface{}{}
	if provinceID != nil {
		query += `
	WHERE c.province_id = uuid_to_bin(?)`
		args = append(args, *provinceID)
	}
	query += `
	ORDER BY p.name ASC, c.name ASC;`

	var cities []domain.CityWithProvince
	if err := r.db.SelectContext(ctx, &cities, query, args...); err != nil {
		return nil, fmt.Errorf("select cities failed: %w", err)
	}
	return cities, nil
}

func (r *cityRepository) Update(ctx context.Context, city *domain.City) error {
	const query = `
	UPDATE city SET province_id = uuid_to_bin(?), name = ? WHERE id = uuid_to_bin(?);
	`
	_, err := r.db.ExecContext(ctx, query, city.ProvinceID, city.Name, city.ID)
	if err != nil {
		if translated := translateCityWriteError(err); translated != nil {
			return translated
		}
		return fmt.Errorf("db update city: %w", err)
	}
	return nil
}

func (r *cityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `
	DELETE FROM city WHERE id = uuid_to_bin(?);
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db delete city: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *cityRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	placeholders := make([]string, 0, len(ids))
	args := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		placeholders = append(placeholders, "uuid_to_bin(?)")
		args = append(args, id)
	}

	query := fmt.Sprintf(`DELETE FROM city WHERE id IN (%s);`, strings.Join(placeholders, ", "))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("db bulk delete cities: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected failed: %w", err)
	}
	return rowsAffected, nil
}

func (r *cityRepository) NameTaken(ctx context.Context, provinceID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	query := `
	SELECT EXISTS (
		SELECT 1 FROM city WHERE province_id = uuid_to_bin(?) AND name = ?`
	args := []interface{}{provinceID, name}

	if excludeID != nil {
		query += ` AND id <> uuid_to_bin(?)`
		args = append(args, *excludeID)
	}
	query += `
	);`

	var taken bool
	if err := r.db.GetContext(ctx, &taken, query, args...); err != nil {
		return false, fmt.Errorf("city name collision check failed: %w", err)
	}
	return taken, nil
}

func (r *cityRepository) Count(ctx context.Context) (int64, error) {
	const query = `
	SELECT COUNT(*) FROM city;
	`
	var count int64
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count cities failed: %w", err)
	}
	return count, nil
}
