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

type provinceRepository struct {
	db *sqlx.DB
}

func newProvinceRepository(db *sqlx.DB) *provinceRepository {
	return &provinceRepository{
		db: db,
	}
}

func (r *provinceRepository) Create(ctx context.Context, province *domain.Province) error {
	const query = `
	INSERT INTO province (id, name) VALUES (uuid_to_bin(?), ?);
	`
	result, err := r.db.ExecContext(ctx, query, province.ID, province.Name)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert province: %w", err)
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

func (r *provinceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Province, error) {
	const query = `
	SELECT bin_to_uuid(id) as id, name, created_at, updated_at FROM province WHERE id = uuid_to_bin(?);
	`
	var province domain.Province
	if err := r.db.GetContext(ctx, &province, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from province by id failed: %w", err)
	}
	return &province, nil
}

func (r *provinceRepository) GetByName(ctx context.Context, name string) (*domain.Province, error) {
	const query = `
	SELECT bin_to_uuid(id) as id, name, created_at, updated_at FROM province WHERE name = ?;
	`
	var province domain.Province
	if err := r.db.GetContext(ctx, &province, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from province by name failed: %w", err)
	}
	return &province, nil
}

func (r *provinceRepository) GetAll(ctx context.Context, search string) ([]domain.Province, error) {
	query := `
	SELECT bin_to_uuid(id) as id, name, created_at, updated_at FROM province`

	args := []interface{}{}
	if search != "" {
		query += ` WHERE name LIKE ?`
		args = append(args, "%"+escapeLike(search)+"%")
	}
	query += ` ORDER BY name ASC;`

	var provinces []domain.Province
	if err := r.db.SelectContext(ctx, &provinces, query, args...); err != nil {
		return nil, fmt.Errorf("select provinces failed: %w", err)
	}
	return provinces, nil
}

// escapeLike neutralizes LIKE metacharacters so a search term matches
// literally. Without it a term like "100%" behaves as a wildcard here while
// the in-memory store matches it verbatim.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}

func (r *provinceRepository) Update(ctx context.Context, province *domain.Province) error {
	const query = `
	UPDATE province SET name = ? WHERE id = uuid_to_bin(?);
	`
	_, err := r.db.ExecContext(ctx, query, province.Name, province.ID)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db update province: %w", err)
	}
	return nil
}

// Delete removes the province and its cities in one transaction so no reader
// ever observes a city whose province is gone. The schema's ON DELETE CASCADE
// covers the same ground at the engine level; the explicit child delete keeps
// the cascade visible and all-or-nothing regardless of FK configuration.
func (r *provinceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete province tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM city WHERE province_id = uuid_to_bin(?);`, id); err != nil {
		return fmt.Errorf("db delete cities of province: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM province WHERE id = uuid_to_bin(?);`, id)
	if err != nil {
		return fmt.Errorf("db delete province: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete province tx: %w", err)
	}
	return nil
}

func (r *provinceRepository) Count(ctx context.Context) (int64, error) {
	const query = `
	SELECT COUNT(*) FROM province;
	`
	var count int64
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count provinces failed: %w", err)
	}
	return count, nil
}
