package pgsql

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCategoryRepository implements the category repository using pgxpool.
type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(db *pgxpool.Pool) *PgxCategoryRepository {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// CreateCategory inserts a new category and returns it with its generated ID.
func (r *PgxCategoryRepository) CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	query := `
		INSERT INTO categories (name, type, color)
		VALUES ($1, $2, $3)
		RETURNING id, name, type, color, created_at;
	`
	var created domain.Category
	err := r.Pool.QueryRow(ctx, query, category.Name, category.Type, category.Color).Scan(
		&created.CategoryID, &created.Name, &created.Type, &created.Color, &created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to insert category: %v", apperrors.ErrPersistence, err)
	}
	return &created, nil
}

// FindCategoryByID retrieves a category by its ID.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	query := `
		SELECT id, name, type, color, created_at
		FROM categories
		WHERE id = $1;
	`
	var category domain.Category
	err := r.Pool.QueryRow(ctx, query, categoryID).Scan(
		&category.CategoryID, &category.Name, &category.Type, &category.Color, &category.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: category %d", apperrors.ErrNotFound, categoryID)
		}
		return nil, fmt.Errorf("%w: failed to find category %d: %v", apperrors.ErrPersistence, categoryID, err)
	}
	return &category, nil
}

// ListCategories retrieves all categories ordered by type, then name.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, type, color, created_at
		FROM categories
		ORDER BY type, name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list categories: %v", apperrors.ErrPersistence, err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.CategoryID, &category.Name, &category.Type, &category.Color, &category.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: failed to scan category: %v", apperrors.ErrPersistence, err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating categories: %v", apperrors.ErrPersistence, err)
	}
	return categories, nil
}

// UpdateCategory replaces a category's fields and returns the updated row.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	query := `
		UPDATE categories
		SET name = $1, type = $2, color = $3
		WHERE id = $4
		RETURNING id, name, type, color, created_at;
	`
	var updated domain.Category
	err := r.Pool.QueryRow(ctx, query, category.Name, category.Type, category.Color, category.CategoryID).Scan(
		&updated.CategoryID, &updated.Name, &updated.Type, &updated.Color, &updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: category %d", apperrors.ErrNotFound, category.CategoryID)
		}
		return nil, fmt.Errorf("%w: failed to update category %d: %v", apperrors.ErrPersistence, category.CategoryID, err)
	}
	return &updated, nil
}

// DeleteCategory removes a category. Transactions referencing it keep their
// row with the category reference cleared by the schema's ON DELETE SET NULL.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE id = $1;`, categoryID)
	if err != nil {
		return fmt.Errorf("%w: failed to delete category %d: %v", apperrors.ErrPersistence, categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: category %d", apperrors.ErrNotFound, categoryID)
	}
	return nil
}
