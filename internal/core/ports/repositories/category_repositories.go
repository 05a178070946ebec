package repositories

import (
	"context"

	"finance-tracker/internal/core/domain"
)

// CategoryReader defines read operations for categories.
type CategoryReader interface {
	FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// CategoryWriter defines write operations for categories.
type CategoryWriter interface {
	CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) error
}

// CategoryRepositoryFacade combines all category repository interfaces.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
