package services

import (
	"context"
	"fmt"

	"finance-tracker/internal/core/domain"
	portsrepo "finance-tracker/internal/core/ports/repositories"
	"finance-tracker/internal/dto"
)

// CategoryService provides business logic for transaction categories.
type CategoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategory persists a new category.
func (s *CategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	category := domain.Category{
		Name:  req.Name,
		Type:  domain.CategoryType(req.Type),
		Color: req.Color,
	}
	created, err := s.categoryRepo.CreateCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return created, nil
}

// GetCategoryByID retrieves a single category.
func (s *CategoryService) GetCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

// ListCategories retrieves all categories ordered by type, then name.
func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.ListCategories(ctx)
}

// UpdateCategory replaces an existing category's fields.
func (s *CategoryService) UpdateCategory(ctx context.Context, categoryID int64, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category := domain.Category{
		CategoryID: categoryID,
		Name:       req.Name,
		Type:       domain.CategoryType(req.Type),
		Color:      req.Color,
	}
	updated, err := s.categoryRepo.UpdateCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteCategory removes a category.
func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID int64) error {
	return s.categoryRepo.DeleteCategory(ctx, categoryID)
}
