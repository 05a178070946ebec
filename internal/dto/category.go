package dto

import (
	"time"

	"finance-tracker/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a new category.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Type  string `json:"type" binding:"required,oneof=income expense"`
	Color string `json:"color" binding:"required"`
}

// UpdateCategoryRequest defines the data for replacing a category.
type UpdateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Type  string `json:"type" binding:"required,oneof=income expense"`
	Color string `json:"color" binding:"required"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO.
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        cat.CategoryID,
		Name:      cat.Name,
		Type:      string(cat.Type),
		Color:     cat.Color,
		CreatedAt: cat.CreatedAt,
	}
}

// ToListCategoryResponse converts a slice of domain.Category to DTOs.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		res[i] = ToCategoryResponse(&cat)
	}
	return res
}
