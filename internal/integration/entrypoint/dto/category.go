// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/duitku/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
	Type string `json:"type" binding:"required,oneof=expense income"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SeedCategoriesResponse represents the response for a seeding run.
type SeedCategoriesResponse struct {
	Message string             `json:"message"`
	Created []CategoryResponse `json:"created"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        cat.ID.String(),
		Name:      cat.Name,
		Type:      string(cat.Type),
		CreatedAt: cat.CreatedAt,
		UpdatedAt: cat.UpdatedAt,
	}
}

// ToCategoryListResponse converts a list of categories to response DTOs.
func ToCategoryListResponse(categories []*entity.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		responses[i] = ToCategoryResponse(cat)
	}
	return responses
}

// ToSeedCategoriesResponse converts the created categories of a seeding run.
func ToSeedCategoriesResponse(created []*entity.Category) SeedCategoriesResponse {
	responses := make([]CategoryResponse, len(created))
	for i, cat := range created {
		responses[i] = ToCategoryResponse(cat)
	}
	return SeedCategoriesResponse{
		Message: "Default categories seeded",
		Created: responses,
	}
}
