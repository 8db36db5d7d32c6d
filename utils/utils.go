package utils

import (
	"math"

	"app/models"
)

// CreatePagination creates the pagination block for a list response.
func CreatePagination(totalItems, page, pageSize int) models.Pagination {
	if pageSize <= 0 {
		pageSize = 10 // Default page size
	}
	if page <= 0 {
		page = 1 // Default page
	}

	totalPages := int(math.Ceil(float64(totalItems) / float64(pageSize)))

	return models.Pagination{
		TotalItems:  totalItems,
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
	}
}
