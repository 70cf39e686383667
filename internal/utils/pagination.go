// internal/utils/pagination.go
package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaginationParams struct {
	Offset int `json:"offset"`
	// Limit of 0 means no limit was requested.
	Limit int `json:"limit"`
}

type PaginationMeta struct {
	Total  int64 `json:"total"`
	Limit  int64 `json:"limit"`
	Offset int   `json:"offset"`
}

func GetPaginationParams(c *gin.Context) PaginationParams {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	return PaginationParams{
		Offset: offset,
		Limit:  limit,
	}
}

func ApplyPagination(db *gorm.DB, params PaginationParams) *gorm.DB {
	db = db.Offset(params.Offset)
	if params.Limit > 0 {
		db = db.Limit(params.Limit)
	}
	return db
}

// CreatePaginationMeta echoes the total as the limit when no limit was
// requested, so clients always see the effective page size.
func CreatePaginationMeta(total int64, params PaginationParams) PaginationMeta {
	limit := int64(params.Limit)
	if params.Limit == 0 {
		limit = total
	}

	return PaginationMeta{
		Total:  total,
		Limit:  limit,
		Offset: params.Offset,
	}
}
