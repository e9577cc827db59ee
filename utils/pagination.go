package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

type Pagination struct {
	Page  int
	Limit int
	Skip  int
}

func GetPagination(c *gin.Context) Pagination {
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "10")

	page, _ := strconv.Atoi(pageStr)
	limit, _ := strconv.Atoi(limitStr)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	skip := (page - 1) * limit

	return Pagination{
		Page:  page,
		Limit: limit,
		Skip:  skip,
	}
}

type PageEnvelope struct {
	CurrentPage  int   `json:"currentPage"`
	ItemsPerPage int   `json:"itemsPerPage"`
	TotalItems   int64 `json:"totalItems"`
	TotalPages   int   `json:"totalPages"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

func BuildEnvelope(p Pagination, totalItems int64) PageEnvelope {
	totalPages := int((totalItems + int64(p.Limit) - 1) / int64(p.Limit))
	return PageEnvelope{
		CurrentPage:  p.Page,
		ItemsPerPage: p.Limit,
		TotalItems:   totalItems,
		TotalPages:   totalPages,
		HasNextPage:  p.Page < totalPages,
		HasPrevPage:  p.Page > 1 && totalItems > 0,
	}
}
