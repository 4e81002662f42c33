package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const MaxPageSize = 100

// ParsePagination reads page and per_page from the query string.
func ParsePagination(c *gin.Context, defaultPerPage int) (int, int, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 0, 0, ErrInvalidPage
	}

	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
	if err != nil || perPage < 1 || perPage > MaxPageSize {
		return 0, 0, ErrInvalidPageSize
	}

	return page, perPage, nil
}

func TotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func Offset(page, perPage int) int {
	return (page - 1) * perPage
}
