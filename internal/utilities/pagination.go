package utilities

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Pagination describes one page of a list response
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// PageQuery is the parsed page and limit of a list request
type PageQuery struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip
func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Result builds the Pagination block for total matching rows
func (q PageQuery) Result(total int64) Pagination {
	pages := 0
	if q.Limit > 0 {
		pages = int((total + int64(q.Limit) - 1) / int64(q.Limit))
	}
	return Pagination{Page: q.Page, Limit: q.Limit, Total: total, TotalPages: pages}
}

// ParsePageQuery reads page and limit from the query string.
// Missing or malformed values fall back to page 1 and defaultLimit; limit is capped at maxLimit.
func ParsePageQuery(c *gin.Context, defaultLimit, maxLimit int) PageQuery {
	page := queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	limit := queryInt(c, "limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return PageQuery{Page: page, Limit: limit}
}

// SortClause validates sortBy against allowed columns and returns an ORDER BY clause
func SortClause(c *gin.Context, allowed map[string]string, fallback string) string {
	column, ok := allowed[c.Query("sortBy")]
	if !ok {
		return fallback
	}
	if strings.EqualFold(c.Query("sortOrder"), "asc") {
		return column + " asc"
	}
	return column + " desc"
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return v
}
