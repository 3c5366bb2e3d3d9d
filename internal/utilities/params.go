package utilities

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ParseUintParam parses a numeric path parameter and aborts with InvalidId on failure
func ParseUintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		InvalidID(c, err)
		return 0, false
	}
	return uint(id), true
}

// ParseUUIDParam parses a uuid path parameter and aborts with InvalidId on failure
func ParseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		InvalidID(c, err)
		return uuid.Nil, false
	}
	return id, true
}
