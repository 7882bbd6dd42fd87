package helpers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ParseID parses a positive int64 identifier. Anything else is malformed.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// IDParam reads the named path parameter as an identifier.
func IDParam(c *gin.Context, name string) (int64, bool) {
	return ParseID(c.Param(name))
}
