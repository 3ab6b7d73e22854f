package api

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses the :id path segment as a positive integer.
func pathID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", c.Param("id"))
	}
	return id, nil
}

// queryInt parses an optional integer query parameter, falling back to def
// on absence or garbage.
func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// queryStr returns a pointer to a non-empty query parameter, nil otherwise.
func queryStr(c *gin.Context, name string) *string {
	if v := c.Query(name); v != "" {
		return &v
	}
	return nil
}
