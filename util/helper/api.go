package helper_util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const maxPageSize = 100

// GetPaginationParams reads limit/offset query parameters, defaulting to a
// 10-row page and capping the page size.
func GetPaginationParams(c *gin.Context) (limit int, offset int, err error) {
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		return 0, 0, err
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		return 0, 0, err
	}
	if limit < 1 || limit > maxPageSize {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset, nil
}
