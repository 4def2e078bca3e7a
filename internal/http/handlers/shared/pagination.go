package shared

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// NormalizePagination 归一化分页参数。
func NormalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

// PageWindow 解析可选的 page/page_size 查询参数；未提供 page 时返回 false（返回全量）。
// 页码过大导致偏移溢出时返回 math.MaxInt 偏移，切片结果为空页。
func PageWindow(c *gin.Context) (offset, limit int, ok bool) {
	rawPage := strings.TrimSpace(c.Query("page"))
	if rawPage == "" {
		return 0, 0, false
	}
	page, _ := strconv.Atoi(rawPage)
	pageSize, _ := strconv.Atoi(strings.TrimSpace(c.Query("page_size")))
	page, pageSize = NormalizePagination(page, pageSize)
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt, pageSize, true
	}
	return (page - 1) * pageSize, pageSize, true
}

// SliceWindow 对全量结果做窗口切片，越界或非法偏移返回空切片
func SliceWindow[T any](items []T, offset, limit int) []T {
	if offset < 0 || limit <= 0 || offset >= len(items) {
		return make([]T, 0)
	}
	end := len(items)
	if limit < end-offset {
		end = offset + limit
	}
	return items[offset:end]
}
