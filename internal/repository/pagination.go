package repository

import "gorm.io/gorm"

// applyWindow 应用 limit/offset，非正数表示不限制。
func applyWindow(query *gorm.DB, limit, offset int) *gorm.DB {
	if query == nil {
		return query
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	return query
}
