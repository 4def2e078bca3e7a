package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListQuery 通用列表查询条件
type ListQuery struct {
	Search  string                 // 模糊搜索词（作用于 SearchColumns）
	Filters map[string]interface{} // 等值过滤（列名 -> 值）
	Order   string                 // 覆盖默认排序
	Limit   int
	Offset  int
	Preload []string
}

// ResourceOptions 资源仓库选项
type ResourceOptions struct {
	DefaultOrder  string
	SearchColumns []string
}

// ResourceRepository 单表资源的通用数据访问接口
type ResourceRepository[T any] interface {
	List(query ListQuery) ([]T, error)
	GetByID(id string) (*T, error)
	Create(entity *T) error
	Patch(id string, patch *T, columns []string) (bool, error)
	Delete(id string) (bool, error)
	Count(filters map[string]interface{}, excludeID string) (int64, error)
}

// GormResourceRepository GORM 实现
type GormResourceRepository[T any] struct {
	db      *gorm.DB
	options ResourceOptions
}

// NewResourceRepository 创建通用资源仓库
func NewResourceRepository[T any](db *gorm.DB, options ResourceOptions) *GormResourceRepository[T] {
	if strings.TrimSpace(options.DefaultOrder) == "" {
		options.DefaultOrder = "created_at DESC"
	}
	return &GormResourceRepository[T]{db: db, options: options}
}

// List 按条件查询列表
func (r *GormResourceRepository[T]) List(query ListQuery) ([]T, error) {
	items := make([]T, 0)
	q := r.db.Model(new(T))
	if len(query.Filters) > 0 {
		q = q.Where(query.Filters)
	}
	if term := strings.TrimSpace(query.Search); term != "" && len(r.options.SearchColumns) > 0 {
		condition, argCount := buildLikeCondition(r.db, r.options.SearchColumns)
		if argCount > 0 {
			pattern := likePattern(dbDialectName(r.db), term)
			q = q.Where(condition, repeatLikeArgs(pattern, argCount)...)
		}
	}
	for _, association := range query.Preload {
		q = q.Preload(association)
	}
	order := strings.TrimSpace(query.Order)
	if order == "" {
		order = r.options.DefaultOrder
	}
	q = applyWindow(q.Order(order), query.Limit, query.Offset)
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID 根据 ID 获取记录，不存在时返回 nil
func (r *GormResourceRepository[T]) GetByID(id string) (*T, error) {
	var entity T
	if err := r.db.Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// Create 创建记录（不级联写入关联）
func (r *GormResourceRepository[T]) Create(entity *T) error {
	return r.db.Omit(clause.Associations).Create(entity).Error
}

// Patch 仅更新 columns 指定的列，零值同样写入
func (r *GormResourceRepository[T]) Patch(id string, patch *T, columns []string) (bool, error) {
	if len(columns) == 0 {
		count, err := r.Count(map[string]interface{}{"id": id}, "")
		return count > 0, err
	}
	if r.hasColumn("updated_at") {
		columns = append(append(make([]string, 0, len(columns)+1), columns...), "updated_at")
	}
	result := r.db.Model(new(T)).
		Where("id = ?", id).
		Select(columns).
		Omit(clause.Associations).
		Updates(patch)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *GormResourceRepository[T]) hasColumn(name string) bool {
	stmt := &gorm.Statement{DB: r.db}
	if err := stmt.Parse(new(T)); err != nil || stmt.Schema == nil {
		return false
	}
	return stmt.Schema.LookUpField(name) != nil
}

// Delete 硬删除，返回是否删除了记录
func (r *GormResourceRepository[T]) Delete(id string) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Count 统计满足等值条件的记录数，可排除指定 ID
func (r *GormResourceRepository[T]) Count(filters map[string]interface{}, excludeID string) (int64, error) {
	var count int64
	q := r.db.Model(new(T))
	if len(filters) > 0 {
		q = q.Where(filters)
	}
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
