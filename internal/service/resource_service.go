package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/admin-nexus/internal/cache"
	"github.com/admin-nexus/internal/logger"
	"github.com/admin-nexus/internal/repository"

	"gorm.io/gorm"
)

// Patch 部分更新载荷：字段名 -> 原始 JSON 值，只有出现的字段会被合并
type Patch map[string]json.RawMessage

// Fields 返回载荷中的字段名（排序后）
func (p Patch) Fields() []string {
	fields := make([]string, 0, len(p))
	for name := range p {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	return fields
}

// Only 过滤出允许更新的字段
func (p Patch) Only(allowed []string) Patch {
	filtered := make(Patch, len(p))
	for _, name := range allowed {
		if raw, ok := p[name]; ok {
			filtered[name] = raw
		}
	}
	return filtered
}

// ApplyTo 把载荷合并到已有实体上
func (p Patch) ApplyTo(target interface{}) error {
	if len(p) == 0 {
		return nil
	}
	payload, err := json.Marshal(map[string]json.RawMessage(p))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// ResourceSpec 资源服务定义
type ResourceSpec[T any] struct {
	Name      string                          // 资源名，用于日志与缓存键
	Patchable []string                        // 允许部分更新的列
	Unique    func(*T) map[string]interface{} // 需要唯一的列及其值（空字符串跳过）
	Normalize func(*T)                        // 写入前的规范化
	Validate  func(*T) error                  // 标签校验之外的自定义校验
	CacheKeys []string                        // 写操作后需要失效的缓存键
}

// ResourceService 单表资源通用服务
type ResourceService[T any] struct {
	repo repository.ResourceRepository[T]
	spec ResourceSpec[T]
}

// NewResourceService 创建通用资源服务
func NewResourceService[T any](repo repository.ResourceRepository[T], spec ResourceSpec[T]) *ResourceService[T] {
	return &ResourceService[T]{repo: repo, spec: spec}
}

// List 全量列表
func (s *ResourceService[T]) List() ([]T, error) {
	return s.repo.List(repository.ListQuery{})
}

// ListBy 按等值条件查询
func (s *ResourceService[T]) ListBy(filters map[string]interface{}) ([]T, error) {
	return s.repo.List(repository.ListQuery{Filters: filters})
}

// Query 自定义查询
func (s *ResourceService[T]) Query(query repository.ListQuery) ([]T, error) {
	return s.repo.List(query)
}

// Search 文本列不区分大小写的包含匹配
func (s *ResourceService[T]) Search(q string) ([]T, error) {
	term := strings.TrimSpace(q)
	if term == "" {
		return nil, fmt.Errorf("%w: search term is required", ErrInvalidInput)
	}
	return s.repo.List(repository.ListQuery{Search: term})
}

// Get 获取单条
func (s *ResourceService[T]) Get(id string) (*T, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrNotFound
	}
	entity, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, ErrNotFound
	}
	return entity, nil
}

// Create 校验后插入
func (s *ResourceService[T]) Create(entity *T) (*T, error) {
	if entity == nil {
		return nil, ErrInvalidInput
	}
	if s.spec.Normalize != nil {
		s.spec.Normalize(entity)
	}
	if err := s.validate(entity); err != nil {
		return nil, err
	}
	if err := s.checkUnique(entity, ""); err != nil {
		return nil, err
	}
	if err := s.repo.Create(entity); err != nil {
		return nil, translateWriteError(err)
	}
	s.invalidate()
	return entity, nil
}

// Update 合并允许的字段后写回，返回最新记录
func (s *ResourceService[T]) Update(id string, patch Patch) (*T, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	allowed := patch.Only(s.spec.Patchable)
	if len(allowed) == 0 {
		return existing, nil
	}
	if err := allowed.ApplyTo(existing); err != nil {
		return nil, err
	}
	if s.spec.Normalize != nil {
		s.spec.Normalize(existing)
	}
	if err := s.validate(existing); err != nil {
		return nil, err
	}
	if err := s.checkUnique(existing, id); err != nil {
		return nil, err
	}
	return s.write(id, existing, allowed.Fields())
}

// Save 按列写回服务内部已修改的实体
func (s *ResourceService[T]) Save(id string, entity *T, columns []string) (*T, error) {
	if err := s.validate(entity); err != nil {
		return nil, err
	}
	return s.write(id, entity, columns)
}

func (s *ResourceService[T]) write(id string, entity *T, columns []string) (*T, error) {
	ok, err := s.repo.Patch(id, entity, columns)
	if err != nil {
		return nil, translateWriteError(err)
	}
	if !ok {
		return nil, ErrNotFound
	}
	s.invalidate()
	return s.Get(id)
}

// Delete 硬删除
func (s *ResourceService[T]) Delete(id string) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.invalidate()
	return nil
}

// validate 先按模型标签校验，再执行资源自定义校验
func (s *ResourceService[T]) validate(entity *T) error {
	if err := validateStruct(entity); err != nil {
		return err
	}
	if s.spec.Validate == nil {
		return nil
	}
	return s.spec.Validate(entity)
}

func (s *ResourceService[T]) checkUnique(entity *T, excludeID string) error {
	if s.spec.Unique == nil {
		return nil
	}
	for column, value := range s.spec.Unique(entity) {
		if str, ok := value.(string); ok && strings.TrimSpace(str) == "" {
			continue
		}
		count, err := s.repo.Count(map[string]interface{}{column: value}, excludeID)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: %s", ErrConflict, column)
		}
	}
	return nil
}

func (s *ResourceService[T]) invalidate() {
	if len(s.spec.CacheKeys) == 0 {
		return
	}
	if err := cache.Del(context.Background(), s.spec.CacheKeys...); err != nil {
		logger.Warnw("cache_invalidate_failed", "resource", s.spec.Name, "error", err)
	}
}

func translateWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}
