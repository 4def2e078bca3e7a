package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// Patch 部分更新字段
type Patch map[string]interface{}

// Resource 单个资源组的类型化访问
type Resource[T any] struct {
	c    *Client
	path string
}

// NewResource 创建资源访问器，name 为 /api 下的路径段
func NewResource[T any](c *Client, name string) *Resource[T] {
	return &Resource[T]{c: c, path: "/api/" + strings.Trim(name, "/")}
}

// Path 资源根路径
func (r *Resource[T]) Path() string {
	return r.path
}

// List 全量列表
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	return r.ListAt(ctx, "", nil)
}

// ListAt 子路径列表，如 /active、/user/:id
func (r *Resource[T]) ListAt(ctx context.Context, sub string, query url.Values) ([]T, error) {
	items := make([]T, 0)
	if _, err := r.c.Do(ctx, http.MethodGet, r.path+sub, query, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Search 服务端搜索
func (r *Resource[T]) Search(ctx context.Context, term string) ([]T, error) {
	return r.ListAt(ctx, "/search", url.Values{"q": {term}})
}

// Get 按 ID 获取
func (r *Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	return r.one(ctx, http.MethodGet, "/"+url.PathEscape(id), nil)
}

// Create 创建
func (r *Resource[T]) Create(ctx context.Context, item *T) (*T, error) {
	return r.one(ctx, http.MethodPost, "", item)
}

// Update 部分更新
func (r *Resource[T]) Update(ctx context.Context, id string, patch Patch) (*T, error) {
	return r.one(ctx, http.MethodPut, "/"+url.PathEscape(id), patch)
}

// Delete 删除
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	_, err := r.c.Do(ctx, http.MethodDelete, r.path+"/"+url.PathEscape(id), nil, nil, nil)
	return err
}

// SetStatus 状态更新（PUT /:id/status），返回提示信息
func (r *Resource[T]) SetStatus(ctx context.Context, id, status string) (string, error) {
	return r.c.Do(ctx, http.MethodPut, r.path+"/"+url.PathEscape(id)+"/status", nil, map[string]string{"status": status}, nil)
}

func (r *Resource[T]) one(ctx context.Context, method, sub string, body interface{}) (*T, error) {
	var item T
	if _, err := r.c.Do(ctx, method, r.path+sub, nil, body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
