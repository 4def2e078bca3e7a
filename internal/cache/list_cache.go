package cache

import (
	"context"
	"time"
)

const defaultListTTL = 5 * time.Minute

var listTTL = defaultListTTL

// SetListTTL 设置启用列表缓存的过期时间，非正数恢复默认值
func SetListTTL(ttl time.Duration) {
	if ttl <= 0 {
		ttl = defaultListTTL
	}
	listTTL = ttl
}

// ListKey 启用列表缓存键，如 list:categories:active
func ListKey(resource, variant string) string {
	if variant == "" {
		return "list:" + resource
	}
	return "list:" + resource + ":" + variant
}

// GetList 读取列表缓存
func GetList[T any](ctx context.Context, key string) ([]T, bool, error) {
	var items []T
	hit, err := GetJSON(ctx, key, &items)
	if err != nil || !hit {
		return nil, false, err
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items, true, nil
}

// SetList 写入列表缓存
func SetList[T any](ctx context.Context, key string, items []T) error {
	if items == nil {
		items = make([]T, 0)
	}
	return SetJSON(ctx, key, items, listTTL)
}
