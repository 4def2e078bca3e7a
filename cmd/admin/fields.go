package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/admin-nexus/internal/export"
	"github.com/admin-nexus/internal/page"
)

// toMap 以 JSON 字段名访问任意实体
func toMap(item interface{}) map[string]interface{} {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil
	}
	out := make(map[string]interface{})
	_ = json.Unmarshal(raw, &out)
	return out
}

func fieldText(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%f", val), "0"), ".")
	default:
		return fmt.Sprint(val)
	}
}

func jsonID[T any](item T) string {
	return fieldText(toMap(item)["id"])
}

// jsonContains 任一字符串字段包含搜索词（忽略大小写）
func jsonContains[T any](item T, term string) bool {
	needle := strings.ToLower(strings.TrimSpace(term))
	for _, v := range toMap(item) {
		if s, ok := v.(string); ok && strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

func fieldEquals[T any](field string) page.FilterFunc[T] {
	return func(item T, value string) bool {
		return strings.EqualFold(fieldText(toMap(item)[field]), value)
	}
}

func fieldColumns[T any](fields ...string) []export.Column[T] {
	cols := make([]export.Column[T], 0, len(fields))
	for _, field := range fields {
		cols = append(cols, export.Column[T]{
			Header: field,
			Value:  func(item T) string { return fieldText(toMap(item)[field]) },
		})
	}
	return cols
}
