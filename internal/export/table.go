package export

import (
	"fmt"
	"strings"
	"time"
)

// 导出格式
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Column 导出列定义
type Column[T any] struct {
	Header string
	Value  func(item T) string
}

// Table 待导出的表格（表头 + 数据行）
type Table struct {
	Header []string
	Rows   [][]string
}

// Build 按列定义生成表格
func Build[T any](columns []Column[T], items []T) Table {
	table := Table{
		Header: make([]string, 0, len(columns)),
		Rows:   make([][]string, 0, len(items)),
	}
	for _, col := range columns {
		table.Header = append(table.Header, col.Header)
	}
	for _, item := range items {
		row := make([]string, 0, len(columns))
		for _, col := range columns {
			row = append(row, col.Value(item))
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// Filename 生成 <resource>-<YYYY-MM-DD>.<ext>
func Filename(resource, format string, now time.Time) string {
	return fmt.Sprintf("%s-%s.%s", resource, now.Format("2006-01-02"), format)
}

// ContentType 返回格式对应的 MIME 类型
func ContentType(format string) string {
	if format == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// NormalizeFormat 归一化格式参数，未知格式返回 false
func NormalizeFormat(raw string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", FormatCSV:
		return FormatCSV, true
	case FormatXLSX, "excel":
		return FormatXLSX, true
	default:
		return "", false
	}
}
