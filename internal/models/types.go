package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// JSON 任意结构的 JSON 字段（metadata 等）
type JSON map[string]interface{}

// Value 实现 driver.Valuer 接口
func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan 实现 sql.Scanner 接口
func (j *JSON) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*j = nil
		return nil
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	default:
		return fmt.Errorf("unsupported json column type %T", value)
	}
}

// GormDataType 迁移时使用的列类型
func (JSON) GormDataType() string {
	return "json"
}

// DateLayout 日期字段的短格式
const DateLayout = "2006-01-02"

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	DateLayout,
}

// DateTime 可接受 RFC3339 或 YYYY-MM-DD 的时间字段
type DateTime struct {
	time.Time
}

// NewDateTime 包装时间
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

// ParseDateTime 按支持的格式解析时间文本
func ParseDateTime(raw string) (DateTime, error) {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return DateTime{Time: t}, nil
		}
	}
	return DateTime{}, fmt.Errorf("invalid datetime %q", raw)
}

// MarshalJSON 统一输出 RFC3339
func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.UTC().Format(time.RFC3339))
}

// UnmarshalJSON 解析 RFC3339 或短日期
func (d *DateTime) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		d.Time = time.Time{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDateTime(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value 用于数据库写入
func (d DateTime) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time.UTC(), nil
}

// Scan 用于数据库读取
func (d *DateTime) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		d.Time = time.Time{}
		return nil
	case time.Time:
		d.Time = v
		return nil
	case string:
		parsed, err := ParseDateTime(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDateTime(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return errors.New("unsupported datetime column type")
	}
}

// GormDataType 迁移时使用的列类型
func (DateTime) GormDataType() string {
	return "time"
}

// ensureID 为空主键生成 UUID
func ensureID(id *string) {
	if id != nil && strings.TrimSpace(*id) == "" {
		*id = uuid.NewString()
	}
}
