package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList 存储在 JSON 列里的字符串列表（图片、服务、日期等）。
type StringList []string

// Value 实现 driver.Valuer，写库时序列化为 JSON
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 实现 sql.Scanner，读库时反序列化
func (l *StringList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// MapList 存储在 JSON 列里的对象列表（婚礼事件、家庭成员、套餐商家映射等）。
// 结构由前端自由定义，后端只存取不解释。
type MapList []map[string]interface{}

// Value 实现 driver.Valuer
func (l MapList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 实现 sql.Scanner
func (l *MapList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// scanJSON 统一处理 MySQL 驱动返回的 []byte / string
func scanJSON(src interface{}, dst interface{}) error {
	if src == nil {
		return nil
	}
	switch v := src.(type) {
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dst)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported json column type %T", src)
	}
}
