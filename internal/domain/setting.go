package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// SettingScope defines who owns a setting
type SettingScope string

const (
	ScopeServer  SettingScope = "server"
	ScopeCompany SettingScope = "company"
)

// SettingDataType defines the type a setting value must coerce to
type SettingDataType string

const (
	DataTypeString  SettingDataType = "string"
	DataTypeNumber  SettingDataType = "number"
	DataTypeBoolean SettingDataType = "boolean"
	DataTypeObject  SettingDataType = "object"
)

// Setting represents a single typed configuration entry of a company.
// Settings are seeded from the default set at company creation, mutated
// only via explicit update and never deleted.
type Setting struct {
	ID          int64
	Code        string
	Scope       SettingScope
	DataType    SettingDataType
	Name        string
	Value       interface{}
	Description string
	CompanyCode string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IntValue returns the setting value as an integer.
// JSON decoding yields float64 for numbers, both forms are accepted.
func (s *Setting) IntValue() (int, error) {
	switch v := s.Value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("setting %s: value %q is not an integer", s.Code, v)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("setting %s: value is not a number", s.Code)
	}
}

// StringValue returns the setting value as a string
func (s *Setting) StringValue() (string, error) {
	v, ok := s.Value.(string)
	if !ok {
		return "", fmt.Errorf("setting %s: value is not a string", s.Code)
	}
	return v, nil
}

// BoolValue returns the setting value as a boolean
func (s *Setting) BoolValue() (bool, error) {
	v, ok := s.Value.(bool)
	if !ok {
		return false, fmt.Errorf("setting %s: value is not a boolean", s.Code)
	}
	return v, nil
}

// CoerceValue converts raw into the setting's declared data type.
// Numbers are truncated to positive-friendly integers the same way the
// admin panel always has (minutes, seconds and similar counters).
func CoerceValue(dataType SettingDataType, raw interface{}) (interface{}, error) {
	switch dataType {
	case DataTypeString:
		v, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("value must be a string")
		}
		return v, nil

	case DataTypeNumber:
		switch v := raw.(type) {
		case int:
			return v, nil
		case int64:
			return int(v), nil
		case float64:
			return int(v), nil
		case json.Number:
			f, err := v.Float64()
			if err != nil {
				return nil, fmt.Errorf("value must be a number")
			}
			return int(f), nil
		case string:
			// Исторически панель отправляет числа строками
			var n json.Number = json.Number(v)
			f, err := n.Float64()
			if err != nil {
				return nil, fmt.Errorf("value must be a number")
			}
			return int(f), nil
		default:
			return nil, fmt.Errorf("value must be a number")
		}

	case DataTypeBoolean:
		v, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("value must be a boolean")
		}
		return v, nil

	case DataTypeObject:
		switch raw.(type) {
		case map[string]interface{}, []interface{}:
			return raw, nil
		default:
			return nil, fmt.Errorf("value must be an object")
		}

	default:
		return nil, fmt.Errorf("unknown data type %q", dataType)
	}
}
