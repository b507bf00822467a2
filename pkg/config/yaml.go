package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAMLMap reads a flat YAML mapping of string keys to string values.
// Null values become empty strings so that a key can be declared without a
// value:
//
//	default.msg: ~
//	billing.error: alerts.danger
func LoadYAMLMap(path string) (map[string]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadingFile, err)
	}
	return ParseYAMLMap(content)
}

// ParseYAMLMap parses YAML content into a flat string map.
// Nested mappings and sequences are rejected.
func ParseYAMLMap(content []byte) (map[string]string, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, errors.Join(ErrParsingYAML, err)
	}

	result := make(map[string]string, len(raw))
	for key, val := range raw {
		switch v := val.(type) {
		case nil:
			result[key] = ""
		case string:
			result[key] = v
		case bool, int, int64, uint64, float64:
			result[key] = fmt.Sprint(v)
		default:
			return nil, fmt.Errorf("%w: key %q holds %T", ErrParsingYAML, key, val)
		}
	}
	return result, nil
}
