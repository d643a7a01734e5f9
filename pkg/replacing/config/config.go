package config

import "fmt"

// Policy keys read by Config.Policy.
const (
	KeyReplaceIfNull  = "replace_if_null"
	KeyReplaceIfBlank = "replace_if_blank"
	KeyCatchErrors    = "catch_errors"
)

// Config wraps a map[string]any for type-safe value extraction.
// All accessor methods return default values if the key is missing
// or the value cannot be converted to the requested type.
type Config struct {
	data map[string]any
}

// New creates a Config from the given map.
// If data is nil, an empty Config is returned.
func New(data map[string]any) Config {
	if data == nil {
		data = make(map[string]any)
	}
	return Config{data: data}
}

// String returns the string value for key, or defaultVal if missing or not a string.
func (c Config) String(key, defaultVal string) string {
	v, ok := c.data[key]
	if !ok {
		return defaultVal
	}
	if s, ok := v.(string); ok {
		return s
	}
	return defaultVal
}

// Bool returns the boolean value for key, or defaultVal if missing or not a bool.
func (c Config) Bool(key string, defaultVal bool) bool {
	v, ok := c.data[key]
	if !ok {
		return defaultVal
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultVal
}

// StringMap returns the string table for key, or defaultVal if missing or not convertible.
//
// Accepts:
//   - map[string]string: used directly
//   - map[string]any: scalar values (string, bool, int, int64, float64) are
//     formatted with fmt; any other value type returns defaultVal
//
// YAML scalars such as 2024 or true therefore become "2024" and "true".
func (c Config) StringMap(key string, defaultVal map[string]string) map[string]string {
	v, ok := c.data[key]
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case map[string]string:
		return val
	case map[string]any:
		result := make(map[string]string, len(val))
		for k, item := range val {
			switch s := item.(type) {
			case string:
				result[k] = s
			case bool, int, int64, float64:
				result[k] = fmt.Sprint(s)
			default:
				return defaultVal
			}
		}
		return result
	}
	return defaultVal
}

// Sub returns the nested section for key as a Config.
// A missing or non-map value yields an empty Config.
func (c Config) Sub(key string) Config {
	if m, ok := c.data[key].(map[string]any); ok {
		return New(m)
	}
	return New(nil)
}

// Any returns the raw value for key, or defaultVal if missing.
func (c Config) Any(key string, defaultVal any) any {
	v, ok := c.data[key]
	if !ok {
		return defaultVal
	}
	return v
}

// Has returns true if the key exists in the config.
func (c Config) Has(key string) bool {
	_, ok := c.data[key]
	return ok
}

// Raw returns the underlying map.
// The returned map should not be modified.
func (c Config) Raw() map[string]any {
	return c.data
}

// PolicyFlags holds the three substitution policy switches.
type PolicyFlags struct {
	ReplaceIfNull  bool
	ReplaceIfBlank bool
	CatchErrors    bool
}

// Policy reads the policy switches, each defaulting to true.
func (c Config) Policy() PolicyFlags {
	return PolicyFlags{
		ReplaceIfNull:  c.Bool(KeyReplaceIfNull, true),
		ReplaceIfBlank: c.Bool(KeyReplaceIfBlank, true),
		CatchErrors:    c.Bool(KeyCatchErrors, true),
	}
}
