package settings

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Section returns the named section or nil if missing or malformed.
func (c Config) Section(name string) Section {
	if c == nil {
		return nil
	}
	switch v := c[name].(type) {
	case Section:
		return v
	case map[string]interface{}:
		return Section(v)
	}
	return nil
}

// RegisterDefaults adds missing keys of defaults to the section without
// overwriting existing values. It reports whether anything was added.
func (c Config) RegisterDefaults(name string, defaults Section) bool {
	if c == nil || defaults == nil {
		return false
	}
	added := false
	section := c.Section(name)
	if section == nil {
		section = make(Section, len(defaults))
		c[name] = section
		added = true
	}
	for key, value := range defaults {
		if _, ok := section[key]; !ok {
			section[key] = copyValue(value)
			added = true
		}
	}
	return added
}

// Set stores value under section/key, creating the section when needed.
func (c Config) Set(name, key string, value interface{}) {
	if c == nil {
		return
	}
	section := c.Section(name)
	if section == nil {
		section = make(Section)
		c[name] = section
	}
	section[key] = value
}

// GetString retrieves a string value.
func (c Config) GetString(name, key, fallback string) string {
	if v, ok := c.Section(name)[key].(string); ok {
		return v
	}
	return fallback
}

// GetInt retrieves an integer value.
func (c Config) GetInt(name, key string, fallback int) int {
	switch v := c.Section(name)[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	case json.Number:
		if parsed, err := v.Int64(); err == nil {
			return int(parsed)
		}
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return parsed
		}
	}
	return fallback
}

// GetFloat retrieves a float value.
func (c Config) GetFloat(name, key string, fallback float64) float64 {
	switch v := c.Section(name)[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		if parsed, err := v.Float64(); err == nil {
			return parsed
		}
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return parsed
		}
	}
	return fallback
}

// GetBool retrieves a boolean value.
func (c Config) GetBool(name, key string, fallback bool) bool {
	switch v := c.Section(name)[key].(type) {
	case bool:
		return v
	case string:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return parsed
		}
	case float64:
		return v != 0
	case int:
		return v != 0
	}
	return fallback
}

// GetStrings retrieves a list of strings. A single string value is split on
// whitespace.
func (c Config) GetStrings(name, key string, fallback []string) []string {
	switch v := c.Section(name)[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		return strings.Fields(v)
	}
	return fallback
}

func copyValue(value interface{}) interface{} {
	switch v := value.(type) {
	case []interface{}:
		return append([]interface{}{}, v...)
	case []string:
		return append([]string{}, v...)
	}
	return value
}
