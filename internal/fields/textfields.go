package fields

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
)

// Map is a text-field bag keyed by field name. Keys are namespaced per
// template variant by convention (pastelTitle, partyTitle, ...) so several
// variants can read from the same persisted record without colliding.
type Map map[string]string

// Get returns the value for key, or "" when the map is nil or the key is absent.
func (m Map) Get(key string) string {
	if m == nil {
		return ""
	}
	return m[key]
}

// Clone returns a shallow copy that never aliases m.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Keys returns the map's keys in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Compact returns a copy of m without empty values.
func (m Map) Compact() Map {
	out := make(Map, len(m))
	for k, v := range m {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// Merge overlays layers left to right: later layers win, but an empty value
// never overwrites a non-empty one.
func Merge(layers ...Map) Map {
	out := Map{}
	for _, layer := range layers {
		for k, v := range layer {
			if v == "" {
				if _, ok := out[k]; !ok {
					out[k] = v
				}
				continue
			}
			out[k] = v
		}
	}
	return out
}

// Value implements driver.Valuer so a Map is stored as JSONB.
func (m Map) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB columns. Non-string JSON values
// (numbers, booleans) are kept in their textual form.
func (m *Map) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*m = Map{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("scan text fields: unsupported type %T", src)
	}

	var loose map[string]any
	if err := json.Unmarshal(raw, &loose); err != nil {
		return fmt.Errorf("scan text fields: %w", err)
	}

	out := make(Map, len(loose))
	for k, v := range loose {
		switch tv := v.(type) {
		case nil:
			out[k] = ""
		case string:
			out[k] = tv
		default:
			b, _ := json.Marshal(tv)
			out[k] = string(b)
		}
	}
	*m = out
	return nil
}
