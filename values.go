package href

import (
	"maps"
	"slices"
)

// Values maps a query key to a list of values in insertion order.
// Keys are case-sensitive. A key mapped to an empty list is equivalent to
// the key being absent and is dropped when rendering.
type Values map[string][]string

// Get returns values associated with the given key.
// If there are no values associated with the key, Get returns the empty slice.
func (vals Values) Get(key string) []string { return vals[key] }

func (vals Values) First(key string) (string, bool) {
	v := vals[key]
	if len(v) == 0 {
		return "", false
	}
	return v[0], true
}

func (vals Values) Last(key string) (string, bool) {
	v := vals[key]
	if len(v) == 0 {
		return "", false
	}
	return v[len(v)-1], true
}

// Set sets the key to value. It replaces any existing values.
func (vals Values) Set(key, value string) Values {
	vals[key] = []string{value}
	return vals
}

// Append adds value to the end of the key's list, creating the list if needed.
func (vals Values) Append(key, value string) Values {
	vals[key] = append(vals[key], value)
	return vals
}

// Del deletes the values associated with the key.
func (vals Values) Del(key string) Values {
	delete(vals, key)
	return vals
}

// Has checks whether a given key is in the list.
func (vals Values) Has(key string) bool {
	_, ok := vals[key]
	return ok
}

// Keys returns the keys in sorted order, the order rendering emits them in.
func (vals Values) Keys() []string {
	if len(vals) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(vals))
}

// Clear resets the map.
func (vals Values) Clear() Values {
	clear(vals)
	return vals
}

// Clone returns a copy of the map.
func (vals Values) Clone() Values {
	var vals2 Values
	for k, vs := range vals {
		if vals2 == nil {
			vals2 = make(Values, len(vals))
		}
		vals2[k] = make([]string, len(vs))
		copy(vals2[k], vs)
	}
	return vals2
}

// normalized returns the mapping without empty-list keys, nil when nothing
// remains. The value lists are shared, not copied.
func (vals Values) normalized() Values {
	var vals2 Values
	for k, vs := range vals {
		if len(vs) == 0 {
			continue
		}
		if vals2 == nil {
			vals2 = make(Values, len(vals))
		}
		vals2[k] = vs
	}
	return vals2
}
