package docstamp

import (
	"fmt"
	"strconv"
	"strings"
)

// StampData holds the values to stamp into a document, keyed by
// placeholder name. Nested maps are addressed with dot paths, e.g.
// "customer.name".
type StampData map[string]interface{}

// lookupValue resolves a dot path against the data. Each path segment must
// name a key in a string-keyed map.
func lookupValue(data StampData, path string) (interface{}, bool) {
	segments := strings.Split(path, ".")
	var current interface{} = map[string]interface{}(data)
	for _, seg := range segments {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// FormatValue converts a stamp value to its text representation.
func FormatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return formatFloat(float64(v))
	case float64:
		return formatFloat(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatFloat renders whole numbers without a decimal point, so a JSON
// value like 42 (decoded as float64) does not stamp as "42.000000".
func formatFloat(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
