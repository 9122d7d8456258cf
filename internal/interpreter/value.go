package interpreter

import (
	"fmt"
	"strconv"
)

// Stringify renders a MiniLang runtime value the way print displays it.
// Integers never carry a trailing ".0"; floats use Go's shortest
// round-trippable form; nil prints as "null".
func Stringify(value interface{}) string {
	if value == nil {
		return "null"
	}

	switch v := value.(type) {
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// isTruthy implements MiniLang's truthiness rule: nil and false are the
// only falsy values. Zero and the empty string are truthy.
func isTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// isEqual implements MiniLang's == and != semantics. Values of different
// Go types are never equal, except that numeric int64/float64 comparisons
// promote to float64 first.
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	af, aIsNum := toFloat(a)
	bf, bIsNum := toFloat(b)
	if aIsNum && bIsNum {
		return af == bf
	}

	return a == b
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func typeName(value interface{}) string {
	if value == nil {
		return "null"
	}
	switch value.(type) {
	case bool:
		return "bool"
	case int64:
		return "int"
	case float64:
		return "float"
	case string:
		return "string"
	default:
		return "unknown"
	}
}
