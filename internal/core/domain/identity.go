package domain

import (
	"encoding/json"
	"math"
	"reflect"
)

// Identity is the payload embedded in an access token: the fields supplied at
// issue time plus the registered iat/exp claims.
type Identity map[string]any

// UserID returns the numeric "id" field. JSON decoding yields float64, so any
// integral numeric representation that fits in int64 is accepted.
func (i Identity) UserID() (int64, bool) {
	return numericID(i["id"])
}

// Role returns the "role" field, or "" when absent.
func (i Identity) Role() Role {
	s, _ := i["role"].(string)
	return Role(s)
}

// numericID accepts any integer kind, an integral float inside the int64
// range, or a json.Number holding an integer.
func numericID(v any) (int64, bool) {
	if n, ok := v.(json.Number); ok {
		id, err := n.Int64()
		return id, err == nil
	}
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		// 2^63 is exactly representable; MaxInt64 is not.
		if f != math.Trunc(f) || f < math.MinInt64 || f >= 1<<63 {
			return 0, false
		}
		return int64(f), true
	default:
		return 0, false
	}
}
