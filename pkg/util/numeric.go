package util

import "math"

// Finite returns v, or 0 when v is NaN or infinite. Applied at every engine
// input boundary so malformed numerics degrade to the zero-default policy
// instead of propagating through the arithmetic.
func Finite(v float64) float64 {
	return FiniteDefault(v, 0)
}

// FiniteDefault returns v, or def when v is NaN or infinite.
func FiniteDefault(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// Num reads a numeric value from a diagnostics map, 0 if absent or non-numeric.
func Num(m map[string]any, key string) float64 {
	if m == nil {
		return 0
	}
	switch v := m[key].(type) {
	case float64:
		return Finite(v)
	case float32:
		return Finite(float64(v))
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// Flag reads a boolean value from a diagnostics map, false if absent.
func Flag(m map[string]any, key string) bool {
	if m == nil {
		return false
	}
	v, _ := m[key].(bool)
	return v
}
