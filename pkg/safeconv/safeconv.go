// Package safeconv converts values exported from the script engine into Go
// integers without silent overflow.
package safeconv

import "math"

// MaxInt is the maximum value for int type (platform-dependent).
const MaxInt = int(^uint(0) >> 1)

// MinInt is the minimum value for int type (platform-dependent).
const MinInt = -MaxInt - 1

// MustInt64ToUint64 converts a non-negative int64 to uint64, panics on negative input.
// Use only for sizes and counts.
func MustInt64ToUint64(v int64) uint64 {
	if v < 0 {
		panic("safeconv: negative int64 to uint64 conversion")
	}

	return uint64(v)
}

// ToInt converts an exported engine number to int. Engine numbers arrive as
// int64 when integral and float64 otherwise. Fractional values, NaN, infinities
// and out-of-range values are rejected.
func ToInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		if n > int64(MaxInt) || n < int64(MinInt) {
			return 0, false
		}

		return int(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, false
		}

		if n > float64(MaxInt) || n < float64(MinInt) {
			return 0, false
		}

		return int(n), true
	default:
		return 0, false
	}
}

// ToFloat64 converts an exported engine number to float64.
func ToFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// IsNumber reports whether v is an exported engine number.
func IsNumber(v any) bool {
	_, ok := ToFloat64(v)

	return ok
}
