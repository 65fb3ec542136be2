// Package number coerces loosely typed form and document values to ints.
//
// Values arrive from web forms, YAML rosters, JSON and structpb payloads as
// strings, floats or ints. Anything that is not a number becomes 0; callers
// rely on that instead of an error.
package number

import (
	"math"
	"strconv"
	"strings"
)

// Int coerces value to an int, defaulting to 0.
//
// Numeric strings are trimmed; decimal strings and floats truncate toward
// zero. NaN, infinities, values outside the int range and non-numeric input
// yield 0.
func Int(value any) int {
	switch v := value.(type) {
	case nil:
		return 0
	case int:
		return v
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	case uint32:
		return fromUint(uint64(v))
	case uint64:
		return fromUint(v)
	case float32:
		return fromFloat(float64(v))
	case float64:
		return fromFloat(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		return fromString(v)
	case interface{ String() string }:
		return fromString(v.String())
	default:
		return 0
	}
}

// Bool coerces value to a flag: true, non-zero numbers and "true"/"yes"/"1".
func Bool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "t", "yes", "y", "1":
			return true
		default:
			return false
		}
	default:
		return Int(value) != 0
	}
}

func fromString(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return fromFloat(f)
}

// fromFloat rejects floats that do not fit in an int. float64(math.MaxInt)
// rounds up to 2^63, so that bound is exclusive.
func fromFloat(f float64) int {
	if math.IsNaN(f) || f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return 0
	}
	return int(f)
}

func fromUint(u uint64) int {
	if u > math.MaxInt {
		return 0
	}
	return int(u)
}
