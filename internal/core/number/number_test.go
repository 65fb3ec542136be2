package number

import (
	"encoding/json"
	"math"
	"testing"
)

func TestInt(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{"nil", nil, 0},
		{"int", 15, 15},
		{"int64", int64(-6), -6},
		{"uint32", uint32(7), 7},
		{"float", 12.9, 12},
		{"negative float", -3.7, -3},
		{"NaN", math.NaN(), 0},
		{"infinity", math.Inf(1), 0},
		{"negative infinity", math.Inf(-1), 0},
		{"float beyond int", 1e300, 0},
		{"float below int", -1e300, 0},
		{"float at two to the 63", math.Exp2(63), 0},
		{"largest float below two to the 63", math.Nextafter(math.Exp2(63), 0), 1<<63 - 1024},
		{"uint64 beyond int", uint64(1<<63 + 5), 0},
		{"uint64 max int", uint64(math.MaxInt), math.MaxInt},
		{"huge integer string", "99999999999999999999", 0},
		{"exponent string", "1e30", 0},
		{"small exponent string", "1e3", 1000},
		{"numeric string", "13", 13},
		{"padded string", "  -4 ", -4},
		{"decimal string", "8.5", 8},
		{"empty string", "", 0},
		{"garbage", "fast", 0},
		{"json number", json.Number("21"), 21},
		{"true", true, 1},
		{"unsupported", []int{1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Int(tt.value); got != tt.want {
				t.Fatalf("Int(%v) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestBool(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"bool", true, true},
		{"string true", "true", true},
		{"string TRUE", " TRUE ", true},
		{"string yes", "yes", true},
		{"string false", "false", false},
		{"empty", "", false},
		{"number", 1, true},
		{"zero", 0.0, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Bool(tt.value); got != tt.want {
				t.Fatalf("Bool(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
