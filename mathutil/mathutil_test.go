package mathutil_test

import (
	"math"
	"testing"

	"github.com/rasterkit/resize/mathutil"
)

func TestRoundHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"exact", 4.0, 4.0},
		{"up", 2.5, 3.0},
		{"down-negative", -2.5, -3.0},
		{"below-half", 2.4, 2.0},
		{"above-half", 2.6, 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mathutil.RoundHalfAwayFromZero(tt.in)
			if got != tt.want {
				t.Errorf("RoundHalfAwayFromZero(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundHalfAwayFromZeroFloat32(t *testing.T) {
	got := mathutil.RoundHalfAwayFromZero(float32(1.5))
	if got != 2 {
		t.Errorf("RoundHalfAwayFromZero(1.5) = %v, want 2", got)
	}
}

func TestJincAtZero(t *testing.T) {
	if got := mathutil.Jinc(0); got != 0 {
		t.Errorf("Jinc(0) = %v, want 0", got)
	}
}

func TestJincMatchesKnownZeroCrossing(t *testing.T) {
	// J1's first positive zero crossing (after the origin) is near x ≈ 3.8317.
	got := mathutil.Jinc(3.8317059702075125)
	if math.Abs(got) > 1e-4 {
		t.Errorf("Jinc(first J1 zero) = %v, want ~0", got)
	}
}

func TestDivByHelpers(t *testing.T) {
	tests := []struct {
		name string
		fn   func(uint32) uint32
		in   uint32
		want uint32
	}{
		{"255 exact", mathutil.DivBy255, 255 * 10, 10},
		{"255 max", mathutil.DivBy255, 255 * 255, 255},
		{"1023 exact", mathutil.DivBy1023, 1023 * 7, 7},
		{"4095 exact", mathutil.DivBy4095, 4095 * 3, 3},
		{"65535 exact", mathutil.DivBy65535, 65535 * 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("%s: got %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}
