package colorgroup

import "github.com/rasterkit/resize/mathutil"

// Sample is the set of pixel channel storage types a resize operates over.
type Sample interface {
	~uint8 | ~uint16 | ~float32 | ~float64
}

// SaturateFixed narrows a fixed-point accumulator group (already rounded and
// shifted down to sample-scale units) to the integer sample type T, clamping
// each lane to [0, hi]. hi is the caller-supplied bit-depth bound (255 for an
// 8-bit sample, 2^b-1 for a b-bit-deep uint16 sample); the clamp is applied
// whatever T is, float destination types included.
func SaturateFixed[T Sample, J ~int32 | ~int64](g Group[J], hi int64) (r, gr, b, a T) {
	return T(clamp64(int64(g.R), 0, hi)),
		T(clamp64(int64(g.G), 0, hi)),
		T(clamp64(int64(g.B), 0, hi)),
		T(clamp64(int64(g.A), 0, hi))
}

func clamp64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SaturateFloat narrows a floating accumulator group to sample type T. For
// integer destination types the lane is rounded half-away-from-zero and
// clamped to [0, hi]; for float destination types hi is ignored and the
// value passes through unclamped (matching spec.md §4.3's "pass-through for
// float destinations").
func SaturateFloat[T Sample, F ~float32 | ~float64](g Group[F], hi int64) (r, gr, b, a T) {
	var z T
	switch any(z).(type) {
	case uint8, uint16:
		return T(clamp64(roundF(g.R), 0, hi)),
			T(clamp64(roundF(g.G), 0, hi)),
			T(clamp64(roundF(g.B), 0, hi)),
			T(clamp64(roundF(g.A), 0, hi))
	default:
		return T(g.R), T(g.G), T(g.B), T(g.A)
	}
}

func roundF[F ~float32 | ~float64](x F) int64 {
	return int64(mathutil.RoundHalfAwayFromZero(x))
}
