// Package colorgroup implements small-vector arithmetic over a fixed
// four-lane color group (R, G, B, A), generic over the accumulator type.
// A runtime channel count C in {1,2,3,4} selects how many lanes of a Group
// are meaningful; lanes beyond C are zero-initialized and never read back.
package colorgroup

// Numeric is the set of accumulator types a Group can hold: the fixed-point
// engine's int32/int64 and the floating engine's float32/float64.
type Numeric interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// Group is a fixed four-lane accumulator, used both as a per-pixel
// convolution accumulator and as a narrow-path saturation intermediate.
type Group[J Numeric] struct {
	R, G, B, A J
}

// Load reads up to 4 channels starting at src[0] into a Group, leaving
// unused lanes at their zero value.
func Load[J Numeric](src []J, channels int) Group[J] {
	var g Group[J]
	if channels > 0 {
		g.R = src[0]
	}
	if channels > 1 {
		g.G = src[1]
	}
	if channels > 2 {
		g.B = src[2]
	}
	if channels > 3 {
		g.A = src[3]
	}
	return g
}

// Store writes the first `channels` lanes of g into dst.
func (g Group[J]) Store(dst []J, channels int) {
	if channels > 0 {
		dst[0] = g.R
	}
	if channels > 1 {
		dst[1] = g.G
	}
	if channels > 2 {
		dst[2] = g.B
	}
	if channels > 3 {
		dst[3] = g.A
	}
}

// Add returns g+o, lane-wise.
func (g Group[J]) Add(o Group[J]) Group[J] {
	return Group[J]{g.R + o.R, g.G + o.G, g.B + o.B, g.A + o.A}
}

// Sub returns g-o, lane-wise.
func (g Group[J]) Sub(o Group[J]) Group[J] {
	return Group[J]{g.R - o.R, g.G - o.G, g.B - o.B, g.A - o.A}
}

// Scale returns g with every lane multiplied by s.
func (g Group[J]) Scale(s J) Group[J] {
	return Group[J]{g.R * s, g.G * s, g.B * s, g.A * s}
}

// MulAdd returns g + x*s, lane-wise — the same a*b+c reduction order as a
// scalar multiply-add, kept explicit (rather than folded into a dot product)
// so accumulation order stays deterministic across kernel sizes.
func (g Group[J]) MulAdd(x Group[J], s J) Group[J] {
	return Group[J]{
		g.R + x.R*s,
		g.G + x.G*s,
		g.B + x.B*s,
		g.A + x.A*s,
	}
}

// Shr returns g with every lane arithmetic-shifted right by n bits. Only
// meaningful for integer J; callers only ever instantiate this for the
// fixed-point engine's int32/int64 accumulators.
func Shr[J ~int32 | ~int64](g Group[J], n uint) Group[J] {
	return Group[J]{g.R >> n, g.G >> n, g.B >> n, g.A >> n}
}
