package planner

import "github.com/rasterkit/resize/kernel"

// FixedPrecisionBits is P in the Q(16-P).P fixed-point weight format: each
// weight is stored as a signed 16-bit integer representing value*2^P.
const FixedPrecisionBits = 15

// RoundingBias is 2^(P-1), added to a fixed-point accumulator before the
// final arithmetic right shift so truncation rounds half-up instead of
// always down.
const RoundingBias = int64(1) << (FixedPrecisionBits - 1)

// QuantizedPlan is a Plan with weights quantized to Q15 signed 16-bit
// fixed point, consumed by the fixed-point convolution engine.
type QuantizedPlan struct {
	AlignedSize int
	OutSize     int
	Bounds      []Bounds
	Weights     []int16
}

// Row returns the quantized weight slots for output sample i.
func (p *QuantizedPlan) Row(i int) []int16 {
	return p.Weights[i*p.AlignedSize : i*p.AlignedSize+p.AlignedSize]
}

// Quantize converts a floating-point Plan's weights to Q15 fixed point.
// Normalization happens in floating point before this call (Build already
// made each row sum to 1); quantization rounds each tap independently and
// does not renormalize afterward, so a row's quantized weights may depart
// from 2^P by up to a handful of ULPs.
func Quantize[F kernel.Float](p Plan[F]) QuantizedPlan {
	const one = int32(1) << FixedPrecisionBits
	out := QuantizedPlan{
		AlignedSize: p.AlignedSize,
		OutSize:     p.OutSize,
		Bounds:      p.Bounds,
		Weights:     make([]int16, len(p.Weights)),
	}

	for i := 0; i < p.OutSize; i++ {
		row := p.Row(i)
		qrow := out.Weights[i*p.AlignedSize : i*p.AlignedSize+p.AlignedSize]
		size := p.Bounds[i].Size

		for j := 0; j < size; j++ {
			q := int32(F(row[j])*F(one) + sign(row[j])*0.5)
			qrow[j] = int16(clampInt32(q, -32768, 32767))
		}
	}
	return out
}

func sign[F kernel.Float](x F) F {
	if x < 0 {
		return -1
	}
	return 1
}

func clampInt32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
