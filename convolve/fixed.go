package convolve

import (
	"github.com/rasterkit/resize/colorgroup"
	"github.com/rasterkit/resize/planner"
)

// FixedColumns applies a quantized plan along the vertical axis. The
// accumulator starts at planner.RoundingBias (not zero) so the final
// arithmetic right shift rounds half-up instead of always truncating down,
// grounded on the original's ROUNDING_CONST bias.
func FixedColumns[T Sample, J FixedAccum](dst, src []T, width, channels int, plan *planner.QuantizedPlan, maxValue int64, parallel bool) {
	bias := J(planner.RoundingBias)

	run := func(start, end int) error {
		for y := start; y < end; y++ {
			b := plan.Bounds[y]
			weights := plan.Row(y)
			dstRow := dst[y*width*channels : (y+1)*width*channels]

			for x := 0; x < width; x++ {
				acc := colorgroup.Group[J]{R: bias, G: bias, B: bias, A: bias}
				for k := 0; k < b.Size; k++ {
					srcRow := src[(b.Start+k)*width*channels : (b.Start+k+1)*width*channels]
					px := loadSampleFixed[T, J](srcRow[x*channels:], channels)
					acc = acc.MulAdd(px, J(weights[k]))
				}
				narrowed := colorgroup.Shr(acc, uint(planner.FixedPrecisionBits))
				r, g, bl, a := colorgroup.SaturateFixed[T](narrowed, maxValue)
				storeSample(dstRow[x*channels:], channels, r, g, bl, a)
			}
		}
		return nil
	}

	if parallel {
		_ = partitionRows(plan.OutSize, run)
		return
	}
	_ = run(0, plan.OutSize)
}

// FixedRows applies a quantized plan along the horizontal axis.
func FixedRows[T Sample, J FixedAccum](dst, src []T, height, channels int, plan *planner.QuantizedPlan, maxValue int64, parallel bool) {
	bias := J(planner.RoundingBias)
	srcWidth := 0
	if height > 0 {
		srcWidth = len(src) / height / channels
	}
	dstWidth := plan.OutSize

	run := func(start, end int) error {
		for y := start; y < end; y++ {
			srcRow := src[y*srcWidth*channels : (y+1)*srcWidth*channels]
			dstRow := dst[y*dstWidth*channels : (y+1)*dstWidth*channels]

			for x := 0; x < dstWidth; x++ {
				b := plan.Bounds[x]
				weights := plan.Row(x)
				acc := colorgroup.Group[J]{R: bias, G: bias, B: bias, A: bias}
				for k := 0; k < b.Size; k++ {
					px := loadSampleFixed[T, J](srcRow[(b.Start+k)*channels:], channels)
					acc = acc.MulAdd(px, J(weights[k]))
				}
				narrowed := colorgroup.Shr(acc, uint(planner.FixedPrecisionBits))
				r, g, bl, a := colorgroup.SaturateFixed[T](narrowed, maxValue)
				storeSample(dstRow[x*channels:], channels, r, g, bl, a)
			}
		}
		return nil
	}

	if parallel {
		_ = partitionRows(height, run)
		return
	}
	_ = run(0, height)
}

func loadSampleFixed[T Sample, J FixedAccum](src []T, channels int) colorgroup.Group[J] {
	var g colorgroup.Group[J]
	if channels > 0 {
		g.R = J(src[0])
	}
	if channels > 1 {
		g.G = J(src[1])
	}
	if channels > 2 {
		g.B = J(src[2])
	}
	if channels > 3 {
		g.A = J(src[3])
	}
	return g
}
