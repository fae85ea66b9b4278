package convolve

import (
	"github.com/rasterkit/resize/colorgroup"
	"github.com/rasterkit/resize/planner"
)

// Columns applies plan along the vertical axis: src is srcHeight rows of
// width*channels samples, dst is plan.OutSize rows of the same width. Each
// output row is an independent weighted blend of a clamped span of input
// rows, so rows are partitioned across goroutines when parallel is true.
func Columns[T Sample, F FloatAccum](dst, src []T, width, channels int, plan *planner.Plan[F], maxValue int64, parallel bool) {
	run := func(start, end int) error {
		for y := start; y < end; y++ {
			b := plan.Bounds[y]
			weights := plan.Row(y)
			dstRow := dst[y*width*channels : (y+1)*width*channels]

			for x := 0; x < width; x++ {
				var acc colorgroup.Group[F]
				for k := 0; k < b.Size; k++ {
					srcRow := src[(b.Start+k)*width*channels : (b.Start+k+1)*width*channels]
					px := loadSample[T, F](srcRow[x*channels:], channels)
					acc = acc.MulAdd(px, weights[k])
				}
				r, g, bl, a := colorgroup.SaturateFloat[T](acc, maxValue)
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

// Rows applies plan along the horizontal axis: src and dst share srcHeight
// (== the number of rows in src), and each row is resampled independently
// from srcWidth to plan.OutSize samples.
func Rows[T Sample, F FloatAccum](dst, src []T, height, channels int, plan *planner.Plan[F], maxValue int64, parallel bool) {
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
				var acc colorgroup.Group[F]
				for k := 0; k < b.Size; k++ {
					px := loadSample[T, F](srcRow[(b.Start+k)*channels:], channels)
					acc = acc.MulAdd(px, weights[k])
				}
				r, g, bl, a := colorgroup.SaturateFloat[T](acc, maxValue)
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

func loadSample[T Sample, F FloatAccum](src []T, channels int) colorgroup.Group[F] {
	var g colorgroup.Group[F]
	if channels > 0 {
		g.R = F(src[0])
	}
	if channels > 1 {
		g.G = F(src[1])
	}
	if channels > 2 {
		g.B = F(src[2])
	}
	if channels > 3 {
		g.A = F(src[3])
	}
	return g
}

func storeSample[T Sample](dst []T, channels int, r, g, b, a T) {
	if channels > 0 {
		dst[0] = r
	}
	if channels > 1 {
		dst[1] = g
	}
	if channels > 2 {
		dst[2] = b
	}
	if channels > 3 {
		dst[3] = a
	}
}
