// Package resize implements a separable-convolution image resampler: a
// closed registry of reconstruction kernels, a weight-table builder, and
// floating- and fixed-point convolution engines joined by a plan-to-pipeline
// driver that runs at most one vertical pass, at most one horizontal pass,
// and allocates at most one intermediate buffer.
package resize

import (
	"math/bits"

	"github.com/rasterkit/resize/colorgroup"
	"github.com/rasterkit/resize/convolve"
	"github.com/rasterkit/resize/kernel"
	"github.com/rasterkit/resize/nearest"
	"github.com/rasterkit/resize/planner"
)

// Sample is the set of pixel channel storage types Resize operates over.
type Sample = colorgroup.Sample

// Resize resamples src (srcWidth x srcHeight, channels-interleaved,
// row-major with no row padding) into dst (dstWidth x dstHeight) using the
// named kernel. channels must be in {1,2,3,4}. bitDepth is the valid sample
// range's upper bound in bits: for T=uint8 it must be 8; for T=uint16 it
// must be in [1,16], and every output sample is clamped to [0, 2^bitDepth-1]
// rather than the full uint16 range; it is ignored for float32/float64
// destinations, which have no finite saturation range. parallel selects
// whether each pass partitions its output rows across goroutines.
//
// The driver picks the fixed-point engine (Q15 weights, int32 accumulator)
// for 8-bit integer samples, and the floating engine otherwise (float32 for
// uint16 and float32 samples, float64 for float64 samples), per spec.md §5's
// "choose fixed-point vs floating from the destination sample type".
func Resize[T Sample](dst, src []T, srcWidth, srcHeight, dstWidth, dstHeight, channels, bitDepth int, fn kernel.Function, parallel bool) error {
	if channels < 1 || channels > 4 {
		return newError(InvalidChannelCount, "channels must be in [1,4], got %d", channels)
	}

	var zero T
	maxValue, err := sampleMaxValue(zero, bitDepth)
	if err != nil {
		return err
	}

	if err := checkOverflow(srcWidth, srcHeight, channels); err != nil {
		return err
	}
	if err := checkOverflow(dstWidth, dstHeight, channels); err != nil {
		return err
	}
	if len(src) != srcWidth*srcHeight*channels {
		return newError(BufferSizeMismatch, "src has %d samples, want %d", len(src), srcWidth*srcHeight*channels)
	}
	if len(dst) != dstWidth*dstHeight*channels {
		return newError(BufferSizeMismatch, "dst has %d samples, want %d", len(dst), dstWidth*dstHeight*channels)
	}

	if srcWidth == dstWidth && srcHeight == dstHeight {
		copy(dst, src)
		return nil
	}

	if fn == kernel.Nearest {
		nearest.Resize(dst, src, srcWidth, srcHeight, dstWidth, dstHeight, channels)
		return nil
	}

	switch any(zero).(type) {
	case uint8:
		return resizeFixed[T, int32](dst, src, srcWidth, srcHeight, dstWidth, dstHeight, channels, maxValue, fn, parallel)
	case uint16:
		return resizeFloat[T, float32](dst, src, srcWidth, srcHeight, dstWidth, dstHeight, channels, maxValue, fn, parallel)
	case float32:
		return resizeFloat[T, float32](dst, src, srcWidth, srcHeight, dstWidth, dstHeight, channels, maxValue, fn, parallel)
	default:
		return resizeFloat[T, float64](dst, src, srcWidth, srcHeight, dstWidth, dstHeight, channels, maxValue, fn, parallel)
	}
}

// sampleMaxValue resolves the [0, max] saturation bound for T given the
// caller's requested bitDepth, per spec.md §6's "Bit-depth constraint": for
// T=uint8, bitDepth is fixed at 8; for T=uint16, bitDepth must be in [1,16];
// for float destinations bitDepth is unconstrained and unused.
func sampleMaxValue[T Sample](zero T, bitDepth int) (int64, error) {
	switch any(zero).(type) {
	case uint8:
		if bitDepth != 8 {
			return 0, newError(InvalidBitDepth, "bit depth must be 8 for an 8-bit integer sample type, got %d", bitDepth)
		}
		return 255, nil
	case uint16:
		if bitDepth < 1 || bitDepth > 16 {
			return 0, newError(InvalidBitDepth, "bit depth must be in [1,16], got %d", bitDepth)
		}
		return int64(1)<<uint(bitDepth) - 1, nil
	default:
		return 0, nil
	}
}

func checkOverflow(width, height, channels int) error {
	hi, wc := bits.Mul(uint(width), uint(channels))
	if hi != 0 {
		return newError(DimensionOverflow, "width(%d) * channels(%d) overflows", width, channels)
	}
	hi, _ = bits.Mul(wc, uint(height))
	if hi != 0 {
		return newError(DimensionOverflow, "width(%d) * channels(%d) * height(%d) overflows", width, channels, height)
	}
	return nil
}

func resizeFloat[T Sample, F convolve.FloatAccum](dst, src []T, srcWidth, srcHeight, dstWidth, dstHeight, channels int, maxValue int64, fn kernel.Function, parallel bool) error {
	vertical := srcHeight != dstHeight
	horizontal := srcWidth != dstWidth

	switch {
	case vertical && horizontal:
		vPlan := planner.Build[F](fn, srcHeight, dstHeight)
		mid := make([]T, srcWidth*dstHeight*channels)
		convolve.Columns[T, F](mid, src, srcWidth, channels, &vPlan, maxValue, parallel)

		hPlan := planner.Build[F](fn, srcWidth, dstWidth)
		convolve.Rows[T, F](dst, mid, dstHeight, channels, &hPlan, maxValue, parallel)
	case vertical:
		vPlan := planner.Build[F](fn, srcHeight, dstHeight)
		convolve.Columns[T, F](dst, src, srcWidth, channels, &vPlan, maxValue, parallel)
	case horizontal:
		hPlan := planner.Build[F](fn, srcWidth, dstWidth)
		convolve.Rows[T, F](dst, src, srcHeight, channels, &hPlan, maxValue, parallel)
	}
	return nil
}

func resizeFixed[T Sample, J convolve.FixedAccum](dst, src []T, srcWidth, srcHeight, dstWidth, dstHeight, channels int, maxValue int64, fn kernel.Function, parallel bool) error {
	vertical := srcHeight != dstHeight
	horizontal := srcWidth != dstWidth

	switch {
	case vertical && horizontal:
		vPlan := planner.Quantize(planner.Build[float64](fn, srcHeight, dstHeight))
		mid := make([]T, srcWidth*dstHeight*channels)
		convolve.FixedColumns[T, J](mid, src, srcWidth, channels, &vPlan, maxValue, parallel)

		hPlan := planner.Quantize(planner.Build[float64](fn, srcWidth, dstWidth))
		convolve.FixedRows[T, J](dst, mid, dstHeight, channels, &hPlan, maxValue, parallel)
	case vertical:
		vPlan := planner.Quantize(planner.Build[float64](fn, srcHeight, dstHeight))
		convolve.FixedColumns[T, J](dst, src, srcWidth, channels, &vPlan, maxValue, parallel)
	case horizontal:
		hPlan := planner.Quantize(planner.Build[float64](fn, srcWidth, dstWidth))
		convolve.FixedRows[T, J](dst, src, srcHeight, channels, &hPlan, maxValue, parallel)
	}
	return nil
}
