// Package planner builds per-axis weight tables ("plans") from a continuous
// kernel: for every output sample it determines which input samples
// contribute and with what normalized weight, so the convolution engines in
// resize/convolve never touch the kernel math directly.
package planner

import (
	"math"

	"github.com/rasterkit/resize/kernel"
)

// Bounds is the clamped input span [Start, Start+Size) that contributes to
// one output sample.
type Bounds struct {
	Start int
	Size  int
}

// Plan is one axis's complete weight table: AlignedSize is the uniform
// stride between rows of Weights (every output sample gets the same number
// of weight slots even though Bounds[i].Size may be smaller for samples near
// an edge — the unused tail slots are left zero), Bounds[i] says which input
// samples the row Weights[i*AlignedSize:i*AlignedSize+AlignedSize] refers to,
// and FilterRadius is the half-width of the input span scanned around each
// output sample's center.
type Plan[F kernel.Float] struct {
	AlignedSize  int
	OutSize      int
	Bounds       []Bounds
	Weights      []F
	FilterRadius F
}

// Row returns the weight slots for output sample i.
func (p *Plan[F]) Row(i int) []F {
	return p.Weights[i*p.AlignedSize : i*p.AlignedSize+p.AlignedSize]
}

// Build constructs the weight table for resampling an axis of length inSize
// to outSize samples under the named kernel function, following the
// resizable-kernel scale cutoff and optional-window evaluation from
// resize/kernel's registry (spec.md §4.2), plus the OpenCV INTER_AREA-style
// path used when the registry entry is an area filter and the axis is being
// upscaled.
func Build[F kernel.Float](fn kernel.Function, inSize, outSize int) Plan[F] {
	filter := kernel.GetFilter[F](fn)
	scale := F(inSize) / F(outSize)

	isArea := filter.IsAreaFilter && scale < 1
	if isArea {
		return buildArea[F](filter, scale, inSize, outSize)
	}
	return buildGeneral[F](filter, scale, inSize, outSize)
}

func buildGeneral[F kernel.Float](filter kernel.Filter[F], scale F, inSize, outSize int) Plan[F] {
	filterScaleCutoff := F(1)
	if filter.IsResizable && scale > 1 {
		filterScaleCutoff = scale
	}

	filterBaseSize := filter.MinKernelSize * 2
	kernelSize := int(math.Round(float64(filterBaseSize) * float64(filterScaleCutoff)))
	if kernelSize < 1 {
		kernelSize = 1
	}
	filterRadius := F(kernelSize) / 2
	filterScale := 1 / filterScaleCutoff

	blurScale := F(1)
	if filter.Window != nil {
		if filter.Window.Blur > 0 {
			blurScale = 1 / filter.Window.Blur
		} else {
			blurScale = 0
		}
	}

	bounds := make([]Bounds, outSize)
	weights := make([]F, kernelSize*outSize)
	local := make([]F, kernelSize)

	for i := range bounds {
		centerX := (F(i) + 0.5) * scale
		if centerX > F(inSize) {
			centerX = F(inSize)
		}

		start := int(math.Floor(float64(centerX - filterRadius)))
		if start < 0 {
			start = 0
		}
		end := int(math.Ceil(float64(centerX + filterRadius)))
		if end > inSize {
			end = inSize
		}
		if end > start+kernelSize {
			end = start + kernelSize
		}

		center := centerX - 0.5
		var weightsSum F

		for idx, k := 0, start; k < end; idx, k = idx+1, k+1 {
			dx := F(k) - center
			var w F
			if filter.Window != nil {
				x := absF(dx)
				if filter.Window.Blur > 0 {
					x *= blurScale
				}
				if x <= filter.Window.Taper {
					x = 0
				} else {
					x = (x - filter.Window.Taper) / (1 - filter.Window.Taper)
				}
				xKernelScaled := x * filterScale
				var win F
				if x < filter.Window.Size {
					win = filter.Window.Func(xKernelScaled * filter.Window.Size)
				}
				w = win * filter.Kernel(xKernelScaled)
			} else {
				w = filter.Kernel(absF(dx) * filterScale)
			}
			weightsSum += w
			local[idx] = w
		}

		size := end - start
		bounds[i] = Bounds{Start: start, Size: size}

		row := weights[i*kernelSize : i*kernelSize+kernelSize]
		if weightsSum != 0 {
			recip := 1 / weightsSum
			for j := 0; j < size; j++ {
				row[j] = local[j] * recip
			}
		} else if size > 0 {
			row[0] = 1
		}
	}

	return Plan[F]{
		AlignedSize:  kernelSize,
		OutSize:      outSize,
		Bounds:       bounds,
		Weights:      weights,
		FilterRadius: filterRadius,
	}
}

// buildArea mirrors OpenCV's INTER_AREA two-tap upscale weighting: every
// output sample blends at most two adjacent input samples, weighted by how
// much of the output sample's footprint each one covers.
func buildArea[F kernel.Float](filter kernel.Filter[F], scale F, inSize, outSize int) Plan[F] {
	const kernelSize = 2
	invScale := 1 / scale

	bounds := make([]Bounds, outSize)
	weights := make([]F, kernelSize*outSize)

	for i := range bounds {
		sx := math.Floor(float64(F(i) * scale))
		fx := F(i+1) - (F(sx)+1)*invScale
		var dx F
		if fx <= 0 {
			dx = 0
		} else {
			dx = fx - F(math.Floor(float64(fx)))
		}
		dx = absF(dx)
		w0 := 1 - dx
		w1 := dx

		start := int(sx)
		if start < 0 {
			start = 0
		}
		end := start + kernelSize
		if end > inSize {
			end = inSize
		}
		if end > start+kernelSize {
			end = start + kernelSize
		}
		size := end - start

		weightsSum := w0
		if size > 1 {
			weightsSum += w1
		}

		bounds[i] = Bounds{Start: start, Size: size}
		row := weights[i*kernelSize : i*kernelSize+kernelSize]
		if weightsSum != 0 {
			recip := 1 / weightsSum
			row[0] = w0 * recip
			if size > 1 {
				row[1] = w1 * recip
			}
		} else {
			row[0] = 1
		}
	}

	return Plan[F]{
		AlignedSize:  kernelSize,
		OutSize:      outSize,
		Bounds:       bounds,
		Weights:      weights,
		FilterRadius: 1,
	}
}

func absF[F kernel.Float](x F) F {
	if x < 0 {
		return -x
	}
	return x
}
