package convolve_test

import (
	"testing"

	"github.com/rasterkit/resize/convolve"
	"github.com/rasterkit/resize/kernel"
	"github.com/rasterkit/resize/planner"
)

func TestColumnsIdentityPreservesPixels(t *testing.T) {
	width, height, channels := 4, 4, 1
	src := []uint8{
		10, 20, 30, 40,
		50, 60, 70, 80,
		90, 100, 110, 120,
		130, 140, 150, 160,
	}
	plan := planner.Build[float32](kernel.CatmullRom, height, height)
	dst := make([]uint8, width*height*channels)

	convolve.Columns[uint8, float32](dst, src, width, channels, &plan, 255, false)

	for i, v := range src {
		if diff := int(dst[i]) - int(v); diff < -1 || diff > 1 {
			t.Errorf("identity resize at %d: got %d, want ~%d", i, dst[i], v)
		}
	}
}

func TestRowsDownscaleAverages(t *testing.T) {
	height, channels := 1, 1
	src := []uint8{0, 100, 0, 100}
	plan := planner.Build[float32](kernel.Box, 4, 2)
	dst := make([]uint8, 2)

	convolve.Rows[uint8, float32](dst, src, height, channels, &plan, 255, false)

	for _, v := range dst {
		if v < 30 || v > 70 {
			t.Errorf("box-downscaled value %d, want roughly the 0/100 average", v)
		}
	}
}

func TestFixedColumnsMatchesFloatingWithinOne(t *testing.T) {
	width, channels := 6, 1
	inHeight, outHeight := 6, 3
	src := make([]uint8, width*inHeight*channels)
	for i := range src {
		src[i] = uint8((i * 37) % 256)
	}

	floatPlan := planner.Build[float64](kernel.Lanczos3, inHeight, outHeight)
	fixedPlan := planner.Quantize(floatPlan)

	dstFloat := make([]uint8, width*outHeight*channels)
	dstFixed := make([]uint8, width*outHeight*channels)

	convolve.Columns[uint8, float64](dstFloat, src, width, channels, &floatPlan, 255, false)
	convolve.FixedColumns[uint8, int32](dstFixed, src, width, channels, &fixedPlan, 255, false)

	for i := range dstFloat {
		diff := int(dstFloat[i]) - int(dstFixed[i])
		if diff < -1 || diff > 1 {
			t.Errorf("fixed/float divergence at %d: float=%d fixed=%d", i, dstFloat[i], dstFixed[i])
		}
	}
}

func TestFixedColumnsClampsToBitDepth(t *testing.T) {
	width, channels := 1, 1
	src := []uint16{2000, 2000, 2000, 2000}
	plan := planner.Build[float64](kernel.Bilinear, 4, 4)
	quantized := planner.Quantize(plan)
	dst := make([]uint16, width*4*channels)

	const bitDepth10Max = int64(1<<10) - 1
	convolve.FixedColumns[uint16, int32](dst, src, width, channels, &quantized, bitDepth10Max, false)

	for i, v := range dst {
		if int64(v) > bitDepth10Max {
			t.Errorf("dst[%d] = %d, want <= %d (10-bit max)", i, v, bitDepth10Max)
		}
	}
}

func TestColumnsParallelMatchesSequential(t *testing.T) {
	width, channels := 8, 3
	inHeight, outHeight := 20, 50
	src := make([]uint8, width*inHeight*channels)
	for i := range src {
		src[i] = uint8((i * 13) % 256)
	}

	plan := planner.Build[float32](kernel.MitchellNetravalli, inHeight, outHeight)

	seq := make([]uint8, width*outHeight*channels)
	par := make([]uint8, width*outHeight*channels)
	convolve.Columns[uint8, float32](seq, src, width, channels, &plan, 255, false)
	convolve.Columns[uint8, float32](par, src, width, channels, &plan, 255, true)

	for i := range seq {
		if seq[i] != par[i] {
			t.Errorf("parallel/sequential mismatch at %d: seq=%d par=%d", i, seq[i], par[i])
		}
	}
}
