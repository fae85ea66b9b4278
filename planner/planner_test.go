package planner_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rasterkit/resize/kernel"
	"github.com/rasterkit/resize/planner"
)

func rowSum(p planner.Plan[float64], i int) float64 {
	var s float64
	for _, w := range p.Row(i) {
		s += w
	}
	return s
}

func TestWeightsSumToOnePerOutputSample(t *testing.T) {
	fns := []kernel.Function{kernel.Bilinear, kernel.CatmullRom, kernel.Lanczos3, kernel.Box, kernel.Area}
	for _, fn := range fns {
		for _, sizes := range [][2]int{{100, 50}, {50, 100}, {37, 11}, {11, 37}} {
			p := planner.Build[float64](fn, sizes[0], sizes[1])
			for i := 0; i < p.OutSize; i++ {
				sum := rowSum(p, i)
				if math.Abs(sum-1) > 1e-6 {
					t.Errorf("%v %dx%d: row %d sums to %v, want 1", fn, sizes[0], sizes[1], i, sum)
				}
			}
		}
	}
}

func TestBoundsStayWithinInput(t *testing.T) {
	p := planner.Build[float64](kernel.Lanczos3, 20, 80)
	for i, b := range p.Bounds {
		if b.Start < 0 || b.Start+b.Size > 20 {
			t.Errorf("bound %d = %+v out of range for input size 20", i, b)
		}
	}
}

func TestOutputSizeMatchesPlan(t *testing.T) {
	p := planner.Build[float64](kernel.CatmullRom, 64, 32)
	if len(p.Bounds) != 32 {
		t.Errorf("len(Bounds) = %d, want 32", len(p.Bounds))
	}
	if p.OutSize != 32 {
		t.Errorf("OutSize = %d, want 32", p.OutSize)
	}
}

func TestAreaFilterOnlyAppliesOnUpscale(t *testing.T) {
	down := planner.Build[float64](kernel.Area, 100, 50)
	up := planner.Build[float64](kernel.Area, 50, 100)

	if down.AlignedSize == 2 {
		t.Error("downscaling Area plan should not use the 2-tap area path")
	}
	if up.AlignedSize != 2 {
		t.Errorf("upscaling Area plan AlignedSize = %d, want 2", up.AlignedSize)
	}
}

func TestIdentityResizePreservesSamples(t *testing.T) {
	p := planner.Build[float64](kernel.CatmullRom, 16, 16)
	for i := 0; i < 16; i++ {
		row := p.Row(i)
		b := p.Bounds[i]
		found := false
		for j := 0; j < b.Size; j++ {
			if b.Start+j == i && row[j] > 0.99 {
				found = true
			}
		}
		if !found {
			t.Errorf("identity resize at %d: expected weight concentrated on input sample %d, row=%v bounds=%+v", i, i, row, b)
		}
	}
}

func TestIdentityResizeBoundsMatchExpected(t *testing.T) {
	p := planner.Build[float64](kernel.Bilinear, 4, 4)

	// Bilinear's MinKernelSize of 2 gives a 4-wide kernel even at scale 1,
	// so a same-size resize still spans several input samples per output
	// sample rather than degenerating to a single tap.
	want := []planner.Bounds{{0, 3}, {0, 4}, {0, 4}, {1, 3}}
	if diff := cmp.Diff(want, p.Bounds); diff != "" {
		t.Errorf("identity Bilinear bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestQuantizeRowsStayWithinRoundingTolerance(t *testing.T) {
	p := planner.Build[float64](kernel.Lanczos3, 40, 17)
	q := planner.Quantize(p)
	const one = int32(1) << planner.FixedPrecisionBits
	for i := 0; i < q.OutSize; i++ {
		row := q.Row(i)
		size := q.Bounds[i].Size
		var sum int32
		for j := 0; j < size; j++ {
			sum += int32(row[j])
		}
		// Quantization rounds each tap independently with no post-hoc
		// renormalization, so a row's sum may depart from `one` by up to
		// half a quantization step per tap.
		tolerance := int32(size)/2 + 1
		if size > 0 && (sum < one-tolerance || sum > one+tolerance) {
			t.Errorf("quantized row %d sums to %d, want within %d of %d", i, sum, tolerance, one)
		}
	}
}
