package colorgroup_test

import (
	"testing"

	"github.com/rasterkit/resize/colorgroup"
)

func TestLoadStoreRoundTrip(t *testing.T) {
	src := []int32{10, 20, 30, 40}
	for c := 1; c <= 4; c++ {
		g := colorgroup.Load(src, c)
		dst := make([]int32, 4)
		g.Store(dst, c)
		for i := 0; i < c; i++ {
			if dst[i] != src[i] {
				t.Errorf("channels=%d: dst[%d]=%d, want %d", c, i, dst[i], src[i])
			}
		}
	}
}

func TestAddSub(t *testing.T) {
	a := colorgroup.Group[int32]{R: 1, G: 2, B: 3, A: 4}
	b := colorgroup.Group[int32]{R: 10, G: 20, B: 30, A: 40}
	sum := a.Add(b)
	if sum != (colorgroup.Group[int32]{R: 11, G: 22, B: 33, A: 44}) {
		t.Errorf("Add = %+v", sum)
	}
	diff := b.Sub(a)
	if diff != (colorgroup.Group[int32]{R: 9, G: 18, B: 27, A: 36}) {
		t.Errorf("Sub = %+v", diff)
	}
}

func TestMulAdd(t *testing.T) {
	acc := colorgroup.Group[float64]{}
	x := colorgroup.Group[float64]{R: 2, G: 4, B: 6, A: 8}
	acc = acc.MulAdd(x, 0.5)
	want := colorgroup.Group[float64]{R: 1, G: 2, B: 3, A: 4}
	if acc != want {
		t.Errorf("MulAdd = %+v, want %+v", acc, want)
	}
}

func TestShr(t *testing.T) {
	g := colorgroup.Group[int32]{R: 8, G: 16, B: 32, A: 64}
	shifted := colorgroup.Shr(g, 2)
	want := colorgroup.Group[int32]{R: 2, G: 4, B: 8, A: 16}
	if shifted != want {
		t.Errorf("Shr = %+v, want %+v", shifted, want)
	}
}

func TestSaturateFixedClampsToRange(t *testing.T) {
	g := colorgroup.Group[int32]{R: -5, G: 300, B: 128, A: 255}
	r, gr, b, a := colorgroup.SaturateFixed[uint8](g, 255)
	if r != 0 || gr != 255 || b != 128 || a != 255 {
		t.Errorf("SaturateFixed[uint8] = %d,%d,%d,%d", r, gr, b, a)
	}
}

func TestSaturateFixedClampsToNarrowerBitDepth(t *testing.T) {
	g := colorgroup.Group[int32]{R: -5, G: 300, B: 128, A: 1023}
	r, gr, b, a := colorgroup.SaturateFixed[uint16](g, 1023)
	if r != 0 || gr != 300 || b != 128 || a != 1023 {
		t.Errorf("SaturateFixed[uint16] bit_depth=10 = %d,%d,%d,%d", r, gr, b, a)
	}
}

func TestSaturateFloatPassesThroughForFloatDestination(t *testing.T) {
	g := colorgroup.Group[float64]{R: -5.5, G: 300.25, B: 1.5, A: 0}
	r, gr, b, a := colorgroup.SaturateFloat[float32](g, 255)
	if r != -5.5 || gr != 300.25 || b != 1.5 || a != 0 {
		t.Errorf("SaturateFloat[float32] passthrough = %v,%v,%v,%v", r, gr, b, a)
	}
}

func TestSaturateFloatRoundsAndClampsForIntDestination(t *testing.T) {
	g := colorgroup.Group[float64]{R: -5.5, G: 300.25, B: 127.6, A: 254.4}
	r, gr, b, a := colorgroup.SaturateFloat[uint8](g, 255)
	if r != 0 || gr != 255 || b != 128 || a != 254 {
		t.Errorf("SaturateFloat[uint8] = %d,%d,%d,%d", r, gr, b, a)
	}
}
