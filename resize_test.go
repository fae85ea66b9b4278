package resize_test

import (
	"testing"

	"github.com/rasterkit/resize"
)

func TestResizeRejectsBadChannelCount(t *testing.T) {
	src := make([]uint8, 4)
	dst := make([]uint8, 4)
	err := resize.Resize(dst, src, 2, 2, 2, 2, 0, 8, resize.Bilinear, false)
	if err == nil {
		t.Fatal("expected an error for channels=0")
	}
	var rerr *resize.Error
	if !asError(err, &rerr) {
		t.Fatalf("expected *resize.Error, got %T", err)
	}
	if rerr.Kind != resize.InvalidChannelCount {
		t.Errorf("Kind = %v, want InvalidChannelCount", rerr.Kind)
	}
}

func TestResizeRejectsBufferSizeMismatch(t *testing.T) {
	src := make([]uint8, 3)
	dst := make([]uint8, 4)
	err := resize.Resize(dst, src, 2, 2, 2, 2, 1, 8, resize.Bilinear, false)
	if err == nil {
		t.Fatal("expected a buffer size mismatch error")
	}
}

func TestResizeIdenticalSizeCopies(t *testing.T) {
	src := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	dst := make([]uint8, 9)
	if err := resize.Resize(dst, src, 3, 3, 3, 3, 1, 8, resize.CatmullRom, false); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	for i, v := range src {
		if dst[i] != v {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], v)
		}
	}
}

func TestResizeNearestShortCircuit(t *testing.T) {
	src := []uint8{10, 20, 30, 40}
	dst := make([]uint8, 1)
	if err := resize.Resize(dst, src, 2, 2, 1, 1, 1, 8, resize.Nearest, false); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	found := false
	for _, v := range src {
		if dst[0] == v {
			found = true
		}
	}
	if !found {
		t.Errorf("nearest result %d not among source samples %v", dst[0], src)
	}
}

func TestResizeUpDownKeepsValuesInRange(t *testing.T) {
	width, height, channels := 8, 8, 3
	src := make([]uint8, width*height*channels)
	for i := range src {
		src[i] = uint8((i * 7) % 256)
	}
	dst := make([]uint8, 16*20*channels)
	if err := resize.Resize(dst, src, width, height, 16, 20, channels, 8, resize.Lanczos3, true); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	// uint8 destination is inherently bounded; just confirm the call
	// actually wrote plausible (non-default-zero-everywhere) data.
	nonzero := false
	for _, v := range dst {
		if v != 0 {
			nonzero = true
			break
		}
	}
	if !nonzero {
		t.Error("expected resized output to contain nonzero samples")
	}
}

func TestResizeFloat64Samples(t *testing.T) {
	src := []float64{0, 1, 2, 3}
	dst := make([]float64, 2)
	if err := resize.Resize(dst, src, 4, 1, 2, 1, 1, 0, resize.Box, false); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if dst[0] < -0.01 || dst[1] > 3.01 {
		t.Errorf("unexpected float64 resize output: %v", dst)
	}
}

func TestResizeRejectsBadBitDepth(t *testing.T) {
	src := make([]uint16, 4)
	dst := make([]uint16, 4)
	err := resize.Resize(dst, src, 2, 2, 2, 2, 1, 17, resize.Bilinear, false)
	if err == nil {
		t.Fatal("expected an error for bit depth 17")
	}
	var rerr *resize.Error
	if !asError(err, &rerr) {
		t.Fatalf("expected *resize.Error, got %T", err)
	}
	if rerr.Kind != resize.InvalidBitDepth {
		t.Errorf("Kind = %v, want InvalidBitDepth", rerr.Kind)
	}
}

func TestResizeRejectsUint8BitDepthMismatch(t *testing.T) {
	src := make([]uint8, 4)
	dst := make([]uint8, 4)
	err := resize.Resize(dst, src, 2, 2, 2, 2, 1, 6, resize.Bilinear, false)
	if err == nil {
		t.Fatal("expected an error: uint8 samples require bit depth 8")
	}
}

func TestResizeClampsUint16ToNarrowerBitDepth(t *testing.T) {
	width, height, channels := 4, 4, 1
	src := make([]uint16, width*height*channels)
	for i := range src {
		src[i] = 900 // exceeds a 9-bit range (max 511)
	}
	dst := make([]uint16, 2*2*channels)
	if err := resize.Resize(dst, src, width, height, 2, 2, channels, 9, resize.Bilinear, false); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	const nineBitMax = 511
	for i, v := range dst {
		if v > nineBitMax {
			t.Errorf("dst[%d] = %d, want <= %d (9-bit max)", i, v, nineBitMax)
		}
	}
}

func asError(err error, target **resize.Error) bool {
	if e, ok := err.(*resize.Error); ok {
		*target = e
		return true
	}
	return false
}
