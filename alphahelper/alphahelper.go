// Package alphahelper provides the premultiply/unpremultiply and
// constant-alpha scan helpers cited, but left out of the convolution hot
// path, by spec.md §1.
package alphahelper

import "github.com/rasterkit/resize/mathutil"

// HasNonConstantAlpha scans an interleaved buffer of width*height pixels,
// each with the given channel count and alpha at alphaChannel, and reports
// whether any alpha value differs from the first pixel's. Mirrors the
// original's row-sum-of-xor early exit: any row whose XOR-against-first sum
// is nonzero proves non-constant alpha without scanning the rest of the
// image.
func HasNonConstantAlpha[T ~uint8 | ~uint16](store []T, width, channels, alphaChannel int) bool {
	if len(store) == 0 {
		return false
	}
	first := store[alphaChannel]
	var rowSum uint64
	stride := width * channels
	for row := 0; row+stride <= len(store); row += stride {
		for x := 0; x < width; x++ {
			rowSum += uint64(store[row+x*channels+alphaChannel] ^ first)
		}
		if rowSum != 0 {
			return true
		}
	}
	return rowSum != 0
}

// AlphaIsOpaque reports whether every alpha sample in an interleaved buffer
// equals maxVal (255 for 8-bit, 65535 for 16-bit), exiting on the first row
// that contains any other value.
func AlphaIsOpaque[T ~uint8 | ~uint16](store []T, width, channels, alphaChannel int, maxVal T) bool {
	stride := width * channels
	for row := 0; row+stride <= len(store); row += stride {
		for x := 0; x < width; x++ {
			if store[row+x*channels+alphaChannel] != maxVal {
				return false
			}
		}
	}
	return true
}

// PremultiplyRGBA8 premultiplies an interleaved RGBA8 buffer in place.
func PremultiplyRGBA8(store []uint8) {
	for i := 0; i+3 < len(store); i += 4 {
		a := uint32(store[i+3])
		store[i] = uint8(mathutil.DivBy255(uint32(store[i]) * a))
		store[i+1] = uint8(mathutil.DivBy255(uint32(store[i+1]) * a))
		store[i+2] = uint8(mathutil.DivBy255(uint32(store[i+2]) * a))
	}
}

// UnpremultiplyRGBA8 reverses PremultiplyRGBA8 in place; pixels with zero
// alpha are left at zero (there's no information to recover).
func UnpremultiplyRGBA8(store []uint8) {
	for i := 0; i+3 < len(store); i += 4 {
		a := store[i+3]
		if a == 0 {
			continue
		}
		store[i] = unpremultiplyChannel(store[i], a, 255)
		store[i+1] = unpremultiplyChannel(store[i+1], a, 255)
		store[i+2] = unpremultiplyChannel(store[i+2], a, 255)
	}
}

func unpremultiplyChannel(c, a uint8, maxVal uint32) uint8 {
	v := (uint32(c) * maxVal) / uint32(a)
	if v > maxVal {
		v = maxVal
	}
	return uint8(v)
}

// PremultiplyRGBA16 premultiplies an interleaved RGBA16 buffer in place
// against a 16-bit alpha channel, using DivBy65535 for the quick divide.
func PremultiplyRGBA16(store []uint16) {
	for i := 0; i+3 < len(store); i += 4 {
		a := uint32(store[i+3])
		store[i] = uint16(mathutil.DivBy65535(uint32(store[i]) * a))
		store[i+1] = uint16(mathutil.DivBy65535(uint32(store[i+1]) * a))
		store[i+2] = uint16(mathutil.DivBy65535(uint32(store[i+2]) * a))
	}
}

// UnpremultiplyRGBA16 reverses PremultiplyRGBA16 in place.
func UnpremultiplyRGBA16(store []uint16) {
	for i := 0; i+3 < len(store); i += 4 {
		a := store[i+3]
		if a == 0 {
			continue
		}
		store[i] = unpremultiplyChannel16(store[i], a)
		store[i+1] = unpremultiplyChannel16(store[i+1], a)
		store[i+2] = unpremultiplyChannel16(store[i+2], a)
	}
}

func unpremultiplyChannel16(c, a uint16) uint16 {
	v := (uint64(c) * 65535) / uint64(a)
	if v > 65535 {
		v = 65535
	}
	return uint16(v)
}

// PremultiplyRGBA16AtDepth premultiplies an interleaved RGBA16 buffer in
// place whose samples only use the bottom bitDepth bits (10-bit and 12-bit
// sensor data packed into uint16 are common sources), using the quick
// divide matching that depth (DivBy1023, DivBy4095 or DivBy65535) and a
// plain rounding division by 2^bitDepth-1 for any other depth.
func PremultiplyRGBA16AtDepth(store []uint16, bitDepth int) {
	divide := quickDivideForDepth(bitDepth)
	for i := 0; i+3 < len(store); i += 4 {
		a := uint32(store[i+3])
		store[i] = uint16(divide(uint32(store[i]) * a))
		store[i+1] = uint16(divide(uint32(store[i+1]) * a))
		store[i+2] = uint16(divide(uint32(store[i+2]) * a))
	}
}

// UnpremultiplyRGBA16AtDepth reverses PremultiplyRGBA16AtDepth in place.
func UnpremultiplyRGBA16AtDepth(store []uint16, bitDepth int) {
	maxVal := uint32(1)<<uint(bitDepth) - 1
	for i := 0; i+3 < len(store); i += 4 {
		a := store[i+3]
		if a == 0 {
			continue
		}
		store[i] = unpremultiplyChannelAtDepth(store[i], a, maxVal)
		store[i+1] = unpremultiplyChannelAtDepth(store[i+1], a, maxVal)
		store[i+2] = unpremultiplyChannelAtDepth(store[i+2], a, maxVal)
	}
}

func unpremultiplyChannelAtDepth(c, a uint16, maxVal uint32) uint16 {
	v := (uint32(c) * maxVal) / uint32(a)
	if v > maxVal {
		v = maxVal
	}
	return uint16(v)
}

func quickDivideForDepth(bitDepth int) func(uint32) uint32 {
	switch bitDepth {
	case 10:
		return mathutil.DivBy1023
	case 12:
		return mathutil.DivBy4095
	case 16:
		return mathutil.DivBy65535
	default:
		maxVal := uint32(1)<<uint(bitDepth) - 1
		return func(x uint32) uint32 { return (x + maxVal/2) / maxVal }
	}
}
