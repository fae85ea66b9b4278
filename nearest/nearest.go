// Package nearest implements coordinate-mapping nearest-neighbor resampling,
// the out-of-scope collaborator the driver falls back to when the selected
// kernel is kernel.Nearest (spec.md §4.5 step 2).
package nearest

import (
	"math"

	"github.com/rasterkit/resize/colorgroup"
)

// Resize copies src (srcWidth x srcHeight, channels-interleaved) into dst
// (dstWidth x dstHeight) by mapping every destination pixel to the nearest
// source pixel under the half-pixel-center convention.
func Resize[T colorgroup.Sample](dst, src []T, srcWidth, srcHeight, dstWidth, dstHeight, channels int) {
	scaleX := float64(srcWidth) / float64(dstWidth)
	scaleY := float64(srcHeight) / float64(dstHeight)

	for y := 0; y < dstHeight; y++ {
		sy := mapCoord((float64(y)+0.5)*scaleY-0.5, srcHeight)
		srcRow := src[sy*srcWidth*channels : (sy+1)*srcWidth*channels]
		dstRow := dst[y*dstWidth*channels : (y+1)*dstWidth*channels]

		for x := 0; x < dstWidth; x++ {
			sx := mapCoord((float64(x)+0.5)*scaleX-0.5, srcWidth)
			copy(dstRow[x*channels:(x+1)*channels], srcRow[sx*channels:(sx+1)*channels])
		}
	}
}

func mapCoord(v float64, size int) int {
	i := int(math.Floor(v))
	if i < 0 {
		return 0
	}
	if i >= size {
		return size - 1
	}
	return i
}
