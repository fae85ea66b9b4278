// Package imageadapter converts between image.Image and the raw,
// channel-interleaved buffers the resize core operates on — the dynamic
// color-model dispatch spec.md §1 explicitly places out of scope, given a
// minimal real implementation here in the teacher's type-switch style.
package imageadapter

import (
	"image"
	"image/draw"

	"github.com/rasterkit/resize"
	"github.com/rasterkit/resize/kernel"
)

// Buffer is a decoded image ready for resizing: width*height pixels, each
// with Channels interleaved samples of Depth bits (8 or 16).
type Buffer struct {
	Width, Height, Channels, Depth int
	Pix8                           []uint8
	Pix16                          []uint16
}

// ToBuffer decodes img into a Buffer, picking a direct per-type conversion
// for the common standard-library image types and falling back to
// draw.Draw into RGBA for anything else, the same shape as the teacher's
// Grayscale dispatch.
func ToBuffer(img image.Image) Buffer {
	switch i := img.(type) {
	case *image.Gray:
		return bufferFromGray(i)
	case *image.Gray16:
		return bufferFromGray16(i)
	case *image.RGBA:
		return bufferFromRGBA(i)
	case *image.NRGBA:
		return bufferFromNRGBA(i)
	case *image.RGBA64:
		return bufferFromRGBA64(i)
	case *image.NRGBA64:
		return bufferFromNRGBA64(i)
	default:
		return bufferFromDraw(img)
	}
}

func bufferFromGray(src *image.Gray) Buffer {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		copy(pix[y*w:(y+1)*w], src.Pix[y*src.Stride:y*src.Stride+w])
	}
	return Buffer{Width: w, Height: h, Channels: 1, Depth: 8, Pix8: pix}
}

func bufferFromGray16(src *image.Gray16) Buffer {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]uint16, w*h)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*2]
		for x := 0; x < w; x++ {
			pix[y*w+x] = uint16(row[x*2])<<8 | uint16(row[x*2+1])
		}
	}
	return Buffer{Width: w, Height: h, Channels: 1, Depth: 16, Pix16: pix}
}

func bufferFromRGBA(src *image.RGBA) Buffer {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		copy(pix[y*w*4:(y+1)*w*4], src.Pix[y*src.Stride:y*src.Stride+w*4])
	}
	return Buffer{Width: w, Height: h, Channels: 4, Depth: 8, Pix8: pix}
}

func bufferFromNRGBA(src *image.NRGBA) Buffer {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		copy(pix[y*w*4:(y+1)*w*4], src.Pix[y*src.Stride:y*src.Stride+w*4])
	}
	return Buffer{Width: w, Height: h, Channels: 4, Depth: 8, Pix8: pix}
}

func bufferFromRGBA64(src *image.RGBA64) Buffer {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]uint16, w*h*4)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*8]
		for x := 0; x < w; x++ {
			for c := 0; c < 4; c++ {
				i := x*8 + c*2
				pix[(y*w+x)*4+c] = uint16(row[i])<<8 | uint16(row[i+1])
			}
		}
	}
	return Buffer{Width: w, Height: h, Channels: 4, Depth: 16, Pix16: pix}
}

func bufferFromNRGBA64(src *image.NRGBA64) Buffer {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]uint16, w*h*4)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*8]
		for x := 0; x < w; x++ {
			for c := 0; c < 4; c++ {
				i := x*8 + c*2
				pix[(y*w+x)*4+c] = uint16(row[i])<<8 | uint16(row[i+1])
			}
		}
	}
	return Buffer{Width: w, Height: h, Channels: 4, Depth: 16, Pix16: pix}
}

// bufferFromDraw is the slow fallback for any image.Image implementation
// without a direct conversion, matching the teacher's drawGray.
func bufferFromDraw(img image.Image) Buffer {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return bufferFromRGBA(dst)
}

// ToRGBA converts an 8-bit Buffer back into an *image.RGBA.
func (buf Buffer) ToRGBA() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	switch buf.Channels {
	case 4:
		for y := 0; y < buf.Height; y++ {
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+buf.Width*4], buf.Pix8[y*buf.Width*4:(y+1)*buf.Width*4])
		}
	case 1:
		for y := 0; y < buf.Height; y++ {
			for x := 0; x < buf.Width; x++ {
				v := buf.Pix8[y*buf.Width+x]
				i := y*dst.Stride + x*4
				dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = v, v, v, 255
			}
		}
	}
	return dst
}

// ToGray converts a single-channel 8-bit Buffer back into an *image.Gray.
func (buf Buffer) ToGray() *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, buf.Width, buf.Height))
	for y := 0; y < buf.Height; y++ {
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+buf.Width], buf.Pix8[y*buf.Width:(y+1)*buf.Width])
	}
	return dst
}

// ToRGBA64 converts a 16-bit 4-channel Buffer back into an *image.RGBA64.
func (buf Buffer) ToRGBA64() *image.RGBA64 {
	dst := image.NewRGBA64(image.Rect(0, 0, buf.Width, buf.Height))
	switch buf.Channels {
	case 4:
		for y := 0; y < buf.Height; y++ {
			for x := 0; x < buf.Width; x++ {
				i := y*dst.Stride + x*8
				for c := 0; c < 4; c++ {
					v := buf.Pix16[(y*buf.Width+x)*4+c]
					dst.Pix[i+c*2], dst.Pix[i+c*2+1] = uint8(v>>8), uint8(v)
				}
			}
		}
	case 1:
		for y := 0; y < buf.Height; y++ {
			for x := 0; x < buf.Width; x++ {
				v := buf.Pix16[y*buf.Width+x]
				hi, lo := uint8(v>>8), uint8(v)
				i := y*dst.Stride + x*8
				dst.Pix[i], dst.Pix[i+1] = hi, lo
				dst.Pix[i+2], dst.Pix[i+3] = hi, lo
				dst.Pix[i+4], dst.Pix[i+5] = hi, lo
				dst.Pix[i+6], dst.Pix[i+7] = 0xff, 0xff
			}
		}
	}
	return dst
}

// ToGray16 converts a single-channel 16-bit Buffer back into an *image.Gray16.
func (buf Buffer) ToGray16() *image.Gray16 {
	dst := image.NewGray16(image.Rect(0, 0, buf.Width, buf.Height))
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			v := buf.Pix16[y*buf.Width+x]
			i := y*dst.Stride + x*2
			dst.Pix[i], dst.Pix[i+1] = uint8(v>>8), uint8(v)
		}
	}
	return dst
}

// Image is the single-call convenience entry point: decode img into a
// Buffer, resize it with fn, and convert the result back into an
// image.Image of the same shape the source carried (grayscale stays
// grayscale, everything else becomes RGBA).
func Image(img image.Image, dstWidth, dstHeight int, fn kernel.Function) (image.Image, error) {
	buf := ToBuffer(img)
	out := Buffer{Width: dstWidth, Height: dstHeight, Channels: buf.Channels, Depth: buf.Depth}

	var err error
	switch buf.Depth {
	case 16:
		out.Pix16 = make([]uint16, dstWidth*dstHeight*buf.Channels)
		err = resize.Resize(out.Pix16, buf.Pix16, buf.Width, buf.Height, dstWidth, dstHeight, buf.Channels, 16, fn, true)
	default:
		out.Pix8 = make([]uint8, dstWidth*dstHeight*buf.Channels)
		err = resize.Resize(out.Pix8, buf.Pix8, buf.Width, buf.Height, dstWidth, dstHeight, buf.Channels, 8, fn, true)
	}
	if err != nil {
		return nil, err
	}

	switch {
	case out.Depth == 16 && out.Channels == 1:
		return out.ToGray16(), nil
	case out.Depth == 16:
		return out.ToRGBA64(), nil
	case out.Channels == 1:
		return out.ToGray(), nil
	default:
		return out.ToRGBA(), nil
	}
}
