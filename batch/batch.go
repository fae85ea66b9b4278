// Package batch implements a concurrent pipeline — read, decode, resize,
// write — for resizing every image in a directory or zip archive into an
// output zip, adapted from the teacher's own manga-page conversion
// pipeline (read -> decode -> convert -> write over channels joined by an
// errgroup), but with the per-page transform replaced by resize.Resize.
package batch

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rasterkit/resize"
	"github.com/rasterkit/resize/imageadapter"
)

// Params adjust how each image in a batch is resized.
//
// Width and Height describe a bounding box each page is fit into, preserving
// aspect ratio. Kernel selects the reconstruction filter. Quality is the
// output JPEG quality, Deflate controls whether the output zip is stored or
// deflated.
type Params struct {
	Width, Height int
	Kernel        resize.ResamplingFunction
	Quality       int
	Deflate       bool
}

// New creates a Converter with the given Params.
func New(p Params) *Converter {
	if p.Quality == 0 {
		p.Quality = 90
	}
	return &Converter{params: p}
}

// Converter resizes every image reachable from a source path and writes the
// results into an output zip. It's safe to use concurrently.
type Converter struct {
	params Params
}

// page is one image moving through the pipeline.
type page struct {
	Image image.Image
	Name  string
	Index int
}

// Convert reads every image under in (a directory or zip/cbz archive),
// resizes each to fit the configured bounding box, and writes them to a new
// zip at out.
func (c *Converter) Convert(in, out string) error {
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	return c.ConvertToWriter(in, f)
}

// ConvertToWriter is like Convert but writes to an arbitrary io.Writer.
func (c *Converter) ConvertToWriter(in string, out io.Writer) error {
	read, err := selectReader(in)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", in, err)
	}

	errg, ctx := errgroup.WithContext(context.Background())
	pages := make(chan page)
	errg.Go(func() error {
		defer close(pages)
		return read(ctx, pages, in)
	})

	resized := make(chan page)
	errg.Go(func() error {
		defer close(resized)
		return c.resizeAll(ctx, resized, pages)
	})

	errg.Go(func() error {
		return writeZip(out, c.params.Deflate, c.params.Quality, resized)
	})

	return errg.Wait()
}

// resizeAll fans the per-page resize work out across runtime.NumCPU()
// goroutines, matching the teacher's own worker-pool shape.
func (c *Converter) resizeAll(ctx context.Context, resized chan<- page, pages <-chan page) error {
	var wg sync.WaitGroup
	var firstErr error
	var mu sync.Mutex

	wg.Add(runtime.NumCPU())
	for i := 0; i < runtime.NumCPU(); i++ {
		go func() {
			defer wg.Done()
			for pg := range pages {
				out, err := c.resizeOne(pg.Image)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = fmt.Errorf("cannot resize %s: %w", pg.Name, err)
					}
					mu.Unlock()
					continue
				}
				select {
				case resized <- page{out, pg.Name, pg.Index}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	wg.Wait()
	return firstErr
}

func (c *Converter) resizeOne(img image.Image) (image.Image, error) {
	buf := imageadapter.ToBuffer(img)
	dstW, dstH := fitRect(buf.Width, buf.Height, c.params.Width, c.params.Height)

	out := imageadapter.Buffer{Width: dstW, Height: dstH, Channels: buf.Channels, Depth: buf.Depth}
	switch buf.Depth {
	case 8:
		out.Pix8 = make([]uint8, dstW*dstH*buf.Channels)
		if err := resize.Resize(out.Pix8, buf.Pix8, buf.Width, buf.Height, dstW, dstH, buf.Channels, 8, c.params.Kernel, true); err != nil {
			return nil, err
		}
	default:
		out.Pix16 = make([]uint16, dstW*dstH*buf.Channels)
		if err := resize.Resize(out.Pix16, buf.Pix16, buf.Width, buf.Height, dstW, dstH, buf.Channels, 16, c.params.Kernel, true); err != nil {
			return nil, err
		}
	}

	if out.Depth == 16 {
		if out.Channels == 1 {
			return out.ToGray16(), nil
		}
		return out.ToRGBA64(), nil
	}
	if out.Channels == 1 {
		return out.ToGray(), nil
	}
	return out.ToRGBA(), nil
}

// fitRect scales (srcW, srcH) to fit within (maxW, maxH) preserving aspect
// ratio; a zero bound leaves that dimension unconstrained.
func fitRect(srcW, srcH, maxW, maxH int) (int, int) {
	if maxW <= 0 {
		maxW = srcW
	}
	if maxH <= 0 {
		maxH = srcH
	}
	scale := float64(maxW) / float64(srcW)
	if hScale := float64(maxH) / float64(srcH); hScale < scale {
		scale = hScale
	}
	if scale <= 0 || scale == 1 {
		return srcW, srcH
	}
	w := int(float64(srcW)*scale + 0.5)
	h := int(float64(srcH)*scale + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func saveImg(target io.Writer, img image.Image, quality int) error {
	if err := jpeg.Encode(target, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("cannot encode: %w", err)
	}
	return nil
}
