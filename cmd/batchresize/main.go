// Command batchresize resizes every image in a directory or zip/cbz archive
// into a new zip, using the resize package's separable convolution core.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rasterkit/resize/batch"
	"github.com/rasterkit/resize/config"
)

func main() {
	width := flag.Int("width", 1920, "Maximum width of each image.")
	height := flag.Int("height", 1920, "Maximum height of each image.")
	kernelName := flag.String("kernel", "lanczos3", "Resampling kernel name.")
	quality := flag.Int("quality", 90, "Output JPEG quality.")
	deflate := flag.Bool("deflate", true, "Deflate the output zip instead of storing entries uncompressed.")
	out := flag.String("out", "", "Output zip path.")
	flag.Parse()

	if flag.NArg() != 1 || *out == "" {
		fmt.Fprintln(os.Stderr, "usage: batchresize -out <out.zip> [flags] <input-dir-or-zip>")
		os.Exit(2)
	}

	fn := (config.Preset{Kernel: *kernelName}).Function()
	c := batch.New(batch.Params{
		Width:   *width,
		Height:  *height,
		Kernel:  fn,
		Quality: *quality,
		Deflate: *deflate,
	})

	if err := c.Convert(flag.Arg(0), *out); err != nil {
		fmt.Fprintln(os.Stderr, "batchresize:", err)
		os.Exit(1)
	}
}
