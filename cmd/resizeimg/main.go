// Command resizeimg resizes image files from the command line using the
// resize package's separable convolution core.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rasterkit/resize"
	"github.com/rasterkit/resize/config"
	"github.com/rasterkit/resize/imageadapter"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

func main() {
	width := flag.Int("width", 0, "Target width. 0 takes the preset's width.")
	height := flag.Int("height", 0, "Target height. 0 takes the preset's height.")
	kernelName := flag.String("kernel", "lanczos3", "Resampling kernel name (see resize/config for the full list).")
	preset := flag.String("preset", "", "Name of a preset to load from -presets.")
	presetsFile := flag.String("presets", "", "Path to a YAML presets file (see resize/config).")
	parallel := flag.Bool("parallel", true, "Resize rows across multiple goroutines.")
	out := flag.String("out", "", "Output file path. Defaults to <input>.resized.png")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: resizeimg [flags] <input-image>")
		os.Exit(2)
	}
	in := flag.Arg(0)

	fn := resize.Bilinear
	dstW, dstH := *width, *height

	if *presetsFile != "" {
		cfg, err := config.Load(*presetsFile)
		if err != nil {
			log.Fatal().Err(err).Str("path", *presetsFile).Msg("failed to load presets")
		}
		p, ok := cfg.Presets[*preset]
		if !ok {
			log.Fatal().Str("preset", *preset).Msg("preset not found")
		}
		fn = p.Function()
		if dstW == 0 {
			dstW = p.Width
		}
		if dstH == 0 {
			dstH = p.Height
		}
	} else {
		fn = lookupKernel(*kernelName)
	}

	if dstW == 0 || dstH == 0 {
		log.Fatal().Msg("target width and height must be set, either via -width/-height or a preset")
	}

	img, err := decode(in)
	if err != nil {
		log.Fatal().Err(err).Str("path", in).Msg("failed to decode image")
	}

	buf := imageadapter.ToBuffer(img)
	log.Info().
		Int("src_width", buf.Width).Int("src_height", buf.Height).
		Int("dst_width", dstW).Int("dst_height", dstH).
		Str("kernel", fn.String()).
		Msg("resizing")

	resized, err := resizeBuffer(buf, dstW, dstH, fn, *parallel)
	if err != nil {
		log.Fatal().Err(err).Msg("resize failed")
	}

	outPath := *out
	if outPath == "" {
		outPath = strings.TrimSuffix(in, filepath.Ext(in)) + ".resized.png"
	}
	if err := encode(outPath, resized); err != nil {
		log.Fatal().Err(err).Str("path", outPath).Msg("failed to write output")
	}
	log.Info().Str("path", outPath).Msg("wrote resized image")
}

func resizeBuffer(buf imageadapter.Buffer, dstW, dstH int, fn resize.ResamplingFunction, parallel bool) (imageadapter.Buffer, error) {
	out := imageadapter.Buffer{Width: dstW, Height: dstH, Channels: buf.Channels, Depth: buf.Depth}
	switch buf.Depth {
	case 8:
		out.Pix8 = make([]uint8, dstW*dstH*buf.Channels)
		if err := resize.Resize(out.Pix8, buf.Pix8, buf.Width, buf.Height, dstW, dstH, buf.Channels, 8, fn, parallel); err != nil {
			return imageadapter.Buffer{}, err
		}
	default:
		out.Pix16 = make([]uint16, dstW*dstH*buf.Channels)
		if err := resize.Resize(out.Pix16, buf.Pix16, buf.Width, buf.Height, dstW, dstH, buf.Channels, 16, fn, parallel); err != nil {
			return imageadapter.Buffer{}, err
		}
	}
	return out, nil
}

func lookupKernel(name string) resize.ResamplingFunction {
	p := config.Preset{Kernel: name}
	return p.Function()
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

func encode(path string, buf imageadapter.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var img image.Image
	switch {
	case buf.Depth == 16 && buf.Channels == 1:
		img = buf.ToGray16()
	case buf.Depth == 16:
		img = buf.ToRGBA64()
	case buf.Channels == 1:
		img = buf.ToGray()
	default:
		img = buf.ToRGBA()
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 92})
	default:
		return png.Encode(f, img)
	}
}
