// Package config loads named resize presets — kernel choice plus a target
// bounding box — from a YAML file, in the spirit of the pack's config-table
// loaders (itohio-EasyRobot's spectrometer config.Loader).
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rasterkit/resize/kernel"
)

// Preset is one named resize configuration.
type Preset struct {
	Kernel string `yaml:"kernel"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// File is the top-level shape of a presets YAML document: a map of preset
// name to Preset.
type File struct {
	Presets map[string]Preset `yaml:"presets"`
}

// Load reads and parses a presets file from path.
func Load(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("open presets file: %w", err)
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader parses a presets document from r.
func LoadFromReader(r io.Reader) (File, error) {
	var cfg File
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return File{}, fmt.Errorf("decode presets: %w", err)
	}
	return cfg, nil
}

// Function resolves a preset's kernel name to a kernel.Function, falling
// back to kernel.Bilinear for an unrecognized name (the same unknown-falls-
// back-to-Bilinear contract kernel.FromInt applies to numeric selectors).
func (p Preset) Function() kernel.Function {
	fn, ok := byName[p.Kernel]
	if !ok {
		return kernel.Bilinear
	}
	return fn
}

var byName = map[string]kernel.Function{
	"bilinear":           kernel.Bilinear,
	"nearest":            kernel.Nearest,
	"cubic":              kernel.Cubic,
	"mitchell":           kernel.MitchellNetravalli,
	"catmullrom":         kernel.CatmullRom,
	"hermite":            kernel.Hermite,
	"bspline":            kernel.BSpline,
	"hann":               kernel.Hann,
	"bicubic":            kernel.Bicubic,
	"hamming":            kernel.Hamming,
	"hanning":            kernel.Hanning,
	"blackman":           kernel.Blackman,
	"welch":              kernel.Welch,
	"quadric":            kernel.Quadric,
	"gaussian":           kernel.Gaussian,
	"sphinx":             kernel.Sphinx,
	"bartlett":           kernel.Bartlett,
	"robidoux":           kernel.Robidoux,
	"robidouxsharp":      kernel.RobidouxSharp,
	"spline16":           kernel.Spline16,
	"spline36":           kernel.Spline36,
	"spline64":           kernel.Spline64,
	"kaiser":             kernel.Kaiser,
	"bartletthann":       kernel.BartlettHann,
	"box":                kernel.Box,
	"bohman":             kernel.Bohman,
	"lanczos2":           kernel.Lanczos2,
	"lanczos3":           kernel.Lanczos3,
	"lanczos4":           kernel.Lanczos4,
	"lanczos2jinc":       kernel.Lanczos2Jinc,
	"lanczos3jinc":       kernel.Lanczos3Jinc,
	"lanczos4jinc":       kernel.Lanczos4Jinc,
	"ginseng":            kernel.Ginseng,
	"haasnsoft":          kernel.HaasnSoft,
	"lagrange2":          kernel.Lagrange2,
	"lagrange3":          kernel.Lagrange3,
	"lanczos6":           kernel.Lanczos6,
	"lanczos6jinc":       kernel.Lanczos6Jinc,
	"area":               kernel.Area,
}
