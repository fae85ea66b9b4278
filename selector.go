package resize

import "github.com/rasterkit/resize/kernel"

// ResamplingFunction re-exports the closed filter-registry selector so
// callers of this package never need to import resize/kernel directly for
// the common case of just picking a filter.
type ResamplingFunction = kernel.Function

// Re-exported registry entries, in the stable 0..=38 order.
const (
	Bilinear           = kernel.Bilinear
	Nearest            = kernel.Nearest
	Cubic              = kernel.Cubic
	MitchellNetravalli = kernel.MitchellNetravalli
	CatmullRom         = kernel.CatmullRom
	Hermite            = kernel.Hermite
	BSpline            = kernel.BSpline
	Hann               = kernel.Hann
	Bicubic            = kernel.Bicubic
	Hamming            = kernel.Hamming
	Hanning            = kernel.Hanning
	Blackman           = kernel.Blackman
	Welch              = kernel.Welch
	Quadric            = kernel.Quadric
	Gaussian           = kernel.Gaussian
	Sphinx             = kernel.Sphinx
	Bartlett           = kernel.Bartlett
	Robidoux           = kernel.Robidoux
	RobidouxSharp      = kernel.RobidouxSharp
	Spline16           = kernel.Spline16
	Spline36           = kernel.Spline36
	Spline64           = kernel.Spline64
	Kaiser             = kernel.Kaiser
	BartlettHann       = kernel.BartlettHann
	Box                = kernel.Box
	Bohman             = kernel.Bohman
	Lanczos2           = kernel.Lanczos2
	Lanczos3           = kernel.Lanczos3
	Lanczos4           = kernel.Lanczos4
	Lanczos2Jinc       = kernel.Lanczos2Jinc
	Lanczos3Jinc       = kernel.Lanczos3Jinc
	Lanczos4Jinc       = kernel.Lanczos4Jinc
	Ginseng            = kernel.Ginseng
	HaasnSoft          = kernel.HaasnSoft
	Lagrange2          = kernel.Lagrange2
	Lagrange3          = kernel.Lagrange3
	Lanczos6           = kernel.Lanczos6
	Lanczos6Jinc       = kernel.Lanczos6Jinc
	Area               = kernel.Area
)

// FromInt resolves the stable 0..=38 numeric selector to a
// ResamplingFunction, falling back to Bilinear for any out-of-range value.
func FromInt(v int) ResamplingFunction {
	return kernel.FromInt(v)
}
