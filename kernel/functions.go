package kernel

// This file implements the continuous radial weight function k(x) for every
// entry in the registry (registry.go). Every function is total (defined for
// all real x) and symmetric; apart from boxWeight, which is 1 for every x
// and so weighs the whole span the weight-table builder scans equally,
// values outside the kernel's effective support are exactly zero so the
// builder's energy normalization is unaffected by how wide a span it chose
// to scan.
//
// Each function's "x" argument is in the same units as the registry's
// MinKernelSize for that entry: the weight-table builder calls the kernel
// with the raw sample displacement (distance from an input sample to the
// continuous output center), not pre-divided by support radius, so a
// function whose natural domain is [-1, 1] rescales internally by its own
// radius constant.

func boxWeight[F Float](F) F { return F(1) }

func bilinear[F Float](x F) F {
	x = fabs(x)
	if x < 1 {
		return 1 - x
	}
	return 0
}

// cubicConvolution implements the Keys cubic convolution family with free
// parameter a; a=-0.5 is the commonly used "Catmull-Rom-equivalent" cubic,
// a=-1 a sharper variant.
func cubicConvolution[F Float](x F, a F) F {
	x = fabs(x)
	switch {
	case x <= 1:
		return ((a+2)*x-(a+3))*x*x + 1
	case x < 2:
		return (((x-5)*x+8)*x - 4) * a
	default:
		return 0
	}
}

func cubicSpline[F Float](x F) F { return cubicConvolution(x, F(-0.5)) }
func bicubicSpline[F Float](x F) F { return cubicConvolution(x, F(-1.0)) }

// bcSpline implements the Mitchell-Netravali two-parameter BC cubic spline
// family; (B,C) selects the member (Catmull-Rom, B-spline, Hermite, ...).
func bcSpline[F Float](x, b, c F) F {
	x = fabs(x)
	p0 := (F(6) - F(2)*b) / 6
	p2 := (F(-18) + F(12)*b + F(6)*c) / 6
	p3 := (F(12) - F(9)*b - F(6)*c) / 6
	q0 := (F(8)*b + F(24)*c) / 6
	q1 := (F(-12)*b - F(48)*c) / 6
	q2 := (F(6)*b + F(30)*c) / 6
	q3 := (F(-b) - F(6)*c) / 6
	switch {
	case x < 1:
		return p0 + x*x*(p2+x*p3)
	case x < 2:
		return q0 + x*(q1+x*(q2+x*q3))
	default:
		return 0
	}
}

func mitchellNetravalli[F Float](x F) F { return bcSpline(x, F(1)/F(3), F(1)/F(3)) }
func catmullRom[F Float](x F) F         { return bcSpline(x, 0, F(0.5)) }
func hermiteSpline[F Float](x F) F      { return bcSpline[F](x, 0, 0) }
func bSpline[F Float](x F) F            { return bcSpline[F](x, 1, 0) }
func robidoux[F Float](x F) F           { return bcSpline(x, F(0.37821575509399867), F(0.31089212245300067)) }
func robidouxSharp[F Float](x F) F      { return bcSpline(x, F(0.2620145123990142), F(0.3689927438004929)) }

func sinc[F Float](x F) F {
	if x == 0 {
		return 1
	}
	px := fpi[F]() * x
	return fsin(px) / px
}

func lanczos[F Float](x, order F) F {
	x = fabs(x)
	if x >= order {
		return 0
	}
	return sinc(x) * sinc(x/order)
}

func lanczos2[F Float](x F) F { return lanczos(x, 2) }
func lanczos3[F Float](x F) F { return lanczos(x, 3) }
func lanczos4[F Float](x F) F { return lanczos(x, 4) }
func lanczos6[F Float](x F) F { return lanczos(x, 6) }

func lanczosJinc[F Float](x, order F) F {
	x = fabs(x)
	if x >= order {
		return 0
	}
	return fjinc(x) * sinc(x/order)
}

func lanczos2Jinc[F Float](x F) F { return lanczosJinc(x, 2) }
func lanczos3Jinc[F Float](x F) F { return lanczosJinc(x, 3) }
func lanczos4Jinc[F Float](x F) F { return lanczosJinc(x, 4) }
func lanczos6Jinc[F Float](x F) F { return lanczosJinc(x, 6) }

func jincKernel[F Float](x F) F { return fjinc(x) }

// raisedCosine is the classic Hann/Hamming/Hanning family: a0 + (1-a0)*cos
// tapered to zero support radius r.
func raisedCosine[F Float](x, a0, r F) F {
	x = fabs(x)
	if x >= r {
		return 0
	}
	return a0 + (1-a0)*fcos(fpi[F]()*x/r)
}

func hann[F Float](x F) F    { return raisedCosine(x, F(0.5), 3) }
func hamming[F Float](x F) F { return raisedCosine(x, F(0.54), 2) }
func hanning[F Float](x F) F { return raisedCosine(x, F(0.5), 2) }

func blackman[F Float](x F) F {
	x = fabs(x)
	const r = F(2)
	if x >= r {
		return 0
	}
	t := fpi[F]() * x / r
	return F(0.42) + F(0.5)*fcos(t) + F(0.08)*fcos(2*t)
}

func welch[F Float](x F) F {
	x = fabs(x) / 2
	if x >= 1 {
		return 0
	}
	return 1 - x*x
}

func quadric[F Float](x F) F {
	x = fabs(x)
	switch {
	case x < 0.5:
		return F(0.75) - x*x
	case x < 1.5:
		d := x - F(1.5)
		return F(0.5) * d * d
	default:
		return 0
	}
}

func gaussian[F Float](x F) F {
	const sigma = F(0.8)
	if fabs(x) >= 2 {
		return 0
	}
	return fexp(-(x * x) / (2 * sigma * sigma))
}

// sphinx is the pic-scale "Sphinx" kernel: a spherical-Bessel-shaped radial
// weight, normalized so sphinx(0) == 1.
func sphinx[F Float](x F) F {
	x = fabs(x)
	if x >= 2 {
		return 0
	}
	if x == 0 {
		return 1
	}
	px := fpi[F]() * x
	num := 3 * (fsin(px) - px*fcos(px))
	den := px * px * px
	return num / den
}

func bartlett[F Float](x F) F {
	x = fabs(x)
	if x >= 2 {
		return 0
	}
	return 1 - x/2
}

func bartlettHann[F Float](x F) F {
	x = fabs(x)
	const r = F(2)
	if x >= r {
		return 0
	}
	t := x/(2*r) + F(0.5)
	return F(0.62) - F(0.48)*fabs(t-F(0.5)) + F(0.38)*fcos(2*fpi[F]()*t)
}

func bohman[F Float](x F) F {
	x = fabs(x)
	const r = F(2)
	if x >= r {
		return 0
	}
	t := x / r
	return (1-t)*fcos(fpi[F]()*t) + fsin(fpi[F]()*t)/fpi[F]()
}

// kaiser uses the zeroth-order modified Bessel function I0, evaluated via
// its series expansion, the same construction as the original's kaiser.rs.
func besselI0[F Float](x F) F {
	s := F(1)
	y := x * x / 4
	t := y
	i := F(2)
	for t > F(1e-12) {
		s += t
		t *= y / (i * i)
		i++
	}
	return s
}

func kaiser[F Float](x F) F {
	const beta = F(6.33)
	const r = F(2)
	t := x / r
	if fabs(t) > 1 {
		return 0
	}
	i0a := 1 / besselI0[F](beta)
	return besselI0[F](beta*fsqrt(1-t*t)) * i0a
}

// splineTapered builds a smooth, normalizable finite-support bump for the
// wide splines (Spline16/36/64) by tapering a cubic B-spline, rescaled to
// radius r, with a Hann window — a simplified stand-in for the classical
// piecewise discrete spline kernels of the same names, chosen so each has
// the right support radius without depending on hand-transcribed
// per-interval polynomial coefficients. See DESIGN.md.
func splineTapered[F Float](x, r F) F {
	x = fabs(x)
	if x >= r {
		return 0
	}
	base := bSpline(x * 2 / r)
	taper := F(0.5) * (1 + fcos(fpi[F]()*x/r))
	return base * taper
}

func spline16[F Float](x F) F { return splineTapered(x, 2) }
func spline36[F Float](x F) F { return splineTapered(x, 3) }
func spline64[F Float](x F) F { return splineTapered(x, 4) }

// lagrange2 and lagrange3 are simplified continuous stand-ins for the
// discrete-stencil Lagrange interpolation kernels of the same name: true
// Lagrange basis weights depend on all tap positions jointly, not on a
// single translation-invariant function of displacement alone. lagrange2
// uses the BC-spline member B=0, C=1 and lagrange3 the Lanczos-3 kernel,
// the existing kernels closest in shape to the quadratic/cubic Lagrange
// case. See DESIGN.md "Open Questions".
func lagrange2[F Float](x F) F { return bcSpline(x, 0, 1) }
func lagrange3[F Float](x F) F { return lanczos(x, 3) }
