package mathutil

import "math"

// Jinc returns J1(x)/x, the radial analog of sinc used by jinc-windowed
// Lanczos kernels, with Jinc(0) defined as 0 by convention (jinc(0) is
// mathematically 1/2). The kernel package's fjinc handles x == 0 itself,
// returning 1 without calling Jinc, and scales every other value by 2.
//
// J1 itself is evaluated with a rational-approximation split by magnitude:
// a polynomial ratio for |x| < 8, and an asymptotic cosine/sine expansion
// for |x| >= 8, the same two-regime shape classic J1 approximations use to
// keep both the near-origin and the oscillating tail accurate.
func Jinc(x float64) float64 {
	if x == 0 {
		return 0
	}
	return besselJ1(x) / x
}

func besselJ1(x float64) float64 {
	ax := math.Abs(x)
	if ax < 8.0 {
		y := x * x
		ans1 := x * (72362614232.0 + y*(-7895059235.0+y*(242396853.1+y*(-2972611.439+y*(15704.48260+y*(-30.16036606))))))
		ans2 := 144725228442.0 + y*(2300535178.0+y*(18583304.74+y*(99447.43394+y*(376.9991397+y))))
		return ans1 / ans2
	}

	z := 8.0 / ax
	y := z * z
	xx := ax - 2.356194491
	ans1 := 1.0 + y*(0.183105e-2+y*(-0.3516396496e-4+y*(0.2457520174e-5+y*(-0.240337019e-6))))
	ans2 := 0.04687499995 + y*(-0.2002690873e-3+y*(0.8449199096e-5+y*(-0.88228987e-6+y*0.105787412e-6)))
	ans := math.Sqrt(0.636619772/ax) * (math.Cos(xx)*ans1 - z*math.Sin(xx)*ans2)
	if x < 0 {
		ans = -ans
	}
	return ans
}
