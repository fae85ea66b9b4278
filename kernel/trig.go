package kernel

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/rasterkit/resize/mathutil"
)

// Float is re-exported for callers that only need the numeric constraint,
// without importing mathutil directly.
type Float = mathutil.Float

// The kernel math below is instantiated for both float32 and float64
// accumulators (convolve.FloatAccum). For float32 we dispatch to
// github.com/chewxy/math32 so a float32 resize never silently promotes its
// trigonometry to float64 and back — the same concern the original's
// generic `f32: AsPrimitive<T>` bound protects against.

func fabs[F Float](x F) F {
	switch v := any(x).(type) {
	case float32:
		return F(math32.Abs(v))
	case float64:
		return F(math.Abs(v))
	default:
		return x
	}
}

func fcos[F Float](x F) F {
	switch v := any(x).(type) {
	case float32:
		return F(math32.Cos(v))
	case float64:
		return F(math.Cos(v))
	default:
		return x
	}
}

func fsin[F Float](x F) F {
	switch v := any(x).(type) {
	case float32:
		return F(math32.Sin(v))
	case float64:
		return F(math.Sin(v))
	default:
		return x
	}
}

func fsqrt[F Float](x F) F {
	switch v := any(x).(type) {
	case float32:
		return F(math32.Sqrt(v))
	case float64:
		return F(math.Sqrt(v))
	default:
		return x
	}
}

func fexp[F Float](x F) F {
	switch v := any(x).(type) {
	case float32:
		return F(math32.Exp(v))
	case float64:
		return F(math.Exp(v))
	default:
		return x
	}
}

// fjinc returns 2*J1(pi*x)/(pi*x), normalized so fjinc(0) == 1, computed in
// float64 via mathutil.Jinc regardless of F (the series itself needs
// float64 precision to stay well-behaved near its zero crossings; only the
// final narrow to F matters for the accumulator type).
func fjinc[F Float](x F) F {
	xf := float64(x)
	if xf == 0 {
		return F(1)
	}
	arg := math.Pi * xf
	return F(2 * mathutil.Jinc(arg))
}

const piF64 = math.Pi

func fpi[F Float]() F {
	switch any(F(0)).(type) {
	case float32:
		return F(math32.Pi)
	default:
		return F(piF64)
	}
}
