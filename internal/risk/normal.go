package risk

import "math"

// Rational approximation coefficients for the inverse standard normal CDF
// (P. J. Acklam).
var (
	acklamA = [6]float64{
		-3.969683028665376e+01, 2.209460984245205e+02, -2.759285104469687e+02,
		1.383577518672690e+02, -3.066479806614716e+01, 2.506628277459239e+00,
	}
	acklamB = [5]float64{
		-5.447609879822406e+01, 1.615858368580409e+02, -1.556989798598866e+02,
		6.680131188771972e+01, -1.328068155288572e+01,
	}
	acklamC = [6]float64{
		-7.784894002430293e-03, -3.223964580411365e-01, -2.400758277161838e+00,
		-2.549732539343734e+00, 4.374664141464968e+00, 2.938163982698783e+00,
	}
	acklamD = [4]float64{
		7.784695709041462e-03, 3.224671290700398e-01, 2.445134137142996e+00,
		3.754408661907416e+00,
	}
)

const acklamLow = 0.02425

// NormalInverse returns the p-quantile of the standard normal distribution.
// It returns -Inf for 0, +Inf for 1 and NaN outside [0, 1]. A single Halley
// step against math.Erfc brings the approximation to full float64 precision.
func NormalInverse(p float64) float64 {
	switch {
	case math.IsNaN(p) || p < 0 || p > 1:
		return math.NaN()
	case p == 0:
		return math.Inf(-1)
	case p == 1:
		return math.Inf(1)
	case p == 0.5:
		return 0
	}

	var x float64
	switch {
	case p < acklamLow:
		x = acklamTail(math.Sqrt(-2 * math.Log(p)))
	case p > 1-acklamLow:
		x = -acklamTail(math.Sqrt(-2 * math.Log(1-p)))
	default:
		q := p - 0.5
		r := q * q
		a, b := acklamA, acklamB
		x = (((((a[0]*r+a[1])*r+a[2])*r+a[3])*r+a[4])*r + a[5]) * q /
			(((((b[0]*r+b[1])*r+b[2])*r+b[3])*r+b[4])*r + 1)
	}

	e := 0.5*math.Erfc(-x/math.Sqrt2) - p
	u := e * math.Sqrt(2*math.Pi) * math.Exp(x*x/2)
	return x - u/(1+x*u/2)
}

func acklamTail(q float64) float64 {
	c, d := acklamC, acklamD
	return (((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
		((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)
}
