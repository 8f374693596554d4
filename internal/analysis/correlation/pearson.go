package correlation

import "math"

// Pearson computes the sample Pearson correlation coefficient of two
// equal-length series. It returns ok=false when the coefficient is
// undefined: fewer than two pairs, or zero variance in either series.
// The zero-variance case is guarded explicitly so constant inputs yield
// "undefined", never a division panic or an Inf.
func Pearson(xs, ys []float64) (float64, bool) {
	n := len(xs)
	if n != len(ys) || n < 2 {
		return 0, false
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, false
	}

	r := cov / math.Sqrt(varX*varY)
	// Clamp tiny floating-point overshoot so results stay in [-1, 1].
	if r > 1 {
		r = 1
	}
	if r < -1 {
		r = -1
	}
	return r, true
}
