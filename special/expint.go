package special

import "math"

// ExpE1 computes the exponential integral E1(x) for x > 0, via the
// alternating series below x = 1 and a modified Lentz continued fraction
// above. E1 is the well function of the Theis solution.
func ExpE1(x float64) float64 {
	const (
		eps    = 1e-16
		fpmin  = 1e-300
		maxIt  = 200
		eulerG = 0.5772156649015329
	)
	switch {
	case math.IsNaN(x) || x < 0:
		return math.NaN()
	case x == 0:
		return math.Inf(1)
	case x <= 1:
		sum := -eulerG - math.Log(x)
		term := 1.0
		for k := 1; k <= maxIt; k++ {
			term *= -x / float64(k)
			del := -term / float64(k)
			sum += del
			if math.Abs(del) < math.Abs(sum)*eps {
				break
			}
		}
		return sum
	default:
		b := x + 1
		c := 1 / fpmin
		d := 1 / b
		h := d
		for k := 1; k <= maxIt; k++ {
			a := -float64(k) * float64(k)
			b += 2
			d = 1 / (a*d + b)
			c = b + a/c
			del := c * d
			h *= del
			if math.Abs(del-1) < eps {
				break
			}
		}
		return h * math.Exp(-x)
	}
}
