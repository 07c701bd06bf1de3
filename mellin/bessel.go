// SPDX-License-Identifier: MIT

package mellin

import "math"

const (
	besselEps     = 1e-16
	besselMaxIter = 10000
	eulerGamma    = 0.5772156649015329
)

// BesselK returns the modified Bessel function of the second kind K_ν(x) for
// real order ν and x > 0. K is even in ν, so only |ν| matters.
//
// Implementation:
//   - Stage 1: split |ν| = nl + μ with integer nl and |μ| <= 1/2.
//   - Stage 2: K_μ and K_{μ+1} by Temme's series (x < 2) or Steed's continued
//     fraction CF2 (x >= 2).
//   - Stage 3: forward recurrence K_{μ+k+1} = 2(μ+k)/x·K_{μ+k} + K_{μ+k-1}, which
//     is stable for K.
//
// Returns NaN for x <= 0 or non-finite arguments.
func BesselK(nu, x float64) float64 {
	if !(x > 0) || math.IsInf(x, 0) || math.IsNaN(nu) || math.IsInf(nu, 0) {
		return math.NaN()
	}
	nu = math.Abs(nu)
	nl := int(nu + 0.5)
	mu := nu - float64(nl)

	var k0, k1 float64
	if x < 2 {
		k0, k1 = besselKTemme(mu, x)
	} else {
		k0, k1 = besselKSteed(mu, x)
	}
	for i := 1; i <= nl; i++ {
		k0, k1 = k1, 2*(mu+float64(i))/x*k1+k0
	}

	return k0
}

// besselKTemme returns K_μ(x), K_{μ+1}(x) for |μ| <= 1/2 and 0 < x < 2.
func besselKTemme(mu, x float64) (float64, float64) {
	x2 := 0.5 * x
	pimu := math.Pi * mu
	fact := 1.0
	if math.Abs(pimu) >= besselEps {
		fact = pimu / math.Sin(pimu)
	}
	d := -math.Log(x2)
	e := mu * d
	fact2 := 1.0
	if math.Abs(e) >= besselEps {
		fact2 = math.Sinh(e) / e
	}

	gampl := 1 / math.Gamma(1+mu)
	gammi := 1 / math.Gamma(1-mu)
	var gam1 float64
	if math.Abs(mu) < 1e-3 {
		// series of (1/Γ(1-μ) - 1/Γ(1+μ))/(2μ) around μ = 0
		gam1 = -(eulerGamma - 0.0420026350340952*mu*mu)
	} else {
		gam1 = (gammi - gampl) / (2 * mu)
	}
	gam2 := (gammi + gampl) / 2

	ff := fact * (gam1*math.Cosh(e) + gam2*fact2*d)
	sum := ff
	ex := math.Exp(e)
	p := 0.5 * ex / gampl
	q := 0.5 / (ex * gammi)
	c := 1.0
	d = x2 * x2
	sum1 := p
	for i := 1; i < besselMaxIter; i++ {
		fi := float64(i)
		ff = (fi*ff + p + q) / (fi*fi - mu*mu)
		c *= d / fi
		p /= fi - mu
		q /= fi + mu
		del := c * ff
		sum += del
		sum1 += c * (p - fi*ff)
		if math.Abs(del) < math.Abs(sum)*besselEps {
			break
		}
	}

	return sum, sum1 * 2 / x
}

// besselKSteed returns K_μ(x), K_{μ+1}(x) for |μ| <= 1/2 and x >= 2.
func besselKSteed(mu, x float64) (float64, float64) {
	b := 2 * (1 + x)
	d := 1 / b
	h, delh := d, d
	q1, q2 := 0.0, 1.0
	a1 := 0.25 - mu*mu
	q, c := a1, a1
	a := -a1
	s := 1 + q*delh
	for i := 2; i < besselMaxIter; i++ {
		fi := float64(i)
		a -= 2 * (fi - 1)
		c = -a * c / fi
		qn := (q1 - b*q2) / a
		q1, q2 = q2, qn
		q += c * qn
		b += 2
		d = 1 / (b + a*d)
		delh = (b*d - 1) * delh
		h += delh
		dels := q * delh
		s += dels
		if math.Abs(dels/s) < besselEps {
			break
		}
	}
	h = a1 * h
	kmu := math.Sqrt(math.Pi/(2*x)) * math.Exp(-x) / s
	kmu1 := kmu * (mu + x + 0.5 - h) / x

	return kmu, kmu1
}
