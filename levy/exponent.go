// SPDX-License-Identifier: MIT

package levy

import (
	"math"
	"math/cmplx"
)

func (m BlackScholes) exponent(xi complex128) complex128 {
	return complex(-0.5*m.Sigma*m.Sigma, 0) * xi * xi
}

func (m BlackScholes) cumulants() (k1, k2, k4 float64) {
	return 0, m.Sigma * m.Sigma, 0
}

// Φ(ξ) = C·Γ(-Y)·[(M-iξ)^Y - M^Y + (G+iξ)^Y - G^Y].
func (m CGMY) exponent(xi complex128) complex128 {
	y := complex(m.Y, 0)
	ixi := 1i * xi
	scale := complex(m.C*math.Gamma(-m.Y), 0)

	return scale * (cmplx.Pow(complex(m.M, 0)-ixi, y) - complex(math.Pow(m.M, m.Y), 0) +
		cmplx.Pow(complex(m.G, 0)+ixi, y) - complex(math.Pow(m.G, m.Y), 0))
}

// k_n = C·Γ(n-Y)·(M^{Y-n} + (-1)^n G^{Y-n}).
func (m CGMY) cumulants() (k1, k2, k4 float64) {
	kn := func(n float64, sign float64) float64 {
		return m.C * math.Gamma(n-m.Y) * (math.Pow(m.M, m.Y-n) + sign*math.Pow(m.G, m.Y-n))
	}

	return kn(1, -1), kn(2, 1), kn(4, 1)
}

// Φ(ξ) = δ·(γ - sqrt(α² - (β+iξ)²)), γ = sqrt(α²-β²).
func (m NIG) exponent(xi complex128) complex128 {
	gam := math.Sqrt(m.Alpha*m.Alpha - m.Beta*m.Beta)
	b := complex(m.Beta, 0) + 1i*xi

	return complex(m.Delta, 0) * (complex(gam, 0) - cmplx.Sqrt(complex(m.Alpha*m.Alpha, 0)-b*b))
}

func (m NIG) cumulants() (k1, k2, k4 float64) {
	a2 := m.Alpha * m.Alpha
	gam := math.Sqrt(a2 - m.Beta*m.Beta)
	k1 = m.Delta * m.Beta / gam
	k2 = m.Delta * a2 / (gam * gam * gam)
	k4 = 3 * m.Delta * a2 * (a2 + 4*m.Beta*m.Beta) / math.Pow(gam, 7)

	return k1, k2, k4
}

// Φ(ξ) = -σ²ξ²/2 + λ·(exp(iξμJ - σJ²ξ²/2) - 1).
func (m Merton) exponent(xi complex128) complex128 {
	xi2 := xi * xi
	jump := cmplx.Exp(1i*xi*complex(m.MuJ, 0)-complex(0.5*m.SigmaJ*m.SigmaJ, 0)*xi2) - 1

	return complex(-0.5*m.Sigma*m.Sigma, 0)*xi2 + complex(m.Lambda, 0)*jump
}

func (m Merton) cumulants() (k1, k2, k4 float64) {
	mu2, s2 := m.MuJ*m.MuJ, m.SigmaJ*m.SigmaJ
	k1 = m.Lambda * m.MuJ
	k2 = m.Sigma*m.Sigma + m.Lambda*(mu2+s2)
	k4 = m.Lambda * (mu2*mu2 + 6*s2*mu2 + 3*s2*s2)

	return k1, k2, k4
}

// Φ(ξ) = -σ²ξ²/2 + λ·(p·η1/(η1-iξ) + (1-p)·η2/(η2+iξ) - 1).
func (m Kou) exponent(xi complex128) complex128 {
	ixi := 1i * xi
	up := complex(m.P*m.Eta1, 0) / (complex(m.Eta1, 0) - ixi)
	down := complex((1-m.P)*m.Eta2, 0) / (complex(m.Eta2, 0) + ixi)

	return complex(-0.5*m.Sigma*m.Sigma, 0)*xi*xi + complex(m.Lambda, 0)*(up+down-1)
}

func (m Kou) cumulants() (k1, k2, k4 float64) {
	q := 1 - m.P
	k1 = m.Lambda * (m.P/m.Eta1 - q/m.Eta2)
	k2 = m.Sigma*m.Sigma + 2*m.Lambda*(m.P/(m.Eta1*m.Eta1)+q/(m.Eta2*m.Eta2))
	k4 = 24 * m.Lambda * (m.P/math.Pow(m.Eta1, 4) + q/math.Pow(m.Eta2, 4))

	return k1, k2, k4
}
