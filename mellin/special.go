// SPDX-License-Identifier: MIT

package mellin

import (
	"fmt"
	"math"
)

// MaxTerms is the largest factorial index available, and therefore the
// largest admissible series term count.
const MaxTerms = 127

// factorials holds n! for n = 0..MaxTerms. 127! ≈ 3e213 fits a float64.
var factorials = func() [MaxTerms + 1]float64 {
	var t [MaxTerms + 1]float64
	t[0] = 1
	for i := 1; i <= MaxTerms; i++ {
		t[i] = t[i-1] * float64(i)
	}
	return t
}()

// Factorial returns n! for 0 <= n <= MaxTerms.
func Factorial(n int) (float64, error) {
	if n < 0 || n > MaxTerms {
		return 0, fmt.Errorf("Factorial(%d): %w", n, ErrFactorialRange)
	}

	return factorials[n], nil
}

// Pochhammer returns the rising factorial (a)_n = a(a+1)...(a+n-1) for
// integer a and n.
//
// Cases:
//   - a == 0: 1 for n <= 0, else 0;
//   - a > 0:  1 for n == 0, the rising product for n >= 1, ErrUnsupportedPochhammer for n < 0;
//   - a < 0:  with m = -a, 0 for n > m (the product passes through zero),
//     else (-1)^n·m!/(m-n)!.
//
// The a < 0 branch uses the factorial table and fails with ErrFactorialRange
// for m > MaxTerms.
func Pochhammer(a, n int) (float64, error) {
	switch {
	case a > 0 && n < 0:
		return 0, fmt.Errorf("Pochhammer(%d, %d): %w", a, n, ErrUnsupportedPochhammer)
	case a < 0 && n <= -a && (-a > MaxTerms || n < 0):
		return 0, fmt.Errorf("Pochhammer(%d, %d): %w", a, n, ErrFactorialRange)
	}

	return rising(a, n), nil
}

// rising is (a)_n on the domain where Pochhammer cannot fail: n >= 0 and
// -a <= MaxTerms, plus a == 0 with any n.
func rising(a, n int) float64 {
	switch {
	case n == 0, a == 0 && n < 0:
		return 1
	case a == 0:
		return 0
	case a > 0:
		r := float64(a)
		for i := 1; i < n; i++ {
			r *= float64(a + i)
		}
		return r
	}

	m := -a
	if n > m {
		return 0
	}
	r := factorials[m] / factorials[m-n]
	if n%2 != 0 {
		r = -r
	}

	return r
}

// RecipGamma returns 1/Γ(z), which is entire: it vanishes at z = 0, -1, -2, ...
func RecipGamma(z float64) float64 {
	if z <= 0 && z == math.Floor(z) {
		return 0
	}

	return 1 / math.Gamma(z)
}
