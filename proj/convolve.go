// SPDX-License-Identifier: MIT

package proj

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/katalvlaran/levyproj/matrix"
)

// correlator computes dst[k] = Σ_n src[n]·θ_{n-k} for k, n in [0, N).
type correlator interface {
	correlate(dst, src []float64) error
}

// fftCorrelator evaluates the correlation as a linear convolution of length
// 2N: the kernel is laid out as kc[(-j) mod 2N] = θ_j and its spectrum is
// computed once.
type fftCorrelator struct {
	n     int
	fft   *fourier.FFT
	spec  []complex128 // spectrum of kc
	coeff []complex128
	buf   []float64
	out   []float64
}

func newFFTCorrelator(k *Kernel) *fftCorrelator {
	n, l := k.n, 2*k.n
	kc := make([]float64, l)
	for j := -n / 2; j < n/2; j++ {
		kc[(l-j)%l] = k.At(j)
	}
	f := fourier.NewFFT(l)

	return &fftCorrelator{
		n:     n,
		fft:   f,
		spec:  f.Coefficients(nil, kc),
		coeff: make([]complex128, l/2+1),
		buf:   make([]float64, l),
		out:   make([]float64, l),
	}
}

func (c *fftCorrelator) correlate(dst, src []float64) error {
	copy(c.buf, src)
	clear(c.buf[c.n:])
	c.fft.Coefficients(c.coeff, c.buf)
	for i := range c.coeff {
		c.coeff[i] *= c.spec[i]
	}
	c.fft.Sequence(c.out, c.coeff)

	inv := 1 / float64(2*c.n)
	for i := 0; i < c.n; i++ {
		dst[i] = c.out[i] * inv
	}
	return nil
}

// denseCorrelator multiplies by the Toeplitz matrix A[k,n] = θ_{n-k}.
type denseCorrelator struct {
	op *matrix.Dense
}

func newDenseCorrelator(k *Kernel) (*denseCorrelator, error) {
	if k.n > MaxDenseN {
		return nil, fmt.Errorf("dense correlation: N=%d > %d: %w", k.n, MaxDenseN, ErrGridSize)
	}
	op, err := matrix.NewToeplitz(k.n, k.At)
	if err != nil {
		return nil, fmt.Errorf("dense correlation: %w", err)
	}
	return &denseCorrelator{op: op}, nil
}

func (c *denseCorrelator) correlate(dst, src []float64) error {
	return matrix.MatVecInto(dst, c.op, src)
}

func newCorrelator(k *Kernel, conv Convolution) (correlator, error) {
	if conv == ConvolutionDense {
		return newDenseCorrelator(k)
	}
	return newFFTCorrelator(k), nil
}
