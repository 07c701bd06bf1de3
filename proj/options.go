// SPDX-License-Identifier: MIT

package proj

import (
	"io"
	"log/slog"
	"math"
)

// Convolution selects how the one-step correlation is evaluated.
type Convolution int

const (
	// ConvolutionFFT evaluates the correlation with a zero-padded real FFT, O(N log N).
	ConvolutionFFT Convolution = iota
	// ConvolutionDense multiplies by the Toeplitz kernel matrix, O(N²). Reference only.
	ConvolutionDense
)

// String returns "fft" or "dense".
func (c Convolution) String() string {
	if c == ConvolutionDense {
		return "dense"
	}
	return "fft"
}

const (
	// DefaultKernelTolerance bounds |mass-1|, the edge mass and the negative
	// part of the density kernel.
	DefaultKernelTolerance = 1e-8

	// MaxDenseN caps the grid size accepted by ConvolutionDense.
	MaxDenseN = 4096
)

const (
	panicToleranceInvalid = "proj: WithKernelTolerance: eps must be finite and > 0"
	panicConvInvalid      = "proj: WithConvolution: unknown convolution"
	panicLoggerNil        = "proj: WithLogger: nil logger"
)

// Option configures the pricers.
type Option func(*Options)

// Options is the resolved configuration; fields are unexported so that the
// only way to change them is through Option constructors.
type Options struct {
	eps     float64
	lenient bool
	conv    Convolution
	log     *slog.Logger
}

func defaultOptions() Options {
	return Options{
		eps:  DefaultKernelTolerance,
		conv: ConvolutionFFT,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithKernelTolerance sets the kernel quality tolerance. Panics unless eps is finite and > 0.
func WithKernelTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicToleranceInvalid)
	}
	return func(o *Options) { o.eps = eps }
}

// WithLenientKernel downgrades kernel quality failures to warnings.
// Non-finite kernels are still rejected.
func WithLenientKernel() Option {
	return func(o *Options) { o.lenient = true }
}

// WithConvolution selects the correlation method. Panics on unknown values.
func WithConvolution(c Convolution) Option {
	if c != ConvolutionFFT && c != ConvolutionDense {
		panic(panicConvInvalid)
	}
	return func(o *Options) { o.conv = c }
}

// WithLogger routes diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}
	return func(o *Options) { o.log = l }
}
