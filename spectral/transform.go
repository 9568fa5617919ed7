// SPDX-License-Identifier: EPL-2.0

package spectral

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Transformer turns a real-valued frame into a magnitude spectrum of
// len(frame)/2 bins. Implementations must be interchangeable: callers
// only depend on this interface, so an O(n log n) FFT can replace the
// direct transform without touching any analysis code.
type Transformer interface {
	// Magnitudes computes the magnitude spectrum of frame. The result
	// holds one value per bin from DC up to (but excluding) Nyquist.
	Magnitudes(frame []float64) []float64
}

// FFT is the production Transformer, backed by gonum's real FFT.
type FFT struct {
	size int
	fft  *fourier.FFT
}

// NewFFT returns a Transformer for frames of exactly size samples.
func NewFFT(size int) *FFT {
	return &FFT{size: size, fft: fourier.NewFFT(size)}
}

func (f *FFT) Magnitudes(frame []float64) []float64 {
	if len(frame) != f.size {
		// Frames at the tail of a buffer may come up short; zero-pad.
		padded := make([]float64, f.size)
		copy(padded, frame)
		frame = padded
	}

	coeffs := f.fft.Coefficients(nil, frame)
	out := make([]float64, f.size/2)
	for i := range out {
		out[i] = cmplx.Abs(coeffs[i])
	}
	return out
}

// DFT is the correctness-first direct O(n^2) transform. It exists as the
// reference implementation the FFT is checked against.
type DFT struct{}

func (DFT) Magnitudes(frame []float64) []float64 {
	n := len(frame)
	out := make([]float64, n/2)
	for k := range out {
		var re, im float64
		for t, x := range frame {
			angle := -2 * math.Pi * float64(k) * float64(t) / float64(n)
			re += x * math.Cos(angle)
			im += x * math.Sin(angle)
		}
		out[k] = math.Hypot(re, im)
	}
	return out
}
