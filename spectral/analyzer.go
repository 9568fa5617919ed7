// SPDX-License-Identifier: EPL-2.0

package spectral

import (
	"math"

	"gonum.org/v1/gonum/dsp/window"

	"github.com/waveline/waveline/buffer"
)

// Frame is one analysis window's magnitude spectrum, stamped with the
// window's start time in seconds.
type Frame struct {
	Time        float64
	Frequencies []float64
}

// Analyzer slides fixed-size windows over audio and extracts spectra and
// scalar features. Analysis always reads channel 0.
type Analyzer struct {
	windowSize  int
	transformer Transformer
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithTransformer substitutes the spectral transform implementation.
func WithTransformer(t Transformer) Option {
	return func(a *Analyzer) { a.transformer = t }
}

// NewAnalyzer returns an Analyzer using windowSize-sample frames
// (rounded up to at least 2) and the FFT transform unless overridden.
func NewAnalyzer(windowSize int, opts ...Option) *Analyzer {
	if windowSize < 2 {
		windowSize = 2
	}
	a := &Analyzer{windowSize: windowSize}
	for _, opt := range opts {
		opt(a)
	}
	if a.transformer == nil {
		a.transformer = NewFFT(windowSize)
	}
	return a
}

// WindowSize reports the analysis frame length in samples.
func (a *Analyzer) WindowSize() int { return a.windowSize }

// AnalyzeBuffer slides a windowSize window with half-window hop across
// channel 0 and returns the magnitude spectrum of each position.
func (a *Analyzer) AnalyzeBuffer(buf *buffer.Buffer) ([]Frame, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}

	samples := buf.Channel(0)
	hop := a.windowSize / 2
	rate := float64(buf.SampleRate())

	var frames []Frame
	scratch := make([]float64, a.windowSize)
	for start := 0; start+a.windowSize <= len(samples); start += hop {
		for i := range scratch {
			scratch[i] = float64(samples[start+i])
		}
		frames = append(frames, Frame{
			Time:        float64(start) / rate,
			Frequencies: a.transformer.Magnitudes(scratch),
		})
	}
	return frames, nil
}

// CreateSpectrogram analyzes channel 0 with an explicit window and hop
// size, applying a Hann window to each frame and converting magnitudes to
// dB via 20*log10(max(magnitude, 1e-10)).
func (a *Analyzer) CreateSpectrogram(buf *buffer.Buffer, windowSize, hopSize int) ([]Frame, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}
	if windowSize < 2 {
		windowSize = 2
	}
	if hopSize < 1 {
		hopSize = windowSize / 2
	}

	transformer := a.transformer
	if windowSize != a.windowSize {
		transformer = NewFFT(windowSize)
	}

	samples := buf.Channel(0)
	rate := float64(buf.SampleRate())

	var frames []Frame
	scratch := make([]float64, windowSize)
	for start := 0; start+windowSize <= len(samples); start += hopSize {
		for i := range scratch {
			scratch[i] = float64(samples[start+i])
		}
		window.Hann(scratch)

		mags := transformer.Magnitudes(scratch)
		for i, m := range mags {
			mags[i] = 20 * math.Log10(math.Max(m, 1e-10))
		}
		frames = append(frames, Frame{
			Time:        float64(start) / rate,
			Frequencies: mags,
		})
	}
	return frames, nil
}
