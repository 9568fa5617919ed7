// SPDX-License-Identifier: EPL-2.0

package spectral

import (
	"math"
	"testing"
)

func benchFrame(n int) []float64 {
	frame := make([]float64, n)
	for i := range frame {
		frame[i] = math.Sin(2 * math.Pi * 440 * float64(i) / 44100)
	}
	return frame
}

func BenchmarkFFTMagnitudes(b *testing.B) {
	frame := benchFrame(2048)
	fft := NewFFT(2048)

	for b.Loop() {
		fft.Magnitudes(frame)
	}
}

func BenchmarkDFTMagnitudes(b *testing.B) {
	frame := benchFrame(512)

	for b.Loop() {
		DFT{}.Magnitudes(frame)
	}
}
