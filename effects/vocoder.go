// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/waveline/waveline/buffer"
)

var vocoderParams = []ParamSpec{
	{Name: "carrierFreq", Label: "Carrier (Hz)", Type: ParamNumber, Min: 20, Max: 2000, Default: 110, Step: 1},
	{Name: "bands", Label: "Bands", Type: ParamNumber, Min: 4, Max: 32, Default: 16, Step: 1},
}

// Vocoder synthesizes a sawtooth carrier at carrierFreq and pushes it
// through an n-band filter bank whose per-band gains track the input's
// band envelopes, imprinting the input's spectral shape onto the carrier.
func Vocoder(buf *buffer.Buffer, carrierFreq float64, bands int) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}
	if bands < 4 {
		bands = 4
	}

	rate := buf.SampleRate()
	nyquist := float64(rate) / 2

	// Log-spaced band centers from 100 Hz to just under Nyquist.
	lowEdge := 100.0
	highEdge := math.Min(8000, nyquist*0.9)
	centers := make([]float64, bands)
	for b := range centers {
		t := float64(b) / float64(bands-1)
		centers[b] = lowEdge * math.Pow(highEdge/lowEdge, t)
	}

	// Envelope smoothing around 50 Hz.
	envCoef := float32(math.Exp(-2 * math.Pi * 50 / float64(rate)))

	out := buf.Clone()
	for ch := range out.ChannelCount() {
		src := buf.Channel(ch)
		dst := out.Channel(ch)

		modBank := make([]*biquad, bands)
		carBank := make([]*biquad, bands)
		envs := make([]float32, bands)
		for b := range centers {
			modBank[b] = newBandPass(rate, centers[b], 4)
			carBank[b] = newBandPass(rate, centers[b], 4)
		}

		phase := 0.0
		step := carrierFreq / float64(rate)
		for i := range dst {
			// Naive sawtooth carrier in [-1, 1].
			carrier := float32(2*phase - 1)
			phase += step
			if phase >= 1 {
				phase -= 1
			}

			var sum float32
			for b := range modBank {
				banded := modBank[b].process(src[i])
				if banded < 0 {
					banded = -banded
				}
				envs[b] = envCoef*envs[b] + (1-envCoef)*banded
				sum += carBank[b].process(carrier) * envs[b]
			}
			dst[i] = sum
		}
	}
	return out, nil
}
