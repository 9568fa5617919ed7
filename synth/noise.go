// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math/rand/v2"

	"github.com/waveline/waveline/buffer"
)

// NoiseColor selects the spectral tilt of generated noise.
type NoiseColor int

const (
	White NoiseColor = iota
	Pink
)

// Noise generates white or pink noise at the given peak amplitude. Pink
// noise is produced by filtering white noise through a cascade of one-pole
// lowpass stages (the Voss-McCartney approximation).
func Noise(sampleRate int, color NoiseColor, duration, amplitude float64, rng *rand.Rand) (*buffer.Buffer, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}

	buf, err := buffer.New(sampleRate, 1, int(duration*float64(sampleRate)))
	if err != nil {
		return nil, err
	}

	out := buf.Channel(0)
	if color == White {
		for i := range out {
			out[i] = float32(amplitude * (randFloat(rng)*2 - 1))
		}
		return buf, nil
	}

	var b0, b1, b2 float64
	for i := range out {
		white := randFloat(rng)*2 - 1
		b0 = 0.99765*b0 + white*0.0990460
		b1 = 0.96300*b1 + white*0.2965164
		b2 = 0.57000*b2 + white*1.0526913
		pink := (b0 + b1 + b2 + white*0.1848) * 0.25
		out[i] = float32(amplitude * pink)
	}
	return buf, nil
}

func randFloat(rng *rand.Rand) float64 {
	if rng != nil {
		return rng.Float64()
	}
	return rand.Float64()
}
