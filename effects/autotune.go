// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/waveline/waveline/buffer"
)

// autoTuneScales maps the scale parameter to a set of modulation
// frequencies (Hz) indexed cyclically while the effect runs.
var autoTuneScales = [][]float64{
	{261.63, 293.66, 329.63, 349.23, 392.00, 440.00, 493.88}, // major
	{261.63, 293.66, 311.13, 349.23, 392.00, 415.30, 466.16}, // minor
	{261.63, 311.13, 349.23, 392.00, 466.16},                 // pentatonic
}

var autoTuneScaleChoices = []string{"major", "minor", "pentatonic"}

var autoTuneParams = []ParamSpec{
	{Name: "scale", Label: "Scale", Type: ParamEnum, Min: 0, Max: 2, Default: 0, Step: 1, Choices: autoTuneScaleChoices},
	{Name: "strength", Label: "Strength", Type: ParamNumber, Min: 0, Max: 1, Default: 0.5, Step: 0.01},
}

// AutoTune is a deliberate simplification: it does NOT detect or correct
// pitch. It applies a periodic amplitude modulation whose frequency steps
// through the selected scale, which gives a tuned, synthetic character as
// a stand-in for real pitch correction.
func AutoTune(buf *buffer.Buffer, scale int, strength float64) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}
	if scale < 0 || scale >= len(autoTuneScales) {
		scale = 0
	}
	notes := autoTuneScales[scale]

	sr := float64(buf.SampleRate())
	// Step to the next scale degree every 250 ms.
	stepSamples := max(int(sr/4), 1)

	out := buf.Clone()
	for ch := range out.ChannelCount() {
		samples := out.Channel(ch)
		for i := range samples {
			note := notes[(i/stepSamples)%len(notes)]
			mod := 0.5 + 0.5*math.Sin(2*math.Pi*note*float64(i)/sr)
			gain := 1 - strength + strength*mod
			samples[i] *= float32(gain)
		}
	}
	return out, nil
}
