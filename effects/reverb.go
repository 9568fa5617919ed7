// SPDX-License-Identifier: EPL-2.0

package effects

import "github.com/waveline/waveline/buffer"

// Fixed delay-line time constants between 30 and 130 ms. Mutually
// non-harmonic lengths keep the tail from ringing at one pitch.
var reverbDelays = [6]float64{0.030, 0.047, 0.061, 0.083, 0.107, 0.130}

var reverbParams = []ParamSpec{
	{Name: "roomSize", Label: "Room Size", Type: ParamNumber, Min: 0, Max: 0.98, Default: 0.7, Step: 0.01},
	{Name: "damping", Label: "Damping", Type: ParamNumber, Min: 0, Max: 1, Default: 0.5, Step: 0.01},
	{Name: "wetLevel", Label: "Wet Level", Type: ParamNumber, Min: 0, Max: 1, Default: 0.3, Step: 0.01},
}

// Reverb runs six parallel fixed-length feedback delay lines per channel.
// Each line feeds back input + delayed*roomSize*damping; the output mixes
// dry*(1-wet) with the average of the six delay taps scaled by wet.
func Reverb(buf *buffer.Buffer, roomSize, damping, wetLevel float64) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}

	feedback := float32(roomSize * damping)
	wet := float32(wetLevel)
	dry := 1 - wet
	rate := float64(buf.SampleRate())

	out := buf.Clone()
	for ch := range out.ChannelCount() {
		var lines [6][]float32
		var pos [6]int
		for l := range lines {
			n := int(reverbDelays[l] * rate)
			if n < 1 {
				n = 1
			}
			lines[l] = make([]float32, n)
		}

		samples := out.Channel(ch)
		for i, x := range samples {
			var taps float32
			for l := range lines {
				delayed := lines[l][pos[l]]
				taps += delayed
				lines[l][pos[l]] = x + delayed*feedback
				pos[l]++
				if pos[l] == len(lines[l]) {
					pos[l] = 0
				}
			}
			samples[i] = x*dry + (taps/6)*wet
		}
	}
	return out, nil
}
