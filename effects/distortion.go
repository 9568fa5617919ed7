// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/waveline/waveline/buffer"
	"github.com/waveline/waveline/utils"
)

var distortionParams = []ParamSpec{
	{Name: "amount", Label: "Drive", Type: ParamNumber, Min: 1, Max: 100, Default: 10, Step: 0.5},
	{Name: "tone", Label: "Tone", Type: ParamNumber, Min: 0.01, Max: 1, Default: 0.5, Step: 0.01},
}

// Distortion drives each sample by amount into a tanh soft clip, then runs
// a one-pole smoother whose coefficient is the tone control: tone=1 leaves
// the clipped signal untouched, lower values darken it.
func Distortion(buf *buffer.Buffer, amount, tone float64) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}
	alpha := float32(utils.Clamp(tone, 0.01, 1))
	drive := amount

	out := buf.Clone()
	for ch := range out.ChannelCount() {
		samples := out.Channel(ch)
		var prev float32
		for i, s := range samples {
			clipped := float32(math.Tanh(float64(s) * drive))
			prev += alpha * (clipped - prev)
			samples[i] = prev
		}
	}
	return out, nil
}
