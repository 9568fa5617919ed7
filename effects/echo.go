// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/waveline/waveline/buffer"
)

var echoParams = []ParamSpec{
	{Name: "delay", Label: "Delay (s)", Type: ParamNumber, Min: 0.01, Max: 5, Default: 0.5, Step: 0.01},
	{Name: "decay", Label: "Decay", Type: ParamNumber, Min: 0, Max: 1, Default: 0.5, Step: 0.01},
	{Name: "repeat", Label: "Repeats", Type: ParamNumber, Min: 1, Max: 16, Default: 3, Step: 1},
}

// Echo mixes repeat attenuated copies of the input onto an extended
// output: copy k is shifted by k*floor(delay*sampleRate) samples and
// scaled by decay^k. The output grows to
// frameCount + repeat*floor(delay*sampleRate) samples. No clipping is
// applied; callers that need it can Amplify(out, 1) afterwards.
func Echo(buf *buffer.Buffer, delay, decay float64, repeat int) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}
	if repeat < 0 {
		repeat = 0
	}

	delaySamples := int(delay * float64(buf.SampleRate()))
	if delaySamples < 0 {
		delaySamples = 0
	}

	frames := buf.FrameCount()
	out, err := buffer.New(buf.SampleRate(), buf.ChannelCount(), frames+repeat*delaySamples)
	if err != nil {
		return nil, err
	}

	for ch := range buf.ChannelCount() {
		src := buf.Channel(ch)
		dst := out.Channel(ch)
		for k := 0; k <= repeat; k++ {
			gain := float32(math.Pow(decay, float64(k)))
			offset := k * delaySamples
			for i, s := range src {
				dst[offset+i] += s * gain
			}
		}
	}
	return out, nil
}
