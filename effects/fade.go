// SPDX-License-Identifier: EPL-2.0

package effects

import "github.com/waveline/waveline/buffer"

var fadeParams = []ParamSpec{
	{Name: "duration", Label: "Duration (s)", Type: ParamNumber, Min: 0, Max: 600, Default: 1, Step: 0.01},
}

// FadeIn applies a linear 0->1 ramp over the first
// min(duration*sampleRate, frameCount) samples. A non-positive duration
// returns the input unchanged.
func FadeIn(buf *buffer.Buffer, duration float64) (*buffer.Buffer, error) {
	return fade(buf, duration, true)
}

// FadeOut applies a linear 1->0 ramp over the last
// min(duration*sampleRate, frameCount) samples. A non-positive duration
// returns the input unchanged.
func FadeOut(buf *buffer.Buffer, duration float64) (*buffer.Buffer, error) {
	return fade(buf, duration, false)
}

func fade(buf *buffer.Buffer, duration float64, in bool) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}

	out := buf.Clone()
	frames := out.FrameCount()
	n := int(duration * float64(out.SampleRate()))
	if n <= 0 {
		return out, nil
	}
	if n > frames {
		n = frames
	}

	for ch := range out.ChannelCount() {
		samples := out.Channel(ch)
		for i := range n {
			ramp := float32(i) / float32(n)
			if in {
				samples[i] *= ramp
			} else {
				samples[frames-1-i] *= ramp
			}
		}
	}
	return out, nil
}
