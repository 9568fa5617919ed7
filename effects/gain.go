// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/waveline/waveline/buffer"
)

var amplifyParams = []ParamSpec{
	{Name: "gain", Label: "Gain", Type: ParamNumber, Min: 0, Max: 10, Default: 1, Step: 0.01},
}

// Amplify multiplies every sample by gain and hard-clips the result to
// [-1, 1].
func Amplify(buf *buffer.Buffer, gain float64) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}

	g := float32(gain)
	out := buf.Clone()
	for ch := range out.ChannelCount() {
		samples := out.Channel(ch)
		for i, s := range samples {
			v := s * g
			if v > 1 {
				v = 1
			} else if v < -1 {
				v = -1
			}
			samples[i] = v
		}
	}
	return out, nil
}

var normalizeParams = []ParamSpec{
	{Name: "targetPeak", Label: "Target Peak", Type: ParamNumber, Min: 0, Max: 1, Default: 1, Step: 0.01},
}

// Normalize scales the buffer so its absolute peak across all channels
// equals targetPeak. A silent buffer is returned unchanged.
func Normalize(buf *buffer.Buffer, targetPeak float64) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}

	var peak float64
	for ch := range buf.ChannelCount() {
		for _, s := range buf.Channel(ch) {
			if a := math.Abs(float64(s)); a > peak {
				peak = a
			}
		}
	}
	if peak == 0 {
		return buf.Clone(), nil
	}
	return Amplify(buf, targetPeak/peak)
}

// Invert negates every sample.
func Invert(buf *buffer.Buffer) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}

	out := buf.Clone()
	for ch := range out.ChannelCount() {
		samples := out.Channel(ch)
		for i := range samples {
			samples[i] = -samples[i]
		}
	}
	return out, nil
}

// Reverse mirrors the sample order of every channel.
func Reverse(buf *buffer.Buffer) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}

	out := buf.Clone()
	for ch := range out.ChannelCount() {
		samples := out.Channel(ch)
		for i, j := 0, len(samples)-1; i < j; i, j = i+1, j-1 {
			samples[i], samples[j] = samples[j], samples[i]
		}
	}
	return out, nil
}

var repeatParams = []ParamSpec{
	{Name: "times", Label: "Repeats", Type: ParamNumber, Min: 1, Max: 32, Default: 1, Step: 1},
}

// Repeat appends times extra copies of the buffer after the original, so
// the result holds the audio times+1 times.
func Repeat(buf *buffer.Buffer, times int) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}
	if times < 1 {
		return buf.Clone(), nil
	}

	frames := buf.FrameCount()
	out, err := buffer.New(buf.SampleRate(), buf.ChannelCount(), frames*(times+1))
	if err != nil {
		return nil, err
	}
	for ch := range buf.ChannelCount() {
		src := buf.Channel(ch)
		dst := out.Channel(ch)
		for k := range times + 1 {
			copy(dst[k*frames:(k+1)*frames], src)
		}
	}
	return out, nil
}
