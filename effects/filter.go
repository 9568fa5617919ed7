// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/waveline/waveline/buffer"
	"github.com/waveline/waveline/utils"
)

var filterParams = []ParamSpec{
	{Name: "cutoff", Label: "Cutoff (Hz)", Type: ParamNumber, Min: 1, Max: 96000, Default: 1000, Step: 1},
}

// clampCutoff enforces the cutoff policy: at least 1 Hz, at most Nyquist.
func clampCutoff(cutoff float64, sampleRate int) float64 {
	return utils.Clamp(cutoff, 1, float64(sampleRate)/2)
}

// LowPassFilter applies a one-pole RC low-pass at cutoff Hz per channel.
// Cutoff clamps to [1 Hz, Nyquist].
func LowPassFilter(buf *buffer.Buffer, cutoff float64) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}
	cutoff = clampCutoff(cutoff, buf.SampleRate())

	rc := 1.0 / (2 * math.Pi * cutoff)
	dt := 1.0 / float64(buf.SampleRate())
	alpha := float32(dt / (rc + dt))

	out := buf.Clone()
	for ch := range out.ChannelCount() {
		samples := out.Channel(ch)
		var prev float32
		for i, x := range samples {
			prev += alpha * (x - prev)
			samples[i] = prev
		}
	}
	return out, nil
}

// HighPassFilter applies a one-pole RC high-pass at cutoff Hz per channel.
// Cutoff clamps to [1 Hz, Nyquist].
func HighPassFilter(buf *buffer.Buffer, cutoff float64) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}
	cutoff = clampCutoff(cutoff, buf.SampleRate())

	rc := 1.0 / (2 * math.Pi * cutoff)
	dt := 1.0 / float64(buf.SampleRate())
	alpha := float32(rc / (rc + dt))

	out := buf.Clone()
	for ch := range out.ChannelCount() {
		samples := out.Channel(ch)
		var prevIn, prevOut float32
		for i, x := range samples {
			prevOut = alpha * (prevOut + x - prevIn)
			prevIn = x
			samples[i] = prevOut
		}
	}
	return out, nil
}
