// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/waveline/waveline/buffer"
)

var loudnessParams = []ParamSpec{
	{Name: "targetDB", Label: "Target Loudness (dB)", Type: ParamNumber, Min: -60, Max: 0, Default: -14, Step: 0.5},
}

// LoudnessNormalization approximates integrated loudness as the RMS level
// over the whole buffer (in dBFS) and applies the single linear gain that
// moves it to targetDB. A silent buffer is returned unchanged.
func LoudnessNormalization(buf *buffer.Buffer, targetDB float64) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}

	var sum float64
	var count int
	for ch := range buf.ChannelCount() {
		for _, s := range buf.Channel(ch) {
			sum += float64(s) * float64(s)
			count++
		}
	}
	if count == 0 {
		return buf.Clone(), nil
	}
	rms := math.Sqrt(sum / float64(count))
	if rms == 0 {
		return buf.Clone(), nil
	}

	currentDB := 20 * math.Log10(rms)
	gain := float32(math.Pow(10, (targetDB-currentDB)/20))

	out := buf.Clone()
	for ch := range out.ChannelCount() {
		samples := out.Channel(ch)
		for i := range samples {
			samples[i] *= gain
		}
	}
	return out, nil
}
