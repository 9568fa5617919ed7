// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/waveline/waveline/buffer"
	"github.com/waveline/waveline/utils"
)

var noiseReductionParams = []ParamSpec{
	{Name: "noiseFloor", Label: "Noise Floor", Type: ParamNumber, Min: 0, Max: 1, Default: 0.01, Step: 0.001},
	{Name: "reduction", Label: "Reduction", Type: ParamNumber, Min: 0, Max: 1, Default: 0.8, Step: 0.01},
}

// NoiseReduction gates each sample: anything quieter than noiseFloor is
// attenuated by (1-reduction), everything else passes through untouched.
func NoiseReduction(buf *buffer.Buffer, noiseFloor, reduction float64) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}

	floor := float32(noiseFloor)
	keep := float32(1 - reduction)

	out := buf.Clone()
	for ch := range out.ChannelCount() {
		samples := out.Channel(ch)
		for i, s := range samples {
			a := s
			if a < 0 {
				a = -a
			}
			if a < floor {
				samples[i] = s * keep
			}
		}
	}
	return out, nil
}

var compressorParams = []ParamSpec{
	{Name: "threshold", Label: "Threshold", Type: ParamNumber, Min: 0.01, Max: 1, Default: 0.5, Step: 0.01},
	{Name: "ratio", Label: "Ratio", Type: ParamNumber, Min: 1, Max: 20, Default: 4, Step: 0.1},
	{Name: "attack", Label: "Attack (s)", Type: ParamNumber, Min: 0.0001, Max: 1, Default: 0.01, Step: 0.0001},
	{Name: "release", Label: "Release (s)", Type: ParamNumber, Min: 0.001, Max: 5, Default: 0.1, Step: 0.001},
}

// Compress runs an attack/release envelope follower over the absolute
// amplitude of each channel. While the envelope exceeds threshold the
// sample gain becomes (threshold + (envelope-threshold)/ratio)/envelope.
func Compress(buf *buffer.Buffer, threshold, ratio, attack, release float64) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}

	rate := float64(buf.SampleRate())
	attackCoef := float32(math.Exp(-1 / math.Max(attack*rate, 1)))
	releaseCoef := float32(math.Exp(-1 / math.Max(release*rate, 1)))
	thr := float32(threshold)
	r := float32(ratio)

	out := buf.Clone()
	for ch := range out.ChannelCount() {
		samples := out.Channel(ch)
		var env float32
		for i, s := range samples {
			a := s
			if a < 0 {
				a = -a
			}
			if a > env {
				env = attackCoef*env + (1-attackCoef)*a
			} else {
				env = releaseCoef*env + (1-releaseCoef)*a
			}

			if env > thr {
				gain := (thr + (env-thr)/r) / env
				samples[i] = s * gain
			}
		}
	}
	return out, nil
}

// limiterLookahead is the fixed peak-scan window in samples.
const limiterLookahead = 64

var limiterParams = []ParamSpec{
	{Name: "threshold", Label: "Threshold", Type: ParamNumber, Min: 0.01, Max: 1, Default: 0.9, Step: 0.01},
	{Name: "makeup", Label: "Makeup Gain", Type: ParamNumber, Min: 0.1, Max: 4, Default: 1, Step: 0.01},
}

// Limiter is a lookahead peak limiter: each sample's gain is
// min(1, threshold/peak) over the next limiterLookahead samples, then the
// makeup gain is applied.
func Limiter(buf *buffer.Buffer, threshold, makeup float64) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}

	thr := float32(threshold)
	mk := float32(makeup)

	out := buf.Clone()
	for ch := range out.ChannelCount() {
		samples := out.Channel(ch)
		n := len(samples)
		for i := range samples {
			var peak float32
			end := min(i+limiterLookahead, n)
			for j := i; j < end; j++ {
				a := samples[j]
				if a < 0 {
					a = -a
				}
				if a > peak {
					peak = a
				}
			}

			gain := float32(1)
			if peak > thr {
				gain = thr / peak
			}
			samples[i] *= gain * mk
		}
	}
	return out, nil
}

// gateState is the explicit five-state machine driving NoiseGate.
type gateState int

const (
	gateClosed gateState = iota
	gateOpening
	gateOpen
	gateHolding
	gateClosing
)

var noiseGateParams = []ParamSpec{
	{Name: "thresholdDB", Label: "Threshold (dB)", Type: ParamNumber, Min: -80, Max: 0, Default: -40, Step: 0.5},
	{Name: "attack", Label: "Attack (s)", Type: ParamNumber, Min: 0.0001, Max: 1, Default: 0.01, Step: 0.0001},
	{Name: "hold", Label: "Hold (s)", Type: ParamNumber, Min: 0, Max: 2, Default: 0.05, Step: 0.001},
	{Name: "release", Label: "Release (s)", Type: ParamNumber, Min: 0.001, Max: 5, Default: 0.1, Step: 0.001},
}

// NoiseGate mutes audio below thresholdDB using the state machine
// closed -> opening -> open -> holding -> closing -> closed. Attack, hold
// and release are converted to sample counts at the buffer rate.
func NoiseGate(buf *buffer.Buffer, thresholdDB, attack, hold, release float64) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}

	rate := float64(buf.SampleRate())
	threshold := float32(utils.DBToLinear(thresholdDB))
	attackSamples := max(int(attack*rate), 1)
	holdSamples := int(hold * rate)
	releaseSamples := max(int(release*rate), 1)

	out := buf.Clone()
	for ch := range out.ChannelCount() {
		samples := out.Channel(ch)

		state := gateClosed
		gain := float32(0)
		counter := 0

		for i, s := range samples {
			a := s
			if a < 0 {
				a = -a
			}
			above := a >= threshold

			switch state {
			case gateClosed:
				if above {
					state = gateOpening
					counter = 0
				}
			case gateOpening:
				counter++
				gain = float32(counter) / float32(attackSamples)
				if counter >= attackSamples {
					gain = 1
					state = gateOpen
				}
			case gateOpen:
				if !above {
					state = gateHolding
					counter = 0
				}
			case gateHolding:
				if above {
					state = gateOpen
				} else {
					counter++
					if counter >= holdSamples {
						state = gateClosing
						counter = 0
					}
				}
			case gateClosing:
				if above {
					state = gateOpening
					counter = int(gain * float32(attackSamples))
				} else {
					counter++
					gain = 1 - float32(counter)/float32(releaseSamples)
					if counter >= releaseSamples {
						gain = 0
						state = gateClosed
					}
				}
			}

			samples[i] = s * gain
		}
	}
	return out, nil
}
