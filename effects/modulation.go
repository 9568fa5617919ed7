// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/waveline/waveline/buffer"
	"github.com/waveline/waveline/utils"
)

// LFOWaveform selects the low-frequency oscillator shape for modulation
// effects that expose it.
type LFOWaveform int

const (
	LFOSine LFOWaveform = iota
	LFOSquare
	LFOTriangle
	LFOSawtooth
)

var lfoWaveformChoices = []string{"sine", "square", "triangle", "sawtooth"}

// lfo produces a unipolar [0,1] oscillator value for phase in [0,1).
func lfo(waveform LFOWaveform, phase float64) float64 {
	phase -= math.Floor(phase)
	switch waveform {
	case LFOSquare:
		if phase < 0.5 {
			return 1
		}
		return 0
	case LFOTriangle:
		if phase < 0.5 {
			return 2 * phase
		}
		return 2 - 2*phase
	case LFOSawtooth:
		return phase
	default:
		return 0.5 + 0.5*math.Sin(2*math.Pi*phase)
	}
}

// readDelayed reads a linearly interpolated sample delay frames behind i.
func readDelayed(samples []float32, i int, delay float64) float32 {
	pos := float64(i) - delay
	if pos <= 0 {
		return 0
	}
	idx := int(pos)
	if idx >= len(samples)-1 {
		return samples[len(samples)-1]
	}
	return utils.Lerp(samples[idx], samples[idx+1], float32(pos-float64(idx)))
}

var chorusParams = []ParamSpec{
	{Name: "rate", Label: "Rate (Hz)", Type: ParamNumber, Min: 0.05, Max: 5, Default: 1.5, Step: 0.05},
	{Name: "depth", Label: "Depth", Type: ParamNumber, Min: 0, Max: 1, Default: 0.5, Step: 0.01},
	{Name: "mix", Label: "Wet Mix", Type: ParamNumber, Min: 0, Max: 1, Default: 0.5, Step: 0.01},
}

// Chorus doubles the signal with a slowly wandering delayed copy. The LFO
// sweeps the delay around 20 ms by up to depth*10 ms.
func Chorus(buf *buffer.Buffer, rate, depth, mix float64) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}

	sr := float64(buf.SampleRate())
	baseDelay := 0.020 * sr
	sweep := depth * 0.010 * sr
	wet := float32(mix)
	dry := 1 - wet

	out := buf.Clone()
	for ch := range out.ChannelCount() {
		src := buf.Channel(ch)
		dst := out.Channel(ch)
		for i := range dst {
			phase := rate * float64(i) / sr
			delay := baseDelay + sweep*lfo(LFOSine, phase)
			dst[i] = src[i]*dry + readDelayed(src, i, delay)*wet
		}
	}
	return out, nil
}

var flangerParams = []ParamSpec{
	{Name: "rate", Label: "Rate (Hz)", Type: ParamNumber, Min: 0.05, Max: 10, Default: 0.5, Step: 0.05},
	{Name: "depth", Label: "Depth", Type: ParamNumber, Min: 0, Max: 1, Default: 0.7, Step: 0.01},
	{Name: "feedback", Label: "Feedback", Type: ParamNumber, Min: 0, Max: 0.95, Default: 0.5, Step: 0.01},
	{Name: "mix", Label: "Wet Mix", Type: ParamNumber, Min: 0, Max: 1, Default: 0.5, Step: 0.01},
}

// Flanger is a short modulated delay (1-10 ms) with feedback, producing
// the characteristic swept comb.
func Flanger(buf *buffer.Buffer, rate, depth, feedback, mix float64) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}

	sr := float64(buf.SampleRate())
	minDelay := 0.001 * sr
	sweep := depth * 0.009 * sr
	fb := float32(feedback)
	wet := float32(mix)
	dry := 1 - wet

	out := buf.Clone()
	for ch := range out.ChannelCount() {
		src := buf.Channel(ch)
		dst := out.Channel(ch)
		// Feedback reads the already-written output so the comb regenerates.
		for i := range dst {
			phase := rate * float64(i) / sr
			delay := minDelay + sweep*lfo(LFOSine, phase)
			delayed := readDelayed(src, i, delay) + fb*readDelayed(dst, i, delay)
			dst[i] = src[i]*dry + delayed*wet
		}
	}
	return out, nil
}

var phaserParams = []ParamSpec{
	{Name: "rate", Label: "Rate (Hz)", Type: ParamNumber, Min: 0.05, Max: 10, Default: 0.4, Step: 0.05},
	{Name: "depth", Label: "Depth", Type: ParamNumber, Min: 0, Max: 1, Default: 0.7, Step: 0.01},
	{Name: "stages", Label: "Stages", Type: ParamNumber, Min: 2, Max: 12, Default: 4, Step: 2},
	{Name: "mix", Label: "Wet Mix", Type: ParamNumber, Min: 0, Max: 1, Default: 0.5, Step: 0.01},
}

// Phaser cascades first-order all-pass stages whose coefficient the LFO
// sweeps, then mixes the phase-shifted signal against the dry input.
func Phaser(buf *buffer.Buffer, rate, depth float64, stages int, mix float64) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}
	if stages < 2 {
		stages = 2
	}

	sr := float64(buf.SampleRate())
	wet := float32(mix)
	dry := 1 - wet

	out := buf.Clone()
	for ch := range out.ChannelCount() {
		src := buf.Channel(ch)
		dst := out.Channel(ch)

		x1 := make([]float32, stages)
		y1 := make([]float32, stages)

		for i := range dst {
			phase := rate * float64(i) / sr
			// Sweep the all-pass corner between about 200 Hz and 2 kHz.
			freq := 200 + depth*1800*lfo(LFOSine, phase)
			w := math.Tan(math.Pi * freq / sr)
			coef := float32((w - 1) / (w + 1))

			y := src[i]
			for s := range stages {
				yNew := coef*y + x1[s] - coef*y1[s]
				x1[s] = y
				y1[s] = yNew
				y = yNew
			}
			dst[i] = src[i]*dry + y*wet
		}
	}
	return out, nil
}

var tremoloParams = []ParamSpec{
	{Name: "rate", Label: "Rate (Hz)", Type: ParamNumber, Min: 0.1, Max: 20, Default: 5, Step: 0.1},
	{Name: "depth", Label: "Depth", Type: ParamNumber, Min: 0, Max: 1, Default: 0.8, Step: 0.01},
	{Name: "waveform", Label: "Waveform", Type: ParamEnum, Min: 0, Max: 3, Default: 0, Step: 1, Choices: lfoWaveformChoices},
}

// Tremolo modulates the gain with the selected LFO waveform: the gain
// swings between 1-depth and 1.
func Tremolo(buf *buffer.Buffer, rate, depth float64, waveform LFOWaveform) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}

	sr := float64(buf.SampleRate())

	out := buf.Clone()
	for ch := range out.ChannelCount() {
		samples := out.Channel(ch)
		for i := range samples {
			phase := rate * float64(i) / sr
			gain := 1 - depth + depth*lfo(waveform, phase)
			samples[i] *= float32(gain)
		}
	}
	return out, nil
}

var wahwahParams = []ParamSpec{
	{Name: "rate", Label: "Rate (Hz)", Type: ParamNumber, Min: 0.1, Max: 10, Default: 1.5, Step: 0.1},
	{Name: "depth", Label: "Depth", Type: ParamNumber, Min: 0, Max: 1, Default: 0.7, Step: 0.01},
	{Name: "resonance", Label: "Resonance", Type: ParamNumber, Min: 0.5, Max: 10, Default: 2.5, Step: 0.1},
}

// Wahwah sweeps a resonant band-pass between 400 Hz and 3 kHz using a
// state-variable filter whose center the LFO drives.
func Wahwah(buf *buffer.Buffer, rate, depth, resonance float64) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}

	sr := float64(buf.SampleRate())
	damp := 1 / resonance

	out := buf.Clone()
	for ch := range out.ChannelCount() {
		samples := out.Channel(ch)
		var low, band float32
		for i, x := range samples {
			phase := rate * float64(i) / sr
			center := 400 + depth*2600*lfo(LFOSine, phase)
			f := float32(2 * math.Sin(math.Pi*center/sr))

			low += f * band
			high := x - low - float32(damp)*band
			band += f * high

			samples[i] = band
		}
	}
	return out, nil
}
