// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"
	"sort"

	"github.com/waveline/waveline/buffer"
)

// entry ties an effect's parameter schema to its dispatch function. The
// schema and the function read the same spec list, which keeps parameter
// introspection in lockstep with the implementation.
type entry struct {
	params []ParamSpec
	apply  func(buf *buffer.Buffer, p Params) (*buffer.Buffer, error)
}

var catalogue = map[string]entry{
	"amplify": {amplifyParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return Amplify(b, pick(p, amplifyParams, "gain"))
	}},
	"normalize": {normalizeParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return Normalize(b, pick(p, normalizeParams, "targetPeak"))
	}},
	"fadeIn": {fadeParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return FadeIn(b, pick(p, fadeParams, "duration"))
	}},
	"fadeOut": {fadeParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return FadeOut(b, pick(p, fadeParams, "duration"))
	}},
	"echo": {echoParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return Echo(b, pick(p, echoParams, "delay"), pick(p, echoParams, "decay"), int(pick(p, echoParams, "repeat")))
	}},
	"reverb": {reverbParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return Reverb(b, pick(p, reverbParams, "roomSize"), pick(p, reverbParams, "damping"), pick(p, reverbParams, "wetLevel"))
	}},
	"changeSpeed": {changeSpeedParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return ChangeSpeed(b, pick(p, changeSpeedParams, "ratio"))
	}},
	"changePitch": {changePitchParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return ChangePitch(b, pick(p, changePitchParams, "ratio"))
	}},
	"paulstretch": {paulstretchParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return Paulstretch(b, pick(p, paulstretchParams, "stretch"))
	}},
	"highPassFilter": {filterParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return HighPassFilter(b, pick(p, filterParams, "cutoff"))
	}},
	"lowPassFilter": {filterParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return LowPassFilter(b, pick(p, filterParams, "cutoff"))
	}},
	"noiseReduction": {noiseReductionParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return NoiseReduction(b, pick(p, noiseReductionParams, "noiseFloor"), pick(p, noiseReductionParams, "reduction"))
	}},
	"compressor": {compressorParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return Compress(b,
			pick(p, compressorParams, "threshold"),
			pick(p, compressorParams, "ratio"),
			pick(p, compressorParams, "attack"),
			pick(p, compressorParams, "release"))
	}},
	"limiter": {limiterParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return Limiter(b, pick(p, limiterParams, "threshold"), pick(p, limiterParams, "makeup"))
	}},
	"noiseGate": {noiseGateParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return NoiseGate(b,
			pick(p, noiseGateParams, "thresholdDB"),
			pick(p, noiseGateParams, "attack"),
			pick(p, noiseGateParams, "hold"),
			pick(p, noiseGateParams, "release"))
	}},
	"distortion": {distortionParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return Distortion(b, pick(p, distortionParams, "amount"), pick(p, distortionParams, "tone"))
	}},
	"chorus": {chorusParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return Chorus(b, pick(p, chorusParams, "rate"), pick(p, chorusParams, "depth"), pick(p, chorusParams, "mix"))
	}},
	"flanger": {flangerParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return Flanger(b,
			pick(p, flangerParams, "rate"),
			pick(p, flangerParams, "depth"),
			pick(p, flangerParams, "feedback"),
			pick(p, flangerParams, "mix"))
	}},
	"phaser": {phaserParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return Phaser(b,
			pick(p, phaserParams, "rate"),
			pick(p, phaserParams, "depth"),
			int(pick(p, phaserParams, "stages")),
			pick(p, phaserParams, "mix"))
	}},
	"tremolo": {tremoloParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return Tremolo(b,
			pick(p, tremoloParams, "rate"),
			pick(p, tremoloParams, "depth"),
			LFOWaveform(pick(p, tremoloParams, "waveform")))
	}},
	"wahwah": {wahwahParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return Wahwah(b, pick(p, wahwahParams, "rate"), pick(p, wahwahParams, "depth"), pick(p, wahwahParams, "resonance"))
	}},
	"clickRemoval": {clickRemovalParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return ClickRemoval(b, pick(p, clickRemovalParams, "threshold"), int(pick(p, clickRemovalParams, "window")))
	}},
	"clipFix": {clipFixParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return ClipFix(b, pick(p, clipFixParams, "threshold"))
	}},
	"bassAndTreble": {bassAndTrebleParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return BassAndTreble(b, pick(p, bassAndTrebleParams, "bass"), pick(p, bassAndTrebleParams, "treble"))
	}},
	"graphicEQ": {graphicEQParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return GraphicEQ(b, bandGains(p, graphicEQParams))
	}},
	"filterCurveEQ": {filterCurveEQParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return FilterCurveEQ(b, bandGains(p, filterCurveEQParams))
	}},
	"notch": {notchParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return Notch(b, pick(p, notchParams, "frequency"), pick(p, notchParams, "q"))
	}},
	"invert": {nil, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return Invert(b)
	}},
	"reverse": {nil, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return Reverse(b)
	}},
	"repeat": {repeatParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return Repeat(b, int(pick(p, repeatParams, "times")))
	}},
	"vocoder": {vocoderParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return Vocoder(b, pick(p, vocoderParams, "carrierFreq"), int(pick(p, vocoderParams, "bands")))
	}},
	"loudnessNormalization": {loudnessParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return LoudnessNormalization(b, pick(p, loudnessParams, "targetDB"))
	}},
	"autoTune": {autoTuneParams, func(b *buffer.Buffer, p Params) (*buffer.Buffer, error) {
		return AutoTune(b, int(pick(p, autoTuneParams, "scale")), pick(p, autoTuneParams, "strength"))
	}},
}

func bandGains(p Params, specs []ParamSpec) [10]float64 {
	var gains [10]float64
	for i := range gains {
		gains[i] = pick(p, specs, bandName(i))
	}
	return gains
}

// Apply runs the named effect with the given parameters and returns a new
// buffer. Unknown effect names fail with ErrUnknownEffect; the input
// buffer is validated and never mutated.
func Apply(name string, buf *buffer.Buffer, p Params) (*buffer.Buffer, error) {
	e, ok := catalogue[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
	}
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}
	out, err := e.apply(buf, p)
	if err != nil {
		return nil, fmt.Errorf("applying %s: %w", name, err)
	}
	return out, nil
}

// Names returns the catalogue's effect names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
