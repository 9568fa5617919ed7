// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"

	"github.com/waveline/waveline/synth"
)

// Each generator produces a brand-new single-channel buffer at the engine
// rate and registers it as a track, returning the new track id.

func (e *Engine) GenerateTone(name string, shape synth.Waveform, freq, duration, amplitude float64) (string, error) {
	buf, err := synth.Tone(e.sampleRate, shape, freq, duration, amplitude)
	if err != nil {
		return "", fmt.Errorf("generating tone: %w", err)
	}
	return e.AddTrack(name, buf)
}

func (e *Engine) GenerateNoise(name string, color synth.NoiseColor, duration, amplitude float64) (string, error) {
	buf, err := synth.Noise(e.sampleRate, color, duration, amplitude, e.rng)
	if err != nil {
		return "", fmt.Errorf("generating noise: %w", err)
	}
	return e.AddTrack(name, buf)
}

func (e *Engine) GenerateSilence(name string, duration float64) (string, error) {
	buf, err := synth.Silence(e.sampleRate, duration)
	if err != nil {
		return "", fmt.Errorf("generating silence: %w", err)
	}
	return e.AddTrack(name, buf)
}

func (e *Engine) GenerateChirp(name string, startFreq, endFreq, duration, amplitude float64) (string, error) {
	buf, err := synth.Chirp(e.sampleRate, startFreq, endFreq, duration, amplitude)
	if err != nil {
		return "", fmt.Errorf("generating chirp: %w", err)
	}
	return e.AddTrack(name, buf)
}

func (e *Engine) GenerateDTMF(name string, key rune, duration, amplitude float64) (string, error) {
	buf, err := synth.DTMF(e.sampleRate, key, duration, amplitude)
	if err != nil {
		return "", fmt.Errorf("generating dtmf: %w", err)
	}
	return e.AddTrack(name, buf)
}

func (e *Engine) GenerateRhythm(name string, bpm float64, beats, beatsPerBar int, amplitude float64) (string, error) {
	buf, err := synth.Rhythm(e.sampleRate, bpm, beats, beatsPerBar, amplitude)
	if err != nil {
		return "", fmt.Errorf("generating rhythm: %w", err)
	}
	return e.AddTrack(name, buf)
}

func (e *Engine) GeneratePluck(name string, freq, duration, amplitude float64) (string, error) {
	buf, err := synth.Pluck(e.sampleRate, freq, duration, amplitude, e.rng)
	if err != nil {
		return "", fmt.Errorf("generating pluck: %w", err)
	}
	return e.AddTrack(name, buf)
}

func (e *Engine) GenerateRissetDrum(name string, freq, duration, amplitude float64) (string, error) {
	buf, err := synth.RissetDrum(e.sampleRate, freq, duration, amplitude, e.rng)
	if err != nil {
		return "", fmt.Errorf("generating risset drum: %w", err)
	}
	return e.AddTrack(name, buf)
}
