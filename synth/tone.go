// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/waveline/waveline/buffer"
)

// Waveform selects the shape produced by Tone.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Sawtooth
	Triangle
)

// Tone generates a periodic waveform at freq Hz for duration seconds with
// peak amplitude in [0, 1].
func Tone(sampleRate int, shape Waveform, freq, duration, amplitude float64) (*buffer.Buffer, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if freq <= 0 {
		return nil, ErrInvalidFrequency
	}
	if shape < Sine || shape > Triangle {
		return nil, ErrUnknownWaveform
	}

	buf, err := buffer.New(sampleRate, 1, int(duration*float64(sampleRate)))
	if err != nil {
		return nil, err
	}

	out := buf.Channel(0)
	for i := range out {
		phase := math.Mod(freq*float64(i)/float64(sampleRate), 1)
		out[i] = float32(amplitude * sampleAt(shape, phase))
	}
	return buf, nil
}

// sampleAt evaluates one period of the waveform at phase in [0, 1).
func sampleAt(shape Waveform, phase float64) float64 {
	switch shape {
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case Sawtooth:
		return 2*phase - 1
	case Triangle:
		if phase < 0.5 {
			return 4*phase - 1
		}
		return 3 - 4*phase
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Silence generates a zero-filled single-channel buffer.
func Silence(sampleRate int, duration float64) (*buffer.Buffer, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	return buffer.New(sampleRate, 1, int(duration*float64(sampleRate)))
}

// Chirp sweeps linearly from startFreq to endFreq over duration seconds.
func Chirp(sampleRate int, startFreq, endFreq, duration, amplitude float64) (*buffer.Buffer, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if startFreq <= 0 || endFreq <= 0 {
		return nil, ErrInvalidFrequency
	}

	buf, err := buffer.New(sampleRate, 1, int(duration*float64(sampleRate)))
	if err != nil {
		return nil, err
	}

	// Instantaneous phase of a linear sweep is the integral of the
	// frequency ramp: f0*t + (f1-f0)*t^2/(2*d).
	out := buf.Channel(0)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		phase := startFreq*t + (endFreq-startFreq)*t*t/(2*duration)
		out[i] = float32(amplitude * math.Sin(2*math.Pi*phase))
	}
	return buf, nil
}
