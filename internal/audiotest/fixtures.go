// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds deterministic sample buffers for tests.
package audiotest

import (
	"math"
	"testing"

	"github.com/waveline/waveline/buffer"
)

// Generate builds a buffer whose samples come from waveform(frame, channel).
func Generate(t *testing.T, sampleRate, channels, frames int, waveform func(frame, channel int) float32) *buffer.Buffer {
	t.Helper()

	buf, err := buffer.New(sampleRate, channels, frames)
	if err != nil {
		t.Fatalf("audiotest: building buffer: %v", err)
	}
	for ch := range channels {
		samples := buf.Channel(ch)
		for f := range frames {
			samples[f] = waveform(f, ch)
		}
	}
	return buf
}

// Silence returns an all-zero buffer.
func Silence(t *testing.T, sampleRate, channels, frames int) *buffer.Buffer {
	t.Helper()
	return Generate(t, sampleRate, channels, frames, func(int, int) float32 { return 0 })
}

// Constant returns a buffer where every sample equals value.
func Constant(t *testing.T, sampleRate, channels, frames int, value float32) *buffer.Buffer {
	t.Helper()
	return Generate(t, sampleRate, channels, frames, func(int, int) float32 { return value })
}

// Sine returns a buffer holding a full-scale sine at frequency Hz.
func Sine(t *testing.T, sampleRate, channels, frames int, frequency float64) *buffer.Buffer {
	t.Helper()
	return Generate(t, sampleRate, channels, frames, func(f, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * frequency * float64(f) / float64(sampleRate)))
	})
}

// Ramp returns a buffer whose samples rise linearly from 0 toward 1 per
// channel, offset slightly per channel so channels are distinguishable.
func Ramp(t *testing.T, sampleRate, channels, frames int) *buffer.Buffer {
	t.Helper()
	return Generate(t, sampleRate, channels, frames, func(f, ch int) float32 {
		if frames <= 1 {
			return 0
		}
		v := float32(f)/float32(frames-1) + float32(ch)*0.001
		if v > 1 {
			v = 1
		}
		return v
	})
}

// Impulse returns a silent buffer with a single full-scale sample at frame at.
func Impulse(t *testing.T, sampleRate, channels, frames, at int) *buffer.Buffer {
	t.Helper()
	return Generate(t, sampleRate, channels, frames, func(f, _ int) float32 {
		if f == at {
			return 1
		}
		return 0
	})
}
