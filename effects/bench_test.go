// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"
	"testing"

	"github.com/waveline/waveline/buffer"
)

func benchSine(b *testing.B, frames int) *buffer.Buffer {
	b.Helper()

	buf, err := buffer.New(44100, 2, frames)
	if err != nil {
		b.Fatal(err)
	}
	for ch := range buf.ChannelCount() {
		samples := buf.Channel(ch)
		for f := range samples {
			samples[f] = float32(math.Sin(2 * math.Pi * 440 * float64(f) / 44100))
		}
	}
	return buf
}

func BenchmarkAmplify(b *testing.B) {
	buf := benchSine(b, 44100)

	for b.Loop() {
		if _, err := Amplify(buf, 0.5); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReverb(b *testing.B) {
	buf := benchSine(b, 44100)

	for b.Loop() {
		if _, err := Reverb(buf, 0.5, 0.5, 0.3); err != nil {
			b.Fatal(err)
		}
	}
}
