// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/waveline/waveline/buffer"
)

const (
	clickSeconds   = 0.05
	accentPitch    = 880.0
	beatPitch      = 440.0
	accentLevel    = 1.0
	beatLevel      = 0.6
	clickDecayRate = 60.0
)

// Rhythm generates a metronome click track: beats clicks at bpm, with the
// first beat of every beatsPerBar group accented (higher pitch, louder).
// Each click is a short bell-enveloped sine burst.
func Rhythm(sampleRate int, bpm float64, beats, beatsPerBar int, amplitude float64) (*buffer.Buffer, error) {
	if bpm <= 0 {
		return nil, ErrInvalidTempo
	}
	if beats <= 0 {
		return nil, ErrInvalidDuration
	}
	if beatsPerBar < 1 {
		beatsPerBar = 1
	}

	secondsPerBeat := 60 / bpm
	frames := int(float64(beats) * secondsPerBeat * float64(sampleRate))
	buf, err := buffer.New(sampleRate, 1, frames)
	if err != nil {
		return nil, err
	}

	out := buf.Channel(0)
	clickFrames := int(clickSeconds * float64(sampleRate))
	for beat := range beats {
		pitch, level := beatPitch, beatLevel
		if beat%beatsPerBar == 0 {
			pitch, level = accentPitch, accentLevel
		}

		start := int(float64(beat) * secondsPerBeat * float64(sampleRate))
		for i := range clickFrames {
			pos := start + i
			if pos >= len(out) {
				break
			}
			t := float64(i) / float64(sampleRate)
			// Bell envelope: fast attack, exponential ring-out.
			env := math.Exp(-clickDecayRate*t) * math.Min(1, t*float64(sampleRate)/8)
			out[pos] = float32(amplitude * level * env * math.Sin(2*math.Pi*pitch*t))
		}
	}
	return buf, nil
}
