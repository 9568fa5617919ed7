// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"math/rand/v2"

	"github.com/waveline/waveline/buffer"
)

// Pluck synthesizes a plucked string with the Karplus-Strong algorithm: a
// noise-seeded delay line the length of one period, fed back through an
// averaging filter, shaped by an exponential decay envelope.
func Pluck(sampleRate int, freq, duration, amplitude float64, rng *rand.Rand) (*buffer.Buffer, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if freq <= 0 {
		return nil, ErrInvalidFrequency
	}

	buf, err := buffer.New(sampleRate, 1, int(duration*float64(sampleRate)))
	if err != nil {
		return nil, err
	}

	period := int(float64(sampleRate) / freq)
	if period < 2 {
		period = 2
	}

	delay := make([]float64, period)
	for i := range delay {
		delay[i] = randFloat(rng)*2 - 1
	}

	const feedback = 0.996
	out := buf.Channel(0)
	pos := 0
	for i := range out {
		next := (pos + 1) % period
		sample := delay[pos]
		delay[pos] = feedback * 0.5 * (delay[pos] + delay[next])
		pos = next

		env := math.Exp(-3 * float64(i) / float64(len(out)))
		out[i] = float32(amplitude * env * sample)
	}
	return buf, nil
}

// RissetDrum synthesizes a drum hit in the style of Risset's bell studies:
// a downward-sweeping fundamental, two enharmonic partials, and a fast
// decaying noise burst.
func RissetDrum(sampleRate int, freq, duration, amplitude float64, rng *rand.Rand) (*buffer.Buffer, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if freq <= 0 {
		return nil, ErrInvalidFrequency
	}

	buf, err := buffer.New(sampleRate, 1, int(duration*float64(sampleRate)))
	if err != nil {
		return nil, err
	}

	out := buf.Channel(0)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		progress := float64(i) / float64(len(out))

		// Fundamental sweeps down ten percent over the hit.
		swept := freq * (1 - 0.1*progress)
		body := math.Sin(2 * math.Pi * swept * t)
		partials := 0.5*math.Sin(2*math.Pi*swept*1.6*t) +
			0.25*math.Sin(2*math.Pi*swept*2.2*t)
		noise := (randFloat(rng)*2 - 1) * math.Exp(-40*t)

		env := math.Exp(-6 * progress)
		out[i] = float32(amplitude * env * (0.6*body + 0.3*partials + 0.4*noise))
	}
	return buf, nil
}
