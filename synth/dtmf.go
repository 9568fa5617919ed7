// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/waveline/waveline/buffer"
)

// dtmfPairs maps keypad symbols to their low/high tone pair in Hz, per the
// standard 4x4 keypad layout.
var dtmfPairs = map[rune][2]float64{
	'1': {697, 1209}, '2': {697, 1336}, '3': {697, 1477}, 'A': {697, 1633},
	'4': {770, 1209}, '5': {770, 1336}, '6': {770, 1477}, 'B': {770, 1633},
	'7': {852, 1209}, '8': {852, 1336}, '9': {852, 1477}, 'C': {852, 1633},
	'*': {941, 1209}, '0': {941, 1336}, '#': {941, 1477}, 'D': {941, 1633},
}

// DTMF generates the dual-tone pair for one keypad symbol. Both tones are
// summed at half the requested amplitude so the peak stays within range.
func DTMF(sampleRate int, key rune, duration, amplitude float64) (*buffer.Buffer, error) {
	pair, ok := dtmfPairs[key]
	if !ok {
		return nil, ErrUnknownKey
	}
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}

	buf, err := buffer.New(sampleRate, 1, int(duration*float64(sampleRate)))
	if err != nil {
		return nil, err
	}

	out := buf.Channel(0)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		low := math.Sin(2 * math.Pi * pair[0] * t)
		high := math.Sin(2 * math.Pi * pair[1] * t)
		out[i] = float32(amplitude * 0.5 * (low + high))
	}
	return buf, nil
}
