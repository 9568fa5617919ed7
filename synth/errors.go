// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	ErrInvalidDuration  = errors.New("duration must be greater than zero")
	ErrInvalidFrequency = errors.New("frequency must be greater than zero")
	ErrInvalidTempo     = errors.New("tempo must be greater than zero")
	ErrUnknownWaveform  = errors.New("unknown waveform")
	ErrUnknownKey       = errors.New("unknown DTMF keypad symbol")
)
