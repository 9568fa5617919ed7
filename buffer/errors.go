// SPDX-License-Identifier: EPL-2.0

package buffer

import "errors"

var (
	ErrNilBuffer             = errors.New("buffer is nil")
	ErrInvalidSampleRate     = errors.New("sample rate must be positive")
	ErrInvalidChannelCount   = errors.New("buffer needs at least one channel")
	ErrChannelLengthMismatch = errors.New("all channels must have the same length")
)
