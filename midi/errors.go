// SPDX-License-Identifier: EPL-2.0

package midi

import "errors"

var (
	ErrNotMidiFile      = errors.New("missing MThd header signature")
	ErrBadHeader        = errors.New("malformed MThd header")
	ErrBadTrackHeader   = errors.New("malformed MTrk track header")
	ErrTruncated        = errors.New("unexpected end of MIDI data")
	ErrVLQTooLong       = errors.New("variable-length quantity exceeds 4 bytes")
	ErrMissingStatus    = errors.New("data byte with no running status")
	ErrNotLiveMessage   = errors.New("not a recognized live MIDI message")
	ErrShortLiveMessage = errors.New("live MIDI message shorter than 3 bytes")
)
