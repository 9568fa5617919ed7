// SPDX-License-Identifier: EPL-2.0

// Package midi reads Standard MIDI Files and translates 3-byte live
// messages.
//
// Parse decodes an SMF byte slice into a Document of absolute-tick events,
// handling running status, meta and SysEx events, and the note-on
// velocity-zero convention. Malformed or truncated input returns one of
// the package's sentinel errors; Parse never panics on garbage.
//
// Encode writes back only a skeleton file (header plus empty tracks); the
// codec is read-oriented. EncodeLive and DecodeLive cover the real-time
// wire form used when talking to hardware controllers.
package midi
