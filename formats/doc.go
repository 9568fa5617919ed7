// SPDX-License-Identifier: EPL-2.0

// Package formats registers container codecs by format key.
//
// WAV is the authoritative export path and round-trips bit-exactly. AIFF
// round-trips through go-audio. MP3 and Ogg Vorbis decode only; exporting
// to mp3, ogg or flac degrades to WAV-equivalent PCM framing under the
// requested media type, which is an explicit, documented property of the
// export contract. Asking for any other format fails with
// ErrFormatNotSupported.
package formats
