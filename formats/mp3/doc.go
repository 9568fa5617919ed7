// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 layer 3 audio using the pure-Go go-mp3
// decoder. Output is always stereo 16-bit PCM converted to float32.
package mp3
