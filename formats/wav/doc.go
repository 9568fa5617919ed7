// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE containers.
//
// The encoder is the module's authoritative export path: a canonical
// 44-byte header and interleaved 16-bit little-endian PCM, byte for byte.
// Decoding goes through the go-audio chunk parser and accepts the bit
// depths and chunk orderings found in the wild.
package wav
