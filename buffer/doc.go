// SPDX-License-Identifier: EPL-2.0

// Package buffer defines the sample container the rest of the engine is
// built on.
//
// A Buffer is a multi-channel array of float32 samples in [-1.0, 1.0] plus
// its sample rate. Buffers follow copy-on-transform semantics: no two
// Buffers share backing storage, and every effect or edit produces a new
// Buffer rather than mutating its input. Code that needs scratch space
// clones first:
//
//	out := in.Clone()
//	for ch := range out.ChannelCount() {
//	    samples := out.Channel(ch)
//	    // mutate samples freely; in stays untouched
//	}
//
// Invariants (checked by Validate):
//   - sample rate is positive
//   - at least one channel
//   - every channel holds the same number of frames
package buffer
