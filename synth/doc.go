// SPDX-License-Identifier: EPL-2.0

// Package synth generates single-channel sample buffers procedurally.
//
// Every generator returns a brand-new buffer at the requested sample rate;
// generators that use randomness (Noise, Pluck, RissetDrum) take a
// *rand.Rand so callers can seed them for reproducible output. Passing a
// nil source falls back to the shared global source.
package synth
