// SPDX-License-Identifier: EPL-2.0

// Package effects implements the transform catalogue: every effect is a
// pure function from a sample buffer (plus parameters) to a brand-new
// buffer. Inputs are never mutated.
//
// # Calling Effects
//
// Effects can be called directly with typed parameters:
//
//	out, err := effects.Amplify(buf, 1.5)
//
// or dispatched by name through the catalogue, which is what UI layers do:
//
//	out, err := effects.Apply("amplify", buf, effects.Params{"gain": 1.5})
//
// Apply fails with ErrUnknownEffect for names outside the catalogue.
//
// # Parameter Introspection
//
// Parameters(name) returns the ordered schema for an effect's parameters
// (identifier, label, type, min/max/default/step, enum choices). The
// schema is declared next to each implementation and shared with the
// dispatch table, so the two cannot drift apart. Unknown names return an
// empty list.
//
// # Edge-Case Policy
//
// Uniform across the catalogue:
//   - nil or malformed buffers fail with a buffer validation error
//   - out-of-range parameters clamp to the declared range, they never fail
//   - degenerate ranges (zero-length fades, zero-peak normalize) return
//     the input unchanged, as a copy
//
// Filter cutoffs clamp to [1 Hz, Nyquist].
//
// AutoTune is a documented simplification: it applies scale-indexed
// amplitude modulation and performs no pitch detection or correction.
package effects
