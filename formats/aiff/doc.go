// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes FORM/AIFF containers through go-audio's
// codec, converting between its integer PCM buffers and this module's
// float32 sample buffers.
package aiff
