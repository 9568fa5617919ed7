// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives that bridge in-memory
// sample buffers and pull-based pipelines.
//
// # Source Interface
//
// The Source interface is the foundation:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders, resamplers and playback voices implement Source so they can be
// chained together. ReadSamples returns io.EOF (possibly alongside a final
// batch of samples) when the stream is finished.
//
// # Buffers and Streams
//
// BufferSource streams a buffer.Buffer; Collect drains a Source back into
// a buffer.Buffer:
//
//	src, _ := audio.NewBufferSource(buf)
//	out, _ := audio.Collect(audio.NewResampler(src, 48000))
//
// # Rate and Channel Conversion
//
// Resampler converts sample rates with cubic interpolation plus a simple
// anti-aliasing low-pass when downsampling. ConformChannels adjusts the
// channel count (averaging mixdown, dual-mono expansion). The engine runs
// both on every imported file so track buffers always match the engine
// rate and layout.
package audio
