// SPDX-License-Identifier: EPL-2.0

// Package waveline is a multi-track audio editing engine.
//
// The module is organized around one data type, buffer.Buffer: an owned
// multi-channel array of float32 samples plus its sample rate. Decoders,
// generators and effects all produce new buffers and never share storage,
// so any buffer a caller holds stays valid no matter what the engine does
// afterwards.
//
// # Engine
//
// The engine subpackage is the track and transport manager:
//
//	e := engine.New(engine.WithSampleRate(44100))
//	id, _ := e.GenerateTone("lead", synth.Sine, 440, 2, 0.8)
//	_ = e.ApplyEffect(id, "reverb", effects.Params{"wet": 0.4})
//	_ = e.Play(id, 0, 0)
//
//	// host audio callback
//	out := make([]float32, 4096)
//	e.Render(out)
//
// # Effects
//
// The effects subpackage is a catalogue of named buffer transforms
// (amplify, normalize, echo, reverb, filters and EQ, dynamics, pitch and
// time stretching, modulation and more). Each effect declares a parameter
// schema the UI can introspect:
//
//	specs := effects.Parameters("echo")
//	out, err := effects.Apply("echo", buf, effects.Params{"delay": 0.3})
//
// # Analysis
//
// The spectral subpackage extracts magnitude spectra, spectrograms,
// per-buffer features (peak frequency, centroid, RMS, zero crossings),
// clipping reports, silence segmentation and a spectral-flux beat
// estimate.
//
// # Formats and MIDI
//
// The formats subpackage registers container codecs: WAV round-trips
// bit-exactly, AIFF round-trips via go-audio, MP3 and Ogg Vorbis decode.
// The midi subpackage parses Standard MIDI Files and 3-byte live
// messages.
//
// # Generators
//
// The synth subpackage builds buffers procedurally: tones, white and pink
// noise, chirps, DTMF pairs, metronome clicks, Karplus-Strong plucks and
// Risset-style drums, all with injectable randomness for reproducible
// tests.
package waveline
