// SPDX-License-Identifier: EPL-2.0

package waveline

import (
	"fmt"
	"io"

	"github.com/waveline/waveline/audio"
	"github.com/waveline/waveline/buffer"
	"github.com/waveline/waveline/formats"
)

// Load is a high-level convenience function that decodes a container
// stream into a sample buffer conformed to the requested rate and channel
// layout.
//
// It runs the same pipeline the engine uses when importing a track:
//  1. Looks up the decoder for format in the default codec registry
//  2. Decodes and collects the whole stream into a buffer
//  3. Resamples to sampleRate using cubic interpolation
//  4. Conforms the channel count (mixdown by averaging, expansion by
//     duplication)
//
// For more control over the pipeline, use formats.Default and the audio
// subpackage directly.
//
// Example:
//
//	f, _ := os.Open("take1.mp3")
//	buf, err := waveline.Load("mp3", f, 44100, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// buf is now stereo 44.1 kHz PCM ready for the engine
func Load(format string, r io.Reader, sampleRate, channels int) (*buffer.Buffer, error) {
	dec, err := formats.Default().Decoder(format)
	if err != nil {
		return nil, err
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s stream: %w", format, err)
	}
	defer src.Close()

	buf, err := audio.Collect(src)
	if err != nil {
		return nil, fmt.Errorf("collecting %s stream: %w", format, err)
	}

	buf, err = audio.ConvertRate(buf, sampleRate)
	if err != nil {
		return nil, err
	}
	return audio.ConformChannels(buf, channels)
}

// SaveWAV encodes buf as canonical 16-bit PCM RIFF/WAVE.
func SaveWAV(w io.Writer, buf *buffer.Buffer) error {
	enc, err := formats.Default().Encoder("wav")
	if err != nil {
		return err
	}
	return enc.Encode(w, buf)
}
