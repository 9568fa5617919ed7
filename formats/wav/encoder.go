// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/waveline/waveline/buffer"
	"github.com/waveline/waveline/utils"
)

// Encoder writes canonical 16-bit PCM RIFF/WAVE: a 44-byte header followed
// by a data chunk of interleaved little-endian samples. Float samples are
// clamped to [-1, 1] and scaled asymmetrically (0x8000 for negative values,
// 0x7FFF for non-negative) so that -1.0 and 1.0 both map to full scale.
type Encoder struct{}

func (Encoder) MediaType() string { return "audio/wav" }

func (Encoder) Encode(w io.Writer, buf *buffer.Buffer) error {
	if err := buffer.Validate(buf); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}

	channels := buf.ChannelCount()
	frames := buf.FrameCount()
	sampleRate := uint32(buf.SampleRate())

	bitsPerSample := uint16(16)
	blockAlign := uint16(channels) * (bitsPerSample / 8)
	byteRate := sampleRate * uint32(blockAlign)
	dataSize := uint32(frames * channels * 2)

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format tag
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], sampleRate)
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}

	// Interleave and convert in chunks to keep allocations bounded for
	// long buffers.
	const framesPerChunk = 4096
	out := make([]byte, framesPerChunk*channels*2)

	for start := 0; start < frames; start += framesPerChunk {
		end := min(start+framesPerChunk, frames)
		n := 0
		for f := start; f < end; f++ {
			for ch := range channels {
				v := utils.Float32ToInt16(buf.Channel(ch)[f])
				binary.LittleEndian.PutUint16(out[n:n+2], uint16(v))
				n += 2
			}
		}
		if _, err := w.Write(out[:n]); err != nil {
			return fmt.Errorf("writing wav data: %w", err)
		}
	}

	return nil
}
