// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/waveline/waveline/buffer"
	"github.com/waveline/waveline/utils"
)

// Encoder writes big-endian FORM/AIFF with 16-bit PCM SSND data. The
// go-audio encoder needs to seek back and patch chunk sizes, so output is
// staged in memory and flushed to w once complete.
type Encoder struct{}

func (Encoder) MediaType() string { return "audio/aiff" }

func (Encoder) Encode(w io.Writer, buf *buffer.Buffer) error {
	if err := buffer.Validate(buf); err != nil {
		return fmt.Errorf("encoding aiff: %w", err)
	}

	channels := buf.ChannelCount()
	frames := buf.FrameCount()

	staging := &writeSeeker{}
	enc := goaiff.NewEncoder(staging, buf.SampleRate(), 16, channels)

	data := make([]int, frames*channels)
	for f := range frames {
		for ch := range channels {
			data[f*channels+ch] = int(utils.Float32ToInt16(buf.Channel(ch)[f]))
		}
	}

	intBuf := &goaudio.IntBuffer{
		Data:           data,
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: buf.SampleRate()},
		SourceBitDepth: 16,
	}
	if err := enc.Write(intBuf); err != nil {
		return fmt.Errorf("writing aiff samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing aiff: %w", err)
	}

	if _, err := w.Write(staging.data); err != nil {
		return fmt.Errorf("flushing aiff: %w", err)
	}
	return nil
}

// writeSeeker is an in-memory io.WriteSeeker backing the staged encode.
type writeSeeker struct {
	data   []byte
	offset int64
}

func (ws *writeSeeker) Write(p []byte) (int, error) {
	end := ws.offset + int64(len(p))
	if end > int64(len(ws.data)) {
		grown := make([]byte, end)
		copy(grown, ws.data)
		ws.data = grown
	}
	copy(ws.data[ws.offset:end], p)
	ws.offset = end
	return len(p), nil
}

func (ws *writeSeeker) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = ws.offset + offset
	case io.SeekEnd:
		pos = int64(len(ws.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if pos < 0 {
		return 0, fmt.Errorf("negative position")
	}
	ws.offset = pos
	return pos, nil
}
