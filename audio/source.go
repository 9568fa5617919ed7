// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/waveline/waveline/buffer"
)

// Source is a pull-based stream of interleaved float32 samples in [-1, 1].
// Decoders, resamplers and playback voices all implement it so they can be
// chained into pipelines.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0
	// with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// BufferSource adapts an in-memory buffer.Buffer into a Source.
type BufferSource struct {
	buf   *buffer.Buffer
	frame int
}

// NewBufferSource returns a Source streaming buf from its first frame.
func NewBufferSource(buf *buffer.Buffer) (*BufferSource, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}
	return &BufferSource{buf: buf}, nil
}

func (s *BufferSource) SampleRate() int { return s.buf.SampleRate() }
func (s *BufferSource) Channels() int   { return s.buf.ChannelCount() }
func (s *BufferSource) BufSize() int    { return 4096 }
func (s *BufferSource) Close() error    { return nil }

// Seek positions the stream at the given frame. Frames past the end clamp
// to the end.
func (s *BufferSource) Seek(frame int) {
	if frame < 0 {
		frame = 0
	}
	if frame > s.buf.FrameCount() {
		frame = s.buf.FrameCount()
	}
	s.frame = frame
}

func (s *BufferSource) ReadSamples(dst []float32) (int, error) {
	channels := s.buf.ChannelCount()
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if s.frame >= s.buf.FrameCount() {
		return 0, io.EOF
	}

	frames := min(len(dst)/channels, s.buf.FrameCount()-s.frame)
	for f := range frames {
		for ch := range channels {
			dst[f*channels+ch] = s.buf.Channel(ch)[s.frame+f]
		}
	}
	s.frame += frames

	if s.frame >= s.buf.FrameCount() {
		return frames * channels, io.EOF
	}
	return frames * channels, nil
}

// Collect drains src into a new buffer.Buffer.
func Collect(src Source) (*buffer.Buffer, error) {
	channels := src.Channels()
	tmp := make([]float32, 4096*channels)
	var interleaved []float32

	for {
		n, err := src.ReadSamples(tmp)
		interleaved = append(interleaved, tmp[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	return buffer.Deinterleave(src.SampleRate(), channels, interleaved)
}
