// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/waveline/waveline/audio"
)

// pcmReader is the slice of gowav.Decoder the source needs, split out so
// tests can substitute a fake.
type pcmReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        pcmReader
	sampleRate int
	channels   int
	scale      float32
	offset     float32
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = (float32(s.intBuf.Data[i]) - s.offset) / s.scale
	}

	if n < len(dst) && err == nil {
		return n, io.EOF
	}
	return n, err
}

// Decoder reads RIFF/WAVE input. Arbitrary chunk layouts and bit depths
// from 8 to 32 are handled by the go-audio parser.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// The chunk walker needs to seek; buffer non-seekable input.
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	dec.ReadInfo()

	format := dec.Format()
	if format == nil || format.SampleRate <= 0 || format.NumChannels < 1 {
		return nil, ErrUnsupportedWavLayout
	}

	scale, offset := bitDepthScale(int(dec.BitDepth))
	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		scale:      scale,
		offset:     offset,
	}, nil
}

// bitDepthScale maps the container's bit depth onto the divisor and the
// pre-scale offset applied to every decoded sample. 8-bit WAV is unsigned
// PCM centered on 0x80, so it is recentered before scaling; the wider
// depths are signed and need no offset.
func bitDepthScale(bits int) (scale, offset float32) {
	switch bits {
	case 8:
		return 128, 128
	case 24:
		return 8388608, 0
	case 32:
		return 2147483648, 0
	default:
		return 32768, 0
	}
}
