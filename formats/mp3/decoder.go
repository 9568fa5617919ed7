// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/waveline/waveline/audio"
	"github.com/waveline/waveline/utils"
)

// pcmReader is the slice of gomp3.Decoder the source needs, split out so
// tests can substitute a fake.
type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        pcmReader
	sampleRate int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }

// Channels is always 2: go-mp3 upmixes mono streams to stereo.
func (s *source) Channels() int { return 2 }
func (s *source) Close() error  { return nil }
func (s *source) BufSize() int  { return cap(s.buf) / 2 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	// The decoder hands back interleaved little-endian int16 bytes.
	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := s.dec.Read(s.buf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	samples := n / 2
	for i := range samples {
		v := int16(uint16(s.buf[2*i]) | uint16(s.buf[2*i+1])<<8)
		dst[i] = utils.Int16ToFloat32(v)
	}
	return samples, err
}

// Decoder reads MPEG-1 layer 3 streams. Decode only; this module never
// produces real MP3 output.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
