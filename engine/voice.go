// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"io"
	"math"
	"sync"

	"github.com/waveline/waveline/buffer"
)

// Voice is one in-flight playback instance of a track. It implements
// audio.Source producing interleaved samples at the engine's channel
// layout, so it can be mixed by Render or fed to any Source consumer.
// Multiple voices may reference the same track concurrently.
type Voice struct {
	mu sync.Mutex

	trackID  string
	buf      *buffer.Buffer
	channels int

	pos  float64 // fractional frame cursor into buf
	end  float64
	rate float64
	done bool
}

func newVoice(trackID string, buf *buffer.Buffer, channels int, startOffset, duration float64) *Voice {
	rate := float64(buf.SampleRate())
	start := math.Floor(startOffset * rate)
	start = math.Max(0, math.Min(start, float64(buf.FrameCount())))

	end := float64(buf.FrameCount())
	if duration > 0 {
		end = math.Min(end, start+duration*rate)
	}

	return &Voice{
		trackID:  trackID,
		buf:      buf,
		channels: channels,
		pos:      start,
		end:      end,
		rate:     1,
	}
}

func (v *Voice) TrackID() string { return v.trackID }
func (v *Voice) SampleRate() int { return v.buf.SampleRate() }
func (v *Voice) Channels() int   { return v.channels }
func (v *Voice) BufSize() int    { return 4096 }
func (v *Voice) Close() error    { v.stop(); return nil }

// Rate reports the current playback rate (1 = normal speed).
func (v *Voice) Rate() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.rate
}

// SetRate changes playback speed. Rates at or below zero are ignored.
func (v *Voice) SetRate(rate float64) {
	if rate <= 0 {
		return
	}
	v.mu.Lock()
	v.rate = rate
	v.mu.Unlock()
}

// Position reports the cursor in seconds from the start of the track.
func (v *Voice) Position() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pos / float64(v.buf.SampleRate())
}

func (v *Voice) stop() {
	v.mu.Lock()
	v.done = true
	v.mu.Unlock()
}

func (v *Voice) finished() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.done || v.pos >= v.end
}

// ReadSamples fills dst with interleaved samples, advancing the cursor by
// the playback rate with linear interpolation between frames. Tracks with
// fewer channels than the output duplicate their last channel.
func (v *Voice) ReadSamples(dst []float32) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.done || v.pos >= v.end {
		return 0, io.EOF
	}

	bufChannels := v.buf.ChannelCount()
	frames := len(dst) / v.channels
	written := 0

	for range frames {
		if v.pos >= v.end {
			break
		}

		i := int(v.pos)
		frac := float32(v.pos - float64(i))
		next := i
		if float64(i+1) < v.end {
			next = i + 1
		}

		for ch := range v.channels {
			src := min(ch, bufChannels-1)
			a := v.buf.Channel(src)[i]
			b := v.buf.Channel(src)[next]
			dst[written*v.channels+ch] = a + (b-a)*frac
		}

		written++
		v.pos += v.rate
	}

	if written == 0 {
		return 0, io.EOF
	}
	if v.pos >= v.end {
		return written * v.channels, io.EOF
	}
	return written * v.channels, nil
}
