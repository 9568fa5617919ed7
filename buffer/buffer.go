// SPDX-License-Identifier: EPL-2.0

package buffer

import "time"

// Buffer is a multi-channel container of float32 PCM samples in [-1, 1].
// Every channel slice holds exactly FrameCount() samples. Buffers never
// share storage: transforms that need the original must Clone first and
// write into the copy.
type Buffer struct {
	sampleRate int
	channels   [][]float32
}

// New returns a zero-filled Buffer with the given channel count and frame
// count at sampleRate.
func New(sampleRate, channelCount, frameCount int) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if channelCount < 1 {
		return nil, ErrInvalidChannelCount
	}
	if frameCount < 0 {
		frameCount = 0
	}

	channels := make([][]float32, channelCount)
	for ch := range channels {
		channels[ch] = make([]float32, frameCount)
	}

	return &Buffer{sampleRate: sampleRate, channels: channels}, nil
}

// FromChannels wraps existing per-channel sample slices without copying.
// All channels must have equal length.
func FromChannels(sampleRate int, channels [][]float32) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if len(channels) < 1 {
		return nil, ErrInvalidChannelCount
	}
	for _, ch := range channels[1:] {
		if len(ch) != len(channels[0]) {
			return nil, ErrChannelLengthMismatch
		}
	}

	return &Buffer{sampleRate: sampleRate, channels: channels}, nil
}

// SampleRate of the PCM data in Hz.
func (b *Buffer) SampleRate() int { return b.sampleRate }

// ChannelCount reports the number of channels.
func (b *Buffer) ChannelCount() int { return len(b.channels) }

// FrameCount reports the number of samples per channel.
func (b *Buffer) FrameCount() int {
	if len(b.channels) == 0 {
		return 0
	}
	return len(b.channels[0])
}

// Channel returns the sample slice for channel ch. The slice is the
// buffer's backing storage; callers that mutate it own the buffer.
func (b *Buffer) Channel(ch int) []float32 { return b.channels[ch] }

// Duration of the buffer's audio.
func (b *Buffer) Duration() time.Duration {
	return time.Duration(float64(b.FrameCount()) / float64(b.sampleRate) * float64(time.Second))
}

// Seconds of audio held by the buffer.
func (b *Buffer) Seconds() float64 {
	return float64(b.FrameCount()) / float64(b.sampleRate)
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	channels := make([][]float32, len(b.channels))
	for ch := range b.channels {
		channels[ch] = make([]float32, len(b.channels[ch]))
		copy(channels[ch], b.channels[ch])
	}
	return &Buffer{sampleRate: b.sampleRate, channels: channels}
}

// Validate reports whether the buffer satisfies its invariants:
// non-nil, sampleRate > 0, at least one channel, equal channel lengths.
func Validate(b *Buffer) error {
	if b == nil {
		return ErrNilBuffer
	}
	if b.sampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	if len(b.channels) < 1 {
		return ErrInvalidChannelCount
	}
	for _, ch := range b.channels[1:] {
		if len(ch) != len(b.channels[0]) {
			return ErrChannelLengthMismatch
		}
	}
	return nil
}

// Interleave flattens the buffer into a single interleaved slice,
// channel-by-channel per frame.
func (b *Buffer) Interleave() []float32 {
	frames := b.FrameCount()
	out := make([]float32, frames*len(b.channels))
	for f := range frames {
		for ch := range b.channels {
			out[f*len(b.channels)+ch] = b.channels[ch][f]
		}
	}
	return out
}

// Deinterleave builds a Buffer from interleaved samples. The sample count
// must be a multiple of channelCount.
func Deinterleave(sampleRate, channelCount int, interleaved []float32) (*Buffer, error) {
	if channelCount < 1 {
		return nil, ErrInvalidChannelCount
	}
	if len(interleaved)%channelCount != 0 {
		return nil, ErrChannelLengthMismatch
	}

	frames := len(interleaved) / channelCount
	buf, err := New(sampleRate, channelCount, frames)
	if err != nil {
		return nil, err
	}
	for f := range frames {
		for ch := range buf.channels {
			buf.channels[ch][f] = interleaved[f*channelCount+ch]
		}
	}
	return buf, nil
}
