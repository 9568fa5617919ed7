package audio

import "github.com/waveline/waveline/buffer"

// ConformChannels returns a copy of buf with exactly want channels.
//
// Reducing channels mixes down by averaging (the same policy a mono
// mixdown uses); expanding duplicates the last existing channel, which
// turns mono into dual-mono stereo. A buffer that already matches is
// cloned, keeping copy semantics uniform.
func ConformChannels(buf *buffer.Buffer, want int) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}
	if want < 1 {
		return nil, buffer.ErrInvalidChannelCount
	}

	have := buf.ChannelCount()
	if have == want {
		return buf.Clone(), nil
	}

	frames := buf.FrameCount()
	out, err := buffer.New(buf.SampleRate(), want, frames)
	if err != nil {
		return nil, err
	}

	if want < have {
		// Mix the surplus channels into the last kept channel so no
		// audio is dropped. Mono target averages everything.
		if want == 1 {
			inv := float32(1.0) / float32(have)
			dst := out.Channel(0)
			for f := range frames {
				var sum float32
				for ch := range have {
					sum += buf.Channel(ch)[f]
				}
				dst[f] = sum * inv
			}
			return out, nil
		}

		for ch := range want - 1 {
			copy(out.Channel(ch), buf.Channel(ch))
		}
		tail := have - want + 1
		inv := float32(1.0) / float32(tail)
		dst := out.Channel(want - 1)
		for f := range frames {
			var sum float32
			for ch := want - 1; ch < have; ch++ {
				sum += buf.Channel(ch)[f]
			}
			dst[f] = sum * inv
		}
		return out, nil
	}

	// Expanding: copy what exists, duplicate the last channel into the rest.
	for ch := range have {
		copy(out.Channel(ch), buf.Channel(ch))
	}
	last := buf.Channel(have - 1)
	for ch := have; ch < want; ch++ {
		copy(out.Channel(ch), last)
	}
	return out, nil
}
