// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/waveline/waveline/buffer"
	"github.com/waveline/waveline/utils"
)

// taps is the number of source frames the cubic kernel looks at.
const taps = 4

// antiAlias is a per-channel one-pole low-pass run ahead of the
// interpolator when the rate goes down. It keeps the worst of the band
// above the destination Nyquist out; a proper FIR would do better.
type antiAlias struct {
	alpha float32
	state []float32
}

func newAntiAlias(channels int) *antiAlias {
	return &antiAlias{alpha: 0.5, state: make([]float32, channels)}
}

// seed sets the filter state so the stream does not ramp up from zero.
func (f *antiAlias) seed(frame []float32) {
	if f == nil {
		return
	}
	copy(f.state, frame)
}

func (f *antiAlias) apply(frame []float32) {
	if f == nil {
		return
	}
	for c, x := range frame {
		y := f.alpha*x + (1-f.alpha)*f.state[c]
		f.state[c] = y
		frame[c] = y
	}
}

// frameWindow holds the four source frames around the read cursor in one
// flat frame-major slice: slot 0 is t-1, slot 1 is t0, slot 2 is t+1 and
// slot 3 is t+2.
type frameWindow struct {
	channels int
	data     []float32
	valid    [taps]bool
}

func newFrameWindow(channels int) *frameWindow {
	return &frameWindow{channels: channels, data: make([]float32, taps*channels)}
}

func (w *frameWindow) frame(i int) []float32 {
	return w.data[i*w.channels : (i+1)*w.channels]
}

// shift drops the oldest frame and frees the last slot for a fresh read.
func (w *frameWindow) shift() {
	copy(w.data, w.data[w.channels:])
	w.valid[0], w.valid[1], w.valid[2] = w.valid[1], w.valid[2], w.valid[3]
	w.valid[taps-1] = false
}

// tap reads channel c of slot i, substituting the nearest interior frame
// when the window overhangs either end of the stream.
func (w *frameWindow) tap(i, c int) float32 {
	if !w.valid[i] {
		if i == 0 {
			i = 1
		} else {
			i = taps - 2
		}
	}
	return w.data[i*w.channels+c]
}

// Resampler streams src at a different sample rate through the shared
// cubic kernel. Channel count is preserved; interleaved layout in and out.
type Resampler struct {
	src      Source
	dstRate  int
	channels int

	// step is how far the source cursor advances per output frame; the
	// cursor's fractional part is the kernel's interpolation position
	// between window slots 1 and 2.
	step   float64
	cursor float64

	win     *frameWindow
	lowpass *antiAlias
	readBuf []float32
	primed  bool
	eof     bool
}

// NewResampler wraps src so reads produce samples at dstRate.
func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		channels: channels,
		step:     float64(src.SampleRate()) / float64(dstRate),
		win:      newFrameWindow(channels),
		readBuf:  make([]float32, channels),
	}
	if r.step > 1 {
		r.lowpass = newAntiAlias(channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// prime fills the window from the head of the stream, duplicating the last
// frame read when the stream is shorter than the kernel.
func (r *Resampler) prime() error {
	for i := range taps {
		n, err := r.src.ReadSamples(r.readBuf)
		if n > 0 {
			copy(r.win.frame(i), r.readBuf[:n])
			r.win.valid[i] = true
			if i == 0 {
				r.lowpass.seed(r.readBuf[:n])
			}
		}
		if err == io.EOF {
			r.eof = true
			last := i - 1
			if n > 0 {
				last = i
			}
			if last < 0 {
				return io.EOF
			}
			for j := last + 1; j < taps; j++ {
				copy(r.win.frame(j), r.win.frame(last))
				r.win.valid[j] = true
			}
			break
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	r.primed = true
	return nil
}

// advance slides the window one source frame forward.
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}
	r.win.shift()

	n, err := r.src.ReadSamples(r.readBuf)
	if n > 0 {
		next := r.win.frame(taps - 1)
		copy(next, r.readBuf[:n])
		r.win.valid[taps-1] = true
		r.lowpass.apply(next)
	}

	switch {
	case err == io.EOF:
		r.eof = true
		if !r.win.valid[taps-1] {
			return io.EOF
		}
	case err != nil:
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples produces dst samples at the destination rate. dst length
// must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	for frames := len(dst) / r.channels; written < frames; {
		for r.cursor >= 1 {
			r.cursor--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		// The kernel needs both interior frames; losing either means the
		// stream is drained.
		if !r.win.valid[1] || !r.win.valid[2] {
			return written * r.channels, io.EOF
		}

		mu := float32(r.cursor)
		base := written * r.channels
		for c := range r.channels {
			dst[base+c] = utils.CubicInterpolate(
				r.win.tap(0, c), r.win.tap(1, c), r.win.tap(2, c), r.win.tap(3, c), mu)
		}
		written++
		r.cursor += r.step
	}

	return written * r.channels, nil
}

// ConvertRate resamples buf to dstRate in one shot. A buffer already at
// dstRate is returned as a clone, keeping copy semantics uniform.
func ConvertRate(buf *buffer.Buffer, dstRate int) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}
	if dstRate <= 0 {
		return nil, buffer.ErrInvalidSampleRate
	}
	if buf.SampleRate() == dstRate {
		return buf.Clone(), nil
	}

	src, err := NewBufferSource(buf)
	if err != nil {
		return nil, err
	}
	out, err := Collect(NewResampler(src, dstRate))
	if err != nil {
		return nil, fmt.Errorf("resampling to %d Hz: %w", dstRate, err)
	}
	return out, nil
}
