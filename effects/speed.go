// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/waveline/waveline/buffer"
	"github.com/waveline/waveline/utils"
)

var changeSpeedParams = []ParamSpec{
	{Name: "ratio", Label: "Speed Ratio", Type: ParamNumber, Min: 0.1, Max: 10, Default: 1, Step: 0.01},
}

// ChangeSpeed resamples the buffer by linear interpolation. The output
// holds floor(frameCount/ratio) frames; pitch shifts together with speed.
func ChangeSpeed(buf *buffer.Buffer, ratio float64) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}
	ratio = utils.Clamp(ratio, 0.1, 10)

	frames := buf.FrameCount()
	outFrames := int(float64(frames) / ratio)
	out, err := buffer.New(buf.SampleRate(), buf.ChannelCount(), outFrames)
	if err != nil {
		return nil, err
	}

	for ch := range buf.ChannelCount() {
		src := buf.Channel(ch)
		dst := out.Channel(ch)
		for i := range outFrames {
			pos := float64(i) * ratio
			idx := int(pos)
			if idx >= frames-1 {
				dst[i] = src[frames-1]
				continue
			}
			frac := float32(pos - float64(idx))
			dst[i] = utils.Lerp(src[idx], src[idx+1], frac)
		}
	}
	return out, nil
}

const (
	pitchFrameSize = 1024
	pitchHopSize   = pitchFrameSize / 4
)

var changePitchParams = []ParamSpec{
	{Name: "ratio", Label: "Pitch Ratio", Type: ParamNumber, Min: 0.25, Max: 4, Default: 1, Step: 0.01},
}

// ChangePitch shifts pitch without changing duration using overlap-add
// granular resampling: 1024-sample Hann-windowed frames at a quarter-frame
// hop, each frame internally resampled by ratio with linear interpolation
// and summed into an output of the input's length.
func ChangePitch(buf *buffer.Buffer, ratio float64) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}
	ratio = utils.Clamp(ratio, 0.25, 4)

	frames := buf.FrameCount()
	out, err := buffer.New(buf.SampleRate(), buf.ChannelCount(), frames)
	if err != nil {
		return nil, err
	}
	if frames == 0 {
		return out, nil
	}

	window := hannWindow(pitchFrameSize)

	for ch := range buf.ChannelCount() {
		src := buf.Channel(ch)
		dst := out.Channel(ch)
		norm := make([]float32, frames)

		for start := 0; start < frames; start += pitchHopSize {
			for j := range pitchFrameSize {
				if start+j >= frames {
					break
				}
				// Read position inside the grain, scaled by ratio.
				pos := float64(start) + float64(j)*ratio
				idx := int(pos)
				if idx >= frames {
					break
				}
				var s float32
				if idx >= frames-1 {
					s = src[frames-1]
				} else {
					s = utils.Lerp(src[idx], src[idx+1], float32(pos-float64(idx)))
				}
				w := window[j]
				dst[start+j] += s * w
				norm[start+j] += w
			}
		}

		for i := range dst {
			if norm[i] > 1e-6 {
				dst[i] /= norm[i]
			}
		}
	}
	return out, nil
}

const paulstretchFrameSize = 2048

var paulstretchParams = []ParamSpec{
	{Name: "stretch", Label: "Stretch Factor", Type: ParamNumber, Min: 1, Max: 50, Default: 8, Step: 0.1},
}

// Paulstretch performs extreme time-stretching by overlap-adding large
// Hann-windowed grains: the output cursor advances a quarter frame per
// grain while the input cursor advances stretch times slower.
func Paulstretch(buf *buffer.Buffer, stretch float64) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}
	stretch = utils.Clamp(stretch, 1, 50)

	frames := buf.FrameCount()
	outFrames := int(float64(frames) * stretch)
	out, err := buffer.New(buf.SampleRate(), buf.ChannelCount(), outFrames)
	if err != nil {
		return nil, err
	}
	if frames == 0 || outFrames == 0 {
		return out, nil
	}

	window := hannWindow(paulstretchFrameSize)
	outHop := paulstretchFrameSize / 4
	inHop := float64(outHop) / stretch

	for ch := range buf.ChannelCount() {
		src := buf.Channel(ch)
		dst := out.Channel(ch)
		norm := make([]float32, outFrames)

		inPos := 0.0
		for outPos := 0; outPos < outFrames; outPos += outHop {
			grain := int(inPos)
			for j := range paulstretchFrameSize {
				if outPos+j >= outFrames {
					break
				}
				srcIdx := grain + j
				if srcIdx >= frames {
					break
				}
				w := window[j]
				dst[outPos+j] += src[srcIdx] * w
				norm[outPos+j] += w
			}
			inPos += inHop
		}

		for i := range dst {
			if norm[i] > 1e-6 {
				dst[i] /= norm[i]
			}
		}
	}
	return out, nil
}

// hannWindow returns an n-point Hann window.
func hannWindow(n int) []float32 {
	w := make([]float32, n)
	for i := range w {
		w[i] = float32(0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1))))
	}
	return w
}
