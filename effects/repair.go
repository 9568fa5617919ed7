// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"github.com/waveline/waveline/buffer"
	"github.com/waveline/waveline/utils"
)

var clickRemovalParams = []ParamSpec{
	{Name: "threshold", Label: "Spike Threshold", Type: ParamNumber, Min: 1.5, Max: 20, Default: 4, Step: 0.1},
	{Name: "window", Label: "Window (samples)", Type: ParamNumber, Min: 4, Max: 256, Default: 32, Step: 1},
}

// ClickRemoval flags samples whose amplitude exceeds threshold times the
// average absolute level of the surrounding window (half before, half
// after), and replaces each flagged sample by linear interpolation of its
// nearest unflagged neighbours.
func ClickRemoval(buf *buffer.Buffer, threshold float64, window int) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}
	if window < 4 {
		window = 4
	}
	half := window / 2
	thr := float32(threshold)

	out := buf.Clone()
	for ch := range out.ChannelCount() {
		src := buf.Channel(ch)
		dst := out.Channel(ch)
		n := len(src)

		flagged := make([]bool, n)
		for i := range src {
			lo := max(i-half, 0)
			hi := min(i+half+1, n)

			var sum float32
			count := 0
			for j := lo; j < hi; j++ {
				if j == i {
					continue
				}
				a := src[j]
				if a < 0 {
					a = -a
				}
				sum += a
				count++
			}
			if count == 0 {
				continue
			}
			avg := sum / float32(count)

			a := src[i]
			if a < 0 {
				a = -a
			}
			if avg > 0 && a > thr*avg {
				flagged[i] = true
			}
		}

		for i := 0; i < n; i++ {
			if !flagged[i] {
				continue
			}
			// Extend over the contiguous flagged run and bridge it.
			runEnd := i
			for runEnd < n && flagged[runEnd] {
				runEnd++
			}
			interpolateRun(dst, i, runEnd)
			i = runEnd
		}
	}
	return out, nil
}

var clipFixParams = []ParamSpec{
	{Name: "threshold", Label: "Clip Threshold", Type: ParamNumber, Min: 0.1, Max: 1, Default: 0.95, Step: 0.01},
}

// ClipFix finds contiguous runs of samples at or above threshold (in
// magnitude) and reconstructs each run by linear interpolation between the
// bounding unclipped samples.
func ClipFix(buf *buffer.Buffer, threshold float64) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}
	thr := float32(threshold)

	out := buf.Clone()
	for ch := range out.ChannelCount() {
		samples := out.Channel(ch)
		n := len(samples)

		for i := 0; i < n; i++ {
			a := samples[i]
			if a < 0 {
				a = -a
			}
			if a < thr {
				continue
			}
			runEnd := i
			for runEnd < n {
				b := samples[runEnd]
				if b < 0 {
					b = -b
				}
				if b < thr {
					break
				}
				runEnd++
			}
			interpolateRun(samples, i, runEnd)
			i = runEnd
		}
	}
	return out, nil
}

// interpolateRun rewrites samples[start:end) as a linear ramp between the
// samples just outside the run. Runs touching a buffer edge hold the one
// available bound.
func interpolateRun(samples []float32, start, end int) {
	n := len(samples)
	var left, right float32
	hasLeft := start > 0
	hasRight := end < n
	if hasLeft {
		left = samples[start-1]
	}
	if hasRight {
		right = samples[end]
	}
	switch {
	case !hasLeft && !hasRight:
		for i := start; i < end; i++ {
			samples[i] = 0
		}
		return
	case !hasLeft:
		left = right
	case !hasRight:
		right = left
	}

	span := float32(end - start + 1)
	for i := start; i < end; i++ {
		frac := float32(i-start+1) / span
		samples[i] = utils.Lerp(left, right, frac)
	}
}
