// SPDX-License-Identifier: EPL-2.0

package spectral

import (
	"math"

	"github.com/waveline/waveline/buffer"
)

// PeakFrequency returns the frequency (Hz) of the strongest spectral bin
// seen anywhere in the buffer. Bins map to Hz as bin * Nyquist / binCount.
func (a *Analyzer) PeakFrequency(buf *buffer.Buffer) (float64, error) {
	frames, err := a.AnalyzeBuffer(buf)
	if err != nil {
		return 0, err
	}

	bestBin := 0
	bestMag := math.Inf(-1)
	for _, frame := range frames {
		for bin, m := range frame.Frequencies {
			if m > bestMag {
				bestMag = m
				bestBin = bin
			}
		}
	}
	if len(frames) == 0 {
		return 0, nil
	}

	binCount := float64(len(frames[0].Frequencies))
	nyquist := float64(buf.SampleRate()) / 2
	return float64(bestBin) * nyquist / binCount, nil
}

// SpectralCentroid returns the magnitude-weighted mean frequency (Hz) of
// the buffer's average spectrum.
func (a *Analyzer) SpectralCentroid(buf *buffer.Buffer) (float64, error) {
	frames, err := a.AnalyzeBuffer(buf)
	if err != nil {
		return 0, err
	}
	if len(frames) == 0 {
		return 0, nil
	}

	binCount := len(frames[0].Frequencies)
	avg := make([]float64, binCount)
	for _, frame := range frames {
		for bin, m := range frame.Frequencies {
			avg[bin] += m
		}
	}

	nyquist := float64(buf.SampleRate()) / 2
	var weighted, total float64
	for bin, m := range avg {
		freq := float64(bin) * nyquist / float64(binCount)
		weighted += freq * m
		total += m
	}
	if total == 0 {
		return 0, nil
	}
	return weighted / total, nil
}

// RMS returns the root-mean-square level of channel 0.
func RMS(buf *buffer.Buffer) (float64, error) {
	if err := buffer.Validate(buf); err != nil {
		return 0, err
	}
	samples := buf.Channel(0)
	if len(samples) == 0 {
		return 0, nil
	}

	var sum float64
	for _, s := range samples {
		sum += float64(s) * float64(s)
	}
	return math.Sqrt(sum / float64(len(samples))), nil
}

// ZeroCrossingRate returns the fraction of adjacent channel-0 sample
// pairs whose signs differ.
func ZeroCrossingRate(buf *buffer.Buffer) (float64, error) {
	if err := buffer.Validate(buf); err != nil {
		return 0, err
	}
	samples := buf.Channel(0)
	if len(samples) < 2 {
		return 0, nil
	}

	crossings := 0
	for i := 1; i < len(samples); i++ {
		if (samples[i-1] >= 0) != (samples[i] >= 0) {
			crossings++
		}
	}
	return float64(crossings) / float64(len(samples)-1), nil
}

// ClippingReport describes how much of a buffer sits at or above the
// clipping threshold.
type ClippingReport struct {
	// Fraction of all samples (across channels) at or above threshold.
	Fraction float64
	// Locations lists the frame index of every clipped sample on any
	// channel, in order, without duplicates.
	Locations []int
}

// DetectClipping scans every channel for samples whose magnitude is at or
// above threshold.
func DetectClipping(buf *buffer.Buffer, threshold float64) (ClippingReport, error) {
	if err := buffer.Validate(buf); err != nil {
		return ClippingReport{}, err
	}

	thr := float32(threshold)
	frames := buf.FrameCount()
	channels := buf.ChannelCount()

	var report ClippingReport
	clipped := 0
	for f := range frames {
		hit := false
		for ch := range channels {
			s := buf.Channel(ch)[f]
			if s < 0 {
				s = -s
			}
			if s >= thr {
				clipped++
				hit = true
			}
		}
		if hit {
			report.Locations = append(report.Locations, f)
		}
	}
	if total := frames * channels; total > 0 {
		report.Fraction = float64(clipped) / float64(total)
	}
	return report, nil
}

// Segment is one contiguous region classified as sound or silence.
type Segment struct {
	Start float64 // seconds, inclusive
	End   float64 // seconds, exclusive
	Sound bool
}

// SegmentSilence splits channel 0 into sound and silence regions. A region
// only switches state once the opposite condition has held for minDuration
// seconds, which suppresses flicker on both edges.
func SegmentSilence(buf *buffer.Buffer, threshold, minDuration float64) ([]Segment, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}

	samples := buf.Channel(0)
	if len(samples) == 0 {
		return nil, nil
	}

	rate := float64(buf.SampleRate())
	minSamples := max(int(minDuration*rate), 1)
	thr := float32(threshold)

	isSound := func(s float32) bool {
		if s < 0 {
			s = -s
		}
		return s >= thr
	}

	var segments []Segment
	state := isSound(samples[0])
	segStart := 0
	runStart := -1 // start of a run contradicting the current state

	for i, s := range samples {
		if isSound(s) == state {
			runStart = -1
			continue
		}
		if runStart < 0 {
			runStart = i
		}
		if i-runStart+1 >= minSamples {
			segments = append(segments, Segment{
				Start: float64(segStart) / rate,
				End:   float64(runStart) / rate,
				Sound: state,
			})
			state = !state
			segStart = runStart
			runStart = -1
		}
	}

	segments = append(segments, Segment{
		Start: float64(segStart) / rate,
		End:   float64(len(samples)) / rate,
		Sound: state,
	})
	return segments, nil
}
