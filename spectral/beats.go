// SPDX-License-Identifier: EPL-2.0

package spectral

import (
	"math"

	"github.com/waveline/waveline/buffer"
)

// BeatResult is the outcome of onset detection and tempo estimation.
type BeatResult struct {
	// BPM is the tempo estimate, clamped into the configured range.
	BPM float64
	// Confidence grows with the number of detected onsets, capped at 1.
	Confidence float64
	// Onsets holds the detected onset times in seconds.
	Onsets []float64
}

// BeatOptions bound the tempo search.
type BeatOptions struct {
	MinBPM float64
	MaxBPM float64
}

// DefaultBeatOptions covers the usual musical range.
func DefaultBeatOptions() BeatOptions {
	return BeatOptions{MinBPM: 60, MaxBPM: 180}
}

// DetectBeats estimates onsets via spectral flux: the positive bin-wise
// difference between consecutive magnitude frames is summed, and frames
// whose flux exceeds mean+1.5*stddev become onsets. Inter-onset intervals
// average into a BPM estimate clamped to opts; confidence is a heuristic
// on onset count.
func (a *Analyzer) DetectBeats(buf *buffer.Buffer, opts BeatOptions) (BeatResult, error) {
	frames, err := a.AnalyzeBuffer(buf)
	if err != nil {
		return BeatResult{}, err
	}
	if opts.MinBPM <= 0 || opts.MaxBPM <= opts.MinBPM {
		opts = DefaultBeatOptions()
	}
	if len(frames) < 3 {
		return BeatResult{BPM: opts.MinBPM}, nil
	}

	flux := make([]float64, len(frames)-1)
	for i := 1; i < len(frames); i++ {
		var sum float64
		prev := frames[i-1].Frequencies
		cur := frames[i].Frequencies
		for bin := range cur {
			if d := cur[bin] - prev[bin]; d > 0 {
				sum += d
			}
		}
		flux[i-1] = sum
	}

	var mean float64
	for _, f := range flux {
		mean += f
	}
	mean /= float64(len(flux))

	var variance float64
	for _, f := range flux {
		variance += (f - mean) * (f - mean)
	}
	stddev := math.Sqrt(variance / float64(len(flux)))
	threshold := mean + 1.5*stddev

	var onsets []float64
	for i, f := range flux {
		if f <= threshold {
			continue
		}
		// Local maximum only, so one beat doesn't smear into several.
		if i > 0 && flux[i-1] >= f {
			continue
		}
		if i < len(flux)-1 && flux[i+1] > f {
			continue
		}
		onsets = append(onsets, frames[i+1].Time)
	}

	result := BeatResult{Onsets: onsets, BPM: opts.MinBPM}
	if len(onsets) >= 2 {
		var intervalSum float64
		for i := 1; i < len(onsets); i++ {
			intervalSum += onsets[i] - onsets[i-1]
		}
		avgInterval := intervalSum / float64(len(onsets)-1)
		if avgInterval > 0 {
			bpm := 60 / avgInterval
			// Fold octave errors into range before the hard clamp.
			for bpm < opts.MinBPM && bpm*2 <= opts.MaxBPM {
				bpm *= 2
			}
			for bpm > opts.MaxBPM && bpm/2 >= opts.MinBPM {
				bpm /= 2
			}
			if bpm < opts.MinBPM {
				bpm = opts.MinBPM
			}
			if bpm > opts.MaxBPM {
				bpm = opts.MaxBPM
			}
			result.BPM = bpm
		}
	}

	result.Confidence = math.Min(float64(len(onsets))/8, 1)
	return result, nil
}
