// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"math"

	"github.com/waveline/waveline/audio"
	"github.com/waveline/waveline/buffer"
	"github.com/waveline/waveline/effects"
)

// ApplyEffect runs a catalogue effect over a track's buffer and swaps in
// the result, preserving the track id. Any active voices for the track
// are stopped before the swap. A missing id is a logged no-op.
func (e *Engine) ApplyEffect(trackID, effect string, params effects.Params) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.tracks[trackID]
	if !ok {
		e.log.WithField("trackID", trackID).Warn("effect requested for unknown track")
		return nil
	}

	out, err := effects.Apply(effect, t.buf, params)
	if err != nil {
		return fmt.Errorf("applying %q: %w", effect, err)
	}

	e.stopVoicesForLocked(trackID)
	t.setBuffer(out)
	return nil
}

// Copy extracts [start, end) seconds of a track as a new buffer without
// touching the source. A missing id is a logged no-op returning nil; a
// degenerate range yields an empty buffer.
func (e *Engine) Copy(trackID string, start, end float64) *buffer.Buffer {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.tracks[trackID]
	if !ok {
		e.log.WithField("trackID", trackID).Warn("copy requested for unknown track")
		return nil
	}
	return extract(t.buf, start, end)
}

// Cut extracts [start, end) seconds like Copy and additionally splices
// the region out of the track, concatenating the audio before start with
// the audio from end onward.
func (e *Engine) Cut(trackID string, start, end float64) *buffer.Buffer {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.tracks[trackID]
	if !ok {
		e.log.WithField("trackID", trackID).Warn("cut requested for unknown track")
		return nil
	}

	region := extract(t.buf, start, end)
	if region.FrameCount() == 0 {
		return region
	}

	startF, endF := frameRange(t.buf, start, end)
	channels := t.buf.ChannelCount()
	spliced := make([][]float32, channels)
	for ch := range channels {
		src := t.buf.Channel(ch)
		out := make([]float32, 0, startF+(len(src)-endF))
		out = append(out, src[:startF]...)
		out = append(out, src[endF:]...)
		spliced[ch] = out
	}

	replacement, err := buffer.FromChannels(t.buf.SampleRate(), spliced)
	if err != nil {
		// The splice preserves channel structure, so this cannot happen
		// for a valid track buffer.
		e.log.WithField("trackID", trackID).WithError(err).Error("cut splice failed")
		return region
	}

	e.stopVoicesForLocked(trackID)
	t.setBuffer(replacement)
	return region
}

// Paste mixes src into a track starting at atTime seconds. Overlapping
// audio is averaged with the existing content; audio past the current end
// is appended, growing the track. The source is conformed to the track's
// sample rate and channel count first. Missing ids are logged no-ops.
func (e *Engine) Paste(trackID string, src *buffer.Buffer, atTime float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.tracks[trackID]
	if !ok {
		e.log.WithField("trackID", trackID).Warn("paste requested for unknown track")
		return nil
	}
	if err := buffer.Validate(src); err != nil {
		return fmt.Errorf("pasting: %w", err)
	}
	if src.FrameCount() == 0 {
		return nil
	}

	incoming, err := audio.ConvertRate(src, t.buf.SampleRate())
	if err != nil {
		return fmt.Errorf("pasting: %w", err)
	}
	incoming, err = audio.ConformChannels(incoming, t.buf.ChannelCount())
	if err != nil {
		return fmt.Errorf("pasting: %w", err)
	}

	if atTime < 0 {
		atTime = 0
	}
	at := int(math.Floor(atTime * float64(t.buf.SampleRate())))
	oldFrames := t.buf.FrameCount()
	newFrames := max(oldFrames, at+incoming.FrameCount())

	channels := t.buf.ChannelCount()
	mixed, err := buffer.New(t.buf.SampleRate(), channels, newFrames)
	if err != nil {
		return fmt.Errorf("pasting: %w", err)
	}

	for ch := range channels {
		dst := mixed.Channel(ch)
		copy(dst, t.buf.Channel(ch))
		add := incoming.Channel(ch)
		for i, s := range add {
			pos := at + i
			if pos < oldFrames {
				dst[pos] = (dst[pos] + s) * 0.5
			} else {
				dst[pos] = s
			}
		}
	}

	e.stopVoicesForLocked(trackID)
	t.setBuffer(mixed)
	return nil
}

// frameRange converts a second range to clamped frame indexes over buf.
func frameRange(buf *buffer.Buffer, start, end float64) (int, int) {
	rate := float64(buf.SampleRate())
	startF := int(math.Floor(start * rate))
	endF := int(math.Floor(end * rate))

	startF = max(0, min(startF, buf.FrameCount()))
	endF = max(startF, min(endF, buf.FrameCount()))
	return startF, endF
}

// extract copies [start, end) seconds of buf into a new buffer. Degenerate
// ranges produce an empty buffer at the same rate and layout.
func extract(buf *buffer.Buffer, start, end float64) *buffer.Buffer {
	startF, endF := frameRange(buf, start, end)

	channels := make([][]float32, buf.ChannelCount())
	for ch := range channels {
		channels[ch] = append([]float32{}, buf.Channel(ch)[startF:endF]...)
	}

	out, err := buffer.FromChannels(buf.SampleRate(), channels)
	if err != nil {
		// Unreachable for a valid source buffer.
		panic(err)
	}
	return out
}
