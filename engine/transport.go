// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/waveline/waveline/buffer"
)

// Play starts playback from Idle. With a trackID it creates one voice for
// that track; with an empty id it creates one voice per track, all
// starting at startOffset seconds. A duration at or below zero plays to
// the end. A missing trackID is a logged no-op and the transport stays
// Idle.
func (e *Engine) Play(trackID string, startOffset, duration float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateIdle {
		return fmt.Errorf("play in state %s: %w", e.state, ErrTransportBusy)
	}

	var targets []*Track
	if trackID != "" {
		t, ok := e.tracks[trackID]
		if !ok {
			e.log.WithField("trackID", trackID).Warn("play requested for unknown track")
			return nil
		}
		targets = []*Track{t}
	} else {
		for _, id := range e.order {
			targets = append(targets, e.tracks[id])
		}
	}

	for _, t := range targets {
		v := newVoice(t.id, t.buf, outputChannels, startOffset, duration)
		if v.finished() {
			continue
		}
		e.voices = append(e.voices, v)
	}

	if len(e.voices) == 0 {
		return nil
	}

	e.state = StatePlaying
	e.playhead = startOffset
	e.log.WithFields(logrus.Fields{
		"voices": len(e.voices),
		"offset": startOffset,
	}).Debug("playback started")
	return nil
}

// Pause halts rendering but keeps the voices and playhead so Resume can
// continue where playback left off.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StatePlaying {
		return
	}
	e.state = StatePaused
}

// Resume continues playback after Pause.
func (e *Engine) Resume() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StatePaused {
		return fmt.Errorf("resume in state %s: %w", e.state, ErrNotPaused)
	}
	e.state = StatePlaying
	return nil
}

// Stop halts all voices and resets the playhead to zero.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StatePlaying && e.state != StatePaused {
		return
	}
	for _, v := range e.voices {
		v.stop()
	}
	e.voices = nil
	e.state = StateIdle
	e.playhead = 0
}

// Playhead reports the transport position in seconds.
func (e *Engine) Playhead() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playhead
}

// Voices returns the currently active voices, e.g. for per-voice rate
// control while scrubbing.
func (e *Engine) Voices() []*Voice {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]*Voice(nil), e.voices...)
}

// Render mixes all active voices into dst, interleaved stereo at the
// engine rate, scaled by the master gain. It is the pump the host audio
// callback drives. Returns the number of samples written; when the
// transport is not playing dst is zero-filled and 0 is returned.
//
// Voices that finish are removed; when the last one completes the
// transport returns to Idle and the completion callback fires.
func (e *Engine) Render(dst []float32) int {
	for i := range dst {
		dst[i] = 0
	}

	e.mu.Lock()
	if e.state != StatePlaying || len(dst) < outputChannels {
		e.mu.Unlock()
		return 0
	}

	gain := e.masterGainLocked()
	frames := len(dst) / outputChannels
	scratch := make([]float32, frames*outputChannels)

	kept := e.voices[:0]
	for _, v := range e.voices {
		n, _ := v.ReadSamples(scratch)
		for i := range n {
			dst[i] += scratch[i] * gain
		}
		if !v.finished() {
			kept = append(kept, v)
		}
	}
	e.voices = kept
	e.playhead += float64(frames) / float64(e.sampleRate)

	var done func()
	if len(e.voices) == 0 {
		e.state = StateIdle
		e.playhead = 0
		done = e.onPlaybackDone
		e.log.Debug("playback complete")
	}
	e.mu.Unlock()

	if done != nil {
		done()
	}
	return frames * outputChannels
}

// StartRecording acquires an input stream and begins accumulating
// capture chunks. The transport must be Idle.
func (e *Engine) StartRecording() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateIdle {
		return fmt.Errorf("record in state %s: %w", e.state, ErrTransportBusy)
	}
	if e.devices == nil {
		return ErrNoInputDevice
	}

	stream, err := e.devices.OpenInput(e.sampleRate)
	if err != nil {
		return fmt.Errorf("opening input stream: %w", err)
	}

	session := newRecordingSession()
	if err := stream.Start(session.append); err != nil {
		stream.Close()
		return fmt.Errorf("starting capture: %w", err)
	}

	e.input = stream
	e.session = session
	e.state = StateRecording
	e.log.Debug("recording started")
	return nil
}

// StopRecording ends capture and consolidates the session into one new
// stereo track at the engine rate, returning its id. A session that
// captured nothing yields no track and an empty id.
func (e *Engine) StopRecording() (string, error) {
	e.mu.Lock()

	if e.state != StateRecording {
		e.mu.Unlock()
		return "", ErrNotRecording
	}

	stream := e.input
	session := e.session
	e.input = nil
	e.session = nil
	e.state = StateIdle
	e.mu.Unlock()

	if err := stream.Stop(); err != nil {
		stream.Close()
		return "", fmt.Errorf("stopping capture: %w", err)
	}
	if err := stream.Close(); err != nil {
		return "", fmt.Errorf("closing input stream: %w", err)
	}

	left, right := session.stop()
	if len(left) == 0 {
		e.log.Debug("recording captured no samples, no track created")
		return "", nil
	}

	buf, err := buffer.FromChannels(e.sampleRate, [][]float32{left, right})
	if err != nil {
		return "", fmt.Errorf("consolidating recording: %w", err)
	}

	id, err := e.AddTrack("Recording", buf)
	if err != nil {
		return "", err
	}
	e.log.WithFields(logrus.Fields{
		"trackID": id,
		"frames":  len(left),
	}).Debug("recording consolidated")
	return id, nil
}
