// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/waveline/waveline/buffer"
	"github.com/waveline/waveline/formats"
)

const DefaultSampleRate = 44100

// outputChannels is the engine's fixed stereo render layout.
const outputChannels = 2

// Engine owns the track table and the single global transport. All
// exported methods are safe for concurrent use; Render is designed to be
// driven from the host's audio callback while the rest is called from a
// UI or control goroutine.
type Engine struct {
	mu sync.Mutex

	log        *logrus.Logger
	rng        *rand.Rand
	sampleRate int
	registry   *formats.Registry
	devices    DeviceProvider

	tracks map[string]*Track
	order  []string

	state    TransportState
	voices   []*Voice
	playhead float64
	volume   float64

	input   InputStream
	session *recordingSession

	onPlaybackDone func()
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithLogger replaces the default standard logger.
func WithLogger(log *logrus.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithSampleRate sets the engine rate every track is conformed to.
func WithSampleRate(rate int) Option {
	return func(e *Engine) {
		if rate > 0 {
			e.sampleRate = rate
		}
	}
}

// WithRandom injects the random source used by noise-based generators,
// letting tests seed for deterministic output.
func WithRandom(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithRegistry replaces the default codec registry.
func WithRegistry(r *formats.Registry) Option {
	return func(e *Engine) { e.registry = r }
}

// WithDevices wires the host platform's audio capture layer. Without it,
// StartRecording fails with ErrNoInputDevice.
func WithDevices(p DeviceProvider) Option {
	return func(e *Engine) { e.devices = p }
}

func New(opts ...Option) *Engine {
	e := &Engine{
		log:        logrus.StandardLogger(),
		sampleRate: DefaultSampleRate,
		registry:   formats.Default(),
		tracks:     make(map[string]*Track),
		volume:     1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SampleRate the engine renders and records at.
func (e *Engine) SampleRate() int { return e.sampleRate }

// State reports the current transport state.
func (e *Engine) State() TransportState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// OnPlaybackComplete registers fn to run after the last voice of a
// playback finishes on its own. Stop does not fire it.
func (e *Engine) OnPlaybackComplete(fn func()) {
	e.mu.Lock()
	e.onPlaybackDone = fn
	e.mu.Unlock()
}

// AddTrack registers buf as a new track and returns its id. The buffer
// must satisfy the sample buffer invariants; an empty name is replaced
// with a positional default.
func (e *Engine) AddTrack(name string, buf *buffer.Buffer) (string, error) {
	if err := buffer.Validate(buf); err != nil {
		return "", fmt.Errorf("adding track: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if name == "" {
		name = fmt.Sprintf("Track %d", len(e.order)+1)
	}

	id := uuid.NewString()
	e.tracks[id] = &Track{id: id, name: name, buf: buf}
	e.order = append(e.order, id)

	e.log.WithFields(logrus.Fields{
		"trackID": id,
		"name":    name,
		"seconds": buf.Seconds(),
	}).Debug("track added")

	return id, nil
}

// Track looks up a track by id.
func (e *Engine) Track(id string) (*Track, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.tracks[id]
	return t, ok
}

// Tracks lists all tracks in insertion order.
func (e *Engine) Tracks() []*Track {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]*Track, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.tracks[id])
	}
	return out
}

// RemoveTrack deletes a track, stopping any of its voices first. A
// missing id is a logged no-op so stale UI references cannot crash
// playback.
func (e *Engine) RemoveTrack(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.tracks[id]; !ok {
		e.log.WithField("trackID", id).Warn("remove requested for unknown track")
		return
	}

	e.stopVoicesForLocked(id)
	delete(e.tracks, id)
	for i, tid := range e.order {
		if tid == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

// RenameTrack changes a track's display name. Missing ids are logged
// no-ops.
func (e *Engine) RenameTrack(id, name string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.tracks[id]
	if !ok {
		e.log.WithField("trackID", id).Warn("rename requested for unknown track")
		return
	}
	t.setName(name)
}

// SetMasterVolume stores the UI-facing volume value, clamped to [0, 1].
func (e *Engine) SetMasterVolume(v float64) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	e.mu.Lock()
	e.volume = v
	e.mu.Unlock()
}

// MasterVolume reports the UI-facing volume value.
func (e *Engine) MasterVolume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.volume
}

// masterGainLocked maps the UI value onto the applied gain: v squared for
// a perceptual taper, exactly zero at zero so silence is truly silent.
func (e *Engine) masterGainLocked() float32 {
	if e.volume == 0 {
		return 0
	}
	return float32(e.volume * e.volume)
}

// stopVoicesForLocked stops every active voice of a track before its
// buffer is mutated or removed. Callers hold e.mu.
func (e *Engine) stopVoicesForLocked(trackID string) {
	kept := e.voices[:0]
	stopped := 0
	for _, v := range e.voices {
		if v.TrackID() == trackID {
			v.stop()
			stopped++
			continue
		}
		kept = append(kept, v)
	}
	e.voices = kept

	if stopped > 0 {
		e.log.WithFields(logrus.Fields{
			"trackID": trackID,
			"voices":  stopped,
		}).Debug("stopped voices before track mutation")
		if len(e.voices) == 0 && e.state == StatePlaying {
			e.state = StateIdle
			e.playhead = 0
		}
	}
}
