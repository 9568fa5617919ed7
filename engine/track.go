// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"sync"

	"github.com/waveline/waveline/buffer"
)

// Track couples a display name to an owned sample buffer. Identity is the
// id: replacing the buffer after an effect or edit preserves the id. The
// accessors take the track's own lock so handles returned by Engine.Track
// stay readable while the engine mutates the track.
type Track struct {
	mu   sync.RWMutex
	id   string
	name string
	buf  *buffer.Buffer
}

func (t *Track) ID() string { return t.id }

func (t *Track) Name() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.name
}

// Buffer returns the track's current sample buffer. The engine owns it;
// callers that need to mutate must go through the engine so active voices
// are stopped first.
func (t *Track) Buffer() *buffer.Buffer {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.buf
}

// Seconds of audio the track currently holds.
func (t *Track) Seconds() float64 {
	return t.Buffer().Seconds()
}

func (t *Track) setName(name string) {
	t.mu.Lock()
	t.name = name
	t.mu.Unlock()
}

func (t *Track) setBuffer(buf *buffer.Buffer) {
	t.mu.Lock()
	t.buf = buf
	t.mu.Unlock()
}
