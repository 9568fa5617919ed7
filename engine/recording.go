// SPDX-License-Identifier: EPL-2.0

package engine

import "sync"

// recordingSession accumulates capture chunks pushed from the device
// callback. Appends and the stop transition share one mutex: once stop
// flips active to false, chunks already in flight are dropped instead of
// racing the consolidation.
type recordingSession struct {
	mu     sync.Mutex
	active bool

	left  []float32
	right []float32
}

func newRecordingSession() *recordingSession {
	return &recordingSession{active: true}
}

func (s *recordingSession) append(left, right []float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}
	s.left = append(s.left, left...)
	s.right = append(s.right, right...)
}

// stop ends the session and returns everything captured so far. Channels
// are padded to equal length in case the device delivered a short final
// chunk on one side.
func (s *recordingSession) stop() (left, right []float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = false
	for len(s.left) < len(s.right) {
		s.left = append(s.left, 0)
	}
	for len(s.right) < len(s.left) {
		s.right = append(s.right, 0)
	}
	return s.left, s.right
}
