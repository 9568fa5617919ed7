// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	ErrTransportBusy = errors.New("transport is not idle")
	ErrNotPaused     = errors.New("transport is not paused")
	ErrNotRecording  = errors.New("transport is not recording")
	ErrNoInputDevice = errors.New("no input device available")
	ErrTrackNotFound = errors.New("track not found")
)
