// SPDX-License-Identifier: EPL-2.0

// Package engine is the track and transport manager.
//
// An Engine owns named tracks, each wrapping one sample buffer, and a
// single global transport that is Idle, Playing, Paused or Recording.
// Playback creates one Voice per targeted track; the host's audio
// callback drives the Render pump, which mixes the voices through the
// squared master-volume curve and retires them as they finish. Recording
// accumulates capture chunks pushed from a DeviceProvider input stream
// and consolidates them into a new stereo track on stop.
//
// Editing (Cut, Copy, Paste), catalogue effects, procedural generators
// and container import/export all funnel through the engine so that a
// track's buffer is never replaced while one of its voices is live.
// Operations addressed at a track id that no longer exists are logged
// warnings, not errors, so stale UI references cannot crash playback.
package engine
