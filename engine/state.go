// SPDX-License-Identifier: EPL-2.0

package engine

// TransportState is the engine's single global transport mode. Valid
// transitions: Idle -> Playing -> (Paused <-> Playing) -> Idle and
// Idle -> Recording -> Idle.
type TransportState int

const (
	StateIdle TransportState = iota
	StatePlaying
	StatePaused
	StateRecording
)

func (s TransportState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateRecording:
		return "recording"
	default:
		return "idle"
	}
}
