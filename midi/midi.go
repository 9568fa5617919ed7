// SPDX-License-Identifier: EPL-2.0

package midi

// Event kinds stored in a parsed document. Channel voice events carry the
// channel and up to two data bytes; meta events carry their type byte and
// raw payload.
type EventKind int

const (
	EventNoteOff EventKind = iota
	EventNoteOn
	EventPolyPressure
	EventControlChange
	EventProgramChange
	EventChannelPressure
	EventPitchBend
	EventMeta
	EventSysEx
)

// Status byte classes for channel voice messages.
const (
	statusNoteOff         = 0x80
	statusNoteOn          = 0x90
	statusPolyPressure    = 0xA0
	statusControlChange   = 0xB0
	statusProgramChange   = 0xC0
	statusChannelPressure = 0xD0
	statusPitchBend       = 0xE0
	statusMeta            = 0xFF
	statusSysEx           = 0xF0
	statusSysExEscape     = 0xF7
)

// Meta event types the codec gives names to.
const (
	MetaEndOfTrack = 0x2F
	MetaTempo      = 0x51
)

// Event is one decoded MIDI event positioned at an absolute tick.
type Event struct {
	AbsoluteTick uint64
	Kind         EventKind
	Channel      uint8
	Data1        uint8
	Data2        uint8
	// MetaType and MetaData are set only for Kind == EventMeta.
	MetaType uint8
	MetaData []byte
}

// Track is an ordered event list.
type Track struct {
	Events []Event
}

// Document is a parsed Standard MIDI File. It is built once by Parse and
// treated as immutable afterwards.
type Document struct {
	Format              uint16
	TicksPerQuarterNote uint16
	Tracks              []Track
}

// DefaultTempoBPM is assumed when a file carries no tempo meta event.
const DefaultTempoBPM = 120.0

// Duration estimates the document's length in seconds: the largest
// absolute tick across all tracks converted via ticks-per-quarter and the
// first tempo meta event (default 120 BPM).
func (d *Document) Duration() float64 {
	if d.TicksPerQuarterNote == 0 {
		return 0
	}

	bpm := DefaultTempoBPM
scan:
	for _, track := range d.Tracks {
		for _, ev := range track.Events {
			if ev.Kind == EventMeta && ev.MetaType == MetaTempo && len(ev.MetaData) == 3 {
				microsPerQuarter := uint32(ev.MetaData[0])<<16 | uint32(ev.MetaData[1])<<8 | uint32(ev.MetaData[2])
				if microsPerQuarter > 0 {
					bpm = 60e6 / float64(microsPerQuarter)
				}
				break scan
			}
		}
	}

	var maxTick uint64
	for _, track := range d.Tracks {
		for _, ev := range track.Events {
			if ev.AbsoluteTick > maxTick {
				maxTick = ev.AbsoluteTick
			}
		}
	}

	secondsPerTick := 60 / bpm / float64(d.TicksPerQuarterNote)
	return float64(maxTick) * secondsPerTick
}
