// SPDX-License-Identifier: EPL-2.0

package midi

import (
	"encoding/binary"
	"fmt"
)

var (
	headerSignature = [4]byte{'M', 'T', 'h', 'd'}
	trackSignature  = [4]byte{'M', 'T', 'r', 'k'}
)

// Parse decodes a Standard MIDI File. Truncated or garbage input returns
// an error; it never panics.
func Parse(data []byte) (*Document, error) {
	r := &reader{data: data}

	sig, err := r.bytes(4)
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if [4]byte(sig) != headerSignature {
		return nil, ErrNotMidiFile
	}

	headerLen, err := r.uint32()
	if err != nil {
		return nil, fmt.Errorf("reading header length: %w", err)
	}
	if headerLen < 6 {
		return nil, ErrBadHeader
	}

	format, err := r.uint16()
	if err != nil {
		return nil, fmt.Errorf("reading format: %w", err)
	}
	trackCount, err := r.uint16()
	if err != nil {
		return nil, fmt.Errorf("reading track count: %w", err)
	}
	division, err := r.uint16()
	if err != nil {
		return nil, fmt.Errorf("reading division: %w", err)
	}
	// Skip any extra header bytes a nonstandard writer may have added.
	if _, err := r.bytes(int(headerLen) - 6); err != nil {
		return nil, fmt.Errorf("skipping header extension: %w", err)
	}

	doc := &Document{
		Format:              format,
		TicksPerQuarterNote: division,
	}

	for t := range int(trackCount) {
		track, err := parseTrack(r)
		if err != nil {
			return nil, fmt.Errorf("parsing track %d: %w", t, err)
		}
		doc.Tracks = append(doc.Tracks, track)
	}

	return doc, nil
}

func parseTrack(r *reader) (Track, error) {
	sig, err := r.bytes(4)
	if err != nil {
		return Track{}, err
	}
	if [4]byte(sig) != trackSignature {
		return Track{}, ErrBadTrackHeader
	}

	length, err := r.uint32()
	if err != nil {
		return Track{}, err
	}
	body, err := r.bytes(int(length))
	if err != nil {
		return Track{}, err
	}

	tr := &reader{data: body}
	var track Track
	var tick uint64
	var runningStatus byte

	for tr.remaining() > 0 {
		delta, err := tr.vlq()
		if err != nil {
			return Track{}, err
		}
		tick += uint64(delta)

		status, err := tr.byte()
		if err != nil {
			return Track{}, err
		}
		if status < 0x80 {
			// Running status: the byte we read is the first data byte of
			// an event reusing the previous status.
			if runningStatus == 0 {
				return Track{}, ErrMissingStatus
			}
			tr.unread()
			status = runningStatus
		}

		ev := Event{AbsoluteTick: tick}

		switch {
		case status == statusMeta:
			runningStatus = 0
			metaType, err := tr.byte()
			if err != nil {
				return Track{}, err
			}
			size, err := tr.vlq()
			if err != nil {
				return Track{}, err
			}
			payload, err := tr.bytes(int(size))
			if err != nil {
				return Track{}, err
			}
			ev.Kind = EventMeta
			ev.MetaType = metaType
			ev.MetaData = append([]byte(nil), payload...)

		case status == statusSysEx || status == statusSysExEscape:
			runningStatus = 0
			size, err := tr.vlq()
			if err != nil {
				return Track{}, err
			}
			payload, err := tr.bytes(int(size))
			if err != nil {
				return Track{}, err
			}
			ev.Kind = EventSysEx
			ev.MetaData = append([]byte(nil), payload...)

		default:
			runningStatus = status
			ev.Channel = status & 0x0F

			kind, dataBytes, err := classify(status & 0xF0)
			if err != nil {
				return Track{}, err
			}
			ev.Kind = kind

			if dataBytes >= 1 {
				if ev.Data1, err = tr.byte(); err != nil {
					return Track{}, err
				}
			}
			if dataBytes == 2 {
				if ev.Data2, err = tr.byte(); err != nil {
					return Track{}, err
				}
			}

			// Note-on with velocity zero is by convention a note-off.
			if ev.Kind == EventNoteOn && ev.Data2 == 0 {
				ev.Kind = EventNoteOff
			}
		}

		track.Events = append(track.Events, ev)
	}

	return track, nil
}

// classify maps a status-byte class to its event kind and data byte count.
func classify(class byte) (EventKind, int, error) {
	switch class {
	case statusNoteOff:
		return EventNoteOff, 2, nil
	case statusNoteOn:
		return EventNoteOn, 2, nil
	case statusPolyPressure:
		return EventPolyPressure, 2, nil
	case statusControlChange:
		return EventControlChange, 2, nil
	case statusProgramChange:
		return EventProgramChange, 1, nil
	case statusChannelPressure:
		return EventChannelPressure, 1, nil
	case statusPitchBend:
		return EventPitchBend, 2, nil
	default:
		return 0, 0, fmt.Errorf("%w: status class %#x", ErrBadTrackHeader, class)
	}
}

// reader is a bounds-checked cursor over a byte slice.
type reader struct {
	data []byte
	pos  int
}

func (r *reader) remaining() int { return len(r.data) - r.pos }

func (r *reader) byte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, ErrTruncated
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *reader) unread() { r.pos-- }

func (r *reader) bytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.data) {
		return nil, ErrTruncated
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) uint16() (uint16, error) {
	b, err := r.bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *reader) uint32() (uint32, error) {
	b, err := r.bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// vlq decodes a variable-length quantity: 7 data bits per byte, high bit
// set on every byte except the last, at most 4 bytes.
func (r *reader) vlq() (uint32, error) {
	var value uint32
	for i := range 4 {
		b, err := r.byte()
		if err != nil {
			return 0, err
		}
		value = value<<7 | uint32(b&0x7F)
		if b&0x80 == 0 {
			return value, nil
		}
		if i == 3 {
			return 0, ErrVLQTooLong
		}
	}
	return 0, ErrVLQTooLong
}
