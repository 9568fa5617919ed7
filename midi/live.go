// SPDX-License-Identifier: EPL-2.0

package midi

// LiveKind classifies real-time (non-file) messages.
type LiveKind int

const (
	LiveNoteOn LiveKind = iota
	LiveNoteOff
	LiveControlChange
)

// LiveMessage is one decoded 3-byte wire message.
type LiveMessage struct {
	Kind    LiveKind
	Channel uint8 // 0-15
	Data1   uint8 // note number or controller
	Data2   uint8 // velocity or controller value
}

// EncodeLive serializes a live message as the fixed 3-byte wire form with
// the channel in the status byte's low nibble.
func EncodeLive(msg LiveMessage) []byte {
	var status byte
	switch msg.Kind {
	case LiveNoteOff:
		status = statusNoteOff
	case LiveControlChange:
		status = statusControlChange
	default:
		status = statusNoteOn
	}
	return []byte{
		status | (msg.Channel & 0x0F),
		msg.Data1 & 0x7F,
		msg.Data2 & 0x7F,
	}
}

// DecodeLive parses a 3-byte live message. A note-on with velocity zero
// decodes as a note-off, matching common device behavior.
func DecodeLive(data []byte) (LiveMessage, error) {
	if len(data) < 3 {
		return LiveMessage{}, ErrShortLiveMessage
	}

	msg := LiveMessage{
		Channel: data[0] & 0x0F,
		Data1:   data[1] & 0x7F,
		Data2:   data[2] & 0x7F,
	}

	switch data[0] & 0xF0 {
	case statusNoteOn:
		msg.Kind = LiveNoteOn
		if msg.Data2 == 0 {
			msg.Kind = LiveNoteOff
		}
	case statusNoteOff:
		msg.Kind = LiveNoteOff
	case statusControlChange:
		msg.Kind = LiveControlChange
	default:
		return LiveMessage{}, ErrNotLiveMessage
	}
	return msg, nil
}
