// SPDX-License-Identifier: EPL-2.0

package midi

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func smfHeader(format, tracks, division uint16) []byte {
	out := []byte("MThd")
	out = binary.BigEndian.AppendUint32(out, 6)
	out = binary.BigEndian.AppendUint16(out, format)
	out = binary.BigEndian.AppendUint16(out, tracks)
	out = binary.BigEndian.AppendUint16(out, division)
	return out
}

func smfTrack(body []byte) []byte {
	out := []byte("MTrk")
	out = binary.BigEndian.AppendUint32(out, uint32(len(body)))
	return append(out, body...)
}

func TestParseHeader(t *testing.T) {
	t.Parallel()

	data := smfHeader(0, 1, 480)
	data = append(data, smfTrack(nil)...)

	doc, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Format != 0 {
		t.Errorf("Format = %d, want 0", doc.Format)
	}
	if len(doc.Tracks) != 1 {
		t.Errorf("len(Tracks) = %d, want 1", len(doc.Tracks))
	}
	if doc.TicksPerQuarterNote != 480 {
		t.Errorf("TicksPerQuarterNote = %d, want 480", doc.TicksPerQuarterNote)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrTruncated},
		{"wrong signature", []byte("RIFF\x00\x00\x00\x06"), ErrNotMidiFile},
		{"short header length", append([]byte("MThd"), 0, 0, 0, 4), ErrBadHeader},
		{"header cut off", smfHeader(0, 1, 480)[:10], ErrTruncated},
		{"missing track", smfHeader(0, 1, 480), ErrTruncated},
		{"bad track signature", append(smfHeader(0, 1, 480), []byte("XTrk\x00\x00\x00\x00")...), ErrBadTrackHeader},
		{"track body cut off", append(smfHeader(0, 1, 480), []byte("MTrk\x00\x00\x00\x10")...), ErrTruncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Parse(tt.data); !errors.Is(err, tt.want) {
				t.Errorf("Parse error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseEvents(t *testing.T) {
	t.Parallel()

	body := []byte{
		0x00, 0x90, 60, 100, // note on C4
		0x60, 60, 0, // running status, velocity 0 = note off
		0x00, 0xB0, 7, 127, // volume controller
		0x00, 0xFF, 0x2F, 0x00, // end of track
	}
	data := append(smfHeader(0, 1, 96), smfTrack(body)...)

	doc, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	events := doc.Tracks[0].Events
	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}

	if events[0].Kind != EventNoteOn || events[0].Data1 != 60 || events[0].Data2 != 100 {
		t.Errorf("event 0 = %+v, want note on 60/100", events[0])
	}
	if events[1].Kind != EventNoteOff {
		t.Errorf("velocity-zero note on decoded as %v, want note off", events[1].Kind)
	}
	if events[1].AbsoluteTick != 0x60 {
		t.Errorf("event 1 tick = %d, want %d", events[1].AbsoluteTick, 0x60)
	}
	if events[2].Kind != EventControlChange || events[2].Data1 != 7 {
		t.Errorf("event 2 = %+v, want control change 7", events[2])
	}
	if events[3].Kind != EventMeta || events[3].MetaType != MetaEndOfTrack {
		t.Errorf("event 3 = %+v, want end-of-track meta", events[3])
	}
}

func TestParseRunningStatusWithoutStatus(t *testing.T) {
	t.Parallel()

	// First event starts with a data byte and nothing to fall back on.
	data := append(smfHeader(0, 1, 96), smfTrack([]byte{0x00, 60, 100})...)
	if _, err := Parse(data); !errors.Is(err, ErrMissingStatus) {
		t.Errorf("Parse error = %v, want %v", err, ErrMissingStatus)
	}
}

func TestVLQ(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value uint32
		wire  []byte
	}{
		{0x00, []byte{0x00}},
		{0x40, []byte{0x40}},
		{0x7F, []byte{0x7F}},
		{0x80, []byte{0x81, 0x00}},
		{0x2000, []byte{0xC0, 0x00}},
		{0x3FFF, []byte{0xFF, 0x7F}},
		{0x4000, []byte{0x81, 0x80, 0x00}},
		{0x0FFFFFFF, []byte{0xFF, 0xFF, 0xFF, 0x7F}},
	}

	for _, tt := range tests {
		got := AppendVLQ(nil, tt.value)
		if !bytes.Equal(got, tt.wire) {
			t.Errorf("AppendVLQ(%#x) = % x, want % x", tt.value, got, tt.wire)
		}

		r := &reader{data: tt.wire}
		decoded, err := r.vlq()
		if err != nil {
			t.Fatalf("vlq(% x): %v", tt.wire, err)
		}
		if decoded != tt.value {
			t.Errorf("vlq(% x) = %#x, want %#x", tt.wire, decoded, tt.value)
		}
	}

	r := &reader{data: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x7F}}
	if _, err := r.vlq(); !errors.Is(err, ErrVLQTooLong) {
		t.Errorf("5-byte vlq error = %v, want %v", err, ErrVLQTooLong)
	}
}

func TestDuration(t *testing.T) {
	t.Parallel()

	// 500000 us per quarter = 120 BPM, so 960 ticks at 480 tpq is 1 second.
	body := []byte{
		0x00, 0xFF, 0x51, 0x03, 0x07, 0xA1, 0x20,
		0x87, 0x40, 0x90, 60, 100, // delta 960
		0x00, 0xFF, 0x2F, 0x00,
	}
	data := append(smfHeader(0, 1, 480), smfTrack(body)...)

	doc, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := doc.Duration(); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Duration = %v, want 1.0", got)
	}
}

func TestDurationDefaultTempo(t *testing.T) {
	t.Parallel()

	doc := &Document{
		TicksPerQuarterNote: 480,
		Tracks: []Track{{Events: []Event{
			{AbsoluteTick: 480, Kind: EventNoteOff},
		}}},
	}
	// One quarter note at the 120 BPM default is half a second.
	if got := doc.Duration(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Duration = %v, want 0.5", got)
	}
}

func TestEncodeParses(t *testing.T) {
	t.Parallel()

	doc := &Document{Format: 1, TicksPerQuarterNote: 960, Tracks: make([]Track, 3)}
	out := Encode(doc)

	back, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse(Encode()): %v", err)
	}
	if back.Format != 1 || back.TicksPerQuarterNote != 960 || len(back.Tracks) != 3 {
		t.Errorf("round trip = format %d, tpq %d, %d tracks",
			back.Format, back.TicksPerQuarterNote, len(back.Tracks))
	}
	for i, track := range back.Tracks {
		if len(track.Events) != 1 || track.Events[0].MetaType != MetaEndOfTrack {
			t.Errorf("track %d events = %+v, want single end-of-track", i, track.Events)
		}
	}
}

func TestLiveRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []LiveMessage{
		{Kind: LiveNoteOn, Channel: 0, Data1: 60, Data2: 100},
		{Kind: LiveNoteOff, Channel: 9, Data1: 36, Data2: 64},
		{Kind: LiveControlChange, Channel: 15, Data1: 7, Data2: 127},
	}

	for _, msg := range tests {
		wire := EncodeLive(msg)
		if len(wire) != 3 {
			t.Fatalf("EncodeLive(%+v) = %d bytes, want 3", msg, len(wire))
		}
		got, err := DecodeLive(wire)
		if err != nil {
			t.Fatalf("DecodeLive(% x): %v", wire, err)
		}
		if got != msg {
			t.Errorf("round trip = %+v, want %+v", got, msg)
		}
	}
}

func TestDecodeLiveVelocityZero(t *testing.T) {
	t.Parallel()

	msg, err := DecodeLive([]byte{0x93, 60, 0})
	if err != nil {
		t.Fatalf("DecodeLive: %v", err)
	}
	if msg.Kind != LiveNoteOff {
		t.Errorf("Kind = %v, want note off", msg.Kind)
	}
	if msg.Channel != 3 {
		t.Errorf("Channel = %d, want 3", msg.Channel)
	}
}

func TestDecodeLiveErrors(t *testing.T) {
	t.Parallel()

	if _, err := DecodeLive([]byte{0x90, 60}); !errors.Is(err, ErrShortLiveMessage) {
		t.Errorf("short message error = %v, want %v", err, ErrShortLiveMessage)
	}
	if _, err := DecodeLive([]byte{0xE0, 0, 0}); !errors.Is(err, ErrNotLiveMessage) {
		t.Errorf("pitch bend error = %v, want %v", err, ErrNotLiveMessage)
	}
}
