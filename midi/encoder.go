// SPDX-License-Identifier: EPL-2.0

package midi

import "encoding/binary"

// Encode serializes a document into Standard MIDI File bytes.
//
// The encoder is intentionally minimal and is NOT an inverse of Parse: it
// emits a valid MThd header and, for each track, an MTrk chunk holding a
// single end-of-track meta event. Event re-serialization is not
// implemented; callers that need lossless round-trips must keep the
// original bytes.
func Encode(doc *Document) []byte {
	trackCount := len(doc.Tracks)
	if trackCount == 0 {
		trackCount = 1
	}

	out := make([]byte, 0, 14+trackCount*12)

	out = append(out, headerSignature[:]...)
	out = binary.BigEndian.AppendUint32(out, 6)
	out = binary.BigEndian.AppendUint16(out, doc.Format)
	out = binary.BigEndian.AppendUint16(out, uint16(trackCount))
	out = binary.BigEndian.AppendUint16(out, doc.TicksPerQuarterNote)

	// delta 0, meta status, end-of-track type, zero-length payload
	endOfTrack := []byte{0x00, statusMeta, MetaEndOfTrack, 0x00}
	for range trackCount {
		out = append(out, trackSignature[:]...)
		out = binary.BigEndian.AppendUint32(out, uint32(len(endOfTrack)))
		out = append(out, endOfTrack...)
	}

	return out
}

// AppendVLQ appends v as a variable-length quantity (1-4 bytes).
func AppendVLQ(dst []byte, v uint32) []byte {
	v &= 0x0FFFFFFF // VLQs cap at 28 data bits

	var stack [4]byte
	n := 0
	for {
		stack[n] = byte(v & 0x7F)
		v >>= 7
		n++
		if v == 0 {
			break
		}
	}
	for i := n - 1; i >= 0; i-- {
		b := stack[i]
		if i > 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}
	return dst
}
