// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/waveline/waveline/audio"
	"github.com/waveline/waveline/buffer"
	"github.com/waveline/waveline/internal/audiotest"
)

func TestEncodeHeader(t *testing.T) {
	t.Parallel()

	buf := audiotest.Sine(t, 8000, 1, 2000, 440)

	var out bytes.Buffer
	if err := (Encoder{}).Encode(&out, buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	data := out.Bytes()
	frames := buf.FrameCount()
	if len(data) != 44+frames*2 {
		t.Fatalf("encoded size = %d, want %d", len(data), 44+frames*2)
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Error("missing RIFF/WAVE signature")
	}
	if got := binary.LittleEndian.Uint16(data[20:22]); got != 1 {
		t.Errorf("format tag = %d, want 1 (PCM)", got)
	}
	if got := binary.LittleEndian.Uint16(data[22:24]); got != 1 {
		t.Errorf("channels = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint32(data[24:28]); got != 8000 {
		t.Errorf("sample rate = %d, want 8000", got)
	}
	if got := binary.LittleEndian.Uint16(data[34:36]); got != 16 {
		t.Errorf("bits per sample = %d, want 16", got)
	}
	if got := binary.LittleEndian.Uint32(data[40:44]); got != uint32(frames*2) {
		t.Errorf("data size = %d, want %d", got, frames*2)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	src := audiotest.Generate(t, 44100, 2, 4410, func(f, ch int) float32 {
		return 0.8 * float32(math.Sin(2*math.Pi*440*float64(f)/44100+float64(ch)))
	})

	var encoded bytes.Buffer
	if err := (Encoder{}).Encode(&encoded, src); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	stream, err := Decoder{}.Decode(bytes.NewReader(encoded.Bytes()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	defer stream.Close()

	got, err := audio.Collect(stream)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if got.SampleRate() != src.SampleRate() {
		t.Errorf("sample rate = %d, want %d", got.SampleRate(), src.SampleRate())
	}
	if got.ChannelCount() != src.ChannelCount() {
		t.Errorf("channels = %d, want %d", got.ChannelCount(), src.ChannelCount())
	}
	if got.FrameCount() != src.FrameCount() {
		t.Fatalf("frames = %d, want %d", got.FrameCount(), src.FrameCount())
	}

	// 16-bit quantization allows one LSB of error.
	const tolerance = 1.0 / 32768.0 * 1.01
	for ch := range src.ChannelCount() {
		for f := range src.FrameCount() {
			want := float64(src.Channel(ch)[f])
			have := float64(got.Channel(ch)[f])
			if math.Abs(want-have) > tolerance {
				t.Fatalf("channel %d frame %d: got %v, want %v", ch, f, have, want)
			}
		}
	}
}

func TestDecodeEightBitRecentersUnsigned(t *testing.T) {
	t.Parallel()

	// 8-bit WAV stores unsigned PCM: 0x80 is silence, 0x00 the negative
	// peak, 0xFF just under the positive peak.
	samples := []byte{0x80, 0x00, 0xFF, 0x80}

	var file bytes.Buffer
	file.WriteString("RIFF")
	binary.Write(&file, binary.LittleEndian, uint32(36+len(samples)))
	file.WriteString("WAVEfmt ")
	binary.Write(&file, binary.LittleEndian, uint32(16))
	binary.Write(&file, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&file, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&file, binary.LittleEndian, uint32(8000))
	binary.Write(&file, binary.LittleEndian, uint32(8000)) // byte rate
	binary.Write(&file, binary.LittleEndian, uint16(1))    // block align
	binary.Write(&file, binary.LittleEndian, uint16(8))
	file.WriteString("data")
	binary.Write(&file, binary.LittleEndian, uint32(len(samples)))
	file.Write(samples)

	stream, err := Decoder{}.Decode(bytes.NewReader(file.Bytes()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	defer stream.Close()

	got, err := audio.Collect(stream)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	want := []float32{0, -1, 127.0 / 128.0, 0}
	if got.FrameCount() != len(want) {
		t.Fatalf("frames = %d, want %d", got.FrameCount(), len(want))
	}
	for i, w := range want {
		if have := got.Channel(0)[i]; have != w {
			t.Errorf("sample %d = %v, want %v", i, have, w)
		}
	}
}

func TestEncodeNilBuffer(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := (Encoder{}).Encode(&out, nil); !errors.Is(err, buffer.ErrNilBuffer) {
		t.Errorf("Encode(nil) error = %v, want %v", err, buffer.ErrNilBuffer)
	}
}

func TestDecodeGarbage(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("not audio at all"))); err == nil {
		t.Error("Decode on garbage should fail")
	}
}

func TestMediaType(t *testing.T) {
	t.Parallel()

	if got := (Encoder{}).MediaType(); got != "audio/wav" {
		t.Errorf("MediaType = %q", got)
	}
}
