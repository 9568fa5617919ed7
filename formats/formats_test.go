// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/waveline/waveline/internal/audiotest"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	r := Default()

	for _, format := range []string{"wav", "aiff", "mp3", "ogg"} {
		if _, err := r.Decoder(format); err != nil {
			t.Errorf("Decoder(%q): %v", format, err)
		}
	}
	for _, format := range []string{"wav", "aiff", "mp3", "ogg", "flac"} {
		if _, err := r.Encoder(format); err != nil {
			t.Errorf("Encoder(%q): %v", format, err)
		}
	}

	if _, err := r.Encoder("au"); !errors.Is(err, ErrFormatNotSupported) {
		t.Errorf("Encoder(au) error = %v, want %v", err, ErrFormatNotSupported)
	}
	if _, err := r.Decoder("flac"); !errors.Is(err, ErrFormatNotSupported) {
		t.Errorf("Decoder(flac) error = %v, want %v", err, ErrFormatNotSupported)
	}

	want := []string{"aiff", "flac", "mp3", "ogg", "wav"}
	if got := r.EncoderFormats(); !slices.Equal(got, want) {
		t.Errorf("EncoderFormats = %v, want %v", got, want)
	}
}

func TestPCMFallbackDeclaresMediaType(t *testing.T) {
	t.Parallel()

	enc := NewPCMFallback("audio/flac")
	if got := enc.MediaType(); got != "audio/flac" {
		t.Errorf("MediaType = %q, want audio/flac", got)
	}

	// The payload itself is WAV framing.
	var out bytes.Buffer
	buf := audiotest.Sine(t, 8000, 1, 800, 440)
	if err := enc.Encode(&out, buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.HasPrefix(out.Bytes(), []byte("RIFF")) {
		t.Error("fallback payload should be RIFF framed")
	}
}
