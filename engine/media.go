// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"bytes"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/waveline/waveline/audio"
)

// Export encodes a track through the registered encoder for format and
// returns the payload with its declared media type. Unlike the transport
// no-ops, a missing track id errors here because the caller expects data
// back.
func (e *Engine) Export(trackID, format string) ([]byte, string, error) {
	e.mu.Lock()
	t, ok := e.tracks[trackID]
	e.mu.Unlock()
	if !ok {
		return nil, "", fmt.Errorf("exporting %q: %w", trackID, ErrTrackNotFound)
	}

	enc, err := e.registry.Encoder(format)
	if err != nil {
		return nil, "", err
	}

	var out bytes.Buffer
	if err := enc.Encode(&out, t.Buffer()); err != nil {
		return nil, "", fmt.Errorf("exporting %q: %w", trackID, err)
	}
	return out.Bytes(), enc.MediaType(), nil
}

// ImportTrack decodes a container stream, conforms it to the engine's
// sample rate and stereo layout, and registers it as a new track.
func (e *Engine) ImportTrack(name, format string, r io.Reader) (string, error) {
	dec, err := e.registry.Decoder(format)
	if err != nil {
		return "", err
	}

	src, err := dec.Decode(r)
	if err != nil {
		return "", fmt.Errorf("importing %q: %w", name, err)
	}
	defer src.Close()

	buf, err := audio.Collect(src)
	if err != nil {
		return "", fmt.Errorf("importing %q: %w", name, err)
	}

	srcRate := buf.SampleRate()
	buf, err = audio.ConvertRate(buf, e.sampleRate)
	if err != nil {
		return "", fmt.Errorf("importing %q: %w", name, err)
	}
	buf, err = audio.ConformChannels(buf, outputChannels)
	if err != nil {
		return "", fmt.Errorf("importing %q: %w", name, err)
	}

	id, err := e.AddTrack(name, buf)
	if err != nil {
		return "", err
	}
	e.log.WithFields(logrus.Fields{
		"trackID":    id,
		"format":     format,
		"sourceRate": srcRate,
	}).Debug("track imported")
	return id, nil
}
