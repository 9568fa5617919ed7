// SPDX-License-Identifier: EPL-2.0

package engine

// DeviceInfo describes one audio endpoint the host platform exposes.
type DeviceInfo struct {
	ID    string
	Name  string
	Input bool
}

// InputStream is an open capture stream. Chunks arrive on the device's
// own cadence via the callback passed to Start; the stream must not call
// the callback again once Stop returns.
type InputStream interface {
	Start(onChunk func(left, right []float32)) error
	Stop() error
	Close() error
}

// DeviceProvider is the narrow capability surface the engine needs from
// the host platform's audio layer. Output is pulled by the host calling
// Render, so only capture and enumeration live here.
type DeviceProvider interface {
	Devices() ([]DeviceInfo, error)
	OpenInput(sampleRate int) (InputStream, error)
}
