// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"math"
	"testing"

	"github.com/waveline/waveline/internal/audiotest"
)

func TestCutShortensTrack(t *testing.T) {
	t.Parallel()

	e := quietEngine(t)
	id := addSine(t, e, 2)

	region := e.Cut(id, 0.5, 1.0)
	if region == nil {
		t.Fatal("cut returned nil for existing track")
	}
	if math.Abs(region.Seconds()-0.5) > 1e-6 {
		t.Errorf("region seconds = %v, want 0.5", region.Seconds())
	}

	track, _ := e.Track(id)
	if math.Abs(track.Seconds()-1.5) > 1e-6 {
		t.Errorf("track seconds = %v, want 1.5 (old minus cut)", track.Seconds())
	}
}

func TestCopyLeavesTrackIntact(t *testing.T) {
	t.Parallel()

	e := quietEngine(t)
	id := addSine(t, e, 1)

	track, _ := e.Track(id)
	before := track.Buffer()

	region := e.Copy(id, 0.25, 0.75)
	if math.Abs(region.Seconds()-0.5) > 1e-6 {
		t.Errorf("region seconds = %v, want 0.5", region.Seconds())
	}
	if track.Buffer() != before {
		t.Error("copy replaced the track buffer")
	}

	// Mutating the extracted region must not touch the track.
	region.Channel(0)[0] = 42
	if track.Buffer().Channel(0)[int(0.25*float64(e.SampleRate()))] == 42 {
		t.Error("region shares storage with track")
	}
}

func TestCutDegenerateRange(t *testing.T) {
	t.Parallel()

	e := quietEngine(t)
	id := addSine(t, e, 1)

	region := e.Cut(id, 0.5, 0.5)
	if region.FrameCount() != 0 {
		t.Errorf("degenerate cut frames = %d, want 0", region.FrameCount())
	}

	track, _ := e.Track(id)
	if math.Abs(track.Seconds()-1.0) > 1e-9 {
		t.Errorf("track changed by degenerate cut: %v seconds", track.Seconds())
	}
}

func TestCutMissingTrack(t *testing.T) {
	t.Parallel()

	e := quietEngine(t)
	if region := e.Cut("ghost", 0, 1); region != nil {
		t.Error("cut on missing track should return nil")
	}
	if region := e.Copy("ghost", 0, 1); region != nil {
		t.Error("copy on missing track should return nil")
	}
}

func TestPasteMixesOverlapByAveraging(t *testing.T) {
	t.Parallel()

	e := quietEngine(t)

	dst := audiotest.Constant(t, e.SampleRate(), 1, 1000, 0.4)
	id, err := e.AddTrack("", dst)
	if err != nil {
		t.Fatal(err)
	}

	src := audiotest.Constant(t, e.SampleRate(), 1, 500, 0.8)
	if err := e.Paste(id, src, 0); err != nil {
		t.Fatalf("Paste: %v", err)
	}

	track, _ := e.Track(id)
	if track.Buffer().FrameCount() != 1000 {
		t.Fatalf("frames = %d, want 1000", track.Buffer().FrameCount())
	}
	// Overlap averages: (0.4 + 0.8) / 2 = 0.6.
	if got := track.Buffer().Channel(0)[100]; math.Abs(float64(got)-0.6) > 1e-6 {
		t.Errorf("overlap sample = %v, want 0.6", got)
	}
	// Past the pasted region the original survives.
	if got := track.Buffer().Channel(0)[700]; math.Abs(float64(got)-0.4) > 1e-6 {
		t.Errorf("tail sample = %v, want 0.4", got)
	}
}

func TestPasteGrowsTrack(t *testing.T) {
	t.Parallel()

	e := quietEngine(t)

	rate := e.SampleRate()
	dst := audiotest.Constant(t, rate, 1, rate, 0.4) // one second
	id, err := e.AddTrack("", dst)
	if err != nil {
		t.Fatal(err)
	}

	src := audiotest.Constant(t, rate, 1, rate/2, 0.8) // half second
	if err := e.Paste(id, src, 0.75); err != nil {
		t.Fatalf("Paste: %v", err)
	}

	track, _ := e.Track(id)
	wantFrames := int(0.75*float64(rate)) + rate/2
	if track.Buffer().FrameCount() != wantFrames {
		t.Fatalf("frames = %d, want %d", track.Buffer().FrameCount(), wantFrames)
	}

	// Appended region past the old end carries the source as-is.
	if got := track.Buffer().Channel(0)[wantFrames-1]; math.Abs(float64(got)-0.8) > 1e-6 {
		t.Errorf("appended sample = %v, want 0.8", got)
	}
	// The overlapping stretch averaged.
	overlapAt := int(0.8 * float64(rate))
	if got := track.Buffer().Channel(0)[overlapAt]; math.Abs(float64(got)-0.6) > 1e-6 {
		t.Errorf("overlap sample = %v, want 0.6", got)
	}
}

func TestPasteConformsSource(t *testing.T) {
	t.Parallel()

	e := quietEngine(t)
	id := addSine(t, e, 1) // stereo at engine rate

	// Mono source at a different rate gets resampled and expanded.
	src := audiotest.Constant(t, 22050, 1, 2205, 0.8)
	if err := e.Paste(id, src, 0); err != nil {
		t.Fatalf("Paste: %v", err)
	}

	track, _ := e.Track(id)
	if track.Buffer().ChannelCount() != 2 {
		t.Errorf("channels = %d, want 2", track.Buffer().ChannelCount())
	}
	if track.Buffer().SampleRate() != e.SampleRate() {
		t.Errorf("rate = %d, want engine rate", track.Buffer().SampleRate())
	}
}

func TestEditStopsVoices(t *testing.T) {
	t.Parallel()

	e := quietEngine(t)
	id := addSine(t, e, 1)

	if err := e.Play(id, 0, 0); err != nil {
		t.Fatal(err)
	}
	e.Cut(id, 0, 0.5)
	if n := len(e.Voices()); n != 0 {
		t.Errorf("voices after cut = %d, want 0", n)
	}
}
