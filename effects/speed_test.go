package effects

import (
	"math"
	"testing"

	"github.com/waveline/waveline/internal/audiotest"
)

func TestChangeSpeed_HalvesLength(t *testing.T) {
	t.Parallel()

	// 2-second stereo 440 Hz tone at 44.1 kHz.
	in := audiotest.Sine(t, 44100, 2, 88200, 440)
	out, err := ChangeSpeed(in, 2.0)
	if err != nil {
		t.Fatalf("ChangeSpeed() error = %v", err)
	}
	if out.FrameCount() != 44100 {
		t.Errorf("FrameCount() = %d, want 44100", out.FrameCount())
	}
	if got := out.Seconds(); math.Abs(got-1.0) > 1e-6 {
		t.Errorf("Seconds() = %v, want 1.0", got)
	}
}

func TestChangeSpeed_LengthFloor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		frames int
		ratio  float64
		want   int
	}{
		{"slow down", 1000, 0.5, 2000},
		{"speed up", 1001, 2.0, 500},
		{"odd ratio", 1000, 3.0, 333},
		{"unity", 123, 1.0, 123},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := audiotest.Ramp(t, 8000, 1, tt.frames)
			out, err := ChangeSpeed(in, tt.ratio)
			if err != nil {
				t.Fatalf("ChangeSpeed() error = %v", err)
			}
			if out.FrameCount() != tt.want {
				t.Errorf("FrameCount() = %d, want %d", out.FrameCount(), tt.want)
			}
		})
	}
}

func TestChangePitch_PreservesLength(t *testing.T) {
	t.Parallel()

	in := audiotest.Sine(t, 44100, 1, 8192, 440)
	out, err := ChangePitch(in, 1.5)
	if err != nil {
		t.Fatalf("ChangePitch() error = %v", err)
	}
	if out.FrameCount() != in.FrameCount() {
		t.Errorf("FrameCount() = %d, want %d", out.FrameCount(), in.FrameCount())
	}
}

func TestPaulstretch_StretchesLength(t *testing.T) {
	t.Parallel()

	in := audiotest.Sine(t, 44100, 1, 4410, 440)
	out, err := Paulstretch(in, 8)
	if err != nil {
		t.Fatalf("Paulstretch() error = %v", err)
	}
	if out.FrameCount() != 4410*8 {
		t.Errorf("FrameCount() = %d, want %d", out.FrameCount(), 4410*8)
	}
}

func TestEcho_OutputLength(t *testing.T) {
	t.Parallel()

	in := audiotest.Sine(t, 44100, 2, 44100, 440)
	delay := 0.25
	repeat := 3
	out, err := Echo(in, delay, 0.5, repeat)
	if err != nil {
		t.Fatalf("Echo() error = %v", err)
	}

	delaySamples := int(delay * 44100)
	want := 44100 + repeat*delaySamples
	if out.FrameCount() != want {
		t.Errorf("FrameCount() = %d, want %d", out.FrameCount(), want)
	}
}

func TestEcho_DecayedCopies(t *testing.T) {
	t.Parallel()

	in := audiotest.Impulse(t, 1000, 1, 10, 0)
	out, err := Echo(in, 0.1, 0.5, 2) // 100-sample delay
	if err != nil {
		t.Fatalf("Echo() error = %v", err)
	}

	if got := out.Channel(0)[0]; got != 1 {
		t.Errorf("original impulse = %v, want 1", got)
	}
	if got := out.Channel(0)[100]; got != 0.5 {
		t.Errorf("first echo = %v, want 0.5", got)
	}
	if got := out.Channel(0)[200]; got != 0.25 {
		t.Errorf("second echo = %v, want 0.25", got)
	}
}
