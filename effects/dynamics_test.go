package effects

import (
	"math"
	"testing"

	"github.com/waveline/waveline/internal/audiotest"
)

func TestNoiseGate_AllZerosStayZero(t *testing.T) {
	t.Parallel()

	in := audiotest.Silence(t, 44100, 2, 4410)
	out, err := NoiseGate(in, -40, 0.01, 0.05, 0.1)
	if err != nil {
		t.Fatalf("NoiseGate() error = %v", err)
	}
	for ch := range out.ChannelCount() {
		for i, s := range out.Channel(ch) {
			if s != 0 {
				t.Fatalf("gated silence sample %d = %v, want 0", i, s)
			}
		}
	}
}

func TestNoiseGate_LoudSignalPassesAfterAttack(t *testing.T) {
	t.Parallel()

	in := audiotest.Constant(t, 44100, 1, 44100, 0.5)
	out, err := NoiseGate(in, -40, 0.01, 0.05, 0.1)
	if err != nil {
		t.Fatalf("NoiseGate() error = %v", err)
	}

	// Attack is 441 samples; interior samples must be at full gain.
	for i := 1000; i < 44100; i++ {
		if got := out.Channel(0)[i]; got != 0.5 {
			t.Fatalf("interior sample %d = %v, want full-gain 0.5", i, got)
		}
	}
}

func TestNoiseReduction_GatesQuietSamplesOnly(t *testing.T) {
	t.Parallel()

	in := audiotest.Generate(t, 8000, 1, 4, func(f, _ int) float32 {
		return []float32{0.005, 0.5, -0.004, -0.6}[f]
	})
	out, err := NoiseReduction(in, 0.01, 0.8)
	if err != nil {
		t.Fatalf("NoiseReduction() error = %v", err)
	}

	want := []float32{0.005 * 0.2, 0.5, -0.004 * 0.2, -0.6}
	for i, w := range want {
		if got := out.Channel(0)[i]; math.Abs(float64(got-w)) > 1e-6 {
			t.Errorf("sample %d = %v, want %v", i, got, w)
		}
	}
}

func TestCompress_ReducesLoudPeaks(t *testing.T) {
	t.Parallel()

	in := audiotest.Constant(t, 44100, 1, 44100, 0.9)
	out, err := Compress(in, 0.5, 4, 0.001, 0.1)
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}

	// Once the envelope settles the gain should be
	// (0.5 + (0.9-0.5)/4) / 0.9 = 0.6/0.9.
	want := 0.9 * (0.5 + 0.4/4) / 0.9
	got := float64(out.Channel(0)[44099])
	if math.Abs(got-want) > 0.01 {
		t.Errorf("settled compressed sample = %v, want about %v", got, want)
	}
}

func TestLimiter_CapsPeaks(t *testing.T) {
	t.Parallel()

	in := audiotest.Sine(t, 44100, 1, 4410, 440)
	out, err := Limiter(in, 0.5, 1)
	if err != nil {
		t.Fatalf("Limiter() error = %v", err)
	}
	if p := peakOf(t, out.Channel(0)); p > 0.5+1e-4 {
		t.Errorf("limited peak = %v, want <= 0.5", p)
	}
}

func TestClipFix_InterpolatesClippedRun(t *testing.T) {
	t.Parallel()

	in := audiotest.Generate(t, 8000, 1, 7, func(f, _ int) float32 {
		return []float32{0.1, 0.3, 1, 1, 1, 0.3, 0.1}[f]
	})
	out, err := ClipFix(in, 0.95)
	if err != nil {
		t.Fatalf("ClipFix() error = %v", err)
	}

	// The run [2,5) interpolates between 0.3 and 0.3.
	for i := 2; i < 5; i++ {
		got := float64(out.Channel(0)[i])
		if math.Abs(got-0.3) > 1e-6 {
			t.Errorf("repaired sample %d = %v, want 0.3", i, got)
		}
	}
	if out.Channel(0)[1] != 0.3 || out.Channel(0)[5] != 0.3 {
		t.Error("unclipped bounding samples must stay untouched")
	}
}

func TestClickRemoval_FlattensSpike(t *testing.T) {
	t.Parallel()

	in := audiotest.Generate(t, 8000, 1, 64, func(f, _ int) float32 {
		if f == 32 {
			return 0.9
		}
		return 0.05
	})
	out, err := ClickRemoval(in, 4, 16)
	if err != nil {
		t.Fatalf("ClickRemoval() error = %v", err)
	}
	if got := math.Abs(float64(out.Channel(0)[32])); got > 0.1 {
		t.Errorf("spike sample after removal = %v, want interpolated small value", got)
	}
}
