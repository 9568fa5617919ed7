package effects

import (
	"math"
	"testing"

	"github.com/waveline/waveline/internal/audiotest"
)

// rmsOf measures channel energy so filter attenuation is observable.
func rmsOf(samples []float32) float64 {
	var sum float64
	for _, s := range samples {
		sum += float64(s) * float64(s)
	}
	return math.Sqrt(sum / float64(len(samples)))
}

func TestLowPassFilter_AttenuatesHighs(t *testing.T) {
	t.Parallel()

	high := audiotest.Sine(t, 44100, 1, 44100, 8000)
	out, err := LowPassFilter(high, 200)
	if err != nil {
		t.Fatalf("LowPassFilter() error = %v", err)
	}

	if in, got := rmsOf(high.Channel(0)), rmsOf(out.Channel(0)); got > in*0.2 {
		t.Errorf("8 kHz tone through 200 Hz low-pass: rms %v -> %v, want strong attenuation", in, got)
	}
}

func TestHighPassFilter_AttenuatesLows(t *testing.T) {
	t.Parallel()

	low := audiotest.Sine(t, 44100, 1, 44100, 50)
	out, err := HighPassFilter(low, 2000)
	if err != nil {
		t.Fatalf("HighPassFilter() error = %v", err)
	}

	if in, got := rmsOf(low.Channel(0)), rmsOf(out.Channel(0)); got > in*0.2 {
		t.Errorf("50 Hz tone through 2 kHz high-pass: rms %v -> %v, want strong attenuation", in, got)
	}
}

func TestFilter_CutoffClampPolicy(t *testing.T) {
	t.Parallel()

	// Negative and super-Nyquist cutoffs clamp instead of failing.
	in := audiotest.Sine(t, 8000, 1, 800, 440)
	if _, err := LowPassFilter(in, -100); err != nil {
		t.Errorf("LowPassFilter(negative cutoff) error = %v, want clamped success", err)
	}
	if _, err := HighPassFilter(in, 1e9); err != nil {
		t.Errorf("HighPassFilter(huge cutoff) error = %v, want clamped success", err)
	}
}

func TestNotch_KillsCenterFrequency(t *testing.T) {
	t.Parallel()

	in := audiotest.Sine(t, 44100, 1, 44100, 1000)
	out, err := Notch(in, 1000, 1)
	if err != nil {
		t.Fatalf("Notch() error = %v", err)
	}

	// Measure steady state only, skipping the filter transient.
	if got := rmsOf(out.Channel(0)[4410:]); got > 0.05 {
		t.Errorf("1 kHz tone through 1 kHz notch rms = %v, want near silence", got)
	}
}

func TestBassAndTreble_BoostsBass(t *testing.T) {
	t.Parallel()

	in := audiotest.Sine(t, 44100, 1, 44100, 100)
	out, err := BassAndTreble(in, 12, 0)
	if err != nil {
		t.Fatalf("BassAndTreble() error = %v", err)
	}

	if inRMS, got := rmsOf(in.Channel(0)), rmsOf(out.Channel(0)[4410:]); got < inRMS*1.5 {
		t.Errorf("100 Hz tone with +12 dB bass shelf: rms %v -> %v, want boost", inRMS, got)
	}
}

func TestGraphicEQ_FlatCurveIsTransparentish(t *testing.T) {
	t.Parallel()

	in := audiotest.Sine(t, 44100, 1, 44100, 440)
	out, err := GraphicEQ(in, [10]float64{})
	if err != nil {
		t.Fatalf("GraphicEQ() error = %v", err)
	}

	inRMS := rmsOf(in.Channel(0))
	outRMS := rmsOf(out.Channel(0))
	if math.Abs(inRMS-outRMS) > inRMS*0.1 {
		t.Errorf("flat EQ changed rms %v -> %v, want near transparency", inRMS, outRMS)
	}
}
