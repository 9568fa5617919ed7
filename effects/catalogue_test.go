package effects

import (
	"errors"
	"testing"

	"github.com/waveline/waveline/buffer"
	"github.com/waveline/waveline/internal/audiotest"
)

func TestApply_UnknownEffect(t *testing.T) {
	t.Parallel()

	in := audiotest.Silence(t, 44100, 1, 10)
	_, err := Apply("definitelyNotAnEffect", in, nil)
	if !errors.Is(err, ErrUnknownEffect) {
		t.Errorf("Apply() error = %v, want %v", err, ErrUnknownEffect)
	}
}

func TestApply_NilBuffer(t *testing.T) {
	t.Parallel()

	_, err := Apply("amplify", nil, Params{"gain": 2})
	if !errors.Is(err, buffer.ErrNilBuffer) {
		t.Errorf("Apply(nil) error = %v, want %v", err, buffer.ErrNilBuffer)
	}
}

// Every catalogue entry must run with default parameters on a small
// buffer, never mutate its input, and return a fresh buffer.
func TestApply_AllEffectsWithDefaults(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			in := audiotest.Sine(t, 8000, 2, 2048, 220)
			snapshot := in.Clone()

			out, err := Apply(name, in, nil)
			if err != nil {
				t.Fatalf("Apply(%q) error = %v", name, err)
			}
			if out == nil {
				t.Fatalf("Apply(%q) returned nil buffer", name)
			}
			if out == in {
				t.Fatalf("Apply(%q) returned its input instead of a new buffer", name)
			}

			for ch := range in.ChannelCount() {
				for f := range in.FrameCount() {
					if in.Channel(ch)[f] != snapshot.Channel(ch)[f] {
						t.Fatalf("Apply(%q) mutated its input at ch %d frame %d", name, ch, f)
					}
				}
			}
		})
	}
}

func TestParameters_SchemaLockstep(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		specs := Parameters(name)
		for _, spec := range specs {
			if spec.Name == "" || spec.Label == "" {
				t.Errorf("effect %q has parameter with empty name or label", name)
			}
			if spec.Min > spec.Max {
				t.Errorf("effect %q parameter %q has min > max", name, spec.Name)
			}
			if spec.Default < spec.Min || spec.Default > spec.Max {
				t.Errorf("effect %q parameter %q default outside [min,max]", name, spec.Name)
			}
			if spec.Type == ParamEnum && len(spec.Choices) == 0 {
				t.Errorf("effect %q enum parameter %q has no choices", name, spec.Name)
			}
		}
	}
}

func TestParameters_UnknownEffectEmpty(t *testing.T) {
	t.Parallel()

	if got := Parameters("nope"); len(got) != 0 {
		t.Errorf("Parameters(unknown) returned %d specs, want 0", len(got))
	}
}

func TestApply_OutOfRangeParamsClamp(t *testing.T) {
	t.Parallel()

	in := audiotest.Constant(t, 8000, 1, 64, 0.5)
	// A wildly out-of-range gain must clamp to the schema max, not fail.
	out, err := Apply("amplify", in, Params{"gain": 1e9})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := out.Channel(0)[0]; got != 1 {
		t.Errorf("clamped amplify sample = %v, want clipped 1", got)
	}
}
