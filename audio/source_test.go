package audio

import (
	"io"
	"math"
	"testing"

	"github.com/waveline/waveline/buffer"
	"github.com/waveline/waveline/internal/audiotest"
)

func TestBufferSource_ReadAll(t *testing.T) {
	t.Parallel()

	buf := audiotest.Ramp(t, 8000, 2, 10)
	src, err := NewBufferSource(buf)
	if err != nil {
		t.Fatalf("NewBufferSource() error = %v", err)
	}

	dst := make([]float32, 6)
	total := 0
	for {
		n, err := src.ReadSamples(dst)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
	if total != 20 {
		t.Errorf("read %d samples, want 20", total)
	}
}

func TestBufferSource_MisalignedDst(t *testing.T) {
	t.Parallel()

	src, _ := NewBufferSource(audiotest.Ramp(t, 8000, 2, 10))
	if _, err := src.ReadSamples(make([]float32, 5)); err != ErrInvalidDstSize {
		t.Errorf("ReadSamples() error = %v, want %v", err, ErrInvalidDstSize)
	}
}

func TestCollect_RoundTrip(t *testing.T) {
	t.Parallel()

	buf := audiotest.Sine(t, 44100, 2, 441, 440)
	src, _ := NewBufferSource(buf)

	got, err := Collect(src)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if got.FrameCount() != buf.FrameCount() {
		t.Fatalf("Collect() frames = %d, want %d", got.FrameCount(), buf.FrameCount())
	}
	for ch := range buf.ChannelCount() {
		for f := range buf.FrameCount() {
			if got.Channel(ch)[f] != buf.Channel(ch)[f] {
				t.Fatalf("sample mismatch at ch %d frame %d", ch, f)
			}
		}
	}
}

func TestConvertRate_Downsample(t *testing.T) {
	t.Parallel()

	in := audiotest.Sine(t, 44100, 1, 44100, 440)
	out, err := ConvertRate(in, 22050)
	if err != nil {
		t.Fatalf("ConvertRate() error = %v", err)
	}
	if out.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", out.SampleRate())
	}

	// Should be about half the frames, allow interpolation edge slack.
	want := 22050
	if diff := out.FrameCount() - want; diff < -8 || diff > 8 {
		t.Errorf("FrameCount() = %d, want about %d", out.FrameCount(), want)
	}
}

func TestConvertRate_InputShorterThanKernel(t *testing.T) {
	t.Parallel()

	// Three frames cannot fill the four-frame interpolation window; the
	// resampler pads with the last frame and still produces output.
	in, err := buffer.FromChannels(8000, [][]float32{{0.1, 0.2, 0.3}})
	if err != nil {
		t.Fatalf("FromChannels() error = %v", err)
	}

	out, err := ConvertRate(in, 16000)
	if err != nil {
		t.Fatalf("ConvertRate() error = %v", err)
	}
	if out.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", out.SampleRate())
	}
	if out.FrameCount() == 0 {
		t.Fatal("no output for short input")
	}
	if got := out.Channel(0)[0]; math.Abs(float64(got-0.2)) > 1e-6 {
		t.Errorf("first output sample = %v, want 0.2", got)
	}
}

func TestConvertRate_SameRateClones(t *testing.T) {
	t.Parallel()

	in := audiotest.Constant(t, 8000, 1, 16, 0.5)
	out, err := ConvertRate(in, 8000)
	if err != nil {
		t.Fatalf("ConvertRate() error = %v", err)
	}
	out.Channel(0)[0] = -1
	if in.Channel(0)[0] != 0.5 {
		t.Error("ConvertRate at same rate must not share storage with input")
	}
}

func TestConformChannels(t *testing.T) {
	t.Parallel()

	stereo, _ := buffer.FromChannels(8000, [][]float32{
		{0.2, 0.4},
		{0.6, 0.8},
	})

	mono, err := ConformChannels(stereo, 1)
	if err != nil {
		t.Fatalf("ConformChannels() error = %v", err)
	}
	if got := mono.Channel(0)[0]; math.Abs(float64(got-0.4)) > 1e-6 {
		t.Errorf("mono mixdown sample = %v, want 0.4", got)
	}

	back, err := ConformChannels(mono, 2)
	if err != nil {
		t.Fatalf("ConformChannels() error = %v", err)
	}
	if back.ChannelCount() != 2 {
		t.Fatalf("ChannelCount() = %d, want 2", back.ChannelCount())
	}
	if back.Channel(0)[0] != back.Channel(1)[0] {
		t.Error("expanded channels should be dual mono")
	}
}
