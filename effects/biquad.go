// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"
	"strconv"

	"github.com/waveline/waveline/buffer"
)

// biquad is a second-order IIR section in direct form I, with
// coefficients normalized by a0. Derivations follow the RBJ Audio EQ
// cookbook.
type biquad struct {
	b0, b1, b2, a1, a2 float32
	x1, x2, y1, y2     float32
}

func (f *biquad) process(x float32) float32 {
	y := f.b0*x + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2
	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y
	return y
}

func (f *biquad) reset() {
	f.x1, f.x2, f.y1, f.y2 = 0, 0, 0, 0
}

func newLowShelf(sampleRate int, freq, gainDB, slope float64) *biquad {
	a := math.Pow(10, gainDB/40)
	w0 := 2 * math.Pi * clampCutoff(freq, sampleRate) / float64(sampleRate)
	cosW0, sinW0 := math.Cos(w0), math.Sin(w0)
	alpha := sinW0 / 2 * math.Sqrt((a+1/a)*(1/slope-1)+2)
	beta := 2 * math.Sqrt(a) * alpha

	b0 := a * ((a + 1) - (a-1)*cosW0 + beta)
	b1 := 2 * a * ((a - 1) - (a+1)*cosW0)
	b2 := a * ((a + 1) - (a-1)*cosW0 - beta)
	a0 := (a + 1) + (a-1)*cosW0 + beta
	a1 := -2 * ((a - 1) + (a+1)*cosW0)
	a2 := (a + 1) + (a-1)*cosW0 - beta

	return normalized(b0, b1, b2, a0, a1, a2)
}

func newHighShelf(sampleRate int, freq, gainDB, slope float64) *biquad {
	a := math.Pow(10, gainDB/40)
	w0 := 2 * math.Pi * clampCutoff(freq, sampleRate) / float64(sampleRate)
	cosW0, sinW0 := math.Cos(w0), math.Sin(w0)
	alpha := sinW0 / 2 * math.Sqrt((a+1/a)*(1/slope-1)+2)
	beta := 2 * math.Sqrt(a) * alpha

	b0 := a * ((a + 1) + (a-1)*cosW0 + beta)
	b1 := -2 * a * ((a - 1) + (a+1)*cosW0)
	b2 := a * ((a + 1) + (a-1)*cosW0 - beta)
	a0 := (a + 1) - (a-1)*cosW0 + beta
	a1 := 2 * ((a - 1) - (a+1)*cosW0)
	a2 := (a + 1) - (a-1)*cosW0 - beta

	return normalized(b0, b1, b2, a0, a1, a2)
}

func newPeaking(sampleRate int, freq, gainDB, q float64) *biquad {
	a := math.Pow(10, gainDB/40)
	w0 := 2 * math.Pi * clampCutoff(freq, sampleRate) / float64(sampleRate)
	cosW0, sinW0 := math.Cos(w0), math.Sin(w0)
	alpha := sinW0 / (2 * q)

	b0 := 1 + alpha*a
	b1 := -2 * cosW0
	b2 := 1 - alpha*a
	a0 := 1 + alpha/a
	a1 := -2 * cosW0
	a2 := 1 - alpha/a

	return normalized(b0, b1, b2, a0, a1, a2)
}

func newNotch(sampleRate int, freq, q float64) *biquad {
	w0 := 2 * math.Pi * clampCutoff(freq, sampleRate) / float64(sampleRate)
	cosW0, sinW0 := math.Cos(w0), math.Sin(w0)
	alpha := sinW0 / (2 * q)

	b0 := 1.0
	b1 := -2 * cosW0
	b2 := 1.0
	a0 := 1 + alpha
	a1 := -2 * cosW0
	a2 := 1 - alpha

	return normalized(b0, b1, b2, a0, a1, a2)
}

func newBandPass(sampleRate int, freq, q float64) *biquad {
	w0 := 2 * math.Pi * clampCutoff(freq, sampleRate) / float64(sampleRate)
	cosW0, sinW0 := math.Cos(w0), math.Sin(w0)
	alpha := sinW0 / (2 * q)

	// Constant 0 dB peak gain band-pass.
	b0 := alpha
	b1 := 0.0
	b2 := -alpha
	a0 := 1 + alpha
	a1 := -2 * cosW0
	a2 := 1 - alpha

	return normalized(b0, b1, b2, a0, a1, a2)
}

func normalized(b0, b1, b2, a0, a1, a2 float64) *biquad {
	return &biquad{
		b0: float32(b0 / a0),
		b1: float32(b1 / a0),
		b2: float32(b2 / a0),
		a1: float32(a1 / a0),
		a2: float32(a2 / a0),
	}
}

// runCascade filters every channel of buf through fresh copies of the
// given biquad chain and returns the result as a new buffer.
func runCascade(buf *buffer.Buffer, build func() []*biquad) (*buffer.Buffer, error) {
	out := buf.Clone()
	for ch := range out.ChannelCount() {
		chain := build()
		samples := out.Channel(ch)
		for i, x := range samples {
			y := x
			for _, f := range chain {
				y = f.process(y)
			}
			samples[i] = y
		}
	}
	return out, nil
}

var bassAndTrebleParams = []ParamSpec{
	{Name: "bass", Label: "Bass (dB)", Type: ParamNumber, Min: -30, Max: 30, Default: 0, Step: 0.1},
	{Name: "treble", Label: "Treble (dB)", Type: ParamNumber, Min: -30, Max: 30, Default: 0, Step: 0.1},
}

// BassAndTreble applies a low shelf at 250 Hz and a high shelf at 4 kHz.
func BassAndTreble(buf *buffer.Buffer, bassDB, trebleDB float64) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}
	rate := buf.SampleRate()
	return runCascade(buf, func() []*biquad {
		return []*biquad{
			newLowShelf(rate, 250, bassDB, 1),
			newHighShelf(rate, 4000, trebleDB, 1),
		}
	})
}

// Ten standard octave band centers shared by the graphic and curve EQs.
var octaveBands = [10]float64{31.25, 62.5, 125, 250, 500, 1000, 2000, 4000, 8000, 16000}

var graphicEQParams = buildBandParams("Band")

func buildBandParams(label string) []ParamSpec {
	specs := make([]ParamSpec, len(octaveBands))
	for i, freq := range octaveBands {
		specs[i] = ParamSpec{
			Name:    bandName(i),
			Label:   label + " " + bandLabel(freq),
			Type:    ParamNumber,
			Min:     -24,
			Max:     24,
			Default: 0,
			Step:    0.1,
		}
	}
	return specs
}

func bandName(i int) string {
	return "band" + strconv.Itoa(i)
}

func bandLabel(freq float64) string {
	if freq >= 1000 {
		return strconv.FormatFloat(freq/1000, 'f', -1, 64) + " kHz"
	}
	return strconv.FormatFloat(freq, 'f', -1, 64) + " Hz"
}

// GraphicEQ applies the ten-band octave equalizer as a cascade of peaking
// biquads, one per band, with per-band gains in dB.
func GraphicEQ(buf *buffer.Buffer, gainsDB [10]float64) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}
	rate := buf.SampleRate()
	return runCascade(buf, func() []*biquad {
		chain := make([]*biquad, 0, len(octaveBands))
		for i, freq := range octaveBands {
			chain = append(chain, newPeaking(rate, freq, gainsDB[i], 1.0))
		}
		return chain
	})
}

var notchParams = []ParamSpec{
	{Name: "frequency", Label: "Frequency (Hz)", Type: ParamNumber, Min: 1, Max: 96000, Default: 60, Step: 1},
	{Name: "q", Label: "Q", Type: ParamNumber, Min: 0.1, Max: 30, Default: 1, Step: 0.1},
}

// Notch applies a biquad band-stop filter at the given center frequency.
func Notch(buf *buffer.Buffer, frequency, q float64) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}
	rate := buf.SampleRate()
	return runCascade(buf, func() []*biquad {
		return []*biquad{newNotch(rate, frequency, q)}
	})
}

var filterCurveEQParams = buildBandParams("Gain")

// FilterCurveEQ applies an arbitrary per-band gain curve across the ten
// standard octave bands. Unlike GraphicEQ's cascade of peaking filters,
// the signal is split through a band-pass bank and recombined with each
// band scaled by its curve gain.
func FilterCurveEQ(buf *buffer.Buffer, gainsDB [10]float64) (*buffer.Buffer, error) {
	if err := buffer.Validate(buf); err != nil {
		return nil, err
	}

	rate := buf.SampleRate()
	out := buf.Clone()
	for ch := range out.ChannelCount() {
		bank := make([]*biquad, len(octaveBands))
		gains := make([]float32, len(octaveBands))
		for i, freq := range octaveBands {
			bank[i] = newBandPass(rate, freq, 1.0)
			gains[i] = float32(math.Pow(10, gainsDB[i]/20))
		}

		samples := out.Channel(ch)
		for i, x := range samples {
			var sum float32
			for b := range bank {
				sum += bank[b].process(x) * gains[b]
			}
			samples[i] = sum
		}
	}
	return out, nil
}
