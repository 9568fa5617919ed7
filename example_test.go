// SPDX-License-Identifier: EPL-2.0

package waveline_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/waveline/waveline"
	"github.com/waveline/waveline/effects"
	"github.com/waveline/waveline/engine"
	"github.com/waveline/waveline/synth"
)

// Generate a tone, shape it, and export it as WAV bytes.
func Example() {
	e := engine.New()

	id, err := e.GenerateTone("lead", synth.Sine, 440, 1, 0.8)
	if err != nil {
		log.Fatal(err)
	}
	if err := e.ApplyEffect(id, "fadeOut", effects.Params{"duration": 0.5}); err != nil {
		log.Fatal(err)
	}

	data, mediaType, err := e.Export(id, "wav")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(mediaType, string(data[:4]))
	// Output: audio/wav RIFF
}

// Round-trip a buffer through the authoritative WAV encoder.
func ExampleSaveWAV() {
	tone, err := synth.Tone(8000, synth.Sine, 440, 0.5, 0.5)
	if err != nil {
		log.Fatal(err)
	}

	var out bytes.Buffer
	if err := waveline.SaveWAV(&out, tone); err != nil {
		log.Fatal(err)
	}

	back, err := waveline.Load("wav", bytes.NewReader(out.Bytes()), 8000, 1)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(back.SampleRate(), back.ChannelCount())
	// Output: 8000 1
}
