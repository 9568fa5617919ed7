// SPDX-License-Identifier: EPL-2.0

package effects_test

import (
	"fmt"
	"log"

	"github.com/waveline/waveline/effects"
	"github.com/waveline/waveline/synth"
)

func ExampleApply() {
	tone, err := synth.Tone(44100, synth.Sine, 440, 1, 0.5)
	if err != nil {
		log.Fatal(err)
	}

	out, err := effects.Apply("echo", tone, effects.Params{
		"delay":  0.25,
		"decay":  0.5,
		"repeat": 2,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(out.FrameCount() - tone.FrameCount())
	// Output: 22050
}

func ExampleParameters() {
	for _, spec := range effects.Parameters("amplify") {
		fmt.Printf("%s default=%v range=[%v, %v]\n", spec.Name, spec.Default, spec.Min, spec.Max)
	}
	// Output: gain default=1 range=[0, 10]
}
