// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/waveline/waveline/utils"
)

// ParamType classifies a parameter for form rendering.
type ParamType string

const (
	ParamNumber ParamType = "number"
	ParamEnum   ParamType = "enum"
)

// ParamSpec describes one effect parameter: its identifier, a display
// label, numeric bounds and default. Enum parameters carry the ordered
// choice labels and use the value as a choice index.
type ParamSpec struct {
	Name    string
	Label   string
	Type    ParamType
	Min     float64
	Max     float64
	Default float64
	Step    float64
	Choices []string
}

// Params carries effect parameter values keyed by ParamSpec.Name.
// Missing keys fall back to the parameter's declared default; present
// values are clamped into [Min, Max].
type Params map[string]float64

// pick resolves the named parameter against its spec list: default when
// absent, clamped to the declared range when present. Enum values round
// to the nearest choice index.
func pick(p Params, specs []ParamSpec, name string) float64 {
	for i := range specs {
		spec := &specs[i]
		if spec.Name != name {
			continue
		}
		v, ok := p[name]
		if !ok {
			v = spec.Default
		}
		v = utils.Clamp(v, spec.Min, spec.Max)
		if spec.Type == ParamEnum {
			v = math.Round(v)
		}
		return v
	}
	// A name missing from its own spec list is a programming error in the
	// catalogue; fail loudly in development rather than guessing.
	panic("effects: parameter " + name + " not declared in spec list")
}

// Parameters returns the declarative parameter schema for the named
// effect, in form order. Unknown names yield an empty list.
func Parameters(name string) []ParamSpec {
	e, ok := catalogue[name]
	if !ok {
		return []ParamSpec{}
	}
	out := make([]ParamSpec, len(e.params))
	copy(out, e.params)
	return out
}
