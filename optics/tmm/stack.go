package tmm

import (
	"strconv"
	"strings"

	"github.com/cwbudde/algo-optics/optics/core"
	"github.com/cwbudde/algo-optics/optics/material"
)

// Layer is one film of a stack. Thickness is in metres and must be 0 for
// the terminal media.
//
// When Model is set it is sampled directly and Material only names the
// layer; otherwise Material is looked up through the solver's resolver.
type Layer struct {
	Material  string
	Thickness float64
	Model     material.Model
}

func (l Layer) name() string {
	if l.Material == "" && l.Model != nil {
		return l.Model.Name()
	}
	return l.Material
}

// Stack is an ordered list of layers from the incident medium to the exit
// medium.
type Stack []Layer

// NewStack pairs materials with thicknesses and validates the result.
func NewStack(materials []string, thicknesses []float64) (Stack, error) {
	if len(materials) != len(thicknesses) {
		return nil, configError("stack", "%d materials but %d thicknesses", len(materials), len(thicknesses))
	}

	s := make(Stack, len(materials))
	for i := range materials {
		s[i] = Layer{Material: materials[i], Thickness: thicknesses[i]}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the structural rules: at least three layers, terminal
// thicknesses exactly 0, finite thicknesses non-negative and finite, and
// every layer named.
func (s Stack) Validate() error {
	if len(s) < 3 {
		return configError("stack", "need at least 3 layers (incident, film, exit), got %d", len(s))
	}

	last := len(s) - 1
	for i, l := range s {
		if strings.TrimSpace(l.name()) == "" {
			return configError("stack", "layer %d has no material", i)
		}

		switch {
		case i == 0 || i == last:
			if l.Thickness != 0 {
				return configError("thickness", "terminal layer %d (%s) must have thickness 0, got %g", i, l.name(), l.Thickness)
			}
		case !(l.Thickness >= 0) || !core.IsFinite(l.Thickness):
			return configError("thickness", "layer %d (%s) has thickness %g", i, l.name(), l.Thickness)
		}
	}

	return nil
}

// Materials returns the layer names in order.
func (s Stack) Materials() []string {
	out := make([]string, len(s))
	for i, l := range s {
		out[i] = l.name()
	}
	return out
}

// Thicknesses returns the layer thicknesses in order.
func (s Stack) Thicknesses() []float64 {
	out := make([]float64, len(s))
	for i, l := range s {
		out[i] = l.Thickness
	}
	return out
}

// String renders the stack in the "air | sio2 200nm | air" form.
func (s Stack) String() string {
	var b strings.Builder
	for i, l := range s {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(l.name())
		if i > 0 && i < len(s)-1 {
			b.WriteString(" ")
			b.WriteString(formatThickness(l.Thickness))
		}
	}
	return b.String()
}

func formatThickness(d float64) string {
	return strconv.FormatFloat(d*1e9, 'g', 6, 64) + "nm"
}
