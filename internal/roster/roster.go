// Package roster holds the fixed list of participants and which of them
// are currently eligible for the wheel.
package roster

import (
	"errors"
	"fmt"
	"image/color"

	"go-spin-wheel/internal/defs"
	"go-spin-wheel/pkg/render/paint"
)

// ErrUnknownParticipant is returned for an index outside the roster.
var ErrUnknownParticipant = errors.New("unknown participant")

// Participant is one named, coloured entry. Identity is its index in the
// registry; participants never change after startup.
type Participant struct {
	Name  string
	Hex   string
	Color color.RGBA
}

// Registry is the full roster plus one inclusion flag per entry.
type Registry struct {
	all      []Participant
	included []bool
}

// NewRegistry builds a registry from definitions with everyone included.
func NewRegistry(members []defs.MemberDefinition) (*Registry, error) {
	r := &Registry{
		all:      make([]Participant, 0, len(members)),
		included: make([]bool, len(members)),
	}
	for i, m := range members {
		c, err := paint.ParseHexColor(m.Color)
		if err != nil {
			return nil, fmt.Errorf("member %d (%s): %w", i, m.Name, err)
		}
		r.all = append(r.all, Participant{Name: m.Name, Hex: m.Color, Color: c})
		r.included[i] = true
	}
	return r, nil
}

// Len returns the size of the full roster.
func (r *Registry) Len() int {
	return len(r.all)
}

// All returns a copy of the full roster.
func (r *Registry) All() []Participant {
	out := make([]Participant, len(r.all))
	copy(out, r.all)
	return out
}

// Included reports whether entry index is eligible. Unknown indexes are not.
func (r *Registry) Included(index int) bool {
	if index < 0 || index >= len(r.included) {
		return false
	}
	return r.included[index]
}

// Set changes the inclusion flag of entry index and reports whether the
// active subset changed.
func (r *Registry) Set(index int, included bool) (bool, error) {
	if index < 0 || index >= len(r.all) {
		return false, fmt.Errorf("%w: index %d of %d", ErrUnknownParticipant, index, len(r.all))
	}
	if r.included[index] == included {
		return false, nil
	}
	r.included[index] = included
	return true, nil
}

// Active returns the eligible participants in roster order. The result
// may be empty.
func (r *Registry) Active() []Participant {
	out := make([]Participant, 0, len(r.all))
	for i, p := range r.all {
		if r.included[i] {
			out = append(out, p)
		}
	}
	return out
}
