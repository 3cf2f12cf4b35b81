package chem

import "fmt"

// Set holds one solution per archetype, exactly one of which is selected.
// Solutions are never removed; only their parameters change.
type Set struct {
	solutions [numKinds]Solution
	selected  Kind
}

func NewSet() *Set {
	s := &Set{selected: WeakAcid}
	for _, k := range Kinds() {
		s.solutions[k] = NewSolution(k)
	}
	return s
}

func (s *Set) Select(kind Kind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	s.selected = kind
	return nil
}

func (s *Set) SelectedKind() Kind { return s.selected }
func (s *Set) Selected() Solution { return s.solutions[s.selected] }

func (s *Set) Get(kind Kind) Solution {
	if !kind.Valid() {
		panic("chem: get " + kind.String())
	}
	return s.solutions[kind]
}

func (s *Set) SetConcentration(kind Kind, c float64) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	if kind == Water {
		return nil
	}
	next := s.solutions[kind]
	next.Concentration = c
	if err := next.Validate(); err != nil {
		return err
	}
	s.solutions[kind] = next
	return nil
}

func (s *Set) SetStrength(kind Kind, k float64) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	if !kind.IsWeak() {
		return fmt.Errorf("%w: %s", ErrFixedStrength, kind)
	}
	next := s.solutions[kind]
	next.Strength = k
	if err := next.Validate(); err != nil {
		return err
	}
	s.solutions[kind] = next
	return nil
}
