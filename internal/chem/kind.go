package chem

import (
	"fmt"
	"strings"
)

type Kind int

const (
	Water Kind = iota
	StrongAcid
	WeakAcid
	StrongBase
	WeakBase
	numKinds
)

var kindNames = [numKinds]string{
	Water:      "water",
	StrongAcid: "strong_acid",
	WeakAcid:   "weak_acid",
	StrongBase: "strong_base",
	WeakBase:   "weak_base",
}

// Kinds lists every archetype in display order.
func Kinds() []Kind {
	return []Kind{Water, StrongAcid, WeakAcid, StrongBase, WeakBase}
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) Valid() bool {
	return k >= Water && k < numKinds
}

func (k Kind) IsAcid() bool { return k == StrongAcid || k == WeakAcid }
func (k Kind) IsBase() bool { return k == StrongBase || k == WeakBase }
func (k Kind) IsWeak() bool { return k == WeakAcid || k == WeakBase }

// ParseKind accepts the snake_case name, with dashes or spaces tolerated.
func ParseKind(s string) (Kind, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	for k, name := range kindNames {
		if name == norm {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (available: %s)", ErrUnknownKind, s, strings.Join(KindNames(), ", "))
}

// KindNames returns the archetype names in display order.
func KindNames() []string {
	names := make([]string, numKinds)
	copy(names, kindNames[:])
	return names
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
