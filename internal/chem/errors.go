package chem

import "errors"

// Domain errors for solution parameters. The formulas themselves never fail;
// these are reported at the configuration and CLI boundary.
var (
	// ErrUnknownKind indicates a solution name that is not one of the archetypes.
	ErrUnknownKind = errors.New("chem: unknown solution kind")

	// ErrConcentrationRange indicates a concentration outside [MinConcentration, MaxConcentration].
	ErrConcentrationRange = errors.New("chem: concentration out of range")

	// ErrStrengthRange indicates a weak strength outside [MinWeakStrength, MaxWeakStrength].
	ErrStrengthRange = errors.New("chem: strength out of range")

	// ErrFixedStrength indicates an attempt to change the strength of water or a strong solution.
	ErrFixedStrength = errors.New("chem: strength is fixed for this solution")
)
