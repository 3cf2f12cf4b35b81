// Package chem provides the equilibrium model for aqueous acid/base solutions.
//
// A solution is one of five archetypes, each described by a total solute
// concentration C and a strength K:
//
//   - [Water]: pure water, no solute
//   - [StrongAcid]: complete dissociation, HA -> H3O+ + A-
//   - [WeakAcid]: partial dissociation governed by Ka
//   - [StrongBase]: complete dissociation, MOH -> M+ + OH-
//   - [WeakBase]: partial protonation governed by Kb
//
// Every archetype computes the same five concentrations (solute, product,
// hydronium, hydroxide, water) through a lookup table of closed-form
// formulas:
//
//	sol := chem.NewSolution(chem.WeakAcid)
//	sol.Concentration = 0.1
//	sol.Strength = 1.8e-5
//	c := sol.Concentrations()
//	ph := sol.PH()
//
// # Applicability
//
// Not every species exists in every archetype. [Solution.SpeciesConcentration]
// reports a species that is absent with ok == false, which is different from
// a species that is present at zero concentration (the undissociated solute
// of a strong acid, for example).
package chem
