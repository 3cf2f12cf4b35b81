// Package viz provides terminal views of an acid/base solution.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [App]: solution selection, concentration and strength sliders
//   - [Lens]: braille particle viewport, a particles.Surface
//   - [Canvas]: colored braille pixel grid
//   - Theme selection with 3 built-in color schemes
//
// # Key Bindings
//
//	1-5   - Select solution
//	←/→   - Concentration
//	↑/↓   - Strength (weak solutions)
//	P     - Toggle particle view
//	B     - Toggle bar chart
//	T     - Cycle color themes
//	R     - Restore defaults
//	?     - Show help overlay
package viz
