// Package viz is a live terminal dashboard built on Bubble Tea.
//
// [Backend] draws the pendulum on a Braille canvas and shows a side panel
// with the current angle, angular velocity, energies and an energy chart.
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
package viz
