// Package app wires configuration, a display backend and the simulation
// into a single runner.
package app
