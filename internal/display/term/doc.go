// Package term presents the simulation in a terminal using tcell and a
// Braille dot canvas.
package term
