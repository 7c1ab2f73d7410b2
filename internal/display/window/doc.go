// Package window presents the simulation in a desktop window using ebiten.
package window
