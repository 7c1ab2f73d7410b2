// Package display defines the drawing surface and backend contract used by
// the simulation, plus the shared palette and frame pacing.
//
// Backends live in subpackages:
//
//   - raster: headless RGBA image, GIF recording
//   - braille: Braille sub-pixel canvas for terminal backends
//   - window: desktop window (ebiten)
//   - term: raw terminal screen (tcell)
//
// The interactive terminal dashboard lives in package viz.
package display
