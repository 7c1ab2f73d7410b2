// Package analysis extracts oscillation properties from a recorded
// trajectory.
//
//   - [DominantPeriod]: period of the strongest spectral component (go-dsp FFT)
//   - [CrossingPeriod]: mean period between upward level crossings
//   - [PhasePortraitToASCII]: theta against omega as text
//
// The rest angle of the pendulum is -pi/2, so crossings of theta are
// usually taken at that level:
//
//	period, err := analysis.CrossingPeriod(thetas, dt, -math.Pi/2)
package analysis
