package analysis

import "math"

// Crossings returns the interpolated times at which series passes upward
// through level.
func Crossings(series []float64, dt, level float64) []float64 {
	times := make([]float64, 0)
	for i := 1; i < len(series); i++ {
		prev, curr := series[i-1], series[i]
		if prev < level && curr >= level {
			frac := (level - prev) / (curr - prev)
			times = append(times, (float64(i-1)+frac)*dt)
		}
	}
	return times
}

// CrossingPeriod is the mean spacing of upward crossings of level. It needs
// at least two crossings.
func CrossingPeriod(series []float64, dt, level float64) (float64, error) {
	times := Crossings(series, dt, level)
	if len(times) < 2 {
		return 0, ErrTooShort
	}
	return (times[len(times)-1] - times[0]) / float64(len(times)-1), nil
}

// RestLevel returns the hanging angle -pi/2 + 2*pi*k closest to the mean of
// series. Theta is never wrapped, so a pendulum started above the pivot
// swings about 3*pi/2 rather than -pi/2.
func RestLevel(series []float64) float64 {
	if len(series) == 0 {
		return -math.Pi / 2
	}
	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(len(series))
	return -math.Pi/2 + 2*math.Pi*math.Round((mean+math.Pi/2)/(2*math.Pi))
}
