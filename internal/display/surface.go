package display

import (
	"context"
	"image/color"
)

// Surface is a fixed-size drawable target in pixel coordinates with y
// pointing down.
type Surface interface {
	Size() (width, height int)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
}

// FrameFunc advances and draws one frame.
type FrameFunc func() error

// Backend owns a surface and the loop that drives it. Run calls frame once
// per tick, presents the result and paces to fps until the display is closed,
// ctx is done or frame fails.
type Backend interface {
	Surface() Surface
	Run(ctx context.Context, fps int, frame FrameFunc) error
}

// Telemetry is the read-only view of a running simulation that backends may
// show next to the drawing.
type Telemetry interface {
	Time() float64
	Theta() float64
	ThetaDot() float64
	PotentialEnergy() float64
	KineticEnergy() float64
}

// TelemetrySink is implemented by backends that display live readouts.
type TelemetrySink interface {
	AttachTelemetry(t Telemetry)
}
