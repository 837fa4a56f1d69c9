package record

import (
	"context"
	"image/color"

	"cavis/internal/render"
	"cavis/internal/session"
	"cavis/internal/stats"
)

// CaptureOptions controls Capture.
type CaptureOptions struct {
	Ticks int
	// Every writes one frame per Every ticks. Values below 1 mean every tick.
	Every   int
	Scale   int
	Palette []color.RGBA
}

// Capture steps s for opts.Ticks ticks, handing frames to sink (which may be
// nil) and observing every tick, including the initial grid. It stops early
// with ctx.Err() when ctx is cancelled.
func Capture(ctx context.Context, s *session.Session, sink FrameSink, opts CaptureOptions) (stats.Series, error) {
	every := max(opts.Every, 1)
	var rec stats.Recorder
	for i := 0; ; i++ {
		rec.Observe(s.Tick(), s.Grid())
		if sink != nil && i%every == 0 {
			img := render.Upscale(render.Frame(s.Cells(), s.Size(), opts.Palette), opts.Scale)
			if err := sink.AddFrame(img); err != nil {
				return rec.Series(), err
			}
		}
		if i == opts.Ticks {
			return rec.Series(), nil
		}
		if err := ctx.Err(); err != nil {
			return rec.Series(), err
		}
		s.Step()
	}
}
