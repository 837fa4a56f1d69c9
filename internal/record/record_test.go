package record

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"cavis/internal/ca"
	"cavis/internal/core"
	"cavis/internal/render"
	"cavis/internal/session"
	"cavis/internal/stats"

	"github.com/stretchr/testify/require"
)

type memorySink struct{ frames []image.Image }

func (m *memorySink) AddFrame(img image.Image) error {
	m.frames = append(m.frames, img)
	return nil
}

func newSession(t *testing.T) *session.Session {
	t.Helper()
	p, ok := ca.LookupPreset(core.FamilyLifelike, "gameOfLife")
	require.True(t, ok)
	return session.New(session.Setup{
		Size:     core.Size{W: 16, H: 12},
		Rule:     p.Rule,
		Boundary: p.Boundary,
		Fill:     core.FillUniformRandomBinary,
		Seed:     3,
	})
}

func TestCaptureFramesAndSeries(t *testing.T) {
	s := newSession(t)
	sink := &memorySink{}
	palette := render.TwoStopGradient(color.RGBA{A: 255}, color.RGBA{R: 255, A: 255}, 2)
	series, err := Capture(context.Background(), s, sink, CaptureOptions{Ticks: 10, Every: 5, Scale: 2, Palette: palette})
	require.NoError(t, err)
	require.Equal(t, 11, series.Len())
	require.Equal(t, 10, s.Tick())
	require.Len(t, sink.frames, 3)
	require.Equal(t, image.Rect(0, 0, 32, 24), sink.frames[0].Bounds())
}

func TestCaptureStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	series, err := Capture(ctx, newSession(t), nil, CaptureOptions{Ticks: 100})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, series.Len())
}

func TestVideoWritesAVI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.avi")
	v, err := NewVideo(path, 32, 24, 10, 80)
	require.NoError(t, err)

	s := newSession(t)
	_, err = Capture(context.Background(), s, v, CaptureOptions{Ticks: 3, Scale: 2, Palette: render.TwoStopGradient(color.RGBA{A: 255}, color.RGBA{G: 255, A: 255}, 2)})
	require.NoError(t, err)
	require.Equal(t, 4, v.Frames())
	require.Error(t, v.AddFrame(image.NewRGBA(image.Rect(0, 0, 8, 8))))
	require.NoError(t, v.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("RIFF")))
}

func TestWriteChartPNG(t *testing.T) {
	series := stats.Series{
		Ticks:   []float64{0, 1, 2, 3},
		Alive:   []float64{10, 12, 9, 11},
		Changed: []float64{0, 4, 5, 3},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteChart(&buf, "game of life", series, 480, 240))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	require.ErrorIs(t, WriteChart(&buf, "", stats.Series{Ticks: []float64{0}, Alive: []float64{1}, Changed: []float64{0}}, 100, 100), ErrTooFewSamples)
}
