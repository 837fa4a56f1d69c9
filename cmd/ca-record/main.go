// Command ca-record runs an automaton headlessly and writes an MJPEG AVI of
// the grid plus a PNG chart of its activity.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"cavis/internal/app"
	"cavis/internal/record"
	"cavis/internal/render"
	"cavis/internal/session"
	"cavis/internal/stats"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	ticks := flag.Int("ticks", 300, "ticks to simulate")
	every := flag.Int("every", 1, "write one frame every N ticks")
	out := flag.String("out", "cavis.avi", "AVI output path, empty to skip the video")
	chartPath := flag.String("chart", "cavis.png", "PNG chart output path, empty to skip the chart")
	fps := flag.Int("fps", 0, "video frame rate (default: -tps)")
	quality := flag.Int("quality", 90, "JPEG quality 1-100")
	flag.Parse()
	overrides, _ := app.ParseArgs(flag.Args())
	cfg.FromMap(overrides)

	s, err := cfg.Resolve()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	sess := session.New(cfg.Setup(s))
	log.Printf("recording %s for %d ticks (settings %s)", sess.Name(), *ticks, s.Encode())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var sink record.FrameSink
	var video *record.Video
	if *out != "" {
		rate := *fps
		if rate <= 0 {
			rate = cfg.TPS
		}
		size := sess.Size()
		video, err = record.NewVideo(*out, size.W*cfg.Scale, size.H*cfg.Scale, rate, *quality)
		if err != nil {
			log.Fatalf("video: %v", err)
		}
		sink = video
	}

	series, err := record.Capture(ctx, sess, sink, record.CaptureOptions{
		Ticks:   *ticks,
		Every:   *every,
		Scale:   cfg.Scale,
		Palette: render.TwoStopGradient(s.ColorA, s.ColorB, sess.States()),
	})
	if video != nil {
		if cerr := video.Close(); cerr != nil {
			log.Printf("video: %v", cerr)
		} else {
			log.Printf("wrote %d frames to %s", video.Frames(), *out)
		}
	}
	if err != nil {
		log.Printf("capture stopped early: %v", err)
	}

	if *chartPath != "" {
		if err := writeChart(*chartPath, sess.Name(), series); err != nil {
			log.Printf("chart: %v", err)
		} else {
			log.Printf("wrote chart to %s", *chartPath)
		}
	}

	sum := stats.Summarize(series)
	fmt.Printf("samples=%d alive=%d mean=%.1f sd=%.1f changed=%.1f period=%d static=%t\n",
		sum.Samples, sum.FinalAlive, sum.MeanAlive, sum.StdAlive, sum.MeanChanged, sum.Period, sum.Static)
}

func writeChart(path, title string, series stats.Series) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := record.WriteChart(f, title, series, 960, 480); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
