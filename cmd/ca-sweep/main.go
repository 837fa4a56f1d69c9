// Command ca-sweep runs every preset across several seeds and ranks them by
// how much of the grid keeps changing.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"cavis/internal/core"
	"cavis/internal/sweep"
)

func main() {
	steps := flag.Int("steps", 240, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of scenarios run at once")
	seeds := flag.Int("seeds", 4, "seeds per preset, counting up from -seed")
	seed := flag.Int64("seed", 1, "first seed")
	w := flag.Int("w", 160, "grid width")
	h := flag.Int("h", 120, "grid height")
	families := flag.String("families", "Cyclic,Generation,Lifelike", "comma separated families to sweep")
	top := flag.Int("top", 10, "results to print")
	flag.Parse()

	var fams []core.Family
	for _, name := range strings.Split(*families, ",") {
		f, err := core.ParseFamily(name)
		if err != nil {
			log.Fatalf("families: %v", err)
		}
		fams = append(fams, f)
	}
	seedList := make([]int64, max(*seeds, 1))
	for i := range seedList {
		seedList[i] = *seed + int64(i)
	}

	jobs := sweep.Jobs(fams, seedList)
	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps, %dx%d)\n", len(jobs), *workers, *steps, *w, *h)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := sweep.Run(ctx, jobs, sweep.Options{
		Size:    core.Size{W: *w, H: *h},
		Ticks:   *steps,
		Workers: *workers,
	})
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}
	sweep.ByActivity(results)
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(results)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		r := results[i]
		s := r.Summary
		fmt.Printf("%2d) %-12s %-18s seed=%-3d changed=%7.1f alive=%7.1f±%.1f final=%d period=%d static=%t\n",
			i+1, r.Job.Preset.Name, r.Job.Preset.Rule.Rulestring(), r.Job.Seed,
			s.MeanChanged, s.MeanAlive, s.StdAlive, s.FinalAlive, s.Period, s.Static)
	}

	var dead []string
	for _, r := range results {
		if r.Summary.FinalAlive == 0 {
			dead = append(dead, r.Job.String())
		}
	}
	if len(dead) > 0 {
		fmt.Printf("\nDied out (%d):\n  %s\n", len(dead), strings.Join(dead, "\n  "))
	}
}
