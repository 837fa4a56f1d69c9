package sweep

import (
	"context"
	"testing"

	"cavis/internal/ca"
	"cavis/internal/core"

	"github.com/stretchr/testify/require"
)

func TestJobsCoverPresetsAndSeeds(t *testing.T) {
	jobs := Jobs([]core.Family{core.FamilyCyclic, core.FamilyLifelike}, []int64{1, 2})
	want := 2 * (len(ca.Presets(core.FamilyCyclic)) + len(ca.Presets(core.FamilyLifelike)))
	require.Len(t, jobs, want)
	require.Equal(t, int64(1), jobs[0].Seed)
	require.Equal(t, int64(2), jobs[1].Seed)
}

func TestRunIsDeterministicAcrossWorkerCounts(t *testing.T) {
	jobs := Jobs([]core.Family{core.FamilyLifelike}, []int64{5, 6})
	opts := Options{Size: core.Size{W: 24, H: 24}, Ticks: 12, Workers: 1}
	serial, err := Run(context.Background(), jobs, opts)
	require.NoError(t, err)

	opts.Workers = 4
	parallel, err := Run(context.Background(), jobs, opts)
	require.NoError(t, err)
	require.Equal(t, serial, parallel)

	for i, r := range serial {
		require.Equal(t, jobs[i], r.Job)
		require.Equal(t, 13, r.Summary.Samples)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	jobs := Jobs([]core.Family{core.FamilyGeneration}, []int64{1})
	_, err := Run(ctx, jobs, Options{Size: core.Size{W: 8, H: 8}, Ticks: 50, Workers: 2})
	require.ErrorIs(t, err, context.Canceled)
}

func TestByActivity(t *testing.T) {
	rs := []Result{{}, {}, {}}
	rs[0].Summary.MeanChanged = 1
	rs[1].Summary.MeanChanged = 9
	rs[2].Summary.MeanChanged = 4
	ByActivity(rs)
	require.Equal(t, []float64{9, 4, 1}, []float64{rs[0].Summary.MeanChanged, rs[1].Summary.MeanChanged, rs[2].Summary.MeanChanged})
}
