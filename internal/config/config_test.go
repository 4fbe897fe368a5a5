package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pmsBench/internal/compare"
	"pmsBench/internal/listsched"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	require.Len(t, cfg.Profiles, 15)
	require.Len(t, cfg.Classes, 5)
	require.Nil(t, cfg.Seed)
	require.Equal(t, compare.RankZeroGap, cfg.RankMode())

	candidates, errCand := cfg.Candidates()
	require.NoError(t, errCand)
	require.Len(t, candidates, 4+19)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
profiles:
  - {jobs: 20, machines: 4}
classes:
  - {min: 10, max: 20}
instances_per_class: 2
seed: 42
heuristics: [LPT, PCT_SPT_LPT]
percent: {from: 10, to: 30, step: 10}
rounding: ceil
rank: cumulative
workers: 3
`)

	cfg, errLoad := Load(path)
	require.NoError(t, errLoad)
	require.NoError(t, cfg.Validate())

	require.Equal(t, []Profile{{Jobs: 20, Machines: 4}}, cfg.Profiles)
	require.Equal(t, int64(42), *cfg.Seed)
	require.Equal(t, 3, cfg.Workers)
	require.Equal(t, "artifacts", cfg.OutDir)
	require.Equal(t, compare.RankCumulative, cfg.RankMode())

	g := cfg.Generator()
	require.Equal(t, 2, g.InstancesPerClass)
	require.Equal(t, 10, g.Classes[0].MinLoad)

	candidates, errCand := cfg.Candidates()
	require.NoError(t, errCand)
	require.Len(t, candidates, 4)
	require.Equal(t, listsched.OrderLPT, candidates[0].Order)
	require.Equal(t, 30, candidates[3].Percent)
	require.Equal(t, listsched.RoundingCeil, candidates[3].Rounding)
}

func TestLoadErrors(t *testing.T) {
	t.Run(
		"1. missing file",
		func(t *testing.T) {
			_, errLoad := Load(filepath.Join(t.TempDir(), "absent.yaml"))
			require.Error(t, errLoad)
		},
	)

	t.Run(
		"2. malformed yaml",
		func(t *testing.T) {
			_, errLoad := Load(writeFile(t, "profiles: [\n"))
			require.Error(t, errLoad)
		},
	)

	t.Run(
		"3. unknown rounding",
		func(t *testing.T) {
			cfg, errLoad := Load(writeFile(t, "rounding: floor\n"))
			require.NoError(t, errLoad)
			require.Error(t, cfg.Validate())
		},
	)

	t.Run(
		"4. unknown rank",
		func(t *testing.T) {
			cfg, errLoad := Load(writeFile(t, "rank: median\n"))
			require.NoError(t, errLoad)
			require.Error(t, cfg.Validate())
		},
	)

	t.Run(
		"5. unknown heuristic",
		func(t *testing.T) {
			cfg, errLoad := Load(writeFile(t, "heuristics: [LPT, EDD]\n"))
			require.NoError(t, errLoad)
			require.Error(t, cfg.Validate())
		},
	)

	t.Run(
		"6. inverted class range",
		func(t *testing.T) {
			cfg, errLoad := Load(writeFile(t, "classes:\n  - {min: 50, max: 10}\n"))
			require.NoError(t, errLoad)
			require.Error(t, cfg.Validate())
		},
	)

	t.Run(
		"7. bad percent sweep",
		func(t *testing.T) {
			cfg, errLoad := Load(writeFile(t, "percent: {from: 10, to: 30, step: 0}\n"))
			require.NoError(t, errLoad)
			require.Error(t, cfg.Validate())
		},
	)

	t.Run(
		"8. negative workers",
		func(t *testing.T) {
			cfg, errLoad := Load(writeFile(t, "workers: -1\n"))
			require.NoError(t, errLoad)
			require.Error(t, cfg.Validate())
		},
	)
}

func TestLoadThenOverride(t *testing.T) {
	cfg, errLoad := Load(writeFile(t, "rounding: floor\nrank: median\nprofiles:\n  - {jobs: 5, machines: 0}\n"))
	require.NoError(t, errLoad)
	require.Error(t, cfg.Validate())

	cfg.Rounding = string(listsched.RoundingCeil)
	cfg.Rank = string(compare.RankCumulative)
	cfg.Profiles = []Profile{{Jobs: 5, Machines: 2}}
	require.NoError(t, cfg.Validate())
	require.Equal(t, compare.RankCumulative, cfg.RankMode())
}
