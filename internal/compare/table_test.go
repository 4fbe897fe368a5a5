package compare

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pmsBench/internal/listsched"
	"pmsBench/internal/pms"
)

var (
	lpt = listsched.Config{Order: listsched.OrderLPT, Rounding: listsched.RoundingRound}
	spt = listsched.Config{Order: listsched.OrderSPT, Rounding: listsched.RoundingRound}
)

func pct(p int) listsched.Config {
	return listsched.Config{Order: listsched.OrderPercentage, Percent: p, Rounding: listsched.RoundingRound}
}

func key(jobs, machines, class, id int) pms.Key {
	return pms.Key{Jobs: jobs, Machines: machines, Class: class, ID: id}
}

func TestBatchSelection(t *testing.T) {
	candidates := []listsched.Config{lpt, spt}

	// LPT выигрывает два экземпляра, SPT — один, но с большим отрывом.
	observations := []Observation{
		{Key: key(5, 2, 1, 1), Cmax: []int{10, 11}},
		{Key: key(5, 2, 1, 2), Cmax: []int{10, 11}},
		{Key: key(5, 2, 1, 3), Cmax: []int{100, 50}},
	}

	t.Run(
		"1. zero-gap count selects LPT",
		func(t *testing.T) {
			table, errBuild := Build(candidates, observations, nil, RankZeroGap)
			require.NoError(t, errBuild)

			require.Equal(t, []Totals{{CumulativeCmax: 120, ZeroGap: 2}, {CumulativeCmax: 72, ZeroGap: 1}}, table.Totals)
			require.Equal(t, 0, table.Summary.WinnerIndex)
			require.Equal(t, lpt, table.Summary.Winner)
			require.Equal(t, int64(120), table.Summary.CumulativeCmax)
			require.Equal(t, 3, table.Summary.Instances)
			require.False(t, table.Summary.IsPercentage())

			require.Equal(t, []int{0, 0, 1}, []int{table.Rows[0].Winner, table.Rows[1].Winner, table.Rows[2].Winner})
			require.InDelta(t, 0.1, table.Rows[0].Gaps[1], 1e-12)
			require.InDelta(t, 1.0, table.Rows[2].Gaps[0], 1e-12)
		},
	)

	t.Run(
		"2. cumulative cmax selects SPT",
		func(t *testing.T) {
			table, errBuild := Build(candidates, observations, nil, RankCumulative)
			require.NoError(t, errBuild)

			require.Equal(t, 1, table.Summary.WinnerIndex)
			require.Equal(t, spt, table.Summary.Winner)
			require.Equal(t, int64(72), table.Summary.CumulativeCmax)
			require.Equal(t, 1, table.Summary.ZeroGap)
		},
	)
}

func TestTieBreaks(t *testing.T) {
	t.Run(
		"1. per-instance ties go to declaration order",
		func(t *testing.T) {
			table, errBuild := Build(
				[]listsched.Config{lpt, spt, pct(10), pct(20)},
				[]Observation{{Key: key(6, 2, 1, 1), Cmax: []int{12, 10, 10, 10}}},
				nil,
				RankZeroGap,
			)
			require.NoError(t, errBuild)
			require.Equal(t, 1, table.Rows[0].Winner)
			require.Equal(t, 10, table.Rows[0].Best)
			require.Equal(t, spt, table.Summary.Winner)
		},
	)

	t.Run(
		"2. zero-gap tie broken by cumulative cmax",
		func(t *testing.T) {
			table, errBuild := Build(
				[]listsched.Config{lpt, spt},
				[]Observation{
					{Key: key(6, 2, 1, 1), Cmax: []int{10, 11}},
					{Key: key(6, 2, 1, 2), Cmax: []int{20, 10}},
				},
				nil,
				RankZeroGap,
			)
			require.NoError(t, errBuild)
			require.Equal(t, 1, table.Summary.WinnerIndex)
		},
	)

	t.Run(
		"3. full tie keeps the lowest percentage",
		func(t *testing.T) {
			table, errBuild := Build(
				[]listsched.Config{lpt, pct(15), pct(25)},
				[]Observation{{Key: key(6, 2, 1, 1), Cmax: []int{20, 10, 10}}},
				nil,
				RankCumulative,
			)
			require.NoError(t, errBuild)
			require.True(t, table.Summary.IsPercentage())
			require.Equal(t, 15, table.Summary.Winner.Percent)

			best, ok := table.BestPercentage()
			require.True(t, ok)
			require.Equal(t, 1, best)
		},
	)
}

func TestUndefinedGap(t *testing.T) {
	table, errBuild := Build(
		[]listsched.Config{lpt, spt},
		[]Observation{
			{Key: key(2, 2, 1, 1), Cmax: []int{0, 3}},
			{Key: key(2, 2, 1, 2), Cmax: []int{0, 0}},
		},
		nil,
		RankZeroGap,
	)
	require.NoError(t, errBuild)

	first := table.Rows[0]
	require.False(t, first.Undefined[0])
	require.Zero(t, first.Gaps[0])
	require.True(t, first.Undefined[1])
	require.True(t, math.IsNaN(first.Gaps[1]))

	second := table.Rows[1]
	require.Equal(t, []bool{false, false}, second.Undefined)

	require.Equal(t, 1, table.Summary.UndefinedGaps)
	require.Equal(t, []Totals{{CumulativeCmax: 0, ZeroGap: 2}, {CumulativeCmax: 3, ZeroGap: 1}}, table.Totals)
}

func TestBuildErrors(t *testing.T) {
	_, errEmpty := Build([]listsched.Config{lpt}, nil, nil, RankZeroGap)
	require.ErrorIs(t, errEmpty, ErrEmptyBatch)

	_, errNoCand := Build(nil, []Observation{{Key: key(1, 1, 1, 1), Cmax: []int{1}}}, nil, RankZeroGap)
	require.ErrorIs(t, errNoCand, ErrNoCandidates)

	_, errShape := Build([]listsched.Config{lpt, spt}, []Observation{{Key: key(1, 1, 1, 1), Cmax: []int{1}}}, nil, RankZeroGap)
	require.Error(t, errShape)

	_, errMode := Build([]listsched.Config{lpt}, []Observation{{Key: key(1, 1, 1, 1), Cmax: []int{1}}}, nil, "median")
	require.Error(t, errMode)
}

func TestExcludedCount(t *testing.T) {
	skipped := []Skipped{
		{Key: key(5, 0, 1, 1), Index: 3, Reason: "machines must be > 0"},
	}
	table, errBuild := Build(
		[]listsched.Config{lpt},
		[]Observation{{Key: key(5, 2, 1, 1), Cmax: []int{7}}},
		skipped,
		RankZeroGap,
	)
	require.NoError(t, errBuild)
	require.Equal(t, 1, table.Summary.Excluded)
	require.Equal(t, "instance #3 (5 0 1 1): machines must be > 0", table.Skipped[0].String())
}

func TestByProfile(t *testing.T) {
	table, errBuild := Build(
		[]listsched.Config{lpt, spt},
		[]Observation{
			{Key: key(5, 2, 1, 1), Cmax: []int{10, 12}},
			{Key: key(10, 3, 1, 1), Cmax: []int{30, 20}},
			{Key: key(5, 2, 1, 2), Cmax: []int{9, 12}},
		},
		[]Skipped{{Key: key(10, 3, 2, 1), Reason: "x"}},
		RankZeroGap,
	)
	require.NoError(t, errBuild)

	profiles, errProfiles := table.ByProfile()
	require.NoError(t, errProfiles)
	require.Len(t, profiles, 2)

	assert.Equal(t, "5x2", profiles[0].Profile)
	assert.Equal(t, lpt, profiles[0].Table.Summary.Winner)
	assert.Equal(t, 2, profiles[0].Table.Summary.Instances)
	assert.Zero(t, profiles[0].Table.Summary.Excluded)

	assert.Equal(t, "10x3", profiles[1].Profile)
	assert.Equal(t, spt, profiles[1].Table.Summary.Winner)
	assert.Equal(t, 1, profiles[1].Table.Summary.Excluded)
	assert.Len(t, profiles[1].Skipped, 1)
}

func TestByProfileAllSkipped(t *testing.T) {
	table, errBuild := Build(
		[]listsched.Config{lpt, spt},
		[]Observation{
			{Key: key(5, 2, 1, 1), Cmax: []int{10, 12}},
		},
		[]Skipped{
			{Key: key(5, 2, 1, 2), Index: 1, Reason: "x"},
			{Key: key(12, 7, 1, 1), Index: 2, Reason: "machines must be > 0"},
			{Key: key(12, 7, 1, 2), Index: 3, Reason: "duplicate of instance #2"},
		},
		RankZeroGap,
	)
	require.NoError(t, errBuild)

	profiles, errProfiles := table.ByProfile()
	require.NoError(t, errProfiles)
	require.Len(t, profiles, 2)

	assert.Equal(t, "5x2", profiles[0].Profile)
	require.NotNil(t, profiles[0].Table)
	assert.Equal(t, 1, profiles[0].Table.Summary.Excluded)

	assert.Equal(t, "12x7", profiles[1].Profile)
	assert.Nil(t, profiles[1].Table)
	require.Len(t, profiles[1].Skipped, 2)
	assert.Equal(t, 3, profiles[1].Skipped[1].Index)
}

func TestParseRankMode(t *testing.T) {
	mode, errMode := ParseRankMode("")
	require.NoError(t, errMode)
	require.Equal(t, RankZeroGap, mode)

	mode, errMode = ParseRankMode("cumulative")
	require.NoError(t, errMode)
	require.Equal(t, RankCumulative, mode)

	_, errMode = ParseRankMode("best")
	require.Error(t, errMode)
}
