package compare

import (
	"errors"
	"fmt"
	"math"

	"pmsBench/internal/listsched"
	"pmsBench/internal/pms"
)

var (
	ErrEmptyBatch   = errors.New("empty batch: no instances to aggregate")
	ErrNoCandidates = errors.New("no heuristics selected")
)

// Observation — Cmax каждого кандидата на одном экземпляре,
// в порядке списка кандидатов.
type Observation struct {
	Key  pms.Key
	Cmax []int
}

// Skipped — экземпляр, исключённый из агрегатов, с причиной.
type Skipped struct {
	Key    pms.Key
	Index  int
	Reason string
}

func (s Skipped) String() string {
	return fmt.Sprintf("instance #%d (%s): %s", s.Index, s.Key, s.Reason)
}

type Row struct {
	Key  pms.Key
	Cmax []int
	Best int
	// Gaps[i] равен NaN, если Undefined[i].
	Gaps      []float64
	Undefined []bool
	// Winner — индекс первого кандидата с минимальным Cmax.
	Winner int
}

type Summary struct {
	Rank           RankMode
	WinnerIndex    int
	Winner         listsched.Config
	CumulativeCmax int64
	ZeroGap        int

	Instances     int
	Excluded      int
	UndefinedGaps int
}

// IsPercentage сообщает, что победила процентная эвристика (процент в Winner.Percent).
func (s Summary) IsPercentage() bool {
	return s.Winner.Order == listsched.OrderPercentage
}

type Table struct {
	Candidates []listsched.Config
	Rows       []Row
	Totals     []Totals
	Skipped    []Skipped
	Summary    Summary
}

// Build строит строки сравнения, агрегаты и итог пакета.
// Пустой пакет и пустой список кандидатов — фатальные ошибки.
func Build(candidates []listsched.Config, observations []Observation, skipped []Skipped, mode RankMode) (*Table, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	if len(observations) == 0 {
		return nil, ErrEmptyBatch
	}
	if _, err := ParseRankMode(string(mode)); err != nil {
		return nil, err
	}
	if mode == "" {
		mode = RankZeroGap
	}

	t := &Table{
		Candidates: candidates,
		Rows:       make([]Row, 0, len(observations)),
		Totals:     make([]Totals, len(candidates)),
		Skipped:    skipped,
	}

	undefined := 0
	for _, o := range observations {
		if len(o.Cmax) != len(candidates) {
			return nil, fmt.Errorf(
				"instance %s: %d cmax values for %d heuristics",
				o.Key, len(o.Cmax), len(candidates),
			)
		}
		row := newRow(o)
		for i, cmax := range row.Cmax {
			t.Totals[i].CumulativeCmax += int64(cmax)
			if cmax == row.Best {
				t.Totals[i].ZeroGap++
			}
			if row.Undefined[i] {
				undefined++
			}
		}
		t.Rows = append(t.Rows, row)
	}

	all := make([]int, len(candidates))
	for i := range all {
		all[i] = i
	}
	winner := pick(t.Totals, all, mode)

	t.Summary = Summary{
		Rank:           mode,
		WinnerIndex:    winner,
		Winner:         candidates[winner],
		CumulativeCmax: t.Totals[winner].CumulativeCmax,
		ZeroGap:        t.Totals[winner].ZeroGap,
		Instances:      len(t.Rows),
		Excluded:       len(skipped),
		UndefinedGaps:  undefined,
	}
	return t, nil
}

func newRow(o Observation) Row {
	row := Row{
		Key:       o.Key,
		Cmax:      append([]int(nil), o.Cmax...),
		Gaps:      make([]float64, len(o.Cmax)),
		Undefined: make([]bool, len(o.Cmax)),
	}
	for i, cmax := range o.Cmax {
		if i == 0 || cmax < row.Best {
			row.Best = cmax
			row.Winner = i
		}
	}
	for i, cmax := range o.Cmax {
		gap, err := Gap(cmax, row.Best)
		if err != nil {
			row.Gaps[i] = math.NaN()
			row.Undefined[i] = true
			continue
		}
		row.Gaps[i] = gap
	}
	return row
}

// Best выбирает лучшего кандидата среди тех, для которых match возвращает true.
func (t *Table) Best(mode RankMode, match func(listsched.Config) bool) (int, bool) {
	subset := make([]int, 0, len(t.Candidates))
	for i, c := range t.Candidates {
		if match(c) {
			subset = append(subset, i)
		}
	}
	if len(subset) == 0 {
		return -1, false
	}
	return pick(t.Totals, subset, mode), true
}

// BestPercentage — лучший процент среди процентных кандидатов.
func (t *Table) BestPercentage() (int, bool) {
	return t.Best(t.Summary.Rank, func(c listsched.Config) bool {
		return c.Order == listsched.OrderPercentage
	})
}
