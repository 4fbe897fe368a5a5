package bench

import (
	"math"

	"pmsBench/internal/listsched"
)

// Stats — лучшее значение, среднее и выборочное стандартное отклонение.
type Stats struct {
	N    int
	Best float64
	Mean float64
	Std  float64
}

func CalcStats(values []float64) Stats {
	s := Stats{N: len(values)}
	if s.N == 0 {
		return s
	}

	best := values[0]
	sum := 0.0
	for _, v := range values {
		if v < best {
			best = v
		}
		sum += v
	}
	mean := sum / float64(s.N)

	variance := 0.0
	if s.N >= 2 {
		for _, v := range values {
			d := v - mean
			variance += d * d
		}
		variance /= float64(s.N - 1)
	}

	s.Best = best
	s.Mean = mean
	s.Std = math.Sqrt(variance)
	return s
}

// CandidateStats — распределение Cmax, gap и времени одной эвристики по пакету.
type CandidateStats struct {
	Heuristic listsched.Config
	Cmax      Stats
	Gap       Stats
	TimeMs    Stats
}

// CandidateStats считает статистику по экземплярам, вошедшим в таблицу.
// Неопределённые gap в статистику gap не входят.
func (b *Batch) CandidateStats() []CandidateStats {
	if b.Table == nil {
		return nil
	}
	n := len(b.Candidates)
	cmax := make([][]float64, n)
	gaps := make([][]float64, n)
	times := make([][]float64, n)

	for _, row := range b.Table.Rows {
		for i, v := range row.Cmax {
			cmax[i] = append(cmax[i], float64(v))
			if !row.Undefined[i] {
				gaps[i] = append(gaps[i], row.Gaps[i])
			}
		}
	}
	for i, res := range b.Results {
		c := i % n
		times[c] = append(times[c], float64(res.Duration.Microseconds())/1000.0)
	}

	out := make([]CandidateStats, n)
	for i := range out {
		out[i] = CandidateStats{
			Heuristic: b.Candidates[i],
			Cmax:      CalcStats(cmax[i]),
			Gap:       CalcStats(gaps[i]),
			TimeMs:    CalcStats(times[i]),
		}
	}
	return out
}
