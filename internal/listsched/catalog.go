package listsched

import (
	"fmt"
	"sort"
)

// PercentSweep возвращает значения from, from+step, ..., <= to.
func PercentSweep(from, to, step int) ([]int, error) {
	if step <= 0 {
		return nil, fmt.Errorf("шаг процентов должен быть > 0 (получено %d)", step)
	}
	if from < 0 || to > 100 || from > to {
		return nil, fmt.Errorf("диапазон процентов должен лежать в [0,100] и from <= to (получено [%d, %d])", from, to)
	}
	out := make([]int, 0, (to-from)/step+1)
	for p := from; p <= to; p += step {
		out = append(out, p)
	}
	return out, nil
}

// DefaultPercents — 5, 10, ..., 95.
func DefaultPercents() []int {
	out, _ := PercentSweep(5, 95, 5)
	return out
}

// Candidates раскрывает выбранные эвристики в конфигурации в порядке приоритета:
// LPT, SPT, смешанные, затем процентная по возрастанию процента.
func Candidates(orders []Order, percents []int, rounding Rounding) ([]Config, error) {
	selected := make(map[Order]bool, len(orders))
	for _, o := range orders {
		if err := (Config{Order: o, Rounding: rounding}).Validate(); err != nil {
			return nil, err
		}
		selected[o] = true
	}

	sorted := append([]int(nil), percents...)
	sort.Ints(sorted)

	var out []Config
	for _, o := range Orders {
		if !selected[o] {
			continue
		}
		if o != OrderPercentage {
			out = append(out, Config{Order: o, Rounding: rounding})
			continue
		}
		for i, p := range sorted {
			if i > 0 && sorted[i-1] == p {
				continue
			}
			out = append(out, Config{Order: o, Percent: p, Rounding: rounding})
		}
	}

	for _, cfg := range out {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("не выбрано ни одной эвристики")
	}
	return out, nil
}
