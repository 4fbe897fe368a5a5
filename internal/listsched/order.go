package listsched

import (
	"sort"
)

// SplitPoint — индекс разбиения исходного списка из n работ для доли p%.
// Считается в целых числах: round — округление половины вверх.
func SplitPoint(n, percent int, rounding Rounding) int {
	var k int
	switch rounding {
	case RoundingCeil:
		k = (percent*n + 99) / 100
	default:
		k = (percent*n + 50) / 100
	}
	if k < 0 {
		return 0
	}
	if k > n {
		return n
	}
	return k
}

// sequence возвращает индексы работ (в исходной нумерации) в порядке обработки.
func sequence(loads []int, cfg Config) []int {
	n := len(loads)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	switch cfg.Order {
	case OrderLPT:
		sortDesc(idx, loads)
	case OrderSPT:
		sortAsc(idx, loads)
	case OrderMixedLPTSPT:
		mid := n / 2
		sortDesc(idx[:mid], loads)
		sortAsc(idx[mid:], loads)
	case OrderMixedSPTLPT:
		mid := n / 2
		sortAsc(idx[:mid], loads)
		sortDesc(idx[mid:], loads)
	case OrderPercentage:
		k := SplitPoint(n, cfg.Percent, cfg.Rounding)
		sortAsc(idx[:k], loads)
		sortDesc(idx[k:], loads)
	}
	return idx
}

// Сортировки стабильны: равные нагрузки сохраняют исходный порядок.

func sortAsc(idx, loads []int) {
	sort.SliceStable(idx, func(a, b int) bool {
		return loads[idx[a]] < loads[idx[b]]
	})
}

func sortDesc(idx, loads []int) {
	sort.SliceStable(idx, func(a, b int) bool {
		return loads[idx[a]] > loads[idx[b]]
	})
}
