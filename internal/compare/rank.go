package compare

import "fmt"

// RankMode — правило выбора лучшей эвристики по пакету.
type RankMode string

const (
	// RankZeroGap: больше экземпляров с нулевым gap, затем меньший суммарный Cmax.
	RankZeroGap RankMode = "zero_gap"
	// RankCumulative: меньший суммарный Cmax, затем больше нулевых gap.
	RankCumulative RankMode = "cumulative"
)

func ParseRankMode(s string) (RankMode, error) {
	switch RankMode(s) {
	case RankZeroGap, RankCumulative:
		return RankMode(s), nil
	case "":
		return RankZeroGap, nil
	}
	return "", fmt.Errorf("неизвестный режим ранжирования %q (zero_gap | cumulative)", s)
}

// Totals — агрегаты одного кандидата по пакету.
type Totals struct {
	CumulativeCmax int64
	ZeroGap        int
}

func (a Totals) better(b Totals, mode RankMode) bool {
	switch mode {
	case RankCumulative:
		if a.CumulativeCmax != b.CumulativeCmax {
			return a.CumulativeCmax < b.CumulativeCmax
		}
		return a.ZeroGap > b.ZeroGap
	default:
		if a.ZeroGap != b.ZeroGap {
			return a.ZeroGap > b.ZeroGap
		}
		return a.CumulativeCmax < b.CumulativeCmax
	}
}

// pick выбирает лучший индекс из subset; при полном равенстве — первый
// в порядке объявления кандидатов.
func pick(totals []Totals, subset []int, mode RankMode) int {
	best := -1
	for _, i := range subset {
		if best < 0 || totals[i].better(totals[best], mode) {
			best = i
		}
	}
	return best
}
