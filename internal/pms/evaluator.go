package pms

// LoadStats — производные метрики вектора нагрузок машин.
type LoadStats struct {
	Cmax       int
	Cmin       int
	Difference int
}

// Measure считает Cmax, Cmin и их разность. Для пустого вектора все значения равны 0.
func Measure(machineLoads []int) LoadStats {
	if len(machineLoads) == 0 {
		return LoadStats{}
	}
	cmax, cmin := machineLoads[0], machineLoads[0]
	for _, v := range machineLoads[1:] {
		if v > cmax {
			cmax = v
		}
		if v < cmin {
			cmin = v
		}
	}
	return LoadStats{Cmax: cmax, Cmin: cmin, Difference: cmax - cmin}
}

func Sum(loads []int) int {
	total := 0
	for _, v := range loads {
		total += v
	}
	return total
}

// LowerBound — нижняя оценка makespan: max(ceil(sum/m), максимальная работа).
func LowerBound(loads []int, machines int) int {
	if machines <= 0 {
		return 0
	}
	total := Sum(loads)
	bound := (total + machines - 1) / machines
	for _, v := range loads {
		if v > bound {
			bound = v
		}
	}
	return bound
}
