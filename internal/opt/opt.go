package opt

import (
	"context"
	"time"

	"pmsBench/internal/pms"
)

// Scheduler назначает работы экземпляра на машины.
type Scheduler interface {
	Schedule(ctx context.Context, inst *pms.Instance) (Result, error)
}

type Result struct {
	// Assignment[j] — индекс машины (с 0) для j-й работы в исходном порядке.
	Assignment   []int
	MachineLoads []int
	Cmax         int
	Cmin         int
	Difference   int
	Duration     time.Duration
	Meta         map[string]any
}

// NewResult копирует назначение и нагрузки и пересчитывает метрики.
func NewResult(assignment, machineLoads []int, dur time.Duration, meta map[string]any) Result {
	stats := pms.Measure(machineLoads)
	return Result{
		Assignment:   cloneInts(assignment),
		MachineLoads: cloneInts(machineLoads),
		Cmax:         stats.Cmax,
		Cmin:         stats.Cmin,
		Difference:   stats.Difference,
		Duration:     dur,
		Meta:         meta,
	}
}

func cloneInts(v []int) []int {
	out := make([]int, len(v))
	copy(out, v)
	return out
}
