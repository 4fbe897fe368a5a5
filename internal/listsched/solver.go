package listsched

import (
	"context"
	"fmt"
	"time"

	goerrors "github.com/TudorHulban/go-errors"

	"pmsBench/internal/opt"
	"pmsBench/internal/pms"
)

// Run — чистая функция schedule(loads, machineCount, heuristic).
// Пустой список работ даёт нулевой вектор нагрузок длины machines.
func Run(loads []int, machines int, cfg Config) (opt.Result, error) {
	if machines <= 0 {
		return opt.Result{}, fmt.Errorf(
			"machines must be > 0 (got %d): %w",
			machines,
			pms.ErrInvalidArgument,
		)
	}
	if err := pms.ValidateLoads(loads); err != nil {
		return opt.Result{}, err
	}
	if err := cfg.Validate(); err != nil {
		return opt.Result{}, fmt.Errorf("%w: %w",
			pms.ErrInvalidArgument,
			goerrors.ErrValidation{Caller: "Run - listsched", Issue: err},
		)
	}

	start := time.Now()
	seq := sequence(loads, cfg)
	assignment, machineLoads := assign(loads, seq, machines)

	res := opt.NewResult(assignment, machineLoads, time.Since(start), nil)
	if cfg.Order == OrderPercentage {
		res.Meta = map[string]any{
			"percent": cfg.Percent,
			"split":   SplitPoint(len(loads), cfg.Percent, cfg.Rounding),
		}
	}
	return res, nil
}

// Solver — адаптер эвристики к opt.Scheduler.
type Solver struct {
	Cfg Config
}

// New возвращает солвер с проверенной конфигурацией.
func New(cfg Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Solver{Cfg: cfg}, nil
}

func (s *Solver) Name() string { return s.Cfg.Name() }

func (s *Solver) Schedule(ctx context.Context, inst *pms.Instance) (opt.Result, error) {
	if err := ctx.Err(); err != nil {
		return opt.Result{}, err
	}
	if err := inst.Validate(); err != nil {
		return opt.Result{}, err
	}
	return Run(inst.Loads, inst.Machines, s.Cfg)
}
