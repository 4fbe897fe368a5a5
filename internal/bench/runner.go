package bench

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/pborman/uuid"
	"github.com/pkg/errors"
	"github.com/puzpuzpuz/xsync/v4"
	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally/v4"
	"go.uber.org/atomic"

	"pmsBench/internal/compare"
	"pmsBench/internal/listsched"
	"pmsBench/internal/opt"
	"pmsBench/internal/pms"
)

// Result — результат одной пары (экземпляр, эвристика).
type Result struct {
	Key       pms.Key
	Heuristic listsched.Config
	opt.Result
}

type Batch struct {
	RunID      string
	Candidates []listsched.Config
	// Results упорядочены по экземплярам, затем по кандидатам.
	Results []Result
	Skipped []compare.Skipped
	// Partial — прогон прерван контекстом, агрегаты частичные.
	Partial bool
	Table   *compare.Table
}

type Runner struct {
	Workers int // <= 0: runtime.NumCPU()
	Rank    compare.RankMode
	Log     logrus.FieldLogger
	Scope   tally.Scope
}

type slot struct {
	done    bool
	results []Result
	reason  string
}

// Run прогоняет все эвристики по всем экземплярам: fan-out по экземплярам,
// каждый воркер пишет только в свой слот, слияние после завершения.
// Некорректные экземпляры пропускаются с причиной. При отмене ctx возвращаются
// агрегаты по завершённым экземплярам вместе с ошибкой контекста.
func (r Runner) Run(ctx context.Context, instances []pms.Instance, candidates []listsched.Config) (*Batch, error) {
	if len(candidates) == 0 {
		return nil, compare.ErrNoCandidates
	}
	solvers := make([]opt.Scheduler, len(candidates))
	for i, cfg := range candidates {
		s, err := listsched.New(cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "heuristic %d", i)
		}
		solvers[i] = s
	}

	batch := &Batch{
		RunID:      uuid.New(),
		Candidates: candidates,
	}
	log := r.logger().WithField("run_id", batch.RunID)
	m := newRunnerMetrics(r.Scope)
	m.Batches.Inc(1)

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(instances) && len(instances) > 0 {
		workers = len(instances)
	}
	m.Workers.Update(float64(workers))

	log.WithFields(logrus.Fields{
		"instances":  len(instances),
		"heuristics": len(candidates),
		"workers":    workers,
	}).Info("batch started")

	slots := make([]slot, len(instances))
	// Минимальный индекс экземпляра для каждого ключа.
	owners := xsync.NewMap[pms.Key, *atomic.Int64]()
	finished := atomic.NewInt64(0)

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				slots[idx] = r.scheduleInstance(ctx, &instances[idx], solvers, candidates, m)
				if !slots[idx].done {
					continue
				}
				claim(owners, instances[idx].Key(), idx)
				log.WithFields(logrus.Fields{
					"instance": instances[idx].Key().String(),
					"finished": finished.Inc(),
				}).Debug("instance scheduled")
			}
		}()
	}

feed:
	for i := range instances {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	observations := make([]compare.Observation, 0, len(instances))
	for idx := range slots {
		inst := &instances[idx]
		s := &slots[idx]
		key := inst.Key()

		if s.done {
			if owner, ok := owners.Load(key); ok && int(owner.Load()) != idx {
				s.done = false
				s.reason = fmt.Sprintf("duplicate of instance #%d", owner.Load())
			}
		}
		if !s.done {
			if s.reason == "" {
				s.reason = "not scheduled: " + errorText(ctx.Err())
				batch.Partial = true
				m.Cancelled.Inc(1)
			} else {
				m.Skipped.Inc(1)
			}
			batch.Skipped = append(batch.Skipped, compare.Skipped{Key: key, Index: idx, Reason: s.reason})
			log.WithFields(logrus.Fields{
				"instance": key.String(),
				"reason":   s.reason,
			}).Warn("instance excluded")
			continue
		}

		m.Instances.Inc(1)
		cmax := make([]int, len(s.results))
		for i, res := range s.results {
			cmax[i] = res.Cmax
		}
		observations = append(observations, compare.Observation{Key: key, Cmax: cmax})
		batch.Results = append(batch.Results, s.results...)
	}

	table, errBuild := compare.Build(candidates, observations, batch.Skipped, r.Rank)
	batch.Table = table

	// Отмена после того, как все экземпляры посчитаны, прогон не портит.
	if batch.Partial {
		err := ctx.Err()
		if err == nil {
			err = context.Canceled
		}
		log.WithField("excluded", len(batch.Skipped)).Warn("batch cancelled")
		return batch, errors.Wrap(err, "batch cancelled")
	}
	if errBuild != nil {
		return batch, errBuild
	}

	log.WithFields(logrus.Fields{
		"winner":          table.Summary.Winner.Name(),
		"cumulative_cmax": table.Summary.CumulativeCmax,
		"excluded":        table.Summary.Excluded,
	}).Info("batch finished")
	return batch, nil
}

func (r Runner) scheduleInstance(ctx context.Context, inst *pms.Instance, solvers []opt.Scheduler, candidates []listsched.Config, m runnerMetrics) slot {
	if err := inst.Validate(); err != nil {
		return slot{reason: err.Error()}
	}

	results := make([]Result, 0, len(solvers))
	for i, s := range solvers {
		if ctx.Err() != nil {
			return slot{}
		}
		start := time.Now()
		res, err := s.Schedule(ctx, inst)
		m.ScheduleLatency.Record(time.Since(start))
		if err != nil {
			if ctx.Err() != nil {
				return slot{}
			}
			return slot{reason: fmt.Sprintf("%s: %v", candidates[i].Name(), err)}
		}
		m.Scheduled.Inc(1)
		results = append(results, Result{Key: inst.Key(), Heuristic: candidates[i], Result: res})
	}
	return slot{done: true, results: results}
}

// claim оставляет за ключом минимальный индекс экземпляра.
func claim(owners *xsync.Map[pms.Key, *atomic.Int64], key pms.Key, idx int) {
	owner, _ := owners.LoadOrStore(key, atomic.NewInt64(int64(idx)))
	for {
		cur := owner.Load()
		if cur <= int64(idx) || owner.CompareAndSwap(cur, int64(idx)) {
			return
		}
	}
}

func (r Runner) logger() logrus.FieldLogger {
	if r.Log == nil {
		return logrus.StandardLogger()
	}
	return r.Log
}

func errorText(err error) string {
	if err == nil {
		return "batch stopped"
	}
	return err.Error()
}
