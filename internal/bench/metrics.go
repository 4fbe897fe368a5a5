package bench

import "github.com/uber-go/tally/v4"

type runnerMetrics struct {
	Batches         tally.Counter
	Instances       tally.Counter
	Skipped         tally.Counter
	Cancelled       tally.Counter
	Scheduled       tally.Counter
	ScheduleLatency tally.Timer
	Workers         tally.Gauge
}

func newRunnerMetrics(scope tally.Scope) runnerMetrics {
	if scope == nil {
		scope = tally.NoopScope
	}
	s := scope.SubScope("runner")

	return runnerMetrics{
		Batches:         s.Counter("batches"),
		Instances:       s.Counter("instances"),
		Skipped:         s.Counter("instances_skipped"),
		Cancelled:       s.Counter("instances_cancelled"),
		Scheduled:       s.Counter("schedules"),
		ScheduleLatency: s.Timer("schedule_latency"),
		Workers:         s.Gauge("workers"),
	}
}
