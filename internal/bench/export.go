package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"pmsBench/internal/compare"
	"pmsBench/internal/listsched"
)

func writeCSVFile(path string, write func(w *csv.Writer) error) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := write(w); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return f.Close()
}

// WriteResultsCSV — одна строка на пару (экземпляр, эвристика), с назначением
// в исходном порядке работ (машины с 0).
func WriteResultsCSV(path string, batch *Batch) error {
	return writeCSVFile(path, func(w *csv.Writer) error {
		header := []string{
			"algo", "percent",
			"jobs", "machines", "class", "instance",
			"cmax", "cmin", "difference", "time_ms",
			"machine_loads", "assignment",
		}
		if err := w.Write(header); err != nil {
			return err
		}

		for _, r := range batch.Results {
			percent := ""
			if r.Heuristic.Order == listsched.OrderPercentage {
				percent = itoa(r.Heuristic.Percent)
			}
			row := []string{
				string(r.Heuristic.Order),
				percent,

				itoa(r.Key.Jobs),
				itoa(r.Key.Machines),
				itoa(r.Key.Class),
				itoa(r.Key.ID),

				itoa(r.Cmax),
				itoa(r.Cmin),
				itoa(r.Difference),
				ftoa(float64(r.Duration.Nanoseconds())/1e6, 6),

				joinInts(r.MachineLoads),
				joinInts(r.Assignment),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteComparisonCSV — сравнительная таблица: Cmax всех кандидатов, минимум,
// gap каждого кандидата и победитель; последняя строка — число нулевых gap.
func WriteComparisonCSV(path string, table *compare.Table) error {
	return writeCSVFile(path, func(w *csv.Writer) error {
		n := len(table.Candidates)

		header := make([]string, 0, 2*n+4)
		header = append(header, "Instance")
		for _, c := range table.Candidates {
			header = append(header, c.Name())
		}
		header = append(header, "", "Min")
		for _, c := range table.Candidates {
			header = append(header, "Gap "+c.Name())
		}
		header = append(header, "Best Algo")
		if err := w.Write(header); err != nil {
			return err
		}

		for _, r := range table.Rows {
			row := make([]string, 0, len(header))
			row = append(row, r.Key.String())
			for _, v := range r.Cmax {
				row = append(row, itoa(v))
			}
			row = append(row, "", itoa(r.Best))
			for i, g := range r.Gaps {
				if r.Undefined[i] {
					row = append(row, "undefined")
					continue
				}
				row = append(row, ftoa(g, 5))
			}
			row = append(row, table.Candidates[r.Winner].Name())
			if err := w.Write(row); err != nil {
				return err
			}
		}

		footer := make([]string, 0, len(header))
		footer = append(footer, "0 Count")
		for range table.Candidates {
			footer = append(footer, "")
		}
		footer = append(footer, "", "")
		for _, t := range table.Totals {
			footer = append(footer, itoa(t.ZeroGap))
		}
		footer = append(footer, table.Summary.Winner.Name())
		return w.Write(footer)
	})
}

// WriteSummary — текстовый отчёт по пакету.
func WriteSummary(w io.Writer, batch *Batch) error {
	ew := &errWriter{w: w}
	table := batch.Table

	ew.printf("Run: %s\n", batch.RunID)
	if table == nil {
		ew.printf("No instances aggregated.\n")
	} else {
		ew.printf("Cumulative Cmax for each algorithm:\n")
		for i, c := range table.Candidates {
			ew.printf("  %s: %d (zero gap: %d)\n", c.Name(), table.Totals[i].CumulativeCmax, table.Totals[i].ZeroGap)
		}
		if best, ok := table.BestPercentage(); ok {
			c := table.Candidates[best]
			ew.printf("Best percentage SPT-LPT: %d%% (cumulative Cmax: %d)\n", c.Percent, table.Totals[best].CumulativeCmax)
		}

		s := table.Summary
		ew.printf("Best Algorithm (%s): %s\n", s.Rank, s.Winner.Name())
		if s.IsPercentage() {
			ew.printf("Winning percentage: %d\n", s.Winner.Percent)
		}
		ew.printf("Cumulative Cmax: %d\n", s.CumulativeCmax)
		ew.printf("Instances aggregated: %d\n", s.Instances)
		if s.UndefinedGaps > 0 {
			ew.printf("Undefined gaps (zero best Cmax): %d\n", s.UndefinedGaps)
		}
	}

	if batch.Partial {
		ew.printf("Batch was cancelled: aggregates are partial.\n")
	}
	ew.printf("Instances excluded: %d\n", len(batch.Skipped))
	for _, s := range batch.Skipped {
		ew.printf("  %s\n", s)
	}
	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
