package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally/v4"
	tallyprom "github.com/uber-go/tally/v4/prometheus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"pmsBench/internal/bench"
	"pmsBench/internal/config"
	"pmsBench/internal/gen"
	"pmsBench/internal/pms"
)

var (
	app = kingpin.New("bench", "Бенчмарк эвристик списочного расписания на идентичных параллельных машинах")

	cfgFiles = app.Flag(
		"config", "YAML-файлы конфигурации (можно указать несколько, накладываются по порядку)").
		Short('c').
		ExistingFiles()

	outDir = app.Flag(
		"out", "каталог для артефактов (out_dir override)").
		Envar("BENCH_OUT").
		String()

	input = app.Flag(
		"input", "читать экземпляры из текстового файла вместо генерации").
		ExistingFile()

	pairs = app.Flag(
		"pairs", "конфигурации: количество работ X количество машин (через запятую), например 20x5,50x10").
		String()

	seed = app.Flag(
		"seed", "сид генератора экземпляров; пусто — невоспроизводимый прогон").
		Envar("BENCH_SEED").
		String()

	perClass = app.Flag(
		"instances-per-class", "количество экземпляров на класс (0 — из конфигурации)").
		Int()

	heuristics = app.Flag(
		"heuristics", "эвристики через запятую: LPT, SPT, MIXED_LPT_SPT, MIXED_SPT_LPT, PCT_SPT_LPT").
		String()

	rounding = app.Flag(
		"rounding", "округление точки разбиения процентной эвристики: round | ceil").
		String()

	rank = app.Flag(
		"rank", "правило выбора лучшей эвристики: zero_gap | cumulative").
		String()

	workers = app.Flag(
		"workers", "количество воркеров (0 — по числу CPU)").
		Default("0").
		Int()

	timeout = app.Flag(
		"timeout", "ограничение времени прогона; 0 — без ограничения").
		Default("0s").
		Duration()

	logLevel = app.Flag(
		"log-level", "уровень логирования").
		Default("info").
		Envar("LOG_LEVEL").
		Enum("debug", "info", "warn", "error")

	logJSON = app.Flag(
		"log-json", "логи в формате JSON").
		Default("false").
		Bool()

	metricsAddr = app.Flag(
		"metrics-addr", "адрес HTTP для /metrics в формате prometheus; пусто — метрики отключены").
		Envar("METRICS_ADDR").
		String()
)

func main() {
	app.HelpFlag.Short('h')
	kingpin.MustParse(app.Parse(os.Args[1:]))

	setupLogging()

	cfg, err := loadConfig()
	if err != nil {
		log.WithError(err).Error("Конфликт в конфигурации")
		os.Exit(2)
	}
	candidates, err := cfg.Candidates()
	if err != nil {
		log.WithError(err).Error("Конфликт в списке эвристик")
		os.Exit(2)
	}

	scope, closer := initMetrics(*metricsAddr)
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	instances, err := loadInstances(cfg)
	if err != nil {
		log.WithError(err).Error("Ошибка при подготовке экземпляров")
		os.Exit(1)
	}
	log.WithFields(log.Fields{
		"instances":   len(instances),
		"fingerprint": fmt.Sprintf("%016x", gen.Fingerprint(instances)),
	}).Info("Экземпляры подготовлены")

	if err := bench.WriteInstancesFile(filepath.Join(cfg.OutDir, "input.txt"), instances); err != nil {
		log.WithError(err).Error("Ошибка при записи экземпляров")
		os.Exit(1)
	}

	runner := bench.Runner{
		Workers: cfg.Workers,
		Rank:    cfg.RankMode(),
		Log:     log.StandardLogger(),
		Scope:   scope,
	}
	batch, runErr := runner.Run(ctx, instances, candidates)
	if batch == nil {
		log.WithError(runErr).Error("Ошибка запуска")
		os.Exit(1)
	}

	if err := export(cfg.OutDir, batch); err != nil {
		log.WithError(err).Error("Ошибка при записи результатов")
		os.Exit(1)
	}
	if err := bench.WriteSummary(os.Stdout, batch); err != nil {
		log.WithError(err).Error("Ошибка при выводе отчёта")
		os.Exit(1)
	}
	printProfiles(batch)

	if runErr != nil {
		log.WithError(runErr).Error("Прогон завершён с ошибкой")
		os.Exit(1)
	}
	fmt.Println("Saved:", cfg.OutDir)
}

func setupLogging() {
	if *logJSON {
		log.SetFormatter(&log.JSONFormatter{})
	}
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

// loadConfig накладывает флаги CLI поверх YAML-конфигурации.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*cfgFiles...)
	if err != nil {
		return config.Config{}, err
	}

	if *outDir != "" {
		cfg.OutDir = *outDir
	}
	if *pairs != "" {
		profiles, err := parsePairs(*pairs)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Profiles = profiles
	}
	if *seed != "" {
		v, err := strconv.ParseInt(*seed, 10, 64)
		if err != nil {
			return config.Config{}, fmt.Errorf("seed %q: %w", *seed, err)
		}
		cfg.Seed = &v
	}
	if *perClass > 0 {
		cfg.InstancesPerClass = *perClass
	}
	if *heuristics != "" {
		cfg.Heuristics = splitCSV(*heuristics)
	}
	if *rounding != "" {
		cfg.Rounding = *rounding
	}
	if *rank != "" {
		cfg.Rank = *rank
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}

	return cfg, cfg.Validate()
}

func loadInstances(cfg config.Config) ([]pms.Instance, error) {
	if *input != "" {
		return bench.ReadInstancesFile(*input)
	}
	if cfg.Seed == nil {
		log.Warn("Сид не задан: набор экземпляров невоспроизводим")
	}
	return gen.Generate(cfg.Generator())
}

func export(dir string, batch *bench.Batch) error {
	if err := bench.WriteResultsCSV(filepath.Join(dir, "results.csv"), batch); err != nil {
		return err
	}
	if batch.Table != nil {
		if err := bench.WriteComparisonCSV(filepath.Join(dir, "algorithm_comparison_results.csv"), batch.Table); err != nil {
			return err
		}
	}

	f, err := os.Create(filepath.Join(dir, "summary.txt"))
	if err != nil {
		return err
	}
	defer f.Close()
	if err := bench.WriteSummary(f, batch); err != nil {
		return err
	}
	return f.Close()
}

func printProfiles(batch *bench.Batch) {
	if batch.Table == nil {
		return
	}
	profiles, err := batch.Table.ByProfile()
	if err != nil {
		log.WithError(err).Warn("Не удалось построить итоги по профилям")
		return
	}
	fmt.Println("Best algorithm per profile:")
	for _, p := range profiles {
		if p.Table == nil {
			fmt.Printf("  %s: no instances aggregated (excluded=%d)\n", p.Profile, len(p.Skipped))
			continue
		}
		s := p.Table.Summary
		fmt.Printf("  %s: %s (cumulative Cmax=%d, zero gap=%d, instances=%d)\n",
			p.Profile, s.Winner.Name(), s.CumulativeCmax, s.ZeroGap, s.Instances)
	}

	for _, s := range batch.CandidateStats() {
		log.WithFields(log.Fields{
			"heuristic": s.Heuristic.Name(),
			"cmax_mean": s.Cmax.Mean,
			"cmax_std":  s.Cmax.Std,
			"gap_mean":  s.Gap.Mean,
			"time_ms":   s.TimeMs.Mean,
		}).Debug("Статистика эвристики")
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// initMetrics поднимает prometheus-репортер tally и HTTP-обработчик /metrics.
func initMetrics(addr string) (tally.Scope, io.Closer) {
	if addr == "" {
		return tally.NoopScope, nopCloser{}
	}

	reporter := tallyprom.NewReporter(tallyprom.Options{})
	scope, closer := tally.NewRootScope(
		tally.ScopeOptions{
			Prefix:         "pms_bench",
			Tags:           map[string]string{},
			CachedReporter: reporter,
			Separator:      tallyprom.DefaultSeparator,
		},
		time.Second,
	)

	mux := http.NewServeMux()
	mux.Handle("/metrics", reporter.HTTPHandler())
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Warn("Сервер метрик остановлен")
		}
	}()
	log.WithField("addr", addr).Info("Метрики доступны по /metrics")
	return scope, closer
}
