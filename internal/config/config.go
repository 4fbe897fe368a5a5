package config

import (
	"fmt"
	"os"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"pmsBench/internal/compare"
	"pmsBench/internal/gen"
	"pmsBench/internal/listsched"
)

type Profile struct {
	Jobs     int `yaml:"jobs"`
	Machines int `yaml:"machines" valid:"required"`
}

type ClassRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type PercentSweep struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
	Step int `yaml:"step"`
}

// Config — настройки прогона бенчмарка; YAML накладывается поверх Default().
type Config struct {
	Profiles          []Profile    `yaml:"profiles" valid:"required"`
	Classes           []ClassRange `yaml:"classes" valid:"required"`
	InstancesPerClass int          `yaml:"instances_per_class" valid:"required"`
	Seed              *int64       `yaml:"seed"`

	Heuristics []string     `yaml:"heuristics" valid:"required"`
	Percent    PercentSweep `yaml:"percent"`
	Rounding   string       `yaml:"rounding" valid:"in(round|ceil)"`
	Rank       string       `yaml:"rank" valid:"in(zero_gap|cumulative)"`

	Workers int    `yaml:"workers"`
	OutDir  string `yaml:"out_dir" valid:"required"`
}

func Default() Config {
	cfg := Config{
		InstancesPerClass: 10,
		Heuristics:        []string{"LPT", "SPT", "MIXED_LPT_SPT", "MIXED_SPT_LPT", "PCT_SPT_LPT"},
		Percent:           PercentSweep{From: 5, To: 95, Step: 5},
		Rounding:          string(listsched.RoundingRound),
		Rank:              string(compare.RankZeroGap),
		OutDir:            "artifacts",
	}
	for _, p := range gen.DefaultProfiles() {
		cfg.Profiles = append(cfg.Profiles, Profile{Jobs: p.Jobs, Machines: p.Machines})
	}
	for _, c := range gen.DefaultClasses() {
		cfg.Classes = append(cfg.Classes, ClassRange{Min: c.MinLoad, Max: c.MaxLoad})
	}
	return cfg
}

// Load читает YAML-файлы по порядку поверх значений по умолчанию.
// Результат не проверяется: Validate вызывается после наложения флагов CLI.
func Load(paths ...string) (Config, error) {
	cfg := Default()
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "parse %s", path)
		}
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, errValidation := govalidator.ValidateStruct(c); errValidation != nil {
		return goerrors.ErrValidation{
			Caller: "Validate - Config",
			Issue:  errValidation,
		}
	}
	if c.InstancesPerClass < 0 {
		return goerrors.ErrValidation{
			Caller: "Validate - Config",
			Issue:  goerrors.ErrNegativeInput{InputName: "InstancesPerClass"},
		}
	}
	if c.Workers < 0 {
		return goerrors.ErrValidation{
			Caller: "Validate - Config",
			Issue:  goerrors.ErrNegativeInput{InputName: "Workers"},
		}
	}
	if err := c.Generator().Validate(); err != nil {
		return err
	}
	if _, err := c.Candidates(); err != nil {
		return err
	}
	return nil
}

func (c Config) Generator() gen.Config {
	out := gen.Config{
		InstancesPerClass: c.InstancesPerClass,
		Seed:              c.Seed,
	}
	for _, p := range c.Profiles {
		out.Profiles = append(out.Profiles, gen.Profile{Jobs: p.Jobs, Machines: p.Machines})
	}
	for _, cl := range c.Classes {
		out.Classes = append(out.Classes, gen.ClassRange{MinLoad: cl.Min, MaxLoad: cl.Max})
	}
	return out
}

// Candidates раскрывает список эвристик и диапазон процентов.
func (c Config) Candidates() ([]listsched.Config, error) {
	orders := make([]listsched.Order, 0, len(c.Heuristics))
	for _, h := range c.Heuristics {
		o, err := listsched.ParseOrder(h)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	var percents []int
	for _, o := range orders {
		if o != listsched.OrderPercentage {
			continue
		}
		p, err := listsched.PercentSweep(c.Percent.From, c.Percent.To, c.Percent.Step)
		if err != nil {
			return nil, fmt.Errorf("percent: %w", err)
		}
		percents = p
	}
	return listsched.Candidates(orders, percents, listsched.Rounding(c.Rounding))
}

func (c Config) RankMode() compare.RankMode {
	mode, err := compare.ParseRankMode(c.Rank)
	if err != nil {
		return compare.RankZeroGap
	}
	return mode
}
