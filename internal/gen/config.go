package gen

import (
	"fmt"
)

// Profile — пара (количество работ, количество машин).
type Profile struct {
	Jobs     int
	Machines int
}

// ClassRange — диапазон нагрузок класса; класс влияет только на генерацию.
type ClassRange struct {
	MinLoad int
	MaxLoad int
}

type Config struct {
	Profiles          []Profile
	Classes           []ClassRange
	InstancesPerClass int
	// Seed == nil — невоспроизводимый источник.
	Seed *int64
}

func (c Config) Validate() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("должен быть задан хотя бы один профиль (работы x машины)")
	}
	for i, p := range c.Profiles {
		if p.Jobs < 0 {
			return fmt.Errorf("профиль %d: количество работ должно быть >= 0 (получено %d)", i, p.Jobs)
		}
		if p.Machines <= 0 {
			return fmt.Errorf("профиль %d: количество машин должно быть > 0 (получено %d)", i, p.Machines)
		}
	}
	if len(c.Classes) == 0 {
		return fmt.Errorf("должен быть задан хотя бы один класс нагрузок")
	}
	for i, cl := range c.Classes {
		if cl.MinLoad < 0 || cl.MaxLoad < cl.MinLoad {
			return fmt.Errorf(
				"класс %d: диапазон нагрузок должен удовлетворять 0 <= min <= max (получено [%d, %d])",
				i+1, cl.MinLoad, cl.MaxLoad,
			)
		}
	}
	if c.InstancesPerClass <= 0 {
		return fmt.Errorf(
			"количество экземпляров на класс должно быть > 0 (получено %d)",
			c.InstancesPerClass,
		)
	}
	return nil
}

// SingleProfile — режим 1: один профиль, прогоняемый по всем классам.
func SingleProfile(jobs, machines int) []Profile {
	return []Profile{{Jobs: jobs, Machines: machines}}
}

// CrossProduct — режим 2: все пары из jobCounts x machineCounts.
func CrossProduct(jobCounts, machineCounts []int) []Profile {
	out := make([]Profile, 0, len(jobCounts)*len(machineCounts))
	for _, n := range jobCounts {
		for _, m := range machineCounts {
			out = append(out, Profile{Jobs: n, Machines: m})
		}
	}
	return out
}

func DefaultProfiles() []Profile {
	return append(
		CrossProduct([]int{5, 6, 7}, []int{2, 3}),
		CrossProduct([]int{10, 12, 15}, []int{3, 5, 7})...,
	)
}

func DefaultClasses() []ClassRange {
	return []ClassRange{
		{MinLoad: 1, MaxLoad: 100},
		{MinLoad: 30, MaxLoad: 100},
		{MinLoad: 50, MaxLoad: 100},
		{MinLoad: 80, MaxLoad: 100},
		{MinLoad: 80, MaxLoad: 300},
	}
}

func DefaultConfig() Config {
	return Config{
		Profiles:          DefaultProfiles(),
		Classes:           DefaultClasses(),
		InstancesPerClass: 10,
	}
}
