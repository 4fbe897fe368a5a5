package pms

import (
	"errors"
	"fmt"
	"math/rand"

	goerrors "github.com/TudorHulban/go-errors"
)

// Key однозначно определяет экземпляр внутри пакета бенчмарка.
type Key struct {
	Jobs     int
	Machines int
	Class    int
	ID       int
}

// String — формат заголовка экземпляра: "n m class id".
func (k Key) String() string {
	return fmt.Sprintf("%d %d %d %d", k.Jobs, k.Machines, k.Class, k.ID)
}

// Profile возвращает пару (работы, машины) для группировки по масштабу.
func (k Key) Profile() string {
	return fmt.Sprintf("%dx%d", k.Jobs, k.Machines)
}

type Instance struct {
	Jobs     int
	Machines int
	Class    int
	ID       int
	// Loads length must be Jobs.
	Loads []int
}

func NewInstance(key Key, loads []int) (*Instance, error) {
	inst := &Instance{
		Jobs:     key.Jobs,
		Machines: key.Machines,
		Class:    key.Class,
		ID:       key.ID,
		Loads:    loads,
	}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

func (inst *Instance) Key() Key {
	return Key{Jobs: inst.Jobs, Machines: inst.Machines, Class: inst.Class, ID: inst.ID}
}

func (inst *Instance) Validate() error {
	if inst == nil {
		return invalid("Validate - Instance", goerrors.ErrNilInput{InputName: "Instance"})
	}
	if inst.Machines <= 0 {
		return fmt.Errorf("machines must be > 0 (got %d): %w",
			inst.Machines,
			invalid("Validate - Instance", goerrors.ErrInvalidInput{InputName: "Machines"}),
		)
	}
	if inst.Jobs < 0 {
		return fmt.Errorf("jobs must be >= 0 (got %d): %w",
			inst.Jobs,
			invalid("Validate - Instance", goerrors.ErrNegativeInput{InputName: "Jobs"}),
		)
	}
	if len(inst.Loads) != inst.Jobs {
		return fmt.Errorf("loads length must be jobs=%d (got %d): %w",
			inst.Jobs, len(inst.Loads),
			invalid("Validate - Instance", goerrors.ErrInvalidInput{InputName: "Loads"}),
		)
	}
	return ValidateLoads(inst.Loads)
}

func ValidateLoads(loads []int) error {
	for i, v := range loads {
		if v < 0 {
			return fmt.Errorf("loads[%d] must be >= 0 (got %d): %w",
				i, v,
				invalid("ValidateLoads", goerrors.ErrNegativeInput{InputName: fmt.Sprintf("Loads[%d]", i)}),
			)
		}
	}
	return nil
}

// RandomInstance — примитив генерации: jobs независимых равномерных
// целых значений из [minLoad, maxLoad].
func RandomInstance(key Key, minLoad, maxLoad int, rng *rand.Rand) (*Instance, error) {
	if rng == nil {
		return nil, errors.New("генератор случайных чисел не инициализирован (nil)")
	}
	if minLoad < 0 || maxLoad < 0 || maxLoad < minLoad {
		return nil, fmt.Errorf("invalid load bounds [%d, %d]: %w",
			minLoad, maxLoad,
			invalid("RandomInstance", goerrors.ErrInvalidInput{InputName: "LoadRange"}),
		)
	}
	if key.Jobs < 0 {
		return nil, fmt.Errorf("jobs must be >= 0 (got %d): %w",
			key.Jobs,
			invalid("RandomInstance", goerrors.ErrNegativeInput{InputName: "Jobs"}),
		)
	}

	loads := make([]int, key.Jobs)
	span := maxLoad - minLoad + 1
	for i := range loads {
		loads[i] = minLoad
		if span > 1 {
			loads[i] += rng.Intn(span)
		}
	}
	return NewInstance(key, loads)
}
