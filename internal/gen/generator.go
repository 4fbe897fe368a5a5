package gen

import (
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/zeebo/xxh3"

	"pmsBench/internal/pms"
)

// NewRand возвращает генератор для seed; nil — сид от текущего времени.
func NewRand(seed *int64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(*seed))
}

func Generate(cfg Config) ([]pms.Instance, error) {
	return GenerateWith(cfg, NewRand(cfg.Seed))
}

// GenerateWith генерирует экземпляры из одного потока rng в порядке
// профиль -> класс -> экземпляр. Классы и экземпляры нумеруются с 1.
func GenerateWith(cfg Config, rng *rand.Rand) ([]pms.Instance, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	out := make([]pms.Instance, 0, len(cfg.Profiles)*len(cfg.Classes)*cfg.InstancesPerClass)
	for _, p := range cfg.Profiles {
		for ci, cl := range cfg.Classes {
			for id := 1; id <= cfg.InstancesPerClass; id++ {
				key := pms.Key{Jobs: p.Jobs, Machines: p.Machines, Class: ci + 1, ID: id}
				inst, err := pms.RandomInstance(key, cl.MinLoad, cl.MaxLoad, rng)
				if err != nil {
					return nil, err
				}
				out = append(out, *inst)
			}
		}
	}
	return out, nil
}

// Fingerprint — xxh3 от канонического представления набора экземпляров.
func Fingerprint(instances []pms.Instance) uint64 {
	h := xxh3.New()
	var buf [8]byte
	put := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		_, _ = h.Write(buf[:])
	}

	put(len(instances))
	for i := range instances {
		inst := &instances[i]
		put(inst.Jobs)
		put(inst.Machines)
		put(inst.Class)
		put(inst.ID)
		put(len(inst.Loads))
		for _, v := range inst.Loads {
			put(v)
		}
	}
	return h.Sum64()
}
