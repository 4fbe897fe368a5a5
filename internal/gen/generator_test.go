package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pmsBench/internal/pms"
)

func seeded(seed int64) *int64 { return &seed }

func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = seeded(777)

	first, errFirst := Generate(cfg)
	require.NoError(t, errFirst)
	second, errSecond := Generate(cfg)
	require.NoError(t, errSecond)

	require.Equal(t, first, second)
	require.Equal(t, Fingerprint(first), Fingerprint(second))

	cfg.Seed = seeded(778)
	other, errOther := Generate(cfg)
	require.NoError(t, errOther)
	require.NotEqual(t, Fingerprint(first), Fingerprint(other))
}

func TestGenerateLayout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = seeded(1)

	instances, errGen := Generate(cfg)
	require.NoError(t, errGen)
	require.Len(t, instances, (6+9)*5*10)

	first := instances[0]
	require.Equal(t, pms.Key{Jobs: 5, Machines: 2, Class: 1, ID: 1}, first.Key())

	last := instances[len(instances)-1]
	require.Equal(t, pms.Key{Jobs: 15, Machines: 7, Class: 5, ID: 10}, last.Key())

	for _, inst := range instances {
		require.NoError(t, inst.Validate())

		cl := cfg.Classes[inst.Class-1]
		for _, v := range inst.Loads {
			require.GreaterOrEqual(t, v, cl.MinLoad)
			require.LessOrEqual(t, v, cl.MaxLoad)
		}
	}
}

func TestGenerateSingleProfile(t *testing.T) {
	instances, errGen := Generate(
		Config{
			Profiles:          SingleProfile(20, 4),
			Classes:           DefaultClasses(),
			InstancesPerClass: 3,
			Seed:              seeded(5),
		},
	)
	require.NoError(t, errGen)
	require.Len(t, instances, 15)

	for i, inst := range instances {
		require.Equal(t, 20, inst.Jobs)
		require.Equal(t, 4, inst.Machines)
		require.Equal(t, i/3+1, inst.Class)
		require.Equal(t, i%3+1, inst.ID)
	}
}

func TestGenerateInvalidConfig(t *testing.T) {
	t.Run(
		"1. no profiles",
		func(t *testing.T) {
			_, errGen := Generate(Config{Classes: DefaultClasses(), InstancesPerClass: 1})
			require.Error(t, errGen)
		},
	)

	t.Run(
		"2. zero machines",
		func(t *testing.T) {
			_, errGen := Generate(
				Config{
					Profiles:          SingleProfile(5, 0),
					Classes:           DefaultClasses(),
					InstancesPerClass: 1,
				},
			)
			require.Error(t, errGen)
		},
	)

	t.Run(
		"3. inverted class range",
		func(t *testing.T) {
			_, errGen := Generate(
				Config{
					Profiles:          SingleProfile(5, 2),
					Classes:           []ClassRange{{MinLoad: 10, MaxLoad: 1}},
					InstancesPerClass: 1,
				},
			)
			require.Error(t, errGen)
		},
	)

	t.Run(
		"4. zero instances per class",
		func(t *testing.T) {
			_, errGen := Generate(
				Config{
					Profiles: SingleProfile(5, 2),
					Classes:  DefaultClasses(),
				},
			)
			require.Error(t, errGen)
		},
	)
}

func TestCrossProduct(t *testing.T) {
	require.Equal(t,
		[]Profile{{10, 3}, {10, 5}, {12, 3}, {12, 5}},
		CrossProduct([]int{10, 12}, []int{3, 5}),
	)
	require.Len(t, DefaultProfiles(), 15)
}
