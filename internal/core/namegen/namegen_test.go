package namegen

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/rprtr258/fun"
	"github.com/shoenig/test"
	"github.com/shoenig/test/must"

	"github.com/rprtr258/mng/internal/core"
	"github.com/rprtr258/mng/internal/core/names"
	"github.com/rprtr258/mng/internal/errors"
)

// zeroSource makes every draw pick the first element
type zeroSource struct{}

func (zeroSource) Int63() int64 { return 0 }
func (zeroSource) Seed(int64)   {}

func newZero() Generator {
	return New(rand.New(zeroSource{}))
}

func lasts(pairs []core.Pair) []string {
	return fun.Map[string](func(p core.Pair) string { return p.Last }, pairs...)
}

func assertDistinctLasts(t *testing.T, pairs []core.Pair) {
	t.Helper()
	seen := map[string]struct{}{}
	for _, pair := range pairs {
		_, ok := seen[pair.Last]
		must.False(t, ok, must.Sprintf("surname %q repeats", pair.Last))
		seen[pair.Last] = struct{}{}
	}
}

func assertDistinctPairs(t *testing.T, pairs []core.Pair) {
	t.Helper()
	seen := map[core.Pair]struct{}{}
	for _, pair := range pairs {
		_, ok := seen[pair]
		must.False(t, ok, must.Sprintf("pair %q repeats", pair.String()))
		seen[pair] = struct{}{}
	}
}

func TestBuildPools(t *testing.T) {
	male, female := names.GivenMale(), names.GivenFemale()
	noble, commoner := names.SurnamesNoble(), names.SurnamesCommoner()

	for name, test := range map[string]struct {
		gender    core.Gender
		class     core.Class
		wantFirst []string
		wantLast  []string
	}{
		"any": {
			gender:    core.GenderUnspecified,
			class:     core.ClassUnspecified,
			wantFirst: slices.Concat(male, female),
			wantLast:  slices.Concat(noble, commoner),
		},
		"male noble": {
			gender:    core.GenderMale,
			class:     core.ClassNoble,
			wantFirst: male,
			wantLast:  noble,
		},
		"female commoner": {
			gender:    core.GenderFemale,
			class:     core.ClassCommoner,
			wantFirst: female,
			wantLast:  commoner,
		},
		"female any": {
			gender:    core.GenderFemale,
			class:     core.ClassUnspecified,
			wantFirst: female,
			wantLast:  slices.Concat(noble, commoner),
		},
	} {
		t.Run(name, func(t *testing.T) {
			first, last := BuildPools(test.gender, test.class)
			must.Eq(t, test.wantFirst, first)
			must.Eq(t, test.wantLast, last)
		})
	}
}

func TestGenerateMembership(t *testing.T) {
	g := NewSeeded(1)

	pairs, err := g.Generate(core.Request{
		Count:  200,
		Gender: core.GenderMale,
		Class:  core.ClassCommoner,
	})
	must.NoError(t, err)
	must.SliceLen(t, 200, pairs)
	for _, pair := range pairs {
		test.SliceContains(t, names.GivenMale(), pair.First)
		test.SliceContains(t, names.SurnamesCommoner(), pair.Last)
	}

	pairs, err = g.Generate(core.Request{Count: 200})
	must.NoError(t, err)
	firsts := slices.Concat(names.GivenMale(), names.GivenFemale())
	lastNames := slices.Concat(names.SurnamesNoble(), names.SurnamesCommoner())
	for _, pair := range pairs {
		test.SliceContains(t, firsts, pair.First)
		test.SliceContains(t, lastNames, pair.Last)
	}
}

func TestGenerateSeedIsReproducible(t *testing.T) {
	for name, request := range map[string]core.Request{
		"free":        {Count: 20},
		"unique last": {Count: 20, UniqueLast: true},
		"unique full": {Count: 20, UniqueFull: true},
		"both":        {Count: 20, UniqueLast: true, UniqueFull: true},
	} {
		t.Run(name, func(t *testing.T) {
			request.Seed = fun.Valid[int64](42)

			// generator source must not matter when request is seeded
			got1, err := NewSeeded(1).Generate(request)
			must.NoError(t, err)
			got2, err := NewSeeded(2).Generate(request)
			must.NoError(t, err)

			must.Eq(t, got1, got2)
		})
	}
}

func TestGenerateNegativeCount(t *testing.T) {
	_, err := NewSeeded(1).Generate(core.Request{Count: -1})
	must.Error(t, err)
}

func TestPairsZeroCount(t *testing.T) {
	for name, flags := range map[string][2]bool{
		"free":        {false, false},
		"unique last": {true, false},
		"unique full": {false, true},
		"both":        {true, true},
	} {
		t.Run(name, func(t *testing.T) {
			pairs, err := NewSeeded(1).Pairs(0, []string{"A"}, []string{"X"}, flags[0], flags[1])
			must.NoError(t, err)
			must.NotNil(t, pairs)
			must.SliceEmpty(t, pairs)
		})
	}
}

func TestPairsUniqueLastScenario(t *testing.T) {
	first := []string{"Ælfred", "Wulfric"}
	last := []string{"Godwin", "Cerdic", "Beorn"}

	pairs, err := NewSeeded(42).Pairs(3, first, last, true, false)
	must.NoError(t, err)
	must.SliceLen(t, 3, pairs)
	must.SliceContainsAll(t, last, lasts(pairs))
	assertDistinctLasts(t, pairs)
	for _, pair := range pairs {
		must.SliceContains(t, first, pair.First)
	}

	again, err := NewSeeded(42).Pairs(3, first, last, true, false)
	must.NoError(t, err)
	must.Eq(t, pairs, again)
}

func TestPairsUniqueLastDistinct(t *testing.T) {
	_, last := BuildPools(core.GenderUnspecified, core.ClassNoble)
	for seed := range int64(20) {
		pairs, err := NewSeeded(seed).Pairs(len(last), []string{"A", "B"}, last, true, false)
		must.NoError(t, err)
		must.SliceLen(t, len(last), pairs)
		assertDistinctLasts(t, pairs)
	}
}

func TestPairsUniqueFullBoundary(t *testing.T) {
	for seed := range int64(20) {
		pairs, err := NewSeeded(seed).Pairs(2, []string{"A"}, []string{"X", "Y"}, false, true)
		must.NoError(t, err)
		must.SliceContainsAll(t, []core.Pair{{First: "A", Last: "X"}, {First: "A", Last: "Y"}}, pairs)
	}
}

func TestPairsUniqueFullDistinct(t *testing.T) {
	first := []string{"A", "B", "C"}
	last := []string{"X", "Y", "Z", "W"}
	for seed := range int64(20) {
		pairs, err := NewSeeded(seed).Pairs(12, first, last, false, true)
		must.NoError(t, err)
		must.SliceLen(t, 12, pairs)
		assertDistinctPairs(t, pairs)
	}
}

func TestPairsUniqueFullFallsBackToScan(t *testing.T) {
	pairs, err := newZero().Pairs(4, []string{"A", "B"}, []string{"X", "Y"}, false, true)
	must.NoError(t, err)
	must.Eq(t, []core.Pair{
		{First: "A", Last: "X"},
		{First: "A", Last: "Y"},
		{First: "B", Last: "X"},
		{First: "B", Last: "Y"},
	}, pairs)
}

func TestPairsUniqueFullDuplicatePool(t *testing.T) {
	_, err := newZero().Pairs(2, []string{"A"}, []string{"X", "X"}, false, true)
	must.ErrorIs(t, err, core.ErrInsufficientCombinations)
}

func TestPairsBothRepairsCollision(t *testing.T) {
	pairs, err := newZero().Pairs(2, []string{"A", "B"}, []string{"X", "X"}, true, true)
	must.NoError(t, err)
	must.Eq(t, []core.Pair{
		{First: "A", Last: "X"},
		{First: "B", Last: "X"},
	}, pairs)
}

func TestPairsBothUnresolvable(t *testing.T) {
	_, err := NewSeeded(1).Pairs(2, []string{"A"}, []string{"X", "X"}, true, true)
	must.ErrorIs(t, err, core.ErrUnresolvableCollision)

	var collision *core.UnresolvableCollisionError
	must.True(t, errors.As(err, &collision))
	must.EqOp(t, "X", collision.Last)
}

func TestPairsBothDistinct(t *testing.T) {
	first, last := BuildPools(core.GenderUnspecified, core.ClassUnspecified)
	for seed := range int64(20) {
		pairs, err := NewSeeded(seed).Pairs(len(last), first, last, true, true)
		must.NoError(t, err)
		must.SliceLen(t, len(last), pairs)
		assertDistinctLasts(t, pairs)
		assertDistinctPairs(t, pairs)
	}
}

func TestPairsFreeAllowsRepeats(t *testing.T) {
	pairs, err := NewSeeded(7).Pairs(10, []string{"A"}, []string{"X"}, false, false)
	must.NoError(t, err)
	must.SliceLen(t, 10, pairs)
	for _, pair := range pairs {
		must.Eq(t, core.Pair{First: "A", Last: "X"}, pair)
	}
}

func TestPairsCapacityErrors(t *testing.T) {
	t.Run("insufficient surnames", func(t *testing.T) {
		_, err := NewSeeded(1).Pairs(4, []string{"A"}, []string{"X", "Y", "Z"}, true, false)
		must.ErrorIs(t, err, core.ErrInsufficientSurnames)

		var insufficient *core.InsufficientSurnamesError
		must.True(t, errors.As(err, &insufficient))
		must.EqOp(t, 4, insufficient.Requested)
		must.EqOp(t, 3, insufficient.Available)
		must.EqOp(t,
			"requested 4 names with unique last names, but only 3 surnames in the selected pool",
			err.Error())
	})

	t.Run("insufficient combinations", func(t *testing.T) {
		_, err := NewSeeded(1).Pairs(2, []string{"A"}, []string{"X"}, false, true)
		must.ErrorIs(t, err, core.ErrInsufficientCombinations)

		var insufficient *core.InsufficientCombinationsError
		must.True(t, errors.As(err, &insufficient))
		must.Eq(t, core.InsufficientCombinationsError{
			Requested:    2,
			Combinations: 1,
			Firsts:       1,
			Lasts:        1,
		}, *insufficient)
	})

	t.Run("unique last checked first", func(t *testing.T) {
		_, err := NewSeeded(1).Pairs(5, []string{"A"}, []string{"X"}, true, true)
		must.ErrorIs(t, err, core.ErrInsufficientSurnames)
	})
}

func TestPairsEmptyPool(t *testing.T) {
	_, err := NewSeeded(1).Pairs(1, nil, []string{"X"}, false, false)
	must.Error(t, err)
}

func TestPairsNoSource(t *testing.T) {
	_, err := Generator{}.Pairs(1, []string{"A"}, []string{"X"}, false, false)
	must.Error(t, err)
}
