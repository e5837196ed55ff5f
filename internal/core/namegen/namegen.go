// Package namegen combines given names and surnames into full names.
package namegen

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/rprtr258/mng/internal/core"
	"github.com/rprtr258/mng/internal/core/names"
	"github.com/rprtr258/mng/internal/errors"
)

// random draws per requested name before falling back to exhaustive scan
const _attemptsPerName = 20

// BuildPools selects first and last name pools for given filters.
// Unspecified filter merges both sub-pools, keeping duplicates.
func BuildPools(gender core.Gender, class core.Class) (first, last []string) {
	switch gender {
	case core.GenderMale:
		first = names.GivenMale()
	case core.GenderFemale:
		first = names.GivenFemale()
	default:
		first = slices.Concat(names.GivenMale(), names.GivenFemale())
	}

	switch class {
	case core.ClassNoble:
		last = names.SurnamesNoble()
	case core.ClassCommoner:
		last = names.SurnamesCommoner()
	default:
		last = slices.Concat(names.SurnamesNoble(), names.SurnamesCommoner())
	}

	return first, last
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, errors.Wrap(err, "read random seed")
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Generator produces name pairs using its own random source.
// Generator is not safe for concurrent use, create one per goroutine.
type Generator struct {
	rng *rand.Rand
}

// New creates generator drawing from rng.
func New(rng *rand.Rand) Generator {
	return Generator{rng: rng}
}

// NewSeeded creates generator with deterministic source, same seed gives same names.
//
//nolint:gosec // G404: names are not secrets
func NewSeeded(seed int64) Generator {
	return New(rand.New(rand.NewSource(seed)))
}

// Generate builds pools for request filters and produces request.Count pairs.
// If request has seed, fresh source seeded with it is used instead of generator's one.
func (g Generator) Generate(request core.Request) ([]core.Pair, error) {
	if err := request.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid request")
	}

	if seed, ok := request.Seed.Unpack(); ok {
		g = NewSeeded(seed)
	}

	first, last := BuildPools(request.Gender, request.Class)
	log.Debug().
		Int("count", request.Count).
		Stringer("gender", request.Gender).
		Stringer("class", request.Class).
		Int("firsts", len(first)).
		Int("lasts", len(last)).
		Bool("unique_last", request.UniqueLast).
		Bool("unique_full", request.UniqueFull).
		Msg("generating names")

	return g.Pairs(request.Count, first, last, request.UniqueLast, request.UniqueFull)
}

// Pairs produces exactly count pairs from given pools, or fails without partial result.
func (g Generator) Pairs(
	count int,
	first, last []string,
	uniqueLast, uniqueFull bool,
) ([]core.Pair, error) {
	if count < 0 {
		return nil, errors.Newf("count must not be negative, got %d", count)
	}

	if uniqueLast && count > len(last) {
		return nil, &core.InsufficientSurnamesError{
			Requested: count,
			Available: len(last),
		}
	}

	if uniqueFull {
		if combos := len(first) * len(last); count > combos {
			return nil, &core.InsufficientCombinationsError{
				Requested:    count,
				Combinations: combos,
				Firsts:       len(first),
				Lasts:        len(last),
			}
		}
	}

	if count == 0 {
		return []core.Pair{}, nil
	}

	if g.rng == nil {
		return nil, errors.New("generator has no random source")
	}

	if len(first) == 0 || len(last) == 0 {
		return nil, errors.Newf("empty pool: %d firsts, %d lasts", len(first), len(last))
	}

	switch {
	case uniqueLast:
		return g.pairsUniqueLast(count, first, last, uniqueFull)
	case uniqueFull:
		return g.pairsUniqueFull(count, first, last)
	default:
		return g.pairsFree(count, first, last), nil
	}
}

func (g Generator) choice(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}

func (g Generator) pairsFree(count int, first, last []string) []core.Pair {
	res := make([]core.Pair, count)
	for i := range res {
		res[i] = core.Pair{
			First: g.choice(first),
			Last:  g.choice(last),
		}
	}
	return res
}

// pairsUniqueLast samples surnames without replacement. Pools may contain
// duplicate entries, so with uniqueFull colliding pairs get another first name,
// fixed in order of appearance.
func (g Generator) pairsUniqueLast(count int, first, last []string, uniqueFull bool) ([]core.Pair, error) {
	perm := g.rng.Perm(len(last))[:count]

	res := make([]core.Pair, count)
	for i, j := range perm {
		res[i] = core.Pair{
			First: g.choice(first),
			Last:  last[j],
		}
	}

	if !uniqueFull {
		return res, nil
	}

	seen := make(map[core.Pair]struct{}, count)
	for i, pair := range res {
		if _, ok := seen[pair]; ok {
			candidates := make([]string, 0, len(first))
			for _, fn := range first {
				if _, ok := seen[core.Pair{First: fn, Last: pair.Last}]; !ok {
					candidates = append(candidates, fn)
				}
			}

			if len(candidates) == 0 {
				return nil, &core.UnresolvableCollisionError{Last: pair.Last}
			}

			pair.First = g.choice(candidates)
			res[i] = pair
		}
		seen[pair] = struct{}{}
	}

	return res, nil
}

// pairsUniqueFull draws random pairs while it is cheap, then fills the rest
// by scanning all combinations in pool order.
func (g Generator) pairsUniqueFull(count int, first, last []string) ([]core.Pair, error) {
	res := make([]core.Pair, 0, count)
	used := make(map[core.Pair]struct{}, count)

	for attempts := 0; len(res) < count && attempts < count*_attemptsPerName; attempts++ {
		pair := core.Pair{
			First: g.choice(first),
			Last:  g.choice(last),
		}
		if _, ok := used[pair]; ok {
			continue
		}

		used[pair] = struct{}{}
		res = append(res, pair)
	}

	if len(res) == count {
		return res, nil
	}

	log.Debug().
		Int("count", count).
		Int("drawn", len(res)).
		Msg("random draws exhausted, scanning all combinations")

	for _, fn := range first {
		for _, ln := range last {
			pair := core.Pair{First: fn, Last: ln}
			if _, ok := used[pair]; ok {
				continue
			}

			used[pair] = struct{}{}
			res = append(res, pair)
			if len(res) == count {
				return res, nil
			}
		}
	}

	// pools with duplicate entries have fewer distinct combinations than their sizes product
	return nil, &core.InsufficientCombinationsError{
		Requested:    count,
		Combinations: len(res),
		Firsts:       len(first),
		Lasts:        len(last),
	}
}
