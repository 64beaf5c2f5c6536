package core

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func constStrategy[C any](candidate C, calls *[]C) Strategy[C] {
	return func() (C, error) {
		*calls = append(*calls, candidate)
		return candidate, nil
	}
}

func TestPairReturnsHighestScore(t *testing.T) {
	calls := make([]string, 0)
	strategies := []Strategy[string]{
		constStrategy("bb", &calls),
		constStrategy("dddd", &calls),
		constStrategy("a", &calls),
		constStrategy("ccc", &calls),
	}

	best, err := Pair(strategies, func(c string) int { return len(c) })
	if err != nil {
		t.Fatal(err)
	}

	if best != "dddd" {
		t.Fatal("The candidate with the highest score was not chosen")
	}

	if !slices.Equal(calls, []string{"bb", "dddd", "a", "ccc"}) {
		t.Fatal("The strategies were not called exactly once in order")
	}
}

func TestPairPrefersFirstOnTie(t *testing.T) {
	calls := make([]string, 0)
	strategies := []Strategy[string]{
		constStrategy("low", &calls),
		constStrategy("first", &calls),
		constStrategy("second", &calls),
	}
	scores := map[string]float64{"low": -1, "first": 2.5, "second": 2.5}

	best, err := Pair(strategies, func(c string) float64 { return scores[c] })
	require.NoError(t, err)
	require.Equal(t, "first", best)
}

func TestPairSingleStrategy(t *testing.T) {
	calls := make([]int, 0)
	best, err := Pair([]Strategy[int]{constStrategy(7, &calls)}, func(c int) int { return -c })
	require.NoError(t, err)
	require.Equal(t, 7, best)
}

func TestPairNoStrategies(t *testing.T) {
	_, err := Pair(nil, func(c string) int { return 0 })
	require.ErrorIs(t, err, ErrNoStrategies)

	_, err = Pair([]Strategy[string]{}, func(c string) int { return 0 })
	require.ErrorIs(t, err, ErrNoStrategies)
}

func TestPairStrategyError(t *testing.T) {
	errBroken := errors.New("broken strategy")
	calls := make([]string, 0)
	strategies := []Strategy[string]{
		constStrategy("a", &calls),
		func() (string, error) { return "", errBroken },
		constStrategy("c", &calls),
	}

	best, err := Pair(strategies, func(c string) int { return len(c) })
	require.ErrorIs(t, err, errBroken)
	require.Empty(t, best)
	require.Equal(t, []string{"a"}, calls, "strategies after the failing one were called")
}

func TestPairProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for range 200 {
		scores := make([]int, rng.Intn(10)+1)
		for i := range scores {
			scores[i] = rng.Intn(5)
		}

		strategies := make([]Strategy[int], len(scores))
		for i := range scores {
			strategies[i] = func() (int, error) { return i, nil }
		}

		best, err := Pair(strategies, func(i int) int { return scores[i] })
		require.NoError(t, err)

		maxScore := slices.Max(scores)
		require.Equal(t, maxScore, scores[best])
		require.Equal(t, slices.Index(scores, maxScore), best, "not the first of the best candidates")
	}
}
