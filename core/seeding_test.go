package core

import (
	"reflect"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeeding(t *testing.T) {
	original := make([]int, 15)
	for i := range original {
		original[i] = i
	}

	seedShuffled := slices.Clone(original)

	SeededShuffle(seedShuffled, SeedSingle, 42)
	if !reflect.DeepEqual(seedShuffled, original) {
		t.Fatal("seeds were shuffled with SeedSingle mode")
	}

	swaps := 0
	for rng := range 30 {
		seedShuffled = slices.Clone(original)
		SeededShuffle(seedShuffled, SeedRandom, int64(rng))

		if !containsAll(seedShuffled, original) {
			t.Fatal("the shuffle removed elements")
		}

		if seedShuffled[0] != original[0] {
			swaps += 1
		}
	}
	if swaps == 0 {
		t.Fatal("the shuffle never swapped the elements")
	}

	for rng := range 30 {
		seedShuffled = slices.Clone(original)
		SeededShuffle(seedShuffled, SeedTiered, int64(rng))

		if seedShuffled[0] != original[0] || seedShuffled[1] != original[1] {
			t.Fatal("the first two seeds should stay fixed in their tier")
		}

		for _, tier := range [][2]int{{2, 4}, {4, 8}, {8, 15}} {
			if !containsAll(seedShuffled[tier[0]:tier[1]], original[tier[0]:tier[1]]) {
				t.Fatal("elements were shuffled out of their tier")
			}
		}
	}

	again := slices.Clone(original)
	SeededShuffle(again, SeedTiered, 29)
	if !reflect.DeepEqual(again, seedShuffled) {
		t.Fatal("the same rng seed did not produce the same order")
	}
}

func TestParseSeedingMode(t *testing.T) {
	for _, mode := range []SeedingMode{SeedSingle, SeedRandom, SeedTiered} {
		parsed, err := ParseSeedingMode(mode.String())
		require.NoError(t, err)
		require.Equal(t, mode, parsed)
	}

	_, err := ParseSeedingMode("snake")
	require.ErrorIs(t, err, ErrUnknownSeedingMode)
}

func TestPlanGroupsSeeding(t *testing.T) {
	players := PlayerSlice(8)
	entries := NewPlayerSlots(players)
	original := slices.Clone(entries)
	scores := NewScoreMap[int](MissingAsDefault)

	planner, err := NewPlanner(WithMinGroupSize(8), WithSeeding(SeedRandom, 5))
	require.NoError(t, err)

	groups, err := PlanGroups(planner, entries, scores)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.ElementsMatch(t, entries, groups[0])

	expected := slices.Clone(entries)
	SeededShuffle(expected, SeedRandom, 5)
	require.Equal(t, expected, groups[0], "the group does not follow the seeded order")
	require.Equal(t, original, entries, "the entries were reordered in place")
}

func containsAll[S ~[]E, E comparable](a, b S) bool {
	if len(a) != len(b) {
		return false
	}

	for _, e := range a {
		if !slices.Contains(b, e) {
			return false
		}
	}
	return true
}
