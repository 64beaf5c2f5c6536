package core

import (
	"cmp"
	"errors"
	"math/bits"
	"slices"
)

var (
	ErrInvalidTeamCount = errors.New("team count must be positive")
	ErrOddTeamCount     = errors.New("odd number of teams can not be rolled over into even groups")
)

// Returns the minimum number of swiss rounds that are needed
// to leave only one player without a loss (ceil(log2(teamCount))).
func MinimumRounds(teamCount int) (int, error) {
	if teamCount <= 0 {
		return 0, ErrInvalidTeamCount
	}
	return bits.Len(uint(teamCount - 1)), nil
}

// Groups the slots by the score that the ScoreTable reports
// for their players.
//
// The groups are descending in score and keep the order of
// the teams slice. Byes and players without a score are absent.
// Each absent slot is put into its own group and those groups
// trail all scored groups.
func GroupTeamsByScore[S cmp.Ordered](teams []*Slot, scores ScoreTable[S]) [][]*Slot {
	score := func(s *Slot) (S, bool) {
		if s.IsBye() || s.Player == nil {
			var zero S
			return zero, false
		}
		return scores.Score(s.Player)
	}
	return GroupByScore(teams, score)
}

// Sorts the items into descending buckets of their score.
// Items where score returns false are put into one singleton
// bucket each, after all scored buckets.
func GroupByScore[T any, S cmp.Ordered](items []T, score func(T) (S, bool)) [][]T {
	buckets := make(map[S][]T)
	absent := make([][]T, 0)

	for _, item := range items {
		s, ok := score(item)
		if !ok {
			absent = append(absent, []T{item})
			continue
		}
		buckets[s] = append(buckets[s], item)
	}

	sortedScores := make([]S, 0, len(buckets))
	for s := range buckets {
		sortedScores = append(sortedScores, s)
	}
	slices.SortFunc(sortedScores, func(a, b S) int { return cmp.Compare(b, a) })

	groups := make([][]T, 0, len(sortedScores)+len(absent))
	for _, s := range sortedScores {
		groups = append(groups, buckets[s])
	}
	groups = append(groups, absent...)

	return groups
}

// Merges consecutive groups until each has at least minSize members.
//
// When the last groups do not reach minSize they are merged into
// the group before them. Only when all groups together are smaller
// than minSize the result is a single smaller group.
// The order of the members is kept and the given groups are
// not modified.
func MergeSmallGroups[T any](groups [][]T, minSize int) [][]T {
	minSize = max(minSize, 1)

	merged := make([][]T, 0, len(groups))
	var bucket []T

	for _, g := range groups {
		bucket = append(bucket, g...)
		if len(bucket) >= minSize {
			merged = append(merged, bucket)
			bucket = nil
		}
	}

	if len(bucket) == 0 {
		return merged
	}

	if len(merged) == 0 {
		return append(merged, bucket)
	}

	last := len(merged) - 1
	merged[last] = append(merged[last], bucket...)

	return merged
}

// Evens out the group sizes by moving the last member of an odd
// group to the front of the next group. Groups that end up
// empty are removed.
//
// Errors with ErrOddTeamCount when the groups have an odd number
// of members in total because the last carried member has nowhere
// to go. The given groups are not modified.
func RolloverGroups[T any](groups [][]T) ([][]T, error) {
	rolled := make([][]T, 0, len(groups))
	var carry []T

	for _, g := range groups {
		combined := make([]T, 0, len(carry)+len(g))
		combined = append(combined, carry...)
		combined = append(combined, g...)
		carry = nil

		if len(combined)%2 != 0 {
			last := len(combined) - 1
			carry = []T{combined[last]}
			combined = combined[:last]
		}

		if len(combined) != 0 {
			rolled = append(rolled, combined)
		}
	}

	if len(carry) != 0 {
		return nil, ErrOddTeamCount
	}

	return rolled, nil
}
