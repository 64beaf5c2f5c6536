package core

import (
	"errors"
	"fmt"
)

var (
	ErrOddGroup      = errors.New("group has an odd number of slots")
	ErrUnknownPairer = errors.New("unknown pairer")
)

// A GroupPairer creates the matches between the slots of one
// score group.
type GroupPairer func(group []*Slot) ([]*Match, error)

const (
	PairerAdjacent = "adjacent"
	PairerFolded   = "folded"
	PairerSlide    = "slide"
)

// Returns the GroupPairer registered under the name.
func PairerByName(name string) (GroupPairer, error) {
	switch name {
	case PairerAdjacent:
		return AdjacentPairs, nil
	case PairerFolded:
		return FoldedPairs, nil
	case PairerSlide:
		return SlidePairs, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPairer, name)
	}
}

// Pairs each slot with its neighbour (1v2, 3v4, ...).
func AdjacentPairs(group []*Slot) ([]*Match, error) {
	return pairGroup(group, func(i int) (int, int) {
		return 2 * i, 2*i + 1
	})
}

// Pairs the highest with the lowest seed going inwards
// (1vN, 2vN-1, ...).
func FoldedPairs(group []*Slot) ([]*Match, error) {
	return pairGroup(group, func(i int) (int, int) {
		return i, len(group) - 1 - i
	})
}

// Pairs the top half against the bottom half (1vN/2+1, 2vN/2+2, ...).
// This is the pairing of the dutch swiss system.
func SlidePairs(group []*Slot) ([]*Match, error) {
	return pairGroup(group, func(i int) (int, int) {
		return i, len(group)/2 + i
	})
}

// Creates len(group)/2 matches. The opponents function returns
// the indices of the two slots for the i-th match.
func pairGroup(group []*Slot, opponents func(i int) (int, int)) ([]*Match, error) {
	if len(group)%2 != 0 {
		return nil, ErrOddGroup
	}

	numMatches := len(group) / 2
	matches := make([]*Match, 0, numMatches)
	for matchI := range numMatches {
		i1, i2 := opponents(matchI)
		matches = append(matches, NewMatch(group[i1], group[i2]))
	}

	return matches, nil
}
