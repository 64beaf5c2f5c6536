package core

import (
	"cmp"
	"errors"
	"fmt"
)

var (
	ErrNoStrategies = errors.New("no pairing strategies given")
)

// A Strategy produces one candidate pairing.
type Strategy[C any] func() (C, error)

// Runs every strategy once in the given order and returns the
// candidate with the highest score. On equal scores the earlier
// candidate wins.
//
// When a strategy fails the selection is aborted and its error
// is returned.
func Pair[C any, S cmp.Ordered](strategies []Strategy[C], score func(C) S) (C, error) {
	var best C
	if len(strategies) == 0 {
		return best, ErrNoStrategies
	}

	var bestScore S
	for i, strategy := range strategies {
		candidate, err := strategy()
		if err != nil {
			var zero C
			return zero, fmt.Errorf("pairing strategy %d: %w", i, err)
		}

		s := score(candidate)
		if i == 0 || cmp.Compare(s, bestScore) > 0 {
			best, bestScore = candidate, s
		}
	}

	return best, nil
}
