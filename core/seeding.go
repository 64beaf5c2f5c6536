package core

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	ErrUnknownSeedingMode = errors.New("unknown seeding mode")
)

// The SeedingMode decides how the entries are ordered before
// they are grouped. Inside a score group the order of the
// entries is kept, so the seeding decides who gets paired
// with whom among equally scored teams.
type SeedingMode int

const (
	// Entries are kept in the given order
	SeedSingle SeedingMode = iota
	// Entries are shuffled
	SeedRandom
	// Entries are shuffled within tiers of doubling size
	// (1-2 fixed, 3-4, 5-8, 9-16, ...)
	SeedTiered
)

func (m SeedingMode) String() string {
	switch m {
	case SeedSingle:
		return "single"
	case SeedRandom:
		return "random"
	case SeedTiered:
		return "tiered"
	default:
		return fmt.Sprintf("SeedingMode(%d)", int(m))
	}
}

// Parses "single", "random" or "tiered" into a SeedingMode
func ParseSeedingMode(name string) (SeedingMode, error) {
	switch name {
	case "single", "":
		return SeedSingle, nil
	case "random":
		return SeedRandom, nil
	case "tiered":
		return SeedTiered, nil
	default:
		return SeedSingle, fmt.Errorf("%w: %q", ErrUnknownSeedingMode, name)
	}
}

// Reorders the slice in place according to the seeding mode.
// The same rngSeed always produces the same order.
func SeededShuffle[S ~[]E, E any](slice S, seedingMode SeedingMode, rngSeed int64) {
	if seedingMode == SeedSingle {
		return
	}

	rng := rand.New(rand.NewSource(rngSeed))
	switch seedingMode {
	case SeedRandom:
		shuffle(slice, rng)
	case SeedTiered:
		tieredShuffle(slice, rng)
	}
}

func tieredShuffle[S ~[]E, E any](slice S, rng *rand.Rand) {
	for start := 2; start < len(slice); start *= 2 {
		end := min(len(slice), 2*start)
		shuffle(slice[start:end], rng)
	}
}

func shuffle[S ~[]E, E any](slice S, rng *rand.Rand) {
	rng.Shuffle(
		len(slice),
		func(i, j int) { slice[i], slice[j] = slice[j], slice[i] },
	)
}
