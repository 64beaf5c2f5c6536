package core

import (
	"cmp"
	"errors"
	"fmt"
)

var (
	ErrUnknownMissingScorePolicy = errors.New("unknown missing score policy")
)

// A ScoreTable resolves the score that a player carries into a round.
//
// The second return value is false when the player has no score.
// Such players are absent and rank below every real score.
type ScoreTable[S cmp.Ordered] interface {
	Score(player Player) (S, bool)
}

// Decides what a ScoreMap reports for players it has no entry for.
type MissingScorePolicy int

const (
	// Unknown players are absent and end up in trailing singleton groups
	MissingAsAbsent MissingScorePolicy = iota
	// Unknown players get the ScoreMap's Default score
	MissingAsDefault
)

func (p MissingScorePolicy) String() string {
	switch p {
	case MissingAsAbsent:
		return "absent"
	case MissingAsDefault:
		return "default"
	default:
		return fmt.Sprintf("MissingScorePolicy(%d)", int(p))
	}
}

// Parses "absent" or "default" into a MissingScorePolicy
func ParseMissingScorePolicy(name string) (MissingScorePolicy, error) {
	switch name {
	case "absent", "":
		return MissingAsAbsent, nil
	case "default":
		return MissingAsDefault, nil
	default:
		return MissingAsAbsent, fmt.Errorf("%w: %q", ErrUnknownMissingScorePolicy, name)
	}
}

// A ScoreMap is a ScoreTable keyed by the player IDs.
type ScoreMap[S cmp.Ordered] struct {
	Scores map[string]S

	Missing MissingScorePolicy
	// The score of unknown players under MissingAsDefault
	Default S
}

func (m *ScoreMap[S]) Score(player Player) (S, bool) {
	score, ok := m.Scores[player.Id()]
	if ok {
		return score, true
	}

	if m.Missing == MissingAsDefault {
		return m.Default, true
	}

	var zero S
	return zero, false
}

// Sets the score of the player and returns the map for chaining
func (m *ScoreMap[S]) Set(player Player, score S) *ScoreMap[S] {
	m.Scores[player.Id()] = score
	return m
}

func NewScoreMap[S cmp.Ordered](missing MissingScorePolicy) *ScoreMap[S] {
	return &ScoreMap[S]{
		Scores:  make(map[string]S),
		Missing: missing,
	}
}

var _ ScoreTable[int] = &ScoreMap[int]{}
