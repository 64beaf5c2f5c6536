package core

import (
	"cmp"
	"errors"
	"slices"

	"github.com/ezBadminton/goswiss/config"
	"go.uber.org/zap"
)

var (
	ErrTooFewEntries = errors.New("not enough entries for a swiss round")
)

const DefaultMinGroupSize = 4

type namedPairer struct {
	name string
	pair GroupPairer
}

// A Planner creates the pairings of swiss rounds.
//
// It puts the entries into score groups, merges groups that are
// too small, evens out the group sizes and then lets each of its
// pairers pair the groups. The round with the fewest rematches
// according to the history is chosen.
type Planner struct {
	minGroupSize int
	seedingMode  SeedingMode
	rngSeed      int64
	pairerNames  []string
	pairers      []namedPairer
	history      *MatchHistory
	logger       *zap.Logger
}

type PlannerOption func(p *Planner)

// Groups smaller than minSize are merged with their neighbours
func WithMinGroupSize(minSize int) PlannerOption {
	return func(p *Planner) {
		p.minGroupSize = minSize
	}
}

// Orders the entries with the seeding mode before they are grouped
func WithSeeding(mode SeedingMode, rngSeed int64) PlannerOption {
	return func(p *Planner) {
		p.seedingMode = mode
		p.rngSeed = rngSeed
	}
}

// Uses the pairers registered under the names (see PairerByName)
func WithPairers(names ...string) PlannerOption {
	return func(p *Planner) {
		p.pairerNames = append(p.pairerNames, names...)
	}
}

// Uses a custom GroupPairer. The name only shows up in the logs.
func WithGroupPairer(name string, pairer GroupPairer) PlannerOption {
	return func(p *Planner) {
		p.pairers = append(p.pairers, namedPairer{name: name, pair: pairer})
	}
}

// The history is used to count rematches. Without a history
// every pairing is rematch free and the first pairer wins.
func WithHistory(history *MatchHistory) PlannerOption {
	return func(p *Planner) {
		p.history = history
	}
}

func WithLogger(logger *zap.Logger) PlannerOption {
	return func(p *Planner) {
		p.logger = logger
	}
}

// Creates a Planner. When no pairers are given the
// slide, folded and adjacent pairers are used in this order.
func NewPlanner(opts ...PlannerOption) (*Planner, error) {
	p := &Planner{
		minGroupSize: DefaultMinGroupSize,
		logger:       zap.NewNop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if len(p.pairerNames) == 0 && len(p.pairers) == 0 {
		p.pairerNames = []string{PairerSlide, PairerFolded, PairerAdjacent}
	}

	named := make([]namedPairer, 0, len(p.pairerNames))
	for _, name := range p.pairerNames {
		pairer, err := PairerByName(name)
		if err != nil {
			return nil, err
		}
		named = append(named, namedPairer{name: name, pair: pairer})
	}
	p.pairers = append(named, p.pairers...)

	return p, nil
}

// Creates a Planner from the settings. History and logger may be nil.
func NewPlannerFromSettings(settings *config.Settings, history *MatchHistory, logger *zap.Logger) (*Planner, error) {
	seedingMode, err := ParseSeedingMode(settings.Seeding)
	if err != nil {
		return nil, err
	}

	opts := []PlannerOption{
		WithMinGroupSize(settings.MinGroupSize),
		WithSeeding(seedingMode, settings.Seed),
		WithPairers(settings.Strategies...),
		WithHistory(history),
	}
	if logger != nil {
		opts = append(opts, WithLogger(logger))
	}
	return NewPlanner(opts...)
}

// Creates an empty ScoreMap with the missing score policy of the settings
func NewSettingsScoreMap[S cmp.Ordered](settings *config.Settings) (*ScoreMap[S], error) {
	policy, err := ParseMissingScorePolicy(settings.MissingScore)
	if err != nil {
		return nil, err
	}
	return NewScoreMap[S](policy), nil
}

// Puts the entries into even sized score groups that are ready
// for pairing.
//
// The entries are first ordered by the seeding mode of the planner.
// When the number of entries is odd a drawn bye is added so the
// groups can be evened out. The bye is absent and thus ends up
// in the lowest group.
func PlanGroups[S cmp.Ordered](p *Planner, entries []*Slot, scores ScoreTable[S]) ([][]*Slot, error) {
	if len(entries) == 0 {
		return nil, ErrTooFewEntries
	}

	entries = slices.Clone(entries)
	SeededShuffle(entries, p.seedingMode, p.rngSeed)

	if len(entries)%2 != 0 {
		entries = append(entries, NewByeSlot(true))
		p.logger.Debug("added a bye to the odd number of entries", zap.Int("entries", len(entries)-1))
	}

	groups := GroupTeamsByScore(entries, scores)
	p.logger.Debug("grouped entries by score", zap.Ints("sizes", groupSizes(groups)))

	groups = MergeSmallGroups(groups, p.minGroupSize)
	p.logger.Debug("merged small groups",
		zap.Int("minGroupSize", p.minGroupSize),
		zap.Ints("sizes", groupSizes(groups)),
	)

	groups, err := RolloverGroups(groups)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("rolled over odd groups", zap.Ints("sizes", groupSizes(groups)))

	return groups, nil
}

type plannedRound struct {
	pairer string
	round  *Round
}

// Creates the matches of the next swiss round.
//
// Every pairer of the planner pairs all groups (see PlanGroups).
// The round with the fewest rematches is returned. On equal
// rematches the earlier pairer wins.
func PlanRound[S cmp.Ordered](p *Planner, entries []*Slot, scores ScoreTable[S]) (*Round, error) {
	groups, err := PlanGroups(p, entries, scores)
	if err != nil {
		return nil, err
	}

	strategies := make([]Strategy[plannedRound], 0, len(p.pairers))
	for _, pairer := range p.pairers {
		strategies = append(strategies, pairGroupsStrategy(groups, pairer))
	}

	best, err := Pair(strategies, p.rematchScore)
	if err != nil {
		p.logger.Error("could not plan round", zap.Error(err))
		return nil, err
	}

	p.logger.Info("planned round",
		zap.String("pairer", best.pairer),
		zap.Int("matches", len(best.round.Matches)),
		zap.Int("rematches", p.rematches(best.round)),
	)

	return best.round, nil
}

func pairGroupsStrategy(groups [][]*Slot, pairer namedPairer) Strategy[plannedRound] {
	return func() (plannedRound, error) {
		round := &Round{Matches: make([]*Match, 0, 8)}
		for _, g := range groups {
			matches, err := pairer.pair(g)
			if err != nil {
				return plannedRound{}, err
			}
			round.Matches = append(round.Matches, matches...)
		}
		return plannedRound{pairer: pairer.name, round: round}, nil
	}
}

// Fewer rematches score higher
func (p *Planner) rematchScore(candidate plannedRound) int {
	return -p.rematches(candidate.round)
}

func (p *Planner) rematches(round *Round) int {
	if p.history == nil {
		return 0
	}
	return p.history.Rematches(round)
}

func groupSizes[T any](groups [][]T) []int {
	sizes := make([]int, len(groups))
	for i, g := range groups {
		sizes[i] = len(g)
	}
	return sizes
}
