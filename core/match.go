package core

import (
	"iter"
	"strings"
)

// A match with two slots for the opponents.
type Match struct {
	// The first opponent slot
	Slot1 *Slot
	// The second opponent slot
	Slot2 *Slot

	// An iterator that goes over the two slots
	Slots iter.Seq[*Slot]

	// Id for graph node hashing
	id int
}

func (m *Match) OtherSlot(slot *Slot) *Slot {
	if slot == m.Slot1 {
		return m.Slot2
	}
	if slot == m.Slot2 {
		return m.Slot1
	}

	panic("Slot is not in the Match")
}

func (m *Match) HasBye() bool {
	return m.Slot1.IsBye() || m.Slot2.IsBye()
}

func (m *Match) ContainsPlayer(player Player) bool {
	id := player.Id()
	for s := range m.Slots {
		if s.Player != nil && s.Player.Id() == id {
			return true
		}
	}
	return false
}

func (m *Match) Id() int {
	return m.id
}

func (m *Match) String() string {
	var sb strings.Builder
	sb.WriteString(m.Slot1.String())
	sb.WriteString(" vs. ")
	sb.WriteString(m.Slot2.String())
	return sb.String()
}

func NewMatch(slot1, slot2 *Slot) *Match {
	id := NextId()

	iterator := func(yield func(s *Slot) bool) {
		if !yield(slot1) {
			return
		}
		yield(slot2)
	}

	match := &Match{
		Slot1: slot1,
		Slot2: slot2,
		Slots: iterator,
		id:    id,
	}
	return match
}

// A Round is a list of matches that can be played in
// parallel during a tournament.
type Round struct {
	// The matches that are played in this round
	Matches []*Match
}

// Returns the slots of all matches in the order they are
// seated (Slot1 before Slot2).
func (r *Round) Slots() []*Slot {
	slots := make([]*Slot, 0, 2*len(r.Matches))
	for _, m := range r.Matches {
		slots = append(slots, m.Slot1, m.Slot2)
	}
	return slots
}

// Returns the match that the given player is seated in or nil
func (r *Round) MatchOfPlayer(player Player) *Match {
	for _, m := range r.Matches {
		if m.ContainsPlayer(player) {
			return m
		}
	}
	return nil
}
