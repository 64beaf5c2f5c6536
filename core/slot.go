package core

import "sync/atomic"

var nodeId atomic.Int64

// Returns an ID that is unique in this process. It is used
// as the hash of slots and matches.
func NextId() int {
	return int(nodeId.Add(1) - 1)
}

// A Slot is one team entering a round of pairings.
//
// A Slot represents one of 2 things:
//   - An actual player
//   - A free win (bye) for whoever gets paired with it
//
// Slots are compared by identity. Two bye slots are never
// the same team even though neither carries a player.
type Slot struct {
	Player Player
	Bye    *Bye
	Id     int
}

// Returns whether this slot is a bye.
func (s *Slot) IsBye() bool {
	return s.Bye != nil
}

func (s *Slot) String() string {
	if s.IsBye() {
		return "[Bye]"
	}
	if s.Player == nil {
		return "[Empty]"
	}
	return s.Player.Id()
}

func NewPlayerSlot(player Player) *Slot {
	return &Slot{Player: player, Id: NextId()}
}

func NewByeSlot(drawn bool) *Slot {
	bye := &Bye{Drawn: drawn}
	return &Slot{Bye: bye, Id: NextId()}
}

// Creates one player slot per player while keeping the order.
func NewPlayerSlots(players []Player) []*Slot {
	slots := make([]*Slot, 0, len(players))
	for _, p := range players {
		slots = append(slots, NewPlayerSlot(p))
	}
	return slots
}

// A Player is either a person or a team who is
// taking part in a tournament.
type Player interface {
	// Returns an ID that is unique among the players of
	// a tournament
	Id() string
}

// A Bye is a free win for a player.
type Bye struct {
	// This is true when the bye was added to even out
	// the number of entries and false when it stands in
	// for a withdrawn player
	Drawn bool
}
