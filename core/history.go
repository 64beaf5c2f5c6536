package core

// This file contains a thin wrapper around the graph module
// for keeping track of who already played whom.

import (
	"errors"

	"github.com/dominikbraun/graph"
)

func getPlayerId(player Player) string {
	return player.Id()
}

// A MatchHistory has all players of a tournament as its nodes.
// An undirected edge between two players means they already met.
// The edge weight is the number of times they met.
//
// Byes are not part of the graph. They are counted per player
// instead.
//
// A MatchHistory is not safe for concurrent use.
type MatchHistory struct {
	graph.Graph[string, Player]
	byes map[string]int
}

// Adds the matches to the history. Matches with an empty slot
// are skipped. Matches with a bye count as a bye for the
// player who got it.
func (h *MatchHistory) Record(matches ...*Match) error {
	for _, m := range matches {
		p1, p2 := m.Slot1.Player, m.Slot2.Player
		bye1, bye2 := m.Slot1.IsBye(), m.Slot2.IsBye()

		switch {
		case bye1 && bye2:
			continue
		case bye1 && p2 != nil:
			h.byes[p2.Id()] += 1
			continue
		case bye2 && p1 != nil:
			h.byes[p1.Id()] += 1
			continue
		case p1 == nil || p2 == nil:
			continue
		}

		if err := h.addPlayer(p1); err != nil {
			return err
		}
		if err := h.addPlayer(p2); err != nil {
			return err
		}
		if err := h.addEncounter(p1, p2); err != nil {
			return err
		}
	}
	return nil
}

// Records all matches of the rounds
func (h *MatchHistory) RecordRounds(rounds ...*Round) error {
	for _, r := range rounds {
		if err := h.Record(r.Matches...); err != nil {
			return err
		}
	}
	return nil
}

func (h *MatchHistory) addPlayer(player Player) error {
	err := h.AddVertex(player)
	if errors.Is(err, graph.ErrVertexAlreadyExists) {
		return nil
	}
	return err
}

func (h *MatchHistory) addEncounter(p1, p2 Player) error {
	edge, err := h.Edge(p1.Id(), p2.Id())
	if errors.Is(err, graph.ErrEdgeNotFound) {
		return h.AddEdge(p1.Id(), p2.Id(), graph.EdgeWeight(1))
	}
	if err != nil {
		return err
	}
	return h.UpdateEdge(p1.Id(), p2.Id(), graph.EdgeWeight(edge.Properties.Weight+1))
}

// Returns how often the two players met
func (h *MatchHistory) TimesPlayed(p1, p2 Player) int {
	edge, err := h.Edge(p1.Id(), p2.Id())
	if err != nil {
		return 0
	}
	return edge.Properties.Weight
}

// Returns how many byes the player got
func (h *MatchHistory) Byes(player Player) int {
	return h.byes[player.Id()]
}

// Returns all players that the given player met
func (h *MatchHistory) Opponents(player Player) []Player {
	adjacencyMap, err := h.AdjacencyMap()
	if err != nil {
		return nil
	}

	outEdges := adjacencyMap[player.Id()]
	opponents := make([]Player, 0, len(outEdges))
	for k := range outEdges {
		opponent, _ := h.Vertex(k)
		opponents = append(opponents, opponent)
	}

	return opponents
}

// Returns the number of matches in the round that already
// happened before. A bye for a player who already had
// a bye is counted as well.
func (h *MatchHistory) Rematches(round *Round) int {
	rematches := 0
	for _, m := range round.Matches {
		p1, p2 := m.Slot1.Player, m.Slot2.Player
		switch {
		case m.Slot1.IsBye() && p2 != nil:
			if h.Byes(p2) > 0 {
				rematches += 1
			}
		case m.Slot2.IsBye() && p1 != nil:
			if h.Byes(p1) > 0 {
				rematches += 1
			}
		case p1 != nil && p2 != nil:
			if h.TimesPlayed(p1, p2) > 0 {
				rematches += 1
			}
		}
	}
	return rematches
}

func NewMatchHistory() *MatchHistory {
	history := &MatchHistory{
		Graph: graph.New(getPlayerId, graph.Weighted()),
		byes:  make(map[string]int),
	}
	return history
}
