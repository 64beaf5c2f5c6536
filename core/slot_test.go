package core

import (
	"strconv"
	"sync"
	"testing"
)

type TestPlayer struct {
	id string
}

func (p *TestPlayer) Id() string {
	return p.id
}

var _ Player = &TestPlayer{}

// Returns players with the IDs "1", "2", ... "num"
func PlayerSlice(num int) []Player {
	players := make([]Player, 0, num)
	for i := range num {
		players = append(players, &TestPlayer{id: strconv.Itoa(i + 1)})
	}
	return players
}

// Returns the player IDs of the groups. Byes are "bye".
func groupIds(groups [][]*Slot) [][]string {
	ids := make([][]string, 0, len(groups))
	for _, g := range groups {
		groupIds := make([]string, 0, len(g))
		for _, s := range g {
			if s.IsBye() {
				groupIds = append(groupIds, "bye")
			} else {
				groupIds = append(groupIds, s.Player.Id())
			}
		}
		ids = append(ids, groupIds)
	}
	return ids
}

func TestSlotIds(t *testing.T) {
	slots := NewPlayerSlots(PlayerSlice(3))
	bye1 := NewByeSlot(true)
	bye2 := NewByeSlot(true)

	seen := make(map[int]bool)
	for _, s := range append(slots, bye1, bye2) {
		if seen[s.Id] {
			t.Fatal("Two slots got the same ID")
		}
		seen[s.Id] = true
	}

	if bye1 == bye2 {
		t.Fatal("Two bye slots are the same slot")
	}

	if !bye1.IsBye() || slots[0].IsBye() {
		t.Fatal("IsBye does not tell byes and players apart")
	}

	if slots[2].String() != "3" || bye1.String() != "[Bye]" {
		t.Fatal("The slots are not printed by their player ID")
	}
}

func TestNextIdConcurrent(t *testing.T) {
	const workers, perWorker = 8, 100

	ids := make(chan int, workers*perWorker)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				ids <- NextId()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		if seen[id] {
			t.Fatal("NextId handed out a duplicate ID")
		}
		seen[id] = true
	}
}
