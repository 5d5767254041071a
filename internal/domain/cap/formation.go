package cap

import (
	"fmt"
	"sort"

	"github.com/gafferhq/gaffer/internal/domain/match"
	"github.com/gafferhq/gaffer/internal/domain/player"
)

var positionRank = func() map[player.Position]int {
	out := make(map[player.Position]int, len(player.AllPositions))
	for i, pos := range player.AllPositions {
		out[pos] = i
	}
	return out
}()

type rosterSlot struct {
	pos  player.Position
	name string
}

// ResolveFormationChanges reverse-engineers the substitution list that
// explains the transition from the roster currently on the pitch to the
// desired position-to-player assignment at the given minute. Matching
// runs in three greedy passes over the entries that differ:
//
//  1. pair entries for the same player (a position reassignment), so a
//     swap is recognized before it is mistaken for two substitutions;
//  2. pair entries at the same position (a like-for-like substitution);
//  3. pair whatever remains by list order.
//
// Each pass consumes its matches. A desired map naming the same player
// at two positions is rejected.
func ResolveFormationChanges(desired map[player.Position]string, minute int, stoppage *int, current []Cap) ([]match.Change, error) {
	byPlayer := make(map[string]player.Position, len(desired))
	for pos, name := range desired {
		if name == "" {
			return nil, fmt.Errorf("desired roster has an empty slot at %s", pos)
		}
		if prev, ok := byPlayer[name]; ok {
			return nil, fmt.Errorf("desired roster assigns %s to both %s and %s", name, prev, pos)
		}
		byPlayer[name] = pos
	}

	oldSlots := make([]rosterSlot, 0, len(current))
	for _, c := range current {
		oldSlots = append(oldSlots, rosterSlot{pos: c.Pos, name: c.PlayerName})
	}
	sort.SliceStable(oldSlots, func(i, j int) bool {
		if oldSlots[i].pos != oldSlots[j].pos {
			return positionRank[oldSlots[i].pos] < positionRank[oldSlots[j].pos]
		}
		return oldSlots[i].name < oldSlots[j].name
	})

	newSlots := make([]rosterSlot, 0, len(desired))
	for pos, name := range desired {
		newSlots = append(newSlots, rosterSlot{pos: pos, name: name})
	}
	sort.SliceStable(newSlots, func(i, j int) bool {
		return positionRank[newSlots[i].pos] < positionRank[newSlots[j].pos]
	})

	// Entries present unchanged on both sides need no event.
	oldSlots, newSlots = dropExactMatches(oldSlots, newSlots)

	changes := make([]match.Change, 0, len(newSlots))
	emit := func(out, in rosterSlot) {
		changes = append(changes, match.Change{
			Minute:       minute,
			StoppageTime: stoppage,
			Out:          match.Slot{Name: out.name, Pos: out.pos},
			In:           match.Slot{Name: in.name, Pos: in.pos},
		})
	}

	// Pass one: same player, new position.
	oldSlots, newSlots = pairBy(oldSlots, newSlots, emit, func(o, n rosterSlot) bool {
		return o.name == n.name
	})

	// Pass two: same position, new player.
	oldSlots, newSlots = pairBy(oldSlots, newSlots, emit, func(o, n rosterSlot) bool {
		return o.pos == n.pos
	})

	// Fallback: pair leftovers by list order.
	for i := 0; i < len(newSlots) && i < len(oldSlots); i++ {
		emit(oldSlots[i], newSlots[i])
	}

	return changes, nil
}

func dropExactMatches(oldSlots, newSlots []rosterSlot) ([]rosterSlot, []rosterSlot) {
	oldKeep := oldSlots[:0:0]
	matched := make([]bool, len(newSlots))
	for _, o := range oldSlots {
		found := false
		for i, n := range newSlots {
			if !matched[i] && o == n {
				matched[i] = true
				found = true
				break
			}
		}
		if !found {
			oldKeep = append(oldKeep, o)
		}
	}

	newKeep := newSlots[:0:0]
	for i, n := range newSlots {
		if !matched[i] {
			newKeep = append(newKeep, n)
		}
	}
	return oldKeep, newKeep
}

func pairBy(oldSlots, newSlots []rosterSlot, emit func(out, in rosterSlot), same func(o, n rosterSlot) bool) ([]rosterSlot, []rosterSlot) {
	oldUsed := make([]bool, len(oldSlots))
	newKeep := newSlots[:0:0]
	for _, n := range newSlots {
		paired := false
		for i, o := range oldSlots {
			if oldUsed[i] || !same(o, n) {
				continue
			}
			oldUsed[i] = true
			emit(o, n)
			paired = true
			break
		}
		if !paired {
			newKeep = append(newKeep, n)
		}
	}

	oldKeep := oldSlots[:0:0]
	for i, o := range oldSlots {
		if !oldUsed[i] {
			oldKeep = append(oldKeep, o)
		}
	}
	return oldKeep, newKeep
}

// PlayerMeta is the roster metadata stamped onto caps that a replay
// opens from substitution events.
type PlayerMeta struct {
	PlayerID string
	KitNo    *int
	OVR      int
}

// RebuildFromChanges recomputes the match's entire cap set from scratch:
// every substitute stint is discarded, the sorted change list is
// replayed against the retained starting caps, and each player's
// pre-rebuild first-cap statistics are carried onto whichever stint is
// now their first appearance. Replaying the whole list instead of
// patching incrementally keeps stints contiguous and non-overlapping no
// matter where in the timeline a change was edited or removed.
//
// Caps opened by the replay have empty IDs; callers assign IDs before
// persisting.
func RebuildFromChanges(m match.Match, existing []Cap, meta func(name string) (PlayerMeta, bool)) []Cap {
	starting := make([]Cap, 0, len(existing))
	for _, c := range existing {
		if c.IsStarting() {
			starting = append(starting, c)
		}
	}

	rebuilt := ReplayChanges(starting, m.Changes, m.Length())

	for i := range rebuilt {
		c := &rebuilt[i]
		c.MatchID = m.ID
		if c.ID != "" || meta == nil {
			continue
		}
		if pm, ok := meta(c.PlayerName); ok {
			c.PlayerID = pm.PlayerID
			c.KitNo = pm.KitNo
			c.OVR = pm.OVR
		}
	}

	carryForwardStats(existing, rebuilt)
	return rebuilt
}

func carryForwardStats(existing, rebuilt []Cap) {
	oldFirst := FirstByPlayer(existing)

	firstIdx := make(map[string]int, len(rebuilt))
	for i, c := range rebuilt {
		if j, ok := firstIdx[c.statOwnerKey()]; !ok || c.StartMinute < rebuilt[j].StartMinute {
			firstIdx[c.statOwnerKey()] = i
		}
	}

	for i := range rebuilt {
		c := &rebuilt[i]
		c.NumGoals = 0
		c.NumOwnGoals = 0
		c.NumAssists = 0
		c.NumYellowCards = 0
		c.NumRedCards = 0
		c.CleanSheet = false
		c.Rating = nil

		if firstIdx[c.statOwnerKey()] != i {
			continue
		}
		prev, ok := oldFirst[c.statOwnerKey()]
		if !ok {
			continue
		}
		c.NumGoals = prev.NumGoals
		c.NumOwnGoals = prev.NumOwnGoals
		c.NumAssists = prev.NumAssists
		c.NumYellowCards = prev.NumYellowCards
		c.NumRedCards = prev.NumRedCards
		c.CleanSheet = prev.CleanSheet
		c.Rating = prev.Rating
	}
}
