package cap

import (
	"github.com/gafferhq/gaffer/internal/domain/match"
)

// ReplayChanges applies the full substitution list to the starting
// lineup and returns the complete cap set for the match. Changes are
// applied in chronological order; same-minute changes keep their array
// order. Each change closes the outgoing player's open stint at the
// change minute and opens a stint for the incoming player running to
// the end of the match. Caps opened by a change carry only the name and
// position from the event; callers enrich them with player metadata.
//
// The input caps are not mutated.
func ReplayChanges(starting []Cap, changes []match.Change, matchLength int) []Cap {
	caps := make([]Cap, len(starting))
	copy(caps, starting)
	for i := range caps {
		caps[i].StopMinute = matchLength
	}

	for _, change := range match.SortChanges(changes) {
		for i := range caps {
			if caps[i].PlayerName == change.Out.Name && caps[i].StartMinute <= change.Minute && change.Minute < caps[i].StopMinute {
				caps[i].StopMinute = change.Minute
				break
			}
		}

		incoming := Cap{
			PlayerName:  change.In.Name,
			Pos:         change.In.Pos,
			StartMinute: change.Minute,
			StopMinute:  matchLength,
		}
		if len(starting) > 0 {
			incoming.MatchID = starting[0].MatchID
		}
		caps = append(caps, incoming)
	}

	return caps
}

// Project returns the caps active at the given minute: the roster that
// was on the pitch once every change up to that minute is applied.
func Project(starting []Cap, changes []match.Change, matchLength, atMinute int) []Cap {
	all := ReplayChanges(starting, changes, matchLength)
	active := make([]Cap, 0, len(starting))
	for _, c := range all {
		if c.ActiveAt(atMinute, matchLength) {
			active = append(active, c)
		}
	}
	return active
}

// Bench returns the caps not active at the given minute: players with a
// stint in the match who are either not yet on or already off.
func Bench(starting []Cap, changes []match.Change, matchLength, atMinute int) []Cap {
	all := ReplayChanges(starting, changes, matchLength)
	bench := make([]Cap, 0)
	for _, c := range all {
		if !c.ActiveAt(atMinute, matchLength) {
			bench = append(bench, c)
		}
	}
	return bench
}

// FirstByPlayer maps each player to their earliest-starting cap, the
// stint that owns the player's aggregated statistics. Players are keyed
// by name since match events reference players by name.
func FirstByPlayer(caps []Cap) map[string]Cap {
	first := make(map[string]Cap, len(caps))
	for _, c := range caps {
		existing, ok := first[c.statOwnerKey()]
		if !ok || c.StartMinute < existing.StartMinute {
			first[c.statOwnerKey()] = c
		}
	}
	return first
}
