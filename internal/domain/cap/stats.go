package cap

import (
	"github.com/gafferhq/gaffer/internal/domain/match"
)

// RecomputeStats derives per-stint statistics from the match's event
// ledger. Only the first cap of each player accumulates: later stints
// after a formation swap stay at zero so nothing double counts. A red
// card definitionally ends the stint, so the booking minute becomes the
// cap's stop minute. The clean-sheet flag is set when the opposing side
// finished scoreless.
//
// The computation is pure; the input slice is not mutated. Running it
// twice on unchanged input yields identical output.
func RecomputeStats(caps []Cap, m match.Match, clubIsHome bool) []Cap {
	out := make([]Cap, len(caps))
	copy(out, caps)

	firstIdx := make(map[string]int, len(out))
	for i, c := range out {
		if j, ok := firstIdx[c.statOwnerKey()]; !ok || c.StartMinute < out[j].StartMinute {
			firstIdx[c.statOwnerKey()] = i
		}
	}

	homeScore, awayScore := match.RecomputeScore(m.Goals)
	opposingScore := awayScore
	if !clubIsHome {
		opposingScore = homeScore
	}

	for i := range out {
		c := &out[i]
		c.NumGoals = 0
		c.NumOwnGoals = 0
		c.NumAssists = 0
		c.NumYellowCards = 0
		c.NumRedCards = 0
		c.CleanSheet = false

		if firstIdx[c.statOwnerKey()] != i {
			continue
		}

		for _, g := range m.Goals {
			if g.Home != clubIsHome {
				continue
			}
			if g.Scorer == c.PlayerName {
				if g.OwnGoal {
					c.NumOwnGoals++
				} else {
					c.NumGoals++
				}
			}
			if g.AssistedBy != nil && *g.AssistedBy == c.PlayerName && !g.OwnGoal {
				c.NumAssists++
			}
		}

		for _, b := range m.Bookings {
			if b.Home != clubIsHome || b.Player != c.PlayerName {
				continue
			}
			if b.RedCard {
				c.NumRedCards++
				c.StopMinute = b.Minute
			} else {
				c.NumYellowCards++
			}
		}

		c.CleanSheet = opposingScore == 0
	}

	return out
}
