package cap

import (
	"fmt"
	"strings"

	"github.com/gafferhq/gaffer/internal/domain/player"
)

// Cap is one contiguous stint of a player occupying one position in one
// match. Stints for a player never overlap; the earliest stint (the
// "first cap") is the sole carrier of the player's aggregated match
// statistics, so split stints never double count.
type Cap struct {
	ID         string
	MatchID    string
	PlayerID   string
	PlayerName string
	Pos        player.Position
	// StartMinute 0 marks a starting-lineup cap. StopMinute defaults to
	// the match length and is pulled in when the player goes off.
	StartMinute int
	StopMinute  int
	KitNo       *int
	OVR         int

	NumGoals       int
	NumOwnGoals    int
	NumAssists     int
	NumYellowCards int
	NumRedCards    int
	CleanSheet     bool

	// Rating is an optional 0-100 post-match mark.
	Rating *int
}

func (c Cap) Validate() error {
	if strings.TrimSpace(c.MatchID) == "" {
		return fmt.Errorf("cap match id is required")
	}
	if strings.TrimSpace(c.PlayerName) == "" {
		return fmt.Errorf("cap player name is required")
	}
	if !player.IsValidPosition(c.Pos) {
		return fmt.Errorf("invalid cap position: %s", c.Pos)
	}
	if c.StartMinute < 0 {
		return fmt.Errorf("cap start minute cannot be negative: %d", c.StartMinute)
	}
	if c.StopMinute < c.StartMinute {
		return fmt.Errorf("cap stop minute %d precedes start minute %d", c.StopMinute, c.StartMinute)
	}
	if c.Rating != nil && (*c.Rating < 0 || *c.Rating > 100) {
		return fmt.Errorf("cap rating must be within [0, 100]: %d", *c.Rating)
	}
	return nil
}

// IsStarting reports whether this cap belongs to the starting lineup.
func (c Cap) IsStarting() bool {
	return c.StartMinute == 0
}

// ActiveAt reports whether the stint covers the given minute. A cap
// running to the end of the match also covers the final minute itself,
// so querying exactly at match end still finds the closing roster.
func (c Cap) ActiveAt(minute, matchLength int) bool {
	if c.StopMinute >= matchLength {
		return c.StartMinute <= minute && minute <= matchLength
	}
	return c.StartMinute <= minute && minute < c.StopMinute
}

func (c Cap) statOwnerKey() string {
	return c.PlayerName
}
