package competition

import (
	"fmt"
	"sort"
	"strings"
)

// Format distinguishes a round-robin table from a knockout bracket.
type Format string

const (
	FormatLeague   Format = "league"
	FormatKnockout Format = "knockout"
)

// TableRow is one standings line. Points are derived from results and
// never written directly.
type TableRow struct {
	Club         string `json:"club"`
	Played       int    `json:"played"`
	Won          int    `json:"won"`
	Drawn        int    `json:"drawn"`
	Lost         int    `json:"lost"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	Points       int    `json:"points"`
}

func (r TableRow) GoalDifference() int {
	return r.GoalsFor - r.GoalsAgainst
}

// Competition is one entered tournament for a save season. The
// standings table is embedded wholesale with the row.
type Competition struct {
	ID     string
	TeamID string
	Name   string
	Season string
	Format Format
	Table  []TableRow
}

func (c Competition) Validate() error {
	if strings.TrimSpace(c.TeamID) == "" {
		return fmt.Errorf("competition team id is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("competition name is required")
	}
	if c.Format != FormatLeague && c.Format != FormatKnockout {
		return fmt.Errorf("invalid competition format: %s", c.Format)
	}
	return nil
}

// DeriveTable recomputes points from results and re-sorts the standings
// by points, then goal difference, then goals scored. Win three, draw
// one.
func DeriveTable(rows []TableRow) []TableRow {
	out := make([]TableRow, len(rows))
	copy(out, rows)
	for i := range out {
		out[i].Points = 3*out[i].Won + out[i].Drawn
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		if out[i].GoalDifference() != out[j].GoalDifference() {
			return out[i].GoalDifference() > out[j].GoalDifference()
		}
		return out[i].GoalsFor > out[j].GoalsFor
	})
	return out
}
