package match

import (
	"fmt"
	"strings"
	"time"

	"github.com/gafferhq/gaffer/internal/domain/player"
)

// RegulationLength and ExtraTimeLength are match lengths in minutes.
const (
	RegulationLength = 90
	ExtraTimeLength  = 120
)

// SetPiece classifies how a goal came about, when recorded.
type SetPiece string

const (
	SetPiecePenalty  SetPiece = "penalty"
	SetPieceFreeKick SetPiece = "free_kick"
	SetPieceCorner   SetPiece = "corner"
)

// Goal is one scored goal. Home is the side credited before the
// own-goal flip is applied.
type Goal struct {
	Minute       int       `json:"minute"`
	StoppageTime *int      `json:"stoppage_time,omitempty"`
	Scorer       string    `json:"scorer"`
	AssistedBy   *string   `json:"assisted_by,omitempty"`
	Home         bool      `json:"home"`
	SetPiece     *SetPiece `json:"set_piece,omitempty"`
	OwnGoal      bool      `json:"own_goal"`
}

// Booking is a caution or dismissal.
type Booking struct {
	Minute       int    `json:"minute"`
	StoppageTime *int   `json:"stoppage_time,omitempty"`
	Player       string `json:"player"`
	Home         bool   `json:"home"`
	RedCard      bool   `json:"red_card"`
}

// Slot names a player at a position, used by substitution events.
type Slot struct {
	Name string          `json:"name"`
	Pos  player.Position `json:"pos"`
}

// Change is a substitution: Out leaves the pitch, In comes on.
type Change struct {
	Minute       int  `json:"minute"`
	StoppageTime *int `json:"stoppage_time,omitempty"`
	Injured      bool `json:"injured"`
	Out          Slot `json:"out"`
	In           Slot `json:"in"`
}

// Match is one recorded fixture with its embedded event sequences.
// HomeScore and AwayScore are derived from Goals and never hand-edited;
// the penalty shootout fields are independent of regulation score.
type Match struct {
	ID             string
	TeamID         string
	CompetitionID  string
	HomeTeam       string
	AwayTeam       string
	OccurredOn     time.Time
	ExtraTime      bool
	HomeScore      int
	AwayScore      int
	HomePenScore   *int
	AwayPenScore   *int
	HomePossession *int
	AwayPossession *int
	HomeXG         *float64
	AwayXG         *float64
	Attendance     *int
	Goals          []Goal
	Bookings       []Booking
	Changes        []Change
}

// Length is the final minute of the match.
func (m Match) Length() int {
	if m.ExtraTime {
		return ExtraTimeLength
	}
	return RegulationLength
}

// IsHome reports whether the given club is the home side.
func (m Match) IsHome(club string) bool {
	return m.HomeTeam == club
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.TeamID) == "" {
		return fmt.Errorf("match team id is required")
	}
	if strings.TrimSpace(m.HomeTeam) == "" || strings.TrimSpace(m.AwayTeam) == "" {
		return fmt.Errorf("match home and away teams are required")
	}
	if m.OccurredOn.IsZero() {
		return fmt.Errorf("match date is required")
	}
	return nil
}

// RecomputeScore derives the regulation score from the goal list. An
// own goal credits the opposing side, so a goal counts for the home
// side exactly when home != own_goal.
func RecomputeScore(goals []Goal) (homeScore, awayScore int) {
	for _, g := range goals {
		if g.Home != g.OwnGoal {
			homeScore++
		}
	}
	return homeScore, len(goals) - homeScore
}
