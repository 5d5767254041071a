package player

import (
	"fmt"
	"strings"
	"time"
)

// Position is a pitch position code as shown on the squad screen.
type Position string

const (
	PositionGK  Position = "GK"
	PositionSW  Position = "SW"
	PositionRB  Position = "RB"
	PositionRWB Position = "RWB"
	PositionCB  Position = "CB"
	PositionLB  Position = "LB"
	PositionLWB Position = "LWB"
	PositionDM  Position = "DM"
	PositionRM  Position = "RM"
	PositionCM  Position = "CM"
	PositionLM  Position = "LM"
	PositionAM  Position = "AM"
	PositionRW  Position = "RW"
	PositionLW  Position = "LW"
	PositionSS  Position = "SS"
	PositionCF  Position = "CF"
	PositionST  Position = "ST"
)

// AllPositions runs goalkeeper to striker; the order doubles as the
// display order for lineup grids.
var AllPositions = []Position{
	PositionGK, PositionSW, PositionRB, PositionRWB, PositionCB,
	PositionLB, PositionLWB, PositionDM, PositionRM, PositionCM,
	PositionLM, PositionAM, PositionRW, PositionLW, PositionSS,
	PositionCF, PositionST,
}

var positionSet = func() map[Position]struct{} {
	out := make(map[Position]struct{}, len(AllPositions))
	for _, pos := range AllPositions {
		out[pos] = struct{}{}
	}
	return out
}()

func IsValidPosition(pos Position) bool {
	_, ok := positionSet[pos]
	return ok
}

// Status is the derived lifecycle state. The zero value means the
// player has no signed contract covering the reference date.
type Status string

const (
	StatusNone    Status = ""
	StatusPending Status = "Pending"
	StatusActive  Status = "Active"
	StatusInjured Status = "Injured"
	StatusLoaned  Status = "Loaned"
)

// Contract is one employment term. SignedOn nil means a drafted but
// unsigned contract, which never governs status.
type Contract struct {
	ID               string     `json:"id"`
	SignedOn         *time.Time `json:"signed_on"`
	StartedOn        time.Time  `json:"started_on"`
	EndedOn          time.Time  `json:"ended_on"`
	Wage             int64      `json:"wage"`
	SigningBonus     int64      `json:"signing_bonus,omitempty"`
	ReleaseClause    int64      `json:"release_clause,omitempty"`
	PerformanceBonus int64      `json:"performance_bonus,omitempty"`
	BonusReq         string     `json:"bonus_req,omitempty"`
}

// Injury is a recovery window; the player is unavailable inside it.
type Injury struct {
	ID          string    `json:"id"`
	StartedOn   time.Time `json:"started_on"`
	EndedOn     time.Time `json:"ended_on"`
	Description string    `json:"description,omitempty"`
}

// Loan is a spell at another club. Origin equal to the owning club
// means the player went out on loan.
type Loan struct {
	ID          string     `json:"id"`
	SignedOn    *time.Time `json:"signed_on"`
	StartedOn   time.Time  `json:"started_on"`
	EndedOn     time.Time  `json:"ended_on"`
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	WagePct     int        `json:"wage_percentage,omitempty"`
}

// Transfer is a permanent move between clubs.
type Transfer struct {
	ID          string     `json:"id"`
	SignedOn    *time.Time `json:"signed_on"`
	MovedOn     time.Time  `json:"moved_on"`
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	Fee         int64      `json:"fee"`
	AddonClause int        `json:"addon_clause,omitempty"`
}

// Player is one roster member of a save. The lifecycle event sequences
// are embedded chronologically; Status is stored redundantly for
// filtering and must always match what ResolveStatus computes for the
// team's current date.
type Player struct {
	ID           string
	TeamID       string
	Name         string
	Nationality  string
	Pos          Position
	SecondaryPos []Position
	KitNo        *int
	OVR          int
	Value        int64
	BirthYear    int
	Status       Status
	Contracts    []Contract
	Injuries     []Injury
	Loans        []Loan
	Transfers    []Transfer
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.TeamID) == "" {
		return fmt.Errorf("player team id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if !IsValidPosition(p.Pos) {
		return fmt.Errorf("invalid player position: %s", p.Pos)
	}
	if p.OVR < 0 || p.OVR > 100 {
		return fmt.Errorf("player ovr must be within [0, 100]: %d", p.OVR)
	}
	for _, pos := range p.SecondaryPos {
		if !IsValidPosition(pos) {
			return fmt.Errorf("invalid secondary position: %s", pos)
		}
	}
	if p.KitNo != nil && (*p.KitNo < 1 || *p.KitNo > 99) {
		return fmt.Errorf("kit number must be within [1, 99]: %d", *p.KitNo)
	}
	return nil
}
