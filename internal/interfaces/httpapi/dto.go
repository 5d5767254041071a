package httpapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/gafferhq/gaffer/internal/domain/cap"
	"github.com/gafferhq/gaffer/internal/domain/competition"
	"github.com/gafferhq/gaffer/internal/domain/match"
	"github.com/gafferhq/gaffer/internal/domain/player"
	"github.com/gafferhq/gaffer/internal/domain/squad"
	"github.com/gafferhq/gaffer/internal/domain/team"
	"github.com/gafferhq/gaffer/internal/usecase"
)

// Save dates are calendar days; the API never carries a time of day.
const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, want YYYY-MM-DD", usecase.ErrInvalidInput, value)
	}
	return parsed, nil
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	parsed, err := parseDate(*value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	out := formatDate(*t)
	return &out
}

type teamDTO struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	StartedOn   string `json:"started_on"`
	CurrentlyOn string `json:"currently_on"`
	Currency    string `json:"currency"`
	Season      string `json:"season"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:          t.ID,
		UserID:      t.UserID,
		Name:        t.Name,
		StartedOn:   formatDate(t.StartedOn),
		CurrentlyOn: formatDate(t.CurrentlyOn),
		Currency:    t.Currency,
		Season:      t.SeasonLabel(t.CurrentlyOn),
	}
}

type contractDTO struct {
	ID               string  `json:"id"`
	SignedOn         *string `json:"signed_on,omitempty"`
	StartedOn        string  `json:"started_on"`
	EndedOn          string  `json:"ended_on"`
	Wage             int64   `json:"wage"`
	SigningBonus     int64   `json:"signing_bonus,omitempty"`
	ReleaseClause    int64   `json:"release_clause,omitempty"`
	PerformanceBonus int64   `json:"performance_bonus,omitempty"`
	BonusReq         string  `json:"bonus_req,omitempty"`
}

type injuryDTO struct {
	ID          string `json:"id"`
	StartedOn   string `json:"started_on"`
	EndedOn     string `json:"ended_on"`
	Description string `json:"description,omitempty"`
}

type loanDTO struct {
	ID          string  `json:"id"`
	SignedOn    *string `json:"signed_on,omitempty"`
	StartedOn   string  `json:"started_on"`
	EndedOn     string  `json:"ended_on"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	WagePct     int     `json:"wage_percentage,omitempty"`
}

type transferDTO struct {
	ID          string  `json:"id"`
	SignedOn    *string `json:"signed_on,omitempty"`
	MovedOn     string  `json:"moved_on"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Fee         int64   `json:"fee"`
	AddonClause int     `json:"addon_clause,omitempty"`
}

type playerDTO struct {
	ID           string            `json:"id"`
	TeamID       string            `json:"team_id"`
	Name         string            `json:"name"`
	Nationality  string            `json:"nationality,omitempty"`
	Pos          player.Position   `json:"pos"`
	SecondaryPos []player.Position `json:"secondary_pos,omitempty"`
	KitNo        *int              `json:"kit_no,omitempty"`
	OVR          int               `json:"ovr"`
	Value        int64             `json:"value"`
	BirthYear    int               `json:"birth_year,omitempty"`
	Status       player.Status     `json:"status"`
	Contracts    []contractDTO     `json:"contracts"`
	Injuries     []injuryDTO       `json:"injuries"`
	Loans        []loanDTO         `json:"loans"`
	Transfers    []transferDTO     `json:"transfers"`
}

func playerToDTO(p player.Player) playerDTO {
	contracts := make([]contractDTO, 0, len(p.Contracts))
	for _, c := range p.Contracts {
		contracts = append(contracts, contractDTO{
			ID:               c.ID,
			SignedOn:         formatOptionalDate(c.SignedOn),
			StartedOn:        formatDate(c.StartedOn),
			EndedOn:          formatDate(c.EndedOn),
			Wage:             c.Wage,
			SigningBonus:     c.SigningBonus,
			ReleaseClause:    c.ReleaseClause,
			PerformanceBonus: c.PerformanceBonus,
			BonusReq:         c.BonusReq,
		})
	}
	injuries := make([]injuryDTO, 0, len(p.Injuries))
	for _, i := range p.Injuries {
		injuries = append(injuries, injuryDTO{
			ID:          i.ID,
			StartedOn:   formatDate(i.StartedOn),
			EndedOn:     formatDate(i.EndedOn),
			Description: i.Description,
		})
	}
	loans := make([]loanDTO, 0, len(p.Loans))
	for _, l := range p.Loans {
		loans = append(loans, loanDTO{
			ID:          l.ID,
			SignedOn:    formatOptionalDate(l.SignedOn),
			StartedOn:   formatDate(l.StartedOn),
			EndedOn:     formatDate(l.EndedOn),
			Origin:      l.Origin,
			Destination: l.Destination,
			WagePct:     l.WagePct,
		})
	}
	transfers := make([]transferDTO, 0, len(p.Transfers))
	for _, t := range p.Transfers {
		transfers = append(transfers, transferDTO{
			ID:          t.ID,
			SignedOn:    formatOptionalDate(t.SignedOn),
			MovedOn:     formatDate(t.MovedOn),
			Origin:      t.Origin,
			Destination: t.Destination,
			Fee:         t.Fee,
			AddonClause: t.AddonClause,
		})
	}

	return playerDTO{
		ID:           p.ID,
		TeamID:       p.TeamID,
		Name:         p.Name,
		Nationality:  p.Nationality,
		Pos:          p.Pos,
		SecondaryPos: p.SecondaryPos,
		KitNo:        p.KitNo,
		OVR:          p.OVR,
		Value:        p.Value,
		BirthYear:    p.BirthYear,
		Status:       p.Status,
		Contracts:    contracts,
		Injuries:     injuries,
		Loans:        loans,
		Transfers:    transfers,
	}
}

type goalDTO struct {
	Minute       int     `json:"minute"`
	StoppageTime *int    `json:"stoppage_time,omitempty"`
	Scorer       string  `json:"scorer"`
	AssistedBy   *string `json:"assisted_by,omitempty"`
	Home         bool    `json:"home"`
	SetPiece     *string `json:"set_piece,omitempty"`
	OwnGoal      bool    `json:"own_goal"`
}

type bookingDTO struct {
	Minute       int    `json:"minute"`
	StoppageTime *int   `json:"stoppage_time,omitempty"`
	Player       string `json:"player"`
	Home         bool   `json:"home"`
	RedCard      bool   `json:"red_card"`
}

type slotDTO struct {
	Name string          `json:"name"`
	Pos  player.Position `json:"pos"`
}

type changeDTO struct {
	Minute       int     `json:"minute"`
	StoppageTime *int    `json:"stoppage_time,omitempty"`
	Injured      bool    `json:"injured"`
	Out          slotDTO `json:"out"`
	In           slotDTO `json:"in"`
}

type matchDTO struct {
	ID             string       `json:"id"`
	TeamID         string       `json:"team_id"`
	CompetitionID  string       `json:"competition_id,omitempty"`
	HomeTeam       string       `json:"home_team"`
	AwayTeam       string       `json:"away_team"`
	OccurredOn     string       `json:"occurred_on"`
	ExtraTime      bool         `json:"extra_time"`
	HomeScore      int          `json:"home_score"`
	AwayScore      int          `json:"away_score"`
	HomePenScore   *int         `json:"home_pen_score,omitempty"`
	AwayPenScore   *int         `json:"away_pen_score,omitempty"`
	HomePossession *int         `json:"home_possession,omitempty"`
	AwayPossession *int         `json:"away_possession,omitempty"`
	HomeXG         *float64     `json:"home_xg,omitempty"`
	AwayXG         *float64     `json:"away_xg,omitempty"`
	Attendance     *int         `json:"attendance,omitempty"`
	Goals          []goalDTO    `json:"goals"`
	Bookings       []bookingDTO `json:"bookings"`
	Changes        []changeDTO  `json:"changes"`
}

func matchToDTO(m match.Match) matchDTO {
	goals := make([]goalDTO, 0, len(m.Goals))
	for _, g := range m.Goals {
		var setPiece *string
		if g.SetPiece != nil {
			value := string(*g.SetPiece)
			setPiece = &value
		}
		goals = append(goals, goalDTO{
			Minute:       g.Minute,
			StoppageTime: g.StoppageTime,
			Scorer:       g.Scorer,
			AssistedBy:   g.AssistedBy,
			Home:         g.Home,
			SetPiece:     setPiece,
			OwnGoal:      g.OwnGoal,
		})
	}
	bookings := make([]bookingDTO, 0, len(m.Bookings))
	for _, b := range m.Bookings {
		bookings = append(bookings, bookingDTO{
			Minute:       b.Minute,
			StoppageTime: b.StoppageTime,
			Player:       b.Player,
			Home:         b.Home,
			RedCard:      b.RedCard,
		})
	}
	changes := make([]changeDTO, 0, len(m.Changes))
	for _, c := range m.Changes {
		changes = append(changes, changeDTO{
			Minute:       c.Minute,
			StoppageTime: c.StoppageTime,
			Injured:      c.Injured,
			Out:          slotDTO{Name: c.Out.Name, Pos: c.Out.Pos},
			In:           slotDTO{Name: c.In.Name, Pos: c.In.Pos},
		})
	}

	return matchDTO{
		ID:             m.ID,
		TeamID:         m.TeamID,
		CompetitionID:  m.CompetitionID,
		HomeTeam:       m.HomeTeam,
		AwayTeam:       m.AwayTeam,
		OccurredOn:     formatDate(m.OccurredOn),
		ExtraTime:      m.ExtraTime,
		HomeScore:      m.HomeScore,
		AwayScore:      m.AwayScore,
		HomePenScore:   m.HomePenScore,
		AwayPenScore:   m.AwayPenScore,
		HomePossession: m.HomePossession,
		AwayPossession: m.AwayPossession,
		HomeXG:         m.HomeXG,
		AwayXG:         m.AwayXG,
		Attendance:     m.Attendance,
		Goals:          goals,
		Bookings:       bookings,
		Changes:        changes,
	}
}

type capDTO struct {
	ID             string          `json:"id"`
	MatchID        string          `json:"match_id"`
	PlayerID       string          `json:"player_id,omitempty"`
	PlayerName     string          `json:"player_name"`
	Pos            player.Position `json:"pos"`
	StartMinute    int             `json:"start_minute"`
	StopMinute     int             `json:"stop_minute"`
	KitNo          *int            `json:"kit_no,omitempty"`
	OVR            int             `json:"ovr"`
	NumGoals       int             `json:"num_goals"`
	NumOwnGoals    int             `json:"num_own_goals"`
	NumAssists     int             `json:"num_assists"`
	NumYellowCards int             `json:"num_yellow_cards"`
	NumRedCards    int             `json:"num_red_cards"`
	CleanSheet     bool            `json:"clean_sheet"`
	Rating         *int            `json:"rating,omitempty"`
}

func capToDTO(c cap.Cap) capDTO {
	return capDTO{
		ID:             c.ID,
		MatchID:        c.MatchID,
		PlayerID:       c.PlayerID,
		PlayerName:     c.PlayerName,
		Pos:            c.Pos,
		StartMinute:    c.StartMinute,
		StopMinute:     c.StopMinute,
		KitNo:          c.KitNo,
		OVR:            c.OVR,
		NumGoals:       c.NumGoals,
		NumOwnGoals:    c.NumOwnGoals,
		NumAssists:     c.NumAssists,
		NumYellowCards: c.NumYellowCards,
		NumRedCards:    c.NumRedCards,
		CleanSheet:     c.CleanSheet,
		Rating:         c.Rating,
	}
}

type matchSessionDTO struct {
	Match      matchDTO `json:"match"`
	Caps       []capDTO `json:"caps"`
	ClubIsHome bool     `json:"club_is_home"`
}

func sessionToDTO(session usecase.MatchSession) matchSessionDTO {
	caps := make([]capDTO, 0, len(session.Caps))
	for _, c := range session.Caps {
		caps = append(caps, capToDTO(c))
	}
	return matchSessionDTO{
		Match:      matchToDTO(session.Match),
		Caps:       caps,
		ClubIsHome: session.ClubIsHome(),
	}
}

type tableRowDTO struct {
	Club         string `json:"club"`
	Played       int    `json:"played"`
	Won          int    `json:"won"`
	Drawn        int    `json:"drawn"`
	Lost         int    `json:"lost"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	GoalDiff     int    `json:"goal_difference"`
	Points       int    `json:"points"`
}

type competitionDTO struct {
	ID     string        `json:"id"`
	TeamID string        `json:"team_id"`
	Name   string        `json:"name"`
	Season string        `json:"season"`
	Format string        `json:"format"`
	Table  []tableRowDTO `json:"table"`
}

func competitionToDTO(c competition.Competition) competitionDTO {
	rows := make([]tableRowDTO, 0, len(c.Table))
	for _, row := range c.Table {
		rows = append(rows, tableRowDTO{
			Club:         row.Club,
			Played:       row.Played,
			Won:          row.Won,
			Drawn:        row.Drawn,
			Lost:         row.Lost,
			GoalsFor:     row.GoalsFor,
			GoalsAgainst: row.GoalsAgainst,
			GoalDiff:     row.GoalDifference(),
			Points:       row.Points,
		})
	}
	return competitionDTO{
		ID:     c.ID,
		TeamID: c.TeamID,
		Name:   c.Name,
		Season: c.Season,
		Format: string(c.Format),
		Table:  rows,
	}
}

type squadDTO struct {
	ID        string   `json:"id"`
	TeamID    string   `json:"team_id"`
	Name      string   `json:"name"`
	PlayerIDs []string `json:"player_ids"`
}

func squadToDTO(s squad.Squad) squadDTO {
	ids := s.PlayerIDs
	if ids == nil {
		ids = []string{}
	}
	return squadDTO{
		ID:        s.ID,
		TeamID:    s.TeamID,
		Name:      s.Name,
		PlayerIDs: ids,
	}
}
