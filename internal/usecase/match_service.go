package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/gafferhq/gaffer/internal/domain/cap"
	"github.com/gafferhq/gaffer/internal/domain/match"
	"github.com/gafferhq/gaffer/internal/domain/player"
	"github.com/gafferhq/gaffer/internal/domain/team"
	"github.com/gafferhq/gaffer/internal/platform/id"
	"github.com/gafferhq/gaffer/internal/platform/logging"
)

const capPersistWorkers = 4

// MatchService owns the match event ledger and the cap set derived from
// it. Every mutation names its match explicitly; there is no ambient
// "current match" anywhere in the service.
type MatchService struct {
	teamRepo   team.Repository
	matchRepo  match.Repository
	capRepo    cap.Repository
	playerRepo player.Repository
	ids        id.Generator
	logger     *logging.Logger
}

func NewMatchService(teamRepo team.Repository, matchRepo match.Repository, capRepo cap.Repository, playerRepo player.Repository, ids id.Generator, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
		capRepo:    capRepo,
		playerRepo: playerRepo,
		ids:        ids,
		logger:     logger,
	}
}

// MatchSession bundles a match with the save it belongs to and its full
// cap set, loaded together so reads and projections share one snapshot.
type MatchSession struct {
	Team  team.Team
	Match match.Match
	Caps  []cap.Cap
}

// ClubIsHome reports which side of the fixture the save's club plays.
func (s MatchSession) ClubIsHome() bool {
	return s.Match.IsHome(s.Team.Name)
}

func (s *MatchService) Create(ctx context.Context, m match.Match) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	m.TeamID = strings.TrimSpace(m.TeamID)
	m.HomeTeam = strings.TrimSpace(m.HomeTeam)
	m.AwayTeam = strings.TrimSpace(m.AwayTeam)
	if err := m.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, m.TeamID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: team=%s", ErrNotFound, m.TeamID)
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}
	m.ID = newID
	m.HomeScore, m.AwayScore = match.RecomputeScore(m.Goals)

	created, err := s.matchRepo.Create(ctx, m)
	if err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}
	return created, nil
}

// GetSession loads the match together with its save and cap set.
func (s *MatchService) GetSession(ctx context.Context, matchID string) (MatchSession, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetSession")
	defer span.End()

	return s.loadSession(ctx, matchID)
}

func (s *MatchService) GetByID(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetByID")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match_id is required", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return m, nil
}

func (s *MatchService) ListByTeam(ctx context.Context, teamID string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}

	items, err := s.matchRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list matches by team: %w", err)
	}
	return items, nil
}

func (s *MatchService) ListByTeamBetween(ctx context.Context, teamID string, from, to time.Time) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByTeamBetween")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}
	if from.After(to) {
		return nil, fmt.Errorf("%w: date range is inverted", ErrInvalidInput)
	}

	items, err := s.matchRepo.ListByTeamBetween(ctx, teamID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list matches by team between: %w", err)
	}
	return items, nil
}

type UpdateMatchInput struct {
	CompetitionID  *string
	HomeTeam       *string
	AwayTeam       *string
	OccurredOn     *time.Time
	ExtraTime      *bool
	HomePenScore   *int
	AwayPenScore   *int
	HomePossession *int
	AwayPossession *int
	HomeXG         *float64
	AwayXG         *float64
	Attendance     *int
}

func (s *MatchService) Update(ctx context.Context, matchID string, input UpdateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update")
	defer span.End()

	session, err := s.loadSession(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	m := session.Match

	if input.CompetitionID != nil {
		m.CompetitionID = strings.TrimSpace(*input.CompetitionID)
	}
	if input.HomeTeam != nil {
		m.HomeTeam = strings.TrimSpace(*input.HomeTeam)
	}
	if input.AwayTeam != nil {
		m.AwayTeam = strings.TrimSpace(*input.AwayTeam)
	}
	if input.OccurredOn != nil {
		m.OccurredOn = *input.OccurredOn
	}
	if input.ExtraTime != nil {
		m.ExtraTime = *input.ExtraTime
	}
	if input.HomePenScore != nil {
		m.HomePenScore = input.HomePenScore
	}
	if input.AwayPenScore != nil {
		m.AwayPenScore = input.AwayPenScore
	}
	if input.HomePossession != nil {
		m.HomePossession = input.HomePossession
	}
	if input.AwayPossession != nil {
		m.AwayPossession = input.AwayPossession
	}
	if input.HomeXG != nil {
		m.HomeXG = input.HomeXG
	}
	if input.AwayXG != nil {
		m.AwayXG = input.AwayXG
	}
	if input.Attendance != nil {
		m.Attendance = input.Attendance
	}
	if err := m.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	m.HomeScore, m.AwayScore = match.RecomputeScore(m.Goals)
	if err := s.matchRepo.Update(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}

	// Flipping home/away or extra time shifts which goals count for the
	// club and how far caps run, so stats are rederived.
	session.Match = m
	if err := s.recomputeAndPersistStats(ctx, session); err != nil {
		return match.Match{}, err
	}
	return m, nil
}

func (s *MatchService) Delete(ctx context.Context, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	m, err := s.GetByID(ctx, matchID)
	if err != nil {
		return err
	}

	caps, err := s.capRepo.ListByMatch(ctx, m.ID)
	if err != nil {
		return fmt.Errorf("list caps for match delete: %w", err)
	}
	workers := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(capPersistWorkers)
	for _, c := range caps {
		c := c
		workers.Go(func(ctx context.Context) error {
			return s.capRepo.Delete(ctx, c.ID)
		})
	}
	if err := workers.Wait(); err != nil {
		return fmt.Errorf("delete caps for match: %w", err)
	}

	if err := s.matchRepo.Delete(ctx, m.ID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	return nil
}

func (s *MatchService) AddGoal(ctx context.Context, matchID string, g match.Goal) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.AddGoal")
	defer span.End()

	return s.mutateGoals(ctx, matchID, func(m *match.Match) error {
		if err := validateGoal(g, m.ExtraTime); err != nil {
			return err
		}
		m.Goals = append(m.Goals, g)
		return nil
	})
}

func (s *MatchService) UpdateGoal(ctx context.Context, matchID string, index int, g match.Goal) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateGoal")
	defer span.End()

	return s.mutateGoals(ctx, matchID, func(m *match.Match) error {
		if index < 0 || index >= len(m.Goals) {
			return fmt.Errorf("%w: goal index %d", ErrNotFound, index)
		}
		if err := validateGoal(g, m.ExtraTime); err != nil {
			return err
		}
		m.Goals[index] = g
		return nil
	})
}

func (s *MatchService) RemoveGoal(ctx context.Context, matchID string, index int) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RemoveGoal")
	defer span.End()

	return s.mutateGoals(ctx, matchID, func(m *match.Match) error {
		if index < 0 || index >= len(m.Goals) {
			return fmt.Errorf("%w: goal index %d", ErrNotFound, index)
		}
		m.Goals = append(m.Goals[:index], m.Goals[index+1:]...)
		return nil
	})
}

func (s *MatchService) AddBooking(ctx context.Context, matchID string, b match.Booking) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.AddBooking")
	defer span.End()

	return s.mutateBookings(ctx, matchID, func(m *match.Match) error {
		if err := validateBooking(b, m.ExtraTime); err != nil {
			return err
		}
		m.Bookings = append(m.Bookings, b)
		return nil
	})
}

func (s *MatchService) UpdateBooking(ctx context.Context, matchID string, index int, b match.Booking) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateBooking")
	defer span.End()

	return s.mutateBookings(ctx, matchID, func(m *match.Match) error {
		if index < 0 || index >= len(m.Bookings) {
			return fmt.Errorf("%w: booking index %d", ErrNotFound, index)
		}
		if err := validateBooking(b, m.ExtraTime); err != nil {
			return err
		}
		m.Bookings[index] = b
		return nil
	})
}

func (s *MatchService) RemoveBooking(ctx context.Context, matchID string, index int) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RemoveBooking")
	defer span.End()

	return s.mutateBookings(ctx, matchID, func(m *match.Match) error {
		if index < 0 || index >= len(m.Bookings) {
			return fmt.Errorf("%w: booking index %d", ErrNotFound, index)
		}
		m.Bookings = append(m.Bookings[:index], m.Bookings[index+1:]...)
		return nil
	})
}

func (s *MatchService) AddChange(ctx context.Context, matchID string, change match.Change) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.AddChange")
	defer span.End()

	return s.mutateChanges(ctx, matchID, func(m *match.Match) error {
		if err := validateChange(change, m.ExtraTime); err != nil {
			return err
		}
		m.Changes = append(m.Changes, change)
		return nil
	})
}

func (s *MatchService) UpdateChange(ctx context.Context, matchID string, index int, change match.Change) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateChange")
	defer span.End()

	return s.mutateChanges(ctx, matchID, func(m *match.Match) error {
		if index < 0 || index >= len(m.Changes) {
			return fmt.Errorf("%w: change index %d", ErrNotFound, index)
		}
		if err := validateChange(change, m.ExtraTime); err != nil {
			return err
		}
		m.Changes[index] = change
		return nil
	})
}

func (s *MatchService) RemoveChange(ctx context.Context, matchID string, index int) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RemoveChange")
	defer span.End()

	return s.mutateChanges(ctx, matchID, func(m *match.Match) error {
		if index < 0 || index >= len(m.Changes) {
			return fmt.Errorf("%w: change index %d", ErrNotFound, index)
		}
		m.Changes = append(m.Changes[:index], m.Changes[index+1:]...)
		return nil
	})
}

// SetStartingLineup replaces the match's cap set with eleven minute-zero
// caps, one per assigned position. Any previously recorded caps for the
// match are discarded.
func (s *MatchService) SetStartingLineup(ctx context.Context, matchID string, lineup map[player.Position]string) ([]cap.Cap, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.SetStartingLineup")
	defer span.End()

	session, err := s.loadSession(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if len(lineup) != 11 {
		return nil, fmt.Errorf("%w: a starting lineup needs 11 positions, got %d", ErrInvalidInput, len(lineup))
	}

	seen := make(map[string]player.Position, len(lineup))
	caps := make([]cap.Cap, 0, len(lineup))
	for pos, playerID := range lineup {
		if !player.IsValidPosition(pos) {
			return nil, fmt.Errorf("%w: invalid lineup position %s", ErrInvalidInput, pos)
		}
		if prev, dup := seen[playerID]; dup {
			return nil, fmt.Errorf("%w: player %s assigned to both %s and %s", ErrInvalidInput, playerID, prev, pos)
		}
		seen[playerID] = pos

		p, exists, err := s.playerRepo.GetByID(ctx, playerID)
		if err != nil {
			return nil, fmt.Errorf("get lineup player: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}
		if p.TeamID != session.Team.ID {
			return nil, fmt.Errorf("%w: player %s does not belong to team %s", ErrInvalidInput, playerID, session.Team.ID)
		}

		newID, err := s.ids.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate cap id: %w", err)
		}
		caps = append(caps, cap.Cap{
			ID:          newID,
			MatchID:     session.Match.ID,
			PlayerID:    p.ID,
			PlayerName:  p.Name,
			Pos:         pos,
			StartMinute: 0,
			StopMinute:  session.Match.Length(),
			KitNo:       p.KitNo,
			OVR:         p.OVR,
		})
	}

	for _, existing := range session.Caps {
		if err := s.capRepo.Delete(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("clear previous lineup: %w", err)
		}
	}

	caps = cap.RecomputeStats(caps, session.Match, session.ClubIsHome())
	created := make([]cap.Cap, 0, len(caps))
	for _, c := range caps {
		saved, err := s.capRepo.Create(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("create lineup cap: %w", err)
		}
		created = append(created, saved)
	}
	return created, nil
}

// ApplyFormation records the substitution events needed to move from the
// roster on the pitch at the given minute to the desired assignment, then
// rebuilds the cap set from the updated change list.
func (s *MatchService) ApplyFormation(ctx context.Context, matchID string, desired map[player.Position]string, minute int, stoppage *int) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ApplyFormation")
	defer span.End()

	session, err := s.loadSession(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	m := session.Match

	if len(desired) != 11 {
		return match.Match{}, fmt.Errorf("%w: a formation needs 11 positions, got %d", ErrInvalidInput, len(desired))
	}
	if err := match.ValidateEventTime(minute, stoppage, m.ExtraTime); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// The desired assignment names players by ID; events record names.
	byName := make(map[player.Position]string, len(desired))
	for pos, playerID := range desired {
		p, exists, err := s.playerRepo.GetByID(ctx, playerID)
		if err != nil {
			return match.Match{}, fmt.Errorf("get formation player: %w", err)
		}
		if !exists {
			return match.Match{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}
		byName[pos] = p.Name
	}

	starting := startingCaps(session.Caps)
	current := cap.Project(starting, m.Changes, m.Length(), minute)
	changes, err := cap.ResolveFormationChanges(byName, minute, stoppage, current)
	if err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(changes) == 0 {
		return m, nil
	}

	m.Changes = append(m.Changes, changes...)
	if err := s.matchRepo.Update(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("update match changes: %w", err)
	}

	session.Match = m
	if err := s.rebuildAndPersistCaps(ctx, session); err != nil {
		return match.Match{}, err
	}
	return m, nil
}

// RateCap stores a post-match performance mark on a single cap.
func (s *MatchService) RateCap(ctx context.Context, capID string, rating int) (cap.Cap, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RateCap")
	defer span.End()

	capID = strings.TrimSpace(capID)
	if capID == "" {
		return cap.Cap{}, fmt.Errorf("%w: cap_id is required", ErrInvalidInput)
	}
	if rating < 0 || rating > 100 {
		return cap.Cap{}, fmt.Errorf("%w: rating must be within [0, 100]", ErrInvalidInput)
	}

	c, exists, err := s.capRepo.GetByID(ctx, capID)
	if err != nil {
		return cap.Cap{}, fmt.Errorf("get cap by id: %w", err)
	}
	if !exists {
		return cap.Cap{}, fmt.Errorf("%w: cap=%s", ErrNotFound, capID)
	}

	c.Rating = &rating
	if err := s.capRepo.Update(ctx, c); err != nil {
		return cap.Cap{}, fmt.Errorf("update cap rating: %w", err)
	}
	return c, nil
}

func (s *MatchService) loadSession(ctx context.Context, matchID string) (MatchSession, error) {
	m, err := s.GetByID(ctx, matchID)
	if err != nil {
		return MatchSession{}, err
	}

	save, exists, err := s.teamRepo.GetByID(ctx, m.TeamID)
	if err != nil {
		return MatchSession{}, fmt.Errorf("get team for match: %w", err)
	}
	if !exists {
		return MatchSession{}, fmt.Errorf("%w: team=%s", ErrNotFound, m.TeamID)
	}

	caps, err := s.capRepo.ListByMatch(ctx, m.ID)
	if err != nil {
		return MatchSession{}, fmt.Errorf("list caps for match: %w", err)
	}

	return MatchSession{Team: save, Match: m, Caps: caps}, nil
}

func (s *MatchService) mutateGoals(ctx context.Context, matchID string, apply func(*match.Match) error) (match.Match, error) {
	return s.mutateEvents(ctx, matchID, apply, false)
}

func (s *MatchService) mutateBookings(ctx context.Context, matchID string, apply func(*match.Match) error) (match.Match, error) {
	return s.mutateEvents(ctx, matchID, apply, false)
}

func (s *MatchService) mutateChanges(ctx context.Context, matchID string, apply func(*match.Match) error) (match.Match, error) {
	return s.mutateEvents(ctx, matchID, apply, true)
}

// mutateEvents applies an edit to the match's event sequences, rederives
// the score, persists the match, and brings the cap set back in line:
// substitution edits force a full rebuild, goal and booking edits only
// need the statistics recomputed.
func (s *MatchService) mutateEvents(ctx context.Context, matchID string, apply func(*match.Match) error, rebuildCaps bool) (match.Match, error) {
	session, err := s.loadSession(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	m := session.Match

	if err := apply(&m); err != nil {
		if strings.Contains(err.Error(), ErrNotFound.Error()) {
			return match.Match{}, err
		}
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	m.HomeScore, m.AwayScore = match.RecomputeScore(m.Goals)
	if err := s.matchRepo.Update(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}

	session.Match = m
	if rebuildCaps {
		err = s.rebuildAndPersistCaps(ctx, session)
	} else {
		err = s.recomputeAndPersistStats(ctx, session)
	}
	if err != nil {
		return match.Match{}, err
	}
	return m, nil
}

// recomputeAndPersistStats rederives every cap's statistics from the
// event ledger and writes each cap back independently.
func (s *MatchService) recomputeAndPersistStats(ctx context.Context, session MatchSession) error {
	if len(session.Caps) == 0 {
		return nil
	}
	updated := cap.RecomputeStats(session.Caps, session.Match, session.ClubIsHome())

	workers := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(capPersistWorkers)
	for _, c := range updated {
		c := c
		workers.Go(func(ctx context.Context) error {
			if err := s.capRepo.Update(ctx, c); err != nil {
				return fmt.Errorf("update cap %s: %w", c.ID, err)
			}
			return nil
		})
	}
	if err := workers.Wait(); err != nil {
		return fmt.Errorf("persist cap stats: %w", err)
	}
	return nil
}

// rebuildAndPersistCaps discards every substitute cap and replays the
// change list against the retained starting caps, then persists the
// rebuilt set.
func (s *MatchService) rebuildAndPersistCaps(ctx context.Context, session MatchSession) error {
	if len(startingCaps(session.Caps)) == 0 {
		return nil
	}

	roster, err := s.playerRepo.ListByTeam(ctx, session.Team.ID)
	if err != nil {
		return fmt.Errorf("list roster for cap rebuild: %w", err)
	}
	byName := make(map[string]player.Player, len(roster))
	for _, p := range roster {
		byName[p.Name] = p
	}
	meta := func(name string) (cap.PlayerMeta, bool) {
		p, ok := byName[name]
		if !ok {
			return cap.PlayerMeta{}, false
		}
		return cap.PlayerMeta{PlayerID: p.ID, KitNo: p.KitNo, OVR: p.OVR}, true
	}

	rebuilt := cap.RebuildFromChanges(session.Match, session.Caps, meta)
	rebuilt = cap.RecomputeStats(rebuilt, session.Match, session.ClubIsHome())

	if err := s.capRepo.DeleteSubstituteCaps(ctx, session.Match.ID); err != nil {
		return fmt.Errorf("delete substitute caps: %w", err)
	}

	workers := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(capPersistWorkers)
	for _, c := range rebuilt {
		c := c
		workers.Go(func(ctx context.Context) error {
			if c.ID != "" {
				if err := s.capRepo.Update(ctx, c); err != nil {
					return fmt.Errorf("update cap %s: %w", c.ID, err)
				}
				return nil
			}
			newID, err := s.ids.NewID()
			if err != nil {
				return fmt.Errorf("generate cap id: %w", err)
			}
			c.ID = newID
			if _, err := s.capRepo.Create(ctx, c); err != nil {
				return fmt.Errorf("create cap for %s: %w", c.PlayerName, err)
			}
			return nil
		})
	}
	if err := workers.Wait(); err != nil {
		return fmt.Errorf("persist rebuilt caps: %w", err)
	}
	return nil
}

func startingCaps(caps []cap.Cap) []cap.Cap {
	out := make([]cap.Cap, 0, len(caps))
	for _, c := range caps {
		if c.IsStarting() {
			out = append(out, c)
		}
	}
	return out
}

func validateGoal(g match.Goal, extraTime bool) error {
	if err := match.ValidateEventTime(g.Minute, g.StoppageTime, extraTime); err != nil {
		return err
	}
	if strings.TrimSpace(g.Scorer) == "" {
		return fmt.Errorf("goal scorer is required")
	}
	if g.OwnGoal && g.AssistedBy != nil {
		return fmt.Errorf("an own goal cannot carry an assist")
	}
	return nil
}

func validateBooking(b match.Booking, extraTime bool) error {
	if err := match.ValidateEventTime(b.Minute, b.StoppageTime, extraTime); err != nil {
		return err
	}
	if strings.TrimSpace(b.Player) == "" {
		return fmt.Errorf("booked player is required")
	}
	return nil
}

func validateChange(change match.Change, extraTime bool) error {
	if err := match.ValidateEventTime(change.Minute, change.StoppageTime, extraTime); err != nil {
		return err
	}
	if strings.TrimSpace(change.Out.Name) == "" || strings.TrimSpace(change.In.Name) == "" {
		return fmt.Errorf("substitution needs both players")
	}
	if !player.IsValidPosition(change.In.Pos) {
		return fmt.Errorf("invalid incoming position: %s", change.In.Pos)
	}
	return nil
}
