package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/gafferhq/gaffer/internal/domain/player"
	"github.com/gafferhq/gaffer/internal/domain/team"
	"github.com/gafferhq/gaffer/internal/platform/cache"
	"github.com/gafferhq/gaffer/internal/platform/id"
	"github.com/gafferhq/gaffer/internal/platform/logging"
)

const advanceDateMaxWorkers = 8

type TeamService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	ids        id.Generator
	cache      *cache.Store
	logger     *logging.Logger
}

func NewTeamService(teamRepo team.Repository, playerRepo player.Repository, ids id.Generator, store *cache.Store, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		ids:        ids,
		cache:      store,
		logger:     logger,
	}
}

type CreateTeamInput struct {
	UserID    string
	Name      string
	StartedOn time.Time
	Currency  string
}

func (s *TeamService) Create(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	item := team.Team{
		UserID:      strings.TrimSpace(input.UserID),
		Name:        strings.TrimSpace(input.Name),
		StartedOn:   input.StartedOn,
		CurrentlyOn: input.StartedOn,
		Currency:    strings.TrimSpace(input.Currency),
	}
	if item.Currency == "" {
		item.Currency = "EUR"
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}
	item.ID = newID

	created, err := s.teamRepo.Create(ctx, item)
	if err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}
	return created, nil
}

func (s *TeamService) GetByID(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetByID")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}

	loader := func(ctx context.Context) (any, error) {
		item, exists, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("get team by id: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
		return item, nil
	}

	if s.cache == nil {
		value, err := loader(ctx)
		if err != nil {
			return team.Team{}, err
		}
		return value.(team.Team), nil
	}

	value, err := s.cache.GetOrLoad(ctx, teamCacheKey(teamID), loader)
	if err != nil {
		return team.Team{}, err
	}
	return value.(team.Team), nil
}

func (s *TeamService) ListByUser(ctx context.Context, userID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListByUser")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	items, err := s.teamRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list teams by user: %w", err)
	}
	return items, nil
}

type UpdateTeamInput struct {
	Name     string
	Currency string
}

func (s *TeamService) Update(ctx context.Context, teamID string, input UpdateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update")
	defer span.End()

	item, err := s.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		item.Name = name
	}
	if currency := strings.TrimSpace(input.Currency); currency != "" {
		item.Currency = currency
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Update(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}
	s.invalidate(ctx, item.ID)
	return item, nil
}

func (s *TeamService) Delete(ctx context.Context, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete")
	defer span.End()

	item, err := s.GetByID(ctx, teamID)
	if err != nil {
		return err
	}

	if err := s.teamRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	s.invalidate(ctx, item.ID)
	return nil
}

// AdvanceDateResult reports a bulk status recompute after the save's
// current date moved. Failures are per player: one stubborn row never
// blocks the rest of the roster.
type AdvanceDateResult struct {
	TeamID          string                `json:"team_id"`
	CurrentlyOn     time.Time             `json:"currently_on"`
	PlayersChecked  int                   `json:"players_checked"`
	StatusesChanged int                   `json:"statuses_changed"`
	Failures        []PlayerStatusFailure `json:"failures,omitempty"`
}

type PlayerStatusFailure struct {
	PlayerID string `json:"player_id"`
	Message  string `json:"message"`
}

// AdvanceCurrentDate moves the simulated current date forward and
// re-derives every roster member's lifecycle status against it. Each
// player's write is independent; failures are collected and reported
// rather than rolled back.
func (s *TeamService) AdvanceCurrentDate(ctx context.Context, teamID string, currentlyOn time.Time) (AdvanceDateResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.AdvanceCurrentDate")
	defer span.End()

	item, err := s.GetByID(ctx, teamID)
	if err != nil {
		return AdvanceDateResult{}, err
	}
	if currentlyOn.IsZero() {
		return AdvanceDateResult{}, fmt.Errorf("%w: currently_on is required", ErrInvalidInput)
	}
	if currentlyOn.Before(item.StartedOn) {
		return AdvanceDateResult{}, fmt.Errorf("%w: currently_on cannot precede the save start date", ErrInvalidInput)
	}

	item.CurrentlyOn = currentlyOn
	if err := s.teamRepo.Update(ctx, item); err != nil {
		return AdvanceDateResult{}, fmt.Errorf("update team current date: %w", err)
	}
	s.invalidate(ctx, item.ID)

	players, err := s.playerRepo.ListByTeam(ctx, item.ID)
	if err != nil {
		return AdvanceDateResult{}, fmt.Errorf("list players for status recompute: %w", err)
	}

	result := AdvanceDateResult{
		TeamID:         item.ID,
		CurrentlyOn:    currentlyOn,
		PlayersChecked: len(players),
	}
	if len(players) == 0 {
		return result, nil
	}

	workerCount := advanceDateMaxWorkers
	if workerCount > len(players) {
		workerCount = len(players)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return AdvanceDateResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var changed atomic.Int32
	var mu sync.Mutex
	failures := make([]PlayerStatusFailure, 0)

	var workers sync.WaitGroup
	for _, p := range players {
		p := p
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			next := player.ResolveStatus(item.Name, p.Contracts, p.Injuries, p.Loans, currentlyOn)
			if next == p.Status {
				return
			}
			clearKit := player.LosesKitNumber(p.Status, next)
			if err := s.playerRepo.UpdateStatus(ctx, p.ID, next, clearKit); err != nil {
				s.logger.WarnContext(ctx, "player status update failed",
					"team_id", item.ID,
					"player_id", p.ID,
					"error", err,
				)
				mu.Lock()
				failures = append(failures, PlayerStatusFailure{PlayerID: p.ID, Message: err.Error()})
				mu.Unlock()
				return
			}
			changed.Add(1)
		}); err != nil {
			workers.Done()
			return AdvanceDateResult{}, fmt.Errorf("submit status recompute to worker pool: %w", err)
		}
	}
	workers.Wait()

	sort.SliceStable(failures, func(i, j int) bool {
		return failures[i].PlayerID < failures[j].PlayerID
	})
	result.StatusesChanged = int(changed.Load())
	result.Failures = failures
	return result, nil
}

func (s *TeamService) invalidate(ctx context.Context, teamID string) {
	if s.cache == nil {
		return
	}
	s.cache.Delete(ctx, teamCacheKey(teamID))
}

func teamCacheKey(teamID string) string {
	return "team:" + teamID
}
