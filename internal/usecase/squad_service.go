package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gafferhq/gaffer/internal/domain/player"
	"github.com/gafferhq/gaffer/internal/domain/squad"
	"github.com/gafferhq/gaffer/internal/domain/team"
	"github.com/gafferhq/gaffer/internal/platform/id"
	"github.com/gafferhq/gaffer/internal/platform/logging"
)

type SquadService struct {
	teamRepo   team.Repository
	squadRepo  squad.Repository
	playerRepo player.Repository
	ids        id.Generator
	logger     *logging.Logger
}

func NewSquadService(teamRepo team.Repository, squadRepo squad.Repository, playerRepo player.Repository, ids id.Generator, logger *logging.Logger) *SquadService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SquadService{
		teamRepo:   teamRepo,
		squadRepo:  squadRepo,
		playerRepo: playerRepo,
		ids:        ids,
		logger:     logger,
	}
}

func (s *SquadService) Create(ctx context.Context, sq squad.Squad) (squad.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.Create")
	defer span.End()

	sq.TeamID = strings.TrimSpace(sq.TeamID)
	sq.Name = strings.TrimSpace(sq.Name)
	if err := sq.Validate(); err != nil {
		return squad.Squad{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, sq.TeamID)
	if err != nil {
		return squad.Squad{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return squad.Squad{}, fmt.Errorf("%w: team=%s", ErrNotFound, sq.TeamID)
	}
	if err := s.verifyMembers(ctx, sq.TeamID, sq.PlayerIDs); err != nil {
		return squad.Squad{}, err
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return squad.Squad{}, fmt.Errorf("generate squad id: %w", err)
	}
	sq.ID = newID

	created, err := s.squadRepo.Create(ctx, sq)
	if err != nil {
		return squad.Squad{}, fmt.Errorf("create squad: %w", err)
	}
	return created, nil
}

func (s *SquadService) GetByID(ctx context.Context, squadID string) (squad.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.GetByID")
	defer span.End()

	squadID = strings.TrimSpace(squadID)
	if squadID == "" {
		return squad.Squad{}, fmt.Errorf("%w: squad_id is required", ErrInvalidInput)
	}

	item, exists, err := s.squadRepo.GetByID(ctx, squadID)
	if err != nil {
		return squad.Squad{}, fmt.Errorf("get squad by id: %w", err)
	}
	if !exists {
		return squad.Squad{}, fmt.Errorf("%w: squad=%s", ErrNotFound, squadID)
	}
	return item, nil
}

func (s *SquadService) ListByTeam(ctx context.Context, teamID string) ([]squad.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.ListByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}

	items, err := s.squadRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list squads by team: %w", err)
	}
	return items, nil
}

type UpdateSquadInput struct {
	Name      *string
	PlayerIDs []string
}

func (s *SquadService) Update(ctx context.Context, squadID string, input UpdateSquadInput) (squad.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.Update")
	defer span.End()

	item, err := s.GetByID(ctx, squadID)
	if err != nil {
		return squad.Squad{}, err
	}

	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.PlayerIDs != nil {
		item.PlayerIDs = input.PlayerIDs
	}
	if err := item.Validate(); err != nil {
		return squad.Squad{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.verifyMembers(ctx, item.TeamID, item.PlayerIDs); err != nil {
		return squad.Squad{}, err
	}

	if err := s.squadRepo.Update(ctx, item); err != nil {
		return squad.Squad{}, fmt.Errorf("update squad: %w", err)
	}
	return item, nil
}

func (s *SquadService) Delete(ctx context.Context, squadID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.Delete")
	defer span.End()

	item, err := s.GetByID(ctx, squadID)
	if err != nil {
		return err
	}
	if err := s.squadRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete squad: %w", err)
	}
	return nil
}

// verifyMembers rejects members that do not exist or belong to another
// save's roster.
func (s *SquadService) verifyMembers(ctx context.Context, teamID string, playerIDs []string) error {
	for _, playerID := range playerIDs {
		p, exists, err := s.playerRepo.GetByID(ctx, playerID)
		if err != nil {
			return fmt.Errorf("get squad member: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}
		if p.TeamID != teamID {
			return fmt.Errorf("%w: player %s does not belong to team %s", ErrInvalidInput, playerID, teamID)
		}
	}
	return nil
}
