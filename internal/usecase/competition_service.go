package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gafferhq/gaffer/internal/domain/competition"
	"github.com/gafferhq/gaffer/internal/domain/team"
	"github.com/gafferhq/gaffer/internal/platform/id"
	"github.com/gafferhq/gaffer/internal/platform/logging"
)

type CompetitionService struct {
	teamRepo        team.Repository
	competitionRepo competition.Repository
	ids             id.Generator
	logger          *logging.Logger
}

func NewCompetitionService(teamRepo team.Repository, competitionRepo competition.Repository, ids id.Generator, logger *logging.Logger) *CompetitionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &CompetitionService{
		teamRepo:        teamRepo,
		competitionRepo: competitionRepo,
		ids:             ids,
		logger:          logger,
	}
}

func (s *CompetitionService) Create(ctx context.Context, c competition.Competition) (competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.Create")
	defer span.End()

	c.TeamID = strings.TrimSpace(c.TeamID)
	c.Name = strings.TrimSpace(c.Name)
	if err := c.Validate(); err != nil {
		return competition.Competition{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	save, exists, err := s.teamRepo.GetByID(ctx, c.TeamID)
	if err != nil {
		return competition.Competition{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return competition.Competition{}, fmt.Errorf("%w: team=%s", ErrNotFound, c.TeamID)
	}
	if strings.TrimSpace(c.Season) == "" {
		c.Season = save.SeasonLabel(save.CurrentlyOn)
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return competition.Competition{}, fmt.Errorf("generate competition id: %w", err)
	}
	c.ID = newID
	c.Table = competition.DeriveTable(c.Table)

	created, err := s.competitionRepo.Create(ctx, c)
	if err != nil {
		return competition.Competition{}, fmt.Errorf("create competition: %w", err)
	}
	return created, nil
}

func (s *CompetitionService) GetByID(ctx context.Context, competitionID string) (competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.GetByID")
	defer span.End()

	competitionID = strings.TrimSpace(competitionID)
	if competitionID == "" {
		return competition.Competition{}, fmt.Errorf("%w: competition_id is required", ErrInvalidInput)
	}

	item, exists, err := s.competitionRepo.GetByID(ctx, competitionID)
	if err != nil {
		return competition.Competition{}, fmt.Errorf("get competition by id: %w", err)
	}
	if !exists {
		return competition.Competition{}, fmt.Errorf("%w: competition=%s", ErrNotFound, competitionID)
	}
	return item, nil
}

func (s *CompetitionService) ListByTeam(ctx context.Context, teamID string) ([]competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.ListByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}

	items, err := s.competitionRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list competitions by team: %w", err)
	}
	return items, nil
}

type UpdateCompetitionInput struct {
	Name   *string
	Season *string
	Format *competition.Format
	Table  []competition.TableRow
}

func (s *CompetitionService) Update(ctx context.Context, competitionID string, input UpdateCompetitionInput) (competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.Update")
	defer span.End()

	item, err := s.GetByID(ctx, competitionID)
	if err != nil {
		return competition.Competition{}, err
	}

	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.Season != nil {
		item.Season = strings.TrimSpace(*input.Season)
	}
	if input.Format != nil {
		item.Format = *input.Format
	}
	if input.Table != nil {
		item.Table = input.Table
	}
	if err := item.Validate(); err != nil {
		return competition.Competition{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Points and ordering are never trusted from the caller.
	item.Table = competition.DeriveTable(item.Table)

	if err := s.competitionRepo.Update(ctx, item); err != nil {
		return competition.Competition{}, fmt.Errorf("update competition: %w", err)
	}
	return item, nil
}

func (s *CompetitionService) Delete(ctx context.Context, competitionID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.Delete")
	defer span.End()

	item, err := s.GetByID(ctx, competitionID)
	if err != nil {
		return err
	}
	if err := s.competitionRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete competition: %w", err)
	}
	return nil
}
