package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gafferhq/gaffer/internal/domain/player"
	"github.com/gafferhq/gaffer/internal/domain/team"
	"github.com/gafferhq/gaffer/internal/platform/id"
	"github.com/gafferhq/gaffer/internal/platform/logging"
)

type PlayerService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	ids        id.Generator
	logger     *logging.Logger
}

func NewPlayerService(teamRepo team.Repository, playerRepo player.Repository, ids id.Generator, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		ids:        ids,
		logger:     logger,
	}
}

func (s *PlayerService) Create(ctx context.Context, p player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	p.TeamID = strings.TrimSpace(p.TeamID)
	p.Name = strings.TrimSpace(p.Name)
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	save, exists, err := s.teamRepo.GetByID(ctx, p.TeamID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: team=%s", ErrNotFound, p.TeamID)
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}
	p.ID = newID
	p.Status = player.ResolveStatus(save.Name, p.Contracts, p.Injuries, p.Loans, save.CurrentlyOn)

	created, err := s.playerRepo.Create(ctx, p)
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	return created, nil
}

func (s *PlayerService) GetByID(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetByID")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player_id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return item, nil
}

func (s *PlayerService) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}

	items, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}
	return items, nil
}

type UpdatePlayerInput struct {
	Name         *string
	Nationality  *string
	Pos          *player.Position
	SecondaryPos []player.Position
	KitNo        *int
	ClearKitNo   bool
	OVR          *int
	Value        *int64
	BirthYear    *int
}

func (s *PlayerService) Update(ctx context.Context, playerID string, input UpdatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	return s.mutate(ctx, playerID, func(p *player.Player) error {
		if input.Name != nil {
			p.Name = strings.TrimSpace(*input.Name)
		}
		if input.Nationality != nil {
			p.Nationality = strings.TrimSpace(*input.Nationality)
		}
		if input.Pos != nil {
			p.Pos = *input.Pos
		}
		if input.SecondaryPos != nil {
			p.SecondaryPos = input.SecondaryPos
		}
		if input.ClearKitNo {
			p.KitNo = nil
		} else if input.KitNo != nil {
			p.KitNo = input.KitNo
		}
		if input.OVR != nil {
			p.OVR = *input.OVR
		}
		if input.Value != nil {
			p.Value = *input.Value
		}
		if input.BirthYear != nil {
			p.BirthYear = *input.BirthYear
		}
		return nil
	})
}

func (s *PlayerService) Delete(ctx context.Context, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	item, err := s.GetByID(ctx, playerID)
	if err != nil {
		return err
	}
	if err := s.playerRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}

func (s *PlayerService) AddContract(ctx context.Context, playerID string, c player.Contract) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.AddContract")
	defer span.End()

	if err := validateDateRange(c.StartedOn, c.EndedOn); err != nil {
		return player.Player{}, err
	}
	newID, err := s.ids.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate contract id: %w", err)
	}
	c.ID = newID

	return s.mutate(ctx, playerID, func(p *player.Player) error {
		p.Contracts = append(p.Contracts, c)
		return nil
	})
}

func (s *PlayerService) UpdateContract(ctx context.Context, playerID, contractID string, c player.Contract) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdateContract")
	defer span.End()

	if err := validateDateRange(c.StartedOn, c.EndedOn); err != nil {
		return player.Player{}, err
	}

	return s.mutate(ctx, playerID, func(p *player.Player) error {
		for i := range p.Contracts {
			if p.Contracts[i].ID == contractID {
				c.ID = contractID
				p.Contracts[i] = c
				return nil
			}
		}
		return fmt.Errorf("%w: contract=%s", ErrNotFound, contractID)
	})
}

func (s *PlayerService) RemoveContract(ctx context.Context, playerID, contractID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.RemoveContract")
	defer span.End()

	return s.mutate(ctx, playerID, func(p *player.Player) error {
		for i := range p.Contracts {
			if p.Contracts[i].ID == contractID {
				p.Contracts = append(p.Contracts[:i], p.Contracts[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: contract=%s", ErrNotFound, contractID)
	})
}

func (s *PlayerService) AddInjury(ctx context.Context, playerID string, injury player.Injury) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.AddInjury")
	defer span.End()

	if err := validateDateRange(injury.StartedOn, injury.EndedOn); err != nil {
		return player.Player{}, err
	}
	newID, err := s.ids.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate injury id: %w", err)
	}
	injury.ID = newID

	return s.mutate(ctx, playerID, func(p *player.Player) error {
		p.Injuries = append(p.Injuries, injury)
		return nil
	})
}

func (s *PlayerService) UpdateInjury(ctx context.Context, playerID, injuryID string, injury player.Injury) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdateInjury")
	defer span.End()

	if err := validateDateRange(injury.StartedOn, injury.EndedOn); err != nil {
		return player.Player{}, err
	}

	return s.mutate(ctx, playerID, func(p *player.Player) error {
		for i := range p.Injuries {
			if p.Injuries[i].ID == injuryID {
				injury.ID = injuryID
				p.Injuries[i] = injury
				return nil
			}
		}
		return fmt.Errorf("%w: injury=%s", ErrNotFound, injuryID)
	})
}

func (s *PlayerService) RemoveInjury(ctx context.Context, playerID, injuryID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.RemoveInjury")
	defer span.End()

	return s.mutate(ctx, playerID, func(p *player.Player) error {
		for i := range p.Injuries {
			if p.Injuries[i].ID == injuryID {
				p.Injuries = append(p.Injuries[:i], p.Injuries[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: injury=%s", ErrNotFound, injuryID)
	})
}

func (s *PlayerService) AddLoan(ctx context.Context, playerID string, loan player.Loan) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.AddLoan")
	defer span.End()

	if err := validateDateRange(loan.StartedOn, loan.EndedOn); err != nil {
		return player.Player{}, err
	}
	if strings.TrimSpace(loan.Origin) == "" || strings.TrimSpace(loan.Destination) == "" {
		return player.Player{}, fmt.Errorf("%w: loan origin and destination are required", ErrInvalidInput)
	}
	newID, err := s.ids.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate loan id: %w", err)
	}
	loan.ID = newID

	return s.mutate(ctx, playerID, func(p *player.Player) error {
		p.Loans = append(p.Loans, loan)
		return nil
	})
}

func (s *PlayerService) RemoveLoan(ctx context.Context, playerID, loanID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.RemoveLoan")
	defer span.End()

	return s.mutate(ctx, playerID, func(p *player.Player) error {
		for i := range p.Loans {
			if p.Loans[i].ID == loanID {
				p.Loans = append(p.Loans[:i], p.Loans[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: loan=%s", ErrNotFound, loanID)
	})
}

func (s *PlayerService) AddTransfer(ctx context.Context, playerID string, transfer player.Transfer) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.AddTransfer")
	defer span.End()

	if transfer.MovedOn.IsZero() {
		return player.Player{}, fmt.Errorf("%w: transfer date is required", ErrInvalidInput)
	}
	if strings.TrimSpace(transfer.Origin) == "" || strings.TrimSpace(transfer.Destination) == "" {
		return player.Player{}, fmt.Errorf("%w: transfer origin and destination are required", ErrInvalidInput)
	}
	newID, err := s.ids.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate transfer id: %w", err)
	}
	transfer.ID = newID

	return s.mutate(ctx, playerID, func(p *player.Player) error {
		p.Transfers = append(p.Transfers, transfer)
		return nil
	})
}

func (s *PlayerService) RemoveTransfer(ctx context.Context, playerID, transferID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.RemoveTransfer")
	defer span.End()

	return s.mutate(ctx, playerID, func(p *player.Player) error {
		for i := range p.Transfers {
			if p.Transfers[i].ID == transferID {
				p.Transfers = append(p.Transfers[:i], p.Transfers[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: transfer=%s", ErrNotFound, transferID)
	})
}

// RefreshStatus re-derives the stored lifecycle status against the
// team's current date and persists it (clearing the kit number when the
// player leaves the active squad).
func (s *PlayerService) RefreshStatus(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.RefreshStatus")
	defer span.End()

	item, err := s.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}
	return s.refreshStatus(ctx, item)
}

// mutate loads a player, applies an edit to the embedded event
// sequences, persists the row, and re-runs the status resolver. Any
// event mutation goes through here so the stored status never drifts
// from what the resolver would compute.
func (s *PlayerService) mutate(ctx context.Context, playerID string, apply func(*player.Player) error) (player.Player, error) {
	item, err := s.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}

	if err := apply(&item); err != nil {
		if strings.Contains(err.Error(), ErrNotFound.Error()) {
			return player.Player{}, err
		}
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Update(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	return s.refreshStatus(ctx, item)
}

func (s *PlayerService) refreshStatus(ctx context.Context, item player.Player) (player.Player, error) {
	save, exists, err := s.teamRepo.GetByID(ctx, item.TeamID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get team for status refresh: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: team=%s", ErrNotFound, item.TeamID)
	}

	next := player.ResolveStatus(save.Name, item.Contracts, item.Injuries, item.Loans, save.CurrentlyOn)
	if next == item.Status {
		return item, nil
	}

	clearKit := player.LosesKitNumber(item.Status, next)
	if err := s.playerRepo.UpdateStatus(ctx, item.ID, next, clearKit); err != nil {
		return player.Player{}, fmt.Errorf("persist player status: %w", err)
	}

	s.logger.InfoContext(ctx, "player status changed",
		"player_id", item.ID,
		"from", string(item.Status),
		"to", string(next),
		"kit_cleared", clearKit,
	)

	item.Status = next
	if clearKit {
		item.KitNo = nil
	}
	return item, nil
}

func validateDateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end date precedes start date", ErrInvalidInput)
	}
	return nil
}
