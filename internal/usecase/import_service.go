package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gafferhq/gaffer/internal/domain/player"
	"github.com/gafferhq/gaffer/internal/domain/team"
	"github.com/gafferhq/gaffer/internal/platform/id"
	"github.com/gafferhq/gaffer/internal/platform/logging"
)

// defaultImportContractYears is the term stamped onto the initial
// contract of every imported player.
const defaultImportContractYears = 3

// ImportedPlayer is one roster entry fetched from an external squad
// provider, already mapped to domain vocabulary.
type ImportedPlayer struct {
	Name         string
	Nationality  string
	Pos          player.Position
	SecondaryPos []player.Position
	KitNo        *int
	OVR          int
	Value        int64
	BirthYear    int
}

// SquadImporter fetches a club's current roster from an external data
// provider.
type SquadImporter interface {
	FetchSquad(ctx context.Context, clubName string) ([]ImportedPlayer, error)
}

// ImportService seeds a save's roster from an external provider. The
// importer is optional; without one every import reports the dependency
// as unavailable.
type ImportService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	importer   SquadImporter
	ids        id.Generator
	logger     *logging.Logger
}

func NewImportService(teamRepo team.Repository, playerRepo player.Repository, importer SquadImporter, ids id.Generator, logger *logging.Logger) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ImportService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		importer:   importer,
		ids:        ids,
		logger:     logger,
	}
}

// ImportResult reports a roster import. Failures are per player; a bad
// provider row never discards the rest of the squad.
type ImportResult struct {
	TeamID          string          `json:"team_id"`
	PlayersImported int             `json:"players_imported"`
	Failures        []ImportFailure `json:"failures,omitempty"`
}

type ImportFailure struct {
	PlayerName string `json:"player_name"`
	Message    string `json:"message"`
}

// ImportSquad fetches the named club's roster and creates one player per
// entry, each with an initial contract signed and started on the save's
// current date.
func (s *ImportService) ImportSquad(ctx context.Context, teamID, clubName string) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportSquad")
	defer span.End()

	if s.importer == nil {
		return ImportResult{}, fmt.Errorf("%w: squad import is not configured", ErrDependencyUnavailable)
	}

	teamID = strings.TrimSpace(teamID)
	clubName = strings.TrimSpace(clubName)
	if teamID == "" {
		return ImportResult{}, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}
	if clubName == "" {
		return ImportResult{}, fmt.Errorf("%w: club name is required", ErrInvalidInput)
	}

	save, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return ImportResult{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return ImportResult{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	entries, err := s.importer.FetchSquad(ctx, clubName)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: fetch squad for %s: %v", ErrDependencyUnavailable, clubName, err)
	}

	result := ImportResult{TeamID: save.ID}
	for _, entry := range entries {
		p, err := s.buildPlayer(save, entry)
		if err != nil {
			result.Failures = append(result.Failures, ImportFailure{PlayerName: entry.Name, Message: err.Error()})
			continue
		}
		if _, err := s.playerRepo.Create(ctx, p); err != nil {
			s.logger.WarnContext(ctx, "imported player create failed",
				"team_id", save.ID,
				"player_name", entry.Name,
				"error", err,
			)
			result.Failures = append(result.Failures, ImportFailure{PlayerName: entry.Name, Message: err.Error()})
			continue
		}
		result.PlayersImported++
	}

	s.logger.InfoContext(ctx, "squad import finished",
		"team_id", save.ID,
		"club", clubName,
		"imported", result.PlayersImported,
		"failed", len(result.Failures),
	)
	return result, nil
}

func (s *ImportService) buildPlayer(save team.Team, entry ImportedPlayer) (player.Player, error) {
	playerID, err := s.ids.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}
	contractID, err := s.ids.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate contract id: %w", err)
	}

	started := save.CurrentlyOn
	contractSignedOn := started
	p := player.Player{
		ID:           playerID,
		TeamID:       save.ID,
		Name:         strings.TrimSpace(entry.Name),
		Nationality:  strings.TrimSpace(entry.Nationality),
		Pos:          entry.Pos,
		SecondaryPos: entry.SecondaryPos,
		KitNo:        entry.KitNo,
		OVR:          entry.OVR,
		Value:        entry.Value,
		BirthYear:    entry.BirthYear,
		Contracts: []player.Contract{{
			ID:        contractID,
			SignedOn:  &contractSignedOn,
			StartedOn: started,
			EndedOn:   started.AddDate(defaultImportContractYears, 0, 0),
		}},
	}
	if err := p.Validate(); err != nil {
		return player.Player{}, err
	}
	p.Status = player.ResolveStatus(save.Name, p.Contracts, p.Injuries, p.Loans, save.CurrentlyOn)
	return p, nil
}
