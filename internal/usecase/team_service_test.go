package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/gafferhq/gaffer/internal/domain/player"
	"github.com/gafferhq/gaffer/internal/infrastructure/repository/memory"
)

func newTeamService(t *testing.T) (*TeamService, *memory.TeamRepository, *memory.PlayerRepository) {
	t.Helper()

	teamRepo := memory.NewTeamRepository()
	playerRepo := memory.NewPlayerRepository()
	svc := NewTeamService(teamRepo, playerRepo, &sequenceIDs{prefix: "team"}, nil, testLogger())
	return svc, teamRepo, playerRepo
}

func TestTeamService_Create_DefaultsCurrency(t *testing.T) {
	svc, _, _ := newTeamService(t)

	created, err := svc.Create(t.Context(), CreateTeamInput{
		UserID:    "user-1",
		Name:      "Arsenal",
		StartedOn: date(2024, time.July, 1),
	})
	if err != nil {
		t.Fatalf("create team failed: %v", err)
	}
	if created.Currency != "EUR" {
		t.Fatalf("unexpected currency: %s", created.Currency)
	}
	if !created.CurrentlyOn.Equal(created.StartedOn) {
		t.Fatalf("current date should start at the save start date")
	}
}

func TestTeamService_AdvanceCurrentDate_RecomputesStatuses(t *testing.T) {
	svc, teamRepo, playerRepo := newTeamService(t)
	save := seedTeam(t, teamRepo, "Arsenal")

	// Contract runs one year from the save start, so advancing past it
	// expires the player.
	expiring := seedPlayer(t, playerRepo, save, "p-expiring", "Saka", player.PositionRW, 7)

	// Contract renewed for a second year keeps the other player active.
	staying := seedPlayer(t, playerRepo, save, "p-staying", "Rice", player.PositionDM, 41)
	renewed := staying
	signedOn := date(2025, time.January, 1)
	renewed.Contracts = append(renewed.Contracts, player.Contract{
		ID:        "p-staying-renewal",
		SignedOn:  &signedOn,
		StartedOn: date(2025, time.July, 1),
		EndedOn:   date(2027, time.July, 1),
	})
	if err := playerRepo.Update(t.Context(), renewed); err != nil {
		t.Fatalf("renew contract: %v", err)
	}

	result, err := svc.AdvanceCurrentDate(t.Context(), save.ID, date(2025, time.August, 1))
	if err != nil {
		t.Fatalf("advance current date failed: %v", err)
	}
	if result.PlayersChecked != 2 {
		t.Fatalf("unexpected players checked: %d", result.PlayersChecked)
	}
	if result.StatusesChanged != 1 {
		t.Fatalf("unexpected statuses changed: %d", result.StatusesChanged)
	}
	if len(result.Failures) != 0 {
		t.Fatalf("unexpected failures: %v", result.Failures)
	}

	got, _, err := playerRepo.GetByID(t.Context(), expiring.ID)
	if err != nil {
		t.Fatalf("get expired player: %v", err)
	}
	if got.Status != player.StatusNone {
		t.Fatalf("expected expired status, got %q", got.Status)
	}
	if got.KitNo != nil {
		t.Fatalf("expired player should lose the kit number")
	}

	kept, _, err := playerRepo.GetByID(t.Context(), staying.ID)
	if err != nil {
		t.Fatalf("get renewed player: %v", err)
	}
	if kept.Status != player.StatusActive {
		t.Fatalf("expected renewed player to stay active, got %q", kept.Status)
	}
	if kept.KitNo == nil || *kept.KitNo != 41 {
		t.Fatalf("renewed player should keep the kit number")
	}
}

func TestTeamService_AdvanceCurrentDate_RejectsDateBeforeStart(t *testing.T) {
	svc, teamRepo, _ := newTeamService(t)
	save := seedTeam(t, teamRepo, "Arsenal")

	_, err := svc.AdvanceCurrentDate(t.Context(), save.ID, date(2024, time.June, 1))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTeamService_AdvanceCurrentDate_UnknownTeam(t *testing.T) {
	svc, _, _ := newTeamService(t)

	_, err := svc.AdvanceCurrentDate(t.Context(), "missing", date(2025, time.July, 1))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
