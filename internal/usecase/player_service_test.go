package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/gafferhq/gaffer/internal/domain/player"
	"github.com/gafferhq/gaffer/internal/infrastructure/repository/memory"
)

func newPlayerService(t *testing.T) (*PlayerService, *memory.TeamRepository, *memory.PlayerRepository) {
	t.Helper()

	teamRepo := memory.NewTeamRepository()
	playerRepo := memory.NewPlayerRepository()
	svc := NewPlayerService(teamRepo, playerRepo, &sequenceIDs{prefix: "player"}, testLogger())
	return svc, teamRepo, playerRepo
}

func TestPlayerService_Create_ResolvesInitialStatus(t *testing.T) {
	svc, teamRepo, _ := newPlayerService(t)
	save := seedTeam(t, teamRepo, "Arsenal")

	signedOn := save.StartedOn
	created, err := svc.Create(t.Context(), player.Player{
		TeamID: save.ID,
		Name:   "Odegaard",
		Pos:    player.PositionAM,
		OVR:    87,
		Contracts: []player.Contract{{
			SignedOn:  &signedOn,
			StartedOn: save.StartedOn,
			EndedOn:   save.StartedOn.AddDate(3, 0, 0),
		}},
	})
	if err != nil {
		t.Fatalf("create player failed: %v", err)
	}
	if created.Status != player.StatusActive {
		t.Fatalf("expected active status, got %q", created.Status)
	}
	if created.ID == "" {
		t.Fatalf("expected a generated id")
	}
}

func TestPlayerService_Create_FutureContractIsPending(t *testing.T) {
	svc, teamRepo, _ := newPlayerService(t)
	save := seedTeam(t, teamRepo, "Arsenal")

	signedOn := save.CurrentlyOn
	created, err := svc.Create(t.Context(), player.Player{
		TeamID: save.ID,
		Name:   "Prospect",
		Pos:    player.PositionCM,
		Contracts: []player.Contract{{
			SignedOn:  &signedOn,
			StartedOn: save.CurrentlyOn.AddDate(0, 6, 0),
			EndedOn:   save.CurrentlyOn.AddDate(3, 0, 0),
		}},
	})
	if err != nil {
		t.Fatalf("create player failed: %v", err)
	}
	if created.Status != player.StatusPending {
		t.Fatalf("expected pending status, got %q", created.Status)
	}
}

func TestPlayerService_AddInjury_ClearsKitNumber(t *testing.T) {
	svc, teamRepo, playerRepo := newPlayerService(t)
	save := seedTeam(t, teamRepo, "Arsenal")
	seeded := seedPlayer(t, playerRepo, save, "p-1", "Jesus", player.PositionCF, 9)

	updated, err := svc.AddInjury(t.Context(), seeded.ID, player.Injury{
		StartedOn:   date(2024, time.July, 20),
		EndedOn:     date(2024, time.September, 1),
		Description: "knee",
	})
	if err != nil {
		t.Fatalf("add injury failed: %v", err)
	}
	if updated.Status != player.StatusInjured {
		t.Fatalf("expected injured status, got %q", updated.Status)
	}
	if updated.KitNo != nil {
		t.Fatalf("injured player should lose the kit number")
	}

	stored, _, err := playerRepo.GetByID(t.Context(), seeded.ID)
	if err != nil {
		t.Fatalf("get stored player: %v", err)
	}
	if stored.Status != player.StatusInjured {
		t.Fatalf("stored status not updated: %q", stored.Status)
	}
}

func TestPlayerService_RemoveInjury_RestoresActive(t *testing.T) {
	svc, teamRepo, playerRepo := newPlayerService(t)
	save := seedTeam(t, teamRepo, "Arsenal")
	seeded := seedPlayer(t, playerRepo, save, "p-1", "Jesus", player.PositionCF, 9)

	injured, err := svc.AddInjury(t.Context(), seeded.ID, player.Injury{
		StartedOn: date(2024, time.July, 20),
		EndedOn:   date(2024, time.September, 1),
	})
	if err != nil {
		t.Fatalf("add injury failed: %v", err)
	}

	restored, err := svc.RemoveInjury(t.Context(), seeded.ID, injured.Injuries[0].ID)
	if err != nil {
		t.Fatalf("remove injury failed: %v", err)
	}
	if restored.Status != player.StatusActive {
		t.Fatalf("expected active status after removal, got %q", restored.Status)
	}
}

func TestPlayerService_AddLoan_OutboundBecomesLoaned(t *testing.T) {
	svc, teamRepo, playerRepo := newPlayerService(t)
	save := seedTeam(t, teamRepo, "Arsenal")
	seeded := seedPlayer(t, playerRepo, save, "p-1", "Nelson", player.PositionRW, 24)

	signedOn := date(2024, time.July, 15)
	loaned, err := svc.AddLoan(t.Context(), seeded.ID, player.Loan{
		SignedOn:    &signedOn,
		StartedOn:   date(2024, time.July, 15),
		EndedOn:     date(2025, time.June, 30),
		Origin:      "Arsenal",
		Destination: "Fulham",
	})
	if err != nil {
		t.Fatalf("add loan failed: %v", err)
	}
	if loaned.Status != player.StatusLoaned {
		t.Fatalf("expected loaned status, got %q", loaned.Status)
	}
	if loaned.KitNo == nil {
		t.Fatalf("a loaned player keeps the kit number")
	}
}

func TestPlayerService_UpdateContract_UnknownID(t *testing.T) {
	svc, teamRepo, playerRepo := newPlayerService(t)
	save := seedTeam(t, teamRepo, "Arsenal")
	seeded := seedPlayer(t, playerRepo, save, "p-1", "White", player.PositionRB, 4)

	_, err := svc.UpdateContract(t.Context(), seeded.ID, "missing", player.Contract{
		StartedOn: date(2024, time.July, 1),
		EndedOn:   date(2026, time.July, 1),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_Update_PartialFields(t *testing.T) {
	svc, teamRepo, playerRepo := newPlayerService(t)
	save := seedTeam(t, teamRepo, "Arsenal")
	seeded := seedPlayer(t, playerRepo, save, "p-1", "Martinelli", player.PositionLW, 11)

	updated, err := svc.Update(t.Context(), seeded.ID, UpdatePlayerInput{
		OVR:   intPtr(84),
		KitNo: intPtr(10),
	})
	if err != nil {
		t.Fatalf("update player failed: %v", err)
	}
	if updated.OVR != 84 {
		t.Fatalf("unexpected ovr: %d", updated.OVR)
	}
	if updated.KitNo == nil || *updated.KitNo != 10 {
		t.Fatalf("unexpected kit number")
	}
	if updated.Name != "Martinelli" {
		t.Fatalf("untouched fields should survive: %s", updated.Name)
	}
}
