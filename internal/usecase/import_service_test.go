package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/gafferhq/gaffer/internal/domain/player"
	"github.com/gafferhq/gaffer/internal/infrastructure/repository/memory"
)

type stubImporter struct {
	entries []ImportedPlayer
	err     error
}

func (s *stubImporter) FetchSquad(_ context.Context, _ string) ([]ImportedPlayer, error) {
	return s.entries, s.err
}

func TestImportService_ImportSquad(t *testing.T) {
	teamRepo := memory.NewTeamRepository()
	playerRepo := memory.NewPlayerRepository()
	importer := &stubImporter{entries: []ImportedPlayer{
		{Name: "Saka", Nationality: "England", Pos: player.PositionRW, KitNo: intPtr(7), OVR: 86, BirthYear: 2001},
		{Name: "Rice", Nationality: "England", Pos: player.PositionDM, KitNo: intPtr(41), OVR: 87, BirthYear: 1999},
		{Name: "Ghost", Pos: player.Position("XX")},
	}}
	svc := NewImportService(teamRepo, playerRepo, importer, &sequenceIDs{prefix: "import"}, testLogger())
	save := seedTeam(t, teamRepo, "Arsenal")

	result, err := svc.ImportSquad(t.Context(), save.ID, "Arsenal")
	if err != nil {
		t.Fatalf("import squad failed: %v", err)
	}
	if result.PlayersImported != 2 {
		t.Fatalf("unexpected import count: %d", result.PlayersImported)
	}
	if len(result.Failures) != 1 || result.Failures[0].PlayerName != "Ghost" {
		t.Fatalf("unexpected failures: %v", result.Failures)
	}

	roster, err := playerRepo.ListByTeam(t.Context(), save.ID)
	if err != nil {
		t.Fatalf("list roster: %v", err)
	}
	if len(roster) != 2 {
		t.Fatalf("unexpected roster size: %d", len(roster))
	}
	for _, p := range roster {
		if p.Status != player.StatusActive {
			t.Fatalf("imported player should be active: %+v", p)
		}
		if len(p.Contracts) != 1 || p.Contracts[0].SignedOn == nil {
			t.Fatalf("imported player should have a signed initial contract: %+v", p)
		}
	}
}

func TestImportService_ImportSquad_NotConfigured(t *testing.T) {
	teamRepo := memory.NewTeamRepository()
	playerRepo := memory.NewPlayerRepository()
	svc := NewImportService(teamRepo, playerRepo, nil, &sequenceIDs{prefix: "import"}, testLogger())

	_, err := svc.ImportSquad(t.Context(), "team-1", "Arsenal")
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestImportService_ImportSquad_ProviderDown(t *testing.T) {
	teamRepo := memory.NewTeamRepository()
	playerRepo := memory.NewPlayerRepository()
	importer := &stubImporter{err: errors.New("upstream timeout")}
	svc := NewImportService(teamRepo, playerRepo, importer, &sequenceIDs{prefix: "import"}, testLogger())
	save := seedTeam(t, teamRepo, "Arsenal")

	_, err := svc.ImportSquad(t.Context(), save.ID, "Arsenal")
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
