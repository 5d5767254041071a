package usecase

import (
	"fmt"
	"testing"
	"time"

	"github.com/gafferhq/gaffer/internal/domain/player"
	"github.com/gafferhq/gaffer/internal/domain/team"
	"github.com/gafferhq/gaffer/internal/infrastructure/repository/memory"
	"github.com/gafferhq/gaffer/internal/platform/logging"
)

// sequenceIDs hands out deterministic IDs so tests can reference created
// rows by name.
type sequenceIDs struct {
	prefix string
	n      int
}

func (g *sequenceIDs) NewID() (string, error) {
	g.n++
	return fmt.Sprintf("%s-%03d", g.prefix, g.n), nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func seedTeam(t *testing.T, repo *memory.TeamRepository, name string) team.Team {
	t.Helper()

	save := team.Team{
		ID:          "team-" + name,
		UserID:      "user-1",
		Name:        name,
		StartedOn:   date(2024, time.July, 1),
		CurrentlyOn: date(2024, time.August, 1),
		Currency:    "EUR",
	}
	created, err := repo.Create(t.Context(), save)
	if err != nil {
		t.Fatalf("seed team: %v", err)
	}
	return created
}

func seedPlayer(t *testing.T, repo *memory.PlayerRepository, save team.Team, id, name string, pos player.Position, kit int) player.Player {
	t.Helper()

	signedOn := save.StartedOn
	p := player.Player{
		ID:     id,
		TeamID: save.ID,
		Name:   name,
		Pos:    pos,
		KitNo:  intPtr(kit),
		OVR:    70,
		Contracts: []player.Contract{{
			ID:        id + "-contract",
			SignedOn:  &signedOn,
			StartedOn: save.StartedOn,
			EndedOn:   save.StartedOn.AddDate(1, 0, 0),
		}},
		Status: player.StatusActive,
	}
	created, err := repo.Create(t.Context(), p)
	if err != nil {
		t.Fatalf("seed player %s: %v", name, err)
	}
	return created
}

func testLogger() *logging.Logger {
	return logging.NewNop()
}
