package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/gafferhq/gaffer/internal/domain/team"
	playermock "github.com/gafferhq/gaffer/internal/mocks/domain/player"
	teammock "github.com/gafferhq/gaffer/internal/mocks/domain/team"
)

func TestTeamService_GetByID_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)

	service := NewTeamService(teamRepo, playerRepo, &sequenceIDs{prefix: "team"}, nil, testLogger())
	expected := team.Team{
		ID:          "team-001",
		UserID:      "user-1",
		Name:        "Arsenal",
		StartedOn:   time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		CurrentlyOn: time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC),
		Currency:    "EUR",
	}

	teamRepo.
		On("GetByID", mock.Anything, "team-001").
		Return(expected, true, nil).
		Once()

	got, err := service.GetByID(context.Background(), "team-001")
	if err != nil {
		t.Fatalf("get team by id: %v", err)
	}
	if got.ID != expected.ID || got.Name != expected.Name {
		t.Fatalf("unexpected team: %+v", got)
	}
}

func TestTeamService_GetByID_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)

	service := NewTeamService(teamRepo, playerRepo, &sequenceIDs{prefix: "team"}, nil, testLogger())

	teamRepo.
		On("GetByID", mock.Anything, "missing-team").
		Return(team.Team{}, false, nil).
		Once()

	_, err := service.GetByID(context.Background(), "missing-team")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_AdvanceCurrentDate_EmptyRosterUsingMockery(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)

	service := NewTeamService(teamRepo, playerRepo, &sequenceIDs{prefix: "team"}, nil, testLogger())
	save := team.Team{
		ID:          "team-001",
		UserID:      "user-1",
		Name:        "Arsenal",
		StartedOn:   time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		CurrentlyOn: time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC),
		Currency:    "EUR",
	}
	next := time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)

	teamRepo.
		On("GetByID", mock.Anything, "team-001").
		Return(save, true, nil).
		Once()
	teamRepo.
		On("Update", mock.Anything, mock.MatchedBy(func(v team.Team) bool { return v.CurrentlyOn.Equal(next) })).
		Return(nil).
		Once()
	playerRepo.
		On("ListByTeam", mock.Anything, "team-001").
		Return(nil, nil).
		Once()

	result, err := service.AdvanceCurrentDate(context.Background(), "team-001", next)
	if err != nil {
		t.Fatalf("advance current date: %v", err)
	}
	if result.PlayersChecked != 0 || result.StatusesChanged != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
}
