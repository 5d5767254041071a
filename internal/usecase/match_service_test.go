package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/gafferhq/gaffer/internal/domain/cap"
	"github.com/gafferhq/gaffer/internal/domain/match"
	"github.com/gafferhq/gaffer/internal/domain/player"
	"github.com/gafferhq/gaffer/internal/domain/team"
	"github.com/gafferhq/gaffer/internal/infrastructure/repository/memory"
)

type matchFixture struct {
	svc        *MatchService
	teamRepo   *memory.TeamRepository
	playerRepo *memory.PlayerRepository
	matchRepo  *memory.MatchRepository
	capRepo    *memory.CapRepository
	save       team.Team
	match      match.Match
	lineup     map[player.Position]string
	nameByID   map[string]string
}

// newMatchFixture seeds a save with eleven starters and one substitute,
// creates a home fixture against Chelsea, and records the starting
// lineup.
func newMatchFixture(t *testing.T) *matchFixture {
	t.Helper()

	teamRepo := memory.NewTeamRepository()
	playerRepo := memory.NewPlayerRepository()
	matchRepo := memory.NewMatchRepository()
	capRepo := memory.NewCapRepository()
	svc := NewMatchService(teamRepo, matchRepo, capRepo, playerRepo, &sequenceIDs{prefix: "match"}, testLogger())

	save := seedTeam(t, teamRepo, "Arsenal")

	starters := []struct {
		id   string
		name string
		pos  player.Position
		kit  int
	}{
		{"p-01", "Keeper", player.PositionGK, 1},
		{"p-02", "RightBack", player.PositionRB, 2},
		{"p-03", "CentreBack", player.PositionCB, 5},
		{"p-04", "LeftBack", player.PositionLB, 3},
		{"p-05", "Anchor", player.PositionDM, 6},
		{"p-06", "RightMid", player.PositionRM, 7},
		{"p-07", "CentreMid", player.PositionCM, 8},
		{"p-08", "LeftMid", player.PositionLM, 11},
		{"p-09", "Playmaker", player.PositionAM, 10},
		{"p-10", "Shadow", player.PositionSS, 21},
		{"p-11", "Striker", player.PositionST, 9},
	}
	lineup := make(map[player.Position]string, len(starters))
	nameByID := make(map[string]string, len(starters)+1)
	for _, st := range starters {
		seedPlayer(t, playerRepo, save, st.id, st.name, st.pos, st.kit)
		lineup[st.pos] = st.id
		nameByID[st.id] = st.name
	}
	seedPlayer(t, playerRepo, save, "p-12", "SuperSub", player.PositionST, 14)
	nameByID["p-12"] = "SuperSub"

	created, err := svc.Create(t.Context(), match.Match{
		TeamID:     save.ID,
		HomeTeam:   "Arsenal",
		AwayTeam:   "Chelsea",
		OccurredOn: date(2024, time.August, 17),
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	if _, err := svc.SetStartingLineup(t.Context(), created.ID, lineup); err != nil {
		t.Fatalf("set starting lineup: %v", err)
	}

	return &matchFixture{
		svc:        svc,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		capRepo:    capRepo,
		save:       save,
		match:      created,
		lineup:     lineup,
		nameByID:   nameByID,
	}
}

func (f *matchFixture) capByName(t *testing.T, name string) cap.Cap {
	t.Helper()

	caps, err := f.capRepo.ListByMatch(t.Context(), f.match.ID)
	if err != nil {
		t.Fatalf("list caps: %v", err)
	}
	for _, c := range caps {
		if c.PlayerName == name {
			return c
		}
	}
	t.Fatalf("no cap for %s", name)
	return cap.Cap{}
}

func TestMatchService_SetStartingLineup_CreatesElevenCaps(t *testing.T) {
	f := newMatchFixture(t)

	caps, err := f.capRepo.ListByMatch(t.Context(), f.match.ID)
	if err != nil {
		t.Fatalf("list caps: %v", err)
	}
	if len(caps) != 11 {
		t.Fatalf("unexpected cap count: %d", len(caps))
	}
	for _, c := range caps {
		if c.StartMinute != 0 || c.StopMinute != match.RegulationLength {
			t.Fatalf("starting cap should span the match: %+v", c)
		}
		if c.PlayerID == "" {
			t.Fatalf("starting cap missing player id: %+v", c)
		}
	}

	keeper := f.capByName(t, "Keeper")
	if keeper.KitNo == nil || *keeper.KitNo != 1 {
		t.Fatalf("cap should carry the kit number")
	}
}

func TestMatchService_SetStartingLineup_RejectsShortLineup(t *testing.T) {
	f := newMatchFixture(t)

	short := map[player.Position]string{player.PositionGK: "p-01"}
	_, err := f.svc.SetStartingLineup(t.Context(), f.match.ID, short)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchService_AddGoal_DerivesScoreAndStats(t *testing.T) {
	f := newMatchFixture(t)

	updated, err := f.svc.AddGoal(t.Context(), f.match.ID, match.Goal{
		Minute:     23,
		Scorer:     "Striker",
		AssistedBy: strPtr("Playmaker"),
		Home:       true,
	})
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if updated.HomeScore != 1 || updated.AwayScore != 0 {
		t.Fatalf("unexpected score: %d-%d", updated.HomeScore, updated.AwayScore)
	}

	striker := f.capByName(t, "Striker")
	if striker.NumGoals != 1 {
		t.Fatalf("scorer stats not derived: %+v", striker)
	}
	playmaker := f.capByName(t, "Playmaker")
	if playmaker.NumAssists != 1 {
		t.Fatalf("assist stats not derived: %+v", playmaker)
	}
	keeper := f.capByName(t, "Keeper")
	if !keeper.CleanSheet {
		t.Fatalf("clean sheet should hold while the opposition is scoreless")
	}
}

func TestMatchService_AddGoal_OppositionEndsCleanSheet(t *testing.T) {
	f := newMatchFixture(t)

	updated, err := f.svc.AddGoal(t.Context(), f.match.ID, match.Goal{
		Minute: 55,
		Scorer: "Palmer",
		Home:   false,
	})
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if updated.HomeScore != 0 || updated.AwayScore != 1 {
		t.Fatalf("unexpected score: %d-%d", updated.HomeScore, updated.AwayScore)
	}

	keeper := f.capByName(t, "Keeper")
	if keeper.CleanSheet {
		t.Fatalf("conceding should clear the clean sheet")
	}
}

func TestMatchService_AddGoal_OwnGoalFlipsSide(t *testing.T) {
	f := newMatchFixture(t)

	// Recorded against the home side but flagged own goal, so it counts
	// for the away side.
	updated, err := f.svc.AddGoal(t.Context(), f.match.ID, match.Goal{
		Minute:  70,
		Scorer:  "CentreBack",
		Home:    true,
		OwnGoal: true,
	})
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if updated.HomeScore != 0 || updated.AwayScore != 1 {
		t.Fatalf("own goal should credit the opposition: %d-%d", updated.HomeScore, updated.AwayScore)
	}

	defender := f.capByName(t, "CentreBack")
	if defender.NumOwnGoals != 1 || defender.NumGoals != 0 {
		t.Fatalf("own goal stats not derived: %+v", defender)
	}
}

func TestMatchService_AddGoal_RejectsBadMinute(t *testing.T) {
	f := newMatchFixture(t)

	_, err := f.svc.AddGoal(t.Context(), f.match.ID, match.Goal{Minute: 99, Scorer: "Striker", Home: true})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	stoppage := 3
	_, err = f.svc.AddGoal(t.Context(), f.match.ID, match.Goal{Minute: 44, StoppageTime: &stoppage, Scorer: "Striker", Home: true})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("stoppage away from a boundary should be rejected, got %v", err)
	}
}

func TestMatchService_AddBooking_RedCardEndsStint(t *testing.T) {
	f := newMatchFixture(t)

	if _, err := f.svc.AddBooking(t.Context(), f.match.ID, match.Booking{
		Minute:  64,
		Player:  "Anchor",
		Home:    true,
		RedCard: true,
	}); err != nil {
		t.Fatalf("add booking: %v", err)
	}

	anchor := f.capByName(t, "Anchor")
	if anchor.NumRedCards != 1 {
		t.Fatalf("red card not derived: %+v", anchor)
	}
	if anchor.StopMinute != 64 {
		t.Fatalf("a red card ends the stint: stop=%d", anchor.StopMinute)
	}
}

func TestMatchService_ApplyFormation_SingleSubstitution(t *testing.T) {
	f := newMatchFixture(t)

	desired := make(map[player.Position]string, len(f.lineup))
	for pos, playerID := range f.lineup {
		desired[pos] = playerID
	}
	desired[player.PositionST] = "p-12"

	updated, err := f.svc.ApplyFormation(t.Context(), f.match.ID, desired, 60, nil)
	if err != nil {
		t.Fatalf("apply formation: %v", err)
	}
	if len(updated.Changes) != 1 {
		t.Fatalf("one differing slot should yield one change, got %d", len(updated.Changes))
	}
	change := updated.Changes[0]
	if change.Out.Name != "Striker" || change.In.Name != "SuperSub" || change.In.Pos != player.PositionST {
		t.Fatalf("unexpected change: %+v", change)
	}

	caps, err := f.capRepo.ListByMatch(t.Context(), f.match.ID)
	if err != nil {
		t.Fatalf("list caps: %v", err)
	}
	if len(caps) != 12 {
		t.Fatalf("unexpected cap count after substitution: %d", len(caps))
	}

	striker := f.capByName(t, "Striker")
	if striker.StopMinute != 60 {
		t.Fatalf("outgoing stint should close at the change minute: %d", striker.StopMinute)
	}
	sub := f.capByName(t, "SuperSub")
	if sub.StartMinute != 60 || sub.StopMinute != match.RegulationLength {
		t.Fatalf("incoming stint bounds wrong: %+v", sub)
	}
	if sub.PlayerID != "p-12" || sub.KitNo == nil || *sub.KitNo != 14 {
		t.Fatalf("incoming cap should carry roster metadata: %+v", sub)
	}
}

func TestMatchService_ApplyFormation_NoDifferenceIsNoOp(t *testing.T) {
	f := newMatchFixture(t)

	updated, err := f.svc.ApplyFormation(t.Context(), f.match.ID, f.lineup, 60, nil)
	if err != nil {
		t.Fatalf("apply formation: %v", err)
	}
	if len(updated.Changes) != 0 {
		t.Fatalf("identical roster should record no changes, got %d", len(updated.Changes))
	}
}

func TestMatchService_RemoveChange_RebuildsCaps(t *testing.T) {
	f := newMatchFixture(t)

	if _, err := f.svc.AddGoal(t.Context(), f.match.ID, match.Goal{
		Minute: 23,
		Scorer: "Striker",
		Home:   true,
	}); err != nil {
		t.Fatalf("add goal: %v", err)
	}

	desired := make(map[player.Position]string, len(f.lineup))
	for pos, playerID := range f.lineup {
		desired[pos] = playerID
	}
	desired[player.PositionST] = "p-12"
	if _, err := f.svc.ApplyFormation(t.Context(), f.match.ID, desired, 60, nil); err != nil {
		t.Fatalf("apply formation: %v", err)
	}

	updated, err := f.svc.RemoveChange(t.Context(), f.match.ID, 0)
	if err != nil {
		t.Fatalf("remove change: %v", err)
	}
	if len(updated.Changes) != 0 {
		t.Fatalf("change list should be empty, got %d", len(updated.Changes))
	}

	caps, err := f.capRepo.ListByMatch(t.Context(), f.match.ID)
	if err != nil {
		t.Fatalf("list caps: %v", err)
	}
	if len(caps) != 11 {
		t.Fatalf("removing the substitution should drop the substitute cap: %d", len(caps))
	}

	striker := f.capByName(t, "Striker")
	if striker.StopMinute != match.RegulationLength {
		t.Fatalf("reverted stint should run to full time: %d", striker.StopMinute)
	}
	if striker.NumGoals != 1 {
		t.Fatalf("goal stats should survive the rebuild: %+v", striker)
	}
}

func TestMatchService_RateCap(t *testing.T) {
	f := newMatchFixture(t)

	keeper := f.capByName(t, "Keeper")
	rated, err := f.svc.RateCap(t.Context(), keeper.ID, 82)
	if err != nil {
		t.Fatalf("rate cap: %v", err)
	}
	if rated.Rating == nil || *rated.Rating != 82 {
		t.Fatalf("rating not stored: %+v", rated)
	}

	if _, err := f.svc.RateCap(t.Context(), keeper.ID, 150); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for out-of-range rating, got %v", err)
	}
}

func TestMatchService_Delete_RemovesCaps(t *testing.T) {
	f := newMatchFixture(t)

	if err := f.svc.Delete(t.Context(), f.match.ID); err != nil {
		t.Fatalf("delete match: %v", err)
	}
	caps, err := f.capRepo.ListByMatch(t.Context(), f.match.ID)
	if err != nil {
		t.Fatalf("list caps: %v", err)
	}
	if len(caps) != 0 {
		t.Fatalf("match delete should cascade to caps: %d left", len(caps))
	}
	if _, err := f.svc.GetByID(t.Context(), f.match.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
