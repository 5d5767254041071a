package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gafferhq/gaffer/internal/domain/competition"
)

type CompetitionRepository struct {
	mu    sync.RWMutex
	items map[string]competition.Competition
}

func NewCompetitionRepository() *CompetitionRepository {
	return &CompetitionRepository{items: make(map[string]competition.Competition)}
}

func (r *CompetitionRepository) Create(_ context.Context, c competition.Competition) (competition.Competition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[c.ID] = cloneCompetition(c)
	return c, nil
}

func (r *CompetitionRepository) GetByID(_ context.Context, competitionID string) (competition.Competition, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[competitionID]
	if !ok {
		return competition.Competition{}, false, nil
	}
	return cloneCompetition(c), true, nil
}

func (r *CompetitionRepository) ListByTeam(_ context.Context, teamID string) ([]competition.Competition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]competition.Competition, 0)
	for _, c := range r.items {
		if c.TeamID == teamID {
			out = append(out, cloneCompetition(c))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CompetitionRepository) Update(_ context.Context, c competition.Competition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[c.ID]; !ok {
		return errMissingRow
	}
	r.items[c.ID] = cloneCompetition(c)
	return nil
}

func (r *CompetitionRepository) Delete(_ context.Context, competitionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, competitionID)
	return nil
}

func cloneCompetition(c competition.Competition) competition.Competition {
	out := c
	out.Table = append([]competition.TableRow(nil), c.Table...)
	return out
}
