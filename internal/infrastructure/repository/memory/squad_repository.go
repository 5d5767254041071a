package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gafferhq/gaffer/internal/domain/squad"
)

type SquadRepository struct {
	mu    sync.RWMutex
	items map[string]squad.Squad
}

func NewSquadRepository() *SquadRepository {
	return &SquadRepository{items: make(map[string]squad.Squad)}
}

func (r *SquadRepository) Create(_ context.Context, s squad.Squad) (squad.Squad, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[s.ID] = cloneSquad(s)
	return s, nil
}

func (r *SquadRepository) GetByID(_ context.Context, squadID string) (squad.Squad, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[squadID]
	if !ok {
		return squad.Squad{}, false, nil
	}
	return cloneSquad(s), true, nil
}

func (r *SquadRepository) ListByTeam(_ context.Context, teamID string) ([]squad.Squad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]squad.Squad, 0)
	for _, s := range r.items {
		if s.TeamID == teamID {
			out = append(out, cloneSquad(s))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *SquadRepository) Update(_ context.Context, s squad.Squad) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[s.ID]; !ok {
		return errMissingRow
	}
	r.items[s.ID] = cloneSquad(s)
	return nil
}

func (r *SquadRepository) Delete(_ context.Context, squadID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, squadID)
	return nil
}

func cloneSquad(s squad.Squad) squad.Squad {
	out := s
	out.PlayerIDs = append([]string(nil), s.PlayerIDs...)
	return out
}
