package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gafferhq/gaffer/internal/domain/player"
)

type PlayerRepository struct {
	mu    sync.RWMutex
	items map[string]player.Player
}

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{items: make(map[string]player.Player)}
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[p.ID] = clonePlayer(p)
	return p, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[playerID]
	if !ok {
		return player.Player{}, false, nil
	}
	return clonePlayer(p), true, nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, p := range r.items {
		if p.TeamID == teamID {
			out = append(out, clonePlayer(p))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[p.ID]; !ok {
		return errMissingRow
	}
	r.items[p.ID] = clonePlayer(p)
	return nil
}

func (r *PlayerRepository) UpdateStatus(_ context.Context, playerID string, status player.Status, clearKit bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[playerID]
	if !ok {
		return errMissingRow
	}
	p.Status = status
	if clearKit {
		p.KitNo = nil
	}
	r.items[playerID] = p
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, playerID)
	return nil
}

// clonePlayer copies the embedded event slices so callers never share
// backing arrays with the store.
func clonePlayer(p player.Player) player.Player {
	out := p
	if p.KitNo != nil {
		kit := *p.KitNo
		out.KitNo = &kit
	}
	out.SecondaryPos = append([]player.Position(nil), p.SecondaryPos...)
	out.Contracts = append([]player.Contract(nil), p.Contracts...)
	out.Injuries = append([]player.Injury(nil), p.Injuries...)
	out.Loans = append([]player.Loan(nil), p.Loans...)
	out.Transfers = append([]player.Transfer(nil), p.Transfers...)
	return out
}
