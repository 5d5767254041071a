package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gafferhq/gaffer/internal/domain/cap"
)

type CapRepository struct {
	mu    sync.RWMutex
	items map[string]cap.Cap
}

func NewCapRepository() *CapRepository {
	return &CapRepository{items: make(map[string]cap.Cap)}
}

func (r *CapRepository) Create(_ context.Context, c cap.Cap) (cap.Cap, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[c.ID] = cloneCap(c)
	return c, nil
}

func (r *CapRepository) GetByID(_ context.Context, capID string) (cap.Cap, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[capID]
	if !ok {
		return cap.Cap{}, false, nil
	}
	return cloneCap(c), true, nil
}

func (r *CapRepository) ListByMatch(_ context.Context, matchID string) ([]cap.Cap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]cap.Cap, 0)
	for _, c := range r.items {
		if c.MatchID == matchID {
			out = append(out, cloneCap(c))
		}
	}
	sortCaps(out)
	return out, nil
}

func (r *CapRepository) ListByPlayer(_ context.Context, playerID string) ([]cap.Cap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]cap.Cap, 0)
	for _, c := range r.items {
		if c.PlayerID == playerID {
			out = append(out, cloneCap(c))
		}
	}
	sortCaps(out)
	return out, nil
}

func (r *CapRepository) Update(_ context.Context, c cap.Cap) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[c.ID]; !ok {
		return errMissingRow
	}
	r.items[c.ID] = cloneCap(c)
	return nil
}

func (r *CapRepository) Delete(_ context.Context, capID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, capID)
	return nil
}

func (r *CapRepository) DeleteSubstituteCaps(_ context.Context, matchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, c := range r.items {
		if c.MatchID == matchID && !c.IsStarting() {
			delete(r.items, id)
		}
	}
	return nil
}

func sortCaps(items []cap.Cap) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].StartMinute != items[j].StartMinute {
			return items[i].StartMinute < items[j].StartMinute
		}
		return items[i].ID < items[j].ID
	})
}

func cloneCap(c cap.Cap) cap.Cap {
	out := c
	if c.KitNo != nil {
		kit := *c.KitNo
		out.KitNo = &kit
	}
	if c.Rating != nil {
		rating := *c.Rating
		out.Rating = &rating
	}
	return out
}
