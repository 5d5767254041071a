package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gafferhq/gaffer/internal/domain/match"
)

type MatchRepository struct {
	mu    sync.RWMutex
	items map[string]match.Match
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{items: make(map[string]match.Match)}
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[m.ID] = cloneMatch(m)
	return m, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[matchID]
	if !ok {
		return match.Match{}, false, nil
	}
	return cloneMatch(m), true, nil
}

func (r *MatchRepository) ListByTeam(_ context.Context, teamID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, m := range r.items {
		if m.TeamID == teamID {
			out = append(out, cloneMatch(m))
		}
	}
	sortMatches(out)
	return out, nil
}

func (r *MatchRepository) ListByTeamBetween(_ context.Context, teamID string, from, to time.Time) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, m := range r.items {
		if m.TeamID != teamID {
			continue
		}
		if m.OccurredOn.Before(from) || !m.OccurredOn.Before(to) {
			continue
		}
		out = append(out, cloneMatch(m))
	}
	sortMatches(out)
	return out, nil
}

func (r *MatchRepository) Update(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[m.ID]; !ok {
		return errMissingRow
	}
	r.items[m.ID] = cloneMatch(m)
	return nil
}

func (r *MatchRepository) Delete(_ context.Context, matchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, matchID)
	return nil
}

func sortMatches(items []match.Match) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].OccurredOn.Equal(items[j].OccurredOn) {
			return items[i].OccurredOn.Before(items[j].OccurredOn)
		}
		return items[i].ID < items[j].ID
	})
}

func cloneMatch(m match.Match) match.Match {
	out := m
	out.Goals = append([]match.Goal(nil), m.Goals...)
	out.Bookings = append([]match.Booking(nil), m.Bookings...)
	out.Changes = append([]match.Change(nil), m.Changes...)
	return out
}
