package match

import (
	"context"
	"time"
)

// Repository describes match persistence needs from use cases. Event
// sequences are stored wholesale with the match row.
type Repository interface {
	Create(ctx context.Context, m Match) (Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	ListByTeam(ctx context.Context, teamID string) ([]Match, error)
	ListByTeamBetween(ctx context.Context, teamID string, from, to time.Time) ([]Match, error)
	Update(ctx context.Context, m Match) error
	Delete(ctx context.Context, matchID string) error
}
