package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, p Player) (Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	Update(ctx context.Context, p Player) error
	// UpdateStatus patches the derived status (and optionally clears the
	// kit number) without rewriting the event sequences.
	UpdateStatus(ctx context.Context, playerID string, status Status, clearKit bool) error
	Delete(ctx context.Context, playerID string) error
}
