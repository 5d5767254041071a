package squad

import "context"

// Repository describes squad persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, s Squad) (Squad, error)
	GetByID(ctx context.Context, squadID string) (Squad, bool, error)
	ListByTeam(ctx context.Context, teamID string) ([]Squad, error)
	Update(ctx context.Context, s Squad) error
	Delete(ctx context.Context, squadID string) error
}
