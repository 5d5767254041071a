package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, t Team) (Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	ListByUser(ctx context.Context, userID string) ([]Team, error)
	Update(ctx context.Context, t Team) error
	Delete(ctx context.Context, teamID string) error
}
