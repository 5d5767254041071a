package competition

import "context"

// Repository describes competition persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, c Competition) (Competition, error)
	GetByID(ctx context.Context, competitionID string) (Competition, bool, error)
	ListByTeam(ctx context.Context, teamID string) ([]Competition, error)
	Update(ctx context.Context, c Competition) error
	Delete(ctx context.Context, competitionID string) error
}
