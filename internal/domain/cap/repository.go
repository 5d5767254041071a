package cap

import "context"

// Repository describes cap persistence needs from use cases. Stat
// updates are written one cap at a time: the caller treats them as a
// batch of independent writes, not a transaction.
type Repository interface {
	Create(ctx context.Context, c Cap) (Cap, error)
	GetByID(ctx context.Context, capID string) (Cap, bool, error)
	ListByMatch(ctx context.Context, matchID string) ([]Cap, error)
	ListByPlayer(ctx context.Context, playerID string) ([]Cap, error)
	Update(ctx context.Context, c Cap) error
	Delete(ctx context.Context, capID string) error
	// DeleteSubstituteCaps removes every cap opened after kickoff,
	// clearing the ground for a delete-and-replay rebuild.
	DeleteSubstituteCaps(ctx context.Context, matchID string) error
}
