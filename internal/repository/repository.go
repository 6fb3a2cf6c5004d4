package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"strive/backend/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors from driver errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// AccountRepository defines the interface for interacting with account data.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Account, error)
	GetByNameAndEmail(ctx context.Context, name, email string) (*domain.Account, error)
	GetAll(ctx context.Context) ([]domain.Account, error)
	// ApplyStats sets the three lift maxima and increments totalWeight by
	// delta in a single atomic single-document update. Concurrent submissions
	// for one account must not lose increments, so implementations may not
	// read-modify-write the whole document.
	ApplyStats(ctx context.Context, id primitive.ObjectID, maxima domain.LiftMaxima, delta float64) error
}

// WorkoutRepository defines the interface for interacting with workout
// session data.
type WorkoutRepository interface {
	Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error)
	// GetByAccountID returns all sessions for the account, newest first
	// (descending by the client-reported timestamp).
	GetByAccountID(ctx context.Context, accountID primitive.ObjectID) ([]domain.WorkoutSession, error)
}
