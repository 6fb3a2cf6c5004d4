package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"strive/backend/internal/domain"
	"strive/backend/internal/repository"
)

// WorkoutService handles workout submission and history retrieval.
type WorkoutService interface {
	// Submit persists the session and applies its stats to the account.
	Submit(ctx context.Context, accountID primitive.ObjectID, session *domain.WorkoutSession) error
	// History returns the account's sessions, newest first.
	History(ctx context.Context, accountID primitive.ObjectID) ([]domain.WorkoutSession, error)
}

type workoutService struct {
	accountRepo repository.AccountRepository
	workoutRepo repository.WorkoutRepository
	now         func() time.Time
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(accountRepo repository.AccountRepository, workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{
		accountRepo: accountRepo,
		workoutRepo: workoutRepo,
		now:         time.Now,
	}
}

// Submit validates that the account exists, persists the session verbatim
// plus a server creation time, and applies the recomputed stats to the
// account in one atomic update. The client-reported totalWeight on the
// session is stored as-is but never used for the account's running total.
//
// If the stats update fails after the session insert succeeded, the session
// stays persisted and the request fails — there is no compensating rollback.
// Known gap, preserved; see README.
func (s *workoutService) Submit(ctx context.Context, accountID primitive.ObjectID, session *domain.WorkoutSession) error {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	}

	session.AccountID = accountID
	session.CreatedAt = s.now().UTC()
	for i := range session.Exercises {
		if session.Exercises[i].ID == "" {
			session.Exercises[i].ID = uuid.NewString()
		}
	}

	if _, err := s.workoutRepo.Create(ctx, session); err != nil {
		return err
	}

	maxima, delta := ApplySubmission(account.Maxima(), session.Exercises)
	return s.accountRepo.ApplyStats(ctx, accountID, maxima, delta)
}

// History validates the account exists, then returns its sessions ordered by
// timestamp descending (the repository guarantees the order).
func (s *workoutService) History(ctx context.Context, accountID primitive.ObjectID) ([]domain.WorkoutSession, error) {
	if _, err := s.accountRepo.GetByID(ctx, accountID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return s.workoutRepo.GetByAccountID(ctx, accountID)
}
