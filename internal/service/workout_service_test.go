package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"strive/backend/internal/domain"
	"strive/backend/internal/repository"
)

// --- In-memory fakes ---

type appliedStats struct {
	id     primitive.ObjectID
	maxima domain.LiftMaxima
	delta  float64
}

type fakeAccountRepo struct {
	accounts map[primitive.ObjectID]*domain.Account
	applied  []appliedStats
	applyErr error
}

func newFakeAccountRepo(accounts ...*domain.Account) *fakeAccountRepo {
	repo := &fakeAccountRepo{accounts: map[primitive.ObjectID]*domain.Account{}}
	for _, a := range accounts {
		repo.accounts[a.ID] = a
	}
	return repo
}

func (r *fakeAccountRepo) Create(ctx context.Context, account *domain.Account) (primitive.ObjectID, error) {
	account.ID = primitive.NewObjectID()
	r.accounts[account.ID] = account
	return account.ID, nil
}

func (r *fakeAccountRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Account, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return account, nil
}

func (r *fakeAccountRepo) GetByNameAndEmail(ctx context.Context, name, email string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Name == name && a.Email == email {
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeAccountRepo) GetAll(ctx context.Context) ([]domain.Account, error) {
	all := []domain.Account{}
	for _, a := range r.accounts {
		all = append(all, *a)
	}
	return all, nil
}

func (r *fakeAccountRepo) ApplyStats(ctx context.Context, id primitive.ObjectID, maxima domain.LiftMaxima, delta float64) error {
	if r.applyErr != nil {
		return r.applyErr
	}
	if _, ok := r.accounts[id]; !ok {
		return repository.ErrNotFound
	}
	r.applied = append(r.applied, appliedStats{id: id, maxima: maxima, delta: delta})
	return nil
}

type fakeWorkoutRepo struct {
	sessions []domain.WorkoutSession
}

func (r *fakeWorkoutRepo) Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error) {
	session.ID = primitive.NewObjectID()
	r.sessions = append(r.sessions, *session)
	return session.ID, nil
}

// GetByAccountID mirrors the Mongo repository's contract: newest first by
// the ISO-8601 timestamp.
func (r *fakeWorkoutRepo) GetByAccountID(ctx context.Context, accountID primitive.ObjectID) ([]domain.WorkoutSession, error) {
	matched := []domain.WorkoutSession{}
	for _, s := range r.sessions {
		if s.AccountID == accountID {
			matched = append(matched, s)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp > matched[j].Timestamp
	})
	return matched, nil
}

// --- Tests ---

func TestSubmitUnknownAccountWritesNothing(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	workoutRepo := &fakeWorkoutRepo{}
	svc := NewWorkoutService(accountRepo, workoutRepo)

	err := svc.Submit(context.Background(), primitive.NewObjectID(), &domain.WorkoutSession{
		Exercises: []domain.Exercise{{Name: "Squat", Weight: 100, Reps: 5, Sets: 3}},
		Timestamp: "2025-06-01T10:00:00Z",
	})

	require.ErrorIs(t, err, ErrAccountNotFound)
	assert.Empty(t, workoutRepo.sessions)
	assert.Empty(t, accountRepo.applied)
}

func TestSubmitPersistsSessionAndAppliesStats(t *testing.T) {
	account := &domain.Account{
		ID:       primitive.NewObjectID(),
		Name:     "alice",
		MaxBench: 100,
	}
	accountRepo := newFakeAccountRepo(account)
	workoutRepo := &fakeWorkoutRepo{}
	svc := NewWorkoutService(accountRepo, workoutRepo)

	session := &domain.WorkoutSession{
		SessionTime: 3600,
		Exercises: []domain.Exercise{
			{Name: "Bench Press", BodyPart: "Chest", Weight: 120, Reps: 5, Sets: 3},
		},
		TotalWeight: 1800,
		Timestamp:   "2025-06-01T10:00:00Z",
	}

	err := svc.Submit(context.Background(), account.ID, session)
	require.NoError(t, err)

	require.Len(t, workoutRepo.sessions, 1)
	stored := workoutRepo.sessions[0]
	assert.Equal(t, account.ID, stored.AccountID)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Equal(t, time.UTC, stored.CreatedAt.Location())
	assert.NotEmpty(t, stored.Exercises[0].ID, "server fills missing exercise ids")

	require.Len(t, accountRepo.applied, 1)
	applied := accountRepo.applied[0]
	assert.Equal(t, account.ID, applied.id)
	assert.Equal(t, 120.0, applied.maxima.Bench)
	assert.Equal(t, 1800.0, applied.delta)
}

func TestSubmitKeepsClientExerciseIDs(t *testing.T) {
	account := &domain.Account{ID: primitive.NewObjectID(), Name: "bob"}
	accountRepo := newFakeAccountRepo(account)
	workoutRepo := &fakeWorkoutRepo{}
	svc := NewWorkoutService(accountRepo, workoutRepo)

	err := svc.Submit(context.Background(), account.ID, &domain.WorkoutSession{
		Exercises: []domain.Exercise{
			{ID: "client-id-1", Name: "Squat", Weight: 100, Reps: 5, Sets: 3},
		},
		Timestamp: "2025-06-01T10:00:00Z",
	})

	require.NoError(t, err)
	assert.Equal(t, "client-id-1", workoutRepo.sessions[0].Exercises[0].ID)
}

func TestSubmitFailedStatsUpdateSurfacesError(t *testing.T) {
	account := &domain.Account{ID: primitive.NewObjectID(), Name: "carol"}
	accountRepo := newFakeAccountRepo(account)
	accountRepo.applyErr = repository.ErrUpdateFailed
	workoutRepo := &fakeWorkoutRepo{}
	svc := NewWorkoutService(accountRepo, workoutRepo)

	err := svc.Submit(context.Background(), account.ID, &domain.WorkoutSession{
		Exercises: []domain.Exercise{{Name: "Deadlift", Weight: 180, Reps: 3, Sets: 2}},
		Timestamp: "2025-06-01T10:00:00Z",
	})

	// No compensating rollback: the session stays persisted and the request
	// fails. Preserved behavior.
	require.Error(t, err)
	assert.Len(t, workoutRepo.sessions, 1)
}

func TestHistoryUnknownAccount(t *testing.T) {
	svc := NewWorkoutService(newFakeAccountRepo(), &fakeWorkoutRepo{})

	_, err := svc.History(context.Background(), primitive.NewObjectID())

	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestHistoryReturnsNewestFirst(t *testing.T) {
	account := &domain.Account{ID: primitive.NewObjectID(), Name: "dave"}
	accountRepo := newFakeAccountRepo(account)
	workoutRepo := &fakeWorkoutRepo{}
	svc := NewWorkoutService(accountRepo, workoutRepo)

	for _, ts := range []string{
		"2025-06-01T10:00:00Z",
		"2025-06-03T10:00:00Z",
		"2025-06-02T10:00:00Z",
	} {
		err := svc.Submit(context.Background(), account.ID, &domain.WorkoutSession{
			Exercises: []domain.Exercise{{Name: "Squat", Weight: 100, Reps: 5, Sets: 3}},
			Timestamp: ts,
		})
		require.NoError(t, err)
	}

	sessions, err := svc.History(context.Background(), account.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, "2025-06-03T10:00:00Z", sessions[0].Timestamp)
	assert.Equal(t, "2025-06-02T10:00:00Z", sessions[1].Timestamp)
	assert.Equal(t, "2025-06-01T10:00:00Z", sessions[2].Timestamp)
}
