package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"strive/backend/internal/domain"
)

func TestRegisterCreatesAccountWithZeroStats(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	account, err := svc.Register(context.Background(), "alice@example.com", "alice93", "Alice")

	require.NoError(t, err)
	assert.NotEqual(t, primitive.NilObjectID, account.ID)
	assert.Equal(t, "alice@example.com", account.Email)
	assert.Zero(t, account.MaxBench)
	assert.Zero(t, account.MaxSquat)
	assert.Zero(t, account.MaxDeadlift)
	assert.Zero(t, account.TotalWeight)
	assert.NotNil(t, account.Workouts)
	assert.Empty(t, account.Workouts)
}

func TestRegisterDoesNotPreventDuplicates(t *testing.T) {
	// Registration never checked for an existing email; two registrations
	// with identical details both succeed. Preserved behavior.
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	first, err := svc.Register(context.Background(), "bob@example.com", "bob", "Bob")
	require.NoError(t, err)
	second, err := svc.Register(context.Background(), "bob@example.com", "bob", "Bob")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestRegisterRejectsEmptyFields(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo())

	_, err := svc.Register(context.Background(), "", "user", "Name")

	assert.Error(t, err)
}

func TestLoginMatchesNameAndEmail(t *testing.T) {
	account := &domain.Account{
		ID:    primitive.NewObjectID(),
		Name:  "Alice",
		Email: "alice@example.com",
	}
	svc := NewAccountService(newFakeAccountRepo(account))

	found, err := svc.Login(context.Background(), "Alice", "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, account.ID, found.ID)
}

func TestLoginMissReturnsNotFound(t *testing.T) {
	account := &domain.Account{
		ID:    primitive.NewObjectID(),
		Name:  "Alice",
		Email: "alice@example.com",
	}
	svc := NewAccountService(newFakeAccountRepo(account))

	// Right email, wrong name: both must match.
	_, err := svc.Login(context.Background(), "Alicia", "alice@example.com")

	assert.ErrorIs(t, err, ErrAccountNotFound)
}
