package service

import (
	"context"
	"errors"

	"strive/backend/internal/domain"
	"strive/backend/internal/repository"
)

// --- Error Definitions ---
var (
	ErrAccountNotFound = errors.New("account not found")
)

// AccountService handles registration and login.
//
// Login is an identity claim check (name+email match), not an authentication
// protocol: the system stores no credentials. Registration performs no
// duplicate email/username check. Both facts are preserved from the original
// behavior; see README, "Trust boundaries" and "Known gaps".
type AccountService interface {
	Register(ctx context.Context, email, username, name string) (*domain.Account, error)
	Login(ctx context.Context, name, email string) (*domain.Account, error)
}

type accountService struct {
	accountRepo repository.AccountRepository
}

// NewAccountService creates a new instance of accountService.
func NewAccountService(accountRepo repository.AccountRepository) AccountService {
	return &accountService{accountRepo: accountRepo}
}

// Register creates a new account with zero-valued maxima. The totalWeight
// field is absent from the stored document until the first submission.
func (s *accountService) Register(ctx context.Context, email, username, name string) (*domain.Account, error) {
	if email == "" || username == "" || name == "" {
		return nil, errors.New("email, username, and name cannot be empty")
	}

	account := &domain.Account{
		Email:    email,
		Username: username,
		Name:     name,
		Workouts: []domain.Exercise{},
	}

	accountID, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		return nil, err
	}
	account.ID = accountID

	return account, nil
}

// Login looks up the account whose name AND email both match exactly.
// A miss returns ErrAccountNotFound; the handler turns that into a soft
// 200-level payload rather than an HTTP error.
func (s *accountService) Login(ctx context.Context, name, email string) (*domain.Account, error) {
	if name == "" || email == "" {
		return nil, errors.New("name and email cannot be empty")
	}

	account, err := s.accountRepo.GetByNameAndEmail(ctx, name, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}
