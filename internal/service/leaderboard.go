package service

import (
	"context"
	"sort"

	"strive/backend/internal/domain"
	"strive/backend/internal/repository"
)

// LeaderboardService produces the ranked boards shown on the leaderboards
// page.
type LeaderboardService interface {
	GetLeaderboard(ctx context.Context) (domain.Leaderboard, error)
}

type leaderboardService struct {
	accountRepo repository.AccountRepository
}

// NewLeaderboardService creates a new instance of leaderboardService.
func NewLeaderboardService(accountRepo repository.AccountRepository) LeaderboardService {
	return &leaderboardService{accountRepo: accountRepo}
}

func (s *leaderboardService) GetLeaderboard(ctx context.Context) (domain.Leaderboard, error) {
	accounts, err := s.accountRepo.GetAll(ctx)
	if err != nil {
		return domain.Leaderboard{}, err
	}
	return BuildLeaderboard(accounts), nil
}

// BuildLeaderboard projects the full account set into ranked boards. The
// overview tab carries the cumulative total-weight board; the max tab carries
// only the bench press board — squat and deadlift maxima are tracked on the
// account but have never been surfaced as boards.
//
// Pure projection: accounts are not mutated, and an empty account set yields
// boards with empty data, not an error.
func BuildLeaderboard(accounts []domain.Account) domain.Leaderboard {
	return domain.Leaderboard{
		Overview: []domain.Board{
			buildBoard("Total Weight Lifted", accounts, func(a domain.Account) float64 { return a.TotalWeight }),
		},
		Max: []domain.Board{
			buildBoard("Bench Press (Max)", accounts, func(a domain.Account) float64 { return a.MaxBench }),
		},
	}
}

func buildBoard(title string, accounts []domain.Account, value func(domain.Account) float64) domain.Board {
	entries := make([]domain.BoardEntry, 0, len(accounts))
	for _, account := range accounts {
		entries = append(entries, domain.BoardEntry{
			Name:  account.Name,
			Value: value(account),
		})
	}

	// Stable sort: equal values keep their input order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return domain.Board{Title: title, Data: entries}
}
