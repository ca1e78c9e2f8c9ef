package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"max.ks1230/expense-bot/internal/entity/expense"
)

// InMemStorage keeps expenses in process memory. It backs local runs and tests.
type InMemStorage struct {
	mu       sync.RWMutex
	expenses []expense.Record
	now      func() time.Time
}

func NewInMemStorage(now func() time.Time) *InMemStorage {
	if now == nil {
		now = time.Now
	}
	return &InMemStorage{now: now}
}

func (s *InMemStorage) SaveExpense(_ context.Context, rec expense.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.Created = s.now()
	s.expenses = append(s.expenses, rec)
	return nil
}

func (s *InMemStorage) DeleteUserExpenses(_ context.Context, userID string) (int64, error) {
	return s.deleteWhere(func(rec expense.Record) bool {
		return rec.UserID == userID
	}), nil
}

func (s *InMemStorage) DeleteUserExpensesMatching(_ context.Context, userID, keyword string) (int64, error) {
	keyword = strings.ToLower(keyword)
	return s.deleteWhere(func(rec expense.Record) bool {
		return rec.UserID == userID && strings.Contains(strings.ToLower(rec.Description), keyword)
	}), nil
}

func (s *InMemStorage) deleteWhere(match func(expense.Record) bool) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.expenses[:0]
	var deleted int64
	for _, rec := range s.expenses {
		if match(rec) {
			deleted++
			continue
		}
		kept = append(kept, rec)
	}
	s.expenses = kept
	return deleted
}

func (s *InMemStorage) SumExpenses(_ context.Context, userID string, period expense.Period) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, rec := range s.expenses {
		if rec.UserID == userID && period.Contains(rec.Created) {
			total += rec.Amount
		}
	}
	return total, nil
}

// SumExpensesByCategory lists categories by name, like the Postgres backend.
func (s *InMemStorage) SumExpensesByCategory(_ context.Context, userID string, period expense.Period) ([]expense.CategoryTotal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	index := make(map[string]int)
	totals := make([]expense.CategoryTotal, 0)
	for _, rec := range s.expenses {
		if rec.UserID != userID || !period.Contains(rec.Created) {
			continue
		}
		i, ok := index[rec.Category]
		if !ok {
			i = len(totals)
			index[rec.Category] = i
			totals = append(totals, expense.CategoryTotal{Category: rec.Category})
		}
		totals[i].Amount += rec.Amount
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Category < totals[j].Category
	})
	return totals, nil
}

// Expenses returns a copy of everything stored for userID.
func (s *InMemStorage) Expenses(userID string) []expense.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]expense.Record, 0)
	for _, rec := range s.expenses {
		if rec.UserID == userID {
			res = append(res, rec)
		}
	}
	return res
}
