// Package ledger is the boundary between intent handlers and the record store.
// Store errors stop here: they are logged and reported as a false result.
package ledger

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/entity/expense"
	"max.ks1230/expense-bot/internal/logger"
)

type expensesStorage interface {
	SaveExpense(ctx context.Context, rec expense.Record) error
	DeleteUserExpenses(ctx context.Context, userID string) (int64, error)
	DeleteUserExpensesMatching(ctx context.Context, userID, keyword string) (int64, error)
}

type cacheInvalidator interface {
	InvalidateCache(userID string) error
}

type eventPublisher interface {
	Publish(ctx context.Context, event expense.Event) error
}

type Ledger struct {
	storage expensesStorage
	cache   cacheInvalidator
	events  eventPublisher
	now     func() time.Time
}

func New(storage expensesStorage) *Ledger {
	return &Ledger{
		storage: storage,
		now:     time.Now,
	}
}

func (l *Ledger) WithCache(cache cacheInvalidator) *Ledger {
	l.cache = cache
	return l
}

func (l *Ledger) WithEvents(events eventPublisher) *Ledger {
	l.events = events
	return l
}

func (l *Ledger) Record(ctx context.Context, userID, category string, amount int64, description string) bool {
	span, ctx := opentracing.StartSpanFromContext(ctx, "recordExpense")
	defer span.Finish()

	if amount < 0 {
		logger.Warn("refusing negative amount", zap.String("userID", userID), zap.Int64("amount", amount))
		return false
	}

	err := l.storage.SaveExpense(ctx, expense.Record{
		UserID:      userID,
		Category:    category,
		Amount:      amount,
		Description: description,
	})
	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("cannot save expense", zap.String("userID", userID), zap.Error(err))
		return false
	}

	l.changed(ctx, expense.Event{
		Type:        expense.EventRecorded,
		UserID:      userID,
		Category:    category,
		Amount:      amount,
		Description: description,
	})
	return true
}

func (l *Ledger) DeleteAll(ctx context.Context, userID string) bool {
	span, ctx := opentracing.StartSpanFromContext(ctx, "deleteAllExpenses")
	defer span.Finish()

	deleted, err := l.storage.DeleteUserExpenses(ctx, userID)
	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("cannot delete expenses", zap.String("userID", userID), zap.Error(err))
		return false
	}

	l.changed(ctx, expense.Event{
		Type:    expense.EventDeletedAll,
		UserID:  userID,
		Deleted: deleted,
	})
	return true
}

// DeleteMatching reports whether at least one expense was removed.
func (l *Ledger) DeleteMatching(ctx context.Context, userID, keyword string) bool {
	span, ctx := opentracing.StartSpanFromContext(ctx, "deleteMatchingExpenses")
	defer span.Finish()

	deleted, err := l.storage.DeleteUserExpensesMatching(ctx, userID, keyword)
	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("cannot delete matching expenses",
			zap.String("userID", userID), zap.String("keyword", keyword), zap.Error(err))
		return false
	}
	if deleted == 0 {
		return false
	}

	l.changed(ctx, expense.Event{
		Type:    expense.EventDeletedMatching,
		UserID:  userID,
		Keyword: keyword,
		Deleted: deleted,
	})
	return true
}

// changed runs after a successful mutation. Its failures never undo it.
func (l *Ledger) changed(ctx context.Context, event expense.Event) {
	if l.cache != nil {
		if err := l.cache.InvalidateCache(event.UserID); err != nil {
			logger.Warn("cannot invalidate report cache", zap.String("userID", event.UserID), zap.Error(err))
		}
	}
	if l.events != nil {
		event.At = l.now()
		if err := l.events.Publish(ctx, event); err != nil {
			logger.Warn("cannot publish expense event",
				zap.String("userID", event.UserID), zap.String("type", string(event.Type)), zap.Error(err))
		}
	}
}
