package reports

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/entity/expense"
	"max.ks1230/expense-bot/internal/logger"
)

const (
	totalOption      = "total:"
	byCategoryOption = "by-category:"
)

type expensesStorage interface {
	SumExpenses(ctx context.Context, userID string, period expense.Period) (int64, error)
	SumExpensesByCategory(ctx context.Context, userID string, period expense.Period) ([]expense.CategoryTotal, error)
}

//go:generate minimock -i expensesStorage -o ./mock/expenses_storage_mock.go -n ExpensesStorageMock
//go:generate minimock -i reportCache -o ./mock/report_cache_mock.go -n ReportCacheMock

type reportCache interface {
	GetReport(userID string, option string) (string, uint64, error)
	CacheReport(userID string, generation uint64, option string, report string) error
}

// cacheSlot is where a freshly computed report may be stored.
type cacheSlot struct {
	userID     string
	option     string
	generation uint64
	writable   bool
}

// Aggregator answers report queries. Storage errors are logged and reported as
// a false ok, an empty result is not an error.
type Aggregator struct {
	storage expensesStorage
	cache   reportCache
}

func NewAggregator(storage expensesStorage) *Aggregator {
	return &Aggregator{storage: storage}
}

func (a *Aggregator) WithCache(cache reportCache) *Aggregator {
	a.cache = cache
	return a
}

func (a *Aggregator) Total(ctx context.Context, userID string, period expense.Period) (int64, bool) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "reportTotal")
	defer span.Finish()

	cached, slot, hit := a.lookup(userID, totalOption+period.String())
	if hit {
		if total, err := strconv.ParseInt(cached, 10, 64); err == nil {
			return total, true
		}
	}

	total, err := a.storage.SumExpenses(ctx, userID, period)
	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("cannot sum expenses",
			zap.String("userID", userID), zap.Stringer("period", period), zap.Error(err))
		return 0, false
	}

	a.store(slot, strconv.FormatInt(total, 10))
	return total, true
}

func (a *Aggregator) TotalsByCategory(ctx context.Context, userID string, period expense.Period) ([]expense.CategoryTotal, bool) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "reportByCategory")
	defer span.Finish()

	cached, slot, hit := a.lookup(userID, byCategoryOption+period.String())
	if hit {
		var totals []expense.CategoryTotal
		if err := json.Unmarshal([]byte(cached), &totals); err == nil {
			return totals, true
		}
	}

	totals, err := a.storage.SumExpensesByCategory(ctx, userID, period)
	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("cannot sum expenses by category",
			zap.String("userID", userID), zap.Stringer("period", period), zap.Error(err))
		return nil, false
	}

	if raw, err := json.Marshal(totals); err == nil {
		a.store(slot, string(raw))
	}
	return totals, true
}

// lookup only hands out a writable slot when the cache answered, so a report is
// never stored under a generation that was not read first.
func (a *Aggregator) lookup(userID, option string) (string, cacheSlot, bool) {
	slot := cacheSlot{userID: userID, option: option}
	if a.cache == nil {
		return "", slot, false
	}

	report, gen, err := a.cache.GetReport(userID, option)
	switch {
	case err == nil:
		slot.generation, slot.writable = gen, true
		return report, slot, true
	case errors.Is(err, memcache.ErrCacheMiss):
		slot.generation, slot.writable = gen, true
	default:
		logger.Warn("cannot read report cache", zap.String("userID", userID), zap.Error(err))
	}
	return "", slot, false
}

func (a *Aggregator) store(slot cacheSlot, report string) {
	if !slot.writable {
		return
	}
	if err := a.cache.CacheReport(slot.userID, slot.generation, slot.option, report); err != nil {
		logger.Warn("cannot cache report", zap.String("userID", slot.userID), zap.Error(err))
	}
}
