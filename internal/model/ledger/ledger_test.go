package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-bot/internal/entity/expense"
	"max.ks1230/expense-bot/internal/model/storage"
)

var errDown = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

type brokenStorage struct{}

func (brokenStorage) SaveExpense(context.Context, expense.Record) error { return errDown }
func (brokenStorage) DeleteUserExpenses(context.Context, string) (int64, error) {
	return 0, errDown
}
func (brokenStorage) DeleteUserExpensesMatching(context.Context, string, string) (int64, error) {
	return 0, errDown
}

type recordingCache struct {
	invalidated []string
	err         error
}

func (c *recordingCache) InvalidateCache(userID string) error {
	c.invalidated = append(c.invalidated, userID)
	return c.err
}

type recordingEvents struct {
	events []expense.Event
	err    error
}

func (e *recordingEvents) Publish(_ context.Context, event expense.Event) error {
	e.events = append(e.events, event)
	return e.err
}

var fixedNow = time.Date(2024, time.April, 2, 10, 0, 0, 0, time.UTC)

func newLedger(s expensesStorage) (*Ledger, *recordingCache, *recordingEvents) {
	cache, events := &recordingCache{}, &recordingEvents{}
	l := New(s).WithCache(cache).WithEvents(events)
	l.now = func() time.Time { return fixedNow }
	return l, cache, events
}

func Test_OnRecord_ShouldSaveInvalidateAndPublish(t *testing.T) {
	s := storage.NewInMemStorage(nil)
	l, cache, events := newLedger(s)

	ok := l.Record(context.Background(), "123", "makanan", 15000, "kopi")

	require.True(t, ok)
	saved := s.Expenses("123")
	require.Len(t, saved, 1)
	assert.Equal(t, int64(15000), saved[0].Amount)
	assert.Equal(t, "makanan", saved[0].Category)
	assert.Equal(t, "kopi", saved[0].Description)
	assert.Equal(t, []string{"123"}, cache.invalidated)
	assert.Equal(t, []expense.Event{{
		Type:        expense.EventRecorded,
		UserID:      "123",
		Category:    "makanan",
		Amount:      15000,
		Description: "kopi",
		At:          fixedNow,
	}}, events.events)
}

func Test_OnNegativeAmount_ShouldRefuse(t *testing.T) {
	s := storage.NewInMemStorage(nil)
	l, cache, _ := newLedger(s)

	assert.False(t, l.Record(context.Background(), "123", "makanan", -1, "kopi"))
	assert.Empty(t, s.Expenses("123"))
	assert.Empty(t, cache.invalidated)
}

func Test_OnDeleteMatching_ShouldReportWhetherAnythingMatched(t *testing.T) {
	ctx := context.Background()
	s := storage.NewInMemStorage(nil)
	l, cache, events := newLedger(s)
	require.True(t, l.Record(ctx, "123", "makanan", 15000, "kopi"))
	require.True(t, l.Record(ctx, "456", "makanan", 15000, "kopi"))
	cache.invalidated, events.events = nil, nil

	assert.False(t, l.DeleteMatching(ctx, "123", "teh"))
	assert.Empty(t, cache.invalidated)

	assert.True(t, l.DeleteMatching(ctx, "123", "kopi"))
	assert.Empty(t, s.Expenses("123"))
	assert.Len(t, s.Expenses("456"), 1)
	assert.Equal(t, []string{"123"}, cache.invalidated)
	require.Len(t, events.events, 1)
	assert.Equal(t, expense.EventDeletedMatching, events.events[0].Type)
	assert.Equal(t, "kopi", events.events[0].Keyword)
	assert.Equal(t, int64(1), events.events[0].Deleted)

	assert.False(t, l.DeleteMatching(ctx, "123", "kopi"))
}

func Test_OnDeleteAll_ShouldSucceedEvenWithoutRecords(t *testing.T) {
	l, cache, events := newLedger(storage.NewInMemStorage(nil))

	assert.True(t, l.DeleteAll(context.Background(), "123"))
	assert.Equal(t, []string{"123"}, cache.invalidated)
	require.Len(t, events.events, 1)
	assert.Equal(t, expense.EventDeletedAll, events.events[0].Type)
}

func Test_OnStorageFailure_ShouldReturnFalseAndSkipSideEffects(t *testing.T) {
	ctx := context.Background()
	l, cache, events := newLedger(brokenStorage{})

	assert.False(t, l.Record(ctx, "123", "makanan", 15000, "kopi"))
	assert.False(t, l.DeleteAll(ctx, "123"))
	assert.False(t, l.DeleteMatching(ctx, "123", "kopi"))
	assert.Empty(t, cache.invalidated)
	assert.Empty(t, events.events)
}

func Test_OnSideEffectFailure_ShouldStillSucceed(t *testing.T) {
	s := storage.NewInMemStorage(nil)
	l, cache, events := newLedger(s)
	cache.err = errors.New("memcache down")
	events.err = errors.New("kafka down")

	assert.True(t, l.Record(context.Background(), "123", "listrik", 2000000, "listrik"))
	assert.Len(t, s.Expenses("123"), 1)
}

func Test_OnNoOptionalDependencies_ShouldWork(t *testing.T) {
	s := storage.NewInMemStorage(nil)

	assert.True(t, New(s).Record(context.Background(), "123", "makanan", 1, "nasi"))
}
