package messages

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-bot/internal/entity/expense"
	"max.ks1230/expense-bot/internal/model/category"
	"max.ks1230/expense-bot/internal/model/ledger"
	"max.ks1230/expense-bot/internal/model/messages/mock"
	"max.ks1230/expense-bot/internal/model/reports"
	"max.ks1230/expense-bot/internal/model/storage"
)

const (
	chatID = int64(123)
	userID = "123"
)

var today = time.Date(2024, time.May, 15, 9, 0, 0, 0, time.UTC)

type utcConfig struct{}

func (utcConfig) TimeLocation() *time.Location {
	return time.UTC
}

type expensesStorage interface {
	SaveExpense(ctx context.Context, rec expense.Record) error
	DeleteUserExpenses(ctx context.Context, userID string) (int64, error)
	DeleteUserExpensesMatching(ctx context.Context, userID, keyword string) (int64, error)
	SumExpenses(ctx context.Context, userID string, period expense.Period) (int64, error)
	SumExpensesByCategory(ctx context.Context, userID string, period expense.Period) ([]expense.CategoryTotal, error)
}

func newService(sender messageSender, s expensesStorage) *Service {
	service := NewService(sender, ledger.New(s), reports.NewAggregator(s), category.New(nil, ""), utcConfig{})
	service.handler.now = func() time.Time { return today }
	return service
}

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time {
	return c.t
}

type seed struct {
	at  time.Time
	rec expense.Record
}

func seeded(t *testing.T, entries ...seed) *storage.InMemStorage {
	t.Helper()
	c := &clock{}
	s := storage.NewInMemStorage(c.now)
	for _, e := range entries {
		c.t = e.at
		require.NoError(t, s.SaveExpense(context.Background(), e.rec))
	}
	c.t = today
	return s
}

func entry(at time.Time, user, cat string, value int64, description string) seed {
	return seed{at, expense.Record{UserID: user, Category: cat, Amount: value, Description: description}}
}

// strictStorage fails the test on any store access.
type strictStorage struct {
	t *testing.T
}

func (s strictStorage) SaveExpense(context.Context, expense.Record) error {
	s.t.Fatal("unexpected SaveExpense")
	return nil
}

func (s strictStorage) DeleteUserExpenses(context.Context, string) (int64, error) {
	s.t.Fatal("unexpected DeleteUserExpenses")
	return 0, nil
}

func (s strictStorage) DeleteUserExpensesMatching(context.Context, string, string) (int64, error) {
	s.t.Fatal("unexpected DeleteUserExpensesMatching")
	return 0, nil
}

func (s strictStorage) SumExpenses(context.Context, string, expense.Period) (int64, error) {
	s.t.Fatal("unexpected SumExpenses")
	return 0, nil
}

func (s strictStorage) SumExpensesByCategory(context.Context, string, expense.Period) ([]expense.CategoryTotal, error) {
	s.t.Fatal("unexpected SumExpensesByCategory")
	return nil, nil
}

var errDatabaseDown = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

type downStorage struct{}

func (downStorage) SaveExpense(context.Context, expense.Record) error { return errDatabaseDown }
func (downStorage) DeleteUserExpenses(context.Context, string) (int64, error) {
	return 0, errDatabaseDown
}
func (downStorage) DeleteUserExpensesMatching(context.Context, string, string) (int64, error) {
	return 0, errDatabaseDown
}
func (downStorage) SumExpenses(context.Context, string, expense.Period) (int64, error) {
	return 0, errDatabaseDown
}
func (downStorage) SumExpensesByCategory(context.Context, string, expense.Period) ([]expense.CategoryTotal, error) {
	return nil, errDatabaseDown
}

func send(t *testing.T, service *Service, text string) {
	t.Helper()
	err := service.HandleIncomingMessage(context.Background(), Message{ChatID: chatID, UserID: userID, Text: text})
	assert.NoError(t, err)
}

func Test_OnRecordExpense_ShouldSaveAndConfirm(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	s := seeded(t)

	sender.SendMessageMock.
		Expect("✅ Dicatat: kopi = Rp 15,000 (kategori: makanan)", chatID).
		Return(nil)

	send(t, newService(sender, s), "beli kopi 15000")

	saved := s.Expenses(userID)
	require.Len(t, saved, 1)
	assert.Equal(t, expense.Record{
		UserID:      userID,
		Category:    "makanan",
		Amount:      15000,
		Description: "kopi",
		Created:     today,
	}, saved[0])
}

func Test_OnMillionAmount_ShouldClassifyAndScale(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	s := seeded(t)

	sender.SendMessageMock.
		Expect("✅ Dicatat: listrik = Rp 2,000,000 (kategori: listrik)", chatID).
		Return(nil)

	send(t, newService(sender, s), "  Bayar Listrik 2 JUTA ")

	saved := s.Expenses(userID)
	require.Len(t, saved, 1)
	assert.Equal(t, int64(2000000), saved[0].Amount)
}

func Test_OnUnparseableAmount_ShouldNotInsert(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.Expect(unknownAmountMessage, chatID).Return(nil)

	send(t, newService(sender, strictStorage{t}), "beli kopi gratis")
}

func Test_OnMalformedRecord_ShouldReplyWithExample(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.Expect(wrongFormatMessage, chatID).Return(nil)

	send(t, newService(sender, strictStorage{t}), "beli kopi")
}

func Test_OnMonthlyReport_ShouldSumOnlyThatMonth(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	s := seeded(t,
		entry(time.Date(2024, time.March, 31, 23, 59, 0, 0, time.UTC), userID, "makanan", 1, "nasi"),
		entry(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), userID, "makanan", 15000, "kopi"),
		entry(time.Date(2024, time.April, 30, 22, 0, 0, 0, time.UTC), userID, "listrik", 100000, "token"),
		entry(time.Date(2024, time.April, 12, 0, 0, 0, 0, time.UTC), "456", "makanan", 999, "kopi"),
		entry(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), userID, "makanan", 5000, "kopi"),
	)

	sender.SendMessageMock.
		Expect("📆 Total pengeluaran bulan April: Rp 115,000", chatID).
		Return(nil)

	send(t, newService(sender, s), "laporan bulan april")
}

func Test_OnMonthWithoutRecords_ShouldReportZero(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect("📆 Total pengeluaran bulan Desember: Rp 0", chatID).
		Return(nil)

	send(t, newService(sender, seeded(t)), "laporan bulan desember")
}

func Test_OnUnknownMonth_ShouldNotQueryStore(t *testing.T) {
	for _, text := range []string{"laporan bulan mars", "laporan bulan"} {
		t.Run(text, func(t *testing.T) {
			m := minimock.NewController(t)
			defer m.Finish()
			sender := mock.NewMessageSenderMock(m)

			sender.SendMessageMock.Expect(unknownMonthMessage, chatID).Return(nil)

			send(t, newService(sender, strictStorage{t}), text)
		})
	}
}

func Test_OnCategoryReport_ShouldUseFirstMatchingCategory(t *testing.T) {
	s := seeded(t,
		entry(time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC), userID, "makanan", 70000, "nasi"),
		entry(time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC), userID, "makanan", 15000, "kopi"),
		entry(time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC), userID, "listrik", 2000000, "listrik"),
		entry(time.Date(2024, time.May, 4, 0, 0, 0, 0, time.UTC), userID, "makanan", 25000, "ayam"),
	)

	for text, want := range map[string]string{
		"laporan makan":   "📊 Total makanan: Rp 40,000",
		"laporan lis":     "📊 Total listrik: Rp 2,000,000",
		"laporan hiburan": "❗ Tidak ditemukan data pengeluaran untuk 'hiburan'",
	} {
		t.Run(text, func(t *testing.T) {
			m := minimock.NewController(t)
			defer m.Finish()
			sender := mock.NewMessageSenderMock(m)

			sender.SendMessageMock.Expect(want, chatID).Return(nil)

			send(t, newService(sender, s), text)
		})
	}
}

func Test_OnReport_ShouldSumSinceFirstOfMonth(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	s := seeded(t,
		entry(time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC), userID, "makanan", 70000, "nasi"),
		entry(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), userID, "makanan", 15000, "kopi"),
		entry(time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC), userID, "listrik", 2000000, "listrik"),
	)

	sender.SendMessageMock.
		Expect("📈 Total pengeluaran bulan ini: Rp 2,015,000", chatID).
		Return(nil)

	send(t, newService(sender, s), "laporan")
}

func Test_OnDeleteByKeyword_ShouldRemoveMatchingRecords(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	s := seeded(t,
		entry(today, userID, "makanan", 15000, "kopi"),
		entry(today, userID, "makanan", 20000, "nasi"),
		entry(today, "456", "makanan", 15000, "kopi"),
	)

	sender.SendMessageMock.
		Expect("🗑️ Pengeluaran 'kopi' berhasil dihapus.", chatID).
		Return(nil)

	send(t, newService(sender, s), "hapus beli kopi")

	left := s.Expenses(userID)
	require.Len(t, left, 1)
	assert.Equal(t, "nasi", left[0].Description)
	assert.Len(t, s.Expenses("456"), 1)
}

func Test_OnDeleteByKeywordWithoutMatch_ShouldReplyFailure(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	s := seeded(t, entry(today, "456", "makanan", 15000, "kopi"))

	sender.SendMessageMock.
		Expect("❌ Tidak ditemukan pengeluaran 'kopi'.", chatID).
		Return(nil)

	send(t, newService(sender, s), "hapus beli kopi")

	assert.Len(t, s.Expenses("456"), 1)
}

func Test_OnDeleteWithoutKeyword_ShouldNotTouchStore(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.Expect(wrongDeleteMessage, chatID).Return(nil)

	send(t, newService(sender, strictStorage{t}), "hapus beli")
}

func Test_OnDeleteAll_ShouldClearUsersRecords(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	s := seeded(t,
		entry(today, userID, "makanan", 15000, "kopi"),
		entry(today, "456", "makanan", 15000, "kopi"),
	)

	sender.SendMessageMock.Expect(deletedAllMessage, chatID).Return(nil)

	send(t, newService(sender, s), "hapus semua")

	assert.Empty(t, s.Expenses(userID))
	assert.Len(t, s.Expenses("456"), 1)
}

func Test_OnUnknownText_ShouldFallBackWithoutStoreAccess(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.Expect(dontUnderstandMessage, chatID).Return(nil)

	send(t, newService(sender, strictStorage{t}), "halo")
}

func Test_OnStartCommand_ShouldAnswerWithHelpMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.Expect(helpMessage, chatID).Return(nil)

	send(t, newService(sender, strictStorage{t}), "/start")
}

func Test_OnStoreFailure_ShouldReplyGenericFailure(t *testing.T) {
	for _, text := range []string{
		"beli kopi 15000",
		"hapus semua",
		"laporan",
		"laporan makan",
		"laporan bulan april",
	} {
		t.Run(text, func(t *testing.T) {
			m := minimock.NewController(t)
			defer m.Finish()
			sender := mock.NewMessageSenderMock(m)

			sender.SendMessageMock.Expect(storeFailureMessage, chatID).Return(nil)

			send(t, newService(sender, downStorage{}), text)
		})
	}
}

func Test_OnDeleteByKeywordStoreFailure_ShouldReplyNotFound(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.Expect("❌ Tidak ditemukan pengeluaran 'kopi'.", chatID).Return(nil)

	send(t, newService(sender, downStorage{}), "hapus beli kopi")
}

func Test_OnSendFailure_ShouldReturnErrorAfterSaving(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	s := seeded(t)
	sendErr := errors.New("telegram: Too Many Requests")

	sender.SendMessageMock.Return(sendErr)

	err := newService(sender, s).HandleIncomingMessage(context.Background(), Message{
		ChatID: chatID,
		UserID: userID,
		Text:   "beli kopi 15000",
	})

	assert.ErrorIs(t, err, sendErr)
	assert.Len(t, s.Expenses(userID), 1)
	assert.Len(t, sender.SendMessageMock.Calls(), 1)
}

func Test_OnFormatRupiah_ShouldGroupThousandsWithCommas(t *testing.T) {
	assert.Equal(t, "Rp 0", formatRupiah(0))
	assert.Equal(t, "Rp 999", formatRupiah(999))
	assert.Equal(t, "Rp 15,000", formatRupiah(15000))
	assert.Equal(t, "Rp 1,234,567", formatRupiah(1234567))
}
