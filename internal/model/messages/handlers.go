package messages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/entity/expense"
	"max.ks1230/expense-bot/internal/logger"
	"max.ks1230/expense-bot/internal/model/amount"
	"max.ks1230/expense-bot/internal/model/intent"
	"max.ks1230/expense-bot/internal/model/reports"
)

const (
	dontUnderstandMessage = "Maaf, aku belum paham maksud kamu 😔"
	helpMessage           = "Halo! Aku bot pencatat pengeluaran 🤖\n\n" +
		"Contoh perintah:\n" +
		"• beli kopi 15000\n" +
		"• bayar listrik 2 juta\n" +
		"• laporan\n" +
		"• laporan makanan\n" +
		"• laporan bulan april\n" +
		"• hapus beli kopi\n" +
		"• hapus semua"

	wrongFormatMessage    = "❌ Format salah. Contoh: beli kopi 15000"
	unknownAmountMessage  = "❗ Nominal tidak dikenali."
	unknownMonthMessage   = "❌ Bulan tidak dikenali."
	wrongDeleteMessage    = "❌ Format salah. Contoh: hapus beli kopi"
	deletedAllMessage     = "🗑️ Semua pengeluaran berhasil dihapus."
	storeFailureMessage   = "⚠️ Maaf, terjadi kesalahan. Coba lagi nanti."
	recordedTemplate      = "✅ Dicatat: %s = %s (kategori: %s)"
	deletedTemplate       = "🗑️ Pengeluaran '%s' berhasil dihapus."
	notDeletedTemplate    = "❌ Tidak ditemukan pengeluaran '%s'."
	monthTotalTemplate    = "📆 Total pengeluaran bulan %s: %s"
	categoryTotalTemplate = "📊 Total %s: %s"
	noCategoryTemplate    = "❗ Tidak ditemukan data pengeluaran untuk '%s'"
	currentTotalTemplate  = "📈 Total pengeluaran bulan ini: %s"
)

type expenseLedger interface {
	Record(ctx context.Context, userID, category string, amount int64, description string) bool
	DeleteAll(ctx context.Context, userID string) bool
	DeleteMatching(ctx context.Context, userID, keyword string) bool
}

type reportAggregator interface {
	Total(ctx context.Context, userID string, period expense.Period) (int64, bool)
	TotalsByCategory(ctx context.Context, userID string, period expense.Period) ([]expense.CategoryTotal, bool)
}

type classifier interface {
	Classify(description string) string
}

type handler func(ctx context.Context, in intent.Intent, userID string) string

type handlerMap map[intent.Kind]handler

// HandlerService turns one message into one reply. Each intent has exactly one
// handler, Unknown falls through to a fixed reply.
type HandlerService struct {
	handlersMap handlerMap
	ledger      expenseLedger
	reports     reportAggregator
	classifier  classifier
	location    *time.Location
	now         func() time.Time
}

func newHandler(ledger expenseLedger, reports reportAggregator, classifier classifier, loc *time.Location) *HandlerService {
	if loc == nil {
		loc = time.UTC
	}
	res := &HandlerService{
		ledger:     ledger,
		reports:    reports,
		classifier: classifier,
		location:   loc,
		now:        time.Now,
	}
	res.handlersMap = newMap(res)
	return res
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[intent.Help] = s.handleHelp
	m[intent.DeleteAll] = s.handleDeleteAll
	m[intent.DeleteByKeyword] = s.handleDeleteByKeyword
	m[intent.RecordExpense] = s.handleRecordExpense
	m[intent.MonthlyReport] = s.handleMonthlyReport
	m[intent.CategoryReport] = s.handleCategoryReport
	m[intent.Report] = s.handleReport
	return m
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string, userID string) (string, intent.Kind) {
	in := intent.Parse(normalize(text))

	h, ok := s.handlersMap[in.Kind]
	if !ok {
		return dontUnderstandMessage, intent.Unknown
	}
	return h(ctx, in, userID), in.Kind
}

func (s *HandlerService) handleHelp(_ context.Context, _ intent.Intent, _ string) string {
	return helpMessage
}

func (s *HandlerService) handleDeleteAll(ctx context.Context, _ intent.Intent, userID string) string {
	if !s.ledger.DeleteAll(ctx, userID) {
		return storeFailureMessage
	}
	return deletedAllMessage
}

func (s *HandlerService) handleDeleteByKeyword(ctx context.Context, in intent.Intent, userID string) string {
	if in.Malformed {
		return wrongDeleteMessage
	}
	if !s.ledger.DeleteMatching(ctx, userID, in.Keyword) {
		return fmt.Sprintf(notDeletedTemplate, in.Keyword)
	}
	return fmt.Sprintf(deletedTemplate, in.Keyword)
}

func (s *HandlerService) handleRecordExpense(ctx context.Context, in intent.Intent, userID string) string {
	if in.Malformed {
		return wrongFormatMessage
	}

	value := amount.Parse(in.AmountText)
	if value == 0 {
		return unknownAmountMessage
	}
	category := s.classifier.Classify(in.Description)

	if !s.ledger.Record(ctx, userID, category, value, in.Description) {
		return storeFailureMessage
	}
	observeRecorded(category)
	logger.Info("expense recorded",
		zap.String("userID", userID), zap.String("category", category), zap.Int64("amount", value))
	return fmt.Sprintf(recordedTemplate, in.Description, formatRupiah(value), category)
}

func (s *HandlerService) handleMonthlyReport(ctx context.Context, in intent.Intent, userID string) string {
	month, ok := reports.MonthByName(in.Month)
	if !ok {
		return unknownMonthMessage
	}

	period := reports.MonthPeriod(s.today().Year(), month, s.location)
	total, ok := s.reports.Total(ctx, userID, period)
	if !ok {
		return storeFailureMessage
	}
	return fmt.Sprintf(monthTotalTemplate, capitalize(in.Month), formatRupiah(total))
}

func (s *HandlerService) handleCategoryReport(ctx context.Context, in intent.Intent, userID string) string {
	totals, ok := s.reports.TotalsByCategory(ctx, userID, reports.CurrentMonthPeriod(s.today()))
	if !ok {
		return storeFailureMessage
	}

	for _, t := range totals {
		if strings.Contains(t.Category, in.Keyword) {
			return fmt.Sprintf(categoryTotalTemplate, t.Category, formatRupiah(t.Amount))
		}
	}
	return fmt.Sprintf(noCategoryTemplate, in.Keyword)
}

func (s *HandlerService) handleReport(ctx context.Context, _ intent.Intent, userID string) string {
	total, ok := s.reports.Total(ctx, userID, reports.CurrentMonthPeriod(s.today()))
	if !ok {
		return storeFailureMessage
	}
	return fmt.Sprintf(currentTotalTemplate, formatRupiah(total))
}

func (s *HandlerService) today() time.Time {
	return s.now().In(s.location)
}

func formatRupiah(value int64) string {
	return "Rp " + humanize.Comma(value)
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
