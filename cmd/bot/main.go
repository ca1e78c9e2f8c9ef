package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/clients/cache"
	"max.ks1230/expense-bot/internal/clients/kafka"
	"max.ks1230/expense-bot/internal/clients/tg"
	"max.ks1230/expense-bot/internal/config"
	"max.ks1230/expense-bot/internal/entity/expense"
	"max.ks1230/expense-bot/internal/logger"
	"max.ks1230/expense-bot/internal/model/category"
	"max.ks1230/expense-bot/internal/model/ledger"
	"max.ks1230/expense-bot/internal/model/messages"
	"max.ks1230/expense-bot/internal/model/reports"
	"max.ks1230/expense-bot/internal/model/storage"
	"max.ks1230/expense-bot/internal/server"
	"max.ks1230/expense-bot/internal/tracing"
)

type expensesStorage interface {
	SaveExpense(ctx context.Context, rec expense.Record) error
	DeleteUserExpenses(ctx context.Context, userID string) (int64, error)
	DeleteUserExpensesMatching(ctx context.Context, userID, keyword string) (int64, error)
	SumExpenses(ctx context.Context, userID string, period expense.Period) (int64, error)
	SumExpensesByCategory(ctx context.Context, userID string, period expense.Period) ([]expense.CategoryTotal, error)
}

func main() {
	logger.Info("Bot init - start")
	defer logger.Sync()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("failed to load .env", zap.Error(err))
	}

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	closer, err := tracing.Init(conf.Jaeger())
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer closer.Close()

	db, closeDB := initStorage(ctx, conf)
	defer closeDB()

	expenses := ledger.New(db)
	aggregator := reports.NewAggregator(db)

	if conf.Memcached().Enabled() {
		mc, err := cache.NewMemcache(conf.Memcached())
		if err != nil {
			logger.Fatal("failed to init memcached:", zap.Error(err))
		}
		expenses.WithCache(mc)
		aggregator.WithCache(mc)
	}

	if conf.Kafka().Enabled() {
		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer:", zap.Error(err))
		}
		defer producer.Close()
		expenses.WithEvents(producer)
	}

	client, err := tg.New(conf.Telegram(), conf.App().RequestTimeout())
	if err != nil {
		logger.Fatal("failed to init client:", zap.Error(err))
	}

	msgService := messages.NewService(client, expenses, aggregator, newClassifier(conf.App()), conf.App())
	srv := server.New(conf.Server(), msgService, conf.App().RequestTimeout())

	switch conf.Telegram().Mode() {
	case config.ModePolling:
		if err = client.DeleteWebhook(); err != nil {
			logger.Warn("failed to delete webhook", zap.Error(err))
		}
		go client.ListenUpdates(ctx, msgService, conf.App().RequestTimeout())
	default:
		if url := conf.Telegram().WebhookURL(); url != "" {
			if err = client.SetWebhook(url); err != nil {
				logger.Fatal("failed to set webhook:", zap.Error(err))
			}
		}
	}

	logger.Info("Bot init - end")
	serve(ctx, conf.Server(), srv)
}

func initStorage(ctx context.Context, conf *config.Service) (expensesStorage, func()) {
	if conf.App().Storage() == config.StorageMemory {
		logger.Warn("using in-memory storage, expenses are lost on restart")
		return storage.NewInMemStorage(nil), func() {}
	}

	db, err := storage.NewPostgresStorage(ctx, conf.Postgres(), conf.App().TimeLocation())
	if err != nil {
		logger.Fatal("failed to init postgres:", zap.Error(err))
	}
	if err = db.Migrate(); err != nil {
		logger.Fatal("failed to migrate postgres:", zap.Error(err))
	}
	return db, func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close postgres", zap.Error(err))
		}
	}
}

func newClassifier(conf *config.AppConfig) *category.Classifier {
	rules := make([]category.Rule, 0, len(conf.Categories()))
	for _, c := range conf.Categories() {
		rules = append(rules, category.Rule{Name: c.Name, Keywords: c.Keywords})
	}
	return category.New(rules, conf.FallbackCategory())
}

func serve(ctx context.Context, conf *config.ServerConfig, handler http.Handler) {
	httpServer := &http.Server{
		Addr:    conf.Addr(),
		Handler: handler,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout())
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shut down server", zap.Error(err))
		}
	}()

	logger.Info("listening", zap.String("addr", conf.Addr()), zap.String("webhook", conf.WebhookPath()))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped:", zap.Error(err))
	}
	logger.Info("Bot stopped")
}
