// Package server exposes the Telegram webhook next to health and metrics
// endpoints.
package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/clients/tg"
	"max.ks1230/expense-bot/internal/logger"
	"max.ks1230/expense-bot/internal/model/messages"
)

const (
	healthReply    = "Bot is running!"
	maxPayloadSize = 1 << 20
)

type messageHandler interface {
	HandleIncomingMessage(ctx context.Context, msg messages.Message) error
}

type config interface {
	WebhookPath() string
}

type Server struct {
	handler messageHandler
	timeout time.Duration
	router  chi.Router
}

// New builds the router. Every message is handled under its own timeout,
// detached from the lifetime of the HTTP request.
func New(config config, handler messageHandler, timeout time.Duration) *Server {
	s := &Server{
		handler: handler,
		timeout: timeout,
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", s.health)
	r.Post(config.WebhookPath(), s.webhook)
	r.Handle("/metrics", promhttp.Handler())

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, healthReply)
}

// webhook acknowledges every delivery. Telegram retries anything else, and a
// retried update would record the same expense twice.
func (s *Server) webhook(w http.ResponseWriter, r *http.Request) {
	defer writeOK(w)

	var update tgbotapi.Update
	if err := json.NewDecoder(io.LimitReader(r.Body, maxPayloadSize)).Decode(&update); err != nil {
		logger.Warn("dropping malformed update", zap.Error(err))
		return
	}

	msg, ok := tg.MessageFromUpdate(update)
	if !ok {
		logger.Debug("ignoring update without message", zap.Int("updateID", update.UpdateID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.handler.HandleIncomingMessage(ctx, msg); err != nil {
		logger.Error("error processing message", zap.Int64("chatID", msg.ChatID), zap.Error(err))
	}
}

func writeOK(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
