package tg

import (
	"context"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/logger"
	"max.ks1230/expense-bot/internal/model/messages"
)

const (
	defaultUpdateOffset = 0
	pollTimeoutSeconds  = 60
)

type tokenGetter interface {
	Token() string
}

type messageHandler interface {
	HandleIncomingMessage(ctx context.Context, msg messages.Message) error
}

type Client struct {
	client  *tgbotapi.BotAPI
	timeout time.Duration
}

// New bounds every Bot API request by timeout, replies included. A reply that
// hangs would otherwise hold the webhook until Telegram redelivers the update.
func New(tokenGetter tokenGetter, timeout time.Duration) (*Client, error) {
	return newWithEndpoint(tokenGetter.Token(), tgbotapi.APIEndpoint, timeout)
}

func newWithEndpoint(token, endpoint string, timeout time.Duration) (*Client, error) {
	client, err := tgbotapi.NewBotAPIWithClient(token, endpoint, newHTTPClient(timeout))
	if err != nil {
		return nil, errors.Wrap(err, "cannot NewBotApi")
	}
	return &Client{client: client, timeout: timeout}, nil
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func (c *Client) SendMessage(text string, chatID int64) error {
	_, err := c.client.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return errors.Wrap(err, "client.Send")
	}
	return nil
}

// SetWebhook points Telegram at link. Polling stops working until the webhook
// is removed again with DeleteWebhook.
func (c *Client) SetWebhook(link string) error {
	wh, err := tgbotapi.NewWebhook(link)
	if err != nil {
		return errors.Wrap(err, "new webhook")
	}
	if _, err = c.client.Request(wh); err != nil {
		return errors.Wrap(err, "set webhook")
	}
	logger.Info("webhook registered", zap.String("url", link))
	return nil
}

func (c *Client) DeleteWebhook() error {
	_, err := c.client.Request(tgbotapi.DeleteWebhookConfig{})
	return errors.Wrap(err, "delete webhook")
}

// ListenUpdates long-polls Telegram until ctx is done. Each message gets its
// own timeout.
func (c *Client) ListenUpdates(ctx context.Context, handler messageHandler, timeout time.Duration) {
	u := tgbotapi.NewUpdate(defaultUpdateOffset)
	u.Timeout = longPollSeconds(c.timeout)

	updates := c.client.GetUpdatesChan(u)

	logger.Info("Start listening for messages")

	for {
		select {
		case <-ctx.Done():
			c.client.StopReceivingUpdates()
			logger.Info("Stop listening for messages")
			return
		case update := <-updates:
			c.listenOnce(ctx, update, handler, timeout)
		}
	}
}

// longPollSeconds keeps getUpdates inside the HTTP client timeout. Zero falls
// back to short polling.
func longPollSeconds(timeout time.Duration) int {
	seconds := int(timeout/time.Second) - 1
	if seconds > pollTimeoutSeconds {
		return pollTimeoutSeconds
	}
	if seconds < 0 {
		return 0
	}
	return seconds
}

func (c *Client) listenOnce(ctx context.Context, update tgbotapi.Update, handler messageHandler, timeout time.Duration) {
	msg, ok := MessageFromUpdate(update)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := handler.HandleIncomingMessage(ctx, msg); err != nil {
		logger.Error("error processing message", zap.Int64("chatID", msg.ChatID), zap.Error(err))
	}
}
