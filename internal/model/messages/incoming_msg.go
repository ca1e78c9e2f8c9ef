package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
)

//go:generate minimock -i messageSender -o ./mock/message_sender_mock.go -n MessageSenderMock

type messageSender interface {
	SendMessage(text string, chatID int64) error
}

type config interface {
	TimeLocation() *time.Location
}

type Service struct {
	tgClient messageSender
	handler  *HandlerService
}

func NewService(tgClient messageSender, ledger expenseLedger, reports reportAggregator, classifier classifier, config config) *Service {
	return &Service{
		tgClient: tgClient,
		handler:  newHandler(ledger, reports, classifier, config.TimeLocation()),
	}
}

// Message is an inbound chat message. ChatID addresses the reply, UserID owns
// the expenses.
type Message struct {
	ChatID int64
	UserID string
	Text   string
}

// HandleIncomingMessage always produces one reply. The returned error only
// reports a failed delivery, there is nothing left to undo at that point.
func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	start := time.Now()
	resp, kind := s.handler.HandleMessage(ctx, msg.Text, msg.UserID)
	span.SetTag("intent", kind.String())

	err := s.tgClient.SendMessage(resp, msg.ChatID)
	observeResponse(kind, time.Since(start), err != nil)
	if err != nil {
		ext.Error.Set(span, true)
		return errors.Wrap(err, "send reply")
	}
	return nil
}
