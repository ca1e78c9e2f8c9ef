package tg

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"max.ks1230/expense-bot/internal/model/messages"
)

// MessageFromUpdate takes the chat as both the reply address and the expense
// owner. Photos with a caption count as text messages.
func MessageFromUpdate(update tgbotapi.Update) (messages.Message, bool) {
	m := update.Message
	if m == nil || m.Chat == nil {
		return messages.Message{}, false
	}

	text := m.Text
	if text == "" {
		text = m.Caption
	}
	return messages.Message{
		ChatID: m.Chat.ID,
		UserID: strconv.FormatInt(m.Chat.ID, 10),
		Text:   text,
	}, true
}
