// Package notify sends best-effort draft-ready notifications. Delivery is
// a side channel: failures here never influence execution state.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/logger"
	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/models"
)

type TelegramNotifier struct {
	api *tgbotapi.BotAPI
	log *logger.Logger
}

func NewTelegram(token string, log *logger.Logger) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram API: %w", err)
	}
	return &TelegramNotifier{api: api, log: log}, nil
}

// DraftReady tells the owner a new draft was produced. The user id doubles
// as the Telegram chat id.
func (n *TelegramNotifier) DraftReady(userID int64, draft *models.Draft) {
	text := "A new draft is ready.\n\n" + draft.Content
	msg := tgbotapi.NewMessage(userID, text)
	if _, err := n.api.Send(msg); err != nil {
		n.log.Warn("failed to send draft notification",
			"user_id", userID, "draft_id", draft.DraftID, "error", err)
	}
}
