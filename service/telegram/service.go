package telegram

import (
	"context"

	"github.com/mcaproject/bsc-analyzer/model"
)

// Service defines the Telegram bot service interface.
type Service interface {
	Parse(u model.TelegramUpdate) (model.TelegramMessage, error)
	Send(ctx context.Context, chatID int64, text string) error
	FormatReport(r model.Report) string
	Help() string
}
