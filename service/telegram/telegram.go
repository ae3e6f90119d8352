package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/beldeveloper/go-errors-context"
	"github.com/mcaproject/bsc-analyzer/model"
)

const helpText = "Hi! Send me a BSC contract address (CA), like:\n" +
	"0x0E09FABB73BD3ADE0A17ECC321FD13A19E81CE82\n\n" +
	"I'll analyze it and reply with a score, risk band, and key factors.\n\n" +
	"Commands:\n" +
	"/watch <CA> - track a token and get an alert when its risk band worsens\n" +
	"/unwatch <CA> - stop tracking a token"

// Config keeps the Telegram Bot API client settings.
type Config struct {
	BotToken string
	APIURL   string
	Timeout  time.Duration
}

// NewTelegram creates a new instance of the Telegram bot service.
func NewTelegram(cfg Config) Telegram {
	return Telegram{
		botToken: strings.TrimSpace(cfg.BotToken),
		apiURL:   strings.TrimRight(cfg.APIURL, "/"),
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

// Telegram implements the bot service with the Telegram Bot API.
type Telegram struct {
	botToken string
	apiURL   string
	client   *http.Client
}

// Parse extracts the chat and the trimmed text from a webhook update.
// Standard messages and edited messages are supported.
func (s Telegram) Parse(u model.TelegramUpdate) (model.TelegramMessage, error) {
	msg := u.Message
	if msg == nil {
		msg = u.EditedMessage
	}
	if msg == nil {
		return model.TelegramMessage{}, fmt.Errorf("%w: no message in update", model.ErrBadInput)
	}
	if msg.Chat.ID == 0 {
		return model.TelegramMessage{}, fmt.Errorf("%w: no chat id in update", model.ErrBadInput)
	}
	return model.TelegramMessage{
		Chat: msg.Chat,
		Text: strings.TrimSpace(msg.Text),
	}, nil
}

// Send posts a plain-text message to the chat. Markdown is deliberately not
// used so contract addresses and evidence lines need no escaping.
func (s Telegram) Send(ctx context.Context, chatID int64, text string) error {
	if s.botToken == "" {
		return errors.WrapContext(fmt.Errorf("bot token is not configured"), errors.Context{
			Path: "service.telegram.Telegram.Send",
		})
	}
	body, err := json.Marshal(map[string]interface{}{
		"chat_id": chatID,
		"text":    text,
	})
	if err != nil {
		return errors.WrapContext(err, errors.Context{Path: "service.telegram.Telegram.Send: marshal"})
	}
	u := fmt.Sprintf("%s/bot%s/sendMessage", s.apiURL, s.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return errors.WrapContext(err, errors.Context{Path: "service.telegram.Telegram.Send: request"})
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return errors.WrapContext(err, errors.Context{
			Path:   "service.telegram.Telegram.Send: post",
			Params: errors.Params{"chat": chatID},
		})
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.WrapContext(fmt.Errorf("unexpected status %d", resp.StatusCode), errors.Context{
			Path:   "service.telegram.Telegram.Send",
			Params: errors.Params{"chat": chatID},
		})
	}
	return nil
}

// Help returns the bot usage message.
func (s Telegram) Help() string {
	return helpText
}
