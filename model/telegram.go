package model

// TelegramChat identifies the chat an update came from.
type TelegramChat struct {
	ID int64 `json:"id"`
}

// TelegramMessage is a message payload of a Telegram update.
type TelegramMessage struct {
	Chat TelegramChat `json:"chat"`
	Text string       `json:"text"`
}

// TelegramUpdate is a webhook update sent by the Telegram Bot API.
type TelegramUpdate struct {
	Message       *TelegramMessage `json:"message"`
	EditedMessage *TelegramMessage `json:"edited_message"`
}

// TelegramAck is the webhook response; Telegram retries anything but a 2xx,
// so even ignored updates are acknowledged.
type TelegramAck struct {
	OK      bool   `json:"ok"`
	Ignored string `json:"ignored,omitempty"`
	Error   string `json:"error,omitempty"`
}
