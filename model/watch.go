package model

import "time"

// WatchedToken is a model that represents a token tracked by the rescan job.
type WatchedToken struct {
	ID        uint64    `json:"id"`
	Address   string    `json:"address"`
	ChatID    *int64    `json:"chatId"`
	LastBand  string    `json:"lastBand"`
	LastScore float64   `json:"lastScore"`
	CheckedAt time.Time `json:"checkedAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// FormAddWatch is a new watchlist entry form.
type FormAddWatch struct {
	Address string `json:"address"`
	ChatID  *int64 `json:"chatId"`
}
