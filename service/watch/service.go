package watch

import (
	"context"
	"time"

	"github.com/mcaproject/bsc-analyzer/model"
)

// Service defines the watchlist service interface.
type Service interface {
	Add(ctx context.Context, w model.WatchedToken) (model.WatchedToken, error)
	FindAll(ctx context.Context) ([]model.WatchedToken, error)
	FindOutdated(ctx context.Context, due time.Time) (model.WatchedToken, error)
	Update(ctx context.Context, w model.WatchedToken) (model.WatchedToken, error)
	Delete(ctx context.Context, id uint64) error
	DeleteByAddress(ctx context.Context, address string, chatID int64) error
}
