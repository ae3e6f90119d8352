package controller

import (
	"context"

	"github.com/mcaproject/bsc-analyzer/model"
)

// Service defines the controller interface.
type Service interface {
	Analyze(ctx context.Context, f model.FormAnalyze) (model.Report, error)
	Reports(ctx context.Context, limit int) ([]model.Report, error)
	ReportByAddress(ctx context.Context, address string) (model.Report, error)
	ExplorerStatus(ctx context.Context, address string) (model.ExplorerStatus, error)
	Watchlist(ctx context.Context) ([]model.WatchedToken, error)
	AddWatch(ctx context.Context, f model.FormAddWatch) (model.WatchedToken, error)
	RemoveWatch(ctx context.Context, id uint64) error
	HandleTelegramUpdate(ctx context.Context, u model.TelegramUpdate) (model.TelegramAck, error)
	RescanWatchlistJob(ctx context.Context)
	PruneReportsJob(ctx context.Context)
}
