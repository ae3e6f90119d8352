package report

import (
	"context"
	"time"

	"github.com/mcaproject/bsc-analyzer/model"
)

// Service defines the report storage service interface.
type Service interface {
	Add(ctx context.Context, r model.Report) error
	FindRecent(ctx context.Context, limit int) ([]model.Report, error)
	FindLatest(ctx context.Context, address string) (model.Report, error)
	FindFresh(ctx context.Context, address string, notBefore time.Time) (model.Report, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
