package analyzer

import (
	"context"

	"github.com/mcaproject/bsc-analyzer/model"
)

// Service defines the analyzer service interface.
type Service interface {
	Analyze(ctx context.Context, address string) (model.Report, error)
}
