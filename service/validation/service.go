package validation

import (
	"context"

	"github.com/mcaproject/bsc-analyzer/model"
)

// Service defines the validation service interface.
type Service interface {
	Analyze(ctx context.Context, f model.FormAnalyze) (model.FormAnalyze, error)
	AddWatch(ctx context.Context, f model.FormAddWatch) (model.FormAddWatch, error)
	Address(address string) (string, error)
}
