package explorer

import (
	"context"
	"math/big"

	"github.com/mcaproject/bsc-analyzer/model"
)

// Service defines the explorer service interface.
type Service interface {
	ContractABI(ctx context.Context, address string) (model.ContractABI, error)
	TopHolderQuantities(ctx context.Context, address string, limit int) ([]*big.Int, error)
	KeyPresent() bool
}
