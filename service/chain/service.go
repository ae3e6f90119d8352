package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/mcaproject/bsc-analyzer/model"
)

// Service defines the chain service interface.
type Service interface {
	FindV2Pair(ctx context.Context, token string) (string, error)
	FindV3Pool(ctx context.Context, token string) (model.V3Pool, error)
	SupplyStats(ctx context.Context, token string) (model.SupplyStats, error)
	TokenMeta(ctx context.Context, token string) (model.TokenMeta, error)
	TotalSupplyRaw(ctx context.Context, token string) (*big.Int, error)
	Owner(ctx context.Context, token, abiJSON string) (string, error)
	LPLock(ctx context.Context, pair string) (model.LPLock, error)
}

// Caller performs read-only contract calls against a BSC node.
type Caller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}
