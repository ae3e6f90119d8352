package scoring

import "github.com/mcaproject/bsc-analyzer/model"

// Factor identifiers of the risk model.
const (
	FactorOwnership           = "ownership"
	FactorMintBlacklist       = "mint_blacklist"
	FactorLiquidityLock       = "liquidity_lock"
	FactorHolderConcentration = "holder_concentration"
	FactorDevHistory          = "dev_history"
	FactorTaxHoneypot         = "tax_honeypot"
	FactorMarketIntegrity     = "market_integrity"
)

// Service defines the scoring service interface.
type Service interface {
	DefaultFactors(address string) []model.Factor
	Impact(weight float64, signal int) float64
	Score(factors []model.Factor) float64
	Band(score float64) string
}
