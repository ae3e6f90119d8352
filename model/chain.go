package model

// V3Pool describes a discovered PancakeSwap v3 pool.
type V3Pool struct {
	Address string
	FeeTier int64
	Quote   string
}

// SupplyStats keeps the on-chain supply figures of a token.
type SupplyStats struct {
	TotalDisplay string
	DeadPct      *float64
	Decimals     int
}

// TokenMeta keeps the on-chain identity of a token.
type TokenMeta struct {
	Symbol string
	Name   string
}

// LPLock describes the share of the LP supply held by a known locker.
type LPLock struct {
	Pct    float64
	Locker string
}
