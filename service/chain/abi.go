package chain

import "github.com/ethereum/go-ethereum/common"

// Well-known BSC addresses.
var (
	// ZeroAddress is what the Pancake factories return when no pool exists.
	ZeroAddress = common.Address{}
	// DeadAddress is the conventional burn wallet.
	DeadAddress = common.HexToAddress("0x000000000000000000000000000000000000dEaD")

	// PancakeV2Factory is the PancakeSwap v2 factory contract.
	PancakeV2Factory = common.HexToAddress("0xCA143Ce32Fe78f1f7019d7d551a6402fC5350c73")
	// PancakeV3Factory is the PancakeSwap v3 factory contract.
	PancakeV3Factory = common.HexToAddress("0x0BFbCF9fa4f9C56B0F40a671Ad40E0805A091865")
	// WBNB is the wrapped BNB token.
	WBNB = common.HexToAddress("0xBB4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c")
	// USDT is the Binance-Peg USDT token.
	USDT = common.HexToAddress("0x55d398326f99059fF775485246999027B3197955")
)

// V3FeeTiers lists the PancakeSwap v3 fee tiers probed when looking for a pool.
var V3FeeTiers = []int64{100, 500, 2500, 10000}

// KnownLocker is a liquidity locker contract recognized by the LP-lock scan.
type KnownLocker struct {
	Address common.Address
	Label   string
}

// KnownLockers lists the LP holders that count as a lock. Kept as a slice so
// the scan order is stable when two lockers hold equal shares.
var KnownLockers = []KnownLocker{
	{DeadAddress, "Burned LP"},
	{common.HexToAddress("0x71b5759d73262fbB223956913ecF4ecC51057641"), "PinkLock"},
	{common.HexToAddress("0x160C404B2b49CB2bB4eacF99C43D87bE4D5d7011"), "Unicrypt"},
	{common.HexToAddress("0x04e6F62f0fB5C0a2bF9b2b9D8c9C28840fd6B5C8"), "Team.Finance"},
}

// Minimal ABI fragments for the contracts the analyzer reads. The full token
// ABI, when needed for owner lookups, comes verified from the explorer.
const (
	erc20ABI = `[
		{"constant":true,"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"stateMutability":"view","type":"function"},
		{"constant":true,"inputs":[],"name":"totalSupply","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
		{"constant":true,"inputs":[{"name":"account","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
		{"constant":true,"inputs":[],"name":"symbol","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"},
		{"constant":true,"inputs":[],"name":"name","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"}
	]`

	factoryV2ABI = `[
		{"inputs":[
			{"internalType":"address","name":"tokenA","type":"address"},
			{"internalType":"address","name":"tokenB","type":"address"}
		],"name":"getPair","outputs":[{"internalType":"address","name":"pair","type":"address"}],"stateMutability":"view","type":"function"}
	]`

	factoryV3ABI = `[
		{"inputs":[
			{"internalType":"address","name":"tokenA","type":"address"},
			{"internalType":"address","name":"tokenB","type":"address"},
			{"internalType":"uint24","name":"fee","type":"uint24"}
		],"name":"getPool","outputs":[{"internalType":"address","name":"pool","type":"address"}],"stateMutability":"view","type":"function"}
	]`
)
