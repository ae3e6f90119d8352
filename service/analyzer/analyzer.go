package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mcaproject/bsc-analyzer/model"
	"github.com/mcaproject/bsc-analyzer/service/chain"
	"github.com/mcaproject/bsc-analyzer/service/explorer"
	"github.com/mcaproject/bsc-analyzer/service/scoring"
)

const (
	zeroAddressHex = "0x0000000000000000000000000000000000000000"
	topHolderCount = 10

	dexPancakeV2 = "PancakeSwapV2"
	dexPancakeV3 = "PancakeSwapV3"

	fallbackSymbol = "MEME"
	fallbackName   = "Memecoin"
)

// suspiciousFnKeywords flags contract functions that allow minting, blacklisting
// or trading-rule changes after launch. Matched case-insensitively as substrings.
var suspiciousFnKeywords = []string{
	"blacklist", "whitelist", "isBlacklisted", "setBlacklist",
	"setTax", "setFee", "setFees", "setBuyFee", "setSellFee",
	"setMaxTx", "maxTx", "setMaxWallet", "enableTrading",
	"addLiquidity", "removeLimits", "excludeFromFee",
	"mint", "setBalance",
}

var feeFnKeywords = []string{"buyfee", "sellfee", "tax", "fees"}

var explanations = []string{
	"Ownership via BscScan ABI; renounced if owner() == 0x0",
	"Pancake v2 pair via factory.getPair(token, WBNB/USDT)",
	"Pancake v3 pool via factory.getPool(token, WBNB/USDT, fee)",
	"Supply & burn via ERC-20 totalSupply()/balanceOf(dead)",
	"Top holders via BscScan tokenholderlist (best-effort)",
	"LP lock via v2 LP ERC-20 balances held by known lockers",
}

// NewAnalyzer creates a new instance of the analyzer service.
func NewAnalyzer(chainSvc chain.Service, explorerSvc explorer.Service, scoringSvc scoring.Service) Analyzer {
	return Analyzer{chain: chainSvc, explorer: explorerSvc, scoring: scoringSvc}
}

// Analyzer implements the analyzer service: it gathers on-chain and explorer
// data about a token contract and folds it into a scored report. Every data
// source is best-effort; whatever cannot be fetched keeps its baseline factor.
type Analyzer struct {
	chain    chain.Service
	explorer explorer.Service
	scoring  scoring.Service
}

// Analyze builds a complete risk report for the token contract.
func (s Analyzer) Analyze(ctx context.Context, address string) (model.Report, error) {
	v2Pair := s.findV2Pair(ctx, address)
	v3Pool, v3Found := s.findV3Pool(ctx, address)

	contractABI, abiFound := s.contractABI(ctx, address)
	ownSignal, ownEvidence := s.ownership(ctx, address, contractABI, abiFound)
	mbSignal, mbEvidence, thSignal, thEvidence := riskFlags(contractABI.Functions, abiFound)
	supply, supplyFound := s.supplyStats(ctx, address)
	top10 := s.topHoldersPct(ctx, address)
	lock, lockFound := s.lpLock(ctx, address, v2Pair)

	factors := s.scoring.DefaultFactors(address)
	s.override(factors, scoring.FactorOwnership, ownSignal, ownEvidence)
	s.override(factors, scoring.FactorMintBlacklist, mbSignal, mbEvidence)
	s.override(factors, scoring.FactorTaxHoneypot, thSignal, thEvidence)
	s.overrideHolderConcentration(factors, top10)
	s.overrideMarketIntegrity(factors, v2Pair, v3Pool, v3Found)

	score := s.scoring.Score(factors)
	report := model.Report{
		ID:           uuid.New(),
		Chain:        model.ChainBSC,
		Token:        s.token(ctx, address),
		Score:        score,
		Band:         s.scoring.Band(score),
		Factors:      factors,
		Liquidity:    liquidity(v2Pair, v3Pool, v3Found, lock, lockFound),
		Supply:       model.Supply{Top10Pct: top10},
		Tax:          model.Tax{Honeypot: thSignal == -1},
		DevLinks:     []model.DevLink{},
		Explanations: explanations,
		Version:      model.ReportVersion,
		CreatedAt:    time.Now(),
	}
	if supplyFound {
		report.Supply.Total = &supply.TotalDisplay
		report.Supply.DeadWalletPct = supply.DeadPct
	}
	return report, nil
}

func (s Analyzer) findV2Pair(ctx context.Context, address string) string {
	pair, err := s.chain.FindV2Pair(ctx, address)
	if err != nil {
		logDegraded("analyzer.Analyze: v2 pair", err)
		return ""
	}
	return pair
}

func (s Analyzer) findV3Pool(ctx context.Context, address string) (model.V3Pool, bool) {
	pool, err := s.chain.FindV3Pool(ctx, address)
	if err != nil {
		logDegraded("analyzer.Analyze: v3 pool", err)
		return model.V3Pool{}, false
	}
	return pool, true
}

func (s Analyzer) contractABI(ctx context.Context, address string) (model.ContractABI, bool) {
	res, err := s.explorer.ContractABI(ctx, address)
	if err != nil {
		logDegraded("analyzer.Analyze: contract abi", err)
		return model.ContractABI{}, false
	}
	return res, true
}

func (s Analyzer) ownership(ctx context.Context, address string, contractABI model.ContractABI, abiFound bool) (int, []string) {
	unknown := []string{"Owner unknown (ABI/owner() not available)"}
	if !abiFound {
		return 0, unknown
	}
	owner, err := s.chain.Owner(ctx, address, contractABI.JSON)
	if err != nil {
		logDegraded("analyzer.Analyze: owner", err)
		return 0, unknown
	}
	if strings.EqualFold(owner, zeroAddressHex) {
		return 1, []string{fmt.Sprintf("Ownership renounced (owner=%s)", zeroAddressHex)}
	}
	return -1, []string{fmt.Sprintf("Owner set: %s", owner)}
}

func (s Analyzer) supplyStats(ctx context.Context, address string) (model.SupplyStats, bool) {
	stats, err := s.chain.SupplyStats(ctx, address)
	if err != nil {
		logDegraded("analyzer.Analyze: supply stats", err)
		return model.SupplyStats{}, false
	}
	return stats, true
}

func (s Analyzer) topHoldersPct(ctx context.Context, address string) *float64 {
	quantities, err := s.explorer.TopHolderQuantities(ctx, address, topHolderCount)
	if err != nil {
		logDegraded("analyzer.Analyze: top holders", err)
		return nil
	}
	total, err := s.chain.TotalSupplyRaw(ctx, address)
	if err != nil {
		logDegraded("analyzer.Analyze: raw total supply", err)
		return nil
	}
	if total.Sign() <= 0 {
		return nil
	}
	sum := new(big.Int)
	for _, q := range quantities {
		sum.Add(sum, q)
	}
	pct, _ := new(big.Float).Quo(new(big.Float).SetInt(sum), new(big.Float).SetInt(total)).Float64()
	pct = round4(pct * 100)
	return &pct
}

func (s Analyzer) lpLock(ctx context.Context, address, v2Pair string) (model.LPLock, bool) {
	if v2Pair == "" {
		return model.LPLock{}, false
	}
	lock, err := s.chain.LPLock(ctx, v2Pair)
	if err != nil {
		logDegraded("analyzer.Analyze: lp lock", err)
		return model.LPLock{}, false
	}
	return lock, true
}

func (s Analyzer) token(ctx context.Context, address string) model.Token {
	t := model.Token{Address: address, Symbol: fallbackSymbol, Name: fallbackName}
	meta, err := s.chain.TokenMeta(ctx, address)
	if err != nil {
		logDegraded("analyzer.Analyze: token meta", err)
		return t
	}
	if meta.Symbol != "" {
		t.Symbol = meta.Symbol
	}
	if meta.Name != "" {
		t.Name = meta.Name
	}
	return t
}

func (s Analyzer) override(factors []model.Factor, id string, signal int, evidence []string) {
	for i := range factors {
		if factors[i].ID != id {
			continue
		}
		factors[i].Signal = signal
		factors[i].Evidence = evidence
		factors[i].Impact = s.scoring.Impact(factors[i].Weight, signal)
		return
	}
}

func (s Analyzer) overrideHolderConcentration(factors []model.Factor, top10 *float64) {
	for i := range factors {
		if factors[i].ID != scoring.FactorHolderConcentration {
			continue
		}
		if top10 == nil {
			// keep the baseline signal, only explain the gap
			factors[i].Evidence = []string{"Top10 holders unknown (API limit)"}
			return
		}
		signal := 1
		switch {
		case *top10 > 50:
			signal = -1
		case *top10 > 25:
			signal = 0
		}
		factors[i].Signal = signal
		factors[i].Evidence = []string{fmt.Sprintf("Top10 holders = %s%%", formatPct(*top10))}
		factors[i].Impact = s.scoring.Impact(factors[i].Weight, signal)
		return
	}
}

func (s Analyzer) overrideMarketIntegrity(factors []model.Factor, v2Pair string, v3Pool model.V3Pool, v3Found bool) {
	if v2Pair == "" && !v3Found {
		return
	}
	var evidence []string
	if v2Pair != "" {
		evidence = append(evidence, fmt.Sprintf("Pancake v2 pair found: %s", v2Pair))
	}
	if v3Found {
		evidence = append(evidence, fmt.Sprintf(
			"Pancake v3 pool found: %s (fee %.2f%%, %s)",
			v3Pool.Address, float64(v3Pool.FeeTier)/100, v3Pool.Quote,
		))
	}
	for i := range factors {
		if factors[i].ID != scoring.FactorMarketIntegrity {
			continue
		}
		if factors[i].Signal < 1 {
			factors[i].Signal = 1
		}
		factors[i].Evidence = evidence
		factors[i].Impact = s.scoring.Impact(factors[i].Weight, factors[i].Signal)
		return
	}
}

// riskFlags scans the verified ABI function names for mint/blacklist powers
// and fee/tax levers.
func riskFlags(functions []string, abiFound bool) (int, []string, int, []string) {
	if !abiFound {
		unavailable := []string{"ABI unavailable"}
		return 0, unavailable, 0, unavailable
	}
	var mbEvidence, thEvidence []string
	mbSignal, thSignal := 0, 0
	for _, keyword := range suspiciousFnKeywords {
		for _, name := range functions {
			if strings.Contains(strings.ToLower(name), strings.ToLower(keyword)) {
				mbEvidence = append(mbEvidence, fmt.Sprintf("Suspicious fn: %s()", name))
				mbSignal = -1
			}
		}
	}
	for _, name := range functions {
		lname := strings.ToLower(name)
		for _, keyword := range feeFnKeywords {
			if strings.Contains(lname, keyword) {
				thEvidence = append(thEvidence, fmt.Sprintf("Fee/tax fn: %s()", name))
				thSignal = -1
				break
			}
		}
	}
	if len(mbEvidence) == 0 {
		mbEvidence = []string{"No obvious mint/blacklist functions detected"}
	}
	if len(thEvidence) == 0 {
		thEvidence = []string{"No obvious tax/honeypot functions detected"}
	}
	return mbSignal, mbEvidence, thSignal, thEvidence
}

func liquidity(v2Pair string, v3Pool model.V3Pool, v3Found bool, lock model.LPLock, lockFound bool) model.Liquidity {
	switch {
	case v2Pair != "":
		dex := dexPancakeV2
		l := model.Liquidity{Pair: v2Pair, Dex: &dex}
		if lockFound {
			l.LPLockedPct = &lock.Pct
			l.Locker = &lock.Locker
		}
		return l
	case v3Found:
		// v3 positions are NFTs; the v2-style LP lock scan does not apply
		dex := dexPancakeV3
		return model.Liquidity{Pair: v3Pool.Address, Dex: &dex}
	}
	return model.Liquidity{Pair: zeroAddressHex}
}

func logDegraded(path string, err error) {
	if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrExplorerUnavailable) {
		return
	}
	log.Printf("%s: %v\n", path, err)
}

func formatPct(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
