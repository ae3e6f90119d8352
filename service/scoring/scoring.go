package scoring

import (
	"math"
	"strconv"

	"github.com/mcaproject/bsc-analyzer/model"
)

// BaseScore is the neutral starting point before factor impacts are applied.
const BaseScore = 60

var weights = map[string]float64{
	FactorOwnership:           0.25,
	FactorMintBlacklist:       0.20,
	FactorLiquidityLock:       0.20,
	FactorHolderConcentration: 0.15,
	FactorDevHistory:          0.10,
	FactorTaxHoneypot:         0.05,
	FactorMarketIntegrity:     0.05,
}

var bands = []struct {
	threshold float64
	label     string
}{
	{70, model.BandLowerRisk},
	{40, model.BandCaution},
	{0, model.BandHighRisk},
}

// NewScoring creates a new instance of the scoring service.
func NewScoring() Scoring {
	return Scoring{}
}

// Scoring implements the weighted factor risk model.
type Scoring struct {
}

// DefaultFactors derives the baseline factor set from the address itself.
// The signals are deterministic placeholders; live data overrides them.
func (s Scoring) DefaultFactors(address string) []model.Factor {
	h := addressSeed(address)
	rows := []struct {
		id       string
		signal   int
		evidence []string
	}{
		{FactorOwnership, pick(h%3 == 0, -1, pick(h%3 == 1, 1, 0)), []string{"owner=0xabc…", "renounce=false"}},
		{FactorMintBlacklist, pick(h%5 == 0, -1, 1), []string{"mint() present", "blacklist() absent"}},
		{FactorLiquidityLock, pick(h%7 != 0, 1, -1), []string{"lock=80% until 2026-12-31"}},
		{FactorHolderConcentration, pick(h%2 == 0, 0, -1), []string{"top10=22%", "dead=50%"}},
		{FactorDevHistory, pick(h%11 != 0, 1, 0), []string{"no known rugs linked"}},
		{FactorTaxHoneypot, pick(h%13 == 0, -1, 1), []string{"buy=2, sell=2", "honeypot=false"}},
		{FactorMarketIntegrity, pick(h%17 != 0, 1, -1), []string{"Pancake v2/v3 pool (if found)"}},
	}
	factors := make([]model.Factor, len(rows))
	for i, r := range rows {
		w := weights[r.id]
		factors[i] = model.Factor{
			ID:       r.id,
			Weight:   w,
			Signal:   r.signal,
			Evidence: r.evidence,
			Impact:   s.Impact(w, r.signal),
		}
	}
	return factors
}

// Impact converts a factor signal into its score contribution.
func (s Scoring) Impact(weight float64, signal int) float64 {
	return math.Round(weight*float64(signal)*10*100) / 100
}

// Score sums the factor impacts over the base score and clamps the result to [0, 100].
func (s Scoring) Score(factors []model.Factor) float64 {
	score := float64(BaseScore)
	for _, f := range factors {
		score += f.Impact
	}
	return math.Max(0, math.Min(100, score))
}

// Band maps a score to its risk band label.
func (s Scoring) Band(score float64) string {
	for _, b := range bands {
		if score >= b.threshold {
			return b.label
		}
	}
	return model.BandHighRisk
}

// addressSeed hashes the leading hex digits of the address into a small seed.
func addressSeed(address string) uint64 {
	if len(address) < 6 {
		return 0
	}
	h, err := strconv.ParseUint(address[2:6], 16, 32)
	if err != nil {
		return 0
	}
	return h
}

func pick(cond bool, a, b int) int {
	if cond {
		return a
	}
	return b
}
