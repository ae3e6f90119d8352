package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	// ReportVersion defines the report payload version.
	ReportVersion = "0.1"

	// BandLowerRisk defines the band for scores of 70 and above.
	BandLowerRisk = "lower_risk"
	// BandCaution defines the band for scores between 40 and 70.
	BandCaution = "caution"
	// BandHighRisk defines the band for scores below 40.
	BandHighRisk = "high_risk"
)

// BandSeverity converts a band label to a comparable severity level; the higher the worse.
func BandSeverity(band string) int {
	switch band {
	case BandLowerRisk:
		return 0
	case BandCaution:
		return 1
	case BandHighRisk:
		return 2
	}
	return 2
}

// Factor is a single weighted risk factor of a report.
type Factor struct {
	ID       string   `json:"id"`
	Weight   float64  `json:"weight"`
	Signal   int      `json:"signal"`
	Evidence []string `json:"evidence"`
	Impact   float64  `json:"impact"`
}

// Token describes the analyzed token contract.
type Token struct {
	Address string `json:"address"`
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
}

// Liquidity describes the main liquidity pool of the token.
type Liquidity struct {
	Pair        string   `json:"pair"`
	Dex         *string  `json:"dex"`
	LPLockedPct *float64 `json:"lp_locked_pct"`
	Locker      *string  `json:"locker"`
	LockUntil   *string  `json:"lock_until"`
}

// Supply describes the token supply distribution.
type Supply struct {
	Total         *string  `json:"total"`
	DeadWalletPct *float64 `json:"dead_wallet_pct"`
	Top10Pct      *float64 `json:"top10_pct"`
}

// Tax describes the trading taxes of the token.
type Tax struct {
	Buy      *float64 `json:"buy"`
	Sell     *float64 `json:"sell"`
	Honeypot bool     `json:"honeypot"`
}

// Timestamps keeps the known lifecycle moments of the token.
type Timestamps struct {
	Deployed       *string `json:"deployed"`
	FirstLiquidity *string `json:"first_liquidity"`
}

// DevLink is a link between the token deployer and an external resource.
type DevLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Report is a model that represents a completed token analysis.
type Report struct {
	ID           uuid.UUID  `json:"id"`
	Chain        string     `json:"chain"`
	Token        Token      `json:"token"`
	Score        float64    `json:"score"`
	Band         string     `json:"band"`
	Factors      []Factor   `json:"factors"`
	Liquidity    Liquidity  `json:"liquidity"`
	Supply       Supply     `json:"supply"`
	Tax          Tax        `json:"tax"`
	DevLinks     []DevLink  `json:"dev_links"`
	Timestamps   Timestamps `json:"timestamps"`
	Explanations []string   `json:"explanations"`
	Version      string     `json:"version"`
	CreatedAt    time.Time  `json:"created_at"`
}
