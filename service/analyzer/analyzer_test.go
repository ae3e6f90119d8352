package analyzer

import (
	"context"
	"math/big"
	"testing"

	"github.com/mcaproject/bsc-analyzer/model"
	"github.com/mcaproject/bsc-analyzer/service/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seed 0x0E09 gives a +1 default dev_history signal, which the test math relies on
const testToken = "0x0E09FABB73BD3ADE0A17ECC321FD13A19E81CE82"
const testPair = "0x16b9a82891338f9bA80E2D6970FddA79D1eb0daE"

type chainMock struct {
	v2Pair    string
	v2Err     error
	v3Pool    model.V3Pool
	v3Err     error
	supply    model.SupplyStats
	supplyErr error
	meta      model.TokenMeta
	metaErr   error
	totalRaw  *big.Int
	totalErr  error
	owner     string
	ownerErr  error
	lock      model.LPLock
	lockErr   error
}

func (m chainMock) FindV2Pair(ctx context.Context, token string) (string, error) {
	return m.v2Pair, m.v2Err
}

func (m chainMock) FindV3Pool(ctx context.Context, token string) (model.V3Pool, error) {
	return m.v3Pool, m.v3Err
}

func (m chainMock) SupplyStats(ctx context.Context, token string) (model.SupplyStats, error) {
	return m.supply, m.supplyErr
}

func (m chainMock) TokenMeta(ctx context.Context, token string) (model.TokenMeta, error) {
	return m.meta, m.metaErr
}

func (m chainMock) TotalSupplyRaw(ctx context.Context, token string) (*big.Int, error) {
	return m.totalRaw, m.totalErr
}

func (m chainMock) Owner(ctx context.Context, token, abiJSON string) (string, error) {
	return m.owner, m.ownerErr
}

func (m chainMock) LPLock(ctx context.Context, pair string) (model.LPLock, error) {
	return m.lock, m.lockErr
}

type explorerMock struct {
	abi     model.ContractABI
	abiErr  error
	holders []*big.Int
	hErr    error
	key     bool
}

func (m explorerMock) ContractABI(ctx context.Context, address string) (model.ContractABI, error) {
	return m.abi, m.abiErr
}

func (m explorerMock) TopHolderQuantities(ctx context.Context, address string, limit int) ([]*big.Int, error) {
	return m.holders, m.hErr
}

func (m explorerMock) KeyPresent() bool {
	return m.key
}

func factorByID(t *testing.T, r model.Report, id string) model.Factor {
	t.Helper()
	for _, f := range r.Factors {
		if f.ID == id {
			return f
		}
	}
	t.Fatalf("factor %s not found", id)
	return model.Factor{}
}

func TestAnalyzeHealthyToken(t *testing.T) {
	deadPct := 50.0
	c := chainMock{
		v2Pair:   testPair,
		v3Err:    model.ErrNotFound,
		supply:   model.SupplyStats{TotalDisplay: "1,000,000", DeadPct: &deadPct, Decimals: 18},
		meta:     model.TokenMeta{Symbol: "PEPE", Name: "Pepe Coin"},
		totalRaw: big.NewInt(1000),
		owner:    "0x0000000000000000000000000000000000000000",
		lock:     model.LPLock{Pct: 80, Locker: "Burned LP"},
	}
	e := explorerMock{
		abi:     model.ContractABI{JSON: "[]", Functions: []string{"transfer", "approve"}},
		holders: []*big.Int{big.NewInt(125), big.NewInt(100)},
		key:     true,
	}
	s := NewAnalyzer(c, e, scoring.NewScoring())

	r, err := s.Analyze(context.Background(), testToken)
	require.NoError(t, err)

	assert.Equal(t, model.ChainBSC, r.Chain)
	assert.Equal(t, "PEPE", r.Token.Symbol)
	assert.Equal(t, "Pepe Coin", r.Token.Name)
	assert.Equal(t, testToken, r.Token.Address)
	assert.NotEqual(t, "", r.ID.String())
	assert.Equal(t, model.ReportVersion, r.Version)

	own := factorByID(t, r, scoring.FactorOwnership)
	assert.Equal(t, 1, own.Signal)
	assert.Equal(t, []string{"Ownership renounced (owner=0x0000000000000000000000000000000000000000)"}, own.Evidence)
	assert.Equal(t, 2.5, own.Impact)

	mb := factorByID(t, r, scoring.FactorMintBlacklist)
	assert.Equal(t, 0, mb.Signal)
	assert.Equal(t, []string{"No obvious mint/blacklist functions detected"}, mb.Evidence)

	hc := factorByID(t, r, scoring.FactorHolderConcentration)
	assert.Equal(t, 1, hc.Signal)
	assert.Equal(t, []string{"Top10 holders = 22.5%"}, hc.Evidence)

	mi := factorByID(t, r, scoring.FactorMarketIntegrity)
	assert.Equal(t, 1, mi.Signal)
	assert.Equal(t, []string{"Pancake v2 pair found: " + testPair}, mi.Evidence)

	// lock data informs the liquidity block only; the factor keeps its baseline
	ll := factorByID(t, r, scoring.FactorLiquidityLock)
	assert.Equal(t, 1, ll.Signal)
	assert.Equal(t, 2.0, ll.Impact)
	assert.Equal(t, []string{"lock=80% until 2026-12-31"}, ll.Evidence)

	// 60 base + 2.5 ownership + 1.5 holders + 0.5 market + 2.0 lock + 1.0 dev history
	assert.Equal(t, 67.5, r.Score)
	assert.Equal(t, model.BandCaution, r.Band)

	require.NotNil(t, r.Liquidity.Dex)
	assert.Equal(t, "PancakeSwapV2", *r.Liquidity.Dex)
	assert.Equal(t, testPair, r.Liquidity.Pair)
	require.NotNil(t, r.Liquidity.LPLockedPct)
	assert.Equal(t, 80.0, *r.Liquidity.LPLockedPct)

	require.NotNil(t, r.Supply.Total)
	assert.Equal(t, "1,000,000", *r.Supply.Total)
	require.NotNil(t, r.Supply.DeadWalletPct)
	assert.Equal(t, 50.0, *r.Supply.DeadWalletPct)
	require.NotNil(t, r.Supply.Top10Pct)
	assert.Equal(t, 22.5, *r.Supply.Top10Pct)

	assert.False(t, r.Tax.Honeypot)
	assert.Equal(t, explanations, r.Explanations)
}

func TestAnalyzeSuspiciousToken(t *testing.T) {
	c := chainMock{
		v2Err:     model.ErrNotFound,
		v3Pool:    model.V3Pool{Address: testPair, FeeTier: 500, Quote: "WBNB"},
		owner:     "0x71b5759d73262fbB223956913ecF4ecC51057641",
		supplyErr: model.ErrChainUnavailable,
		totalErr:  model.ErrChainUnavailable,
		metaErr:   model.ErrChainUnavailable,
	}
	e := explorerMock{
		abi:  model.ContractABI{JSON: "[]", Functions: []string{"mint", "setBuyFee", "transfer"}},
		hErr: model.ErrNotFound,
		key:  true,
	}
	s := NewAnalyzer(c, e, scoring.NewScoring())

	r, err := s.Analyze(context.Background(), testToken)
	require.NoError(t, err)

	own := factorByID(t, r, scoring.FactorOwnership)
	assert.Equal(t, -1, own.Signal)
	assert.Equal(t, []string{"Owner set: 0x71b5759d73262fbB223956913ecF4ecC51057641"}, own.Evidence)

	mb := factorByID(t, r, scoring.FactorMintBlacklist)
	assert.Equal(t, -1, mb.Signal)
	assert.Contains(t, mb.Evidence, "Suspicious fn: mint()")
	assert.Contains(t, mb.Evidence, "Suspicious fn: setBuyFee()")

	th := factorByID(t, r, scoring.FactorTaxHoneypot)
	assert.Equal(t, -1, th.Signal)
	assert.Equal(t, []string{"Fee/tax fn: setBuyFee()"}, th.Evidence)
	assert.True(t, r.Tax.Honeypot)

	hc := factorByID(t, r, scoring.FactorHolderConcentration)
	assert.Equal(t, []string{"Top10 holders unknown (API limit)"}, hc.Evidence)

	mi := factorByID(t, r, scoring.FactorMarketIntegrity)
	assert.Equal(t, 1, mi.Signal)
	assert.Equal(t, []string{"Pancake v3 pool found: " + testPair + " (fee 5.00%, WBNB)"}, mi.Evidence)

	require.NotNil(t, r.Liquidity.Dex)
	assert.Equal(t, "PancakeSwapV3", *r.Liquidity.Dex)
	assert.Nil(t, r.Liquidity.LPLockedPct)

	// degraded on-chain reads fall back to the placeholder identity
	assert.Equal(t, "MEME", r.Token.Symbol)
	assert.Equal(t, "Memecoin", r.Token.Name)
	assert.Nil(t, r.Supply.Total)
}

func TestAnalyzePartialLockKeepsBaselineFactor(t *testing.T) {
	c := chainMock{
		v2Pair:    testPair,
		v3Err:     model.ErrNotFound,
		supplyErr: model.ErrNotFound,
		totalErr:  model.ErrNotFound,
		metaErr:   model.ErrNotFound,
		ownerErr:  model.ErrNotFound,
		lock:      model.LPLock{Pct: 20, Locker: "PinkLock"},
	}
	e := explorerMock{abiErr: model.ErrNotFound, hErr: model.ErrNotFound}
	s := NewAnalyzer(c, e, scoring.NewScoring())

	r, err := s.Analyze(context.Background(), testToken)
	require.NoError(t, err)

	ll := factorByID(t, r, scoring.FactorLiquidityLock)
	assert.Equal(t, 1, ll.Signal)
	assert.Equal(t, 2.0, ll.Impact)
	assert.Equal(t, []string{"lock=80% until 2026-12-31"}, ll.Evidence)

	require.NotNil(t, r.Liquidity.LPLockedPct)
	assert.Equal(t, 20.0, *r.Liquidity.LPLockedPct)
	require.NotNil(t, r.Liquidity.Locker)
	assert.Equal(t, "PinkLock", *r.Liquidity.Locker)
}

func TestAnalyzeEverythingUnavailable(t *testing.T) {
	c := chainMock{
		v2Err:     model.ErrChainUnavailable,
		v3Err:     model.ErrChainUnavailable,
		supplyErr: model.ErrChainUnavailable,
		totalErr:  model.ErrChainUnavailable,
		metaErr:   model.ErrChainUnavailable,
		ownerErr:  model.ErrChainUnavailable,
		lockErr:   model.ErrChainUnavailable,
	}
	e := explorerMock{abiErr: model.ErrExplorerUnavailable, hErr: model.ErrExplorerUnavailable}
	sc := scoring.NewScoring()
	s := NewAnalyzer(c, e, sc)

	r, err := s.Analyze(context.Background(), testToken)
	require.NoError(t, err)

	own := factorByID(t, r, scoring.FactorOwnership)
	assert.Equal(t, 0, own.Signal)
	assert.Equal(t, []string{"Owner unknown (ABI/owner() not available)"}, own.Evidence)

	mb := factorByID(t, r, scoring.FactorMintBlacklist)
	assert.Equal(t, []string{"ABI unavailable"}, mb.Evidence)

	assert.Nil(t, r.Liquidity.Dex)
	assert.Equal(t, zeroAddressHex, r.Liquidity.Pair)
	assert.Equal(t, sc.Band(r.Score), r.Band)
}

func TestRiskFlags(t *testing.T) {
	mbSignal, mbEvidence, thSignal, thEvidence := riskFlags(nil, false)
	assert.Equal(t, 0, mbSignal)
	assert.Equal(t, []string{"ABI unavailable"}, mbEvidence)
	assert.Equal(t, 0, thSignal)
	assert.Equal(t, []string{"ABI unavailable"}, thEvidence)

	mbSignal, mbEvidence, thSignal, thEvidence = riskFlags([]string{"transfer", "approve"}, true)
	assert.Equal(t, 0, mbSignal)
	assert.Equal(t, []string{"No obvious mint/blacklist functions detected"}, mbEvidence)
	assert.Equal(t, 0, thSignal)
	assert.Equal(t, []string{"No obvious tax/honeypot functions detected"}, thEvidence)

	mbSignal, _, thSignal, thEvidence = riskFlags([]string{"setTaxFee", "isBlacklisted"}, true)
	assert.Equal(t, -1, mbSignal)
	assert.Equal(t, -1, thSignal)
	assert.Equal(t, []string{"Fee/tax fn: setTaxFee()"}, thEvidence)
}
