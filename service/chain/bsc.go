package chain

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/beldeveloper/go-errors-context"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mcaproject/bsc-analyzer/model"
)

// NewBSC creates a new instance of the BSC chain service.
func NewBSC(caller Caller) (BSC, error) {
	erc20, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return BSC{}, errors.WrapContext(err, errors.Context{Path: "service.chain.NewBSC: parse erc20 abi"})
	}
	v2, err := abi.JSON(strings.NewReader(factoryV2ABI))
	if err != nil {
		return BSC{}, errors.WrapContext(err, errors.Context{Path: "service.chain.NewBSC: parse v2 factory abi"})
	}
	v3, err := abi.JSON(strings.NewReader(factoryV3ABI))
	if err != nil {
		return BSC{}, errors.WrapContext(err, errors.Context{Path: "service.chain.NewBSC: parse v3 factory abi"})
	}
	return BSC{caller: caller, erc20: erc20, factoryV2: v2, factoryV3: v3}, nil
}

// BSC implements the chain service against a BSC JSON-RPC node.
type BSC struct {
	caller    Caller
	erc20     abi.ABI
	factoryV2 abi.ABI
	factoryV3 abi.ABI
}

// FindV2Pair looks up the PancakeSwap v2 pair of the token against the WBNB
// and USDT quotes. Returns model.ErrNotFound when the factory knows no pair.
func (s BSC) FindV2Pair(ctx context.Context, token string) (string, error) {
	t := common.HexToAddress(token)
	for _, quote := range []common.Address{WBNB, USDT} {
		out, err := s.call(ctx, PancakeV2Factory, s.factoryV2, "getPair", t, quote)
		if err != nil {
			continue
		}
		pair, ok := out[0].(common.Address)
		if ok && pair != ZeroAddress {
			return pair.Hex(), nil
		}
	}
	return "", model.ErrNotFound
}

// FindV3Pool looks up the PancakeSwap v3 pool of the token over all fee tiers
// against the WBNB and USDT quotes. Returns model.ErrNotFound when absent.
func (s BSC) FindV3Pool(ctx context.Context, token string) (model.V3Pool, error) {
	t := common.HexToAddress(token)
	quotes := []struct {
		addr   common.Address
		symbol string
	}{
		{WBNB, "WBNB"},
		{USDT, "USDT"},
	}
	for _, q := range quotes {
		for _, fee := range V3FeeTiers {
			out, err := s.call(ctx, PancakeV3Factory, s.factoryV3, "getPool", t, q.addr, big.NewInt(fee))
			if err != nil {
				continue
			}
			pool, ok := out[0].(common.Address)
			if ok && pool != ZeroAddress {
				return model.V3Pool{Address: pool.Hex(), FeeTier: fee, Quote: q.symbol}, nil
			}
		}
	}
	return model.V3Pool{}, model.ErrNotFound
}

// SupplyStats reads the total supply and the burn-wallet share of the token.
func (s BSC) SupplyStats(ctx context.Context, token string) (model.SupplyStats, error) {
	var stats model.SupplyStats
	t := common.HexToAddress(token)
	out, err := s.call(ctx, t, s.erc20, "decimals")
	if err != nil {
		return stats, errors.WrapContext(err, errors.Context{
			Path:   "service.chain.BSC.SupplyStats: decimals",
			Params: errors.Params{"token": token},
		})
	}
	decimals, ok := out[0].(uint8)
	if !ok {
		return stats, fmt.Errorf("service.chain.BSC.SupplyStats: unexpected decimals type; token = %s", token)
	}
	total, err := s.callBig(ctx, t, "totalSupply")
	if err != nil {
		return stats, errors.WrapContext(err, errors.Context{
			Path:   "service.chain.BSC.SupplyStats: totalSupply",
			Params: errors.Params{"token": token},
		})
	}
	dead, err := s.callBig(ctx, t, "balanceOf", DeadAddress)
	if err != nil {
		return stats, errors.WrapContext(err, errors.Context{
			Path:   "service.chain.BSC.SupplyStats: balanceOf dead",
			Params: errors.Params{"token": token},
		})
	}
	stats.Decimals = int(decimals)
	scale := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	totalH, _ := new(big.Float).Quo(new(big.Float).SetInt(total), scale).Float64()
	deadH, _ := new(big.Float).Quo(new(big.Float).SetInt(dead), scale).Float64()
	if totalH > 0 {
		pct := round4(deadH / totalH * 100)
		stats.DeadPct = &pct
	}
	stats.TotalDisplay = formatSupply(totalH)
	return stats, nil
}

// TokenMeta reads the symbol and name of the token contract.
func (s BSC) TokenMeta(ctx context.Context, token string) (model.TokenMeta, error) {
	var meta model.TokenMeta
	t := common.HexToAddress(token)
	symOut, symErr := s.call(ctx, t, s.erc20, "symbol")
	if symErr == nil {
		meta.Symbol, _ = symOut[0].(string)
	}
	nameOut, nameErr := s.call(ctx, t, s.erc20, "name")
	if nameErr == nil {
		meta.Name, _ = nameOut[0].(string)
	}
	if symErr != nil && nameErr != nil {
		return meta, errors.WrapContext(symErr, errors.Context{
			Path:   "service.chain.BSC.TokenMeta",
			Params: errors.Params{"token": token},
		})
	}
	return meta, nil
}

// TotalSupplyRaw reads the unscaled total supply of the token.
func (s BSC) TotalSupplyRaw(ctx context.Context, token string) (*big.Int, error) {
	total, err := s.callBig(ctx, common.HexToAddress(token), "totalSupply")
	return total, errors.WrapContext(err, errors.Context{
		Path:   "service.chain.BSC.TotalSupplyRaw",
		Params: errors.Params{"token": token},
	})
}

// Owner calls owner()/getOwner() on the token through its verified ABI.
// Returns model.ErrNotFound when the ABI exposes no usable owner getter.
func (s BSC) Owner(ctx context.Context, token, abiJSON string) (string, error) {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return "", fmt.Errorf("%w: unparseable verified abi: %v", model.ErrNotFound, err)
	}
	t := common.HexToAddress(token)
	for _, fn := range []string{"owner", "getOwner"} {
		m, ok := parsed.Methods[fn]
		if !ok || len(m.Inputs) > 0 {
			continue
		}
		out, err := s.call(ctx, t, parsed, fn)
		if err != nil || len(out) == 0 {
			continue
		}
		owner, ok := out[0].(common.Address)
		if !ok {
			continue
		}
		return owner.Hex(), nil
	}
	return "", model.ErrNotFound
}

// LPLock scans the LP token balances of the known lockers and reports the
// biggest share. Returns model.ErrNotFound when no locker holds anything.
func (s BSC) LPLock(ctx context.Context, pair string) (model.LPLock, error) {
	p := common.HexToAddress(pair)
	total, err := s.callBig(ctx, p, "totalSupply")
	if err != nil {
		return model.LPLock{}, errors.WrapContext(err, errors.Context{
			Path:   "service.chain.BSC.LPLock: totalSupply",
			Params: errors.Params{"pair": pair},
		})
	}
	if total.Sign() == 0 {
		return model.LPLock{}, model.ErrNotFound
	}
	totalF := new(big.Float).SetInt(total)
	var best model.LPLock
	for _, locker := range KnownLockers {
		bal, err := s.callBig(ctx, p, "balanceOf", locker.Address)
		if err != nil {
			return model.LPLock{}, errors.WrapContext(err, errors.Context{
				Path:   "service.chain.BSC.LPLock: balanceOf",
				Params: errors.Params{"pair": pair, "locker": locker.Label},
			})
		}
		pct, _ := new(big.Float).Quo(new(big.Float).SetInt(bal), totalF).Float64()
		pct *= 100
		if pct > best.Pct {
			best = model.LPLock{Pct: pct, Locker: locker.Label}
		}
	}
	if best.Locker == "" {
		return model.LPLock{}, model.ErrNotFound
	}
	best.Pct = round4(best.Pct)
	return best, nil
}

func (s BSC) call(ctx context.Context, to common.Address, a abi.ABI, method string, args ...interface{}) ([]interface{}, error) {
	data, err := a.Pack(method, args...)
	if err != nil {
		return nil, errors.WrapContext(err, errors.Context{
			Path:   "service.chain.BSC.call: pack",
			Params: errors.Params{"method": method},
		})
	}
	res, err := s.caller.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", model.ErrChainUnavailable, method, err)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("%w: %s returned no data", model.ErrChainUnavailable, method)
	}
	out, err := a.Unpack(method, res)
	if err != nil {
		return nil, errors.WrapContext(err, errors.Context{
			Path:   "service.chain.BSC.call: unpack",
			Params: errors.Params{"method": method},
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s unpacked to nothing", model.ErrChainUnavailable, method)
	}
	return out, nil
}

func (s BSC) callBig(ctx context.Context, to common.Address, method string, args ...interface{}) (*big.Int, error) {
	out, err := s.call(ctx, to, s.erc20, method, args...)
	if err != nil {
		return nil, err
	}
	v, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("service.chain.BSC.callBig: unexpected output type for %s", method)
	}
	return v, nil
}

// formatSupply renders the scaled total supply; big totals get thousands separators.
func formatSupply(total float64) string {
	if total < 1_000_000 {
		return strconv.FormatFloat(total, 'f', -1, 64)
	}
	n := int64(math.Round(total))
	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
