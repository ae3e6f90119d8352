package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/beldeveloper/go-errors-context"
	"github.com/mcaproject/bsc-analyzer/model"
)

// Config keeps the BscScan client settings.
type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// NewBscScan creates a new instance of the BscScan explorer service.
func NewBscScan(cfg Config) BscScan {
	return BscScan{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// BscScan implements the explorer service with the BscScan HTTP API.
type BscScan struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

type abiEntry struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

type holderEntry struct {
	TokenHolderAddress  string `json:"TokenHolderAddress"`
	TokenHolderQuantity string `json:"TokenHolderQuantity"`
}

// KeyPresent reports whether an API key is configured.
func (s BscScan) KeyPresent() bool {
	return s.apiKey != ""
}

// ContractABI fetches the verified ABI of the contract.
// Returns model.ErrNotFound for unverified contracts and rejected requests.
func (s BscScan) ContractABI(ctx context.Context, address string) (model.ContractABI, error) {
	var res model.ContractABI
	if !s.KeyPresent() {
		return res, fmt.Errorf("%w: no api key configured", model.ErrExplorerUnavailable)
	}
	env, err := s.get(ctx, url.Values{
		"module":  {"contract"},
		"action":  {"getabi"},
		"address": {address},
	})
	if err != nil {
		return res, errors.WrapContext(err, errors.Context{
			Path:   "service.explorer.BscScan.ContractABI",
			Params: errors.Params{"address": address},
		})
	}
	if env.Status != "1" || len(env.Result) == 0 {
		return res, fmt.Errorf("%w: abi: %s", model.ErrNotFound, env.Message)
	}
	err = json.Unmarshal(env.Result, &res.JSON)
	if err != nil {
		return res, errors.WrapContext(err, errors.Context{
			Path:   "service.explorer.BscScan.ContractABI: decode result",
			Params: errors.Params{"address": address},
		})
	}
	var entries []abiEntry
	err = json.Unmarshal([]byte(res.JSON), &entries)
	if err != nil {
		return res, fmt.Errorf("%w: abi is not a json array: %v", model.ErrNotFound, err)
	}
	for _, e := range entries {
		if e.Type == "function" && e.Name != "" {
			res.Functions = append(res.Functions, e.Name)
		}
	}
	return res, nil
}

// TopHolderQuantities fetches the raw balances of the biggest token holders.
func (s BscScan) TopHolderQuantities(ctx context.Context, address string, limit int) ([]*big.Int, error) {
	if !s.KeyPresent() {
		return nil, fmt.Errorf("%w: no api key configured", model.ErrExplorerUnavailable)
	}
	env, err := s.get(ctx, url.Values{
		"module":          {"token"},
		"action":          {"tokenholderlist"},
		"contractaddress": {address},
		"page":            {"1"},
		"offset":          {strconv.Itoa(limit)},
	})
	if err != nil {
		return nil, errors.WrapContext(err, errors.Context{
			Path:   "service.explorer.BscScan.TopHolderQuantities",
			Params: errors.Params{"address": address},
		})
	}
	if env.Status != "1" || len(env.Result) == 0 {
		return nil, fmt.Errorf("%w: holder list: %s", model.ErrNotFound, env.Message)
	}
	var holders []holderEntry
	err = json.Unmarshal(env.Result, &holders)
	if err != nil {
		return nil, errors.WrapContext(err, errors.Context{
			Path:   "service.explorer.BscScan.TopHolderQuantities: decode result",
			Params: errors.Params{"address": address},
		})
	}
	quantities := make([]*big.Int, 0, len(holders))
	for _, h := range holders {
		qty := h.TokenHolderQuantity
		if qty == "" {
			qty = "0"
		}
		v, ok := new(big.Int).SetString(qty, 10)
		if !ok {
			// some responses render quantities with a decimal point
			v, ok = new(big.Int).SetString(strings.ReplaceAll(qty, ".", ""), 10)
		}
		if !ok {
			return nil, fmt.Errorf("service.explorer.BscScan.TopHolderQuantities: bad quantity %q; address = %s", qty, address)
		}
		quantities = append(quantities, v)
	}
	return quantities, nil
}

func (s BscScan) get(ctx context.Context, params url.Values) (envelope, error) {
	var env envelope
	params.Set("apikey", s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return env, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return env, fmt.Errorf("%w: %v", model.ErrExplorerUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return env, fmt.Errorf("%w: unexpected status %d", model.ErrExplorerUnavailable, resp.StatusCode)
	}
	err = json.NewDecoder(resp.Body).Decode(&env)
	if err != nil {
		return env, fmt.Errorf("%w: decode response: %v", model.ErrExplorerUnavailable, err)
	}
	return env, nil
}
