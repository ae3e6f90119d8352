package validation

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/mcaproject/bsc-analyzer/model"
)

var addressRx = regexp.MustCompile("^0x[a-fA-F0-9]{40}$")

// NewValidation creates a new instance of the validation service.
func NewValidation() Validation {
	return Validation{}
}

// Validation implements the validation service.
type Validation struct {
}

// Analyze validates the input for the analyze request.
func (v Validation) Analyze(ctx context.Context, f model.FormAnalyze) (model.FormAnalyze, error) {
	if strings.ToLower(strings.TrimSpace(f.Chain)) != model.ChainBSC {
		return f, fmt.Errorf("%w: only '%s' chain is supported", model.ErrBadInput, model.ChainBSC)
	}
	f.Chain = model.ChainBSC
	addr, err := v.Address(f.Address)
	if err != nil {
		return f, err
	}
	f.Address = addr
	return f, nil
}

// AddWatch validates the input for the add watch request.
func (v Validation) AddWatch(ctx context.Context, f model.FormAddWatch) (model.FormAddWatch, error) {
	addr, err := v.Address(f.Address)
	if err != nil {
		return f, err
	}
	f.Address = addr
	return f, nil
}

// Address validates and normalizes a BSC contract address.
func (v Validation) Address(address string) (string, error) {
	address = strings.TrimSpace(address)
	if !addressRx.MatchString(address) {
		return address, fmt.Errorf("%w: contract address must be 0x followed by 40 hex chars", model.ErrBadInput)
	}
	return address, nil
}
