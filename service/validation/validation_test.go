package validation

import (
	"context"
	"testing"

	"github.com/mcaproject/bsc-analyzer/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	v := NewValidation()
	ctx := context.Background()

	f, err := v.Analyze(ctx, model.FormAnalyze{Chain: "BSC", Address: " 0x0E09FABB73BD3ADE0A17ECC321FD13A19E81CE82 "})
	require.NoError(t, err)
	assert.Equal(t, model.ChainBSC, f.Chain)
	assert.Equal(t, "0x0E09FABB73BD3ADE0A17ECC321FD13A19E81CE82", f.Address)

	_, err = v.Analyze(ctx, model.FormAnalyze{Chain: "eth", Address: "0x0E09FABB73BD3ADE0A17ECC321FD13A19E81CE82"})
	assert.ErrorIs(t, err, model.ErrBadInput)

	_, err = v.Analyze(ctx, model.FormAnalyze{Chain: "bsc", Address: "0xNOTANADDRESS"})
	assert.ErrorIs(t, err, model.ErrBadInput)
}

func TestAddress(t *testing.T) {
	v := NewValidation()
	cases := []struct {
		address string
		valid   bool
	}{
		{"0x55d398326f99059fF775485246999027B3197955", true},
		{"0x0000000000000000000000000000000000000000", true},
		{"55d398326f99059fF775485246999027B3197955", false},
		{"0x55d398326f99059fF775485246999027B31979", false},
		{"0x55d398326f99059fF775485246999027B3197955ab", false},
		{"", false},
	}
	for _, c := range cases {
		_, err := v.Address(c.address)
		if c.valid {
			assert.NoError(t, err, c.address)
		} else {
			assert.ErrorIs(t, err, model.ErrBadInput, c.address)
		}
	}
}
