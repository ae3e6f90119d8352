package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureDefaults(t *testing.T) {
	cfg, err := Configure()
	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.HTTP.Port)
	assert.Equal(t, "https://bsc-dataseed.binance.org/", cfg.Chain.RPCURL)
	assert.Equal(t, "https://api.bscscan.com/api", cfg.Explorer.URL)
	assert.Equal(t, 10*time.Minute, cfg.Analyzer.CacheTTL)
	assert.Equal(t, 15*time.Minute, cfg.Analyzer.RescanInterval)
	assert.Equal(t, 30*24*time.Hour, cfg.Analyzer.ReportRetention)
	assert.Empty(t, cfg.Explorer.APIKey)
}

func TestConfigureEnvOverrides(t *testing.T) {
	t.Setenv("MCA_HTTP_PORT", "9090")
	t.Setenv("MCA_DATABASE_HOST", "db.internal")
	t.Setenv("MCA_CHAIN_RPC__URL", "https://rpc.example.org/")
	t.Setenv("MCA_EXPLORER_API__KEY", "secret")
	t.Setenv("MCA_TELEGRAM_BOT__TOKEN", "123:abc")
	t.Setenv("MCA_ANALYZER_CACHE__TTL", "1m")
	cfg, err := Configure()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "https://rpc.example.org/", cfg.Chain.RPCURL)
	assert.Equal(t, "secret", cfg.Explorer.APIKey)
	assert.Equal(t, "123:abc", cfg.Telegram.BotToken)
	assert.Equal(t, time.Minute, cfg.Analyzer.CacheTTL)
}
