package config

import (
	"strings"
	"time"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix defines the prefix of the environment variables the service reads.
const EnvPrefix = "MCA_"

// HTTPConfig configures the REST server.
type HTTPConfig struct {
	Port    string `koanf:"port"`
	CrtFile string `koanf:"crt-file"`
	KeyFile string `koanf:"key-file"`
}

// DatabaseConfig configures the Postgres connection.
type DatabaseConfig struct {
	Host     string `koanf:"host"`
	Port     string `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`
	Schema   string `koanf:"schema"`
}

// ChainConfig configures the BSC JSON-RPC endpoint.
type ChainConfig struct {
	RPCURL  string        `koanf:"rpc-url"`
	Timeout time.Duration `koanf:"timeout"`
}

// ExplorerConfig configures the BscScan API client.
type ExplorerConfig struct {
	URL     string        `koanf:"url"`
	APIKey  string        `koanf:"api-key"`
	Timeout time.Duration `koanf:"timeout"`
}

// TelegramConfig configures the Telegram bot integration.
type TelegramConfig struct {
	BotToken string        `koanf:"bot-token"`
	APIURL   string        `koanf:"api-url"`
	Timeout  time.Duration `koanf:"timeout"`
}

// AnalyzerConfig configures report caching and the background jobs.
type AnalyzerConfig struct {
	CacheTTL        time.Duration `koanf:"cache-ttl"`
	RescanInterval  time.Duration `koanf:"rescan-interval"`
	ReportRetention time.Duration `koanf:"report-retention"`
}

// Config is the full service configuration.
type Config struct {
	HTTP     HTTPConfig     `koanf:"http"`
	Database DatabaseConfig `koanf:"database"`
	Chain    ChainConfig    `koanf:"chain"`
	Explorer ExplorerConfig `koanf:"explorer"`
	Telegram TelegramConfig `koanf:"telegram"`
	Analyzer AnalyzerConfig `koanf:"analyzer"`
}

// Configure loads the configuration from the defaults and the environment.
// MCA_DATABASE_HOST maps to database.host, MCA_CHAIN_RPC__URL to chain.rpc-url.
func Configure() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, err
	}
	err = k.Load(env.Provider(EnvPrefix, ".", envToKey), nil)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	err = k.Unmarshal("", cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"http.port":                 "8000",
		"database.host":             "localhost",
		"database.port":             "5432",
		"database.schema":           "public",
		"chain.rpc-url":             "https://bsc-dataseed.binance.org/",
		"chain.timeout":             8 * time.Second,
		"explorer.url":              "https://api.bscscan.com/api",
		"explorer.timeout":          8 * time.Second,
		"telegram.api-url":          "https://api.telegram.org",
		"telegram.timeout":          15 * time.Second,
		"analyzer.cache-ttl":        10 * time.Minute,
		"analyzer.rescan-interval":  15 * time.Minute,
		"analyzer.report-retention": 30 * 24 * time.Hour,
	}
}

func envToKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	s = strings.ReplaceAll(s, "__", "-")
	return strings.ReplaceAll(s, "_", ".")
}
