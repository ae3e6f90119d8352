package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/mcaproject/bsc-analyzer/controller"
	"github.com/mcaproject/bsc-analyzer/internal/config"
	"github.com/mcaproject/bsc-analyzer/model"
	"github.com/mcaproject/bsc-analyzer/provider/rest"
	"github.com/mcaproject/bsc-analyzer/service/analyzer"
	"github.com/mcaproject/bsc-analyzer/service/chain"
	"github.com/mcaproject/bsc-analyzer/service/explorer"
	"github.com/mcaproject/bsc-analyzer/service/scoring"
	"github.com/mcaproject/bsc-analyzer/service/telegram"
)

func main() {
	cfg, err := config.Configure()
	if err != nil {
		log.Fatalf("main: configure: %v\n", err)
	}
	c, err := InitializeController(cfg)
	if err != nil {
		log.Fatalf("main: %v\n", err)
	}
	ctx := context.Background()
	go c.RescanWatchlistJob(ctx)
	go c.PruneReportsJob(ctx)
	runHttpServer(cfg, c)
}

func postgresConn(cfg *config.Config) (*pgxpool.Pool, error) {
	pgs := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
	)
	return pgxpool.Connect(context.Background(), pgs)
}

func postgresSchema(cfg *config.Config) model.PgSchema {
	return model.PgSchema(cfg.Database.Schema)
}

func chainCaller(cfg *config.Config) (chain.Caller, error) {
	rc, err := rpc.DialHTTPWithClient(cfg.Chain.RPCURL, &http.Client{Timeout: cfg.Chain.Timeout})
	if err != nil {
		return nil, err
	}
	return ethclient.NewClient(rc), nil
}

func explorerConfig(cfg *config.Config) explorer.Config {
	return explorer.Config{
		URL:     cfg.Explorer.URL,
		APIKey:  cfg.Explorer.APIKey,
		Timeout: cfg.Explorer.Timeout,
	}
}

func telegramConfig(cfg *config.Config) telegram.Config {
	return telegram.Config{
		BotToken: cfg.Telegram.BotToken,
		APIURL:   cfg.Telegram.APIURL,
		Timeout:  cfg.Telegram.Timeout,
	}
}

func controllerConfig(cfg *config.Config) controller.Config {
	return controller.Config{
		CacheTTL:        cfg.Analyzer.CacheTTL,
		RescanInterval:  cfg.Analyzer.RescanInterval,
		ReportRetention: cfg.Analyzer.ReportRetention,
	}
}

func newAnalyzer(chainSvc chain.BSC, explorerSvc explorer.BscScan, scoringSvc scoring.Scoring) analyzer.Analyzer {
	return analyzer.NewAnalyzer(chainSvc, explorerSvc, scoringSvc)
}

func runHttpServer(cfg *config.Config, c controller.Service) {
	srv := &http.Server{
		Addr:    ":" + cfg.HTTP.Port,
		Handler: rest.CreateRouter(c),
	}
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		var err error
		if len(cfg.HTTP.CrtFile) > 0 {
			err = srv.ListenAndServeTLS(cfg.HTTP.CrtFile, cfg.HTTP.KeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("main: serve http: %v; port = %s\n", err, cfg.HTTP.Port)
		}
	}()
	log.Printf("Listening :%s for HTTP connections...\n", cfg.HTTP.Port)
	<-done
	log.Print("Stopping the application...\n")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("main: server shutdown: %v\n", err)
	}
}
