//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/mcaproject/bsc-analyzer/controller"
	"github.com/mcaproject/bsc-analyzer/internal/config"
	"github.com/mcaproject/bsc-analyzer/service"
	"github.com/mcaproject/bsc-analyzer/service/chain"
	"github.com/mcaproject/bsc-analyzer/service/explorer"
	"github.com/mcaproject/bsc-analyzer/service/report"
	"github.com/mcaproject/bsc-analyzer/service/scoring"
	"github.com/mcaproject/bsc-analyzer/service/telegram"
	"github.com/mcaproject/bsc-analyzer/service/validation"
	"github.com/mcaproject/bsc-analyzer/service/watch"
)

func InitializeController(cfg *config.Config) (controller.Controller, error) {
	wire.Build(
		chain.NewBSC,
		explorer.NewBscScan,
		scoring.NewScoring,
		report.NewPostgres,
		watch.NewPostgres,
		telegram.NewTelegram,
		validation.NewValidation,
		newAnalyzer,
		service.NewContainer,
		controller.NewController,
		postgresConn,
		postgresSchema,
		chainCaller,
		explorerConfig,
		telegramConfig,
		controllerConfig,
	)
	return controller.Controller{}, nil
}
