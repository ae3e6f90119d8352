package service

import (
	"github.com/mcaproject/bsc-analyzer/service/analyzer"
	"github.com/mcaproject/bsc-analyzer/service/explorer"
	"github.com/mcaproject/bsc-analyzer/service/report"
	"github.com/mcaproject/bsc-analyzer/service/telegram"
	"github.com/mcaproject/bsc-analyzer/service/validation"
	"github.com/mcaproject/bsc-analyzer/service/watch"
)

// Container keeps all services in one place. The chain and scoring services
// are consumed by the analyzer only and are not exposed here.
type Container struct {
	Analyzer   analyzer.Service
	Explorer   explorer.Service
	Report     report.Service
	Watch      watch.Service
	Telegram   telegram.Service
	Validation validation.Service
}

// NewContainer creates the services container.
func NewContainer(
	analyzerSvc analyzer.Analyzer,
	explorerSvc explorer.BscScan,
	reportSvc report.Postgres,
	watchSvc watch.Postgres,
	telegramSvc telegram.Telegram,
	validationSvc validation.Validation,
) Container {
	return Container{
		Analyzer:   analyzerSvc,
		Explorer:   explorerSvc,
		Report:     reportSvc,
		Watch:      watchSvc,
		Telegram:   telegramSvc,
		Validation: validationSvc,
	}
}
