package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/mcaproject/bsc-analyzer/model"
	"github.com/mcaproject/bsc-analyzer/service"
)

const (
	// RescanWatchlistFrequency defines the frequency of the watchlist rescan job.
	RescanWatchlistFrequency = time.Minute
	// PruneReportsFrequency defines the frequency of the report retention job.
	PruneReportsFrequency = time.Hour

	// DefaultReportsLimit caps the report listing when no limit is given.
	DefaultReportsLimit = 20
	// MaxReportsLimit is the hard cap of the report listing.
	MaxReportsLimit = 100
)

// Config keeps the controller timing knobs.
type Config struct {
	CacheTTL        time.Duration
	RescanInterval  time.Duration
	ReportRetention time.Duration
}

// NewController creates a new instance of the application controller.
func NewController(services service.Container, cfg Config) Controller {
	return Controller{services: services, cfg: cfg}
}

// Controller implements the application controller.
type Controller struct {
	services service.Container
	cfg      Config
}

// Analyze validates the request and returns a risk report for the token,
// reusing a fresh stored report when one exists.
func (c Controller) Analyze(ctx context.Context, f model.FormAnalyze) (model.Report, error) {
	f, err := c.services.Validation.Analyze(ctx, f)
	if err != nil {
		if errors.Is(err, model.ErrBadInput) {
			return model.Report{}, err
		}
		return model.Report{}, fmt.Errorf("controller.Analyze: error during validation: %w", err)
	}
	r, err := c.services.Report.FindFresh(ctx, f.Address, time.Now().Add(-c.cfg.CacheTTL))
	if err == nil {
		return r, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		log.Printf("controller.Analyze: coudn't check the report cache: %v\n", err)
	}
	r, err = c.services.Analyzer.Analyze(ctx, f.Address)
	if err != nil {
		return r, fmt.Errorf("controller.Analyze: coudn't analyze the token: %w", err)
	}
	err = c.services.Report.Add(ctx, r)
	if err != nil {
		log.Printf("controller.Analyze: coudn't store the report: %v; token = %s\n", err, f.Address)
	}
	log.Printf("The token %s is analyzed; score = %.2f (%s)\n", f.Address, r.Score, r.Band)
	return r, nil
}

// Reports returns the list of recently completed reports.
func (c Controller) Reports(ctx context.Context, limit int) ([]model.Report, error) {
	if limit <= 0 {
		limit = DefaultReportsLimit
	}
	if limit > MaxReportsLimit {
		limit = MaxReportsLimit
	}
	return c.services.Report.FindRecent(ctx, limit)
}

// ReportByAddress returns the latest stored report for the token.
func (c Controller) ReportByAddress(ctx context.Context, address string) (model.Report, error) {
	address, err := c.services.Validation.Address(address)
	if err != nil {
		return model.Report{}, err
	}
	return c.services.Report.FindLatest(ctx, address)
}

// ExplorerStatus reports whether the explorer integration can serve the token.
func (c Controller) ExplorerStatus(ctx context.Context, address string) (model.ExplorerStatus, error) {
	address, err := c.services.Validation.Address(address)
	if err != nil {
		return model.ExplorerStatus{}, err
	}
	status := model.ExplorerStatus{
		KeyPresent: c.services.Explorer.KeyPresent(),
		ABIStatus:  "missing_or_rate_limited",
	}
	abi, err := c.services.Explorer.ContractABI(ctx, address)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrExplorerUnavailable) {
			return status, nil
		}
		return status, fmt.Errorf("controller.ExplorerStatus: coudn't fetch the abi: %w", err)
	}
	status.ABIStatus = "ok"
	status.ABIFunctionCount = len(abi.Functions)
	return status, nil
}

// Watchlist returns the list of tracked tokens.
func (c Controller) Watchlist(ctx context.Context) ([]model.WatchedToken, error) {
	return c.services.Watch.FindAll(ctx)
}

// AddWatch adds a token to the watchlist; the rescan job picks it up immediately.
func (c Controller) AddWatch(ctx context.Context, f model.FormAddWatch) (model.WatchedToken, error) {
	f, err := c.services.Validation.AddWatch(ctx, f)
	if err != nil {
		if errors.Is(err, model.ErrBadInput) {
			return model.WatchedToken{}, err
		}
		return model.WatchedToken{}, fmt.Errorf("controller.AddWatch: error during validation: %w", err)
	}
	w, err := c.services.Watch.Add(ctx, model.WatchedToken{
		Address:   f.Address,
		ChatID:    f.ChatID,
		CheckedAt: time.Unix(0, 0).UTC(),
		CreatedAt: time.Now(),
	})
	if err != nil {
		return w, fmt.Errorf("controller.AddWatch: coudn't add the watch entry: %w", err)
	}
	log.Printf("The token %s is watched; entry #%d\n", w.Address, w.ID)
	return w, nil
}

// RemoveWatch removes a watchlist entry.
func (c Controller) RemoveWatch(ctx context.Context, id uint64) error {
	err := c.services.Watch.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return fmt.Errorf("controller.RemoveWatch: coudn't delete the watch entry: %w", err)
	}
	log.Printf("The watch entry #%d is removed\n", id)
	return nil
}

// HandleTelegramUpdate routes a webhook update: commands manage the watchlist,
// a bare contract address triggers an analysis reply.
func (c Controller) HandleTelegramUpdate(ctx context.Context, u model.TelegramUpdate) (model.TelegramAck, error) {
	msg, err := c.services.Telegram.Parse(u)
	if err != nil {
		// nothing can be done without a chat; ack to avoid retry storms
		return model.TelegramAck{OK: true, Ignored: err.Error()}, nil
	}
	chatID := msg.Chat.ID
	if msg.Text == "" || strings.HasPrefix(strings.ToLower(msg.Text), "/start") {
		return c.reply(ctx, chatID, c.services.Telegram.Help())
	}
	fields := strings.Fields(msg.Text)
	switch strings.ToLower(fields[0]) {
	case "/watch":
		return c.telegramWatch(ctx, chatID, fields)
	case "/unwatch":
		return c.telegramUnwatch(ctx, chatID, fields)
	}
	address, err := c.services.Validation.Address(fields[0])
	if err != nil {
		return c.reply(ctx, chatID, "Please send a valid BSC contract address (starts with 0x + 40 hex chars).")
	}
	r, err := c.Analyze(ctx, model.FormAnalyze{Chain: model.ChainBSC, Address: address})
	if err != nil {
		// don't leak internals to the chat; keep the detail in the ack for the logs
		_ = c.services.Telegram.Send(ctx, chatID, "Sorry, couldn't analyze. Try again in a minute.")
		return model.TelegramAck{OK: false, Error: err.Error()}, nil
	}
	return c.reply(ctx, chatID, c.services.Telegram.FormatReport(r))
}

func (c Controller) telegramWatch(ctx context.Context, chatID int64, fields []string) (model.TelegramAck, error) {
	if len(fields) < 2 {
		return c.reply(ctx, chatID, "Usage: /watch <contract address>")
	}
	address, err := c.services.Validation.Address(fields[1])
	if err != nil {
		return c.reply(ctx, chatID, "Please send a valid BSC contract address (starts with 0x + 40 hex chars).")
	}
	_, err = c.AddWatch(ctx, model.FormAddWatch{Address: address, ChatID: &chatID})
	if err != nil {
		return model.TelegramAck{}, fmt.Errorf("controller.telegramWatch: %w", err)
	}
	return c.reply(ctx, chatID, fmt.Sprintf("Now watching %s. I'll alert you here if its risk band worsens.", address))
}

func (c Controller) telegramUnwatch(ctx context.Context, chatID int64, fields []string) (model.TelegramAck, error) {
	if len(fields) < 2 {
		return c.reply(ctx, chatID, "Usage: /unwatch <contract address>")
	}
	address, err := c.services.Validation.Address(fields[1])
	if err != nil {
		return c.reply(ctx, chatID, "Please send a valid BSC contract address (starts with 0x + 40 hex chars).")
	}
	err = c.services.Watch.DeleteByAddress(ctx, address, chatID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return c.reply(ctx, chatID, fmt.Sprintf("You are not watching %s.", address))
		}
		return model.TelegramAck{}, fmt.Errorf("controller.telegramUnwatch: %w", err)
	}
	return c.reply(ctx, chatID, fmt.Sprintf("Stopped watching %s.", address))
}

func (c Controller) reply(ctx context.Context, chatID int64, text string) (model.TelegramAck, error) {
	err := c.services.Telegram.Send(ctx, chatID, text)
	if err != nil {
		return model.TelegramAck{}, fmt.Errorf("controller.reply: telegram send failed: %w", err)
	}
	return model.TelegramAck{OK: true}, nil
}

// RescanWatchlistJob is a job that re-analyzes the watched tokens and alerts
// the attached chats when a risk band worsens.
func (c Controller) RescanWatchlistJob(ctx context.Context) {
	t := time.NewTicker(RescanWatchlistFrequency)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			c.rescanNext(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (c Controller) rescanNext(ctx context.Context) {
	w, err := c.services.Watch.FindOutdated(ctx, time.Now().Add(-c.cfg.RescanInterval))
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			log.Printf("controller.RescanWatchlistJob: coudn't fetch the outdated entry: %v\n", err)
		}
		return
	}
	r, err := c.services.Analyzer.Analyze(ctx, w.Address)
	if err != nil {
		log.Printf("controller.RescanWatchlistJob: coudn't analyze the token: %v; entry #%d\n", err, w.ID)
		return
	}
	err = c.services.Report.Add(ctx, r)
	if err != nil {
		log.Printf("controller.RescanWatchlistJob: coudn't store the report: %v; entry #%d\n", err, w.ID)
	}
	prevBand := w.LastBand
	w.LastBand = r.Band
	w.LastScore = r.Score
	w.CheckedAt = time.Now()
	w, err = c.services.Watch.Update(ctx, w)
	if err != nil {
		log.Printf("controller.RescanWatchlistJob: coudn't update the entry: %v; entry #%d\n", err, w.ID)
		return
	}
	if w.ChatID != nil && prevBand != "" && model.BandSeverity(r.Band) > model.BandSeverity(prevBand) {
		alert := fmt.Sprintf(
			"Risk alert for %s: band changed %s -> %s (score %.2f)",
			r.Token.Address, prevBand, r.Band, r.Score,
		)
		err = c.services.Telegram.Send(ctx, *w.ChatID, alert)
		if err != nil {
			log.Printf("controller.RescanWatchlistJob: coudn't send the alert: %v; entry #%d\n", err, w.ID)
		}
	}
	log.Printf("The watched token %s is rescanned; band = %s\n", w.Address, w.LastBand)
}

// PruneReportsJob is a job that deletes the reports older than the retention window.
func (c Controller) PruneReportsJob(ctx context.Context) {
	t := time.NewTicker(PruneReportsFrequency)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			n, err := c.services.Report.DeleteOlderThan(ctx, time.Now().Add(-c.cfg.ReportRetention))
			if err != nil {
				log.Printf("controller.PruneReportsJob: coudn't prune the reports: %v\n", err)
				break
			}
			if n > 0 {
				log.Printf("Pruned %d outdated reports\n", n)
			}
		case <-ctx.Done():
			return
		}
	}
}
