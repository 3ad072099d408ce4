package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mfreitas/gh-activity/internal/api"
	"github.com/mfreitas/gh-activity/internal/api/github"
	"github.com/mfreitas/gh-activity/internal/config"
	"github.com/mfreitas/gh-activity/internal/readme"
	"github.com/mfreitas/gh-activity/internal/render"
	"github.com/mfreitas/gh-activity/internal/service"
)

func main() {
	if err := run(); err != nil {
		// Exactly one failure message per failing run, with a fixed
		// marker so failures are greppable in workflow logs.
		fmt.Fprintf(os.Stderr, "❌ Error in the update process: %v\n", err)
		os.Exit(1)
	}
}

// run wires up all dependencies and executes one update.
// This is the composition root where all dependencies are created and
// injected.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := newLogger(cfg.LogLevel)

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpClient := &http.Client{
		Timeout: 30 * time.Second, // Set reasonable timeout for API requests
	}
	client := github.NewClient(api.ClientConfig{
		BaseURL: cfg.APIURL,
		Token:   cfg.Token,
	}, httpClient, logger)

	ignore, err := cfg.IgnoreList()
	if err != nil {
		return err
	}
	activity := service.NewActivityService(client, ignore, cfg.HideDetailsOnPrivateRepos, logger)

	logger.Info("fetching activity", "username", cfg.Username, "limit", cfg.EventLimit)
	lines, err := activity.Fetch(ctx, cfg.Username, cfg.EventLimit)
	if err != nil {
		return err
	}

	block := render.Assemble(lines, cfg.Style())

	updater := readme.NewUpdater(cfg.ReadmePath, logger)
	changed, err := updater.Update(block)
	if err != nil {
		return err
	}

	if changed && cfg.CommitChanges {
		committer := readme.NewCommitter(logger)
		if err := committer.Commit(ctx, cfg.ReadmePath, cfg.CommitMessage); err != nil {
			return err
		}
	}

	logger.Info("update complete", "path", cfg.ReadmePath, "lines", len(lines), "changed", changed)
	return nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
