package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/templui/nyr/cmd/nyr/cmd"
	"github.com/templui/nyr/internal/app"
	"github.com/templui/nyr/internal/config"
	"github.com/templui/nyr/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()

	logFile, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	defer logFile.Close()

	logger.Init(cfg.Debug(), cfg.SentryDSN, logFile)
	defer logger.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Without a database there is nothing to show or change.
	a, err := app.New(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		cmd.PrintError(os.Stderr, err)
		return 1
	}
	defer func() {
		closeErr := a.Close()
		if closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
	}()

	err = cmd.RootCmd(a).ExecuteContext(ctx)
	if err != nil {
		slog.Error("command failed", "error", err, "args", os.Args[1:])
		cmd.PrintError(os.Stderr, err)
		return 1
	}

	return 0
}
