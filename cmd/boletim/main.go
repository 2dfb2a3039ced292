package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/mamadbah2/boletim/internal/config"
	"github.com/mamadbah2/boletim/internal/console"
	"github.com/mamadbah2/boletim/internal/domain/models"
	"github.com/mamadbah2/boletim/internal/repository/memory"
	commandsvc "github.com/mamadbah2/boletim/internal/service/commands"
	reportingsvc "github.com/mamadbah2/boletim/internal/service/reporting"
	"github.com/mamadbah2/boletim/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	baseLogger := logger.Must(logger.New(cfg.Logging.Level, cfg.Logging.Outputs))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	var seed []models.Student
	if cfg.Menu.SeedStudents {
		seed = append(seed, models.SeedStudent())
	}
	variant := models.Variant(cfg.Menu.Variant)

	store := memory.NewStudentRepository(logger.Named(baseLogger, "repo.memory"), seed...)
	reportingSvc := reportingsvc.NewService(store, logger.Named(baseLogger, "svc.reporting"))
	dispatcher := commandsvc.NewService(store, reportingSvc, variant, logger.Named(baseLogger, "svc.commands"))

	prompter := console.NewPrompter(os.Stdin, os.Stdout)
	menu := console.NewMenu(prompter, dispatcher, variant, logger.Named(baseLogger, "console"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	finished := make(chan struct{})
	defer func() {
		close(finished)
		stop()
	}()

	// A blocked read on stdin does not observe ctx, so an interrupt ends the process here.
	go func() {
		<-ctx.Done()
		select {
		case <-finished:
			return
		default:
		}
		baseLogger.Info("shutdown signal received")
		fmt.Fprintln(os.Stdout)
		_ = baseLogger.Sync()
		os.Exit(130)
	}()

	if err := menu.Run(ctx); err != nil {
		baseLogger.Error("menu stopped unexpectedly", zap.Error(err))
		_ = baseLogger.Sync()
		os.Exit(1)
	}
}
