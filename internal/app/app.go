package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/nyr/internal/config"
	"github.com/templui/nyr/internal/db"
	"github.com/templui/nyr/internal/repository"
	"github.com/templui/nyr/internal/service"
	"github.com/templui/nyr/internal/ui"
)

type App struct {
	Cfg             *config.Config
	DB              *sqlx.DB
	TargetService   *service.TargetService
	RecordService   *service.RecordService
	ProgressService *service.ProgressService
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// Initialize database and run migrations
	database, err := db.Open(ctx, cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Repositories
	targetRepository := repository.NewTargetRepository(database)
	recordRepository := repository.NewProgressRecordRepository(database)

	// Services
	targetService := service.NewTargetService(targetRepository)
	recordService := service.NewRecordService(recordRepository, targetRepository)
	progressService := service.NewProgressService(targetRepository, recordRepository)

	return &App{
		Cfg:             cfg,
		DB:              database,
		TargetService:   targetService,
		RecordService:   recordService,
		ProgressService: progressService,
	}, nil
}

// UIOptions maps configuration onto render loop options.
func (a *App) UIOptions() ui.Options {
	return ui.Options{
		Title:         a.Cfg.AppTitle,
		Step:          a.Cfg.AnimationStep,
		AnimationTick: a.Cfg.AnimationTick,
		ClockTick:     a.Cfg.ClockTick,
		BarWidth:      a.Cfg.BarWidth,
		ExitOnDone:    true,
	}
}

func (a *App) Close() error {
	return db.Close(a.DB)
}
