package app

import (
	"context"
	"io"
	"log/slog"

	"dreaming-migrate/internal/adapter/dreaming"
	"dreaming-migrate/internal/config"
	"dreaming-migrate/internal/usecase"
)

// App wires adapters and the migration use case.
type App struct {
	log *slog.Logger
	uc  *usecase.MigrateUseCase
}

// New builds one client per account and the use case around them. Both
// clients talk to the same base URL; only the bearer token differs.
func New(log *slog.Logger, cfg config.Config, out io.Writer) *App {
	source := dreaming.NewClient(cfg.BaseURL, cfg.SourceToken, log)
	target := dreaming.NewClient(cfg.BaseURL, cfg.TargetToken, log)

	uc := &usecase.MigrateUseCase{
		Log:            log,
		Source:         source,
		Sink:           target,
		Out:            out,
		SourceLanguage: cfg.SourceLanguage,
		TargetLanguage: cfg.TargetLanguage,
		Execute:        cfg.Execute,
	}

	return &App{log: log, uc: uc}
}

// Run performs a single migration run.
func (a *App) Run(ctx context.Context) (usecase.Report, error) {
	return a.uc.Run(ctx)
}
