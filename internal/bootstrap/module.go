package bootstrap

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"goyo/internal/bootstrap/config"
	"goyo/internal/bootstrap/database"
	"goyo/internal/bootstrap/logging"
	cacheinfra "goyo/internal/infrastructure/cache"
	"goyo/internal/infrastructure/notify"
	sqliterepo "goyo/internal/infrastructure/persistence/sqlite/repository"
	sqliteuow "goyo/internal/infrastructure/persistence/sqlite/uow"
	"goyo/internal/ports"
	"goyo/internal/usecase/wellbeing"
)

var Module = fx.Options(
	fx.Provide(provideConfig),
	fx.Provide(provideDatabase),
	fx.Provide(provideApp),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewWorkerRepository,
			fx.As(new(ports.WorkerRepository)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewEmotionRepository,
			fx.As(new(ports.EmotionRepository)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewAlertRepository,
			fx.As(new(ports.AlertRepository)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewCounselingRepository,
			fx.As(new(ports.CounselingRepository)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewReportRepository,
			fx.As(new(ports.ReportRepository)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliteuow.NewUnitOfWork,
			fx.As(new(ports.UnitOfWork)),
		),
	),
	fx.Provide(
		fx.Annotate(
			cacheinfra.NewSQLiteCache,
			fx.As(new(ports.Cache)),
		),
	),
	fx.Provide(provideNotifier),
	fx.Provide(providePolicy),
	fx.Provide(wellbeing.NewService),
)

type configParams struct {
	fx.In

	Ctx        context.Context
	ConfigFile string `name:"configFile"`
}

func provideConfig(p configParams) (config.Config, error) {
	ctx := logging.WithAttrs(p.Ctx, slog.String("component", "bootstrap.fx"))
	return config.Load(ctx, p.ConfigFile)
}

func provideDatabase(lc fx.Lifecycle, ctx context.Context, cfg config.Config) (*gorm.DB, error) {
	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.fx"))

	db, err := database.Open(logCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})

	return db, nil
}

func provideApp(cfg config.Config, db *gorm.DB) *App {
	return &App{
		Config: cfg,
		DB:     db,
	}
}

func provideNotifier(lc fx.Lifecycle, ctx context.Context, cfg config.Config) (ports.AlertNotifier, error) {
	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.fx"))

	if cfg.NATS.URL == "" {
		logging.Info(logCtx, "alert publishing disabled, no nats url configured")
		return notify.NewNoopNotifier(), nil
	}

	notifier, err := notify.NewNATSNotifier(logCtx, cfg.NATS.URL, cfg.NATS.Subject)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			notifier.Close()
			return nil
		},
	})

	return notifier, nil
}

func providePolicy(ctx context.Context, cfg config.Config) (wellbeing.Policy, error) {
	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.fx"))
	return wellbeing.LoadPolicy(logCtx, cfg.Policy.File)
}
