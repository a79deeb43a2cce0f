package app

import (
	"context"
	"fmt"
	"io"

	"github.com/jonboulle/clockwork"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/football-registry/internal/config"
	"github.com/riskibarqy/football-registry/internal/domain/storage"
	"github.com/riskibarqy/football-registry/internal/domain/validation"
	"github.com/riskibarqy/football-registry/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-registry/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-registry/internal/interfaces/console"
	"github.com/riskibarqy/football-registry/internal/platform/logging"
	"github.com/riskibarqy/football-registry/internal/usecase"
)

// App is a wired console session plus the resources it owns.
type App struct {
	Session *console.Session
	closers []func() error
}

// New opens the configured storage, seeds it when asked and builds the
// session reading in and writing out.
func New(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	a := &App{closers: []func() error{closeStore}}

	checker := validation.NewChecker(clockwork.NewRealClock(), validation.WithLocation(cfg.Location))
	svc := usecaseServices{
		teams:   usecase.NewTeamService(store, checker, logger),
		players: usecase.NewPlayerService(store, checker, logger),
		matches: usecase.NewMatchService(store, checker, logger),
	}

	if cfg.SeedDemoData {
		seedCtx, cancel := context.WithTimeout(ctx, cfg.OperationTimeout)
		err := seedDemoData(seedCtx, svc)
		cancel()
		if err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
		logger.Info("demo data seeded", "driver", cfg.StorageDriver)
	}

	services := console.Services{
		Teams:   svc.teams,
		Players: svc.players,
		Matches: svc.matches,
		Checker: checker,
	}

	a.Session = console.NewSession(in, out, services,
		console.WithRenderer(console.NewRenderer(cfg.OutputFormat)),
		console.WithOperationTimeout(cfg.OperationTimeout),
		console.WithLogger(logger),
	)

	return a, nil
}

// Close releases storage resources in reverse order of acquisition.
func (a *App) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}

func openStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (storage.Store, func() error, error) {
	if cfg.StorageDriver == config.StorageDriverMemory {
		logger.Info("storage ready", "driver", config.StorageDriverMemory)
		return memory.NewStore(), func() error { return nil }, nil
	}

	dbName := dbNameFromURL(cfg.DBURL)
	db, err := otelsqlx.Open("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithDBName(dbName),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.OperationTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping postgres: %w", err)
	}

	logger.Info("storage ready", "driver", config.StorageDriverPostgres, "db_name", dbName)
	return postgres.NewStore(db), db.Close, nil
}
