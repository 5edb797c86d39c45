package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"healthtrack/config"
	"healthtrack/internal/domain/lifecycle"
	"healthtrack/internal/errors"
	"healthtrack/internal/infra/persistence/migrations"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	pingRetryInterval     = 500 * time.Millisecond
	poolSampleInterval    = 5 * time.Second
	poolWaitWarnThreshold = 50 * time.Millisecond
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// connection owns the pooled handle behind the gorm session and its background sampler.
type connection struct {
	sqlDB       *sql.DB
	logger      *slog.Logger
	autoMigrate bool
	stopSampler context.CancelFunc
}

// New opens the primary plus any configured read replicas. On start it waits
// for the database to answer and applies pending migrations when enabled.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open health database")
	}

	// Multi-step writes go through TransactionManager.Execute, so the
	// per-statement implicit transaction is only overhead.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "unwrap sql.DB from gorm")
	}

	conn := &connection{
		sqlDB:       sqlDB,
		logger:      params.Logger,
		autoMigrate: params.Config.Migration.AutoMigrate,
	}
	params.Append(fx.Hook{
		OnStart: conn.start,
		OnStop:  conn.stop,
	})

	return db, nil
}

func (c *connection) start(startCtx context.Context) error {
	ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := c.waitReady(ctx); err != nil {
		return err
	}

	if c.autoMigrate {
		if err := migrations.Up(ctx, c.sqlDB, c.logger); err != nil {
			return err
		}
	}

	samplerCtx, stop := context.WithCancel(context.Background())
	c.stopSampler = stop
	go newPoolSampler(c.sqlDB, c.logger).run(samplerCtx, poolSampleInterval)

	return nil
}

// waitReady pings until the database answers or ctx expires.
func (c *connection) waitReady(ctx context.Context) error {
	ticker := time.NewTicker(pingRetryInterval)
	defer ticker.Stop()

	attempts := 0
	for {
		attempts++
		err := c.sqlDB.PingContext(ctx)
		if err == nil {
			if attempts > 1 {
				c.logger.Info("Database reachable", slog.Int("attempts", attempts))
			}

			return nil
		}

		select {
		case <-ctx.Done():
			return errors.Wrapf(err, "database not reachable after %d attempts", attempts)
		case <-ticker.C:
		}
	}
}

func (c *connection) stop(_ context.Context) error {
	if c.stopSampler != nil {
		c.stopSampler()
	}

	return errors.Wrap(c.sqlDB.Close(), "close health database")
}

// poolSampler reports connection-pool contention between two samples.
type poolSampler struct {
	stats  func() sql.DBStats
	logger *slog.Logger
	prev   sql.DBStats
}

func newPoolSampler(sqlDB *sql.DB, logger *slog.Logger) *poolSampler {
	return &poolSampler{stats: sqlDB.Stats, logger: logger, prev: sqlDB.Stats()}
}

func (p *poolSampler) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.sample(ctx)
		}
	}
}

func (p *poolSampler) sample(ctx context.Context) {
	cur := p.stats()
	defer func() { p.prev = cur }()

	waits := cur.WaitCount - p.prev.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - p.prev.WaitDuration

	level := slog.LevelDebug
	if waited >= poolWaitWarnThreshold {
		level = slog.LevelWarn
	}
	p.logger.LogAttrs(ctx, level, "Database pool contention",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	)
}
