package infra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Provider owns the connection pool and hands out scoped sessions.
type Provider struct {
	db          *gorm.DB
	sqlDB       *sql.DB
	poolTimeout time.Duration
	log         *zap.Logger
}

// Open builds the pool described by cfg. It never fails on an unreachable
// database: the initial probe is logged and query-time errors surface later.
func Open(cfg Config, log *zap.Logger) (*Provider, error) {
	dialect, dsn, err := cfg.Dialect()
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	switch dialect {
	case DialectPostgres:
		dialector = postgres.Open(dsn)
	case DialectSQLite:
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               NewGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", dialect, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.PoolSize)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns())
	sqlDB.SetConnMaxLifetime(cfg.PoolRecycle)

	p := &Provider{
		db:          db,
		sqlDB:       sqlDB,
		poolTimeout: cfg.PoolTimeout,
		log:         log,
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PoolTimeout)
	defer cancel()
	if err := p.Ping(ctx); err != nil {
		log.Error("failed to connect to database", zap.String("dialect", dialect), zap.Error(err))
	} else {
		log.Info("database connection successful", zap.String("dialect", dialect))
	}

	return p, nil
}

// WithSession checks out one connection, runs fn on a handle pinned to it and
// always returns the connection to the pool. Checkout waits at most the
// configured pool timeout; fn itself runs under ctx only.
func (p *Provider) WithSession(ctx context.Context, fn func(tx *gorm.DB) error) error {
	acquireCtx, cancel := context.WithTimeout(ctx, p.poolTimeout)
	defer cancel()

	err := p.db.WithContext(acquireCtx).Connection(func(conn *gorm.DB) error {
		return fn(conn.WithContext(ctx))
	})
	if err != nil {
		return fmt.Errorf("database session: %w", err)
	}
	return nil
}

func (p *Provider) Ping(ctx context.Context) error {
	return p.sqlDB.PingContext(ctx)
}

// DB exposes the pooled handle for bootstrap work such as migrations.
func (p *Provider) DB() *gorm.DB {
	return p.db
}

func (p *Provider) Stats() sql.DBStats {
	return p.sqlDB.Stats()
}

func (p *Provider) Close() error {
	if err := p.sqlDB.Close(); err != nil {
		p.log.Error("error closing database connection", zap.Error(err))
		return err
	}
	p.log.Info("database connection closed")
	return nil
}
