package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fridgetofork/pantry-admin/internal/infrastructure/config"
	"github.com/fridgetofork/pantry-admin/internal/infrastructure/persistence/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is the open gorm handle shared by every repository
type Database struct {
	DB  *gorm.DB
	sql *sql.DB
}

// Option changes how Open configures gorm
type Option func(*gorm.Config)

// WithLogger routes gorm's output to l. Without it gorm is silent.
func WithLogger(l logger.Interface) Option {
	return func(c *gorm.Config) { c.Logger = l }
}

// Open connects with the configured driver, sizes the pool and pings. A
// sqlite database with auto_migrate set gets its tables created here.
func Open(cfg *config.DatabaseConfig, opts ...Option) (*Database, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres, "":
		dialector = postgres.Open(cfg.DSN())
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	gormCfg := &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		PrepareStmt:            cfg.Driver != config.DriverSQLite,
	}
	for _, opt := range opts {
		opt(gormCfg)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	pool, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	pool.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)

	d := &Database{DB: db, sql: pool}
	if err := d.PingContext(context.Background()); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.Driver == config.DriverSQLite && cfg.AutoMigrate {
		if err := d.AutoMigrate(); err != nil {
			_ = pool.Close()
			return nil, err
		}
	}
	return d, nil
}

// AutoMigrate creates or alters the tables of every model. Postgres
// deployments run migrations/ instead.
func (d *Database) AutoMigrate() error {
	if err := d.DB.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to auto-migrate schema: %w", err)
	}
	return nil
}

// PingContext is the health probe of the database
func (d *Database) PingContext(ctx context.Context) error {
	return d.sql.PingContext(ctx)
}

// Stats reports the connection pool counters
func (d *Database) Stats() sql.DBStats {
	return d.sql.Stats()
}

// Close releases the pool
func (d *Database) Close() error {
	return d.sql.Close()
}
