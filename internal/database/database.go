package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// modernc.org/sqlite registers itself under this name.
const sqliteDriverName = "sqlite"

// Manager handles database operations
type Manager struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewManager opens the configured database and verifies it is reachable.
func NewManager(cfg *config.Config) (*Manager, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverSQLite:
		dialector = sqlite.New(sqlite.Config{DriverName: sqliteDriverName, DSN: sqliteDSN(cfg.SQLitePath)})
	default:
		pgxCfg, err := pgx.ParseConfig(cfg.PostgresURL())
		if err != nil {
			return nil, fmt.Errorf("failed to parse postgres config: %w", err)
		}
		// Simple protocol keeps transaction-mode poolers (PgBouncer, Supavisor) working.
		pgxCfg.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
		dialector = postgres.New(postgres.Config{Conn: stdlib.OpenDB(*pgxCfg)})
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	if cfg.DBDriver == config.DriverSQLite {
		// A single writer avoids SQLITE_BUSY under concurrent requests.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	return &Manager{db: db, cfg: cfg}, nil
}

func sqliteDSN(path string) string {
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
}

// NewMigrator builds a migrate instance over the embedded migrations for the configured driver.
// The caller owns the returned instance and must Close it.
func NewMigrator(cfg *config.Config) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	if cfg.DBDriver != config.DriverSQLite {
		mig, err := migrate.NewWithSourceInstance("iofs", src, cfg.PostgresURL())
		if err != nil {
			return nil, fmt.Errorf("failed to create migrate instance: %w", err)
		}
		return mig, nil
	}

	// Separate connection: closing the migrate instance closes it.
	migrateDB, err := sql.Open(sqliteDriverName, sqliteDSN(cfg.SQLitePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open migration database: %w", err)
	}
	driver, err := migratesqlite.WithInstance(migrateDB, &migratesqlite.Config{})
	if err != nil {
		_ = migrateDB.Close()
		return nil, fmt.Errorf("failed to create sqlite migration driver: %w", err)
	}
	mig, err := migrate.NewWithInstance("iofs", src, config.DriverSQLite, driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return mig, nil
}

// RunMigrations applies pending SQL migrations.
func (m *Manager) RunMigrations() error {
	logger.Get().Info("Running database migrations...")

	mig, err := NewMigrator(m.cfg)
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close releases the connection pool.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
