package db

import (
	"context"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 25
	defaultConnMaxLifetime = 5 * time.Minute
	pingTimeout            = 5 * time.Second
	slowQueryThreshold     = 200 * time.Millisecond
)

type Options struct {
	DatabaseURL     string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Connect opens a gorm handle on top of the lib/pq driver and pings it. The
// handle is meant to live for the whole process; release it with Close.
func Connect(opts Options, logger *logrus.Logger) (*gorm.DB, error) {
	if opts.DatabaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	gormDB, err := Open(postgres.New(postgres.Config{
		DriverName: "postgres",
		DSN:        opts.DatabaseURL,
	}), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(orDefault(opts.MaxOpenConns, defaultMaxOpenConns))
	sqlDB.SetMaxIdleConns(orDefault(opts.MaxIdleConns, defaultMaxIdleConns))
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	} else {
		sqlDB.SetConnMaxLifetime(defaultConnMaxLifetime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err = sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return gormDB, nil
}

// Open builds a gorm handle for any dialector, with gorm's logging routed
// through logger.
func Open(dialector gorm.Dialector, logger *logrus.Logger) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(logger.WithField("component", "gorm"), gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
}

func Close(gormDB *gorm.DB) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
