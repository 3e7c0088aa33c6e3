// Package postgres opens the GORM connection the order repository runs on.
package postgres

import (
	"fmt"
	"time"

	"sendsafe/internal/adapters/out/postgres/orderrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds a PostgreSQL connection string from its parts.
func DSN(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode,
	)
}

// Open connects to PostgreSQL, checks the connection and migrates the schema.
// The pool is closed again when either step fails.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Warn),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get postgres handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err = sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("verify postgres connection: %w", err)
	}

	if err = db.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate orders table: %w", err)
	}
	return db, nil
}
