package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"sendsafe/internal/adapters/out/kv"
	"sendsafe/internal/adapters/out/kv/orderrepo"
	"sendsafe/internal/adapters/out/postgres"
	gormorderrepo "sendsafe/internal/adapters/out/postgres/orderrepo"
	"sendsafe/internal/core/application/usecases/commands"
	"sendsafe/internal/core/application/usecases/queries"
	"sendsafe/internal/core/domain/services"
	"sendsafe/internal/core/ports"
)

type CompositionRoot struct {
	logger    *slog.Logger
	formatter services.SummaryFormatter
	repo      ports.OrderRepository
	pending   *commands.PendingOrders
	closers   []io.Closer
}

// NewCompositionRoot opens the configured order store and wires the shared services.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		logger:    logger,
		formatter: services.NewSummaryFormatter(cfg.Tariffs(), cfg.HandOffTarget()),
		pending:   commands.NewPendingOrders(),
	}

	repo, err := root.openOrderRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}
	root.repo = repo
	return root, nil
}

func (c *CompositionRoot) openOrderRepository(ctx context.Context, cfg Config) (ports.OrderRepository, error) {
	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		db, err := postgres.Open(postgres.DSN(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSslMode))
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, sqlDB)
		return gormorderrepo.NewGormOrderRepository(db, c.logger), nil

	case StoreDriverSQLite:
		store, err := kv.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, store)
		return orderrepo.NewJSONOrderRepository(store, c.logger), nil

	case StoreDriverRedis:
		store, err := kv.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, store)
		return orderrepo.NewJSONOrderRepository(store, c.logger), nil

	case StoreDriverMemory:
		return orderrepo.NewJSONOrderRepository(kv.NewMemoryStore(), c.logger), nil
	}
	return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
}

// Close releases the store connections.
func (c *CompositionRoot) Close() error {
	var failures []error
	for _, closer := range c.closers {
		failures = append(failures, closer.Close())
	}
	return errors.Join(failures...)
}

func (c *CompositionRoot) Formatter() services.SummaryFormatter {
	return c.formatter
}

func (c *CompositionRoot) Clock() commands.Clock {
	return time.Now
}

func (c *CompositionRoot) CreateConfirmBookingCommandHandler(channel ports.HandOffChannel) commands.ConfirmBookingCommandHandler {
	return commands.NewConfirmBookingCommandHandler(c.formatter, channel, c.repo, c.pending, c.Clock(), c.logger)
}

func (c *CompositionRoot) CreateFlushPendingOrdersCommandHandler() *commands.FlushPendingOrdersCommandHandler {
	h := commands.NewFlushPendingOrdersCommandHandler(c.repo, c.pending)
	return &h
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.repo, c.formatter, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.repo, c.formatter)
}
