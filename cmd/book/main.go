// Command book runs a parcel booking in the terminal and opens the
// dispatcher chat with the finished request.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"sendsafe/cmd"
	"sendsafe/internal/adapters/out/handoff"
	"sendsafe/internal/core/application/usecases/queries"

	"github.com/labstack/gommon/log"
)

func main() {
	os.Exit(run())
}

// run does the work of main and returns the exit code, so deferred cleanup
// finishes before the process exits.
func run() int {
	history := flag.Bool("history", false, "print the order history and exit")
	envFile := flag.String("env", ".env", "environment file to load")
	flag.Parse()

	configs, err := cmd.LoadConfig(*envFile)
	if err != nil {
		log.Errorf("Error loading configuration: %v", err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, configs, logger)
	if err != nil {
		log.Errorf("Error opening order store: %v", err)
		return 1
	}
	defer app.Close()

	if *history {
		query, queryErr := queries.NewListOrdersQuery(time.Now())
		if queryErr != nil {
			return exitCode(logger, queryErr)
		}
		views, queryErr := app.CreateListOrdersQueryHandler().Handle(ctx, query)
		if queryErr != nil {
			return exitCode(logger, queryErr)
		}
		printHistory(os.Stdout, views)
		return 0
	}

	handler := app.CreateConfirmBookingCommandHandler(handoff.NewSystemOpener())
	s := newSession(os.Stdin, os.Stdout, app.Formatter(), &handler)
	return exitCode(logger, s.run(ctx))
}

// exitCode maps the outcome of a run to a process exit code. An aborted
// booking is a normal exit.
func exitCode(logger *slog.Logger, err error) int {
	if err == nil || errors.Is(err, errAborted) {
		return 0
	}
	logger.Error("Booking failed", "error", err)
	return 1
}
