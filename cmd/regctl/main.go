// Command regctl prints the registrations stored by the portal, newest first.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"event-portal/internal/logger"
	"event-portal/internal/report"
	"event-portal/internal/storage"
	"event-portal/internal/view"
)

func main() {
	dsn := flag.String("dsn", "portal.db", "SQLite DSN of the portal store")
	email := flag.String("email", "", "only show registrations for this email (case-insensitive)")
	flag.Parse()

	slog.SetDefault(logger.New(slog.LevelInfo, logger.FormatText, os.Stderr))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := run(ctx, os.Stdout, *dsn, *email); err != nil {
		slog.Error("regctl failed", "error", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, dsn, email string) error {
	kv, err := storage.OpenSQLite(ctx, dsn)
	if err != nil {
		return fmt.Errorf("open store %s: %w", dsn, err)
	}
	defer kv.Close()

	regs, err := storage.NewRegistrationStore(kv).List(ctx)
	if err != nil {
		return fmt.Errorf("read registrations: %w", err)
	}

	if email != "" {
		regs = view.FilterByEmail(regs, email)
	}
	slices.Reverse(regs)

	return report.WriteRegistrations(w, regs)
}
