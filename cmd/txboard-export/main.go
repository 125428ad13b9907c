package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"txboard/internal/backend"
	"txboard/internal/config"
	"txboard/internal/core"
	"txboard/internal/export"
)

func main() {
	_ = godotenv.Load()

	nameTerm := flag.String("name", "", "customer name filter term (case-insensitive substring)")
	amountTerm := flag.String("amount", "", "amount filter term (literal substring of the amount text)")
	txOut := flag.String("transactions", "transactions.csv", "output path for the transactions CSV")
	totalsOut := flag.String("totals", "totals.csv", "output path for the per-customer totals CSV")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	res, err := backend.NewFactory(logger).CreateSource(cfg)
	if err != nil {
		logger.Error("Failed to initialize dataset source", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	if res.Cleanup != nil {
		defer func() {
			if err := res.Cleanup(); err != nil {
				logger.Error("Source cleanup failed", "error", err)
			}
		}()
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.LoadTimeout)
	defer cancel()

	ds, err := res.Source.Load(ctx)
	if err != nil {
		logger.Error("Dataset load failed", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}

	dir := core.NewDirectory(ds.Customers)
	q := core.Query{NameTerm: *nameTerm, AmountTerm: *amountTerm}
	visible := core.Filter(ds, dir, q)
	entries := core.Aggregate(visible, dir)

	if err := export.WriteTransactions(*txOut, visible, dir); err != nil {
		logger.Error("Failed to write transactions CSV", "error", err, "path", *txOut)
		os.Exit(1)
	}
	if err := export.WriteTotals(*totalsOut, entries); err != nil {
		logger.Error("Failed to write totals CSV", "error", err, "path", *totalsOut)
		os.Exit(1)
	}

	logger.Info("Export complete",
		"transactions", len(visible),
		"customers", len(entries),
		"transactions_csv", *txOut,
		"totals_csv", *totalsOut)
}
