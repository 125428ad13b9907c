package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"txboard/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository persists the customer directory and the transaction
// ledger. It doubles as a dataset source: Load returns a full snapshot
// with transactions in their original ledger order.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Load implements source.Source. Both tables are read concurrently; the
// snapshot is only returned when both reads succeed.
func (r *SQLiteRepository) Load(ctx context.Context) (core.Dataset, error) {
	var (
		customers    []core.Customer
		transactions []core.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customers, err = r.listCustomers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		transactions, err = r.listTransactions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return core.Dataset{}, err
	}

	slog.InfoContext(ctx, "Dataset loaded from SQLite",
		"customers", len(customers),
		"transactions", len(transactions))

	return core.Dataset{Customers: customers, Transactions: transactions}, nil
}

func (r *SQLiteRepository) listCustomers(ctx context.Context) ([]core.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM customers ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var out []core.Customer
	for rows.Next() {
		var c core.Customer
		var id string
		if err := rows.Scan(&id, &c.Name); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		c.ID = core.ID(id)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) listTransactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, customer_id, date, amount FROM transactions ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var (
			t              core.Transaction
			id, customerID string
			amount         string
		)
		if err := rows.Scan(&id, &customerID, &t.Date, &amount); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		dec, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parse amount %q for transaction %s: %w", amount, id, err)
		}
		t.ID = core.ID(id)
		t.CustomerID = core.ID(customerID)
		t.Amount = dec
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return out, nil
}

// Replace swaps the stored dataset for a new one inside a single
// transaction. Ledger order is preserved through the position column.
func (r *SQLiteRepository) Replace(ctx context.Context, ds core.Dataset) error {
	if err := ds.Validate(); err != nil {
		return fmt.Errorf("validate dataset: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM customers`); err != nil {
		return fmt.Errorf("clear customers: %w", err)
	}

	for _, c := range ds.Customers {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO customers (id, name) VALUES (?, ?)`,
			string(c.ID), c.Name); err != nil {
			return fmt.Errorf("insert customer %s: %w", c.ID, err)
		}
	}
	for i, t := range ds.Transactions {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO transactions (id, customer_id, date, amount, position) VALUES (?, ?, ?, ?, ?)`,
			string(t.ID), string(t.CustomerID), t.Date, t.Amount.String(), i); err != nil {
			return fmt.Errorf("insert transaction %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit dataset: %w", err)
	}

	slog.InfoContext(ctx, "Dataset stored in SQLite",
		"customers", len(ds.Customers),
		"transactions", len(ds.Transactions))
	return nil
}
