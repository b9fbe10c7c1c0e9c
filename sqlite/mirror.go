// Package sqlite mirrors a ledger into a SQLite database, so that it can
// be explored with plain SQL.
//
// The mirror is one way: the binary snapshot stays the reference and
// every write replaces the whole content of the database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/etnz/spend"

	_ "modernc.org/sqlite"
)

// DB is a SQLite database holding a copy of a ledger.
type DB struct {
	db *sql.DB
}

// Open opens or creates the database at dbPath and migrates its schema.
func Open(dbPath string) (*DB, error) {
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
	return &DB{db: db}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// Write replaces the content of the database with the ledger s, in a
// single transaction.
func (d *DB) Write(ctx context.Context, s *spend.Store) (err error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, stmt := range []string{"DELETE FROM expenses", "DELETE FROM categories", "DELETE FROM ledger"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clear mirror: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, "INSERT INTO ledger (id, next_id) VALUES (1, ?)", s.NextID()); err != nil {
		return fmt.Errorf("insert next id: %w", err)
	}
	for i, name := range s.Categories() {
		if _, err := tx.ExecContext(ctx, "INSERT INTO categories (position, name) VALUES (?, ?)", i, name); err != nil {
			return fmt.Errorf("insert category %q: %w", name, err)
		}
	}

	insert, err := tx.PrepareContext(ctx, `INSERT INTO expenses
		(id, position, date, date_key, amount, category, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare expense insert: %w", err)
	}
	defer insert.Close()

	for i, e := range s.Expenses() {
		var key sql.NullInt64
		if k, ok := spend.DateKey(e.Date); ok {
			key = sql.NullInt64{Int64: int64(k), Valid: true}
		}
		if _, err := insert.ExecContext(ctx, e.ID, i, e.Date, key, e.Amount, e.Category, e.Description); err != nil {
			return fmt.Errorf("insert expense %d: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit mirror: %w", err)
	}
	slog.DebugContext(ctx, "ledger mirrored", "expenses", s.Len(), "categories", len(s.Categories()))
	return nil
}

// Expenses reads the mirrored expenses back, in ledger order.
func (d *DB) Expenses(ctx context.Context) ([]spend.Expense, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT id, date, amount, category, description
		FROM expenses ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []spend.Expense
	for rows.Next() {
		var e spend.Expense
		if err := rows.Scan(&e.ID, &e.Date, &e.Amount, &e.Category, &e.Description); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// Total is the amount spent in a category.
type Total struct {
	Category string
	Amount   float64
	Count    int
}

// Totals returns the amount spent per category between two date keys,
// inclusive. Expenses without a readable date are left out.
func (d *DB) Totals(ctx context.Context, from, to int) ([]Total, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT category, SUM(amount), COUNT(*)
		FROM expenses
		WHERE date_key BETWEEN ? AND ?
		GROUP BY category
		ORDER BY MIN(position)`, from, to)
	if err != nil {
		return nil, fmt.Errorf("query totals: %w", err)
	}
	defer rows.Close()

	var totals []Total
	for rows.Next() {
		var t Total
		if err := rows.Scan(&t.Category, &t.Amount, &t.Count); err != nil {
			return nil, fmt.Errorf("scan total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
