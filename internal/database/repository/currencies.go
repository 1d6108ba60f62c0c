package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/jask/currencypicker/core"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// CurrencyRepo handles the currency catalog.
type CurrencyRepo struct {
	db DBTX
}

func NewCurrencyRepo(db DBTX) *CurrencyRepo {
	return &CurrencyRepo{db: db}
}

// CurrencyID derives the row id from the code, so re-importing a catalog
// updates rows in place.
func CurrencyID(code string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("currency:"+strings.ToUpper(strings.TrimSpace(code)))).String()
}

func (r *CurrencyRepo) Upsert(ctx context.Context, c core.Currency, sortOrder int) error {
	code := strings.ToUpper(strings.TrimSpace(c.Code))
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO currencies(id, code, symbol, name, sort_order)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 symbol=excluded.symbol,
	 name=excluded.name,
	 sort_order=excluded.sort_order,
	 updated_at=CURRENT_TIMESTAMP;
	`, CurrencyID(code), code, c.Symbol, c.Name, sortOrder)
	return err
}

func (r *CurrencyRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM currencies`)
	return err
}

func (r *CurrencyRepo) List(ctx context.Context) ([]CurrencyRow, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, code, symbol, name, sort_order, created_at, updated_at FROM currencies ORDER BY sort_order, code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []CurrencyRow
	for rows.Next() {
		var c CurrencyRow
		if err := rows.Scan(&c.ID, &c.Code, &c.Symbol, &c.Name, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Currencies lists the catalog as display values.
func (r *CurrencyRepo) Currencies(ctx context.Context) ([]core.Currency, error) {
	rows, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]core.Currency, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Currency())
	}
	return out, nil
}

func (r *CurrencyRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM currencies`).Scan(&n)
	return n, err
}
