package database

import (
	"context"
	"database/sql"

	"github.com/jask/currencypicker/core"
	"github.com/jask/currencypicker/internal/database/repository"
)

// SeedDefaults fills an empty catalog with defaults.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB, defaults []core.Currency) error {
	n, err := repository.NewCurrencyRepo(db).Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		repo := repository.NewCurrencyRepo(tx)
		for idx, c := range defaults {
			if err := repo.Upsert(ctx, c, idx); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceCatalog swaps the stored catalog for list in one transaction. Sort
// order follows list order.
func ReplaceCatalog(ctx context.Context, db *sql.DB, list []core.Currency) error {
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		repo := repository.NewCurrencyRepo(tx)
		if err := repo.DeleteAll(ctx); err != nil {
			return err
		}
		for idx, c := range list {
			if err := repo.Upsert(ctx, c, idx); err != nil {
				return err
			}
		}
		return nil
	})
}
