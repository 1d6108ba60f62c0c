package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/currencypicker/core"
	"github.com/jask/currencypicker/internal/database/repository"
)

func openTestDB(t *testing.T) *repository.CurrencyRepo {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, RunMigrations(db))
	return repository.NewCurrencyRepo(db)
}

func TestRunMigrationsIsRepeatable(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(db))
	require.NoError(t, RunMigrations(db), "second run should be a no-op")

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM currencies`).Scan(&n))
	require.Equal(t, 0, n)
}

func TestSeedDefaultsIdempotent(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	db, err := Open(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, RunMigrations(db))

	defaults := []core.Currency{
		{Code: "USD", Symbol: "$", Name: "US Dollar"},
		{Code: "EUR", Symbol: "€", Name: "Euro"},
	}
	require.NoError(t, SeedDefaults(ctx, db, defaults))
	require.NoError(t, SeedDefaults(ctx, db, []core.Currency{{Code: "XXX", Symbol: "X", Name: "Other"}}))

	list, err := repository.NewCurrencyRepo(db).Currencies(ctx)
	require.NoError(t, err)
	require.Equal(t, defaults, list, "seed only fills an empty catalog")
}

func TestReplaceCatalogKeepsListOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := Open(filepath.Join(t.TempDir(), "replace.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, RunMigrations(db))
	require.NoError(t, SeedDefaults(ctx, db, []core.Currency{{Code: "USD", Symbol: "$", Name: "US Dollar"}}))

	next := []core.Currency{
		{Code: "ZAR", Symbol: "R", Name: "South African Rand"},
		{Code: "AED", Symbol: "د.إ", Name: "UAE Dirham"},
		{Code: "MAD", Symbol: "DH", Name: "Moroccan Dirham"},
	}
	require.NoError(t, ReplaceCatalog(ctx, db, next))

	repo := repository.NewCurrencyRepo(db)
	list, err := repo.Currencies(ctx)
	require.NoError(t, err)
	require.Equal(t, next, list)

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, repository.CurrencyID("zar"), rows[0].ID)
	require.False(t, rows[0].CreatedAt.IsZero())
}

func TestReplaceCatalogCanceledLeavesStore(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "cancel.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, RunMigrations(db))
	require.NoError(t, SeedDefaults(context.Background(), db, []core.Currency{{Code: "USD", Symbol: "$", Name: "US Dollar"}}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = ReplaceCatalog(ctx, db, []core.Currency{{Code: "EUR", Symbol: "€", Name: "Euro"}})
	require.Error(t, err)

	list, err := repository.NewCurrencyRepo(db).Currencies(context.Background())
	require.NoError(t, err)
	require.Equal(t, []core.Currency{{Code: "USD", Symbol: "$", Name: "US Dollar"}}, list)
}

func TestCurrencyIDIsDeterministic(t *testing.T) {
	require.Equal(t, repository.CurrencyID("eur"), repository.CurrencyID(" EUR "))
	require.NotEqual(t, repository.CurrencyID("EUR"), repository.CurrencyID("USD"))
}

func TestUpsertUpdatesInPlace(t *testing.T) {
	ctx := context.Background()
	repo := openTestDB(t)

	require.NoError(t, repo.Upsert(ctx, core.Currency{Code: "usd", Symbol: "$", Name: "Dollar"}, 3))
	require.NoError(t, repo.Upsert(ctx, core.Currency{Code: "USD", Symbol: "US$", Name: "US Dollar"}, 1))

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "USD", rows[0].Code)
	require.Equal(t, "US$", rows[0].Symbol)
	require.Equal(t, 1, rows[0].SortOrder)
}
