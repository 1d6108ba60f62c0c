package repository

import (
	"time"

	"github.com/jask/currencypicker/core"
)

// CurrencyRow represents a currencies row.
type CurrencyRow struct {
	ID        string
	Code      string
	Symbol    string
	Name      string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Currency drops the storage columns.
func (r CurrencyRow) Currency() core.Currency {
	return core.Currency{Code: r.Code, Symbol: r.Symbol, Name: r.Name}
}
