// Package catalog reads and writes currency catalogs in TOML.
//
// A catalog file is a list of [[currency]] tables:
//
//	[[currency]]
//	code = "EUR"
//	symbol = "€"
//	name = "Euro"
package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jask/currencypicker/core"
)

var (
	ErrEmptyCatalog  = errors.New("catalog has no currencies")
	ErrMissingCode   = errors.New("currency code is required")
	ErrDuplicateCode = errors.New("duplicate currency code")
)

type entry struct {
	Code   string `toml:"code"`
	Symbol string `toml:"symbol"`
	Name   string `toml:"name"`
}

type file struct {
	Currency []entry `toml:"currency"`
}

// Load reads and validates the catalog at path.
func Load(path string) ([]core.Currency, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	list, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// File is a catalog read from disk on every call, so edits show up on reload.
type File string

func (f File) Currencies(context.Context) ([]core.Currency, error) {
	return Load(string(f))
}

// Parse decodes TOML catalog bytes. Codes are upper-cased; a blank symbol or
// name falls back to the code. File order is kept.
func Parse(data []byte) ([]core.Currency, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Currency) == 0 {
		return nil, ErrEmptyCatalog
	}
	seen := make(map[string]int, len(f.Currency))
	out := make([]core.Currency, 0, len(f.Currency))
	for i, e := range f.Currency {
		code := strings.ToUpper(strings.TrimSpace(e.Code))
		if code == "" {
			return nil, fmt.Errorf("currency[%d]: %w", i, ErrMissingCode)
		}
		if prev, dup := seen[code]; dup {
			return nil, fmt.Errorf("currency[%d] %q (first at currency[%d]): %w", i, code, prev, ErrDuplicateCode)
		}
		seen[code] = i
		symbol := strings.TrimSpace(e.Symbol)
		if symbol == "" {
			symbol = code
		}
		name := strings.TrimSpace(e.Name)
		if name == "" {
			name = code
		}
		out = append(out, core.Currency{Code: code, Symbol: symbol, Name: name})
	}
	return out, nil
}

// Encode writes list as a catalog file.
func Encode(w io.Writer, list []core.Currency) error {
	f := file{Currency: make([]entry, 0, len(list))}
	for _, c := range list {
		f.Currency = append(f.Currency, entry{Code: c.Code, Symbol: c.Symbol, Name: c.Name})
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(f); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
