package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CURRENCYPICKER_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "USD", cfg.UI.DefaultCurrency)
	require.Equal(t, DefaultMaxRows, cfg.UI.MaxRows)
	require.Equal(t, "c", cfg.UI.OpenKey)
	require.Equal(t, "info", cfg.Log.Level)
	require.Empty(t, cfg.Catalog.Path)
	require.Equal(t, "currencypicker.db", filepath.Base(cfg.Database.Path))
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := `
[catalog]
path = "/tmp/currencies.toml"

[ui]
default_currency = " eur "
max_rows = 200
open_key = "X"

[log]
level = "DEBUG"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("CURRENCYPICKER_UI_DEFAULT_CURRENCY", "gbp")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/currencies.toml", cfg.Catalog.Path)
	require.Equal(t, "GBP", cfg.UI.DefaultCurrency, "env beats file")
	require.Equal(t, MaxMaxRows, cfg.UI.MaxRows)
	require.Equal(t, "x", cfg.UI.OpenKey)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want UIConfig
	}{
		{
			name: "zero values fall back",
			in:   Config{},
			want: UIConfig{DefaultCurrency: "USD", MaxRows: DefaultMaxRows, OpenKey: "c"},
		},
		{
			name: "rows clamp low",
			in:   Config{UI: UIConfig{DefaultCurrency: "jpy", MaxRows: 1, OpenKey: "k"}},
			want: UIConfig{DefaultCurrency: "JPY", MaxRows: MinMaxRows, OpenKey: "k"},
		},
		{
			name: "multi-char open key rejected",
			in:   Config{UI: UIConfig{MaxRows: 12, OpenKey: "ctrl+x"}},
			want: UIConfig{DefaultCurrency: "USD", MaxRows: 12, OpenKey: "c"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Normalize(tt.in).UI)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	in := Normalize(Config{
		Database: DatabaseConfig{Path: "/tmp/x.db"},
		UI:       UIConfig{DefaultCurrency: "AUD", MaxRows: 7, OpenKey: "p"},
		Log:      LogConfig{Path: "/tmp/x.log", Level: "warn"},
	})
	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, in, out)
}
