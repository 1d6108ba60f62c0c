// Package cli wires config, logging and the sqlite store behind cobra
// commands.
package cli

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jask/currencypicker/core"
	"github.com/jask/currencypicker/internal/catalog"
	"github.com/jask/currencypicker/internal/config"
	"github.com/jask/currencypicker/internal/database"
	"github.com/jask/currencypicker/internal/database/repository"
	"github.com/jask/currencypicker/internal/logging"
	"github.com/jask/currencypicker/internal/tui"
)

// Version is set at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// NewRootCommand builds the command tree. The bare command runs the TUI.
func NewRootCommand() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:   "currencypicker",
		Short: "Pick a currency from a searchable list",
		Long: `currencypicker shows the active currency and a searchable picker.

Configuration is read from --config, then $CURRENCYPICKER_CONFIG, then
<user config dir>/currencypicker/config.toml. Any key can be overridden
with a CURRENCYPICKER_ prefixed env var, e.g. CURRENCYPICKER_UI_MAX_ROWS.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := setup(cmd.Context(), cfgPath)
			if err != nil {
				return err
			}
			defer rt.Close()
			return runTUI(cmd.Context(), rt)
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (TOML)")

	root.AddCommand(
		newListCommand(&cfgPath),
		newImportCommand(&cfgPath),
		newExportCommand(&cfgPath),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command against os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func newListCommand(cfgPath *string) *cobra.Command {
	var (
		query  string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the catalog, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := setup(cmd.Context(), *cfgPath)
			if err != nil {
				return err
			}
			defer rt.Close()

			list, err := rt.Source().Currencies(cmd.Context())
			if err != nil {
				return fmt.Errorf("load currencies: %w", err)
			}
			filtered := core.FilterCurrencies(list, query)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), filtered)
			}
			writeTable(cmd.OutOrStdout(), filtered, rt.cfg.UI.DefaultCurrency)
			if len(filtered) == 0 {
				msg := "No currencies match"
				if s, ok := core.SuggestCode(list, query); ok {
					msg += fmt.Sprintf(", did you mean %s?", s.Code)
				}
				fmt.Fprintln(cmd.OutOrStdout(), msg)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "filter by code or name")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newImportCommand(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the stored catalog with a TOML catalog file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := catalog.Load(args[0])
			if err != nil {
				return err
			}
			rt, err := setup(cmd.Context(), *cfgPath)
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := database.ReplaceCatalog(cmd.Context(), rt.db, list); err != nil {
				return fmt.Errorf("import catalog: %w", err)
			}
			rt.log.Info().Str("file", args[0]).Int("count", len(list)).Msg("catalog imported")
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d currencies\n", len(list))
			if rt.cfg.Catalog.Path != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "note: catalog.path is set, so the picker reads %s instead of the store\n", rt.cfg.Catalog.Path)
			}
			return nil
		},
	}
}

func newExportCommand(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export [FILE]",
		Short: "Write the active catalog as TOML (stdout when FILE is omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd.Context(), *cfgPath)
			if err != nil {
				return err
			}
			defer rt.Close()

			list, err := rt.Source().Currencies(cmd.Context())
			if err != nil {
				return fmt.Errorf("load currencies: %w", err)
			}
			if len(args) == 0 {
				return catalog.Encode(cmd.OutOrStdout(), list)
			}
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create %s: %w", args[0], err)
			}
			if err := catalog.Encode(f, list); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "currencypicker %s\n", Version)
		},
	}
}

func runTUI(ctx context.Context, rt *env) error {
	rt.log.Info().Str("default", rt.cfg.UI.DefaultCurrency).Msg("starting")
	p := tea.NewProgram(tui.New(ctx, rt.cfg, rt.Source(), rt.log), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// env is everything a command needs after startup.
type env struct {
	cfg    config.Config
	log    zerolog.Logger
	closer io.Closer
	db     *sql.DB
}

func setup(ctx context.Context, cfgPath string) (*env, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	rt := &env{cfg: cfg, log: logger, closer: closer}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		rt.Close()
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("open db: %w", err)
	}
	rt.db = db
	if err := database.RunMigrations(db); err != nil {
		rt.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := database.SeedDefaults(ctx, db, catalog.Builtin()); err != nil {
		rt.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}
	return rt, nil
}

// Source is the TOML catalog when catalog.path is set, else the store.
func (rt *env) Source() tui.Catalog {
	if rt.cfg.Catalog.Path != "" {
		return catalog.File(rt.cfg.Catalog.Path)
	}
	return repository.NewCurrencyRepo(rt.db)
}

func (rt *env) Close() {
	if rt.db != nil {
		_ = rt.db.Close()
	}
	if rt.closer != nil {
		_ = rt.closer.Close()
	}
}

type currencyJSON struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

func writeJSON(w io.Writer, list []core.Currency) error {
	out := make([]currencyJSON, 0, len(list))
	for _, c := range list {
		out = append(out, currencyJSON{Code: c.Code, Symbol: c.Symbol, Name: c.Name})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeTable(w io.Writer, list []core.Currency, selected string) {
	for _, c := range list {
		mark := " "
		if strings.EqualFold(c.Code, selected) {
			mark = "✓"
		}
		fmt.Fprintf(w, "%s %-4s %-4s %s\n", mark, c.Code, c.Symbol, c.Name)
	}
}
