package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sarmine/config"
	"github.com/katalvlaran/sarmine/record"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	format     string
	idColumn   string
	fitColumn  string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "sarmine",
		Short: "Mine additive SAR rules and generate candidates",
		Long: `sarmine extracts edit rules between a wild-type and every measured record,
tests which rules combine additively, and proposes unmeasured combinations
ranked by predicted fitness.

Datasets are CSV (id, fitness and one column per position) or JSON
([{"id": ..., "fitness": ..., "positions": {...}}]).`,
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&g.configPath, "config", "c", "", "YAML configuration file (defaults apply when empty)")
	pf.StringVar(&g.logLevel, "log-level", "", "override log_level: debug, info, warn or error")
	pf.StringVar(&g.format, "format", "", "dataset format: csv or json (default: by file extension)")
	pf.StringVar(&g.idColumn, "id-column", "id", "CSV column holding record IDs")
	pf.StringVar(&g.fitColumn, "fitness-column", "fitness", "CSV column holding fitness")

	root.AddCommand(
		newRunCmd(g),
		newRulesCmd(g),
		newRunsCmd(),
		newConfigCmd(),
	)

	return root
}

// loadConfig reads --config over the defaults and applies --log-level.
func (g *globalFlags) loadConfig() (config.Config, error) {
	cfg := config.Default()
	if g.configPath != "" {
		var err error
		if cfg, err = config.Load(g.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if g.logLevel != "" {
		cfg.LogLevel = g.logLevel
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}

	return cfg, nil
}

// logger writes text logs to w at the configured level.
func logger(w io.Writer, level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

func (g *globalFlags) loadDataset(path string) (*record.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	format := strings.ToLower(g.format)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch format {
	case "json":
		return record.ReadJSON(f)
	case "csv", "":
		return record.ReadCSV(f, record.CSVOptions{IDColumn: g.idColumn, FitnessColumn: g.fitColumn})
	default:
		return nil, fmt.Errorf("unknown dataset format %q", format)
	}
}
