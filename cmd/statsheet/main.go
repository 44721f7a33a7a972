// Command statsheet builds a character from item catalogs and prints its stats.
//
// Usage:
//
//	go run ./cmd/statsheet -config config/statsheet.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/udisondev/sparsestats/internal/config"
	"github.com/udisondev/sparsestats/internal/data"
	"github.com/udisondev/sparsestats/internal/model"
	"github.com/udisondev/sparsestats/internal/stats"
)

const StatsheetConfigPath = "config/statsheet.yaml"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("statsheet", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "path to statsheet config (env STATSHEET_CONFIG)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := StatsheetConfigPath
	if p := os.Getenv("STATSHEET_CONFIG"); p != "" {
		path = p
	}
	if *cfgPath != "" {
		path = *cfgPath
	}

	cfg, err := config.LoadStatsheet(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Info("statsheet starting", "config", path, "log_level", cfg.LogLevel)

	catalog, err := data.LoadItemCatalogs(ctx, cfg.Catalogs)
	if err != nil {
		return fmt.Errorf("loading item catalogs: %w", err)
	}

	player, err := buildPlayer(cfg, catalog)
	if err != nil {
		return fmt.Errorf("building player: %w", err)
	}

	return printSheet(out, player, cfg.ShowZero)
}

// buildPlayer applies base stats and rolls and equips the configured items.
func buildPlayer(cfg config.Statsheet, catalog *data.Catalog) (*model.Player, error) {
	p := model.NewPlayer()

	for name, value := range cfg.Base {
		stat, err := stats.ParseStat(name)
		if err != nil {
			return nil, fmt.Errorf("base stats: %w", err)
		}
		p.AddBase(stat, value)
	}

	r := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	for _, name := range cfg.Equip {
		tmpl := catalog.Get(name)
		if tmpl == nil {
			return nil, fmt.Errorf("equip %q: not in any catalog", name)
		}
		item := tmpl.Roll(r)
		if prev := p.Equip(item); prev != nil {
			slog.Warn("item replaced", "slot", item.Slot(), "old", prev.Name(), "new", item.Name())
		}
		slog.Debug("item equipped", "item", item.Name(), "slot", item.Slot(), "affixes", len(item.Affixes()))
	}

	return p, nil
}

// printSheet writes equipment, derived pools and every stat in declaration order.
func printSheet(w io.Writer, p *model.Player, showZero bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "SLOT\tITEM")
	for slot := range model.SlotCount {
		name := "-"
		if item := p.Equipped(slot); item != nil {
			name = item.Name()
		}
		fmt.Fprintf(tw, "%s\t%s\n", slot, name)
	}

	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Health\t%d / %d\n", p.Health(), p.MaxHealth())
	fmt.Fprintf(tw, "Mana\t%d / %d\n", p.Mana(), p.MaxMana())
	fmt.Fprintf(tw, "EnergyShield\t%d / %d\n", p.EnergyShield(), p.MaxEnergyShield())

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "STAT\tVALUE")
	sheet := p.Stats()
	sheet.Sort()
	for stat, v := range sheet.All() {
		if v == 0 && !showZero {
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\n", stat, v)
	}

	return tw.Flush()
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
