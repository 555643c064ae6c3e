package main

import (
	"context"
	"os"
	"strings"
	"time"

	urfave "github.com/urfave/cli"

	"github.com/rickgorman/hashsearch/internal/cli"
	"github.com/rickgorman/hashsearch/internal/config"
	"github.com/rickgorman/hashsearch/internal/store"
	"github.com/rickgorman/hashsearch/internal/ui"
	"github.com/rickgorman/hashsearch/pkg/hash"
)

var (
	sessionsCommand = urfave.Command{
		Name:   "sessions",
		Usage:  "List recorded search sessions",
		Flags:  cli.StoreFlags,
		Action: queryAction(listSessions),
	}
	hitsCommand = urfave.Command{
		Name:   "hits",
		Usage:  "List recorded similarity hits",
		Flags:  cli.StoreFlags,
		Action: queryAction(listHits),
	}
	chainsCommand = urfave.Command{
		Name:   "chains",
		Usage:  "List recorded chain closures",
		Flags:  cli.StoreFlags,
		Action: queryAction(listChains),
	}
	configCommand = urfave.Command{
		Name:      "config",
		Usage:     "Print the effective configuration, or write it with --output",
		UsageText: "hashsearch config [options] [algorithm] [seed] [threshold]",
		Flags: append([]urfave.Flag{
			urfave.StringFlag{
				Name:  "output, o",
				Usage: "Write the configuration to this file instead of printing it",
			},
		}, cli.SearchFlags...),
		Action: configAction,
	}
)

type lister func(ctx context.Context, p *ui.Printer, st *store.Store, algorithm string) error

func queryAction(list lister) func(*urfave.Context) error {
	return func(c *urfave.Context) error {
		file, err := cli.LoadConfig(c)
		if err != nil {
			return err
		}
		path := file.Storage.Path
		if c.IsSet("db-path") {
			path = c.String("db-path")
		}

		algorithm := c.String("algorithm")
		if algorithm != "" {
			alg, err := hash.Lookup(algorithm)
			if err != nil {
				return err
			}
			algorithm = alg.Name
		}

		st, err := openStore(path)
		if err != nil {
			return err
		}
		defer st.Close()

		p := ui.NewPrinter(os.Stdout, cli.Style(file.Output))
		return list(context.Background(), p, st, algorithm)
	}
}

func listSessions(ctx context.Context, p *ui.Printer, st *store.Store, algorithm string) error {
	sessions, err := st.Sessions(ctx)
	if err != nil {
		return err
	}

	n := 0
	for _, s := range sessions {
		if algorithm != "" && s.Algorithm != algorithm {
			continue
		}
		n++
		status := "running"
		if s.Finished {
			status = "finished"
		}
		p.Info("%s %s %s on %s", s.ID, s.Algorithm, s.Mode, s.Host)
		p.DimMsg("started %s, %s, %d inputs, seed %s, at %s",
			s.Started.Format(time.RFC3339), status, s.Inputs, p.Hex(s.Seed), p.Hex(s.Current))
	}
	if n == 0 {
		p.Warn("No sessions recorded")
	}
	return nil
}

func listHits(ctx context.Context, p *ui.Printer, st *store.Store, algorithm string) error {
	hits, err := st.Hits(ctx, algorithm)
	if err != nil {
		return err
	}
	for _, h := range hits {
		if h.FixPoint {
			p.Success("%s fix point %s", h.Algorithm, p.Hex(h.Input))
			continue
		}
		p.Info("%s %s has %s similarity %d", h.Algorithm, p.Hex(h.Input), h.Kind, h.Score)
		p.DimMsg("hash %s", p.Hex(h.Digest))
	}
	if len(hits) == 0 {
		p.Warn("No hits recorded")
	}
	return nil
}

func listChains(ctx context.Context, p *ui.Printer, st *store.Store, algorithm string) error {
	chains, err := st.Chains(ctx, algorithm)
	if err != nil {
		return err
	}
	for _, ch := range chains {
		p.Info("%s chain start %s has chain length %d", ch.Algorithm, p.Hex(ch.Start), ch.Length)
	}
	if len(chains) == 0 {
		p.Warn("No chains recorded")
	}
	return nil
}

func configAction(c *urfave.Context) error {
	file, err := cli.LoadConfig(c)
	if err != nil {
		return err
	}
	cfg, err := cli.Resolve(c, file)
	if err != nil {
		return err
	}
	// Build reports values the file form accepts but a search would not.
	if _, err := cli.Build(cfg); err != nil {
		return err
	}

	p := ui.NewPrinter(os.Stderr, cli.Style(cfg.Output))
	if path := c.String("output"); path != "" {
		if err := config.Export(cfg, path); err != nil {
			return err
		}
		p.Success("Wrote configuration to %s", path)
		return nil
	}

	raw, err := config.Encode(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.WriteString(strings.TrimRight(string(raw), "\n") + "\n")
	return err
}
