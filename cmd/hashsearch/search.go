package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	urfave "github.com/urfave/cli"
	"golang.org/x/sync/errgroup"

	"github.com/rickgorman/hashsearch/internal/cli"
	"github.com/rickgorman/hashsearch/internal/metrics"
	"github.com/rickgorman/hashsearch/internal/search"
	"github.com/rickgorman/hashsearch/internal/session"
	"github.com/rickgorman/hashsearch/internal/store"
	"github.com/rickgorman/hashsearch/internal/ui"
	"github.com/rickgorman/hashsearch/pkg/hash"
)

func searchAction(c *urfave.Context) error {
	file, err := cli.LoadConfig(c)
	if err != nil {
		return err
	}
	cfg, err := cli.Resolve(c, file)
	if err != nil {
		return err
	}
	opts, err := cli.Build(cfg)
	if err != nil {
		return err
	}
	opts.Search.HostID = session.HostID()

	h, err := hash.New(opts.Search.Algorithm, opts.Native)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Ctrl+C arrives as a key press in raw mode.
	var out io.Writer = os.Stdout
	restore, raw, err := ui.RawInput(os.Stdin)
	if err != nil {
		return fmt.Errorf("setting up the terminal: %w", err)
	}
	defer restore()
	if raw {
		out = ui.CRLF(os.Stdout)
	}

	p := ui.NewPrinter(out, opts.Style)
	searchOpts := []search.Option{
		search.WithReporter(ui.NewSearchReporter(p)),
	}
	if raw {
		searchOpts = append(searchOpts, search.WithControls(ui.NewKeyControls(os.Stdin)))
	}

	if opts.Database {
		st, err := openStore(opts.DBPath)
		if err != nil {
			return err
		}
		defer func() {
			if err := st.Close(); err != nil {
				p.Warn("Failed to close database: %v", err)
			}
		}()
		searchOpts = append(searchOpts, search.WithRecorder(st))
	}

	g, gctx := errgroup.WithContext(ctx)
	serverCtx, stopServer := context.WithCancel(gctx)
	defer stopServer()

	if opts.MetricsAddress != "" {
		registry := prometheus.NewRegistry()
		m, err := metrics.NewPrometheus(registry, opts.Search.Algorithm, opts.Search.Mode.String())
		if err != nil {
			return err
		}
		searchOpts = append(searchOpts, search.WithMetrics(m))

		ready := make(chan string, 1)
		server := metrics.NewServer(opts.MetricsAddress, registry)
		g.Go(func() error {
			return server.Run(serverCtx, ready)
		})
		select {
		case addr := <-ready:
			p.DimMsg("Serving metrics on http://%s/metrics", addr)
		case <-gctx.Done():
			return g.Wait()
		}
	}

	loop, err := search.New(opts.Search, h, searchOpts...)
	if err != nil {
		stopServer()
		_ = g.Wait()
		return err
	}

	lc := loop.Config()
	p.Info("Searching %s (%s) from %s, threshold %d %s similarity",
		lc.Algorithm, lc.Mode, p.Hex(lc.Seed), lc.Threshold, lc.Similarity)
	if raw {
		p.DimMsg("Press C for the current value, P to pause, Q to quit")
	}
	p.Debug("Host %s", lc.HostID)

	g.Go(func() error {
		defer stopServer()
		_, err := loop.Run(gctx)
		return err
	})
	return g.Wait()
}

// openStore opens the badger database at path, or in the data directory
// when path is empty.
func openStore(path string) (*store.Store, error) {
	if path == "" {
		dataDir, err := session.EnsureDataDir()
		if err != nil {
			return nil, err
		}
		if path, err = session.DatabaseDir(dataDir); err != nil {
			return nil, err
		}
	}

	st, err := store.Open(store.Settings{Path: &path})
	if err != nil {
		return nil, fmt.Errorf("opening database at %s: %w", path, err)
	}
	return st, nil
}
