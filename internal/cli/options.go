package cli

import (
	"fmt"
	"strconv"
	"strings"

	urfave "github.com/urfave/cli"

	"github.com/rickgorman/hashsearch/internal/config"
	"github.com/rickgorman/hashsearch/internal/search"
	"github.com/rickgorman/hashsearch/internal/session"
	"github.com/rickgorman/hashsearch/internal/similarity"
	"github.com/rickgorman/hashsearch/internal/strategy"
	"github.com/rickgorman/hashsearch/internal/ui"
	"github.com/rickgorman/hashsearch/pkg/hash"
	"github.com/rickgorman/hashsearch/pkg/literal"
)

// Options is everything a hashsearch run needs, resolved from the
// configuration file and the command line.
type Options struct {
	Search search.Config
	Native bool
	Style  ui.Style

	// Database enables the badger recorder.
	Database bool
	// DBPath overrides the database directory.
	DBPath string
	// MetricsAddress serves Prometheus metrics when not empty.
	MetricsAddress string
}

// LoadConfig reads the file named by --config, or the default file in the
// data directory when it exists.
func LoadConfig(ctx *urfave.Context) (*config.Config, error) {
	if path := ctx.String(flagName(ConfigFlag)); path != "" {
		return config.Load(path, false)
	}

	dataDir, err := session.DataDir()
	if err != nil {
		return config.Default(), nil
	}
	return config.Load(config.DefaultPath(dataDir), true)
}

// Resolve applies the positional arguments [algorithm] [seed] [threshold]
// and then the flags over file. file is not modified.
func Resolve(ctx *urfave.Context, file *config.Config) (*config.Config, error) {
	cfg := *file

	args := ctx.Args()
	if len(args) > 3 {
		return nil, fmt.Errorf("%w: %s", ErrArguments, strings.Join(args[3:], " "))
	}
	if len(args) > 0 {
		cfg.Search.Algorithm = args[0]
	}
	if len(args) > 1 {
		cfg.Search.Seed = args[1]
	}
	if len(args) > 2 {
		threshold, err := strconv.Atoi(args[2])
		if err != nil {
			return nil, fmt.Errorf("%w: threshold %q is not a number", ErrArguments, args[2])
		}
		cfg.Search.Threshold = threshold
	}

	if name := flagName(AlgorithmFlag); ctx.IsSet(name) {
		cfg.Search.Algorithm = ctx.String(name)
	}
	if name := flagName(SeedFlag); ctx.IsSet(name) {
		cfg.Search.Seed = ctx.String(name)
	}
	if name := flagName(ThresholdFlag); ctx.IsSet(name) {
		cfg.Search.Threshold = ctx.Int(name)
	}
	if name := flagName(FinalFlag); ctx.IsSet(name) {
		cfg.Search.Final = ctx.String(name)
	}
	if ctx.Bool(flagName(ByteFlag)) {
		cfg.Search.Similarity = similarity.Byte.String()
	}
	if ctx.Bool(flagName(UnmanagedFlag)) {
		cfg.Search.Native = true
	}

	var modes []string
	for _, f := range modeFlags {
		if ctx.Bool(flagName(f)) {
			modes = append(modes, flagName(f))
		}
	}
	switch len(modes) {
	case 0:
	case 1:
		cfg.Search.Mode = modes[0]
	default:
		return nil, fmt.Errorf("%w: only one of --%s may be given", ErrArguments, strings.Join(modes, ", --"))
	}
	if name := flagName(MaxChainFlag); ctx.IsSet(name) {
		cfg.Search.MaxChain = ctx.Uint64(name)
	}
	if name := flagName(RandSeedFlag); ctx.IsSet(name) {
		cfg.Search.RandSeed = ctx.Uint64(name)
	}

	if ctx.Bool(flagName(DatabaseFlag)) {
		cfg.Storage.Enabled = true
	}
	if name := flagName(DBPathFlag); ctx.IsSet(name) {
		cfg.Storage.Path = ctx.String(name)
	}
	if name := flagName(CheckpointFlag); ctx.IsSet(name) {
		cfg.Storage.Checkpoint = ctx.String(name)
	}
	if name := flagName(MetricsAddressFlag); ctx.IsSet(name) {
		cfg.Metrics.Address = ctx.String(name)
	}

	cfg.Output = resolveOutput(ctx, cfg.Output)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArguments, err)
	}
	return &cfg, nil
}

// resolveOutput turns on the output settings given as flags.
func resolveOutput(ctx *urfave.Context, out config.Output) config.Output {
	for _, o := range []struct {
		flag urfave.Flag
		dst  *bool
	}{
		{VerboseFlag, &out.Verbose},
		{ColorFlag, &out.NoColor},
		{LowercaseFlag, &out.Lowercase},
		{Omit0xFlag, &out.Omit0x},
		{NoNewlineFlag, &out.NoNewline},
	} {
		if ctx.Bool(flagName(o.flag)) {
			*o.dst = true
		}
	}
	return out
}

// Style returns the display settings of out.
func Style(out config.Output) ui.Style {
	return ui.Style{
		Color:     !out.NoColor,
		Lowercase: out.Lowercase,
		Omit0x:    out.Omit0x,
		Verbose:   out.Verbose,
		NoNewline: out.NoNewline,
	}
}

// Build parses the values of cfg into run options. The seed and final
// value are aligned to the digest later, by search.New.
func Build(cfg *config.Config) (Options, error) {
	alg, err := hash.Lookup(cfg.Search.Algorithm)
	if err != nil {
		return Options{}, err
	}

	kind := strategy.Sequential
	if cfg.Search.Mode != "" {
		if kind, err = strategy.ParseKind(cfg.Search.Mode); err != nil {
			return Options{}, err
		}
	}

	seedLiteral := cfg.Search.Seed
	if seedLiteral == "" {
		seedLiteral = "0"
	}
	seed, err := literal.Parse(seedLiteral)
	if err != nil {
		return Options{}, fmt.Errorf("seed: %w", err)
	}

	var final []byte
	if cfg.Search.Final != "" {
		if final, err = literal.Parse(cfg.Search.Final); err != nil {
			return Options{}, fmt.Errorf("final value: %w", err)
		}
	}

	sim := similarity.Bit
	if cfg.Search.Similarity == similarity.Byte.String() {
		sim = similarity.Byte
	}

	interval, err := cfg.CheckpointInterval()
	if err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrArguments, err)
	}

	return Options{
		Search: search.Config{
			Algorithm: alg.Name,
			Mode: strategy.Mode{
				Kind:     kind,
				MaxChain: cfg.Search.MaxChain,
				RandSeed: cfg.Search.RandSeed,
			},
			Seed:               seed,
			Final:              final,
			Threshold:          cfg.Search.Threshold,
			Similarity:         sim,
			Verbose:            cfg.Output.Verbose,
			CheckpointInterval: interval,
		},
		Native:         cfg.Search.Native,
		Style:          Style(cfg.Output),
		Database:       cfg.Storage.Enabled,
		DBPath:         cfg.Storage.Path,
		MetricsAddress: cfg.Metrics.Address,
	}, nil
}
