package cli

import (
	"strings"

	urfave "github.com/urfave/cli"
)

// Search flags
var (
	// AlgorithmFlag selects the hash algorithm
	AlgorithmFlag = urfave.StringFlag{
		Name:  "algorithm, a",
		Usage: "Hash algorithm, eg. MD5, SHA-256, CRC32 (default MD5)",
	}
	// SeedFlag is the first candidate
	SeedFlag = urfave.StringFlag{
		Name:  "seed, s",
		Usage: "Starting value as a literal: 0x1A, 0b11010, 0o32, 032 or 26 (default 0x00)",
	}
	// ThresholdFlag is the minimum similarity reported
	ThresholdFlag = urfave.IntFlag{
		Name:  "threshold, t",
		Usage: "Report inputs whose similarity to their digest reaches this value (default 1)",
	}
	// FinalFlag ends the search once the traversal reaches it
	FinalFlag = urfave.StringFlag{
		Name:  "final, f",
		Usage: "Stop before this value is hashed",
	}
	// ByteFlag selects byte similarity
	ByteFlag = urfave.BoolFlag{
		Name:  "byte, b",
		Usage: "Count matching bytes instead of matching bits",
	}
	// UnmanagedFlag selects native hash implementations
	UnmanagedFlag = urfave.BoolFlag{
		Name:  "unmanaged, u",
		Usage: "Use the native hash implementation, if available",
	}
)

// Traversal flags. At most one may be given.
var (
	ChaseFlag = urfave.BoolFlag{
		Name:  "chase, e",
		Usage: "Feed every digest back as the next input",
	}
	RandomFlag = urfave.BoolFlag{
		Name:  "random, r",
		Usage: "Draw inputs at random",
	}
	ChainLengthFlag = urfave.BoolFlag{
		Name:  "chain-length, L",
		Usage: "Measure chase cycle lengths through successive chain starts",
	}
	ChainStoreFlag = urfave.BoolFlag{
		Name:  "chain-store, S",
		Usage: "Chase from the seed and record the cycle back to it",
	}
	// MaxChainFlag abandons long chains
	MaxChainFlag = urfave.Uint64Flag{
		Name:  "max-chain, m",
		Usage: "Abandon a chain once it is longer than this (chain-length mode, 0 is unlimited)",
	}
	// RandSeedFlag makes random mode reproducible
	RandSeedFlag = urfave.Uint64Flag{
		Name:  "rand-seed",
		Usage: "Seed for random mode (0 draws one from the operating system)",
	}
)

// Storage and metrics flags
var (
	DatabaseFlag = urfave.BoolFlag{
		Name:  "database, d",
		Usage: "Record sessions, hits and chains in the local database",
	}
	DBPathFlag = urfave.StringFlag{
		Name:  "db-path",
		Usage: "Database directory (default ~/.hashsearch/db)",
	}
	CheckpointFlag = urfave.StringFlag{
		Name:  "checkpoint",
		Usage: "Interval between progress checkpoints, eg. 30s (default 1m, 0 disables)",
	}
	MetricsAddressFlag = urfave.StringFlag{
		Name:  "metrics-addr",
		Usage: "Serve Prometheus metrics on this address, eg. localhost:9876",
	}
	ConfigFlag = urfave.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file (default ~/.hashsearch/config.toml)",
	}
)

// Output flags, shared by hashsearch and hashcompute
var (
	VerboseFlag = urfave.BoolFlag{
		Name:  "verbose, v",
		Usage: "Add additional output",
	}
	ColorFlag = urfave.BoolFlag{
		Name:  "color, c",
		Usage: "Disable colored output",
	}
	LowercaseFlag = urfave.BoolFlag{
		Name:  "lowercase, l",
		Usage: "Output hex with lowercase (0DE3 => 0de3)",
	}
	Omit0xFlag = urfave.BoolFlag{
		Name:  "omit0x, x",
		Usage: "Omit 0x prefix from hex output",
	}
	NoNewlineFlag = urfave.BoolFlag{
		Name:  "nonewline, n",
		Usage: "Output without trailing newline",
	}
)

// hashcompute flags
var (
	InputFlag = urfave.StringFlag{
		Name:  "input, i",
		Usage: "Input to hash",
	}
	ComputeAlgorithmFlag = urfave.StringFlag{
		Name:  "algorithm, a",
		Usage: "Hash algorithm (default SHA-512)",
	}
	FileModeFlag = urfave.BoolFlag{
		Name:  "filemode, f",
		Usage: "Interpret inputs as file names",
	}
	UTF8Flag = urfave.BoolFlag{
		Name:  "utf8, 8",
		Usage: "Also show the UTF-8 representation of the digest",
	}
)

var (
	outputFlags = []urfave.Flag{
		VerboseFlag,
		ColorFlag,
		LowercaseFlag,
		Omit0xFlag,
		NoNewlineFlag,
	}

	modeFlags = []urfave.BoolFlag{
		ChaseFlag,
		RandomFlag,
		ChainLengthFlag,
		ChainStoreFlag,
	}

	// SearchFlags are the hashsearch flags
	SearchFlags = append([]urfave.Flag{
		AlgorithmFlag,
		SeedFlag,
		ThresholdFlag,
		FinalFlag,
		ByteFlag,
		UnmanagedFlag,
		ChaseFlag,
		RandomFlag,
		ChainLengthFlag,
		ChainStoreFlag,
		MaxChainFlag,
		RandSeedFlag,
		DatabaseFlag,
		DBPathFlag,
		CheckpointFlag,
		MetricsAddressFlag,
		ConfigFlag,
	}, outputFlags...)

	// StoreFlags select the database read by the query subcommands
	StoreFlags = []urfave.Flag{
		DBPathFlag,
		ConfigFlag,
		urfave.StringFlag{
			Name:  "algorithm, a",
			Usage: "Only list records of this algorithm",
		},
	}

	// ComputeFlags are the hashcompute flags
	ComputeFlags = append([]urfave.Flag{
		InputFlag,
		ComputeAlgorithmFlag,
		FileModeFlag,
		UTF8Flag,
		UnmanagedFlag,
	}, outputFlags...)
)

// flagName returns the long name of a flag.
func flagName(f urfave.Flag) string {
	name, _, _ := strings.Cut(f.GetName(), ",")
	return name
}
