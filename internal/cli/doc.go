// Package cli provides the command-line flags of hashsearch and
// hashcompute and turns them into run options.
//
// Settings are resolved in three layers, each overriding the previous:
//   - the TOML configuration file (--config, or ~/.hashsearch/config.toml)
//   - positional arguments: [algorithm] [seed] [threshold]
//   - flags
//
// Supported hashsearch flags include:
//   - -a/--algorithm, -s/--seed, -t/--threshold, -f/--final
//   - -e/--chase, -r/--random, -L/--chain-length, -S/--chain-store
//   - -b/--byte: byte similarity instead of bit similarity
//   - -d/--database, --db-path, --checkpoint: session recording
//   - --metrics-addr: Prometheus endpoint
//   - -v, -c, -l, -x, -n: output style
//
// At most one traversal flag may be given. Flags must come before the
// positional arguments.
//
// Example usage:
//
//	app := cli.NewApp("hashsearch", "Searches through hash domains", version)
//	app.Flags = cli.SearchFlags
//	app.Action = func(ctx *urfave.Context) error {
//		file, err := cli.LoadConfig(ctx)
//		if err != nil {
//			return err
//		}
//		cfg, err := cli.Resolve(ctx, file)
//		if err != nil {
//			return err
//		}
//		opts, err := cli.Build(cfg)
//		...
//	}
//	if err := app.Run(os.Args); err != nil {
//		os.Exit(cli.ExitCode(err))
//	}
//
// Exit statuses:
//   - 0:  success, including every ordinary search termination
//   - 10: unspecified
//   - 20: unhandled error
//   - 30: no input
//   - 40: unrecognised or invalid arguments
package cli
