package main

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	urfave "github.com/urfave/cli"

	"github.com/rickgorman/hashsearch/internal/cli"
	"github.com/rickgorman/hashsearch/internal/ui"
	"github.com/rickgorman/hashsearch/pkg/hash"
)

const version = "3.0.0-dev"

func main() {
	app := cli.NewApp("hashcompute", "Computes the digest of a string or of files", version)
	app.UsageText = "hashcompute [options] [input] [algorithm]"
	app.Description = fmt.Sprintf("Algorithms: %s", strings.Join(hash.Supported(), ", "))
	app.Flags = cli.ComputeFlags
	app.Action = computeAction

	if err := app.Run(os.Args); err != nil {
		p := ui.NewPrinter(os.Stderr, ui.DefaultStyle)
		p.Fail("%v", err)
		code := cli.ExitCode(err)
		if code == cli.ExitArguments || code == cli.ExitNoInput {
			p.Info("Run %s for usage information", "hashcompute --help")
		}
		os.Exit(code)
	}
}

func computeAction(c *urfave.Context) error {
	opts, err := cli.ResolveCompute(c)
	if err != nil {
		return err
	}

	alg, err := hash.Lookup(opts.Algorithm)
	if err != nil {
		return err
	}

	p := ui.NewPrinter(os.Stdout, opts.Style)
	p.Debug("Algorithm: %s (%d bytes)", alg.Name, alg.Size)

	for _, input := range opts.Inputs {
		sum, err := digest(alg, input, opts)
		if err != nil {
			return err
		}

		p.Debug("Input: %s", input)
		if opts.UTF8 {
			p.Info("UTF8 : %s", printable(sum))
		}
		if len(opts.Inputs) > 1 {
			p.Result(p.Hex(sum) + "  " + input)
			continue
		}
		p.Result(p.Hex(sum))
	}
	return nil
}

func digest(alg *hash.Algorithm, input string, opts cli.ComputeOptions) ([]byte, error) {
	if !opts.FileMode {
		return alg.Sum([]byte(input), opts.Native), nil
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrNoInput, err)
	}
	defer f.Close()

	sum, err := alg.SumReader(f, opts.Native)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", input, err)
	}
	return sum, nil
}

// printable decodes sum as UTF-8 with line breaks removed.
func printable(sum []byte) string {
	s := strings.ToValidUTF8(string(sum), string(utf8.RuneError))
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}
