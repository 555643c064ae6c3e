package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	urfave "github.com/urfave/cli"

	"github.com/rickgorman/hashsearch/internal/config"
	"github.com/rickgorman/hashsearch/internal/ui"
	"github.com/rickgorman/hashsearch/pkg/hash"
)

// ComputeOptions is a resolved hashcompute invocation.
type ComputeOptions struct {
	// Inputs are the strings to hash, or file names in file mode.
	Inputs []string
	// Algorithm is the canonical algorithm name.
	Algorithm string
	FileMode  bool
	UTF8      bool
	Native    bool
	Style     ui.Style
}

// ResolveCompute reads [input] [algorithm] and the hashcompute flags. In
// file mode the input is a file name or a filepath.Match pattern.
func ResolveCompute(ctx *urfave.Context) (ComputeOptions, error) {
	args := []string(ctx.Args())
	if name := flagName(InputFlag); ctx.IsSet(name) {
		args = append([]string{ctx.String(name)}, args...)
	}
	if len(args) > 2 {
		return ComputeOptions{}, fmt.Errorf("%w: %s", ErrArguments, strings.Join(args[2:], " "))
	}

	algorithm := hash.DefaultAlgorithm
	if len(args) > 1 {
		algorithm = args[1]
	}
	if name := flagName(ComputeAlgorithmFlag); ctx.IsSet(name) {
		algorithm = ctx.String(name)
	}
	alg, err := hash.Lookup(algorithm)
	if err != nil {
		return ComputeOptions{}, err
	}

	opts := ComputeOptions{
		Algorithm: alg.Name,
		FileMode:  ctx.Bool(flagName(FileModeFlag)),
		UTF8:      ctx.Bool(flagName(UTF8Flag)),
		Native:    ctx.Bool(flagName(UnmanagedFlag)),
		Style:     Style(resolveOutput(ctx, config.Output{})),
	}
	if len(args) == 0 {
		return opts, ErrNoInput
	}

	if !opts.FileMode {
		opts.Inputs = args[:1]
		return opts, nil
	}
	matches, err := filepath.Glob(args[0])
	if err != nil {
		return opts, fmt.Errorf("%w: %w", ErrArguments, err)
	}
	if len(matches) == 0 {
		return opts, fmt.Errorf("%w: no file matches %s", ErrNoInput, args[0])
	}
	opts.Inputs = matches
	return opts, nil
}
