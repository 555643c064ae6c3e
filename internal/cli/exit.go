package cli

import (
	"errors"
	"fmt"

	urfave "github.com/urfave/cli"

	"github.com/rickgorman/hashsearch/internal/search"
	"github.com/rickgorman/hashsearch/internal/strategy"
	"github.com/rickgorman/hashsearch/pkg/hash"
	"github.com/rickgorman/hashsearch/pkg/literal"
)

// Process exit statuses.
const (
	ExitSuccess     = 0
	ExitUnspecified = 10
	ExitFailure     = 20
	ExitNoInput     = 30
	ExitArguments   = 40
)

var (
	// ErrArguments reports command-line arguments that could not be used.
	ErrArguments = errors.New("unrecognised arguments")
	// ErrNoInput reports a missing input.
	ErrNoInput = errors.New("no input")
)

// ExitCode maps an error returned by a command to its exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrNoInput):
		return ExitNoInput
	case errors.Is(err, ErrArguments),
		errors.Is(err, search.ErrConfiguration),
		errors.Is(err, hash.ErrUnsupportedAlgorithm),
		errors.Is(err, literal.ErrMalformedLiteral),
		errors.Is(err, strategy.ErrUnknownMode):
		return ExitArguments
	default:
		return ExitFailure
	}
}

// NewApp returns an urfave/cli application with the conventions shared by
// hashsearch and hashcompute. Usage errors wrap ErrArguments.
func NewApp(name, usage, version string) *urfave.App {
	// -v is verbose in both binaries.
	urfave.VersionFlag = urfave.BoolFlag{
		Name:  "version",
		Usage: "Print Version and Exit",
	}

	app := urfave.NewApp()
	app.Name = name
	app.Usage = usage
	app.Version = version
	app.OnUsageError = func(_ *urfave.Context, err error, _ bool) error {
		return fmt.Errorf("%w: %w", ErrArguments, err)
	}
	return app
}
