package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	urfave "github.com/urfave/cli"

	"github.com/rickgorman/hashsearch/internal/config"
	"github.com/rickgorman/hashsearch/internal/search"
	"github.com/rickgorman/hashsearch/internal/similarity"
	"github.com/rickgorman/hashsearch/internal/strategy"
	"github.com/rickgorman/hashsearch/internal/ui"
	"github.com/rickgorman/hashsearch/pkg/hash"
	"github.com/rickgorman/hashsearch/pkg/literal"
)

func runApp(flags []urfave.Flag, args []string, action func(*urfave.Context) error) error {
	app := NewApp("test", "", "0.0.0")
	app.Writer = io.Discard
	app.ErrWriter = io.Discard
	app.Flags = flags
	app.Action = action
	return app.Run(append([]string{"test"}, args...))
}

// resolveArgs runs args through Resolve and Build over file.
func resolveArgs(file *config.Config, args ...string) (opts Options, err error) {
	runErr := runApp(SearchFlags, args, func(ctx *urfave.Context) error {
		cfg, err := Resolve(ctx, file)
		if err != nil {
			return err
		}
		opts, err = Build(cfg)
		return err
	})
	return opts, runErr
}

func TestResolveDefaults(t *testing.T) {
	opts, err := resolveArgs(config.Default())
	require.NoError(t, err)

	require.Equal(t, "MD5", opts.Search.Algorithm)
	require.Equal(t, strategy.Sequential, opts.Search.Mode.Kind)
	require.Equal(t, []byte{0x00}, opts.Search.Seed)
	require.Nil(t, opts.Search.Final)
	require.Equal(t, 1, opts.Search.Threshold)
	require.Equal(t, similarity.Bit, opts.Search.Similarity)
	require.Equal(t, time.Minute, opts.Search.CheckpointInterval)
	require.Equal(t, ui.Style{Color: true}, opts.Style)
	require.False(t, opts.Native)
	require.False(t, opts.Database)
	require.Empty(t, opts.MetricsAddress)
}

func TestResolveSearch(t *testing.T) {
	testcases := []struct {
		description string
		args        []string
		check       func(t *testing.T, opts Options)
	}{
		{
			"positional algorithm seed threshold",
			[]string{"sha256", "0x1A", "3"},
			func(t *testing.T, opts Options) {
				require.Equal(t, "SHA-256", opts.Search.Algorithm)
				require.Equal(t, []byte{0x1A}, opts.Search.Seed)
				require.Equal(t, 3, opts.Search.Threshold)
			},
		},
		{
			"flags win over positional arguments",
			[]string{"-a", "sha1", "-t", "7", "md5", "0", "2"},
			func(t *testing.T, opts Options) {
				require.Equal(t, "SHA-1", opts.Search.Algorithm)
				require.Equal(t, 7, opts.Search.Threshold)
			},
		},
		{
			"long flags",
			[]string{"--algorithm", "crc32", "--seed", "0b11010", "--final", "0x20", "--byte"},
			func(t *testing.T, opts Options) {
				require.Equal(t, "CRC-32", opts.Search.Algorithm)
				require.Equal(t, []byte{0x1A}, opts.Search.Seed)
				require.Equal(t, []byte{0x20}, opts.Search.Final)
				require.Equal(t, similarity.Byte, opts.Search.Similarity)
			},
		},
		{
			"chase",
			[]string{"-e"},
			func(t *testing.T, opts Options) {
				require.Equal(t, strategy.Chase, opts.Search.Mode.Kind)
			},
		},
		{
			"random with seed",
			[]string{"-r", "--rand-seed", "42"},
			func(t *testing.T, opts Options) {
				require.Equal(t, strategy.Random, opts.Search.Mode.Kind)
				require.Equal(t, uint64(42), opts.Search.Mode.RandSeed)
			},
		},
		{
			"chain length with max chain",
			[]string{"-L", "-m", "10"},
			func(t *testing.T, opts Options) {
				require.Equal(t, strategy.ChainLength, opts.Search.Mode.Kind)
				require.Equal(t, uint64(10), opts.Search.Mode.MaxChain)
			},
		},
		{
			"chain store",
			[]string{"--chain-store"},
			func(t *testing.T, opts Options) {
				require.Equal(t, strategy.ChainStore, opts.Search.Mode.Kind)
			},
		},
		{
			"storage and metrics",
			[]string{"-d", "--db-path", "/tmp/hs", "--checkpoint", "30s", "--metrics-addr", "localhost:9876"},
			func(t *testing.T, opts Options) {
				require.True(t, opts.Database)
				require.Equal(t, "/tmp/hs", opts.DBPath)
				require.Equal(t, 30*time.Second, opts.Search.CheckpointInterval)
				require.Equal(t, "localhost:9876", opts.MetricsAddress)
			},
		},
		{
			"output style",
			[]string{"-v", "-c", "-l", "-x", "-n", "-u"},
			func(t *testing.T, opts Options) {
				require.Equal(t, ui.Style{Lowercase: true, Omit0x: true, Verbose: true, NoNewline: true}, opts.Style)
				require.True(t, opts.Search.Verbose)
				require.True(t, opts.Native)
			},
		},
	}

	for _, c := range testcases {
		t.Run(c.description, func(t *testing.T) {
			opts, err := resolveArgs(config.Default(), c.args...)
			require.NoError(t, err)
			c.check(t, opts)
		})
	}
}

func TestResolveKeepsFileValues(t *testing.T) {
	file := config.Default()
	file.Search.Mode = "chase"
	file.Search.Threshold = 5
	file.Search.Algorithm = "sha1"
	file.Output.Lowercase = true

	opts, err := resolveArgs(file, "-a", "md5")
	require.NoError(t, err)

	require.Equal(t, "MD5", opts.Search.Algorithm)
	require.Equal(t, strategy.Chase, opts.Search.Mode.Kind)
	require.Equal(t, 5, opts.Search.Threshold)
	require.True(t, opts.Style.Lowercase)

	require.Equal(t, "sha1", file.Search.Algorithm, "Resolve must not modify the file config")
}

func TestResolveErrors(t *testing.T) {
	testcases := []struct {
		description string
		args        []string
		target      error
		code        int
	}{
		{"two mode flags", []string{"-e", "-r"}, ErrArguments, ExitArguments},
		{"too many positional arguments", []string{"md5", "0", "1", "extra"}, ErrArguments, ExitArguments},
		{"threshold not a number", []string{"md5", "0", "abc"}, ErrArguments, ExitArguments},
		{"unknown flag", []string{"--nope"}, ErrArguments, ExitArguments},
		{"bad checkpoint", []string{"--checkpoint", "soon"}, ErrArguments, ExitArguments},
		{"unsupported algorithm", []string{"-a", "whirlpool"}, hash.ErrUnsupportedAlgorithm, ExitArguments},
		{"malformed seed", []string{"-s", "0xZZ"}, literal.ErrMalformedLiteral, ExitArguments},
		{"malformed final", []string{"-f", "0b102"}, literal.ErrMalformedLiteral, ExitArguments},
	}

	for _, c := range testcases {
		t.Run(c.description, func(t *testing.T) {
			_, err := resolveArgs(config.Default(), c.args...)
			require.ErrorIs(t, err, c.target)
			require.Equal(t, c.code, ExitCode(err))
		})
	}
}

func TestExitCode(t *testing.T) {
	testcases := []struct {
		err  error
		code int
	}{
		{nil, ExitSuccess},
		{ErrNoInput, ExitNoInput},
		{fmt.Errorf("wrapped: %w", ErrArguments), ExitArguments},
		{fmt.Errorf("%w: seed", search.ErrConfiguration), ExitArguments},
		{strategy.ErrUnknownMode, ExitArguments},
		{search.ErrStorageUnavailable, ExitFailure},
		{errors.New("boom"), ExitFailure},
	}

	for _, c := range testcases {
		require.Equal(t, c.code, ExitCode(c.err), "%v", c.err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HASHSEARCH_HOME", dir)

	var loaded *config.Config
	action := func(ctx *urfave.Context) (err error) {
		loaded, err = LoadConfig(ctx)
		return err
	}

	require.NoError(t, runApp(SearchFlags, nil, action))
	require.True(t, config.Equal(config.Default(), loaded))

	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[search]\nalgorithm = \"SHA-1\"\nthreshold = 9\n"), 0600))

	require.NoError(t, runApp(SearchFlags, []string{"--config", path}, action))
	require.Equal(t, "SHA-1", loaded.Search.Algorithm)
	require.Equal(t, 9, loaded.Search.Threshold)

	err := runApp(SearchFlags, []string{"--config", filepath.Join(dir, "missing.toml")}, action)
	require.Error(t, err)
}

func resolveComputeArgs(args ...string) (opts ComputeOptions, err error) {
	runErr := runApp(ComputeFlags, args, func(ctx *urfave.Context) error {
		opts, err = ResolveCompute(ctx)
		return err
	})
	return opts, runErr
}

func TestResolveCompute(t *testing.T) {
	opts, err := resolveComputeArgs("hello")
	require.NoError(t, err)
	require.Equal(t, []string{"hello"}, opts.Inputs)
	require.Equal(t, hash.DefaultAlgorithm, opts.Algorithm)
	require.Equal(t, ui.Style{Color: true}, opts.Style)

	opts, err = resolveComputeArgs("hello", "md5")
	require.NoError(t, err)
	require.Equal(t, "MD5", opts.Algorithm)

	opts, err = resolveComputeArgs("-i", "hello", "-8", "-l", "sha1")
	require.NoError(t, err)
	require.Equal(t, []string{"hello"}, opts.Inputs)
	require.Equal(t, "SHA-1", opts.Algorithm)
	require.True(t, opts.UTF8)
	require.True(t, opts.Style.Lowercase)

	opts, err = resolveComputeArgs("-a", "crc32", "hello", "md5")
	require.NoError(t, err)
	require.Equal(t, "CRC-32", opts.Algorithm)
}

func TestResolveComputeFileMode(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", "c.bin"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0600))
	}

	opts, err := resolveComputeArgs("-f", filepath.Join(dir, "*.txt"))
	require.NoError(t, err)
	require.True(t, opts.FileMode)
	require.Equal(t, []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}, opts.Inputs)

	_, err = resolveComputeArgs("-f", filepath.Join(dir, "*.none"))
	require.ErrorIs(t, err, ErrNoInput)
}

func TestResolveComputeErrors(t *testing.T) {
	_, err := resolveComputeArgs()
	require.ErrorIs(t, err, ErrNoInput)
	require.Equal(t, ExitNoInput, ExitCode(err))

	_, err = resolveComputeArgs("a", "md5", "extra")
	require.ErrorIs(t, err, ErrArguments)

	_, err = resolveComputeArgs("a", "whirlpool")
	require.ErrorIs(t, err, hash.ErrUnsupportedAlgorithm)
}
