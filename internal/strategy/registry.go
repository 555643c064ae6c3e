package strategy

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rickgorman/hashsearch/internal/counter"
)

// ErrUnknownMode is returned for mode names and kinds that are not registered.
var ErrUnknownMode = errors.New("unknown traversal mode")

// constructor builds a traversal from aligned seed and final values.
type constructor func(b base, seed []byte) (Traversal, error)

var constructors = map[Kind]constructor{
	Sequential:  newSequential,
	Random:      newRandom,
	Chase:       newChase,
	ChainLength: newChainTracker,
	ChainStore:  newChainStore,
}

// Names returns the names of all traversal modes, sorted.
func Names() []string {
	var names []string
	for kind := range constructors {
		names = append(names, kind.String())
	}
	sort.Strings(names)
	return names
}

// ParseKind returns the kind with the given name. Case and the separator
// between words are ignored, so "chain-length", "ChainLength" and
// "chain_length" are the same.
func ParseKind(name string) (Kind, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
	for kind := range constructors {
		if strings.ReplaceAll(kind.String(), "-", "") == key {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %s (available: %s)", ErrUnknownMode, name, strings.Join(Names(), ", "))
}

// New creates the traversal for mode starting at seed. final may be nil;
// otherwise it must have the same width as seed.
func New(mode Mode, seed, final []byte) (Traversal, error) {
	build, ok := constructors[mode.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode.Kind)
	}
	if len(seed) == 0 {
		return nil, FormatError(mode.Kind, "seed", errors.New("empty seed"))
	}
	if final != nil && len(final) != len(seed) {
		return nil, FormatError(mode.Kind, "final value",
			fmt.Errorf("width %d does not match seed width %d", len(final), len(seed)))
	}
	return build(base{mode: mode, final: counter.Clone(final)}, counter.Clone(seed))
}
