package hash

import (
	"errors"
	"fmt"
	gohash "hash"
	"io"
	"sort"
	"strings"
	"sync"
	"unicode"
)

// DefaultAlgorithm is used when an empty name or "default" is given.
const DefaultAlgorithm = "SHA-512"

// ErrUnsupportedAlgorithm is returned for names that match no registered algorithm.
var ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")

// Factory creates a fresh hash state.
type Factory func() gohash.Hash

// Algorithm describes a registered hash function.
type Algorithm struct {
	// Name is the canonical display name, e.g. "SHA-256".
	Name string
	// Size is the digest size in bytes.
	Size int
	// Aliases are extra names accepted by Lookup, matched after Normalize.
	Aliases []string

	factory Factory
	native  Factory
}

// New returns a fresh hash state. When native is true and the algorithm
// has an accelerated implementation, that one is used.
func (a *Algorithm) New(native bool) gohash.Hash {
	if native && a.native != nil {
		return a.native()
	}
	return a.factory()
}

// HasNative reports whether an accelerated implementation is registered.
func (a *Algorithm) HasNative() bool {
	return a.native != nil
}

// Sum hashes data in one shot.
func (a *Algorithm) Sum(data []byte, native bool) []byte {
	h := a.New(native)
	_, _ = h.Write(data) // hash.Hash.Write never returns an error
	return h.Sum(nil)
}

// SumReader hashes everything read from r.
func (a *Algorithm) SumReader(r io.Reader, native bool) ([]byte, error) {
	h := a.New(native)
	if _, err := io.Copy(h, r); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return h.Sum(nil), nil
}

var (
	mu         sync.RWMutex
	byAlias    = make(map[string]*Algorithm)
	algorithms []*Algorithm
)

// Register adds an algorithm under its normalized name and aliases.
func Register(a *Algorithm) error {
	mu.Lock()
	defer mu.Unlock()

	if a.Name == "" {
		return fmt.Errorf("algorithm name cannot be empty")
	}
	if a.factory == nil {
		return fmt.Errorf("algorithm %s: factory cannot be nil", a.Name)
	}

	keys := append([]string{a.Name}, a.Aliases...)
	for _, key := range keys {
		if _, exists := byAlias[Normalize(key)]; exists {
			return fmt.Errorf("hash algorithm alias %q already registered", key)
		}
	}
	for _, key := range keys {
		byAlias[Normalize(key)] = a
	}
	algorithms = append(algorithms, a)
	return nil
}

// MustRegister is Register that panics on error.
func MustRegister(a *Algorithm) {
	if err := Register(a); err != nil {
		panic(fmt.Sprintf("failed to register hash algorithm %q: %v", a.Name, err))
	}
}

// Normalize strips non-alphanumeric characters and upper-cases the rest,
// so "SHA-256", "sha256" and "Sha_256" are the same key.
func Normalize(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// Lookup finds an algorithm by name or alias.
func Lookup(name string) (*Algorithm, error) {
	key := Normalize(name)
	if key == "" {
		key = Normalize(DefaultAlgorithm)
	}

	mu.RLock()
	a, ok := byAlias[key]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s (supported: %s)",
			ErrUnsupportedAlgorithm, name, strings.Join(Supported(), ", "))
	}
	return a, nil
}

// New returns a fresh hash state for the named algorithm.
func New(name string, native bool) (gohash.Hash, error) {
	a, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return a.New(native), nil
}

// Digest hashes data with the named algorithm.
func Digest(data []byte, name string, native bool) ([]byte, error) {
	a, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return a.Sum(data, native), nil
}

// DigestSize returns the digest size in bytes of the named algorithm.
func DigestSize(name string) (int, error) {
	a, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	return a.Size, nil
}

// Supported returns the canonical names of all registered algorithms, sorted.
func Supported() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(algorithms))
	for _, a := range algorithms {
		names = append(names, a.Name)
	}
	sort.Strings(names)
	return names
}
