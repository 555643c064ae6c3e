package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickgorman/hashsearch/internal/search"
	"github.com/rickgorman/hashsearch/internal/similarity"
)

func ptrTo[T any](value T) *T { return &value }

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(Settings{InMemory: ptrTo(true)})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return s
}

func Test_Settings(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		settings Settings
		valid    bool
	}{
		"in memory":           {settings: Settings{InMemory: ptrTo(true)}, valid: true},
		"in memory with path": {settings: Settings{Path: ptrTo("x"), InMemory: ptrTo(true)}},
		"on disk":             {settings: Settings{Path: ptrTo("x")}, valid: true},
		"on disk no path":     {settings: Settings{}},
	}

	for name, testCase := range testCases {
		testCase := testCase

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			testCase.settings.SetDefaults()
			err := testCase.settings.Validate()
			if testCase.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.SessionStart(ctx, "MD5", "host-a", "chase", []byte{0x00, 0x01})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.NoError(t, s.SessionCheckpoint(ctx, id, 100, []byte{0x00, 0x64}))
	session, err := s.Session(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), session.Inputs)
	assert.Equal(t, []byte{0x00, 0x64}, session.Current)
	assert.False(t, session.Finished)

	require.NoError(t, s.SessionEnd(ctx, id, 250, []byte{0x00, 0xFA}))
	session, err = s.Session(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "MD5", session.Algorithm)
	assert.Equal(t, "host-a", session.Host)
	assert.Equal(t, "chase", session.Mode)
	assert.Equal(t, []byte{0x00, 0x01}, session.Seed)
	assert.Equal(t, uint64(250), session.Inputs)
	assert.Equal(t, []byte{0x00, 0xFA}, session.Current)
	assert.True(t, session.Finished)
	assert.True(t, session.Updated.After(session.Started))
}

func TestSessionsAreOrdered(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var ids []string
	for _, alg := range []string{"MD5", "SHA-1", "CRC-32"} {
		id, err := s.SessionStart(ctx, alg, "h", "sequential", []byte{0})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	sessions, err := s.Sessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	for i, session := range sessions {
		assert.Equal(t, ids[i], session.ID)
	}
}

func TestUnknownSession(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.SessionCheckpoint(ctx, "missing", 1, nil)
	assert.True(t, errors.Is(err, ErrSessionNotFound))

	err = s.SessionEnd(ctx, "missing", 1, nil)
	assert.True(t, errors.Is(err, ErrSessionNotFound))

	_, err = s.Session(ctx, "missing")
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}

func TestHitsAndChainsByAlgorithm(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	hits := []search.SimilarityHit{
		{Algorithm: "SHA-512", Input: []byte{0x02}, Digest: []byte{0x03}, Score: 7, Kind: similarity.Bit},
		{Algorithm: "SHA-512", Input: []byte{0x01}, Digest: []byte{0x01}, Score: 8, Kind: similarity.Bit, FixPoint: true},
		{Algorithm: "SHA-512/256", Input: []byte{0x01}, Digest: []byte{0x00}, Score: 0, Kind: similarity.Byte},
	}
	for _, hit := range hits {
		require.NoError(t, s.RecordSimilarityHit(ctx, hit))
	}
	require.NoError(t, s.RecordChainClosure(ctx, "CRC-16", []byte{0x00, 0x01}, 42))
	require.NoError(t, s.RecordChainClosure(ctx, "CRC-16C", []byte{0x00, 0x01}, 7))

	got, err := s.Hits(ctx, "SHA-512")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []byte{0x01}, got[0].Input)
	assert.True(t, got[0].FixPoint)
	assert.Equal(t, "bit", got[0].Kind)
	assert.Equal(t, []byte{0x02}, got[1].Input)

	all, err := s.Hits(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	chains, err := s.Chains(ctx, "CRC-16")
	require.NoError(t, err)
	require.Len(t, chains, 1)
	assert.Equal(t, uint64(42), chains[0].Length)
	assert.Equal(t, []byte{0x00, 0x01}, chains[0].Start)

	none, err := s.Chains(ctx, "MD5")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCancelledContext(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.SessionStart(ctx, "MD5", "h", "chase", []byte{0})
	assert.ErrorIs(t, err, context.Canceled)

	err = s.RecordChainClosure(ctx, "MD5", []byte{0}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
