// Package store persists search sessions, similarity hits and chain
// closures in a badger database.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	badger "github.com/dgraph-io/badger/v2"
	"github.com/google/uuid"

	"github.com/rickgorman/hashsearch/internal/search"
)

// ErrSessionNotFound is returned when a session ID has no record.
var ErrSessionNotFound = errors.New("session not found")

var _ search.Recorder = (*Store)(nil)

// Store is a badger backed search.Recorder.
type Store struct {
	db  *badger.DB
	now func() time.Time
}

// Open opens or creates the database described by settings.
func Open(settings Settings) (*Store, error) {
	settings.SetDefaults()
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	opts := badger.DefaultOptions(*settings.Path).
		WithLogger(nil).
		WithInMemory(*settings.InMemory)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, transformError(fmt.Errorf("opening badger database: %w", err))
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return transformError(s.db.Close())
}

// SessionStart creates a session record and returns its ID.
func (s *Store) SessionStart(ctx context.Context, algorithm, hostID, mode string, seed []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	now := s.now()
	session := Session{
		ID:        uuid.NewString(),
		Algorithm: algorithm,
		Host:      hostID,
		Mode:      mode,
		Seed:      seed,
		Current:   seed,
		Started:   now,
		Updated:   now,
	}
	if err := s.put(sessionKey(session.ID), session); err != nil {
		return "", fmt.Errorf("creating session: %w", err)
	}
	return session.ID, nil
}

// SessionCheckpoint stores the progress of a session.
func (s *Store) SessionCheckpoint(ctx context.Context, sessionID string, inputs uint64, current []byte) error {
	return s.updateSession(ctx, sessionID, func(session *Session) {
		session.Inputs = inputs
		session.Current = current
	})
}

// SessionEnd stores the final counters of a session and marks it finished.
func (s *Store) SessionEnd(ctx context.Context, sessionID string, inputs uint64, last []byte) error {
	return s.updateSession(ctx, sessionID, func(session *Session) {
		session.Inputs = inputs
		session.Current = last
		session.Finished = true
	})
}

// RecordSimilarityHit stores a hit keyed by algorithm and input.
func (s *Store) RecordSimilarityHit(ctx context.Context, hit search.SimilarityHit) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	record := Hit{
		Algorithm: hit.Algorithm,
		Input:     hit.Input,
		Digest:    hit.Digest,
		Score:     hit.Score,
		Kind:      hit.Kind.String(),
		FixPoint:  hit.FixPoint,
		Found:     s.now(),
	}
	if err := s.put(recordKey(hitPrefix, hit.Algorithm, hit.Input), record); err != nil {
		return fmt.Errorf("recording hit: %w", err)
	}
	return nil
}

// RecordChainClosure stores the chain length of start.
func (s *Store) RecordChainClosure(ctx context.Context, algorithm string, start []byte, length uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	record := Chain{
		Algorithm: algorithm,
		Start:     start,
		Length:    length,
		Found:     s.now(),
	}
	if err := s.put(recordKey(chainPrefix, algorithm, start), record); err != nil {
		return fmt.Errorf("recording chain: %w", err)
	}
	return nil
}

// Session returns one session.
func (s *Store) Session(ctx context.Context, sessionID string) (Session, error) {
	var session Session
	if err := ctx.Err(); err != nil {
		return session, err
	}

	err := s.db.View(func(txn *badger.Txn) error {
		return get(txn, sessionKey(sessionID), &session)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return session, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return session, transformError(err)
}

// Sessions returns all sessions, oldest first.
func (s *Store) Sessions(ctx context.Context) ([]Session, error) {
	var sessions []Session
	err := s.scan(ctx, []byte(sessionPrefix), func(value []byte) error {
		var session Session
		if err := json.Unmarshal(value, &session); err != nil {
			return err
		}
		sessions = append(sessions, session)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Started.Before(sessions[j].Started)
	})
	return sessions, nil
}

// Hits returns the hits for algorithm, or all hits when it is empty, in
// key order.
func (s *Store) Hits(ctx context.Context, algorithm string) ([]Hit, error) {
	var hits []Hit
	err := s.scan(ctx, algorithmPrefix(hitPrefix, algorithm), func(value []byte) error {
		var hit Hit
		if err := json.Unmarshal(value, &hit); err != nil {
			return err
		}
		hits = append(hits, hit)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing hits: %w", err)
	}
	return hits, nil
}

// Chains returns the chain closures for algorithm, or all of them when it
// is empty, in key order.
func (s *Store) Chains(ctx context.Context, algorithm string) ([]Chain, error) {
	var chains []Chain
	err := s.scan(ctx, algorithmPrefix(chainPrefix, algorithm), func(value []byte) error {
		var chain Chain
		if err := json.Unmarshal(value, &chain); err != nil {
			return err
		}
		chains = append(chains, chain)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing chains: %w", err)
	}
	return chains, nil
}

func (s *Store) updateSession(ctx context.Context, sessionID string, update func(*Session)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := sessionKey(sessionID)
	err := s.db.Update(func(txn *badger.Txn) error {
		var session Session
		if err := get(txn, key, &session); err != nil {
			return err
		}
		update(&session)
		session.Updated = s.now()
		return set(txn, key, session)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if err != nil {
		return fmt.Errorf("updating session %s: %w", sessionID, transformError(err))
	}
	return nil
}

func (s *Store) put(key []byte, v interface{}) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return set(txn, key, v)
	})
	return transformError(err)
}

// scan calls handle with every value whose key starts with prefix.
func (s *Store) scan(ctx context.Context, prefix []byte, handle func(value []byte) error) error {
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := it.Item().Value(handle); err != nil {
				return fmt.Errorf("reading 0x%x: %w", it.Item().Key(), err)
			}
		}
		return nil
	})
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return transformError(err)
}

func get(txn *badger.Txn, key []byte, v interface{}) error {
	item, err := txn.Get(key)
	if err != nil {
		return err
	}
	return item.Value(func(value []byte) error {
		return json.Unmarshal(value, v)
	})
}

func set(txn *badger.Txn, key []byte, v interface{}) error {
	value, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	return txn.Set(key, value)
}

// transformError marks badger failures as search.ErrStorageUnavailable.
func transformError(badgerErr error) (err error) {
	if badgerErr == nil || errors.Is(badgerErr, search.ErrStorageUnavailable) {
		return badgerErr
	}
	return fmt.Errorf("%w: %w", search.ErrStorageUnavailable, badgerErr)
}
