package store

import (
	"encoding/hex"
	"time"
)

// Session is a persisted search session.
type Session struct {
	ID        string    `json:"id"`
	Algorithm string    `json:"algorithm"`
	Host      string    `json:"host"`
	Mode      string    `json:"mode"`
	Seed      []byte    `json:"seed"`
	Inputs    uint64    `json:"inputs"`
	Current   []byte    `json:"current,omitempty"`
	Started   time.Time `json:"started"`
	Updated   time.Time `json:"updated"`
	Finished  bool      `json:"finished"`
}

// Hit is a persisted similarity hit.
type Hit struct {
	Algorithm string    `json:"algorithm"`
	Input     []byte    `json:"input"`
	Digest    []byte    `json:"digest"`
	Score     int       `json:"score"`
	Kind      string    `json:"kind"`
	FixPoint  bool      `json:"fix_point"`
	Found     time.Time `json:"found"`
}

// Chain is a persisted chain closure.
type Chain struct {
	Algorithm string    `json:"algorithm"`
	Start     []byte    `json:"start"`
	Length    uint64    `json:"length"`
	Found     time.Time `json:"found"`
}

const sep = "\x00"

const (
	sessionPrefix = "session" + sep
	hitPrefix     = "hit" + sep
	chainPrefix   = "chain" + sep
)

func sessionKey(id string) []byte {
	return []byte(sessionPrefix + id)
}

// algorithmPrefix scopes a record prefix to one algorithm. An empty
// algorithm matches all of them.
func algorithmPrefix(prefix, algorithm string) []byte {
	if algorithm == "" {
		return []byte(prefix)
	}
	return []byte(prefix + algorithm + sep)
}

func recordKey(prefix, algorithm string, value []byte) []byte {
	return []byte(prefix + algorithm + sep + hex.EncodeToString(value))
}
