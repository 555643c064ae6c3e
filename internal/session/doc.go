// Package session locates the hashsearch data directory and identifies the
// host a search runs on.
//
// This package handles:
//   - Data directory creation in ~/.hashsearch/
//   - The badger database directory inside it
//   - Host identity recorded with every search session
//
// Example usage:
//
//	dataDir, err := session.EnsureDataDir()
//	dbDir, err := session.DatabaseDir(dataDir)
//	host := session.HostID()
//
// Layout:
//
//	~/.hashsearch/config.toml
//	~/.hashsearch/db/
//
// The HASHSEARCH_HOME environment variable replaces ~/.hashsearch.
package session
