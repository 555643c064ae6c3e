package store

import (
	"fmt"
	"path/filepath"
)

// Settings is the store settings.
type Settings struct {
	// Path is the database directory. It must be empty when InMemory is set.
	Path *string
	// InMemory keeps all data in memory. Defaults to false.
	InMemory *bool
}

// SetDefaults sets the default values on the settings.
func (s *Settings) SetDefaults() {
	if s.Path == nil {
		s.Path = new(string)
	}
	if s.InMemory == nil {
		s.InMemory = new(bool)
	}
}

// Validate validates the settings.
func (s Settings) Validate() (err error) {
	if *s.InMemory {
		if *s.Path != "" {
			return fmt.Errorf("path %q must be empty for an in-memory store", *s.Path)
		}
		return nil
	}

	if *s.Path == "" {
		return fmt.Errorf("path is required for an on-disk store")
	}
	_, err = filepath.Abs(*s.Path)
	if err != nil {
		return fmt.Errorf("changing path to absolute path: %w", err)
	}
	return nil
}
