package store

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// TOML is a Store backed by a TOML document: one table per scope, one
// key/value pair per setting.
type TOML struct {
	doc  map[string]any
	open map[string]any
}

// NewTOML returns an empty TOML store.
func NewTOML() *TOML {
	return &TOML{doc: make(map[string]any)}
}

// Load reads the document from disk. A missing file yields an empty
// document.
func (s *TOML) Load(path string) error {
	s.doc = make(map[string]any)
	s.open = nil

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &s.doc); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// Save writes the document to disk.
func (s *TOML) Save(path string) error {
	data, err := toml.Marshal(s.doc)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Open enters the named table, creating it if absent.
func (s *TOML) Open(scope string) {
	if table, ok := s.doc[scope].(map[string]any); ok {
		s.open = table
		return
	}
	table := make(map[string]any)
	s.doc[scope] = table
	s.open = table
}

// Close leaves the open table.
func (s *TOML) Close() {
	s.open = nil
}

// Get returns the text value under key, or fallback when absent.
func (s *TOML) Get(key, fallback string) string {
	if s.open == nil {
		return fallback
	}
	value, ok := s.open[key]
	if !ok {
		return fallback
	}
	return fmt.Sprint(value)
}

// Set stores a text value under key.
func (s *TOML) Set(key, value string) {
	if s.open == nil {
		return
	}
	s.open[key] = value
}
