package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAML is a Store backed by a YAML document: one mapping per scope, one
// key/value pair per setting.
type YAML struct {
	doc  map[string]any
	open map[string]any
}

// NewYAML returns an empty YAML store.
func NewYAML() *YAML {
	return &YAML{doc: make(map[string]any)}
}

// Load reads the document from disk. A missing file yields an empty
// document.
func (s *YAML) Load(path string) error {
	s.doc = make(map[string]any)
	s.open = nil

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &s.doc); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if s.doc == nil {
		s.doc = make(map[string]any)
	}
	return nil
}

// Save writes the document to disk.
func (s *YAML) Save(path string) error {
	data, err := yaml.Marshal(s.doc)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Open enters the named mapping, creating it if absent.
func (s *YAML) Open(scope string) {
	if mapping, ok := s.doc[scope].(map[string]any); ok {
		s.open = mapping
		return
	}
	mapping := make(map[string]any)
	s.doc[scope] = mapping
	s.open = mapping
}

// Close leaves the open mapping.
func (s *YAML) Close() {
	s.open = nil
}

// Get returns the text value under key, or fallback when absent.
func (s *YAML) Get(key, fallback string) string {
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
func (s *YAML) Set(key, value string) {
	if s.open == nil {
		return
	}
	s.open[key] = value
}
